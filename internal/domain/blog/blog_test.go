package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlog(t *testing.T) {
	b, err := NewBlog("  Hello ", "# hi", "<h1>hi</h1>", "img.png", " news ")
	require.NoError(t, err)
	assert.Equal(t, "Hello", b.Title())
	assert.Equal(t, "news", b.Category())
	assert.Equal(t, int64(0), b.Views())

	_, err = NewBlog("", "x", "", "", "")
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = NewBlog("t", "  ", "", "", "")
	assert.ErrorIs(t, err, ErrContentRequired)
}

func TestBlog_Apply(t *testing.T) {
	b, err := NewBlog("Hello", "old", "<p>old</p>", "a.png", "news")
	require.NoError(t, err)

	desc := "new"
	require.NoError(t, b.Apply(Update{Description: &desc, DescriptionHTML: "<p>new</p>"}))
	assert.Equal(t, "new", b.Description())
	assert.Equal(t, "<p>new</p>", b.DescriptionHTML())
	assert.Equal(t, "a.png", b.Image(), "empty image keeps the old one")

	empty := " "
	assert.ErrorIs(t, b.Apply(Update{Title: &empty}), ErrTitleRequired)
}
