package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	typ, err := ParseType(" product ")
	require.NoError(t, err)
	assert.Equal(t, TypeProduct, typ)

	_, err = ParseType("gadget")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("  Grocery ", "daily needs", TypeStore, "")
	require.NoError(t, err)
	assert.Equal(t, "Grocery", c.Name())
	assert.Equal(t, TypeStore, c.Type())

	_, err = NewCategory(" ", "", TypeStore, "")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = NewCategory("x", "", Type("BAD"), "")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestAssociationCounts_Any(t *testing.T) {
	tests := []struct {
		name   string
		counts AssociationCounts
		want   bool
	}{
		{name: "none", counts: AssociationCounts{}, want: false},
		{name: "store link", counts: AssociationCounts{StoreCategories: 1}, want: true},
		{name: "product", counts: AssociationCounts{Products: 2}, want: true},
		{name: "service", counts: AssociationCounts{Services: 1}, want: true},
		{name: "consultation", counts: AssociationCounts{Consultations: 1}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.counts.Any())
		})
	}
}

func TestCategory_RenamesOrRetypes(t *testing.T) {
	c, err := NewCategory("Grocery", "", TypeStore, "")
	require.NoError(t, err)

	same := "Grocery"
	other := "Bakery"
	svc := TypeService

	assert.False(t, c.RenamesOrRetypes(Update{Name: &same}))
	assert.True(t, c.RenamesOrRetypes(Update{Name: &other}))
	assert.True(t, c.RenamesOrRetypes(Update{Type: &svc}))

	name, typ := c.Target(Update{Name: &other})
	assert.Equal(t, "Bakery", name)
	assert.Equal(t, TypeStore, typ)
}

func TestCategory_Apply(t *testing.T) {
	c, err := NewCategory("Grocery", "old", TypeStore, "")
	require.NoError(t, err)

	desc := "new"
	require.NoError(t, c.Apply(Update{Description: &desc}))
	assert.Equal(t, "new", c.Description())
	assert.Equal(t, "Grocery", c.Name())

	bad := Type("NOPE")
	assert.ErrorIs(t, c.Apply(Update{Type: &bad}), ErrInvalidType)
}
