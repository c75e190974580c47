package usecases

type MarkdownRenderer interface {
	MarkdownToHTML(markdown string) (string, error)
}
