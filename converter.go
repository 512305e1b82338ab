package handbook

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms a block's HTML into Markdown for display.
	Convert(html string) (string, error)
}
