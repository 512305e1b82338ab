package handbook

// BaseStyle is applied to every preview document before the user's CSS.
const BaseStyle = "body { font-family: Arial, sans-serif; margin: 20px; }"

// PreviewComposer builds the documents shown in live preview frames.
type PreviewComposer interface {
	// Compose returns a complete HTML document whose head applies
	// BaseStyle followed by css and whose body holds the HTML fragment.
	Compose(html, css string) (string, error)

	// Frame wraps a composed document in a sandboxed iframe element.
	Frame(doc string) (string, error)
}
