package handbook

// Block is a navigable unit of page content as supplied by the host
// document.
type Block struct {
	ID      string `json:"id"`
	Heading string `json:"heading"`
	Body    string `json:"body"`

	// HTML is the block's markup, used to reveal the block after
	// navigation. It is never searched.
	HTML string `json:"html,omitempty"`
}

// BlockExtractor extracts content blocks from a rendered page.
type BlockExtractor interface {
	// ExtractBlocks parses HTML and returns its content blocks in
	// document order. IDs are unique within the returned slice.
	ExtractBlocks(html string) ([]Block, error)
}

// Renderer renders page source written in a markup language to HTML.
type Renderer interface {
	// Render returns the HTML for the given source. Headings carry
	// generated id attributes so blocks can be addressed.
	Render(source string) (string, error)
}
