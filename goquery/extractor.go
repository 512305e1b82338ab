// Package goquery extracts content blocks from handbook pages using
// CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/handbook"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements handbook.BlockExtractor at compile time.
var _ handbook.BlockExtractor = (*Extractor)(nil)

// Default selectors for handbook pages.
const (
	DefaultSectionSelector = ".content-section, .collapsible-section"
	DefaultHeadingSelector = "h1, h2, .section-header"

	// headingBoundary splits pages without section elements into blocks.
	headingBoundary = "h1, h2"
)

// Extractor extracts content blocks from HTML.
//
// Pages with section elements yield one block per section: the heading is
// the section's first heading element and the body is all of its text.
// Pages without section elements, such as rendered Markdown, yield one
// block per h1/h2 heading whose body is the content up to the next such
// heading.
type Extractor struct {
	sectionSelector string
	headingSelector string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSectionSelector sets the selector matching section elements.
func WithSectionSelector(selector string) Option {
	return func(e *Extractor) {
		e.sectionSelector = selector
	}
}

// WithHeadingSelector sets the selector matching a section's heading.
func WithHeadingSelector(selector string) Option {
	return func(e *Extractor) {
		e.headingSelector = selector
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		sectionSelector: DefaultSectionSelector,
		headingSelector: DefaultHeadingSelector,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractBlocks parses HTML and returns its content blocks in document
// order. Blocks that cannot be addressed (no id on the section or heading
// and no heading text to derive one from) are skipped. Duplicate IDs get
// numeric suffixes.
func (e *Extractor) ExtractBlocks(rawHTML string) ([]handbook.Block, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, handbook.Errorf(handbook.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, handbook.Errorf(handbook.EINVALID, "failed to parse HTML: %v", err)
	}

	var ids handbook.AnchorSet

	sections := doc.Find(e.sectionSelector)
	if sections.Length() > 0 {
		return e.extractSections(sections, &ids), nil
	}
	return extractHeadings(doc, &ids), nil
}

func (e *Extractor) extractSections(sections *goquery.Selection, ids *handbook.AnchorSet) []handbook.Block {
	var blocks []handbook.Block
	sections.Each(func(_ int, sec *goquery.Selection) {
		heading := sec.Find(e.headingSelector).First()
		title := textOf(heading)

		id := firstNonEmpty(attr(sec, "id"), attr(heading, "id"), handbook.Anchor(title))
		if id == "" {
			return
		}

		markup, _ := sec.Html()
		blocks = append(blocks, handbook.Block{
			ID:      ids.Unique(id),
			Heading: title,
			Body:    textOf(sec),
			HTML:    strings.TrimSpace(markup),
		})
	})
	return blocks
}

func extractHeadings(doc *goquery.Document, ids *handbook.AnchorSet) []handbook.Block {
	var blocks []handbook.Block
	doc.Find(headingBoundary).Each(func(_ int, heading *goquery.Selection) {
		title := textOf(heading)

		id := firstNonEmpty(attr(heading, "id"), handbook.Anchor(title))
		if id == "" {
			return
		}

		content := heading.NextUntil(headingBoundary)
		blocks = append(blocks, handbook.Block{
			ID:      ids.Unique(id),
			Heading: title,
			Body:    textOf(content),
			HTML:    outerHTML(heading.AddSelection(content)),
		})
	})
	return blocks
}

// outerHTML renders each element of sel, separated by newlines.
func outerHTML(sel *goquery.Selection) string {
	parts := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		if h, err := goquery.OuterHtml(s); err == nil {
			parts = append(parts, h)
		}
	})
	return strings.Join(parts, "\n")
}

// textOf returns the text of sel with block-level elements separated by
// spaces and runs of whitespace collapsed.
func textOf(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		writeText(&sb, n)
		sb.WriteByte(' ')
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	}

	block := n.Type == html.ElementNode && blockElements[n.DataAtom]
	if block {
		sb.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
	if block {
		sb.WriteByte(' ')
	}
}

// blockElements separate words even when the markup has no whitespace
// between them.
var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Br: true, atom.Dd: true, atom.Details: true, atom.Div: true, atom.Dl: true,
	atom.Dt: true, atom.Figcaption: true, atom.Figure: true, atom.Footer: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true,
	atom.H6: true, atom.Header: true, atom.Hr: true, atom.Li: true, atom.Main: true,
	atom.Nav: true, atom.Ol: true, atom.P: true, atom.Pre: true, atom.Section: true,
	atom.Summary: true, atom.Table: true, atom.Td: true, atom.Th: true, atom.Tr: true,
	atom.Ul: true,
}

func attr(sel *goquery.Selection, name string) string {
	v, _ := sel.Attr(name)
	return strings.TrimSpace(v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
