// Package html composes the documents shown in sandboxed live preview
// frames.
package html

import (
	"bytes"
	"strings"

	"github.com/fwojciec/handbook"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Composer implements handbook.PreviewComposer at compile time.
var _ handbook.PreviewComposer = (*Composer)(nil)

// Composer builds preview documents from an HTML fragment and a
// stylesheet. The fragment is parsed in body context, so it cannot add
// content outside the body, and the stylesheet cannot close its style
// element.
type Composer struct{}

// NewComposer creates a new Composer.
func NewComposer() *Composer {
	return &Composer{}
}

// Compose returns a complete HTML document applying handbook.BaseStyle and
// css to fragment.
func (c *Composer) Compose(fragment, css string) (string, error) {
	body := element(atom.Body)
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", handbook.Errorf(handbook.EINVALID, "failed to parse preview HTML: %v", err)
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}

	style := element(atom.Style)
	style.AppendChild(&html.Node{
		Type: html.TextNode,
		Data: handbook.BaseStyle + "\n" + escapeStyle(css),
	})

	head := element(atom.Head)
	head.AppendChild(style)

	root := element(atom.Html)
	root.AppendChild(head)
	root.AppendChild(body)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)

	return render(doc)
}

// Frame wraps doc in a sandboxed iframe whose srcdoc attribute carries the
// escaped document.
func (c *Composer) Frame(doc string) (string, error) {
	frame := element(atom.Iframe)
	frame.Attr = []html.Attribute{
		{Key: "sandbox"},
		{Key: "title", Val: "Preview"},
		{Key: "srcdoc", Val: doc},
	}
	return render(frame)
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
}

// escapeStyle keeps style text from terminating the raw-text style element.
func escapeStyle(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

func render(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
