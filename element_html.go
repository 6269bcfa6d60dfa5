package view

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderToString serializes the tree rooted at e as HTML.
func RenderToString(e *Element) (string, error) {
	var sb strings.Builder
	if err := WriteHTML(&sb, e); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteHTML serializes the tree rooted at e as HTML to w.
// Attributes are written in key order. Text and attribute values get the
// default HTML escaping and are otherwise written verbatim.
func WriteHTML(w io.Writer, e *Element) error {
	if e == nil {
		return nil
	}
	if err := html.Render(w, toHTMLNode(e)); err != nil {
		return fmt.Errorf("writing html: %w", err)
	}
	return nil
}

// toHTMLNode converts e and its subtree to an html.Node tree.
func toHTMLNode(e *Element) *html.Node {
	tag := e.kind.Tag()
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}

	keys := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		n.Attr = append(n.Attr, html.Attribute{Key: k, Val: e.attrs[k]})
	}

	if e.text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: e.text})
	}
	for _, child := range e.children {
		n.AppendChild(toHTMLNode(child))
	}
	return n
}
