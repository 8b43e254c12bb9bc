// Package goquery implements xivchar.Node and xivchar.Extractor on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/malippew/xivchar"
)

var _ xivchar.Node = node{}

// node adapts a goquery selection holding a single HTML node.
type node struct {
	sel *goquery.Selection
}

// Parse parses an HTML document.
// Returns EINVALID if the input cannot be read as HTML.
func Parse(html string) (xivchar.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, xivchar.Errorf(xivchar.EINVALID, "failed to parse HTML: %v", err)
	}
	return node{sel: doc.Selection}, nil
}

// Find returns the descendants matching selector, one node per match.
func (n node) Find(selector string) []xivchar.Node {
	matches := n.sel.Find(selector)
	nodes := make([]xivchar.Node, 0, matches.Length())
	matches.Each(func(_ int, sel *goquery.Selection) {
		nodes = append(nodes, node{sel: sel})
	})
	return nodes
}

// Text returns the combined text contents of the node.
func (n node) Text() string {
	return n.sel.Text()
}

// Attr returns the named attribute of the node.
func (n node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}
