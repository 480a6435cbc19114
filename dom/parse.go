package dom

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrParse is the error class for documents which cannot be parsed.
// Errors returned by Parse match it with errors.Is.
var ErrParse = errors.New("cannot parse HTML document")

// ParseError wraps the failure reported by the HTML parser.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "dom: " + ErrParse.Error() + ": " + e.Err.Error()
}

// Unwrap returns the parser's error.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Parse reads an HTML fragment and returns its top-level nodes.
// The fragment is parsed in the context of a <body> element, therefore no
// implied <html>, <head> or <body> elements will appear in the result.
//
// Comments and doctype declarations are dropped and do not count as
// siblings of the remaining nodes. Text data and attribute
// values are re-encoded to their entity form (see package documentation).
func Parse(r io.Reader) ([]Node, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Body.String(),
		DataAtom: atom.Body,
	}
	hnodes, err := html.ParseFragment(r, body)
	if err != nil {
		tracer().Errorf("HTML parser failed: %v", err)
		return nil, &ParseError{Err: err}
	}
	nodes := make([]Node, 0, len(hnodes))
	for _, h := range hnodes {
		if n := fromHTMLNode(h); n != nil {
			nodes = append(nodes, n)
		}
	}
	tracer().Debugf("parsed HTML fragment into %d top-level nodes", len(nodes))
	return nodes, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) ([]Node, error) {
	return Parse(strings.NewReader(s))
}

func fromHTMLNode(h *html.Node) Node {
	switch h.Type {
	case html.TextNode:
		return NewText(html.EscapeString(h.Data))
	case html.ElementNode:
		attrs := make(map[string]string, len(h.Attr))
		for _, a := range h.Attr {
			if _, exists := attrs[a.Key]; exists {
				continue // first occurrence wins, as with HTML
			}
			attrs[a.Key] = html.EscapeString(a.Val)
		}
		tag := NewTag(strings.ToLower(h.Data), attrs)
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			tag.AddChild(fromHTMLNode(ch))
		}
		return tag
	}
	return nil
}
