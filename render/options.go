package render

import (
	"github.com/npillmayer/htmlview/dom/style"
	"golang.org/x/net/html"
)

// DefaultMaxDepth is the nesting depth of the document tree beyond which
// a transform fails with ErrMaxDepth.
const DefaultMaxDepth = 512

// Options configure a transform.
type Options struct {
	Styles         style.Table         // styles per tag name
	MaxWidth       float64             // width constraint for blocks and images
	LinkHandler    func(url string)    // called with the decoded href of an activated link
	CustomRenderer CustomRenderer      // optional override hook
	Decode         func(string) string // entity decoder, defaults to html.UnescapeString
	MaxDepth       int                 // 0 selects DefaultMaxDepth, negative disables the check
}

// DefaultOptions returns options with the default entity decoder and depth
// limit, no styles and a width constraint of 0.
func DefaultOptions() Options {
	return Options{
		Decode:   html.UnescapeString,
		MaxDepth: DefaultMaxDepth,
	}
}

func (opts Options) withDefaults() Options {
	if opts.Decode == nil {
		opts.Decode = html.UnescapeString
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return opts
}
