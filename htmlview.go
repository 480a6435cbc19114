package htmlview

import (
	"io"

	"github.com/npillmayer/htmlview/dom"
	"github.com/npillmayer/htmlview/render"
)

// Render parses an HTML document and transforms it into a render tree.
// Top-level nodes which render nothing are dropped from the result.
func Render(r io.Reader, opts render.Options) ([]render.Node, error) {
	nodes, err := dom.Parse(r)
	if err != nil {
		return nil, err
	}
	tree, err := render.New(opts).Render(nodes)
	if err != nil {
		return nil, err
	}
	tracer().Infof("rendered %d top-level nodes into %d render nodes", len(nodes), len(tree))
	return tree, nil
}

// Convert is like Render, but delivers its result to a completion
// function. done is called exactly once, either with an error and a nil
// tree, or with a nil error and the render tree.
func Convert(r io.Reader, opts render.Options, done func(err error, tree []render.Node)) {
	tree, err := Render(r, opts)
	if err != nil {
		tracer().Errorf("cannot convert HTML: %v", err)
		done(err, nil)
		return
	}
	done(nil, tree)
}
