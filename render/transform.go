package render

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/htmlview/dom"
	"github.com/npillmayer/htmlview/dom/style"
	"github.com/npillmayer/htmlview/dom/style/css"
)

// ErrMaxDepth is returned if a document is nested deeper than the
// configured maximum depth.
var ErrMaxDepth = errors.New("document nesting too deep")

// Transformer converts document trees into render trees.
type Transformer struct {
	opts Options
}

// New creates a transformer. Unset options are filled with defaults,
// see Options.
func New(opts Options) *Transformer {
	return &Transformer{opts: opts.withDefaults()}
}

// nonContentTags hold source text for the browser, not document content.
// A CustomRenderer may still render them.
var nonContentTags = map[string]bool{
	"style":    true,
	"script":   true,
	"template": true,
}

// frame is the context handed down from a tag to its children.
type frame struct {
	parent        *dom.Tag  // enclosing tag or nil
	parentIsBlock bool      // is parent a block container?
	marker        *dom.Text // text node receiving a list bullet, if any
}

// Transform converts a list of sibling nodes with a common parent (nil for
// top-level nodes) at a given nesting depth. The result is parallel to
// nodes: a nil entry marks a node which rendered nothing.
//
// An error is returned only if the document exceeds the maximum depth.
func (t *Transformer) Transform(nodes []dom.Node, parent *dom.Tag, depth int) ([]Node, error) {
	f := frame{parent: parent}
	if parent != nil {
		f.parentIsBlock = css.IsBlockLevelTag(parent.Name)
	}
	return t.transform(nodes, f, depth)
}

// Render converts a top-level node list and compacts the result.
func (t *Transformer) Render(nodes []dom.Node) ([]Node, error) {
	r, err := t.Transform(nodes, nil, 0)
	if err != nil {
		return nil, err
	}
	return Compact(r), nil
}

func (t *Transformer) transform(nodes []dom.Node, f frame, depth int) ([]Node, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		r, err := t.node(n, i, nodes, f, depth)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

func (t *Transformer) node(n dom.Node, index int, siblings []dom.Node, f frame, depth int) (Node, error) {
	if t.opts.CustomRenderer != nil {
		pos := Position{Index: index, Depth: depth, Parent: f.parent, Siblings: siblings}
		if o := t.opts.CustomRenderer(n, pos); !o.IsDefault() {
			tracer().Debugf("custom renderer: %s for %v", o, n)
			if r := o.Node(); r != nil {
				return r.withKey(index), nil
			}
			return nil, nil
		}
	}
	switch x := n.(type) {
	case *dom.Text:
		return t.text(x, index, len(siblings), f), nil
	case *dom.Tag:
		return t.tag(x, index, f, depth)
	}
	return nil, nil
}

func (t *Transformer) text(x *dom.Text, index, count int, f frame) Node {
	text, ok := NormalizeText(x.Data, prefixFor(x, f), trimsAt(f, index, count))
	if !ok {
		return nil
	}
	run := &TextRun{Text: t.opts.Decode(text)}
	run.setKey(index)
	if f.parent != nil {
		run.Style = style.TextStyles(f.parent.Name, t.opts.Styles)
	}
	return run
}

func (t *Transformer) tag(x *dom.Tag, index int, f frame, depth int) (Node, error) {
	if nonContentTags[x.Name] {
		tracer().Debugf("skipping non-content element <%s>", x.Name)
		return nil, nil
	}
	if x.Name == "img" {
		return t.image(x, index), nil
	}
	var onPress func()
	if x.Name == "a" {
		if href, ok := x.Attr("href"); ok && href != "" {
			onPress = t.linkHandler(href)
		}
	}
	mode := css.DisplayModeForTag(x.Name)
	if t.opts.MaxDepth > 0 && depth >= t.opts.MaxDepth && len(x.Children) > 0 {
		tracer().Errorf("maximum nesting depth %d exceeded at <%s>", t.opts.MaxDepth, x.Name)
		return nil, fmt.Errorf("%w: <%s> at depth %d", ErrMaxDepth, x.Name, depth)
	}
	sub := frame{
		parent:        x,
		parentIsBlock: mode.IsBlockLevel(),
		marker:        markerFor(x, f.marker),
	}
	children, err := t.transform(x.Children, sub, depth+1)
	if err != nil {
		return nil, err
	}
	if sub.parentIsBlock {
		b := &Block{
			Tag:      x.Name,
			Display:  mode,
			Style:    style.LayoutStyles(x.Name, t.opts.Styles),
			Width:    t.opts.MaxWidth,
			OnPress:  onPress,
			Children: Compact(children),
		}
		b.setKey(index)
		return b, nil
	}
	run := &TextRun{
		Tag:      x.Name,
		OnPress:  onPress,
		Children: Compact(children),
	}
	run.setKey(index)
	return run, nil
}

func (t *Transformer) linkHandler(href string) func() {
	handler, decode := t.opts.LinkHandler, t.opts.Decode
	return func() {
		url := decode(href)
		if handler == nil {
			tracer().Infof("link %q activated, but no link handler configured", url)
			return
		}
		handler(url)
	}
}

// --- Images ----------------------------------------------------------------

func (t *Transformer) image(x *dom.Tag, index int) Node {
	w := imageDimension(x, "width", "data-width")
	h := imageDimension(x, "height", "data-height")
	src, _ := x.Attr("src")
	img := &Image{
		Source: ImageSource{
			URI:    t.opts.Decode(src),
			Width:  w,
			Height: h,
		},
		Style:    style.Map{"width": style.Num(w), "height": style.Num(h)},
		MaxWidth: t.opts.MaxWidth,
	}
	img.setKey(index)
	return img
}

// imageDimension returns the first of the attributes which holds a
// non-zero number, or 0.
func imageDimension(x *dom.Tag, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := x.Attr(k); ok {
			if d := parseNumber(v); d != 0 {
				return d
			}
		}
	}
	return 0
}

// parseNumber converts an attribute value to a number. Malformed values
// yield 0.
func parseNumber(s string) float64 {
	s = strings.TrimFunc(s, isSpace)
	if s == "" {
		return 0
	}
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		if n, err := strconv.ParseUint(s[2:], 16, 64); err == nil {
			return float64(n)
		}
		return 0
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
