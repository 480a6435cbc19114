package render

import (
	"fmt"
	"strings"

	"github.com/npillmayer/htmlview/dom/style"
	"github.com/npillmayer/htmlview/dom/style/css"
)

// Node is a node of the render tree. It is either a *TextRun, a *Block or
// an *Image. A nil Node stands for "nothing to render".
type Node interface {
	Key() int // position of the originating node within its siblings
	// withKey returns a shallow copy carrying key, or nil for a nil node.
	withKey(key int) Node
}

type keyed struct {
	key int
}

func (k keyed) Key() int { return k.key }
func (k *keyed) setKey(key int) { k.key = key }

// TextRun is an inline run of text. Leaf runs originate from text nodes and
// carry Text; runs originating from inline tags wrap Children.
type TextRun struct {
	keyed
	Tag      string    // originating tag name, empty for leaf runs
	Text     string    // decoded text content of a leaf run
	Style    style.Map // text styles of the enclosing tag, nil at top level
	OnPress  func()    // activation handler for link content, may be nil
	Children []Node
}

// Block is a block container, laying out its children in vertical order.
type Block struct {
	keyed
	Tag      string          // originating tag name
	Display  css.DisplayMode // display mode of the originating tag
	Style    style.Map       // layout styles only
	Width    float64         // maximum width constraint
	OnPress  func()          // activation handler, may be nil
	Children []Node
}

// ImageSource describes where to load an image from and its intrinsic size.
type ImageSource struct {
	URI    string
	Width  float64
	Height float64
}

// Image is an image leaf. Loading and scaling is left to the host's image
// primitive.
type Image struct {
	keyed
	Source   ImageSource
	Style    style.Map // width and height
	MaxWidth float64
}

// NewTextRun creates a leaf text run. Keys are assigned by the transformer.
func NewTextRun(text string, st style.Map) *TextRun {
	return &TextRun{Text: text, Style: st}
}

func (t *TextRun) withKey(key int) Node {
	if t == nil {
		return nil
	}
	c := *t
	c.key = key
	return &c
}

func (b *Block) withKey(key int) Node {
	if b == nil {
		return nil
	}
	c := *b
	c.key = key
	return &c
}

func (img *Image) withKey(key int) Node {
	if img == nil {
		return nil
	}
	c := *img
	c.key = key
	return &c
}

func (t *TextRun) String() string {
	if t.Tag == "" {
		return fmt.Sprintf("TextRun#%d(%q)", t.key, t.Text)
	}
	return fmt.Sprintf("TextRun#%d<%s> #ch=%d", t.key, t.Tag, len(t.Children))
}

func (b *Block) String() string {
	return fmt.Sprintf("Block#%d<%s> #ch=%d", b.key, b.Tag, len(b.Children))
}

func (img *Image) String() string {
	return fmt.Sprintf("Image#%d(%s %gx%g)", img.key, img.Source.URI, img.Source.Width, img.Source.Height)
}

// Children returns the children of a render node, or nil for leaves.
func Children(n Node) []Node {
	switch x := n.(type) {
	case *TextRun:
		return x.Children
	case *Block:
		return x.Children
	}
	return nil
}

// Compact returns the non-nil nodes of a list, keeping their order.
func Compact(nodes []Node) []Node {
	var c []Node
	for _, n := range nodes {
		if n != nil {
			c = append(c, n)
		}
	}
	return c
}

// Walk visits a list of render nodes depth first, parents before children.
// If f returns false, the children of a node are not visited.
func Walk(nodes []Node, f func(n Node, depth int) bool) {
	walk(nodes, 0, f)
}

func walk(nodes []Node, depth int, f func(Node, int) bool) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if f(n, depth) {
			walk(Children(n), depth+1, f)
		}
	}
}

// PlainText concatenates the text of all text runs in document order.
// Blocks are separated by a newline.
func PlainText(nodes []Node) string {
	var b strings.Builder
	var visit func([]Node)
	visit = func(nodes []Node) {
		for _, n := range nodes {
			switch x := n.(type) {
			case *TextRun:
				b.WriteString(x.Text)
				visit(x.Children)
			case *Block:
				if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
					b.WriteByte('\n')
				}
				visit(x.Children)
			}
		}
	}
	visit(nodes)
	return b.String()
}
