package render

import "github.com/npillmayer/htmlview/dom"

// CustomRenderer is a client hook which is called for every document node
// before default processing. Its result decides whether the default
// handling applies (UseDefault), or the node is replaced (Replace) or
// dropped (Suppress). A hook replacing a tag node replaces the whole
// subtree; the node's children are not visited.
type CustomRenderer func(node dom.Node, pos Position) Override

// Position tells a CustomRenderer where a node is located.
type Position struct {
	Index    int        // index within Siblings
	Depth    int        // nesting depth, 0 for top-level nodes
	Parent   *dom.Tag   // enclosing tag, nil for top-level nodes
	Siblings []dom.Node // the node list containing the node
}

type overrideKind uint8

const (
	useDefault overrideKind = iota
	replace
	suppress
)

// Override is the result of a CustomRenderer.
type Override struct {
	node Node
	kind overrideKind
}

// UseDefault lets the transformer process a node as usual.
func UseDefault() Override {
	return Override{kind: useDefault}
}

// Suppress renders nothing for a node.
func Suppress() Override {
	return Override{kind: suppress}
}

// Replace uses n as the render output for a node. Replace(nil) is
// equivalent to Suppress(), as is a nil *TextRun, *Block or *Image.
//
// The render tree holds a copy of n keyed with the node's position, so a
// hook may return the same node for several positions.
func Replace(n Node) Override {
	if n == nil {
		return Suppress()
	}
	return Override{kind: replace, node: n}
}

// IsDefault is true if the override does not change default processing.
func (o Override) IsDefault() bool {
	return o.kind == useDefault
}

// Node returns the replacement node, or nil.
func (o Override) Node() Node {
	return o.node
}

func (o Override) String() string {
	switch o.kind {
	case replace:
		return "Replace"
	case suppress:
		return "Suppress"
	}
	return "UseDefault"
}
