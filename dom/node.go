package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Node is a node of the input document tree, either a *Text or a *Tag.
type Node interface {
	fmt.Stringer
	isNode()
}

// Text is a node carrying character data.
type Text struct {
	Data string // raw character data, entities not yet decoded
}

// NewText creates a text node.
func NewText(data string) *Text {
	return &Text{Data: data}
}

func (t *Text) isNode() {}

func (t *Text) String() string {
	return fmt.Sprintf("#text(%q)", t.Data)
}

// Tag is an element node.
type Tag struct {
	Name     string            // lower-case tag name, e.g. "p"
	Attrs    map[string]string // attribute values, entities not yet decoded
	Children []Node            // ordered children
}

// NewTag creates a tag node. attrs may be nil.
func NewTag(name string, attrs map[string]string, children ...Node) *Tag {
	if attrs == nil {
		attrs = make(map[string]string)
	}
	return &Tag{Name: name, Attrs: attrs, Children: children}
}

func (t *Tag) isNode() {}

func (t *Tag) String() string {
	return fmt.Sprintf("<%s #ch=%d>", t.Name, len(t.Children))
}

// Attr returns the value of attribute key and whether it is present.
func (t *Tag) Attr(key string) (string, bool) {
	if t == nil || t.Attrs == nil {
		return "", false
	}
	v, ok := t.Attrs[key]
	return v, ok
}

// AddChild appends children to t and returns t to allow for chaining.
func (t *Tag) AddChild(ch ...Node) *Tag {
	for _, c := range ch {
		if c != nil {
			t.Children = append(t.Children, c)
		}
	}
	return t
}

// FirstTextDescendant follows the chain of first children, starting below n,
// until it finds a text node. It does not look at later siblings. If the
// chain ends without reaching a text node, nil is returned.
func FirstTextDescendant(n *Tag) *Text {
	var cur Node = n
	for {
		tag, ok := cur.(*Tag)
		if !ok || len(tag.Children) == 0 {
			return nil
		}
		cur = tag.Children[0]
		if t, ok := cur.(*Text); ok {
			return t
		}
	}
}

// TextContent returns the concatenated character data of n and all its
// descendents.
func TextContent(n Node) string {
	var b strings.Builder
	var collect func(Node)
	collect = func(n Node) {
		switch x := n.(type) {
		case *Text:
			b.WriteString(x.Data)
		case *Tag:
			for _, ch := range x.Children {
				collect(ch)
			}
		}
	}
	collect(n)
	return b.String()
}
