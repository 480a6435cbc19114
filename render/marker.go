package render

import "github.com/npillmayer/htmlview/dom"

// Bullet is prepended to the first text of a list item.
const Bullet = "• " + " "

// markerFor returns the text node which receives the bullet for a list
// item, following the chain of first children. If the chain does not end
// in a text node, the current marker target is kept.
func markerFor(li *dom.Tag, current *dom.Text) *dom.Text {
	if li.Name != "li" {
		return current
	}
	if t := dom.FirstTextDescendant(li); t != nil {
		return t
	}
	tracer().Debugf("list item without leading text, no bullet")
	return current
}

// prefixFor returns the marker prefix for a text node. A text node
// reached through nested list items still receives a single bullet.
func prefixFor(t *dom.Text, f frame) string {
	if f.marker != nil && f.marker == t {
		return Bullet
	}
	return ""
}
