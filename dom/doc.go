/*
Package dom provides the input document tree for the render transform.

Status

Early draft—API may change frequently. Please stay patient.

Overview

A parsed HTML document is a forest of nodes. We only distinguish two kinds
of nodes: text nodes, which carry character data, and tag nodes, which carry
a tag name, attributes and an ordered list of children. Everything else an
HTML parser may produce (comments, doctypes, processing instructions) is
dropped when building the tree.

Node is a sealed interface, implemented by *Text and *Tag. Clients use a
type switch to discriminate:

    switch n := node.(type) {
    case *dom.Text:
        ...
    case *dom.Tag:
        ...
    }

Nodes do not link to their parents. Operations needing parent context
(e.g., whitespace trimming at block edges) receive the parent explicitly.

Entities

Text data and attribute values are kept in their raw, entity-encoded form.
Decoding is the business of the consumer of the tree, which guarantees that
entities are decoded exactly once.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'htmlview.dom'
func tracer() tracing.Trace {
	return tracing.Select("htmlview.dom")
}
