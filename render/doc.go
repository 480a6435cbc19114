/*
Package render transforms an HTML document tree into a tree of render nodes.

Overview

The target is a constrained UI layout model which distinguishes only two
primitives: a block container and an inline text run. Images are a third
kind of leaf. The transform walks the document tree depth first and
produces a parallel tree of render nodes:

   <p>Hello <b>World</b></p>   →   Block(p)
                                     ├── TextRun "Hello "
                                     └── TextRun(b)
                                           └── TextRun "World"

Per node, the transform

   - lets a client supplied override hook replace the default handling,
   - collapses whitespace in text and trims it at the edges of blocks,
   - classifies tags as block-level or inline (see package css),
   - injects a bullet marker into the first text of a list item,
   - resolves image sizes and link activation handlers,
   - partitions the configured styles of a tag into layout properties
     (for block containers) and text properties (for text runs).

Text nodes which collapse to nothing produce no render node. Transform
reports them as nil entries; child lists stored within render nodes are
compacted, with every node keeping its position as Key().

The input tree is never modified. Derived per-node information (whether
a parent is a block, which text receives a list marker) is threaded through
the recursion instead.

Concurrency

A Transformer is safe for concurrent use, as long as clients do not
modify the document tree or the options while transforming. Link
handlers and override hooks are called synchronously from the goroutine
calling Transform.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmlview.render'.
func tracer() tracing.Trace {
	return tracing.Select("htmlview.render")
}
