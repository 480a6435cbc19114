/*
Package htmlview converts HTML documents into render trees for UI
frameworks which know only block containers and inline text runs.

Usage

    opts := render.DefaultOptions()
    opts.MaxWidth = 320
    opts.Styles = style.Table{
        "p": {"marginTop": style.Num(8), "color": style.Str("#333")},
    }
    opts.LinkHandler = func(url string) { open(url) }
    htmlview.Convert(strings.NewReader(doc), opts, func(err error, tree []render.Node) {
        ...
    })

Parsing is done by package dom, the transform by package render. Style
tables may be loaded from YAML (package style) or derived from CSS
(packages cssom and douceuradapter).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlview

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmlview.render'.
func tracer() tracing.Trace {
	return tracing.Select("htmlview.render")
}
