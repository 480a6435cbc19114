/*
Package cssom provides an object model for CSS stylesheets, reduced to what
the render transform needs.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

The render transform is configured with a style table: for each tag name a
flat mapping of property names to values (see package style). Clients may
write such a table by hand, load it from YAML, or derive it from a CSS
stylesheet. The latter is the business of this package.

There is no selector matching and no cascade. Only rules with plain type
selectors ("p", "h1, h2") contribute to the style table; later rules
override earlier ones. Property names are converted from CSS notation to
the camel-case notation of the host UI framework ("margin-top" becomes
"marginTop"), and pixel lengths become plain numbers.

CSS handling is de-coupled by introducing appropriate interfaces
StyleSheet and Rule. A concrete implementation may be found in sub-package
douceuradapter.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'htmlview.style'.
func tracer() tracing.Trace {
	return tracing.Select("htmlview.style")
}
