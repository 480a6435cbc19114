/*
Package css provides functionality for classifying HTML elements by their
CSS display mode.

Our target layout model knows just two primitives: block containers and
inline text runs. This package decides, per tag name, which of the two an
element maps to. There is no selector matching or cascading: the decision
is a lookup in the fixed set of HTML block-level elements, see

   https://developer.mozilla.org/en-US/docs/Web/HTML/Block-level_elements

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'htmlview.style'.
func tracer() tracing.Trace {
	return tracing.Select("htmlview.style")
}
