package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'htmlview.style'
func tracer() tracing.Trace {
	return tracing.Select("htmlview.style")
}

// Value is a raw value for a style property. Style properties are either
// numeric, e.g.
//
//     marginTop: 4
//
// or textual, e.g.
//
//     color: "red"
//
// The zero value is the empty string value.
type Value struct {
	str   string
	num   float64
	isNum bool
}

// Num creates a numeric style value.
func Num(x float64) Value {
	return Value{num: x, isNum: true}
}

// Str creates a textual style value.
func Str(s string) Value {
	return Value{str: s}
}

// IsNumber is true for numeric values.
func (v Value) IsNumber() bool {
	return v.isNum
}

// Number returns the numeric value and true, or 0 and false for textual values.
func (v Value) Number() (float64, bool) {
	return v.num, v.isNum
}

// Interface returns either a float64 or a string.
func (v Value) Interface() interface{} {
	if v.isNum {
		return v.num
	}
	return v.str
}

func (v Value) String() string {
	if v.isNum {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	return v.str
}

// ValueOf converts a Go value to a style value. Integer and floating point
// types become numbers, everything else is formatted as a string.
func ValueOf(x interface{}) Value {
	switch n := x.(type) {
	case Value:
		return n
	case float64:
		return Num(n)
	case float32:
		return Num(float64(n))
	case int:
		return Num(float64(n))
	case int64:
		return Num(float64(n))
	case int32:
		return Num(float64(n))
	case uint:
		return Num(float64(n))
	case string:
		return Str(n)
	}
	return Str(fmt.Sprint(x))
}

// --- Style maps ------------------------------------------------------------

// Map is a flat mapping of style property names to values.
// nil is a legal (empty) style map.
type Map map[string]Value

// MapOf creates a style map from plain Go values, see ValueOf.
func MapOf(m map[string]interface{}) Map {
	sm := make(Map, len(m))
	for k, v := range m {
		sm[k] = ValueOf(v)
	}
	return sm
}

// Get returns the value for a property key.
func (m Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m[key]
	return v, ok
}

// Keys returns the property keys of m in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String is used for debugging. Properties are listed in key order.
func (m Map) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		v := m[k]
		if v.IsNumber() {
			fmt.Fprintf(&b, "%s: %s", k, v)
		} else {
			fmt.Fprintf(&b, "%s: %q", k, v.String())
		}
	}
	b.WriteByte('}')
	return b.String()
}

// Table holds a style map per tag name. It is read-only input to the
// render transform; missing entries are treated as empty maps.
type Table map[string]Map

// For returns the style map for a tag name, or nil.
func (t Table) For(tagname string) Map {
	if t == nil {
		return nil
	}
	return t[tagname]
}

// --- Partitioning ----------------------------------------------------------

// Layout-affecting property keys. Block containers may have vertical
// whitespace, inline content may not.
const (
	MarginTop       = "marginTop"
	MarginBottom    = "marginBottom"
	MarginVertical  = "marginVertical"
	PaddingTop      = "paddingTop"
	PaddingBottom   = "paddingBottom"
	PaddingVertical = "paddingVertical"
)

var layoutKeys = map[string]struct{}{
	MarginTop:       {},
	MarginBottom:    {},
	MarginVertical:  {},
	PaddingTop:      {},
	PaddingBottom:   {},
	PaddingVertical: {},
}

// IsLayoutKey is true for the fixed set of layout-affecting property keys.
func IsLayoutKey(key string) bool {
	_, ok := layoutKeys[key]
	return ok
}

// LayoutKeys returns the layout-affecting property keys in sorted order.
func LayoutKeys() []string {
	keys := make([]string, 0, len(layoutKeys))
	for k := range layoutKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Split partitions a style map into layout properties and all others.
// Both results are non-nil and disjoint; together they hold every key of m.
func Split(m Map) (layout Map, text Map) {
	layout, text = make(Map), make(Map)
	for k, v := range m {
		if IsLayoutKey(k) {
			layout[k] = v
		} else {
			text[k] = v
		}
	}
	return layout, text
}

// Partition looks up the styles for a tag name and splits them, see Split.
// A tag without a style entry yields two empty maps.
func Partition(tagname string, table Table) (layout Map, text Map) {
	return Split(table.For(tagname))
}

// LayoutStyles returns the layout subset of a tag's styles.
func LayoutStyles(tagname string, table Table) Map {
	layout, _ := Partition(tagname, table)
	return layout
}

// TextStyles returns the non-layout subset of a tag's styles.
func TextStyles(tagname string, table Table) Map {
	_, text := Partition(tagname, table)
	return text
}
