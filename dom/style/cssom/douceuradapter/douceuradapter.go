/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"io"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/htmlview/dom"
	"github.com/npillmayer/htmlview/dom/style/cssom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'htmlview.style'.
func tracer() tracing.Trace {
	return tracing.Select("htmlview.style")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS source text into a stylesheet.
func Parse(source string) (*CSSStyles, error) {
	c, err := parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("cannot parse CSS: %w", err)
	}
	return Wrap(c), nil
}

// ParseReader reads CSS source text and parses it, see Parse.
func ParseReader(r io.Reader) (*CSSStyles, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(b))
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok || othercss == nil {
		tracer().Errorf("cannot append rules from stylesheet of type %T", other)
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the qualified rules of a stylesheet. At-rules (@media,
// @font-face, …) are not reported.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) string {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Value
		}
	}
	return ""
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ cssom.Rule = &Rule{}

// ExtractStyleElements searches a document tree for embedded <style>
// elements and returns their content as a single stylesheet. It returns nil
// if the document does not contain any style elements with rules.
func ExtractStyleElements(nodes []dom.Node) *CSSStyles {
	var sheet *CSSStyles
	var visit func(dom.Node)
	visit = func(n dom.Node) {
		tag, ok := n.(*dom.Tag)
		if !ok {
			return
		}
		if tag.Name == "style" {
			source := html.UnescapeString(dom.TextContent(tag))
			c, err := Parse(source)
			if err != nil {
				tracer().Errorf("ignoring malformed <style> element: %v", err)
				return
			}
			if sheet == nil {
				sheet = c
			} else {
				sheet.AppendRules(c)
			}
			return
		}
		for _, ch := range tag.Children {
			visit(ch)
		}
	}
	for _, n := range nodes {
		visit(n)
	}
	if sheet != nil && sheet.Empty() {
		return nil
	}
	return sheet
}
