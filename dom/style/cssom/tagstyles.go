package cssom

import (
	"errors"
	"strconv"
	"strings"

	"github.com/npillmayer/htmlview/dom/style"
)

// ErrNoRules is returned when a stylesheet does not contribute any styles.
var ErrNoRules = errors.New("stylesheet contains no usable rules")

// TagStyles converts a stylesheet into a style table.
// Rules with selectors other than plain tag names are skipped. For each tag,
// properties of later rules override those of earlier rules.
func TagStyles(sheet StyleSheet) (style.Table, error) {
	if sheet == nil || sheet.Empty() {
		return nil, ErrNoRules
	}
	table := make(style.Table)
	for _, rule := range sheet.Rules() {
		tags := TagSelectors(rule.Selector())
		if len(tags) == 0 {
			tracer().Debugf("skipping CSS rule with selector %q", rule.Selector())
			continue
		}
		for _, tag := range tags {
			m := table[tag]
			if m == nil {
				m = make(style.Map)
				table[tag] = m
			}
			for _, prop := range rule.Properties() {
				m[CamelCase(prop)] = ValueFromCSS(rule.Value(prop))
			}
		}
	}
	if len(table) == 0 {
		return nil, ErrNoRules
	}
	return table, nil
}

// TagSelectors splits a selector group into tag names. If any selector of
// the group is not a plain tag name, nil is returned.
func TagSelectors(prelude string) []string {
	var tags []string
	for _, sel := range strings.Split(prelude, ",") {
		sel = strings.ToLower(strings.TrimSpace(sel))
		if !isTagName(sel) {
			return nil
		}
		tags = append(tags, sel)
	}
	return tags
}

func isTagName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// CamelCase converts a CSS property name to camel case, e.g.,
//
//    CamelCase("margin-top") => "marginTop"
//
func CamelCase(prop string) string {
	parts := strings.Split(strings.TrimSpace(prop), "-")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(strings.ToLower(p))
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(strings.ToLower(p[1:]))
	}
	return b.String()
}

// ValueFromCSS converts a raw CSS value into a style value. Plain numbers
// and pixel lengths become numbers, everything else is kept as a string.
func ValueFromCSS(raw string) style.Value {
	v := strings.TrimSpace(raw)
	num := strings.TrimSuffix(v, "px")
	if x, err := strconv.ParseFloat(num, 64); err == nil {
		return style.Num(x)
	}
	return style.Str(v)
}
