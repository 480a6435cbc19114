package render

import "strings"

// isSpace matches HTML's ASCII whitespace, the only characters which
// collapse in inline formatting. Vertical tabs and Unicode spaces (NBSP,
// em space, ...) are content and kept.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// CollapseWhitespace replaces every run of whitespace with a single space.
func CollapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if isSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeText computes the text to render for a text node: whitespace
// runs in data are collapsed, prefix is prepended, and if trim is set,
// leading and trailing whitespace is removed. If nothing remains,
// NormalizeText returns false.
//
// The prefix is not subject to collapsing.
func NormalizeText(data string, prefix string, trim bool) (string, bool) {
	text := prefix + CollapseWhitespace(data)
	if trim {
		text = strings.TrimFunc(text, isSpace)
	}
	return text, text != ""
}

// trimsAt decides if a text node is trimmed: top-level text nodes always
// are, text nodes within a block only if they are the first or last child.
// Whitespace between inline siblings is significant.
func trimsAt(f frame, index, count int) bool {
	if f.parent == nil {
		return true
	}
	return f.parentIsBlock && (index == 0 || index == count-1)
}
