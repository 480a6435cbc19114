package css

import (
	"bytes"
	"sort"
)

// DisplayMode is a type for CSS property "display".
//
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	ListItemMode    DisplayMode = 0x0020 // CSS list-item display
	TableMode       DisplayMode = 0x0100 // CSS table display property (inner or outer)
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, ListItemMode, TableMode,
	InnerBlockMode, InnerInlineMode,
}

var modeNames = map[DisplayMode]string{
	NoMode:          "NoMode",
	DisplayNone:     "DisplayNone",
	BlockMode:       "BlockMode",
	InlineMode:      "InlineMode",
	ListItemMode:    "ListItemMode",
	TableMode:       "TableMode",
	InnerBlockMode:  "InnerBlockMode",
	InnerInlineMode: "InnerInlineMode",
}

func (disp DisplayMode) String() string {
	if s, ok := modeNames[disp]; ok {
		return s
	}
	return disp.FullString()
}

// Outer returns outer mode
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Inner returns inner mode
func (disp DisplayMode) Inner() DisplayMode {
	return disp & 0xfff0
}

// IsBlockLevel return true if it has outer display level of BlockMode.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp.Outer() == BlockMode
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var b bytes.Buffer
	first := true
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(modeNames[m])
		}
	}
	return b.String()
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	if disp.Contains(ListItemMode) {
		return "▣"
	} else if disp.Contains(TableMode) {
		return "▥"
	} else if disp.Contains(BlockMode) || disp.Contains(InnerBlockMode) {
		return "▩"
	} else if disp.Contains(InlineMode) || disp.Contains(InnerInlineMode) {
		return "►"
	} else if disp == NoMode {
		return "–"
	}
	return "?"
}

// --- Classification --------------------------------------------------------

// blockLevelTags holds the HTML elements which lay out as block containers.
var blockLevelTags = map[string]struct{}{
	"address": {}, "article": {}, "aside": {}, "blockquote": {}, "canvas": {},
	"dd": {}, "div": {}, "dl": {}, "fieldset": {}, "figcaption": {}, "figure": {},
	"footer": {}, "form": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {},
	"h6": {}, "header": {}, "hgroup": {}, "hr": {}, "li": {}, "main": {},
	"nav": {}, "noscript": {}, "ol": {}, "output": {}, "p": {}, "pre": {},
	"section": {}, "table": {}, "tfoot": {}, "ul": {}, "video": {},
}

// IsBlockLevelTag returns true iff an element with the given tag name is a
// block-level element.
func IsBlockLevelTag(tagname string) bool {
	_, ok := blockLevelTags[tagname]
	return ok
}

// BlockLevelTags returns the names of all block-level elements, sorted.
func BlockLevelTags() []string {
	tags := make([]string, 0, len(blockLevelTags))
	for t := range blockLevelTags {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// DisplayModeForTag returns the display mode of an element. Block-level
// elements are block containers (list items and tables with an additional
// flag), all other elements are inline.
func DisplayModeForTag(tagname string) DisplayMode {
	if !IsBlockLevelTag(tagname) {
		return InlineMode | InnerInlineMode
	}
	mode := BlockMode | InnerBlockMode
	switch tagname {
	case "li":
		mode.Set(ListItemMode)
	case "table":
		mode.Set(TableMode)
	}
	tracer().Debugf("display mode for <%s> is %s", tagname, mode.FullString())
	return mode
}
