package css

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBlockLevelTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlview.style")
	defer teardown()
	//
	tags := BlockLevelTags()
	if len(tags) != 35 {
		t.Fatalf("expected 35 block-level tags, have %d", len(tags))
	}
	for _, tag := range tags {
		mode := DisplayModeForTag(tag)
		if !mode.IsBlockLevel() {
			t.Errorf("expected <%s> to be block-level, is %s", tag, mode.FullString())
		}
	}
}

func TestInlineTags(t *testing.T) {
	for _, tag := range []string{"span", "b", "i", "em", "a"} {
		if IsBlockLevelTag(tag) {
			t.Errorf("expected <%s> to be inline", tag)
		}
		if mode := DisplayModeForTag(tag); mode.IsBlockLevel() || !mode.Contains(InlineMode) {
			t.Errorf("expected <%s> to be in inline mode, is %s", tag, mode.FullString())
		}
	}
}

func TestDisplayModeFlags(t *testing.T) {
	li := DisplayModeForTag("li")
	if !li.Contains(ListItemMode) || !li.IsBlockLevel() {
		t.Errorf("expected <li> to be a block-level list item, is %s", li.FullString())
	}
	if li.Symbol() != "▣" {
		t.Errorf("expected list item symbol, have %s", li.Symbol())
	}
	table := DisplayModeForTag("table")
	if !table.Contains(TableMode) {
		t.Errorf("expected <table> to have table mode, is %s", table.FullString())
	}
	if s := DisplayModeForTag("p").FullString(); s != "BlockMode InnerBlockMode" {
		t.Errorf("unexpected display mode string for <p>: %q", s)
	}
	if InlineMode.String() != "InlineMode" {
		t.Errorf("unexpected name for inline mode: %q", InlineMode.String())
	}
}

func TestOuterInner(t *testing.T) {
	li := DisplayModeForTag("li")
	if li.Outer() != BlockMode {
		t.Errorf("expected outer mode of <li> to be BlockMode, is %s", li.Outer().FullString())
	}
	if !li.Inner().Contains(ListItemMode) || li.Inner().Contains(BlockMode) {
		t.Errorf("expected inner mode of <li> to exclude the outer block flag, is %s", li.Inner().FullString())
	}
	span := DisplayModeForTag("span")
	if span.Outer() != InlineMode || span.Inner() != InnerInlineMode {
		t.Errorf("unexpected split of <span> mode: %s / %s", span.Outer(), span.Inner())
	}
}
