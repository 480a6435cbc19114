package dom

import (
	"errors"
	"testing"
	"testing/iotest"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlview.dom")
	defer teardown()
	//
	nodes, err := ParseString(`<p>Hello <b>World</b></p><!-- gone -->tail`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("expected 2 top-level nodes, have %d: %v", len(nodes), nodes)
	}
	p, ok := nodes[0].(*Tag)
	if !ok || p.Name != "p" {
		t.Fatalf("expected first node to be <p>, is %v", nodes[0])
	}
	if len(p.Children) != 2 {
		t.Errorf("expected <p> to have 2 children, has %d", len(p.Children))
	}
	if txt, ok := nodes[1].(*Text); !ok || txt.Data != "tail" {
		t.Errorf("expected trailing text node 'tail', is %v", nodes[1])
	}
}

func TestParseKeepsEntities(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlview.dom")
	defer teardown()
	//
	nodes, err := ParseString(`<a href="x&amp;y">a &lt; b</a>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := nodes[0].(*Tag)
	if href, _ := a.Attr("href"); href != "x&amp;y" {
		t.Errorf("expected href to stay entity-encoded, is %q", href)
	}
	if txt := a.Children[0].(*Text); txt.Data != "a &lt; b" {
		t.Errorf("expected text to stay entity-encoded, is %q", txt.Data)
	}
}

func TestParseReaderFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := Parse(iotest.ErrReader(boom))
	if err == nil {
		t.Fatal("expected parse to fail for a failing reader")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("expected error to match ErrParse, is %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected error to wrap reader failure, is %v", err)
	}
}

func TestFirstTextDescendant(t *testing.T) {
	hello := NewText("Hello")
	li := NewTag("li", nil, NewTag("p", nil, hello), NewText("later"))
	if got := FirstTextDescendant(li); got != hello {
		t.Errorf("expected to find 'Hello', found %v", got)
	}
	// the search follows first children only
	li = NewTag("li", nil, NewTag("img", nil), NewText("sibling"))
	if got := FirstTextDescendant(li); got != nil {
		t.Errorf("expected no text on leftmost path, found %v", got)
	}
	if got := FirstTextDescendant(NewTag("li", nil)); got != nil {
		t.Errorf("expected no text for empty <li>, found %v", got)
	}
}

func TestTextContent(t *testing.T) {
	p := NewTag("p", nil, NewText("a"), NewTag("i", nil, NewText("b")), NewText("c"))
	if s := TextContent(p); s != "abc" {
		t.Errorf("expected text content 'abc', is %q", s)
	}
}
