package renderdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/htmlview/dom"
	"github.com/npillmayer/htmlview/dom/style"
	"github.com/npillmayer/htmlview/render"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func renderString(t *testing.T, s string) []render.Node {
	nodes, err := dom.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	opts := render.DefaultOptions()
	opts.MaxWidth = 320
	opts.Styles = style.Table{"p": {"marginTop": style.Num(4), "color": style.Str("red")}}
	r, err := render.New(opts).Render(nodes)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestSprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlview.render")
	defer teardown()
	//
	r := renderString(t, `<p>Hello <a href="/x">World</a></p><img src="a.png" width="10" height="20">`)
	s := Sprint(r)
	t.Logf("render tree:\n%s", s)
	for _, want := range []string{`<p> #0 width=320 {marginTop: 4}`, `#0 "Hello" {color: "red"}`, `<a> #1 [link]`,
		`a.png 10x20 max=320`} {
		if !strings.Contains(s, want) {
			t.Errorf("expected tree print to contain %q", want)
		}
	}
}

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlview.render")
	defer teardown()
	//
	r := renderString(t, `<div><p>one two three four</p><span>x</span></div>`)
	var buf bytes.Buffer
	if err := ToGraphViz(r, &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	t.Logf("DOT:\n%s", dot)
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected a complete digraph")
	}
	if n := strings.Count(dot, "->"); n != 4 {
		t.Errorf("expected 4 edges, have %d", n)
	}
	if !strings.Contains(dot, `"\"one␣two␣th...\""`) {
		t.Errorf("expected shortened text label")
	}
}
