package htmlview

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/npillmayer/htmlview/dom"
	"github.com/npillmayer/htmlview/dom/style"
	"github.com/npillmayer/htmlview/render"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const article = `
<h1>Title</h1>
<p>Some <b>bold</b> and <a href="https://example.com/?a=1&amp;b=2">linked</a> text.</p>
<ul>
  <li>first</li>
  <li>second</li>
</ul>
<img src="pic.png" data-width="64" data-height="48">
`

func TestConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlview.render")
	defer teardown()
	//
	var links []string
	opts := render.DefaultOptions()
	opts.MaxWidth = 320
	opts.Styles = style.Table{"h1": {"marginBottom": style.Num(10), "fontSize": style.Num(24)}}
	opts.LinkHandler = func(url string) { links = append(links, url) }
	calls := 0
	var tree []render.Node
	Convert(strings.NewReader(article), opts, func(err error, result []render.Node) {
		calls++
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tree = result
	})
	if calls != 1 {
		t.Fatalf("expected completion to be called once, was called %d times", calls)
	}
	if len(tree) != 4 {
		t.Fatalf("expected 4 top-level render nodes, have %d", len(tree))
	}
	h1 := tree[0].(*render.Block)
	if v, _ := h1.Style.Get("marginBottom"); !v.IsNumber() {
		t.Errorf("expected <h1> to have a numeric bottom margin, has %v", h1.Style)
	}
	if _, ok := h1.Style.Get("fontSize"); ok {
		t.Errorf("expected font size to be dropped from block style")
	}
	if fs, _ := h1.Children[0].(*render.TextRun).Style.Get("fontSize"); fs.String() != "24" {
		t.Errorf("expected title text to have font size 24, has %v", fs)
	}
	render.Walk(tree, func(n render.Node, depth int) bool {
		if run, ok := n.(*render.TextRun); ok && run.OnPress != nil {
			run.OnPress()
		}
		return true
	})
	if len(links) != 1 || links[0] != "https://example.com/?a=1&b=2" {
		t.Errorf("expected one decoded link, have %v", links)
	}
	text := render.PlainText(tree)
	t.Logf("text =\n%s", text)
	if !strings.Contains(text, "•  first") || !strings.Contains(text, "•  second") {
		t.Errorf("expected bulleted list items")
	}
	if img, ok := tree[3].(*render.Image); !ok || img.Source.Width != 64 || img.Source.Height != 48 {
		t.Errorf("expected 64x48 image, have %v", tree[3])
	}
}

func TestConvertParseErrorCallsOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlview.render")
	defer teardown()
	//
	calls := 0
	Convert(iotest.ErrReader(errors.New("disk on fire")), render.DefaultOptions(),
		func(err error, tree []render.Node) {
			calls++
			if !errors.Is(err, dom.ErrParse) {
				t.Errorf("expected parse error, have %v", err)
			}
			if tree != nil {
				t.Errorf("expected no tree alongside an error")
			}
		})
	if calls != 1 {
		t.Errorf("expected completion to be called once, was called %d times", calls)
	}
}

func TestConvertDepthError(t *testing.T) {
	opts := render.DefaultOptions()
	opts.MaxDepth = 2
	doc := strings.Repeat("<div>", 4) + strings.Repeat("</div>", 4)
	var gotErr error
	Convert(strings.NewReader(doc), opts, func(err error, tree []render.Node) {
		gotErr = err
	})
	if !errors.Is(gotErr, render.ErrMaxDepth) {
		t.Errorf("expected depth error, have %v", gotErr)
	}
}

func TestRenderSkipsStyleAndScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlview.render")
	defer teardown()
	//
	doc := "<style>p { color: red }</style><script>alert(1)</script><template><p>t</p></template><p>x</p>"
	tree, err := Render(strings.NewReader(doc), render.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(tree) != 1 {
		t.Fatalf("expected only the paragraph to be rendered, have %d nodes", len(tree))
	}
	if text := render.PlainText(tree); text != "x" {
		t.Errorf("expected text %q, have %q", "x", text)
	}
	if tree[0].Key() != 3 {
		t.Errorf("expected paragraph to keep its sibling index 3, has %d", tree[0].Key())
	}
}
