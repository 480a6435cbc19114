package style_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/htmlview/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionDisjointAndExhaustive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlview.style")
	defer teardown()
	//
	table := style.Table{
		"p": style.MapOf(map[string]interface{}{"marginTop": 4, "color": "red"}),
	}
	layout, text := style.Partition("p", table)
	assert.Equal(t, style.Map{"marginTop": style.Num(4)}, layout)
	assert.Equal(t, style.Map{"color": style.Str("red")}, text)
}

func TestPartitionAllLayoutKeys(t *testing.T) {
	m := style.Map{}
	for _, k := range style.LayoutKeys() {
		m[k] = style.Num(1)
	}
	m["fontSize"] = style.Num(12)
	layout, text := style.Split(m)
	assert.Len(t, layout, 6)
	assert.Len(t, text, 1)
	_, ok := text.Get("fontSize")
	assert.True(t, ok)
}

func TestPartitionMissingEntry(t *testing.T) {
	layout, text := style.Partition("div", nil)
	assert.NotNil(t, layout)
	assert.NotNil(t, text)
	assert.Empty(t, layout)
	assert.Empty(t, text)
	layout, text = style.Partition("div", style.Table{"p": {"color": style.Str("red")}})
	assert.Empty(t, layout)
	assert.Empty(t, text)
}

func TestValueConversion(t *testing.T) {
	v := style.ValueOf(12)
	x, ok := v.Number()
	assert.True(t, ok)
	assert.Equal(t, 12.0, x)
	assert.Equal(t, "12", v.String())
	s := style.ValueOf("bold")
	assert.False(t, s.IsNumber())
	assert.Equal(t, "bold", s.Interface())
}

func TestMapString(t *testing.T) {
	m := style.Map{"color": style.Str("red"), "marginTop": style.Num(4)}
	assert.Equal(t, `{color: "red", marginTop: 4}`, m.String())
}

func TestLoadYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "htmlview.style")
	defer teardown()
	//
	doc := `
p:
  marginTop: 4
  lineHeight: 1.5
  color: red
a:
  color: "#0000ff"
`
	table, err := style.LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, table, 2)
	mt, ok := table["p"]["marginTop"].Number()
	assert.True(t, ok)
	assert.Equal(t, 4.0, mt)
	lh, _ := table["p"]["lineHeight"].Number()
	assert.Equal(t, 1.5, lh)
	assert.Equal(t, style.Str("red"), table["p"]["color"])
	assert.Equal(t, style.Str("#0000ff"), table["a"]["color"])
}

func TestLoadYAMLEmpty(t *testing.T) {
	table, err := style.LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestLoadYAMLMalformed(t *testing.T) {
	_, err := style.LoadYAML(strings.NewReader("p:\n  margin: [1, 2]\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, style.ErrStyleFormat), "error is %v", err)
	_, err = style.LoadYAML(strings.NewReader("- p\n- q\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, style.ErrStyleFormat), "error is %v", err)
}

func TestWriteYAML(t *testing.T) {
	table := style.Table{
		"p": {"marginTop": style.Num(4), "color": style.Str("red"), "zIndex": style.Str("7")},
	}
	var buf bytes.Buffer
	require.NoError(t, style.WriteYAML(&buf, table))
	t.Logf("YAML:\n%s", buf.String())
	assert.Contains(t, buf.String(), "marginTop: 4")
	assert.Contains(t, buf.String(), "color: red")
	back, err := style.LoadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, table, back)
}
