/*
Package renderdbg implements helpers to debug a render tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package renderdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/htmlview/render"
	"github.com/xlab/treeprint"
)

// --- Tree print ------------------------------------------------------------

// Sprint returns an indented textual representation of a render tree.
func Sprint(nodes []render.Node) string {
	printer := treeprint.New()
	for _, n := range nodes {
		printNode(printer, n)
	}
	return printer.String()
}

func printNode(printer treeprint.Tree, n render.Node) {
	switch x := n.(type) {
	case *render.Block:
		label := fmt.Sprintf("<%s> #%d width=%g", x.Tag, x.Key(), x.Width)
		if len(x.Style) > 0 {
			label += " " + x.Style.String()
		}
		if x.OnPress != nil {
			label += " [link]"
		}
		branch := printer.AddMetaBranch(x.Display.Symbol(), label)
		for _, ch := range x.Children {
			printNode(branch, ch)
		}
	case *render.TextRun:
		if x.Tag == "" {
			label := fmt.Sprintf("#%d %q", x.Key(), x.Text)
			if len(x.Style) > 0 {
				label += " " + x.Style.String()
			}
			printer.AddMetaNode("T", label)
			return
		}
		label := fmt.Sprintf("<%s> #%d", x.Tag, x.Key())
		if x.OnPress != nil {
			label += " [link]"
		}
		branch := printer.AddMetaBranch("►", label)
		for _, ch := range x.Children {
			printNode(branch, ch)
		}
	case *render.Image:
		printer.AddMetaNode("I", fmt.Sprintf("#%d %s %gx%g max=%g", x.Key(),
			x.Source.URI, x.Source.Width, x.Source.Height, x.MaxWidth))
	}
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a render tree. The diagram is in
// GraphViz (DOT) format.
func ToGraphViz(nodes []render.Node, w io.Writer) error {
	tmpl, err := template.New("render").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("rendernode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(renderNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("renderedge").Parse(renderEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[render.Node]string, 256)
	for _, n := range nodes {
		if err = dotNodes(n, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type node struct {
	N     render.Node
	Name  string
	Kind  string
	Label string
}

type edge struct {
	N1, N2 node
}

func dotNodes(n render.Node, w io.Writer, dict map[render.Node]string, gparams *graphParamsType) error {
	if n == nil {
		return nil
	}
	parent := dotName(n, dict)
	if err := gparams.NodeTmpl.Execute(w, &parent); err != nil {
		return err
	}
	for _, ch := range render.Children(n) {
		if err := dotNodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{parent, dotName(ch, dict)}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func dotName(n render.Node, dict map[render.Node]string) node {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	dn := node{N: n, Name: name}
	switch x := n.(type) {
	case *render.Block:
		dn.Kind, dn.Label = "block", x.Tag
	case *render.TextRun:
		if x.Tag == "" {
			dn.Kind, dn.Label = "text", x.Text
		} else {
			dn.Kind, dn.Label = "inline", x.Tag
		}
	case *render.Image:
		dn.Kind, dn.Label = "image", x.Source.URI
	}
	return dn
}

func shortText(s string) string {
	r := []rune(s)
	if len(r) > 10 {
		s = string(r[:10]) + "..."
	}
	s = strings.Replace(s, `"`, `\"`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return `"\"` + s + `\""`
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const renderNodeTmpl = `{{ if eq .Kind "text" }}{{ .Name }}	[ label={{ shortstring .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if eq .Kind "image" }}{{ .Name }}	[ label={{ printf "%q" .Label }} shape=note style=filled fillcolor=khaki1 ] ;
{{ else if eq .Kind "inline" }}{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightyellow ] ;
{{ else }}{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box3d style=filled fillcolor=lightblue3 ] ;
{{ end }}`

const renderEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
