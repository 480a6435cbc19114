package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/htmlview/dom"
	"github.com/npillmayer/htmlview/dom/style"
	"github.com/npillmayer/htmlview/dom/style/css"
	"github.com/npillmayer/htmlview/dom/style/cssom"
	"github.com/npillmayer/htmlview/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/htmlview/render"
	"github.com/npillmayer/htmlview/render/renderdbg"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

var traceKeys = []string{"htmlview.dom", "htmlview.style", "htmlview.render"}

type renderFlags struct {
	styles   string
	maxWidth float64
	maxDepth int
	format   string
	trace    bool
	links    bool
}

// renderCommand creates the render command, converting a single document.
func renderCommand() *cobra.Command {
	var flags renderFlags
	cmd := &cobra.Command{
		Use:   "render [file.html]",
		Short: "Render an HTML document into a render tree",
		Long: `Render an HTML document into a render tree.

The document is read from the given file or from stdin. The resulting tree
is printed as an indented tree (--format tree) or as a GraphViz DOT graph
(--format dot). With --links, every link target is listed after the tree.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch flags.format {
			case "tree", "dot":
			default:
				return fmt.Errorf("unknown output format %q, expected tree or dot", flags.format)
			}
			in, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()
			return runRender(in, cmd.OutOrStdout(), flags)
		},
	}
	cmd.Flags().StringVarP(&flags.styles, "styles", "s", "", "style table: .yaml/.yml or .css file")
	cmd.Flags().Float64Var(&flags.maxWidth, "max-width", 0, "maximum width for blocks and images")
	cmd.Flags().IntVar(&flags.maxDepth, "max-depth", render.DefaultMaxDepth, "maximum nesting depth, negative to disable")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "tree", "output format: tree or dot")
	cmd.Flags().BoolVar(&flags.trace, "trace", false, "enable debug tracing")
	cmd.Flags().BoolVar(&flags.links, "links", false, "list link targets")
	return cmd
}

func runRender(in io.Reader, out io.Writer, flags renderFlags) error {
	if flags.trace {
		for _, key := range traceKeys {
			tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
		}
	}
	nodes, err := dom.Parse(in)
	if err != nil {
		return err
	}
	styles, err := collectStyles(nodes, flags.styles)
	if err != nil {
		return err
	}
	var links []string
	opts := render.DefaultOptions()
	opts.Styles = styles
	opts.MaxWidth = flags.maxWidth
	opts.MaxDepth = flags.maxDepth
	opts.LinkHandler = func(url string) { links = append(links, url) }
	tree, err := render.New(opts).Render(nodes)
	if err != nil {
		return err
	}
	if flags.format == "dot" {
		if err := renderdbg.ToGraphViz(tree, out); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, renderdbg.Sprint(tree))
	}
	if flags.links {
		render.Walk(tree, func(n render.Node, depth int) bool {
			switch n := n.(type) {
			case *render.TextRun:
				if n.OnPress != nil {
					n.OnPress()
				}
			case *render.Block:
				if n.OnPress != nil {
					n.OnPress()
				}
			}
			return true
		})
		for _, l := range links {
			fmt.Fprintln(out, l)
		}
	}
	return nil
}

// collectStyles merges styles from <style> elements with the styles file.
// Entries from the file win.
func collectStyles(nodes []dom.Node, path string) (style.Table, error) {
	table := style.Table{}
	if sheet := douceuradapter.ExtractStyleElements(nodes); sheet != nil {
		embedded, err := cssom.TagStyles(sheet)
		if err != nil && !errors.Is(err, cssom.ErrNoRules) {
			return nil, err
		}
		merge(table, embedded)
	}
	if path == "" {
		return table, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open styles %s: %w", path, err)
	}
	defer f.Close()
	var fromFile style.Table
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		fromFile, err = style.LoadYAML(f)
	case ".css":
		var sheet *douceuradapter.CSSStyles
		if sheet, err = douceuradapter.ParseReader(f); err == nil {
			fromFile, err = cssom.TagStyles(sheet)
		}
	default:
		err = fmt.Errorf("unknown styles format %q", filepath.Ext(path))
	}
	if err != nil && !errors.Is(err, cssom.ErrNoRules) {
		return nil, fmt.Errorf("load styles %s: %w", path, err)
	}
	merge(table, fromFile)
	return table, nil
}

func merge(dst, src style.Table) {
	for tag, m := range src {
		if dst[tag] == nil {
			dst[tag] = style.Map{}
		}
		for k, v := range m {
			dst[tag][k] = v
		}
	}
}

func blockTags() []string {
	return css.BlockLevelTags()
}
