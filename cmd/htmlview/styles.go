package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/htmlview/dom"
	"github.com/npillmayer/htmlview/dom/style"
	"github.com/spf13/cobra"
)

// stylesCommand prints the style table a document would be rendered with.
func stylesCommand() *cobra.Command {
	var styles string
	cmd := &cobra.Command{
		Use:   "styles [file.html]",
		Short: "Print the effective style table as YAML",
		Long: `Print the effective style table as YAML.

Styles from <style> elements of the document are merged with the styles
file, as the render command does. The output may be used as a styles file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()
			return runStyles(in, cmd.OutOrStdout(), styles)
		},
	}
	cmd.Flags().StringVarP(&styles, "styles", "s", "", "style table: .yaml/.yml or .css file")
	return cmd
}

func runStyles(in io.Reader, out io.Writer, path string) error {
	nodes, err := dom.Parse(in)
	if err != nil {
		return err
	}
	table, err := collectStyles(nodes, path)
	if err != nil {
		return err
	}
	return style.WriteYAML(out, table)
}

// openInput opens the file named by the only argument, or stdin.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", args[0], err)
	}
	return f, nil
}
