/*
Command htmlview renders an HTML document into a render tree and prints it,
either as an indented tree or as a GraphViz DOT graph.

    htmlview render page.html --styles styles.yaml --max-width 320
    htmlview render --format dot < page.html | dot -Tsvg > tree.svg

Styles may be given as a YAML table (tag name to property map) or as a CSS
file with plain tag selectors. <style> elements within the document are
applied first, then the styles file.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "htmlview",
		Short:         "Convert HTML into block/inline render trees",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(renderCommand())
	root.AddCommand(stylesCommand())
	root.AddCommand(&cobra.Command{
		Use:   "tags",
		Short: "List the tags rendered as blocks",
		Run: func(cmd *cobra.Command, args []string) {
			for _, tag := range blockTags() {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
		},
	})
	return root
}
