package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"docfield-mapper/internal/extract"
)

func newExtractCmd(a *app) *cobra.Command {
	var (
		docPath string
		dump    bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Show the label/value pairs mined from a document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := loadDocument(cmd.Context(), docPath, a.config.sourceOptions())
			if err != nil {
				return err
			}

			pairs := extract.Extract(doc.Lines)

			if dump {
				spew.Fdump(cmd.OutOrStdout(), pairs)

				return nil
			}

			rows := make([][]cell, len(pairs))
			for i, p := range pairs {
				rows[i] = []cell{
					plain(p.LabelRaw),
					styled(p.Layout.String(), dimStyle),
					plain(p.ValueRaw),
				}
			}

			renderTable(cmd.OutOrStdout(), []string{"LABEL", "LAYOUT", "VALUE"}, rows, terminalWidth())
			writeDiagnostics(cmd.OutOrStdout(), doc.Diagnostics)

			return nil
		},
	}

	cmd.Flags().StringVarP(&docPath, "doc", "d", "", "Document to read")
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the pairs with all internal fields")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}
