package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"docfield-mapper/internal/resolve"
)

func addFieldFlags(cmd *cobra.Command, f *fieldFlags) {
	cmd.Flags().StringVarP(&f.schema, "schema", "s", "", "CSV, XLSX or SQLite file whose columns are the expected fields")
	cmd.Flags().StringVar(&f.table, "table", "", "SQLite table to read columns from (default: first table)")
	cmd.Flags().StringArrayVarP(&f.fields, "field", "f", nil, "Expected field name; repeat to pass several (replaces --schema)")
}

type mapOptions struct {
	doc    string
	fields fieldFlags
	format string
	out    string
}

func newMapCmd(a *app) *cobra.Command {
	opts := &mapOptions{}

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Resolve the expected fields of one document",
		Example: `  docfield-mapper map --doc invoice.pdf --schema fields.csv
  docfield-mapper map --doc scan.txt -f "Invoice Number" -f "Total Amount" --format yaml
  docfield-mapper map --doc invoice.pdf --schema fields.db --table invoices --out mapped.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMap(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.doc, "doc", "d", "", "Document to read (PDF, DOCX, ODT, image or text)")
	addFieldFlags(cmd, &opts.fields)
	cmd.Flags().StringVar(&opts.format, "format", "", "Output format: table, yaml or csv (default from config)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the result to this file instead of stdout (.yaml, .csv or .xlsx)")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func runMap(cmd *cobra.Command, a *app, opts *mapOptions) error {
	format := opts.format
	if format == "" {
		format = a.config.Core.Format
	}

	if err := checkFormat(format); err != nil {
		return err
	}

	res, err := mapDocument(cmd, a, opts.doc, &opts.fields)
	if err != nil {
		return err
	}

	if opts.out != "" {
		if err := res.writeFile(opts.out, format); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.out)

		return nil
	}

	return res.write(cmd.OutOrStdout(), format, terminalWidth())
}

// mapDocument loads the fields and the document and resolves them.
func mapDocument(cmd *cobra.Command, a *app, docPath string, f *fieldFlags) (*result, error) {
	ctx := cmd.Context()

	fields, _, err := f.load(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := loadDocument(ctx, docPath, a.config.sourceOptions())
	if err != nil {
		return nil, err
	}

	assignments := resolve.Resolve(fields, doc.Lines)

	diags := doc.Diagnostics
	diags.Merge(resolve.Diagnose(assignments))

	resolved := 0
	for _, as := range assignments {
		if as.Resolved() {
			resolved++
		}
	}

	slog.Info("resolved document", "path", docPath, "fields", len(fields), "resolved", resolved)

	return &result{
		document:    docPath,
		schema:      f.schema,
		assignments: assignments,
		diagnostics: diags,
	}, nil
}
