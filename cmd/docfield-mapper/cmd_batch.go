package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"docfield-mapper/internal/diagnostic"
	"docfield-mapper/internal/resolve"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		fields      fieldFlags
		concurrency int
		outDir      string
	)

	cmd := &cobra.Command{
		Use:   "batch DOC...",
		Short: "Resolve the expected fields in many documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			names, _, err := fields.load(ctx)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("concurrency") {
				concurrency = a.config.Batch.Concurrency
			}

			var failed diagnostic.Diagnostics

			rows := make([][]cell, len(args))
			items := make([]resolve.BatchItem, 0, len(args))
			docs := make([]*result, 0, len(args))
			pos := make([]int, 0, len(args))

			for i, path := range args {
				doc, err := loadDocument(ctx, path, a.config.sourceOptions())
				if err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}

					slog.Error("skipping document", "path", path, "error", err)
					failed.AddError(diagnostic.CodeLoadFailed, fmt.Sprintf("%s: %v", path, err), "")
					rows[i] = []cell{plain(path), styled("failed", missingStyle)}

					continue
				}

				items = append(items, resolve.BatchItem{ID: path, Lines: doc.Lines})
				docs = append(docs, &result{document: path, schema: fields.schema, diagnostics: doc.Diagnostics})
				pos = append(pos, i)
			}

			results, err := resolve.ResolveBatch(ctx, names, items, concurrency)
			if err != nil {
				return fmt.Errorf("batch failed: %w", err)
			}

			for i, br := range results {
				res := docs[i]
				res.assignments = br.Assignments
				res.diagnostics.Merge(resolve.Diagnose(br.Assignments))

				resolved := 0
				for _, as := range br.Assignments {
					if as.Resolved() {
						resolved++
					}
				}

				row := []cell{plain(br.ID), plain(fmt.Sprintf("%d/%d", resolved, len(names)))}

				if outDir != "" {
					out := filepath.Join(outDir, reportName(br.ID))
					if err := res.writeFile(out, formatYAML); err != nil {
						return err
					}

					row = append(row, plain(out))
				}

				rows[pos[i]] = row
			}

			header := []string{"DOCUMENT", "RESOLVED"}
			if outDir != "" {
				header = append(header, "REPORT")
			}

			slog.Info("batch finished", "documents", len(results), "failed", len(failed.Errors), "concurrency", concurrency)
			renderTable(cmd.OutOrStdout(), header, rows, terminalWidth())

			if failed.HasErrors() {
				writeDiagnostics(cmd.ErrOrStderr(), failed)
			}

			return failed.Error()
		},
	}

	addFieldFlags(cmd, &fields)
	cmd.Flags().IntVarP(&concurrency, "concurrency", "j", 4, "Documents resolved in parallel")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Write one YAML report per document into this directory")

	return cmd
}

// reportName derives a report file name from a document path.
func reportName(docPath string) string {
	base := filepath.Base(docPath)

	return strings.TrimSuffix(base, filepath.Ext(base)) + ".report.yaml"
}
