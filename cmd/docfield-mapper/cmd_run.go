package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"docfield-mapper/internal/report"
	"docfield-mapper/internal/tool"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run JOB.yaml",
		Short: "Run a YAML job file",
		Long: `Run a YAML job file. A job names the document, the schema or an inline
list of fields, and the output file:

  document: invoice.pdf
  schema: fields.xlsx
  output: invoice.report.yaml

Relative paths are resolved against the job file's directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := report.LoadJob(args[0])
			if err != nil {
				return err
			}

			f := &fieldFlags{schema: job.Schema, table: job.Table, fields: job.Fields}

			res, err := mapDocument(cmd, a, job.Document, f)
			if err != nil {
				return err
			}

			if err := res.writeFile(job.Output, formatYAML); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", job.Output)

			return nil
		},
	}
}

func newServeCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the resolve_fields and extract_pairs MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tool.ServeStdio(cmd.Context(), FullVersion)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// Skip config and log file setup.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", appName, FullVersion)
		},
	}
}
