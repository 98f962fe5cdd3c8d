package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"docfield-mapper/internal/match"
	"docfield-mapper/internal/resolve"
)

func newExplainCmd(a *app) *cobra.Command {
	var (
		docPath string
		fields  fieldFlags
		top     int
	)

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show the ranked candidate labels behind each assignment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			names, _, err := fields.load(ctx)
			if err != nil {
				return err
			}

			doc, err := loadDocument(ctx, docPath, a.config.sourceOptions())
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("top") {
				top = a.config.Core.ExplainTop
			}

			writeExplanations(cmd.OutOrStdout(), resolve.Explain(names, doc.Lines, top), terminalWidth())

			return nil
		},
	}

	cmd.Flags().StringVarP(&docPath, "doc", "d", "", "Document to read")
	addFieldFlags(cmd, &fields)
	cmd.Flags().IntVarP(&top, "top", "n", 3, "Number of candidates to show per field (-1 for all)")
	_ = cmd.MarkFlagRequired("doc")

	return cmd
}

func score(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}

func writeExplanations(w io.Writer, explanations []resolve.Explanation, width int) {
	for i, e := range explanations {
		if i > 0 {
			fmt.Fprintln(w)
		}

		as := e.Assignment

		fmt.Fprintf(w, "%s %s %s", headerStyle.Sprint(as.Field), dimStyle.Sprint("->"), as.Value)

		if as.Resolved() {
			fmt.Fprintf(w, " (%s", strategyStyle(as).style.Sprint(as.Strategy.String()))

			if as.Line > 0 {
				fmt.Fprintf(w, ", line %d", as.Line)
			}

			fmt.Fprint(w, ")")
		}

		if e.Ambiguous {
			fmt.Fprint(w, " ", fallbackStyle.Sprint("[ambiguous]"))
		}

		fmt.Fprintln(w)

		if len(e.Candidates) == 0 {
			fmt.Fprintln(w, dimStyle.Sprint("  no candidate pairs"))

			continue
		}

		accepted := e.Candidates.Accepted()

		rows := make([][]cell, len(e.Candidates))
		for j, c := range e.Candidates {
			total := plain(score(c.Score))
			if c.Score >= match.AcceptThreshold {
				total = styled(score(c.Score), resolvedStyle)
			}

			marker := "  "
			if accepted != nil && accepted.Index == c.Index {
				marker = "* "
			}

			rows[j] = []cell{
				plain(marker + c.Label),
				total,
				plain(score(c.Breakdown.Exact)),
				plain(score(c.Breakdown.Containment)),
				plain(score(c.Breakdown.TokenSet)),
				plain(score(c.Breakdown.EditSimilarity)),
			}
		}

		renderTable(w, []string{"  LABEL", "SCORE", "EXACT", "CONTAIN", "TOKENS", "EDIT"}, rows, width)
	}
}
