package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAlignmentCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "alignment",
		Short: "Print pairwise voting alignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := ctx.newRunner()
			if err != nil {
				return err
			}
			result, err := runner.Evaluate()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.Alignment.Pairs) == 0 {
				fmt.Fprintln(out, "No member pair reached the shared-vote threshold")
				return nil
			}

			rows := make([][]string, 0, len(result.Alignment.Pairs))
			for _, pair := range result.Alignment.Pairs {
				rows = append(rows, []string{
					pair.Member1,
					pair.Member2,
					fmt.Sprintf("%d", pair.SharedVotes),
					fmt.Sprintf("%d", pair.Agreements),
					fmt.Sprintf("%.1f%%", pair.AgreementRate),
				})
			}
			headers := []string{"Member", "Member", "Shared", "Agree", "Rate"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight}
			fmt.Fprintln(out, renderRows(out, headers, rows, aligns))

			if len(result.Alignment.MostAligned) > 0 {
				top := result.Alignment.MostAligned[0]
				fmt.Fprintf(out, "Most aligned: %s & %s (%.1f%%)\n", top.Member1, top.Member2, top.AgreementRate)
			}
			if len(result.Alignment.LeastAligned) > 0 {
				bottom := result.Alignment.LeastAligned[0]
				fmt.Fprintf(out, "Least aligned: %s & %s (%.1f%%)\n", bottom.Member1, bottom.Member2, bottom.AgreementRate)
			}
			return nil
		},
	}
}
