package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the pipeline without publishing and report integrity",
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
			fmt.Fprintf(out, "Records: %d  Members: %d  Meetings: %d  Votes: %d\n",
				result.Records, len(result.Registry.Members),
				len(result.Meetings), len(result.Votes))
			for _, loadErr := range result.LoadErrors {
				fmt.Fprintf(out, "warning: %s\n", loadErr)
			}

			if len(result.Problems) == 0 {
				fmt.Fprintln(out, "All integrity checks passed")
				return nil
			}
			rows := make([][]string, 0, len(result.Problems))
			for i, problem := range result.Problems {
				rows = append(rows, []string{fmt.Sprintf("%d", i+1), problem})
			}
			fmt.Fprintln(out, renderRows(out, []string{"#", "Problem"}, rows,
				[]columnAlignment{alignRight, alignLeft}))
			return fmt.Errorf("%d integrity problems found", len(result.Problems))
		},
	}
}
