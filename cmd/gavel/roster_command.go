package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRosterCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "Print the derived member roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := ctx.newRunner()
			if err != nil {
				return err
			}
			result, err := runner.Evaluate()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(result.Registry.Members))
			for _, m := range result.Registry.Members {
				status := "Former"
				end := m.EndDate
				if m.IsCurrent {
					status = "Current"
					end = "present"
				}
				s := result.MemberStats[m.ID]
				rows = append(rows, []string{
					fmt.Sprintf("%d", m.ID),
					m.FullName,
					m.ShortName,
					status,
					m.StartDate,
					end,
					fmt.Sprintf("%d", s.TotalVotes),
					fmt.Sprintf("%.1f%%", s.AyePercentage),
					fmt.Sprintf("%.1f%%", s.DissentRate),
				})
			}

			out := cmd.OutOrStdout()
			headers := []string{"ID", "Name", "Short", "Status", "Start", "End", "Votes", "Aye", "Dissent"}
			aligns := []columnAlignment{
				alignRight, alignLeft, alignLeft, alignLeft, alignLeft,
				alignLeft, alignRight, alignRight, alignRight,
			}
			fmt.Fprintln(out, renderRows(out, headers, rows, aligns))
			return nil
		},
	}
}
