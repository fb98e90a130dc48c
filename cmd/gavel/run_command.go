package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"gavel/internal/pipeline"
	"gavel/internal/watch"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var (
		watchFlag bool
		debounce  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline and publish the document tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, cfg, err := ctx.newRunner()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			result, err := runner.Run(runCtx)
			if err != nil {
				return err
			}
			printRunSummary(cmd, result)

			if !watchFlag {
				return nil
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			return watch.Run(runCtx, cfg.Paths.SourceDir, debounce, logger,
				func(fnCtx context.Context) error {
					res, err := runner.Run(fnCtx)
					if err != nil {
						return err
					}
					printRunSummary(cmd, res)
					return nil
				})
		},
	}

	cmd.Flags().BoolVar(&watchFlag, "watch", false, "Re-run when the source directory changes")
	cmd.Flags().DurationVar(&debounce, "debounce", 2*time.Second, "Settle time before a watched re-run")
	return cmd
}

func printRunSummary(cmd *cobra.Command, result *pipeline.Result) {
	out := cmd.OutOrStdout()

	rows := make([][]string, 0, len(result.Files))
	for _, file := range result.Files {
		rows = append(rows, []string{file.Label, string(file.Format), fmt.Sprintf("%d", file.Records)})
	}
	fmt.Fprintln(out, renderRows(out, []string{"Batch", "Format", "Records"}, rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight}))

	for _, loadErr := range result.LoadErrors {
		fmt.Fprintf(out, "warning: %s\n", loadErr)
	}
	fmt.Fprintf(out, "Members: %d  Meetings: %d  Votes: %d  Pairs: %d\n",
		len(result.Registry.Members), len(result.Meetings), len(result.Votes),
		len(result.Alignment.Pairs))
	if len(result.Problems) > 0 {
		fmt.Fprintf(out, "Integrity problems: %d (run `gavel check` for details)\n", len(result.Problems))
	}
	if result.Published > 0 {
		fmt.Fprintf(out, "Published %d documents\n", result.Published)
	}
}
