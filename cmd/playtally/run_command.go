package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"playtally/internal/annotate"
	"playtally/internal/classify"
	"playtally/internal/logging"
	"playtally/internal/snapshot"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var force bool
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Scan playlists and rewrite their stats headers",
		Long: `Scan the given paths (default: the current directory) for playlist files,
classify every entry line by media type, and rewrite the leading stats block
with current counts and their change since the last run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}

			store, err := snapshot.Open(cfg, logger)
			if err != nil {
				return fmt.Errorf("open snapshot store: %w", err)
			}
			defer store.Close()

			roots := args
			if len(roots) == 0 {
				roots = []string{"."}
			}

			runner := annotate.NewRunner(cfg, store, logger)
			report, err := runner.Run(cmd.Context(), roots, annotate.Options{Force: force})
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, report)
			}
			renderReport(cmd, report)
			// File-level failures are reported, not fatal: the run completed.
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Ignore stored snapshots when computing deltas")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the run report as JSON")
	return cmd
}

func renderReport(cmd *cobra.Command, report *annotate.Report) {
	out := cmd.OutOrStdout()

	headers := []string{"File", "Status", "M3U8", "MP4", "Other"}
	rows := make([][]string, 0, len(report.Results))
	for _, result := range report.Results {
		if result.Status != annotate.StatusSuccess {
			rows = append(rows, []string{result.Path, string(result.Status), "-", "-", "-"})
			continue
		}
		rows = append(rows, []string{
			result.Path,
			string(result.Status),
			countCell(result, classify.CategoryM3U8),
			countCell(result, classify.CategoryMP4),
			fmt.Sprintf("%d", result.Counts[classify.CategoryOther]),
		})
	}

	if stdoutIsTerminal(cmd) {
		fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight}))
	} else {
		writePlainRows(out, headers, rows)
	}

	fmt.Fprintf(out, "Run %s: %d succeeded, %d failed. Totals: m3u8=%d mp4=%d other=%d\n",
		report.RunID,
		report.Successes(),
		len(report.Failures()),
		report.Totals[classify.CategoryM3U8],
		report.Totals[classify.CategoryMP4],
		report.Totals[classify.CategoryOther],
	)

	for _, failure := range report.Failures() {
		fmt.Fprintf(out, "FAILED %s: %s\n", failure.Path, failure.Message)
	}
}

func countCell(result annotate.FileResult, category classify.Category) string {
	count := result.Counts[category]
	if delta, ok := result.Delta[category]; ok {
		return fmt.Sprintf("%d (%s)", count, delta.Format())
	}
	return fmt.Sprintf("%d", count)
}
