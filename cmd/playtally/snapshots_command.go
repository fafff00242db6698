package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"playtally/internal/classify"
	"playtally/internal/logging"
	"playtally/internal/snapshot"
)

func newSnapshotsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List stored playlist snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := snapshot.Open(cfg, logging.NewNop())
			if err != nil {
				return fmt.Errorf("open snapshot store: %w", err)
			}
			defer store.Close()

			snapshots, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				type record struct {
					FilePath  string          `json:"file_path"`
					Counts    classify.Counts `json:"counts"`
					UpdatedAt time.Time       `json:"updated_at"`
				}
				records := make([]record, 0, len(snapshots))
				for _, snap := range snapshots {
					records = append(records, record{FilePath: snap.FilePath, Counts: snap.Counts, UpdatedAt: snap.UpdatedAt})
				}
				return writeJSON(cmd, records)
			}

			out := cmd.OutOrStdout()
			if len(snapshots) == 0 {
				fmt.Fprintln(out, "No snapshots recorded yet. Run `playtally run` first.")
				return nil
			}

			headers := []string{"File", "M3U8", "MP4", "Other", "Updated"}
			rows := make([][]string, 0, len(snapshots))
			for _, snap := range snapshots {
				rows = append(rows, []string{
					snap.FilePath,
					fmt.Sprintf("%d", snap.Counts[classify.CategoryM3U8]),
					fmt.Sprintf("%d", snap.Counts[classify.CategoryMP4]),
					fmt.Sprintf("%d", snap.Counts[classify.CategoryOther]),
					snap.UpdatedAt.Format("2006-01-02 15:04:05"),
				})
			}

			if stdoutIsTerminal(cmd) {
				fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft}))
			} else {
				writePlainRows(out, headers, rows)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit snapshots as JSON")
	return cmd
}
