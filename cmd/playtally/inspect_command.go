package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"playtally/internal/classify"
	"playtally/internal/config"
	"playtally/internal/textenc"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Classify a playlist without rewriting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			text, enc, err := textenc.Decode(raw, cfg.Encoding.Fallback)
			if err != nil {
				return fmt.Errorf("decode %s: %w", path, err)
			}

			result := classify.Classify(text)
			if jsonOut {
				return writeJSON(cmd, map[string]any{
					"path":     path,
					"encoding": enc.Name(),
					"counts":   result.Counts,
					"samples":  result.Samples,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", path, enc.Name())
			for _, category := range classify.Categories {
				fmt.Fprintf(out, "  %s: %d\n", category, result.Counts[category])
			}
			fmt.Fprintf(out, "  total entries: %d\n", result.Counts.Total())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit counts as JSON")
	return cmd
}
