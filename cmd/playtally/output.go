package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// stdoutIsTerminal reports whether stdout renders to an interactive terminal,
// in which case tables are used instead of tab-separated plain text.
func stdoutIsTerminal(cmd *cobra.Command) bool {
	out := cmd.OutOrStdout()
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func writePlainRows(w io.Writer, headers []string, rows [][]string) {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, "\t"))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, "\t"))
	}
	_, _ = io.WriteString(w, strings.Join(lines, "\n")+"\n")
}
