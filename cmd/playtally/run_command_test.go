package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	content := strings.Join([]string{
		"[paths]",
		`stats_dir = "` + filepath.Join(base, "stats") + `"`,
		`log_dir = "` + filepath.Join(base, "logs") + `"`,
	}, "\n")
	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func writePlaylist(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write playlist: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunCommandAnnotatesAndReports(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()
	playlist := writePlaylist(t, dir, "list.m3u", "https://x.com/a.m3u8\nhttps://x.com/b.mp4\n")

	output, err := execute(t, "--config", cfgPath, "run", dir)
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "1 succeeded, 0 failed") && !strings.Contains(output, "1 succeeded") {
		t.Fatalf("unexpected summary: %s", output)
	}

	content, err := os.ReadFile(playlist)
	if err != nil {
		t.Fatalf("read playlist: %v", err)
	}
	if !strings.HasPrefix(string(content), "# STATS: Media Links Summary\n") {
		t.Fatalf("playlist not annotated:\n%s", content)
	}
}

func TestRunCommandJSONReport(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()
	writePlaylist(t, dir, "list.m3u", "https://x.com/a.m3u8\n")

	output, err := execute(t, "--config", cfgPath, "run", dir, "--json")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, output)
	}

	var report struct {
		RunID   string `json:"run_id"`
		Results []struct {
			Path   string `json:"path"`
			Status string `json:"status"`
		} `json:"results"`
		Totals map[string]int `json:"totals"`
	}
	if err := json.Unmarshal([]byte(output), &report); err != nil {
		t.Fatalf("report is not valid JSON: %v\n%s", err, output)
	}
	if report.RunID == "" || len(report.Results) != 1 || report.Results[0].Status != "success" {
		t.Fatalf("unexpected report: %s", output)
	}
	if report.Totals["m3u8"] != 1 {
		t.Fatalf("unexpected totals: %v", report.Totals)
	}
}

func TestRunCommandReportsFailuresWithoutFailing(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()
	writePlaylist(t, dir, "good.m3u", "https://x.com/a.m3u8\n")
	if err := os.WriteFile(filepath.Join(dir, "bad.m3u"), []byte{0x81, 0x82}, 0o644); err != nil {
		t.Fatalf("write bad playlist: %v", err)
	}

	output, err := execute(t, "--config", cfgPath, "run", dir)
	if err != nil {
		t.Fatalf("run should exit zero despite file failures: %v", err)
	}
	if !strings.Contains(output, "1 succeeded, 1 failed") {
		t.Fatalf("unexpected summary: %s", output)
	}
	if !strings.Contains(output, "FAILED") || !strings.Contains(output, "bad.m3u") {
		t.Fatalf("failure not listed: %s", output)
	}
}

func TestInspectCommandDoesNotRewrite(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()
	playlist := writePlaylist(t, dir, "list.m3u", "https://x.com/a.m3u8\n")

	output, err := execute(t, "--config", cfgPath, "inspect", playlist)
	if err != nil {
		t.Fatalf("inspect failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "m3u8: 1") {
		t.Fatalf("unexpected inspect output: %s", output)
	}

	content, err := os.ReadFile(playlist)
	if err != nil {
		t.Fatalf("read playlist: %v", err)
	}
	if string(content) != "https://x.com/a.m3u8\n" {
		t.Fatalf("inspect modified the file:\n%s", content)
	}
}

func TestSnapshotsCommandListsRecords(t *testing.T) {
	cfgPath := writeTestConfig(t)
	dir := t.TempDir()
	writePlaylist(t, dir, "list.m3u", "https://x.com/a.m3u8\n")

	if output, err := execute(t, "--config", cfgPath, "run", dir); err != nil {
		t.Fatalf("run failed: %v\n%s", err, output)
	}

	output, err := execute(t, "--config", cfgPath, "snapshots")
	if err != nil {
		t.Fatalf("snapshots failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "list.m3u") {
		t.Fatalf("snapshot listing missing record: %s", output)
	}
}
