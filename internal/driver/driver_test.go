package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sift/internal/config"
	"sift/internal/diag"
	"sift/internal/lint"
	"sift/internal/lint/rules"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestListFiles_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.ts", "")
	writeFile(t, dir, "a.js", "")
	writeFile(t, dir, "skip.go", "")
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "c.ts", "")

	files, err := ListFiles([]string{dir}, config.Default())
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("len = %d, want 3: %v", len(files), files)
	}
	for i := 1; i < len(files); i++ {
		if files[i] < files[i-1] {
			t.Errorf("not sorted: %v", files)
		}
	}
}

func TestListFiles_KeepsExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	odd := writeFile(t, dir, "odd.txt", "var x = 1;")

	files, err := ListFiles([]string{odd}, config.Default())
	if err != nil || len(files) != 1 {
		t.Fatalf("explicit file dropped: %v, %v", files, err)
	}
}

func TestLintPaths_FindsViolations(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.ts", "var x = 1;\n")
	writeFile(t, dir, "good.ts", "let y = 2;\n")

	_, results, err := LintPaths(context.Background(), []string{dir}, rules.All(), config.Default(), Options{})
	if err != nil {
		t.Fatalf("LintPaths: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	diags := CollectDiagnostics(results)
	if len(diags) != 1 {
		t.Fatalf("len(diags) = %d, want 1: %v", len(diags), diags)
	}
	if diags[0].Code != "no-var" || diags[0].Severity != diag.SevWarning {
		t.Errorf("diag = %+v", diags[0])
	}
}

func TestLintPaths_ParseErrorsSuppressRules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.ts", "var = ;\nvar x = 1;\n")

	_, results, err := LintPaths(context.Background(), []string{dir}, rules.All(), config.Default(), Options{})
	if err != nil {
		t.Fatalf("LintPaths: %v", err)
	}
	bag := results[0].Bag
	if !bag.HasErrors() {
		t.Fatalf("expected parse errors")
	}
	for _, d := range bag.Items() {
		if d.Code == "no-var" {
			t.Errorf("rules must not run on broken trees: %v", d)
		}
	}
}

func TestLintPaths_ModeOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plain.ts", "let x = 1;\n")

	for _, mode := range []ProgramMode{ModeAuto, ModeScript, ModeModule} {
		_, results, err := LintPaths(context.Background(), []string{dir}, rules.All(), config.Default(), Options{Mode: mode})
		if err != nil || len(results) != 1 {
			t.Fatalf("mode %d: %v", mode, err)
		}
	}
}

func TestLintPaths_EmitsEvents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.ts", "let x = 1;\n")
	writeFile(t, dir, "b.ts", "let y = 2;\n")

	events := make(chan Event, 8)
	_, _, err := LintPaths(context.Background(), []string{dir}, rules.All(), config.Default(), Options{Events: events})
	if err != nil {
		t.Fatalf("LintPaths: %v", err)
	}
	close(events)

	seen := map[string]bool{}
	for ev := range events {
		if ev.Total != 2 {
			t.Errorf("event total = %d, want 2", ev.Total)
		}
		seen[filepath.Base(ev.Path)] = true
	}
	if !seen["a.ts"] || !seen["b.ts"] {
		t.Errorf("missing events: %v", seen)
	}
}

func TestDiskCache_RoundTripAndReplay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.ts", "var x = 1;\n")
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	opts := Options{Cache: cache}

	_, first, err := LintPaths(context.Background(), []string{dir}, rules.All(), config.Default(), opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first[0].Cached {
		t.Fatalf("first run must not be cached")
	}

	_, second, err := LintPaths(context.Background(), []string{dir}, rules.All(), config.Default(), opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second[0].Cached {
		t.Fatalf("second run should replay from cache")
	}

	firstDiags := CollectDiagnostics(first)
	secondDiags := CollectDiagnostics(second)
	if len(firstDiags) != len(secondDiags) {
		t.Fatalf("cached replay differs: %v vs %v", firstDiags, secondDiags)
	}
	for i := range firstDiags {
		if firstDiags[i].Code != secondDiags[i].Code ||
			firstDiags[i].Message != secondDiags[i].Message ||
			firstDiags[i].Primary.Start != secondDiags[i].Primary.Start {
			t.Errorf("diag %d differs: %+v vs %+v", i, firstDiags[i], secondDiags[i])
		}
	}
}

func TestDiskCache_RuleSetChangeInvalidates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.ts", "var x = 1;\n")
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	all := rules.All()
	if _, _, err := LintPaths(context.Background(), []string{dir}, all, config.Default(), Options{Cache: cache}); err != nil {
		t.Fatalf("first run: %v", err)
	}

	fewer := []lint.Factory{rules.NewNoDebugger}
	_, results, err := LintPaths(context.Background(), []string{dir}, fewer, config.Default(), Options{Cache: cache})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if results[0].Cached {
		t.Errorf("changing the rule set must invalidate the cache")
	}
	if len(CollectDiagnostics(results)) != 0 {
		t.Errorf("no-var diags leaked through a different rule set")
	}
}

func TestDiskCache_ContentChangeInvalidates(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "f.ts", "var x = 1;\n")
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	opts := Options{Cache: cache}

	if _, _, err := LintPaths(context.Background(), []string{dir}, rules.All(), config.Default(), opts); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := os.WriteFile(path, []byte("let x = 1;\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, results, err := LintPaths(context.Background(), []string{dir}, rules.All(), config.Default(), opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if results[0].Cached {
		t.Errorf("changed content must miss the cache")
	}
	if len(CollectDiagnostics(results)) != 0 {
		t.Errorf("stale diagnostics replayed: %v", CollectDiagnostics(results))
	}
}
