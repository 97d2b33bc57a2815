package icon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGenerate_CreatesOutputDir(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "icons")
	cfg := testConfig(out, writeTestFont(t, dir))
	r := newTestRenderer(t, cfg)

	if _, err := r.Generate(SpecsFromConfig(cfg.Icons)); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "icon16.png")); err != nil {
		t.Errorf("expected icon16.png in created directory: %v", err)
	}
}

func TestGenerate_ContinueOnError(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "icons")
	r := newTestRenderer(t, testConfig(out, writeTestFont(t, dir)))

	// The middle spec points into a directory that does not exist, so
	// its file write fails while its neighbours succeed.
	specs := []Spec{
		{Size: 16, Filename: "icon16.png"},
		{Size: 48, Filename: filepath.Join("missing", "icon48.png")},
		{Size: 128, Filename: "icon128.png"},
	}

	summary, err := r.Generate(specs)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if summary.Failed != 1 {
		t.Errorf("Failed: got %d, want 1", summary.Failed)
	}
	if got := summary.Succeeded(); got != 2 {
		t.Errorf("Succeeded: got %d, want 2", got)
	}
	if summary.FirstErr() == nil {
		t.Error("FirstErr: got nil, want the failed write error")
	}
	if len(summary.Results) != 3 {
		t.Fatalf("Results: got %d, want 3", len(summary.Results))
	}
	if summary.Results[1].Err == nil {
		t.Error("expected the second result to carry the failure")
	}

	// Both neighbours of the failed spec must still exist on disk.
	for _, name := range []string{"icon16.png", "icon128.png"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected %s to be written: %v", name, err)
		}
	}
}

func TestGenerate_UnusableOutputDir(t *testing.T) {
	dir := t.TempDir()
	// A file where the output directory should be.
	out := filepath.Join(dir, "icons")
	if err := os.WriteFile(out, []byte("not a directory"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(out, writeTestFont(t, dir))
	r := newTestRenderer(t, cfg)

	if _, err := r.Generate(SpecsFromConfig(cfg.Icons)); err == nil {
		t.Error("expected an error for an unusable output directory")
	}
}
