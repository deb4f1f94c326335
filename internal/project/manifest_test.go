package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"keylint/internal/keyorder"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaultsForMissingKeys(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[check]\nnatural = true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Check.Order != "asc" {
		t.Errorf("order = %q, want asc", cfg.Check.Order)
	}
	if !cfg.Check.CaseSensitive {
		t.Error("case_sensitive should default to true")
	}
	if !cfg.Check.Natural {
		t.Error("natural not picked up from file")
	}
	if cfg.Check.MinKeys != 2 {
		t.Errorf("min_keys = %d, want 2", cfg.Check.MinKeys)
	}
}

func TestLoadExplicitFalseOverridesDefault(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[check]\ncase_sensitive = false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Check.CaseSensitive {
		t.Error("explicit case_sensitive = false ignored")
	}
}

func TestLoadRejectsBadOrder(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[check]\norder = \"sideways\"\n")

	_, err := Load(path)
	if !errors.Is(err, ErrBadOrderValue) {
		t.Fatalf("err = %v, want ErrBadOrderValue", err)
	}
}

func TestLoadRejectsBadMinKeys(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[check]\nmin_keys = 1\n")

	_, err := Load(path)
	if !errors.Is(err, ErrBadMinKeys) {
		t.Fatalf("err = %v, want ErrBadMinKeys", err)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[check\norder =")

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestToOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Check.Order = "desc"
	cfg.Check.Natural = true
	cfg.Check.MinKeys = 3

	opts := cfg.ToOptions()
	if opts.Mode.Direction != keyorder.Desc {
		t.Errorf("direction = %v", opts.Mode.Direction)
	}
	if !opts.Mode.Natural {
		t.Error("natural not translated")
	}
	if opts.MinKeys != 3 {
		t.Errorf("min_keys = %d", opts.MinKeys)
	}
}

func TestDefaultManifestParses(t *testing.T) {
	path := writeManifest(t, t.TempDir(), DefaultManifest)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestFindKeylintTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, DefaultManifest)

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := FindKeylintToml(nested)
	if err != nil {
		t.Fatalf("FindKeylintToml: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested dir")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want manifest in %q", path, root)
	}
}

func TestLoadForWithoutManifest(t *testing.T) {
	cfg, path, ok, err := LoadFor(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFor: %v", err)
	}
	if ok {
		t.Errorf("ok = true with no manifest (found %q)", path)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}
