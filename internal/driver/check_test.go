package driver

import (
	"os"
	"path/filepath"
	"testing"

	"keylint/internal/diag"
	"keylint/internal/keyorder"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func defaultCheckOptions() CheckOptions {
	return CheckOptions{Analyze: keyorder.DefaultOptions(), MaxDiagnostics: 50}
}

func TestCheckReportsUnsortedKeys(t *testing.T) {
	path := writeFile(t, t.TempDir(), "keys.klt", "{b: 1, a: 2}\n")

	result, err := Check(path, defaultCheckOptions())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	if result.Bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1", result.Bag.Len())
	}
	d := result.Bag.Items()[0]
	if d.Code != diag.OrdKeysUnsorted {
		t.Errorf("code = %v", d.Code)
	}
	if len(d.Fixes) != 1 {
		t.Errorf("fixes = %d, want 1", len(d.Fixes))
	}
}

func TestCheckCleanFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "keys.klt", "{a: 1, b: 2}\n")

	result, err := Check(path, defaultCheckOptions())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if result.Bag.Len() != 0 {
		t.Errorf("diagnostics = %d, want 0", result.Bag.Len())
	}
}

func TestCheckReportsSyntaxErrors(t *testing.T) {
	path := writeFile(t, t.TempDir(), "broken.klt", "{key 1}\n")

	result, err := Check(path, defaultCheckOptions())
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !result.Bag.HasErrors() {
		t.Error("expected syntax error diagnostics")
	}
}

func TestCheckCacheRoundTrip(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache, err := OpenDiskCache("keylint-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	opts := defaultCheckOptions()
	opts.Cache = cache

	path := writeFile(t, t.TempDir(), "keys.klt", "{b: 1, a: 2}\n")

	first, err := Check(path, opts)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if first.Objects == nil {
		t.Fatal("first run should parse, not hit the cache")
	}

	second, err := Check(path, opts)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if second.Objects != nil {
		t.Fatal("second run should come from the cache")
	}

	if first.Bag.Len() != second.Bag.Len() {
		t.Fatalf("cached diagnostics differ: %d vs %d", first.Bag.Len(), second.Bag.Len())
	}
	a, b := first.Bag.Items()[0], second.Bag.Items()[0]
	if a.Code != b.Code || a.Message != b.Message || a.Primary.Start != b.Primary.Start {
		t.Errorf("cached diagnostic mismatch: %+v vs %+v", a, b)
	}
	if len(a.Fixes) != len(b.Fixes) || len(a.Fixes[0].Edits) != len(b.Fixes[0].Edits) {
		t.Error("cached fixes lost edits")
	}
}

func TestCheckCacheKeyedByConfig(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cache, err := OpenDiskCache("keylint-test")
	if err != nil {
		t.Fatalf("OpenDiskCache: %v", err)
	}

	path := writeFile(t, t.TempDir(), "keys.klt", "{b: 1, a: 2}\n")

	opts := defaultCheckOptions()
	opts.Cache = cache
	if _, err := Check(path, opts); err != nil {
		t.Fatalf("Check: %v", err)
	}

	// другой порядок сортировки — другой ключ кеша
	opts.Analyze.Mode.Direction = keyorder.Desc
	result, err := Check(path, opts)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if result.Objects == nil {
		t.Fatal("config change must miss the cache")
	}
	if result.Bag.Len() != 0 {
		t.Errorf("descending check of {b, a} reported %d diagnostics", result.Bag.Len())
	}
}
