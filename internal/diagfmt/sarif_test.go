package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"keylint/internal/diag"
	"keylint/internal/source"
)

func TestSarifOutput(t *testing.T) {
	bag, fs := testBag(t)

	var buf bytes.Buffer
	err := Sarif(&buf, bag, fs, SarifRunMeta{
		ToolName:       "keylint",
		ToolVersion:    "0.1.0",
		InvocationArgs: []string{"keylint", "check", "test.klt"},
	})
	if err != nil {
		t.Fatalf("Sarif: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["version"] != "2.1.0" {
		t.Errorf("version = %v", decoded["version"])
	}

	output := buf.String()
	for _, want := range []string{
		`"name": "keylint"`,
		`"ruleId": "ORD3001"`,
		`"level": "warning"`,
		`"commandLine": "keylint check test.klt"`,
		`"startLine": 1`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output:\n%s", want, output)
		}
	}
}

func TestSarifRulesDeduplicated(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.klt", []byte("{b: 1, a: 2}\n"))

	bag := diag.NewBag(4)
	for i := range 3 {
		bag.Add(diag.New(diag.SevWarning, diag.OrdKeysUnsorted,
			source.Span{File: fileID, Start: uint32(i), End: uint32(i + 1)}, "x"))
	}

	var buf bytes.Buffer
	if err := Sarif(&buf, bag, fs, SarifRunMeta{ToolName: "keylint"}); err != nil {
		t.Fatalf("Sarif: %v", err)
	}

	if n := strings.Count(buf.String(), `"id": "ORD3001"`); n != 1 {
		t.Errorf("rule ORD3001 listed %d times, want 1", n)
	}
}
