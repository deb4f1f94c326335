package object

import (
	"testing"

	"keylint/internal/diag"
	"keylint/internal/source"
)

func parseOne(t *testing.T, input string) (*source.File, *Object) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.klt", []byte(input))
	file := fs.Get(id)
	bag := diag.NewBag(32)
	out := Parse(file, diag.BagReporter{Bag: bag})
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	if len(out.Objects) == 0 {
		t.Fatalf("no objects parsed")
	}
	return file, out.Objects[0]
}

func TestParse_EntryKinds(t *testing.T) {
	_, obj := parseOne(t, `{a: 1, "b-c": 2, [3]: x, ["lit"]: 4, [dyn]: 5, ...rest}`)

	want := []struct {
		kind EntryKind
		name string
	}{
		{EntryStatic, "a"},
		{EntryStatic, "b-c"},
		{EntryComputedLiteral, "3"},
		{EntryComputedLiteral, "lit"},
		{EntryComputedDynamic, ""},
		{EntrySpread, ""},
	}

	if len(obj.Entries) != len(want) {
		t.Fatalf("entries = %d, want %d", len(obj.Entries), len(want))
	}
	for i, w := range want {
		e := obj.Entries[i]
		if e.Kind != w.kind {
			t.Errorf("entry %d kind = %v, want %v", i, e.Kind, w.kind)
		}
		if e.Name != w.name {
			t.Errorf("entry %d name = %q, want %q", i, e.Name, w.name)
		}
	}
	if len(obj.Gaps) != len(want)-1 {
		t.Errorf("gaps = %d, want %d", len(obj.Gaps), len(want)-1)
	}
}

func TestParse_EntrySpansExcludeCommas(t *testing.T) {
	file, obj := parseOne(t, `{bb: 22, a: 1}`)

	if len(obj.Entries) != 2 {
		t.Fatalf("entries = %d", len(obj.Entries))
	}
	if got := obj.Entries[0].Text; got != "bb: 22" {
		t.Errorf("entry 0 text = %q, want %q", got, "bb: 22")
	}
	if got := obj.Entries[1].Text; got != "a: 1" {
		t.Errorf("entry 1 text = %q, want %q", got, "a: 1")
	}
	for _, e := range obj.Entries {
		if string(file.Content[e.Span.Start:e.Span.End]) != e.Text {
			t.Errorf("entry text is not the verbatim span content")
		}
	}
}

func TestParse_AttachedLeadingComment(t *testing.T) {
	input := "{\n  // bee\n  b: 2,\n  a: 1,\n}"
	_, obj := parseOne(t, input)

	if len(obj.Entries) != 2 {
		t.Fatalf("entries = %d", len(obj.Entries))
	}
	if got := obj.Entries[0].Text; got != "// bee\n  b: 2" {
		t.Errorf("entry 0 text = %q", got)
	}
	if obj.Entries[0].StartLine != 2 || obj.Entries[0].EndLine != 3 {
		t.Errorf("entry 0 lines = %d-%d, want 2-3", obj.Entries[0].StartLine, obj.Entries[0].EndLine)
	}
}

func TestParse_TrailingCommentBelongsToPreviousEntry(t *testing.T) {
	// комментарий после запятой — хвост b, а не шапка a
	input := "{\n  b: 2, // two\n  a: 1,\n}"
	_, obj := parseOne(t, input)

	if len(obj.Entries) != 2 {
		t.Fatalf("entries = %d", len(obj.Entries))
	}
	b, a := obj.Entries[0], obj.Entries[1]
	if b.TrailingText != " // two" {
		t.Errorf("b trailing = %q, want %q", b.TrailingText, " // two")
	}
	if !b.TrailingEOL {
		t.Error("b trailing should end its line")
	}
	if a.Text != "a: 1" {
		t.Errorf("a text = %q: trailing comment leaked into the next entry", a.Text)
	}
	if a.TrailingText != "" || !a.TrailingEOL {
		t.Errorf("a trailing = %q, EOL = %v", a.TrailingText, a.TrailingEOL)
	}
}

func TestParse_TrailingSlotMidLineIsNotEOL(t *testing.T) {
	_, obj := parseOne(t, "{\n  b: 1, a: 2, // x\n}")

	if len(obj.Entries) != 2 {
		t.Fatalf("entries = %d", len(obj.Entries))
	}
	if obj.Entries[0].TrailingEOL {
		t.Error("b's slot sits mid-line, must not be EOL")
	}
	if got := obj.Entries[1].TrailingText; got != " // x" {
		t.Errorf("a trailing = %q, want %q", got, " // x")
	}
}

func TestParse_DetachedCommentStaysInGap(t *testing.T) {
	// пустая строка между комментарием и записью — комментарий не прикрепляется
	input := "{\n  b: 2, // tail\n\n  a: 1,\n}"
	_, obj := parseOne(t, input)

	if got := obj.Entries[1].Text; got != "a: 1" {
		t.Errorf("entry 1 text = %q, want %q", got, "a: 1")
	}
	if len(obj.Gaps) != 1 {
		t.Fatalf("gaps = %d", len(obj.Gaps))
	}
	// в gap: запятая и хвостовой комментарий, оба на строке 2
	for _, lr := range obj.Gaps[0] {
		if lr.Start != 2 || lr.End != 2 {
			t.Errorf("gap range = %v, want line 2", lr)
		}
	}
}

func TestParse_NestedObjects(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.klt", []byte(`{outer: {inner: 1}, list: [{deep: 2}]}`))
	out := Parse(fs.Get(id), diag.NopReporter{})

	if len(out.Objects) != 3 {
		t.Fatalf("objects = %d, want 3", len(out.Objects))
	}
	// outer раньше inner
	if len(out.Objects[0].Entries) != 2 {
		t.Errorf("outer entries = %d, want 2", len(out.Objects[0].Entries))
	}
	if out.Objects[1].Entries[0].Name != "inner" {
		t.Errorf("first nested entry = %q", out.Objects[1].Entries[0].Name)
	}
	if out.Objects[2].Entries[0].Name != "deep" {
		t.Errorf("second nested entry = %q", out.Objects[2].Entries[0].Name)
	}
}

func TestParse_Diagnostics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"missing colon", `{a 1}`, diag.SynExpectColon},
		{"missing value", `{a: }`, diag.SynExpectValue},
		{"unclosed brace", `{a: 1`, diag.SynUnclosedBrace},
		{"bad key", `{: 1}`, diag.SynExpectKey},
		{"trailing tokens", `{a: 1} x`, diag.SynTrailingTokens},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			id := fs.AddVirtual("test.klt", []byte(tt.input))
			bag := diag.NewBag(16)
			Parse(fs.Get(id), diag.BagReporter{Bag: bag})

			found := false
			for _, d := range bag.Items() {
				if d.Code == tt.code {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %v, got %v", tt.code, bag.Items())
			}
		})
	}
}

func TestParse_RecoveryKeepsAlignment(t *testing.T) {
	// сломанная запись в середине: Gaps остаются выравнены с Entries
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.klt", []byte(`{a: 1, : broken, b: 2}`))
	bag := diag.NewBag(16)
	out := Parse(fs.Get(id), diag.BagReporter{Bag: bag})

	obj := out.Objects[0]
	if len(obj.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(obj.Entries))
	}
	if len(obj.Gaps) != 1 {
		t.Fatalf("gaps = %d, want 1", len(obj.Gaps))
	}
	if !bag.HasErrors() {
		t.Error("expected a syntax error")
	}
}
