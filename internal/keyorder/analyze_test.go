package keyorder

import (
	"sort"
	"strings"
	"testing"

	"keylint/internal/diag"
	"keylint/internal/object"
)

// applyEdits применяет все правки одним батчем относительно
// исходного текста; спаны попарно не пересекаются.
func applyEdits(t *testing.T, content string, edits []diag.TextEdit) string {
	t.Helper()
	sorted := make([]diag.TextEdit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Span.Start > sorted[j].Span.Start
	})
	out := content
	for _, e := range sorted {
		start, end := int(e.Span.Start), int(e.Span.End)
		if e.OldText != "" && out[start:end] != e.OldText {
			t.Fatalf("edit guard mismatch: %q != %q", out[start:end], e.OldText)
		}
		out = out[:start] + e.NewText + out[end:]
	}
	return out
}

func analyzeSource(t *testing.T, input string, opts Options) (*object.Object, []Violation) {
	t.Helper()
	obj := parseObject(t, input)
	return obj, Analyze(obj, opts)
}

func TestAnalyze_SortedInputProducesNothing(t *testing.T) {
	_, violations := analyzeSource(t, `{a: 1, b: 2, c: 3}`, DefaultOptions())
	if len(violations) != 0 {
		t.Fatalf("violations = %d, want 0", len(violations))
	}
}

func TestAnalyze_AnchorIsFirstOffender(t *testing.T) {
	_, violations := analyzeSource(t, `{b: 1, a: 2, c: 3}`, DefaultOptions())
	if len(violations) != 1 {
		t.Fatalf("violations = %d, want 1", len(violations))
	}
	v := violations[0]
	if name, _ := EntryName(v.Anchor); name != "a" {
		t.Errorf("anchor = %q, want %q", name, "a")
	}
	if name, _ := EntryName(v.Prev); name != "b" {
		t.Errorf("prev = %q, want %q", name, "b")
	}
}

func TestAnalyze_UnsortableDoesNotBlockDetection(t *testing.T) {
	// [dyn] не именуется, но не мешает сравнить foo и bar
	_, violations := analyzeSource(t, `{foo: 1, [dyn]: 2, bar: 3}`, DefaultOptions())
	if len(violations) != 1 {
		t.Fatalf("violations = %d, want 1", len(violations))
	}
	if name, _ := EntryName(violations[0].Anchor); name != "bar" {
		t.Errorf("anchor = %q, want %q", name, "bar")
	}
}

func TestAnalyze_UnsortableSinksToEnd(t *testing.T) {
	input := `{foo: 1, [dyn]: 2, bar: 3}`
	obj, violations := analyzeSource(t, input, DefaultOptions())
	if len(violations) != 1 {
		t.Fatalf("violations = %d, want 1", len(violations))
	}

	fixed := applyEdits(t, input, violations[0].Edits)
	want := `{bar: 3, foo: 1, [dyn]: 2}`
	if fixed != want {
		t.Errorf("fixed = %q, want %q", fixed, want)
	}
	if len(obj.Entries) != 3 {
		t.Fatalf("entries = %d", len(obj.Entries))
	}
}

func TestAnalyze_SeparatorGroupsReportIndependently(t *testing.T) {
	// по убыванию: [alpha, beta] нарушает на beta; spread не двигается
	opts := DefaultOptions()
	opts.Mode.Direction = Desc
	_, violations := analyzeSource(t, `{alpha: 1, beta: 2, ...rest, y: 3, x: 4}`, opts)

	if len(violations) != 1 {
		t.Fatalf("violations = %d, want 1", len(violations))
	}
	v := violations[0]
	if name, _ := EntryName(v.Anchor); name != "beta" {
		t.Errorf("anchor = %q, want %q", name, "beta")
	}
	for _, e := range v.Edits {
		if strings.Contains(e.NewText, "...") {
			t.Error("spread text appeared in a fix plan")
		}
	}
}

func TestAnalyze_BlankLineGroupsFixIndependently(t *testing.T) {
	input := "{\n  beta: 1,\n  alpha: 2,\n\n  y: 3,\n  x: 4,\n}"
	opts := DefaultOptions()
	opts.AllowLineSeparatedGroups = true
	_, violations := analyzeSource(t, input, opts)

	// обе группы нарушают независимо
	if len(violations) != 2 {
		t.Fatalf("violations = %d, want 2", len(violations))
	}
	if name, _ := EntryName(violations[1].Anchor); name != "x" {
		t.Errorf("second anchor = %q, want %q", name, "x")
	}

	fixed := applyEdits(t, input, append(append([]diag.TextEdit(nil),
		violations[0].Edits...), violations[1].Edits...))
	want := "{\n  alpha: 2,\n  beta: 1,\n\n  x: 4,\n  y: 3,\n}"
	if fixed != want {
		t.Errorf("fixed = %q, want %q", fixed, want)
	}
}

func TestAnalyze_MinKeysThreshold(t *testing.T) {
	opts := DefaultOptions()
	opts.MinKeys = 3

	if _, violations := analyzeSource(t, `{b: 1, a: 2}`, opts); len(violations) != 0 {
		t.Errorf("2-entry structure reported despite min_keys=3")
	}
	if _, violations := analyzeSource(t, `{c: 1, b: 2, a: 3}`, opts); len(violations) != 1 {
		t.Errorf("3-entry unsorted structure not reported")
	}
}

func TestAnalyze_Idempotence(t *testing.T) {
	inputs := []string{
		`{b: 1, a: 2, c: 3}`,
		`{foo: 1, [dyn]: 2, bar: 3}`,
		"{\n  // bee\n  b: 2,\n  a: 1,\n}",
		`{item10: 1, item2: 2, item1: 3}`,
	}

	for _, input := range inputs {
		opts := DefaultOptions()
		opts.Mode.Natural = true

		_, violations := analyzeSource(t, input, opts)
		if len(violations) == 0 {
			t.Errorf("%q: expected a violation", input)
			continue
		}
		fixed := applyEdits(t, input, violations[0].Edits)

		_, again := analyzeSource(t, fixed, opts)
		if len(again) != 0 {
			t.Errorf("%q: re-analysis of %q still violating", input, fixed)
		}
	}
}

// permutation law: мультимножество текстов записей не меняется
func TestPlanEdits_PermutationLaw(t *testing.T) {
	obj := parseObject(t, `{c: 1, [dyn]: 2, b: 3, a: 4}`)
	groups := SplitGroups(obj, DefaultOptions())
	if len(groups) != 1 {
		t.Fatalf("groups = %d", len(groups))
	}

	edits := PlanEdits(obj, groups[0], DefaultOptions().Mode)

	original := map[string]int{}
	for _, idx := range groups[0] {
		original[obj.Entries[idx].Text]++
	}
	target := map[string]int{}
	for _, idx := range groups[0] {
		target[obj.Entries[idx].Text]++
	}
	for _, e := range edits {
		target[e.OldText]--
		target[e.NewText]++
	}
	for text, n := range original {
		if target[text] != n {
			t.Errorf("entry %q count changed: %d -> %d", text, n, target[text])
		}
	}
}

func TestPlanEdits_NonOverlapLaw(t *testing.T) {
	obj := parseObject(t, `{e: 1, d: 2, c: 3, b: 4, a: 5}`)
	groups := SplitGroups(obj, DefaultOptions())
	edits := PlanEdits(obj, groups[0], DefaultOptions().Mode)

	if len(edits) == 0 {
		t.Fatal("expected edits for a fully reversed group")
	}
	for i := range edits {
		for j := i + 1; j < len(edits); j++ {
			if edits[i].Span.Overlaps(edits[j].Span) {
				t.Errorf("edits %d and %d overlap", i, j)
			}
		}
	}
}

func TestPlanEdits_AlreadySortedProducesNoEdits(t *testing.T) {
	obj := parseObject(t, `{a: 1, b: 2, c: 3}`)
	groups := SplitGroups(obj, DefaultOptions())
	if edits := PlanEdits(obj, groups[0], DefaultOptions().Mode); len(edits) != 0 {
		t.Errorf("edits = %d, want 0", len(edits))
	}
}

func TestAnalyze_CommentsTravelWithEntries(t *testing.T) {
	input := "{\n  // bee\n  b: 2,\n  a: 1,\n}"
	_, violations := analyzeSource(t, input, DefaultOptions())
	if len(violations) != 1 {
		t.Fatalf("violations = %d, want 1", len(violations))
	}

	fixed := applyEdits(t, input, violations[0].Edits)
	want := "{\n  a: 1,\n  // bee\n  b: 2,\n}"
	if fixed != want {
		t.Errorf("fixed = %q, want %q", fixed, want)
	}
}

func TestAnalyze_TrailingCommentTravelsWithEntry(t *testing.T) {
	// комментарий после запятой документирует b и переезжает с ним
	input := "{\n  b: 2, // two\n  a: 1,\n}"
	_, violations := analyzeSource(t, input, DefaultOptions())
	if len(violations) != 1 {
		t.Fatalf("violations = %d, want 1", len(violations))
	}

	fixed := applyEdits(t, input, violations[0].Edits)
	want := "{\n  a: 1,\n  b: 2, // two\n}"
	if fixed != want {
		t.Errorf("fixed = %q, want %q", fixed, want)
	}
}

func TestAnalyze_TrailingCommentStaysWhenSlotIsMidLine(t *testing.T) {
	// слот записи b не заканчивает строку: перенесённый line-комментарий
	// закомментировал бы её; записи меняются местами, хвост остаётся
	input := "{\n  b: 1, a: 2, // x\n}"
	_, violations := analyzeSource(t, input, DefaultOptions())
	if len(violations) != 1 {
		t.Fatalf("violations = %d, want 1", len(violations))
	}

	fixed := applyEdits(t, input, violations[0].Edits)
	want := "{\n  a: 2, b: 1, // x\n}"
	if fixed != want {
		t.Errorf("fixed = %q, want %q", fixed, want)
	}
}

func TestReport_EmitsOneDiagnosticWithFix(t *testing.T) {
	_, violations := analyzeSource(t, `{b: 1, a: 2}`, DefaultOptions())
	if len(violations) != 1 {
		t.Fatalf("violations = %d", len(violations))
	}

	bag := diag.NewBag(8)
	Report(violations[0], DefaultOptions().Mode, diag.BagReporter{Bag: bag})

	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != diag.OrdKeysUnsorted {
		t.Errorf("code = %v", d.Code)
	}
	if len(d.Fixes) != 1 || len(d.Fixes[0].Edits) == 0 {
		t.Errorf("fix missing: %+v", d.Fixes)
	}
	if d.Fixes[0].Applicability != diag.FixApplicabilityAlwaysSafe {
		t.Errorf("applicability = %v", d.Fixes[0].Applicability)
	}
}
