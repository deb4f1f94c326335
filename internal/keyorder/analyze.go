package keyorder

import (
	"fmt"

	"keylint/internal/diag"
	"keylint/internal/fix"
	"keylint/internal/object"
)

// Options configures one analysis pass. The zero value of MinKeys is
// treated as the default threshold of 2; values below 2 are rejected by
// the config layer before the core ever runs.
type Options struct {
	Mode                     Mode
	AllowLineSeparatedGroups bool
	IgnoreComputedKeys       bool
	MinKeys                  int
}

// DefaultOptions returns the documented defaults: ascending,
// case-sensitive, lexicographic, min_keys = 2.
func DefaultOptions() Options {
	return Options{
		Mode:    Mode{Direction: Asc, CaseSensitive: true},
		MinKeys: 2,
	}
}

func (o Options) minKeys() int {
	if o.MinKeys < 2 {
		return 2
	}
	return o.MinKeys
}

// Violation is one out-of-order group. Anchor is the first entry (in
// original order) whose relation to the nearest preceding named entry
// breaks the configured order; it positions the diagnostic and plays no
// role in fix correctness.
type Violation struct {
	Anchor object.Entry
	Prev   object.Entry
	Group  []int
	Edits  []diag.TextEdit
}

// Analyze runs the full pipeline over one object: threshold check,
// group segmentation, then per group detection and, only for violating
// groups, fix planning. At most one violation is produced per group.
// The pass is pure: no state survives between calls.
func Analyze(obj *object.Object, opts Options) []Violation {
	threshold := opts.minKeys()
	if len(obj.Entries) < threshold {
		return nil
	}

	var out []Violation
	for _, group := range SplitGroups(obj, opts) {
		if len(group) < threshold {
			continue
		}
		prevPos, curPos, ok := firstViolation(obj, group, opts.Mode)
		if !ok {
			continue
		}
		out = append(out, Violation{
			Anchor: obj.Entries[group[curPos]],
			Prev:   obj.Entries[group[prevPos]],
			Group:  group,
			Edits:  PlanEdits(obj, group, opts.Mode),
		})
	}
	return out
}

// Report emits one diagnostic with the reordering fix attached.
func Report(v Violation, mode Mode, r diag.Reporter) {
	anchorName, _ := EntryName(v.Anchor)
	prevName, _ := EntryName(v.Prev)
	msg := fmt.Sprintf("expected key %q to come before %q in %s order", anchorName, prevName, mode)
	diag.ReportWarning(r, diag.OrdKeysUnsorted, v.Anchor.KeySpan, msg).
		WithNote(v.Prev.KeySpan, fmt.Sprintf("%q is here", prevName)).
		WithFix(fix.ReorderSpans("reorder keys", v.Edits, fix.Preferred())).
		Emit()
}
