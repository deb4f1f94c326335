package keyorder

import (
	"keylint/internal/object"
)

// SplitGroups partitions the object's entries into maximal runs that are
// sorted independently. Groups are slices of indices into obj.Entries.
//
// A spread always closes the current group and is discarded: it never
// participates in sorting and is never moved. A dynamic computed key
// does the same when IgnoreComputedKeys is set; otherwise it stays in
// the group as an unsortable member. With AllowLineSeparatedGroups a
// fully blank line closes the current group, and the next entry starts
// a new one instead of being discarded. Empty groups are never emitted.
func SplitGroups(obj *object.Object, opts Options) [][]int {
	groups := make([][]int, 0, 1)
	var current []int
	flush := func() {
		if len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
	}

	for i := range obj.Entries {
		switch obj.Entries[i].Kind {
		case object.EntrySpread:
			flush()
			continue
		case object.EntryComputedDynamic:
			if opts.IgnoreComputedKeys {
				flush()
				continue
			}
		}
		if opts.AllowLineSeparatedGroups && len(current) > 0 && blankLineBefore(obj, i) {
			flush()
		}
		current = append(current, i)
	}
	flush()
	return groups
}

// blankLineBefore reports whether at least one fully blank line
// separates entry i-1 and entry i. Идём по цепочке: конец предыдущей
// записи, каждый токен и комментарий в промежутке, начало следующей;
// пустая строка есть, если соседние линии отличаются больше чем на 1.
//
// Discards flush the accumulator, поэтому при непустой группе
// предыдущая сохранённая запись — это всегда entry i-1.
func blankLineBefore(obj *object.Object, i int) bool {
	if i == 0 || i-1 >= len(obj.Gaps) {
		return false
	}
	prev := obj.Entries[i-1].EndLine
	for _, lr := range obj.Gaps[i-1] {
		if lr.Start > prev+1 {
			return true
		}
		if lr.End > prev {
			prev = lr.End
		}
	}
	return obj.Entries[i].StartLine > prev+1
}
