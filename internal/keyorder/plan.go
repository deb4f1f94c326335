package keyorder

import (
	"sort"

	"keylint/internal/diag"
	"keylint/internal/object"
)

// PlanEdits computes the reordering fix for one violating group: a
// stable sort of the group's entries, with every unsortable entry
// pinned after every named one (stability keeps unsortable entries in
// their original relative order). Each position whose target entry
// differs from the original gets exactly one edit replacing the
// original span's text with the target entry's verbatim source text.
// All edits are relative to the pre-edit source and applied as one
// simultaneous batch, which is sound only because the spans are
// pairwise disjoint — checked as a postcondition.
func PlanEdits(obj *object.Object, group []int, mode Mode) []diag.TextEdit {
	target := make([]int, len(group))
	copy(target, group)
	sort.SliceStable(target, func(i, j int) bool {
		ni, iok := EntryName(obj.Entries[target[i]])
		nj, jok := EntryName(obj.Entries[target[j]])
		if iok != jok {
			return iok // unsortable стекает в конец группы
		}
		if !iok {
			return false
		}
		return mode.Compare(ni, nj) < 0
	})

	edits := make([]diag.TextEdit, 0, len(group))
	moveTrailing := trailingMovable(obj, group, target)
	for pos, origIdx := range group {
		if target[pos] == origIdx {
			continue
		}
		orig := obj.Entries[origIdx]
		incoming := obj.Entries[target[pos]]
		edits = append(edits, diag.TextEdit{
			Span:    orig.Span,
			NewText: incoming.Text,
			OldText: orig.Text,
		})
		// хвостовой комментарий переезжает вместе со своей записью
		if moveTrailing && orig.TrailingText != incoming.TrailingText {
			edits = append(edits, diag.TextEdit{
				Span:    orig.Trailing,
				NewText: incoming.TrailingText,
				OldText: orig.TrailingText,
			})
		}
	}

	assertDisjoint(edits)
	return edits
}

// trailingMovable проверяет, что каждый непустой хвост попадает в слот,
// за которым сразу идёт перевод строки. Иначе перенесённый line-комментарий
// закомментировал бы остаток строки; тогда хвосты остаются на месте.
func trailingMovable(obj *object.Object, group, target []int) bool {
	for pos, origIdx := range group {
		if target[pos] == origIdx {
			continue
		}
		incoming := obj.Entries[target[pos]]
		if incoming.TrailingText == "" {
			continue
		}
		if !obj.Entries[origIdx].TrailingEOL {
			return false
		}
	}
	return true
}

func assertDisjoint(edits []diag.TextEdit) {
	for i := range edits {
		for j := i + 1; j < len(edits); j++ {
			if edits[i].Span.Overlaps(edits[j].Span) {
				panic("keyorder: fix plan contains overlapping spans")
			}
		}
	}
}
