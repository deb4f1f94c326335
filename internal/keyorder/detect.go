package keyorder

import (
	"keylint/internal/object"
)

// firstViolation scans the group left to right, comparing each named
// entry against the nearest preceding named entry. Unsortable entries
// never trigger a violation and never block detection between their
// named neighbors. Returns the group positions of the first rejected
// pair, or ok=false when the group is sorted.
func firstViolation(obj *object.Object, group []int, mode Mode) (prevPos, curPos int, ok bool) {
	prevPos = -1
	var prevName string
	for pos, idx := range group {
		name, named := EntryName(obj.Entries[idx])
		if !named {
			continue
		}
		if prevPos >= 0 && !mode.InOrder(prevName, name) {
			return prevPos, pos, true
		}
		prevPos, prevName = pos, name
	}
	return 0, 0, false
}
