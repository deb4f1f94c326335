package keyorder

import (
	"keylint/internal/object"
)

// EntryName returns the sortable key name of an entry. The second result
// is false for entries with no statically-known name: spreads and
// dynamic computed keys. Computed keys whose expression is a single
// compile-time literal are named exactly like static keys.
func EntryName(e object.Entry) (string, bool) {
	switch e.Kind {
	case object.EntryStatic, object.EntryComputedLiteral:
		return e.Name, true
	case object.EntryComputedDynamic, object.EntrySpread:
		return "", false
	}
	// не должно случаться для записей, которые отдаёт парсер
	panic("keyorder: unknown entry kind " + e.Kind.String())
}
