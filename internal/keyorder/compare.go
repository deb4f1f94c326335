package keyorder

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Direction is the configured sort direction.
type Direction uint8

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "descending"
	}
	return "ascending"
}

// ParseDirection maps a config value to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "asc":
		return Asc, true
	case "desc":
		return Desc, true
	}
	return Asc, false
}

// Mode is the resolved comparison mode: direction × case handling ×
// natural/lexicographic. Every combination maps to exactly one behaviour
// of Compare; there is no dispatch table to fall through.
type Mode struct {
	Direction     Direction
	CaseSensitive bool
	Natural       bool
}

func (m Mode) String() string {
	var b strings.Builder
	b.WriteString(m.Direction.String())
	if !m.CaseSensitive {
		b.WriteString(" case-insensitive")
	}
	if m.Natural {
		b.WriteString(" natural")
	}
	return b.String()
}

// Compare orders a relative to b under the mode, returning a negative,
// zero, or positive result. Both operands are NFC-normalized first so
// visually identical keys compare equal. Descending is the mirror of
// ascending with the operands swapped, never a separate predicate.
func (m Mode) Compare(a, b string) int {
	a = norm.NFC.String(a)
	b = norm.NFC.String(b)
	if !m.CaseSensitive {
		a = strings.ToLower(a)
		b = strings.ToLower(b)
	}
	if m.Direction == Desc {
		a, b = b, a
	}
	if m.Natural {
		return compareNatural(a, b)
	}
	return compareText(a, b)
}

// InOrder reports whether a may appear immediately before b.
func (m Mode) InOrder(a, b string) bool {
	return m.Compare(a, b) <= 0
}

// compareText is the lexicographic primitive. The primary comparison is
// case-insensitive rune by rune; on a full tie the first position whose
// runes differ only by case decides, uppercase first. Это соответствие
// locale-ordering с приоритетом заглавных, не порядку code point.
func compareText(a, b string) int {
	caseTie := 0
	for len(a) > 0 && len(b) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		la, lb := unicode.ToLower(ra), unicode.ToLower(rb)
		if la != lb {
			if la < lb {
				return -1
			}
			return 1
		}
		if ra != rb && caseTie == 0 {
			if unicode.IsUpper(ra) {
				caseTie = -1
			} else {
				caseTie = 1
			}
		}
		a, b = a[na:], b[nb:]
	}
	if len(a) > 0 {
		return 1
	}
	if len(b) > 0 {
		return -1
	}
	return caseTie
}

// compareNatural is the natural primitive: alternating digit / non-digit
// runs, digit runs compared numerically, other runs via compareText.
// A strict prefix sorts first; zero-padding differences only break full
// ties.
func compareNatural(a, b string) int {
	padTie := 0
	for len(a) > 0 && len(b) > 0 {
		runA, restA, digitA := takeRun(a)
		runB, restB, digitB := takeRun(b)

		if digitA && digitB {
			if c := compareDigits(runA, runB); c != 0 {
				return c
			}
			if padTie == 0 && runA != runB {
				padTie = strings.Compare(runA, runB)
			}
		} else {
			if c := compareText(runA, runB); c != 0 {
				return c
			}
		}
		a, b = restA, restB
	}
	if len(a) > 0 {
		return 1
	}
	if len(b) > 0 {
		return -1
	}
	return padTie
}

// takeRun отрезает первый digit- или non-digit-run строки.
func takeRun(s string) (run, rest string, digit bool) {
	digit = isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digit {
		i++
	}
	return s[:i], s[i:], digit
}

// compareDigits сравнивает два digit-run как числа произвольной длины.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
