package keyorder

import (
	"testing"
)

func TestMode_Compare_Lexicographic(t *testing.T) {
	asc := Mode{Direction: Asc, CaseSensitive: true}

	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"plain order", "a", "b", -1},
		{"equal keys", "a", "a", 0},
		{"prefix sorts first", "ab", "abc", -1},
		{"uppercase before its lowercase", "Bar", "bar", -1},
		{"case-insensitive content first", "bar", "Foo", -1},
		{"digits before letters", "1", "a", -1},
		{"lexicographic digits", "item10", "item2", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sign(asc.Compare(tt.a, tt.b)); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMode_Compare_CaseSensitivePins(t *testing.T) {
	asc := Mode{Direction: Asc, CaseSensitive: true}

	// {Bar, foo} принимается, {foo, Bar} отклоняется
	if !asc.InOrder("Bar", "foo") {
		t.Error(`InOrder("Bar", "foo") = false, want true`)
	}
	if asc.InOrder("foo", "Bar") {
		t.Error(`InOrder("foo", "Bar") = true, want false`)
	}
}

func TestMode_Compare_CaseInsensitive(t *testing.T) {
	m := Mode{Direction: Asc, CaseSensitive: false}

	if m.Compare("Bar", "bar") != 0 {
		t.Error(`case-insensitive Compare("Bar", "bar") != 0`)
	}
	if !m.InOrder("bar", "Foo") {
		t.Error(`case-insensitive InOrder("bar", "Foo") = false`)
	}
}

func TestMode_Compare_Natural(t *testing.T) {
	nat := Mode{Direction: Asc, CaseSensitive: true, Natural: true}
	lex := Mode{Direction: Asc, CaseSensitive: true}

	// ["item1","item2","item10"] sorted под natural, но не под lexicographic
	naturalSeq := []string{"item1", "item2", "item10"}
	if !isSortedUnder(nat, naturalSeq) {
		t.Errorf("%v not accepted by natural mode", naturalSeq)
	}
	if isSortedUnder(lex, naturalSeq) {
		t.Errorf("%v accepted by lexicographic mode", naturalSeq)
	}

	// ["item1","item10","item2"] sorted под lexicographic, но не под natural
	lexSeq := []string{"item1", "item10", "item2"}
	if !isSortedUnder(lex, lexSeq) {
		t.Errorf("%v not accepted by lexicographic mode", lexSeq)
	}
	if isSortedUnder(nat, lexSeq) {
		t.Errorf("%v accepted by natural mode", lexSeq)
	}
}

func TestMode_Compare_NaturalEdges(t *testing.T) {
	nat := Mode{Direction: Asc, CaseSensitive: true, Natural: true}

	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"numeric not textual", "a9", "a10", -1},
		{"prefix first", "a1", "a1b", -1},
		{"digit run then text", "v2rc1", "v2rc2", -1},
		{"leading zeros equal numerically", "a01", "a1", -1},
		{"big runs compared by length", "x100", "x99", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sign(nat.Compare(tt.a, tt.b)); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// descending(a,b) == ascending(b,a) для каждой комбинации case/natural
func TestMode_Compare_DescendingMirror(t *testing.T) {
	inputs := []string{"a", "B", "b", "item2", "item10", "Bar", "bar", "", "a01"}

	for _, caseSensitive := range []bool{true, false} {
		for _, natural := range []bool{true, false} {
			asc := Mode{Direction: Asc, CaseSensitive: caseSensitive, Natural: natural}
			desc := Mode{Direction: Desc, CaseSensitive: caseSensitive, Natural: natural}
			for _, a := range inputs {
				for _, b := range inputs {
					if desc.Compare(a, b) != asc.Compare(b, a) {
						t.Errorf("mode %+v: desc(%q,%q) != asc(%q,%q)", asc, a, b, b, a)
					}
				}
			}
		}
	}
}

func TestParseDirection(t *testing.T) {
	if d, ok := ParseDirection("asc"); !ok || d != Asc {
		t.Errorf("ParseDirection(asc) = %v, %v", d, ok)
	}
	if d, ok := ParseDirection("desc"); !ok || d != Desc {
		t.Errorf("ParseDirection(desc) = %v, %v", d, ok)
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("ParseDirection accepted an unknown value")
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func isSortedUnder(m Mode, keys []string) bool {
	for i := 1; i < len(keys); i++ {
		if !m.InOrder(keys[i-1], keys[i]) {
			return false
		}
	}
	return true
}
