package object

import (
	"keylint/internal/source"
)

// EntryKind classifies one element of an object literal. Every phase
// downstream matches exhaustively over these four cases.
type EntryKind uint8

const (
	// EntryStatic is a plain key with a statically-known name
	// (identifier, string, or number literal).
	EntryStatic EntryKind = iota
	// EntryComputedLiteral is a computed key [lit] whose expression is a
	// single compile-time literal; it behaves exactly like a static key.
	EntryComputedLiteral
	// EntryComputedDynamic is a computed key whose value cannot be
	// determined statically.
	EntryComputedDynamic
	// EntrySpread is a ...spread element. It can never be reordered
	// relative to its neighbors.
	EntrySpread
)

func (k EntryKind) String() string {
	switch k {
	case EntryStatic:
		return "static"
	case EntryComputedLiteral:
		return "computed-literal"
	case EntryComputedDynamic:
		return "computed-dynamic"
	case EntrySpread:
		return "spread"
	}
	return "unknown"
}

// Entry is an immutable view over one parsed element of an object literal.
//
// Span covers the entry's own tokens plus any attached leading comments;
// it never includes the separating comma, so swapping the texts of two
// entry spans keeps the surrounding punctuation intact.
type Entry struct {
	Kind    EntryKind
	Name    string      // статическое имя ключа; пусто для dynamic/spread
	KeySpan source.Span // span самого ключа (для диагностик)
	Span    source.Span
	Text    string // verbatim source text of Span

	// Trailing covers the same-line trivia after the entry's separating
	// comma (or after the value when there is no comma): whitespace plus
	// a trailing comment. Такой комментарий принадлежит записи и должен
	// переезжать вместе с ней. Zero-width when the line ends right away.
	Trailing     source.Span
	TrailingText string // verbatim source text of Trailing
	// TrailingEOL is true when nothing but a line break follows Trailing.
	// Only such slots can safely receive a migrated line comment.
	TrailingEOL bool

	StartLine uint32 // 1-based, первая строка Span
	EndLine   uint32 // 1-based, последняя строка Span
}

// LineRange is the inclusive line extent of one token or comment.
type LineRange struct {
	Start uint32
	End   uint32
}

// Object is one parsed object literal. Gaps[i] lists the line ranges of
// every token and comment lying strictly between Entries[i] and
// Entries[i+1] (commas, detached comments); blank-line detection walks
// entry end lines, gap ranges, and entry start lines.
type Object struct {
	Span    source.Span
	Entries []Entry
	Gaps    [][]LineRange // len = max(0, len(Entries)-1)
}

// File is the parse result for one source file: every object literal in
// discovery order, outer before inner.
type File struct {
	Objects []*Object
}
