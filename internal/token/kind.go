package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a bare identifier key.
	Ident
	// StringLit represents a quoted string literal.
	StringLit
	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a float literal.
	FloatLit
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null

	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// Colon represents ':'.
	Colon // :
	// Comma represents ','.
	Comma // ,
	// Ellipsis represents the spread marker '...'.
	Ellipsis // ...
	// Minus represents '-' (sign of a numeric literal).
	Minus // -
	// Plus represents '+' (sign of a numeric literal).
	Plus // +
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case StringLit:
		return "StringLit"
	case IntLit:
		return "IntLit"
	case FloatLit:
		return "FloatLit"
	case KwTrue:
		return "KwTrue"
	case KwFalse:
		return "KwFalse"
	case KwNull:
		return "KwNull"
	case LBrace:
		return "LBrace"
	case RBrace:
		return "RBrace"
	case LBracket:
		return "LBracket"
	case RBracket:
		return "RBracket"
	case LParen:
		return "LParen"
	case RParen:
		return "RParen"
	case Colon:
		return "Colon"
	case Comma:
		return "Comma"
	case Ellipsis:
		return "Ellipsis"
	case Minus:
		return "Minus"
	case Plus:
		return "Plus"
	}
	return "Unknown"
}
