package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Синтаксические
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynExpectKey       Code = 2002
	SynExpectColon     Code = 2003
	SynExpectValue     Code = 2004
	SynUnclosedBrace   Code = 2005
	SynUnclosedBracket Code = 2006
	SynTrailingTokens  Code = 2007

	// Порядок ключей
	OrdInfo         Code = 3000
	OrdKeysUnsorted Code = 3001

	// I/O
	IOLoadFileError Code = 4000

	// Проект/конфигурация
	PrjInfo Code = 5000
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed numeric literal",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynExpectKey:                "Expected an entry key",
	SynExpectColon:              "Expected ':' after key",
	SynExpectValue:              "Expected a value",
	SynUnclosedBrace:            "Unclosed '{'",
	SynUnclosedBracket:          "Unclosed '['",
	SynTrailingTokens:           "Trailing tokens after top-level value",
	OrdInfo:                     "Key order information",
	OrdKeysUnsorted:             "Object keys are not sorted",
	IOLoadFileError:             "I/O load file error",
	PrjInfo:                     "Project information",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("ORD%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
