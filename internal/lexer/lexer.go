package lexer

import (
	"keylint/internal/diag"
	"keylint/internal/source"
	"keylint/internal/token"
)

// Options configures the lexer. Reporter may be nil — тогда ошибки
// игнорируем, но продолжаем лексить.
type Options struct {
	Reporter diag.Reporter
}

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий **значимый** токен с уже собранным Leading.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		// Leading из hold не приклеиваем к EOF
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch == '"' || ch == '\'':
		tok = lx.scanString(ch)
	default:
		tok = lx.scanPunct()
	}

	tok.Leading = lx.takeHold()
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		tok := lx.Next()
		lx.look = &tok
	}
	return *lx.look
}

// Tokenize прогоняет файл целиком и возвращает все значимые токены,
// включая завершающий EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	out := make([]token.Token, 0, 64)
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

const utf8RuneSelf = 0x80

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) takeHold() []token.Trivia {
	if len(lx.hold) == 0 {
		return nil
	}
	out := lx.hold
	lx.hold = nil
	return out
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}

// collectLeadingTrivia набивает lx.hold пробелами, переводами строк и комментариями.
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == '\n':
			m := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: lx.cursor.SpanFrom(m),
				Text: "\n",
			})
		case ch == ' ' || ch == '\t' || ch == '\r':
			m := lx.cursor.Mark()
			for !lx.cursor.EOF() {
				b := lx.cursor.Peek()
				if b != ' ' && b != '\t' && b != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: lx.cursor.SpanFrom(m),
				Text: lx.cursor.TextFrom(m),
			})
		case ch == '/' && lx.cursor.PeekAt(1) == '/':
			m := lx.cursor.Mark()
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaLineComment,
				Span: lx.cursor.SpanFrom(m),
				Text: lx.cursor.TextFrom(m),
			})
		case ch == '/' && lx.cursor.PeekAt(1) == '*':
			lx.scanBlockComment()
		default:
			return
		}
	}
}

func (lx *Lexer) scanBlockComment() {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	closed := false
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed = true
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(m)
	if !closed {
		lx.report(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	}
	lx.hold = append(lx.hold, token.Trivia{
		Kind: token.TriviaBlockComment,
		Span: sp,
		Text: lx.cursor.TextFrom(m),
	})
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if !isIdentContinueByte(b) && b < utf8RuneSelf {
			break
		}
		lx.cursor.Bump()
	}
	text := lx.cursor.TextFrom(m)
	kind := token.Ident
	switch text {
	case "true":
		kind = token.KwTrue
	case "false":
		kind = token.KwFalse
	case "null":
		kind = token.KwNull
	}
	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(m), Text: text}
}

func (lx *Lexer) scanNumber() token.Token {
	m := lx.cursor.Mark()
	kind := token.IntLit

	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		kind = token.FloatLit
		lx.cursor.Bump()
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		next := lx.cursor.PeekAt(1)
		nextNext := lx.cursor.PeekAt(2)
		if isDec(next) || ((next == '+' || next == '-') && isDec(nextNext)) {
			kind = token.FloatLit
			lx.cursor.Bump()
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	sp := lx.cursor.SpanFrom(m)
	text := lx.cursor.TextFrom(m)

	// число не может продолжаться идентификаторной буквой: 12abc
	if b := lx.cursor.Peek(); isIdentStartByte(b) {
		for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp = lx.cursor.SpanFrom(m)
		text = lx.cursor.TextFrom(m)
		lx.report(diag.LexBadNumber, sp, "malformed numeric literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	return token.Token{Kind: kind, Span: sp, Text: text}
}

func (lx *Lexer) scanString(quote byte) token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	closed := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
		if b == '\\' && !lx.cursor.EOF() {
			lx.cursor.Bump() // escaped char, включая \" и \\
			continue
		}
		if b == quote {
			closed = true
			break
		}
	}
	sp := lx.cursor.SpanFrom(m)
	text := lx.cursor.TextFrom(m)
	if !closed {
		lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: token.StringLit, Span: sp, Text: text}
}

func (lx *Lexer) scanPunct() token.Token {
	m := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	var kind token.Kind
	switch ch {
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case ':':
		kind = token.Colon
	case ',':
		kind = token.Comma
	case '-':
		kind = token.Minus
	case '+':
		kind = token.Plus
	case '.':
		if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) == '.' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			kind = token.Ellipsis
		} else {
			kind = token.Invalid
		}
	default:
		kind = token.Invalid
	}

	sp := lx.cursor.SpanFrom(m)
	text := lx.cursor.TextFrom(m)
	if kind == token.Invalid {
		lx.report(diag.LexUnknownChar, sp, "unknown character "+text)
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b) || b >= utf8RuneSelf
}
