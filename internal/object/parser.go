package object

import (
	"strings"

	"keylint/internal/diag"
	"keylint/internal/lexer"
	"keylint/internal/source"
	"keylint/internal/token"
)

// Parser строит Object-структуры из потока токенов одного файла.
type Parser struct {
	file     *source.File
	lx       *lexer.Lexer
	reporter diag.Reporter
	out      *File
}

// Parse consumes the whole file: one top-level value, then EOF.
// Every object literal encountered (at any nesting depth) is collected
// into the returned File in discovery order.
func Parse(file *source.File, reporter diag.Reporter) *File {
	p := &Parser{
		file:     file,
		lx:       lexer.New(file, lexer.Options{Reporter: reporter}),
		reporter: reporter,
		out:      &File{},
	}

	if p.lx.Peek().Kind == token.EOF {
		return p.out
	}

	p.parseValue()

	if trailing := p.lx.Peek(); trailing.Kind != token.EOF {
		p.report(diag.SynTrailingTokens, trailing.Span, "unexpected tokens after top-level value")
	}
	return p.out
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	if p.reporter != nil {
		p.reporter.Report(code, diag.SevError, sp, msg, nil, nil)
	}
}

// parseValue разбирает значение и возвращает его span.
func (p *Parser) parseValue() (source.Span, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.StringLit, token.IntLit, token.FloatLit,
		token.KwTrue, token.KwFalse, token.KwNull, token.Ident:
		p.lx.Next()
		return tok.Span, true

	case token.Minus, token.Plus:
		p.lx.Next()
		num := p.lx.Peek()
		if num.Kind != token.IntLit && num.Kind != token.FloatLit {
			p.report(diag.SynExpectValue, num.Span, "expected a number after sign")
			return tok.Span, false
		}
		p.lx.Next()
		return tok.Span.Cover(num.Span), true

	case token.LBrace:
		obj := p.parseObject()
		return obj.Span, true

	case token.LBracket:
		return p.parseArray()

	default:
		p.report(diag.SynExpectValue, tok.Span, "expected a value, got "+tok.Kind.String())
		return tok.Span, false
	}
}

func (p *Parser) parseArray() (source.Span, bool) {
	open := p.lx.Next() // '['
	span := open.Span
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.RBracket:
			p.lx.Next()
			return span.Cover(tok.Span), true
		case token.EOF:
			p.report(diag.SynUnclosedBracket, open.Span, "unclosed '['")
			return span, false
		case token.Comma:
			p.lx.Next()
		default:
			if _, ok := p.parseValue(); !ok {
				p.lx.Next() // не зацикливаемся на мусоре
			}
		}
	}
}

// parseObject разбирает объект начиная с текущего токена '{'.
func (p *Parser) parseObject() *Object {
	open := p.lx.Next() // '{'
	obj := &Object{Span: open.Span}
	// outer раньше inner
	p.out.Objects = append(p.out.Objects, obj)

	var pendingGap []LineRange
	havePrev := false

	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.RBrace:
			p.lx.Next()
			obj.Span = obj.Span.Cover(tok.Span)
			return obj

		case token.EOF:
			p.report(diag.SynUnclosedBrace, open.Span, "unclosed '{'")
			return obj

		case token.Comma:
			// лишняя запятая; токен всё равно попадает в gap
			p.report(diag.SynUnexpectedToken, tok.Span, "unexpected ','")
			p.lx.Next()
			pendingGap = append(pendingGap, p.lineRange(tok.Span))

		default:
			attachedStart := p.attachStart(tok)
			gapCandidate := pendingGap
			if havePrev {
				for _, tr := range tok.Leading {
					if tr.IsComment() && tr.Span.Start < attachedStart {
						gapCandidate = append(gapCandidate, p.lineRange(tr.Span))
					}
				}
			}
			pendingGap = nil

			entry, ok := p.parseEntry(attachedStart)
			if ok {
				// Gaps выравнены с Entries даже при ошибках разбора
				if havePrev {
					obj.Gaps = append(obj.Gaps, gapCandidate)
				}
				obj.Entries = append(obj.Entries, entry)
				havePrev = true
			}

			var commaEnd uint32
			if next := p.lx.Peek(); next.Kind == token.Comma {
				p.lx.Next()
				pendingGap = append(pendingGap, p.lineRange(next.Span))
				commaEnd = next.Span.End
			}
			if ok {
				last := &obj.Entries[len(obj.Entries)-1]
				if commaEnd == 0 {
					commaEnd = last.Span.End
				}
				p.attachTrailing(last, commaEnd)
			}
		}
	}
}

// attachTrailing записывает хвост записи: комментарий на той же строке
// после запятой документирует эту запись, а не следующую. anchor —
// позиция сразу за запятой (или за значением, если запятой нет).
func (p *Parser) attachTrailing(e *Entry, anchor uint32) {
	next := p.lx.Peek()
	end := anchor
	eol := next.Kind == token.EOF
scan:
	for _, tr := range next.Leading {
		switch tr.Kind {
		case token.TriviaSpace:
		case token.TriviaLineComment, token.TriviaBlockComment:
			end = tr.Span.End
		default:
			// перевод строки: хвост закончился
			eol = true
			break scan
		}
	}
	e.Trailing = source.Span{File: p.file.ID, Start: anchor, End: end}
	e.TrailingEOL = eol
	if end > anchor {
		e.TrailingText = string(p.file.Content[anchor:end])
	}
}

// parseEntry разбирает одну запись объекта. attachedStart — начало
// прикреплённых leading-комментариев (см. attachStart).
func (p *Parser) parseEntry(attachedStart uint32) (Entry, bool) {
	tok := p.lx.Next()
	spanStart := attachedStart
	if tok.Span.Start < spanStart {
		spanStart = tok.Span.Start
	}

	var entry Entry

	switch tok.Kind {
	case token.Ellipsis:
		valueSpan, ok := p.parseValue()
		if !ok {
			p.skipEntry()
			return Entry{}, false
		}
		entry = Entry{
			Kind:    EntrySpread,
			KeySpan: tok.Span.Cover(valueSpan),
		}
		return p.finishEntry(entry, spanStart, valueSpan.End), true

	case token.Ident, token.StringLit, token.IntLit, token.FloatLit,
		token.KwTrue, token.KwFalse, token.KwNull:
		entry = Entry{
			Kind:    EntryStatic,
			Name:    keyName(tok),
			KeySpan: tok.Span,
		}

	case token.LBracket:
		kind, name, keySpan, ok := p.parseComputedKey(tok)
		if !ok {
			p.skipEntry()
			return Entry{}, false
		}
		entry = Entry{Kind: kind, Name: name, KeySpan: keySpan}

	default:
		p.report(diag.SynExpectKey, tok.Span, "expected an entry key, got "+tok.Kind.String())
		p.skipEntry()
		return Entry{}, false
	}

	if colon := p.lx.Peek(); colon.Kind != token.Colon {
		p.report(diag.SynExpectColon, colon.Span, "expected ':' after key")
		p.skipEntry()
		return Entry{}, false
	}
	p.lx.Next() // ':'

	valueSpan, ok := p.parseValue()
	if !ok {
		p.skipEntry()
		return Entry{}, false
	}
	return p.finishEntry(entry, spanStart, valueSpan.End), true
}

func (p *Parser) finishEntry(entry Entry, start, end uint32) Entry {
	entry.Span = source.Span{File: p.file.ID, Start: start, End: end}
	entry.Text = string(p.file.Content[start:end])
	entry.StartLine = p.file.LineOf(start)
	if end > start {
		entry.EndLine = p.file.LineOf(end - 1)
	} else {
		entry.EndLine = entry.StartLine
	}
	return entry
}

// parseComputedKey разбирает '[...]' ключ. Единственный литерал внутри
// скобок — compile-time имя; всё остальное — динамическое выражение.
func (p *Parser) parseComputedKey(open token.Token) (EntryKind, string, source.Span, bool) {
	span := open.Span
	inner := make([]token.Token, 0, 2)
	depth := 1
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF:
			p.report(diag.SynUnclosedBracket, open.Span, "unclosed '[' in computed key")
			return EntryComputedDynamic, "", span, false
		case token.LBracket:
			depth++
		case token.RBracket:
			depth--
			if depth == 0 {
				p.lx.Next()
				span = span.Cover(tok.Span)
				if len(inner) == 1 && inner[0].IsLiteral() {
					return EntryComputedLiteral, keyName(inner[0]), span, true
				}
				return EntryComputedDynamic, "", span, true
			}
		}
		p.lx.Next()
		inner = append(inner, tok)
	}
}

// skipEntry пропускает токены до границы записи (',', '}', EOF),
// учитывая вложенность скобок.
func (p *Parser) skipEntry() {
	depth := 0
	for {
		tok := p.lx.Peek()
		switch tok.Kind {
		case token.EOF:
			return
		case token.Comma:
			if depth == 0 {
				return
			}
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
		case token.LBrace, token.LBracket, token.LParen:
			depth++
		case token.RBracket, token.RParen:
			if depth > 0 {
				depth--
			}
		}
		p.lx.Next()
	}
}

// attachStart возвращает байтовую позицию, с которой начинаются
// прикреплённые к токену leading-комментарии: непрерывная цепочка
// комментариев прямо над токеном, не отделённая пустой строкой.
// Комментарий, стоящий после кода на чужой строке, — это хвост
// предыдущей записи, а не шапка следующей.
func (p *Parser) attachStart(tok token.Token) uint32 {
	start := tok.Span.Start
	newlines := 0
	for i := len(tok.Leading) - 1; i >= 0; i-- {
		tr := tok.Leading[i]
		switch tr.Kind {
		case token.TriviaSpace:
			continue
		case token.TriviaNewline:
			newlines++
			if newlines > 1 {
				return start
			}
		case token.TriviaLineComment, token.TriviaBlockComment:
			if newlines > 1 || !ownsLine(tok.Leading, i) {
				return start
			}
			start = tr.Span.Start
			newlines = 0
		}
	}
	return start
}

// ownsLine сообщает, начинает ли комментарий с индексом i свою строку:
// левее него (через пробелы) стоит перевод строки, а не код.
func ownsLine(leading []token.Trivia, i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch leading[j].Kind {
		case token.TriviaSpace:
			continue
		case token.TriviaNewline:
			return true
		default:
			return false
		}
	}
	return false
}

func (p *Parser) lineRange(sp source.Span) LineRange {
	lr := LineRange{Start: p.file.LineOf(sp.Start)}
	if sp.End > sp.Start {
		lr.End = p.file.LineOf(sp.End - 1)
	} else {
		lr.End = lr.Start
	}
	return lr
}

// keyName возвращает статическое имя ключа для литерального токена.
func keyName(tok token.Token) string {
	if tok.Kind == token.StringLit {
		return unquote(tok.Text)
	}
	return tok.Text
}

func unquote(text string) string {
	if len(text) < 2 {
		return text
	}
	q := text[0]
	if (q != '"' && q != '\'') || text[len(text)-1] != q {
		return text
	}
	body := text[1 : len(text)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			b.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(body[i])
		}
	}
	return b.String()
}
