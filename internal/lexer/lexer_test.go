package lexer

import (
	"testing"

	"keylint/internal/diag"
	"keylint/internal/source"
	"keylint/internal/token"
)

func lexKinds(t *testing.T, input string) []token.Kind {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.klt", []byte(input))
	toks := Tokenize(fs.Get(id), Options{})
	kinds := make([]token.Kind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestLexer_Kinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Kind
	}{
		{
			name:  "simple object",
			input: `{a: 1, b: 2}`,
			want: []token.Kind{
				token.LBrace, token.Ident, token.Colon, token.IntLit, token.Comma,
				token.Ident, token.Colon, token.IntLit, token.RBrace, token.EOF,
			},
		},
		{
			name:  "string keys and values",
			input: `{"a-b": "x"}`,
			want: []token.Kind{
				token.LBrace, token.StringLit, token.Colon, token.StringLit,
				token.RBrace, token.EOF,
			},
		},
		{
			name:  "spread entry",
			input: `{...rest}`,
			want: []token.Kind{
				token.LBrace, token.Ellipsis, token.Ident, token.RBrace, token.EOF,
			},
		},
		{
			name:  "computed key",
			input: `{[key]: true}`,
			want: []token.Kind{
				token.LBrace, token.LBracket, token.Ident, token.RBracket,
				token.Colon, token.KwTrue, token.RBrace, token.EOF,
			},
		},
		{
			name:  "floats and negatives",
			input: `{a: -1.5, b: 2e10}`,
			want: []token.Kind{
				token.LBrace, token.Ident, token.Colon, token.Minus, token.FloatLit, token.Comma,
				token.Ident, token.Colon, token.FloatLit, token.RBrace, token.EOF,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexKinds(t, tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexer_LeadingTrivia(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.klt", []byte("{\n  // comment\n  a: 1,\n}"))
	lx := New(fs.Get(id), Options{})

	if tok := lx.Next(); tok.Kind != token.LBrace {
		t.Fatalf("first token = %v, want LBrace", tok.Kind)
	}
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "a" {
		t.Fatalf("second token = %v %q", tok.Kind, tok.Text)
	}

	var comments, newlines int
	for _, tr := range tok.Leading {
		switch tr.Kind {
		case token.TriviaLineComment:
			comments++
			if tr.Text != "// comment" {
				t.Errorf("comment text = %q", tr.Text)
			}
		case token.TriviaNewline:
			newlines++
		}
	}
	if comments != 1 {
		t.Errorf("comments = %d, want 1", comments)
	}
	if newlines != 2 {
		t.Errorf("newlines = %d, want 2", newlines)
	}
}

func TestLexer_Diagnostics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"unterminated string", `{a: "oops`, diag.LexUnterminatedString},
		{"unterminated block comment", `{a: 1} /* nope`, diag.LexUnterminatedBlockComment},
		{"bad number", `{a: 12abc}`, diag.LexBadNumber},
		{"unknown char", `{a @ 1}`, diag.LexUnknownChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			id := fs.AddVirtual("test.klt", []byte(tt.input))
			bag := diag.NewBag(16)
			Tokenize(fs.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}})

			found := false
			for _, d := range bag.Items() {
				if d.Code == tt.code {
					found = true
				}
			}
			if !found {
				t.Errorf("expected code %v, got %d diagnostics: %v", tt.code, bag.Len(), bag.Items())
			}
		})
	}
}
