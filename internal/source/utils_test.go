package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		want    []byte
		changed bool
	}{
		{
			name:    "no carriage returns",
			in:      []byte("a\nb\n"),
			want:    []byte("a\nb\n"),
			changed: false,
		},
		{
			name:    "crlf pairs replaced",
			in:      []byte("a\r\nb\r\n"),
			want:    []byte("a\nb\n"),
			changed: true,
		},
		{
			name:    "lone cr preserved",
			in:      []byte("a\rb"),
			want:    []byte("a\rb"),
			changed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF(tt.in)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("normalizeCRLF() = %q, want %q", got, tt.want)
			}
			if changed != tt.changed {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
		})
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("one\ntwo\nthree\n")
	idx := buildLineIndex(content)

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{2, LineCol{Line: 1, Col: 3}},
		{4, LineCol{Line: 2, Col: 1}},
		{8, LineCol{Line: 3, Col: 1}},
		{12, LineCol{Line: 3, Col: 5}},
	}

	for _, tt := range tests {
		if got := toLineCol(idx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %v, want %v", tt.off, got, tt.want)
		}
	}
}

func TestFileSet_AddAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.klt", []byte("{\n  a: 1,\n}\n"))

	start, _ := fs.Resolve(Span{File: id, Start: 4, End: 5})
	if start.Line != 2 || start.Col != 3 {
		t.Errorf("Resolve() start = %v, want line 2 col 3", start)
	}

	if got, ok := fs.GetLatest("test.klt"); !ok || got != id {
		t.Errorf("GetLatest() = %v, %v", got, ok)
	}
}
