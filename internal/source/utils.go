package source

import (
	"bytes"
	"path/filepath"
	"sort"
)

// normalizeCRLF переписывает все \r\n в \n. Одиночные \r остаются как есть:
// они значимы для подсчёта колонок и не являются переводом строки.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, []byte{'\r', '\n'}) {
		return content, false
	}

	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); i++ {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			continue
		}
		out = append(out, content[i])
	}
	return out, true
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, utf8BOM) {
		return content[len(utf8BOM):], true
	}
	return content, false
}

// buildLineIndex записывает смещения всех '\n'.
func buildLineIndex(content []byte) []uint32 {
	var out []uint32
	for off := 0; ; {
		i := bytes.IndexByte(content[off:], '\n')
		if i < 0 {
			return out
		}
		out = append(out, uint32(off+i))
		off += i + 1
	}
}

// toLineCol переводит байтовое смещение в 1-based строку/колонку.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// первая позиция, чей '\n' лежит на off или дальше
	line := sort.Search(len(lineIdx), func(i int) bool {
		return lineIdx[i] >= off
	})
	if line == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	startOff := lineIdx[line-1] + 1
	return LineCol{Line: uint32(line + 1), Col: off - startOff + 1}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
