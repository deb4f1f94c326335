package source

type (
	// FileID uniquely identifies a file within a FileSet. Zero is reserved
	// and never issued, so callers can use it as "no file".
	FileID uint32
	// FileFlags encodes load-time metadata about a file.
	FileFlags uint8
)

const (
	// FileVirtual marks content added from memory (stdin, tests).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks files whose UTF-8 BOM was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF marks files whose CRLF line endings were rewritten to LF.
	FileNormalizedCRLF
)

// File holds the normalized content of one .klt file plus the line index
// used for offset-to-position resolution.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineIdx содержит смещения всех '\n' в Content.
	LineIdx []uint32
	// Hash — sha256 от нормализованного содержимого; ключ для кеша результатов.
	Hash  [32]byte
	Flags FileFlags
}

// LineCol is a 1-based human-readable position.
type LineCol struct {
	Line uint32
	Col  uint32
}
