package diagfmt

// PathMode specifies how file paths are rendered in diagnostics output.
type PathMode uint8

const (
	// PathModeAuto keeps short paths as-is and shortens long ones to the basename.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always renders absolute paths.
	PathModeAbsolute
	// PathModeRelative renders paths relative to the FileSet base directory.
	PathModeRelative
	// PathModeBasename renders only the file name.
	PathModeBasename
)

// PrettyOpts configures the human-readable renderer.
type PrettyOpts struct {
	// Color toggles ANSI styling of severities and underlines.
	Color bool
	// Context is the number of source lines printed around the primary span.
	Context  int8
	PathMode PathMode
	// ShowNotes prints secondary notes below each diagnostic.
	ShowNotes bool
	// ShowFixes prints available fix titles and their apply strings.
	ShowFixes bool
	// ShowPreview prints a unified before/after preview for each fix.
	ShowPreview bool
}

// JSONOpts configures the machine-readable renderer.
type JSONOpts struct {
	// IncludePositions adds resolved line/col pairs next to byte offsets.
	IncludePositions bool
	PathMode         PathMode
	// Max truncates the rendered list; 0 means no limit. Не влияет на Bag.
	Max             int
	IncludeNotes    bool
	IncludeFixes    bool
	IncludePreviews bool
}

// SarifRunMeta identifies the tool run in SARIF output.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InvocationArgs []string
}
