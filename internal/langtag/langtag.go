// Package langtag defines the closed set of source languages the extraction
// core understands and the total mapping from file extensions to them.
package langtag

import "strings"

// Tag identifies a source language understood by the extraction core.
type Tag string

const (
	TypeScript Tag = "typescript"
	JavaScript Tag = "javascript"
	Python     Tag = "python"
	Rust       Tag = "rust"
	Go         Tag = "go"
	Zig        Tag = "zig"
	C          Tag = "c"
	Cpp        Tag = "cpp"
	Java       Tag = "java"

	// None is returned when a LanguageTag cannot be derived; it is a value,
	// never an error.
	None Tag = ""
)

var aliases = map[string]Tag{
	"typescript": TypeScript,
	"ts":         TypeScript,
	"tsx":        TypeScript,
	"javascript": JavaScript,
	"js":         JavaScript,
	"jsx":        JavaScript,
	"python":     Python,
	"py":         Python,
	"rust":       Rust,
	"rs":         Rust,
	"go":         Go,
	"golang":     Go,
	"zig":        Zig,
	"c":          C,
	"cpp":        Cpp,
	"c++":        Cpp,
	"cxx":        Cpp,
	"java":       Java,
}

// builtinExtensions is the fixed extension table from spec.md §4.1. It is
// total: every extension present here resolves unambiguously to one Tag.
var builtinExtensions = map[string]Tag{
	".ts":  TypeScript,
	".tsx": TypeScript,
	".js":  JavaScript,
	".jsx": JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".py":  Python,
	".rs":  Rust,
	".go":  Go,
	".zig": Zig,
	".c":   C,
	".h":   C,
	".cpp": Cpp,
	".cc":  Cpp,
	".hpp": Cpp,
	".java": Java,
}

// FromAlias resolves a case-insensitive language identifier or alias
// (e.g. "ts", "TypeScript", "golang") to a Tag. The zero value None is
// returned, never an error, when the identifier is unrecognized.
func FromAlias(name string) Tag {
	t, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return None
	}
	return t
}

// FromExtension derives a Tag from a file extension (with or without the
// leading dot). extra, when non-nil, is consulted first so that callers can
// supply user_extensions overrides per spec.md §6 without mutating global
// state. Derivation is total: an unrecognized extension yields None, never
// an error.
func FromExtension(ext string, extra map[string]Tag) Tag {
	if ext == "" {
		return None
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	ext = strings.ToLower(ext)
	if extra != nil {
		if t, ok := extra[ext]; ok {
			return t
		}
	}
	if t, ok := builtinExtensions[ext]; ok {
		return t
	}
	return None
}

// Valid reports whether t is one of the nine closed enum members (None is
// not valid).
func (t Tag) Valid() bool {
	switch t {
	case TypeScript, JavaScript, Python, Rust, Go, Zig, C, Cpp, Java:
		return true
	default:
		return false
	}
}

func (t Tag) String() string { return string(t) }
