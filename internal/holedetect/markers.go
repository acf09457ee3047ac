package holedetect

import "github.com/oxhq/ananke/internal/langtag"

// placeholderBodyText is the set of single-statement bodies spec.md §4.5
// recognizes as an "empty" function body even though the grammar sees a
// non-empty block: Python pass/..., Rust todo!()/unimplemented!(), Zig
// unreachable. TypeScript/JavaScript's literal {} is handled separately
// since it has zero named children rather than one placeholder statement.
var placeholderBodyText = map[langtag.Tag]map[string]struct{}{
	langtag.Python: {"pass": {}, "...": {}},
	langtag.Rust:   {"todo!()": {}, "unimplemented!()": {}},
	langtag.Zig:    {"unreachable": {}, "unreachable;": {}},
}

// notImplementedMarkerSubstrings are scanned for inside a function body's
// text to classify it as an unimplemented-method raise/throw/panic, per
// language.
var notImplementedMarkerSubstrings = map[langtag.Tag][]string{
	langtag.Python:     {"NotImplementedError"},
	langtag.Rust:       {"unimplemented!(", "todo!("},
	langtag.TypeScript: {"new Error('TODO')", `new Error("TODO")`, "new Error('Not implemented')", `new Error("Not implemented")`},
	langtag.JavaScript: {"new Error('TODO')", `new Error("TODO")`, "new Error('Not implemented')", `new Error("Not implemented")`},
	langtag.Zig:        {`@panic("TODO")`},
}

// userMarkedKeywords are scanned across raw source bytes (any language)
// looking for developer-left markers, independent of grammar availability.
var userMarkedKeywords = []string{"TODO", "FIXME", "XXX"}
