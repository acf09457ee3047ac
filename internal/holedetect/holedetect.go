// Package holedetect implements the Semantic Hole Detector (spec.md §4.5):
// five detection functions that classify syntax nodes as unfinished code,
// plus detect_all's overlap-based dedup composition.
package holedetect

import (
	"regexp"
	"strings"

	"github.com/oxhq/ananke/internal/constraint"
	"github.com/oxhq/ananke/internal/langtag"
	astsitter "github.com/oxhq/ananke/internal/sitter"
	"github.com/oxhq/ananke/internal/traverse"
)

// DetectAll composes the five detection functions and deduplicates
// positional overlaps of identical kind, keeping the higher-confidence
// hole, per spec.md §4.5. tree may be nil (e.g. GrammarUnavailable, Zig);
// in that case only the raw-source detectors run. file is carried into
// each Hole's Location for downstream reporting.
func DetectAll(tree *astsitter.SyntaxTree, source []byte, tag langtag.Tag, file string) []constraint.Hole {
	if !tag.Valid() {
		return nil
	}

	var holes []constraint.Hole
	if tree != nil {
		root := tree.RootNode()
		holes = append(holes, DetectEmptyFunctionBodies(tree, root, tag, file)...)
		holes = append(holes, DetectUnimplementedMethods(tree, root, tag, file)...)
		holes = append(holes, DetectIncompleteMatches(tree, root, tag, file)...)
		holes = append(holes, DetectMissingTypeAnnotations(tree, root, tag, file)...)
	}
	holes = append(holes, DetectUserMarkedTODOs(source, tag, file)...)

	return constraint.DedupHoles(holes)
}

func bodyOf(n astsitter.Node) astsitter.Node {
	return n.ChildByFieldName("body")
}

// DetectEmptyFunctionBodies finds function-like nodes whose body contains no
// executable statements, or whose body is exactly one recognized
// language-specific placeholder. Confidence ≥ 0.9.
func DetectEmptyFunctionBodies(tree *astsitter.SyntaxTree, root astsitter.Node, tag langtag.Tag, file string) []constraint.Hole {
	var holes []constraint.Hole
	placeholders := placeholderBodyText[tag]

	for _, fn := range traverse.ExtractFunctions(root, tag) {
		body := bodyOf(fn)
		if body.IsZero() {
			continue
		}
		empty := false
		if body.NamedChildCount() == 0 {
			empty = true
		} else if body.NamedChildCount() == 1 && placeholders != nil {
			text := strings.TrimSpace(astsitter.Text(tree, body.NamedChild(0)))
			if _, ok := placeholders[text]; ok {
				empty = true
			}
		}
		if !empty {
			continue
		}
		holes = append(holes, constraint.Hole{
			Kind:       constraint.HoleEmptyFunctionBody,
			Location:   nodeLocation(fn, file),
			Confidence: 0.9,
			Origin:     constraint.OriginInferred,
		})
	}
	return holes
}

// DetectUnimplementedMethods finds function bodies that raise/panic a
// recognized "not implemented" marker. Confidence ≥ 0.95.
func DetectUnimplementedMethods(tree *astsitter.SyntaxTree, root astsitter.Node, tag langtag.Tag, file string) []constraint.Hole {
	markers := notImplementedMarkerSubstrings[tag]
	if len(markers) == 0 {
		return nil
	}
	var holes []constraint.Hole
	for _, fn := range traverse.ExtractFunctions(root, tag) {
		body := bodyOf(fn)
		if body.IsZero() {
			continue
		}
		text := astsitter.Text(tree, body)
		for _, marker := range markers {
			if strings.Contains(text, marker) {
				holes = append(holes, constraint.Hole{
					Kind:       constraint.HoleUnimplementedMethod,
					Location:   nodeLocation(fn, file),
					Confidence: 0.95,
					Origin:     constraint.OriginInferred,
					Hint:       marker,
				})
				break
			}
		}
	}
	return holes
}

// DetectIncompleteMatches finds switch/match constructs lacking exhaustive
// handling: TypeScript switch without a default clause, Rust match whose
// arms contain a placeholder or a wildcard arm with a placeholder body.
// Confidence ≥ 0.9.
func DetectIncompleteMatches(tree *astsitter.SyntaxTree, root astsitter.Node, tag langtag.Tag, file string) []constraint.Hole {
	var holes []constraint.Hole
	switch tag {
	case langtag.TypeScript, langtag.JavaScript:
		for _, sw := range traverse.FindByType(root, "switch_statement") {
			body := sw.ChildByFieldName("body")
			if body.IsZero() {
				body = sw
			}
			hasDefault := false
			for i := 0; i < body.ChildCount(); i++ {
				if body.Child(i).Type() == "switch_default" {
					hasDefault = true
					break
				}
			}
			if !hasDefault {
				holes = append(holes, constraint.Hole{
					Kind:       constraint.HoleIncompleteMatch,
					Location:   nodeLocation(sw, file),
					Confidence: 0.9,
					Origin:     constraint.OriginInferred,
				})
			}
		}
	case langtag.Rust:
		for _, m := range traverse.FindByType(root, "match_expression") {
			text := astsitter.Text(tree, m)
			if strings.Contains(text, "todo!(") || strings.Contains(text, "unimplemented!(") {
				holes = append(holes, constraint.Hole{
					Kind:       constraint.HoleIncompleteMatch,
					Location:   nodeLocation(m, file),
					Confidence: 0.92,
					Origin:     constraint.OriginInferred,
				})
			}
		}
	}
	return holes
}

var anyAnnotationRe = regexp.MustCompile(`:\s*any\b`)

// DetectMissingTypeAnnotations finds TypeScript explicit `any` annotations
// and Python functions mixing typed and untyped parameters. Confidence
// 0.8–0.9. Zig `anytype` parameters are not reported: there is no Zig case
// here, and no Zig grammar is linked, so no Zig tree ever reaches it.
func DetectMissingTypeAnnotations(tree *astsitter.SyntaxTree, root astsitter.Node, tag langtag.Tag, file string) []constraint.Hole {
	var holes []constraint.Hole
	switch tag {
	case langtag.TypeScript:
		for _, n := range traverse.FindByType(root, "type_annotation") {
			if anyAnnotationRe.MatchString(astsitter.Text(tree, n)) {
				holes = append(holes, constraint.Hole{
					Kind:       constraint.HoleMissingTypeAnnotation,
					Location:   nodeLocation(n, file),
					Confidence: 0.85,
					Origin:     constraint.OriginInferred,
				})
			}
		}
	case langtag.Python:
		for _, fn := range traverse.ExtractFunctions(root, tag) {
			params := fn.ChildByFieldName("parameters")
			if params.IsZero() {
				continue
			}
			var typed, untyped []astsitter.Node
			for i := 0; i < params.NamedChildCount(); i++ {
				p := params.NamedChild(i)
				switch p.Type() {
				case "typed_parameter", "typed_default_parameter":
					typed = append(typed, p)
				case "identifier", "default_parameter":
					untyped = append(untyped, p)
				}
			}
			if len(typed) > 0 && len(untyped) > 0 {
				for _, p := range untyped {
					holes = append(holes, constraint.Hole{
						Kind:       constraint.HoleMissingTypeAnnotation,
						Location:   nodeLocation(p, file),
						Confidence: 0.8,
						Origin:     constraint.OriginInferred,
					})
				}
			}
		}
	}
	return holes
}

var userMarkedRe = buildUserMarkedRegex()

func buildUserMarkedRegex() *regexp.Regexp {
	var parts []string
	for _, kw := range userMarkedKeywords {
		parts = append(parts, regexp.QuoteMeta(kw))
	}
	parts = append(parts, `@panic\("TODO"\)`, `todo!\(\)`)
	return regexp.MustCompile(strings.Join(parts, "|"))
}

// DetectUserMarkedTODOs scans raw source bytes for developer-left markers
// (TODO, FIXME, XXX, @panic("TODO"), todo!(), …), independent of grammar
// availability. Holes carry origin=user_marked, unlike the other four
// detectors which emit origin=inferred.
func DetectUserMarkedTODOs(source []byte, tag langtag.Tag, file string) []constraint.Hole {
	if !tag.Valid() {
		return nil
	}
	var holes []constraint.Hole
	for _, loc := range userMarkedRe.FindAllIndex(source, -1) {
		holes = append(holes, constraint.Hole{
			Kind: constraint.HoleUserMarkedTODO,
			Location: constraint.Location{
				File:      file,
				StartByte: loc[0],
				EndByte:   loc[1],
			},
			Confidence: 1.0,
			Origin:     constraint.OriginUserMarked,
			Hint:       string(source[loc[0]:loc[1]]),
		})
	}
	return holes
}

func nodeLocation(n astsitter.Node, file string) constraint.Location {
	p := n.StartPoint()
	return constraint.Location{
		File:      file,
		Line:      int(p.Row) + 1,
		Col:       int(p.Column) + 1,
		StartByte: n.StartByte(),
		EndByte:   n.EndByte(),
	}
}
