package constraint

// MergeConstraints combines an AST-path result and a pattern-path result
// into the ordering and dedup rule spec §4.6 describes: AST constraints keep
// their pre-order position first, pattern-only additions follow in source
// order, and any (name, kind) collision is resolved by higher confidence,
// with the AST side winning ties.
func MergeConstraints(astConstraints, patternConstraints []Constraint) []Constraint {
	type key struct {
		name string
		kind Kind
	}

	byKey := make(map[key]int, len(astConstraints)+len(patternConstraints))
	merged := make([]Constraint, 0, len(astConstraints)+len(patternConstraints))

	for _, c := range astConstraints {
		k := key{c.Name, c.Kind}
		if _, seen := byKey[k]; seen {
			continue
		}
		byKey[k] = len(merged)
		merged = append(merged, c)
	}

	for _, c := range patternConstraints {
		k := key{c.Name, c.Kind}
		if idx, seen := byKey[k]; seen {
			existing := merged[idx]
			if metadataDiffers(existing, c) {
				merged = append(merged, c)
				continue
			}
			if c.Confidence > existing.Confidence {
				merged[idx] = c
			}
			continue
		}
		byKey[k] = len(merged)
		merged = append(merged, c)
	}

	return merged
}

// metadataDiffers reports whether two same-(name,kind) constraints carry
// distinct metadata, in which case spec §3's dedup invariant permits both to
// survive rather than collapsing them into one.
func metadataDiffers(a, b Constraint) bool {
	if len(a.Metadata) != len(b.Metadata) {
		return true
	}
	for k, v := range a.Metadata {
		if bv, ok := b.Metadata[k]; !ok || bv != v {
			return true
		}
	}
	return false
}

// DedupHoles merges holes whose byte spans overlap and whose kinds match,
// keeping the higher-confidence one, per spec §4.5's detect_all composition
// rule.
func DedupHoles(holes []Hole) []Hole {
	out := make([]Hole, 0, len(holes))
	for _, h := range holes {
		merged := false
		for i, existing := range out {
			if existing.Kind != h.Kind {
				continue
			}
			if !spansOverlap(existing.Location, h.Location) {
				continue
			}
			if h.Confidence > existing.Confidence {
				out[i] = h
			}
			merged = true
			break
		}
		if !merged {
			out = append(out, h)
		}
	}
	return out
}

func spansOverlap(a, b Location) bool {
	if a.File != b.File {
		return false
	}
	return a.StartByte < b.EndByte && b.StartByte < a.EndByte
}
