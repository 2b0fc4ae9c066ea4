// Package recolor rewrites color literals inside SVG resource templates.
//
// Recoloring is a plain byte substitution: every occurrence of a template
// color literal is replaced with the resolved theme color. Replacements
// are applied longest-first so a short literal never clobbers a longer
// one that contains it as a prefix.
package recolor

import (
	"bytes"
	"sort"
)

// Replacement maps one color literal to another.
type Replacement struct {
	From string
	To   string
}

// BuildReplacements resolves a state's template-color -> variable map into
// a replacement list. The resolve function maps a variable name to its
// color value. Variables that do not resolve are skipped and returned as
// the second value.
func BuildReplacements(mapping map[string]string, resolve func(name string) (string, bool)) ([]Replacement, []string) {
	reps := make([]Replacement, 0, len(mapping))
	var unresolved []string

	for from, variable := range mapping {
		to, ok := resolve(variable)
		if !ok || to == "" {
			unresolved = append(unresolved, variable)
			continue
		}
		reps = append(reps, Replacement{From: from, To: to})
	}

	sortReplacements(reps)
	sort.Strings(unresolved)
	return reps, unresolved
}

// sortReplacements orders replacements longest-first, then lexicographically
// for determinism.
func sortReplacements(reps []Replacement) {
	sort.Slice(reps, func(i, j int) bool {
		if len(reps[i].From) != len(reps[j].From) {
			return len(reps[i].From) > len(reps[j].From)
		}
		return reps[i].From < reps[j].From
	})
}

// Apply performs all replacements on content and returns the result.
// The input slice is not modified.
func Apply(content []byte, reps []Replacement) []byte {
	out := content
	for _, rep := range reps {
		out = bytes.ReplaceAll(out, []byte(rep.From), []byte(rep.To))
	}
	// ReplaceAll may return the original slice when nothing matched.
	if len(reps) == 0 {
		out = append([]byte(nil), content...)
	}
	return out
}
