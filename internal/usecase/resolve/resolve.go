// Package resolve implements tiered override resolution: an ordered chain of
// candidate values where the first non-empty tier wins. The same chain shape
// backs prompt-section values (item -> character default -> global default)
// and theme selection (character override -> app-wide id -> fallback).
package resolve

import (
	"strings"

	"github.com/alwaysleaveanote/perchanceManger-sub002/internal/domain"
)

// First returns the first tier that is non-empty after trimming, and whether
// any tier was present. Whitespace-only tiers count as absent.
func First(tiers ...string) (string, bool) {
	for _, t := range tiers {
		if v := strings.TrimSpace(t); v != "" {
			return v, true
		}
	}
	return "", false
}

// Section resolves the effective value of one prompt section. The returned
// value is trimmed. ok is false when all three tiers are absent, which the
// composer treats as "omit this section".
func Section(itemText, characterDefault, globalDefault string) (value string, ok bool) {
	return First(itemText, characterDefault, globalDefault)
}

// Theme resolves the effective theme id. An override or global id that the
// catalog does not know is skipped, never an error; when nothing valid
// remains the built-in fallback wins. Callers must re-resolve whenever either
// input changes — results are never cached.
func Theme(overrideID, globalID string, exists func(string) bool) string {
	if id := strings.TrimSpace(overrideID); id != "" && exists(id) {
		return id
	}
	if id := strings.TrimSpace(globalID); id != "" && exists(id) {
		return id
	}
	return domain.FallbackThemeID
}
