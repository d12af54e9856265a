// Package audit implements the requirement reconciliation and derivation
// pipeline: identifier normalization, text sanitization, response merging,
// corrective-action generation and grading. Every function is pure.
package audit

import (
	"strings"

	"github.com/starford/hrpaudit/internal/models"
)

// UnknownChapter is the chapter assigned to requirements without one.
const UnknownChapter = "0.0"

// idTextWidth is the number of requirement characters folded into an id.
const idTextWidth = 20

// NormalizeChapter canonicalizes a chapter label: commas become dots and a
// bare chapter number gets a ".0" suffix. The result is idempotent.
func NormalizeChapter(label string) string {
	if label == "" {
		return UnknownChapter
	}
	clean := strings.TrimSpace(strings.ReplaceAll(label, ",", "."))
	if !strings.Contains(clean, ".") {
		clean += ".0"
	}
	return clean
}

// ChapterSection returns the top-level chapter number of label.
func ChapterSection(label string) string {
	norm := NormalizeChapter(label)
	if i := strings.Index(norm, "."); i >= 0 {
		return norm[:i]
	}
	return norm
}

// GenerateID derives the lookup id of a requirement from its chapter and the
// first characters of its text. Two requirements sharing both collide; the id
// is a merge key, not a uniqueness guarantee.
func GenerateID(r models.Requirement) string {
	chapter := NormalizeChapter(r.ChapterLevel)
	fragment := prefix(Sanitize(r.Requirement, ""), idTextWidth)
	return chapter + "::" + alphanumeric(fragment)
}

// PrepareMaster normalizes the chapters of a freshly imported master list,
// coerces verdicts into the closed set and assigns ids. Text fields are left
// as imported.
func PrepareMaster(reqs []models.Requirement) []models.Requirement {
	out := make([]models.Requirement, len(reqs))
	for i, r := range reqs {
		r.ID = GenerateID(r)
		r.ChapterLevel = NormalizeChapter(r.ChapterLevel)
		r.Complies = CoerceCompliance(r.Complies)
		out[i] = r
	}
	return out
}

// prefix returns at most n leading runes of s.
func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func alphanumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	return b.String()
}
