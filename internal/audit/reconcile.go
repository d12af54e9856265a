package audit

import (
	"sort"
	"strings"

	"github.com/starford/hrpaudit/internal/models"
	"github.com/starford/hrpaudit/internal/parser"
)

// matchWidth is the number of sanitized requirement characters compared when
// pairing a response row with a master requirement. It is deliberately wider
// than idTextWidth.
const matchWidth = 30

// MissingRequirementText replaces requirement text that is absent or unusable.
const MissingRequirementText = "Requirement text unavailable"

// Response columns and the header spellings accepted for each.
var (
	chapterColumns     = []string{"chapter_level", "chapter", "chapter level"}
	requirementColumns = []string{"requirement", "requirement text"}
	answerColumns      = []string{"answer", "response"}
	compliesColumns    = []string{"complies", "compliance"}
	commentsColumns    = []string{"comments", "comment", "remarks"}
)

// Merge reconciles a master requirement list with imported response rows.
// The result has the same length and order as master. Every returned
// requirement is normalized and sanitized; a requirement without a matching
// response is reset to Not Assessed but keeps its previous answer and comments.
func Merge(master []models.Requirement, rows []parser.Row) []models.Requirement {
	responses := make(map[string]parser.Row, len(rows))
	for _, row := range rows {
		chapter := NormalizeChapter(column(row, chapterColumns))
		text := Sanitize(column(row, requirementColumns), "")
		responses[matchKey(chapter, text)] = row
	}

	out := make([]models.Requirement, len(master))
	for i, item := range master {
		chapter := NormalizeChapter(item.ChapterLevel)
		text := Sanitize(item.Requirement, Sanitize(item.Explanation, MissingRequirementText))

		item.ChapterLevel = chapter
		item.Requirement = text
		item.Explanation = Sanitize(item.Explanation, "")
		item.ID = GenerateID(item)

		if row, ok := responses[matchKey(chapter, text)]; ok {
			item.Answer = Sanitize(column(row, answerColumns), "")
			item.Complies = CoerceCompliance(column(row, compliesColumns))
			item.Comments = Sanitize(column(row, commentsColumns), "")
		} else {
			item.Complies = models.ComplianceNotAssessed
		}
		out[i] = item
	}
	return out
}

// CoerceCompliance sanitizes v and maps anything outside the closed set of
// compliance values to Not Assessed.
func CoerceCompliance(v string) string {
	c := Sanitize(v, "")
	if models.IsCompliance(c) {
		return c
	}
	return models.ComplianceNotAssessed
}

func matchKey(chapter, text string) string {
	return chapter + "::" + prefix(text, matchWidth)
}

// column returns the value of the first header in row matching one of names.
// Exact keys win; otherwise headers are compared ignoring case, spaces,
// underscores and dashes.
func column(row parser.Row, names []string) string {
	for _, n := range names {
		if v, ok := row[n]; ok {
			return v
		}
	}
	headers := make([]string, 0, len(row))
	for h := range row {
		headers = append(headers, h)
	}
	sort.Strings(headers)
	for _, n := range names {
		want := foldHeader(n)
		for _, h := range headers {
			if foldHeader(h) == want {
				return row[h]
			}
		}
	}
	return ""
}

func foldHeader(s string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(s) {
		switch c {
		case ' ', '_', '-', '\t':
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
