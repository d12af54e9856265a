package audit

import (
	"strings"

	"github.com/starford/hrpaudit/internal/models"
)

// DocumentIDPrefix prefixes the catalog number to form a document item id.
const DocumentIDPrefix = "DOC-"

// AvailabilityValues is the closed set of document availability states.
var AvailabilityValues = []string{
	models.AvailabilityYes,
	models.AvailabilityNo,
	models.AvailabilityPartial,
	models.AvailabilityNA,
	models.AvailabilityUnset,
}

// IsAvailability reports whether v is one of AvailabilityValues.
func IsAvailability(v string) bool {
	for _, a := range AvailabilityValues {
		if v == a {
			return true
		}
	}
	return false
}

// SeedDocuments returns existing unchanged when it has any entry, otherwise a
// fresh checklist built from catalog with unset availability.
func SeedDocuments(existing []models.DocumentItem, catalog []DocumentSeed) []models.DocumentItem {
	if len(existing) > 0 {
		return existing
	}
	out := make([]models.DocumentItem, 0, len(catalog))
	for _, d := range catalog {
		out = append(out, models.DocumentItem{
			ID:           DocumentIDPrefix + d.Number,
			DocNo:        d.Number,
			Category:     d.Category,
			Level:        d.Level,
			DocumentName: d.Name,
			Who:          d.Responsible,
			WhenInfo:     d.Timing,
			Available:    models.AvailabilityUnset,
		})
	}
	return out
}

// DocStats counts document availability.
type DocStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Missing   int `json:"missing"`
}

// DocumentSummary counts Yes and Partial as available and No as missing.
func DocumentSummary(docs []models.DocumentItem) DocStats {
	s := DocStats{Total: len(docs)}
	for _, d := range docs {
		switch d.Available {
		case models.AvailabilityYes, models.AvailabilityPartial:
			s.Available++
		case models.AvailabilityNo:
			s.Missing++
		}
	}
	return s
}

// FilterDocuments selects documents by category and search term. An empty
// category matches every category. The term matches the document name
// case-insensitively or a substring of the catalog number.
func FilterDocuments(docs []models.DocumentItem, category, term string) []models.DocumentItem {
	needle := strings.ToLower(term)
	var out []models.DocumentItem
	for _, d := range docs {
		if category != "" && d.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(d.DocumentName), needle) && !strings.Contains(d.DocNo, term) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// DocumentCategories lists the distinct categories in first-seen order.
func DocumentCategories(docs []models.DocumentItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range docs {
		if seen[d.Category] {
			continue
		}
		seen[d.Category] = true
		out = append(out, d.Category)
	}
	return out
}
