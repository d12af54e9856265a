package audit

import (
	"sort"
	"strconv"

	"github.com/starford/hrpaudit/internal/models"
)

var chapterTitles = map[string]string{
	"1":  "CHILD LABOUR",
	"2":  "FORCED LABOUR",
	"3":  "FREEDOM OF ASSOCIATION & GRIEVANCE",
	"4":  "H&S - LEGAL AUTHORIZATIONS",
	"5":  "H&S - RISK & SAFETY MANAGEMENT",
	"6":  "H&S - CHEMICALS MANAGEMENT",
	"7":  "H&S - FIRE SAFETY / EVACUATION",
	"8":  "H&S - LIVING ENVIRONMENT",
	"9":  "WORKING HOURS",
	"10": "WAGES & BENEFITS",
	"11": "EMPLOYMENT PRACTICES / HR",
	"12": "HRP MANAGEMENT SYSTEM",
}

// ChapterTitle returns the title of a top-level chapter, or "" if unknown.
func ChapterTitle(key string) string {
	return chapterTitles[key]
}

// ChapterKeys returns the catalog chapter numbers in numeric order.
func ChapterKeys() []string {
	keys := make([]string, 0, len(chapterTitles))
	for k := range chapterTitles {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.Atoi(keys[i])
		b, _ := strconv.Atoi(keys[j])
		return a < b
	})
	return keys
}

// FilterByChapter returns the requirements whose top-level chapter is key.
func FilterByChapter(reqs []models.Requirement, key string) []models.Requirement {
	var out []models.Requirement
	for _, r := range reqs {
		if ChapterSection(r.ChapterLevel) == key {
			out = append(out, r)
		}
	}
	return out
}
