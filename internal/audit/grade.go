package audit

import (
	"strings"

	"github.com/starford/hrpaudit/internal/models"
)

// Grades, best first.
const (
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
	GradeD = "D"
	GradeE = "E"
)

// Stats is a tally of compliance verdicts. "No but no risk" counts toward
// Total only.
type Stats struct {
	Total       int `json:"total"`
	OK          int `json:"ok"`
	NOK         int `json:"nok"`
	NA          int `json:"na"`
	NotAssessed int `json:"notAssessed"`
}

// ComputeStats tallies the verdicts of reqs.
func ComputeStats(reqs []models.Requirement) Stats {
	s := Stats{Total: len(reqs)}
	for _, r := range reqs {
		switch r.Complies {
		case models.ComplianceOK:
			s.OK++
		case models.ComplianceNOK:
			s.NOK++
		case models.ComplianceNA:
			s.NA++
		case models.ComplianceNotAssessed:
			s.NotAssessed++
		}
	}
	return s
}

// gradeCascade maps tier markers to the grade a NOK at that tier forces,
// most severe first.
var gradeCascade = []struct {
	tier  string
	grade string
}{
	{models.TierCritical, GradeE},
	{models.TierConsolidated, GradeD},
	{models.TierAdvanced, GradeC},
	{models.TierExcellence, GradeB},
}

// Grade computes the worst-case grade of reqs. A non-empty chapterFilter
// restricts the computation to requirements whose chapter starts with it.
// A single NOK at a tier decides the grade regardless of any passes.
func Grade(reqs []models.Requirement, chapterFilter string) string {
	var nok [4]int
	for _, r := range reqs {
		if chapterFilter != "" && (r.ChapterLevel == "" || !strings.HasPrefix(r.ChapterLevel, chapterFilter)) {
			continue
		}
		if r.Complies != models.ComplianceNOK {
			continue
		}
		for i, step := range gradeCascade {
			if strings.Contains(r.RequirementLevel, step.tier) {
				nok[i]++
			}
		}
	}
	for i, step := range gradeCascade {
		if nok[i] > 0 {
			return step.grade
		}
	}
	return GradeA
}

// TierLevels lists the graded tier labels in severity order.
var TierLevels = []string{
	models.LevelUnacceptable,
	models.LevelConsolidated,
	models.LevelAdvanced,
	models.LevelExcellence,
}

// LevelStat is the verdict tally of one tier.
type LevelStat struct {
	Level string `json:"level"`
	Stats
}

// LevelStats tallies verdicts per tier label.
func LevelStats(reqs []models.Requirement) []LevelStat {
	out := make([]LevelStat, 0, len(TierLevels))
	for _, lvl := range TierLevels {
		var subset []models.Requirement
		for _, r := range reqs {
			if strings.Contains(r.RequirementLevel, lvl) {
				subset = append(subset, r)
			}
		}
		out = append(out, LevelStat{Level: lvl, Stats: ComputeStats(subset)})
	}
	return out
}

// ChapterSummary is the grade and tally of one chapter.
type ChapterSummary struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Grade string `json:"grade"`
	Stats Stats  `json:"stats"`
}

// Summary is the aggregate audit result.
type Summary struct {
	Grade    string           `json:"grade"`
	Stats    Stats            `json:"stats"`
	Levels   []LevelStat      `json:"levels"`
	Chapters []ChapterSummary `json:"chapters"`
}

// Summarize computes the global grade and tally plus one entry per catalog
// chapter. Chapter grades filter on "<key>." so chapter 1 excludes 10-12.
func Summarize(reqs []models.Requirement) Summary {
	chapters := make([]ChapterSummary, 0, len(chapterTitles))
	for _, key := range ChapterKeys() {
		chapters = append(chapters, ChapterSummary{
			Key:   key,
			Title: ChapterTitle(key),
			Grade: Grade(reqs, key+"."),
			Stats: ComputeStats(FilterByChapter(reqs, key)),
		})
	}
	return Summary{
		Grade:    Grade(reqs, ""),
		Stats:    ComputeStats(reqs),
		Levels:   LevelStats(reqs),
		Chapters: chapters,
	}
}
