package audit

import (
	"strconv"
	"strings"

	"github.com/starford/hrpaudit/internal/models"
)

// CAP priorities, most urgent first.
const (
	PriorityHigh       = "High (Immediate)"
	PriorityMediumHigh = "Medium-High"
	PriorityMedium     = "Medium"
	PriorityLow        = "Low"
)

// DefaultEvidenceNeeded is the evidence requested for every new CAP item.
const DefaultEvidenceNeeded = "Photo / Document / Policy"

// CapTemplate supplies the canned remediation text of a CAP item.
type CapTemplate struct {
	Name       string
	RootCause  string
	Corrective string
	Preventive string
}

// capRule pairs trigger keywords with the template they select.
type capRule struct {
	keywords []string
	template CapTemplate
}

// capRules is evaluated top to bottom and the first match wins. Keyword sets
// overlap ("wage" contains "age", "overtime" contains "time"), so the order is
// part of the behavior.
var capRules = []capRule{
	{
		keywords: []string{"fire", "alarm", "exit"},
		template: CapTemplate{
			Name:       "fire",
			RootCause:  "Lack of regular maintenance or inspection of fire safety systems.",
			Corrective: "Immediately repair/install equipment. Conduct full fire drill.",
			Preventive: "Establish monthly inspection checklist and appoint Fire Safety Officer.",
		},
	},
	{
		keywords: []string{"chem", "toxic", "label"},
		template: CapTemplate{
			Name:       "chemical",
			RootCause:  "Inadequate chemical management procedure or training.",
			Corrective: "Provide secondary containment and PPE. Label all containers.",
			Preventive: "Implement chemical inventory tracking and annual training program.",
		},
	},
	{
		keywords: []string{"wage", "salary", "pay"},
		template: CapTemplate{
			Name:       "wage",
			RootCause:  "Payroll system calculation error or lack of awareness of legal minimums.",
			Corrective: "Pay back arrears to affected workers immediately.",
			Preventive: "Update payroll software parameters and audit monthly wage records.",
		},
	},
	{
		keywords: []string{"hour", "time", "overtime"},
		template: CapTemplate{
			Name:       "hours",
			RootCause:  "Poor production planning leading to excessive overtime.",
			Corrective: "Adjust production shifts. Guarantee 1 day off in 7.",
			Preventive: "Implement capacity planning tool and strict OT authorization process.",
		},
	},
	{
		keywords: []string{"child", "age", "young"},
		template: CapTemplate{
			Name:       "child",
			RootCause:  "Ineffective recruitment age verification process.",
			Corrective: "Remove child from work immediately, provide remediation/education support.",
			Preventive: "Enhance age verification (ID check cross-reference) during hiring.",
		},
	},
}

var defaultCapTemplate = CapTemplate{
	Name:       "default",
	RootCause:  "Management system failure: Lack of policy or procedure implementation.",
	Corrective: "Define and implement the missing procedure/process.",
	Preventive: "Train responsible staff and conduct internal audits.",
}

// SelectTemplate returns the CAP template for a finding's text.
func SelectTemplate(text string) CapTemplate {
	lower := strings.ToLower(text)
	for _, rule := range capRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.template
			}
		}
	}
	return defaultCapTemplate
}

// NeedsCAP reports whether a requirement produces a CAP item: any NOK or
// "No but no risk" verdict, and any critical requirement not yet OK or N/A.
func NeedsCAP(r models.Requirement) bool {
	switch r.Complies {
	case models.ComplianceNOK, models.ComplianceNoButNoRisk:
		return true
	}
	critical := strings.Contains(r.RequirementLevel, models.TierCritical)
	return critical && r.Complies != models.ComplianceOK && r.Complies != models.ComplianceNA
}

// Priority maps a tier label to a CAP priority.
func Priority(level string) string {
	switch {
	case strings.Contains(level, models.TierCritical):
		return PriorityHigh
	case strings.Contains(level, models.TierConsolidated):
		return PriorityMediumHigh
	case strings.Contains(level, models.TierAdvanced):
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// RiskExplanation describes the verdict behind a CAP item.
func RiskExplanation(complies string) string {
	if complies == "" {
		complies = models.ComplianceNotAssessed
	}
	return "Non-compliance detected: " + complies
}

// GenerateCAP derives a fresh CAP item for every requirement that needs one.
// Output order follows requirement order and ids derive from requirement ids,
// so identical input always yields identical items.
func GenerateCAP(reqs []models.Requirement) []models.CapItem {
	var items []models.CapItem
	for _, r := range reqs {
		if !NeedsCAP(r) {
			continue
		}
		findingID := r.ChapterLevel
		if findingID == "" {
			findingID = "Gen-" + strconv.Itoa(len(items))
		}
		tpl := SelectTemplate(r.Requirement + " " + r.Explanation)
		items = append(items, models.CapItem{
			ID:               "CAP_" + r.ID,
			FindingID:        findingID,
			RequirementID:    r.ID,
			ChapterLevel:     NormalizeChapter(r.ChapterLevel),
			Requirement:      r.Requirement,
			Level:            r.RequirementLevel,
			Status:           models.CapStatusOpen,
			RiskExplanation:  RiskExplanation(r.Complies),
			RootCause:        tpl.RootCause,
			CorrectiveAction: tpl.Corrective,
			PreventiveAction: tpl.Preventive,
			EvidenceNeeded:   DefaultEvidenceNeeded,
			Priority:         Priority(r.RequirementLevel),
		})
	}
	return items
}

// MergeCAP reconciles freshly generated items with the previous CAP set. An
// item whose source requirement already had one keeps every previous field
// except the risk explanation, which is always refreshed. Previous items with
// no generated counterpart are dropped.
func MergeCAP(previous, generated []models.CapItem) []models.CapItem {
	byRequirement := make(map[string]models.CapItem, len(previous))
	for _, p := range previous {
		if _, seen := byRequirement[p.RequirementID]; !seen {
			byRequirement[p.RequirementID] = p
		}
	}

	out := make([]models.CapItem, len(generated))
	for i, g := range generated {
		if prev, ok := byRequirement[g.RequirementID]; ok {
			prev.RiskExplanation = g.RiskExplanation
			out[i] = prev
			continue
		}
		out[i] = g
	}
	return out
}

// RegenerateCAP is GenerateCAP followed by MergeCAP against previous.
func RegenerateCAP(previous []models.CapItem, reqs []models.Requirement) []models.CapItem {
	return MergeCAP(previous, GenerateCAP(reqs))
}
