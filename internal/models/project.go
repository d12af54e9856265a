// Package models defines the domain types of an audit project.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Compliance verdicts. Any other value is treated as NotAssessed.
const (
	ComplianceOK          = "OK"
	ComplianceNOK         = "NOK"
	ComplianceNotAssessed = "Not Assessed"
	ComplianceNA          = "Not Applicable"
	ComplianceNoButNoRisk = "No but no risk"
)

// ComplianceValues is the closed set of accepted compliance verdicts.
var ComplianceValues = []string{
	ComplianceOK,
	ComplianceNOK,
	ComplianceNotAssessed,
	ComplianceNA,
	ComplianceNoButNoRisk,
}

// IsCompliance reports whether v is one of ComplianceValues.
func IsCompliance(v string) bool {
	for _, c := range ComplianceValues {
		if v == c {
			return true
		}
	}
	return false
}

// Tier labels as they appear in the master checklist.
const (
	LevelInfo         = "INFO"
	LevelPrepa        = "INFO / PREPA"
	LevelUnacceptable = "0. UNACCEPTABLE"
	LevelConsolidated = "1. CONSOLIDATED"
	LevelAdvanced     = "2. ADVANCED"
	LevelExcellence   = "3. EXCELLENCE"
)

// Tier markers searched for inside a requirement level label.
const (
	TierCritical     = "0."
	TierConsolidated = "1."
	TierAdvanced     = "2."
	TierExcellence   = "3."
)

// Document availability values.
const (
	AvailabilityYes     = "Yes"
	AvailabilityNo      = "No"
	AvailabilityPartial = "Partial"
	AvailabilityNA      = "N/A"
	AvailabilityUnset   = ""
)

// CAP statuses.
const (
	CapStatusOpen       = "Open"
	CapStatusInProgress = "In Progress"
	CapStatusClosed     = "Closed"
)

// DefaultProjectID is the key of the single active project.
const DefaultProjectID = "current"

// Requirement is one checklist line item.
type Requirement struct {
	ChapterLevel      string `json:"chapter_level" yaml:"chapter_level"`
	RequirementLevel  string `json:"requirement_level" yaml:"requirement_level"`
	Requirement       string `json:"requirement" yaml:"requirement"`
	Answer            string `json:"answer" yaml:"answer"`
	Complies          string `json:"complies" yaml:"complies"`
	TemporarilySolved string `json:"temporarily_solved,omitempty" yaml:"temporarily_solved"`
	Explanation       string `json:"explanation" yaml:"explanation"`
	Comments          string `json:"comments" yaml:"comments"`
	ScoreE            string `json:"score_E,omitempty" yaml:"score_E"`
	ScoreEp           string `json:"score_Ep,omitempty" yaml:"score_Ep"`
	ScoreD            string `json:"score_D,omitempty" yaml:"score_D"`
	ScoreC            string `json:"score_C,omitempty" yaml:"score_C"`
	ScoreB            string `json:"score_B,omitempty" yaml:"score_B"`
	SourceRow         int    `json:"source_row,omitempty" yaml:"source_row"`
	ID                string `json:"id,omitempty" yaml:"id"`
}

// UnmarshalJSON accepts loosely typed master documents where chapter and
// score cells may be numbers or null instead of strings.
func (r *Requirement) UnmarshalJSON(data []byte) error {
	type plain Requirement
	var raw struct {
		plain
		ChapterLevel      json.RawMessage `json:"chapter_level"`
		RequirementLevel  json.RawMessage `json:"requirement_level"`
		TemporarilySolved json.RawMessage `json:"temporarily_solved"`
		ScoreE            json.RawMessage `json:"score_E"`
		ScoreEp           json.RawMessage `json:"score_Ep"`
		ScoreD            json.RawMessage `json:"score_D"`
		ScoreC            json.RawMessage `json:"score_C"`
		ScoreB            json.RawMessage `json:"score_B"`
		SourceRow         json.RawMessage `json:"source_row"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Requirement(raw.plain)
	r.ChapterLevel = flexText(raw.ChapterLevel)
	r.RequirementLevel = flexText(raw.RequirementLevel)
	r.TemporarilySolved = flexText(raw.TemporarilySolved)
	r.ScoreE = flexText(raw.ScoreE)
	r.ScoreEp = flexText(raw.ScoreEp)
	r.ScoreD = flexText(raw.ScoreD)
	r.ScoreC = flexText(raw.ScoreC)
	r.ScoreB = flexText(raw.ScoreB)
	if n, err := strconv.Atoi(flexText(raw.SourceRow)); err == nil {
		r.SourceRow = n
	}
	return nil
}

// flexText renders a JSON scalar as text: strings are unquoted, numbers and
// booleans keep their literal form, null and objects become empty.
func flexText(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return ""
	}
	if s[0] == '"' {
		var out string
		if err := json.Unmarshal(raw, &out); err != nil {
			return ""
		}
		return out
	}
	if s[0] == '{' || s[0] == '[' {
		return ""
	}
	return s
}

// EvidencePhoto is a picture attached to one requirement. RequirementID is a
// weak reference and may dangle after a master re-import.
type EvidencePhoto struct {
	ID            string `json:"id"`
	RequirementID string `json:"requirementId"`
	ChapterLevel  string `json:"chapter_level"`
	FileName      string `json:"file_name"`
	Caption       string `json:"caption"`
	MimeType      string `json:"mime_type"`
	Timestamp     int64  `json:"timestamp"`
	Data          []byte `json:"data"`
}

// DocumentItem is one entry of the document checklist.
type DocumentItem struct {
	ID           string `json:"id"`
	DocNo        string `json:"docNo"`
	Category     string `json:"category"`
	Level        string `json:"level"`
	DocumentName string `json:"documentName"`
	Who          string `json:"who"`
	WhenInfo     string `json:"when_info"`
	Available    string `json:"available"`
	Remarks      string `json:"remarks"`
}

// DocumentEvidence is a file attached to one document item. DocID is a weak
// reference.
type DocumentEvidence struct {
	ID        string `json:"id"`
	DocID     string `json:"docId"`
	FileName  string `json:"fileName"`
	FileType  string `json:"fileType"`
	FileSize  int64  `json:"fileSize"`
	Data      []byte `json:"data"`
	Timestamp int64  `json:"timestamp"`
	Note      string `json:"note,omitempty"`
}

// CapItem is one corrective-action-plan entry derived from a finding.
type CapItem struct {
	ID                   string `json:"id"`
	FindingID            string `json:"finding_id"`
	RequirementID        string `json:"requirementId"`
	ChapterLevel         string `json:"chapter_level"`
	Requirement          string `json:"requirement"`
	Level                string `json:"level"`
	Status               string `json:"status"`
	RiskExplanation      string `json:"risk_explanation"`
	ImmediateContainment string `json:"immediate_containment"`
	RootCause            string `json:"root_cause"`
	CorrectiveAction     string `json:"corrective_action"`
	PreventiveAction     string `json:"preventive_action"`
	Owner                string `json:"owner"`
	DueDate              string `json:"due_date"`
	EvidenceNeeded       string `json:"evidence_needed"`
	Priority             string `json:"priority"`
}

// ProjectMeta holds the descriptive attributes of an audit.
type ProjectMeta struct {
	SupplierName string `json:"supplierName"`
	Site         string `json:"site"`
	Date         string `json:"date"`
	Assessor     string `json:"assessor"`
	Brand        string `json:"brand"`
	Notes        string `json:"notes"`
}

// ProjectData is the aggregate root persisted under a single project id.
type ProjectData struct {
	ID           string             `json:"id"`
	Meta         ProjectMeta        `json:"meta"`
	Requirements []Requirement      `json:"requirements"`
	Photos       []EvidencePhoto    `json:"photos"`
	CapItems     []CapItem          `json:"capItems"`
	Documents    []DocumentItem     `json:"documents"`
	DocEvidence  []DocumentEvidence `json:"docEvidence"`
}

// FindRequirement returns the requirement with the given id, or nil.
func (p *ProjectData) FindRequirement(id string) *Requirement {
	for i := range p.Requirements {
		if p.Requirements[i].ID == id {
			return &p.Requirements[i]
		}
	}
	return nil
}

// FindDocument returns the document item with the given id, or nil.
func (p *ProjectData) FindDocument(id string) *DocumentItem {
	for i := range p.Documents {
		if p.Documents[i].ID == id {
			return &p.Documents[i]
		}
	}
	return nil
}

// PhotosFor returns the photos attached to requirementID, in capture order.
func (p *ProjectData) PhotosFor(requirementID string) []EvidencePhoto {
	var out []EvidencePhoto
	for _, ph := range p.Photos {
		if ph.RequirementID == requirementID {
			out = append(out, ph)
		}
	}
	return out
}

// EvidenceCount returns how many evidence files are attached to docID.
func (p *ProjectData) EvidenceCount(docID string) int {
	n := 0
	for _, ev := range p.DocEvidence {
		if ev.DocID == docID {
			n++
		}
	}
	return n
}
