package projectservice

import (
	"github.com/starford/hrpaudit/internal/audit"
	"github.com/starford/hrpaudit/internal/models"
)

// Change kinds passed to a Notifier.
const (
	ChangeCreated          = "project.created"
	ChangeDeleted          = "project.deleted"
	ChangeMeta             = "project.meta_updated"
	ChangeMasterImported   = "requirements.imported"
	ChangeResponsesMerged  = "responses.merged"
	ChangeRequirement      = "requirement.updated"
	ChangeCapRegenerated   = "cap.regenerated"
	ChangeCapItem          = "cap.updated"
	ChangeDocumentsSeeded  = "documents.seeded"
	ChangeDocument         = "document.updated"
	ChangePhoto            = "photo.updated"
	ChangeDocumentEvidence = "evidence.updated"
)

// Change describes a committed mutation of the active project.
type Change struct {
	Kind      string      `json:"kind"`
	ProjectID string      `json:"project_id"`
	Checksum  string      `json:"checksum"`
	Subject   string      `json:"subject,omitempty"`
	Grade     string      `json:"grade"`
	Stats     audit.Stats `json:"stats"`
}

// Notifier receives committed changes. It is called with the service lock
// held and must not call back into the service.
type Notifier func(Change)

// View is a project snapshot with its concurrency token.
type View struct {
	Project  *models.ProjectData `json:"project"`
	Checksum string              `json:"checksum"`
}

// Summary aggregates the audit result of the active project.
type Summary struct {
	Meta      models.ProjectMeta `json:"meta"`
	Audit     audit.Summary      `json:"audit"`
	Documents audit.DocStats     `json:"documents"`
	CapItems  int                `json:"cap_items"`
	OpenCap   int                `json:"open_cap_items"`
	Photos    int                `json:"photos"`
	Checksum  string             `json:"checksum"`
}

// ImportResult reports the outcome of an import.
type ImportResult struct {
	Kind     string `json:"kind"`
	Records  int    `json:"records"`
	Checksum string `json:"checksum"`
}

// RequirementPatch holds the auditor-editable fields of a requirement.
// Nil fields are left unchanged.
type RequirementPatch struct {
	Answer   *string `json:"answer,omitempty"`
	Complies *string `json:"complies,omitempty"`
	Comments *string `json:"comments,omitempty"`
}

// CapPatch holds the editable fields of a CAP item. Nil fields are left
// unchanged.
type CapPatch struct {
	Status               *string `json:"status,omitempty"`
	ImmediateContainment *string `json:"immediate_containment,omitempty"`
	RootCause            *string `json:"root_cause,omitempty"`
	CorrectiveAction     *string `json:"corrective_action,omitempty"`
	PreventiveAction     *string `json:"preventive_action,omitempty"`
	Owner                *string `json:"owner,omitempty"`
	DueDate              *string `json:"due_date,omitempty"`
	EvidenceNeeded       *string `json:"evidence_needed,omitempty"`
	Priority             *string `json:"priority,omitempty"`
}

// DocumentPatch holds the editable fields of a document item.
type DocumentPatch struct {
	Available *string `json:"available,omitempty"`
	Remarks   *string `json:"remarks,omitempty"`
}

// Upload is a binary evidence file received from a client.
type Upload struct {
	FileName string
	MimeType string
	Caption  string
	Data     []byte
}
