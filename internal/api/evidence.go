package api

import (
	"mime"

	"github.com/starford/hrpaudit/internal/models"
)

// PhotoInfo describes a stored photo without its content.
type PhotoInfo struct {
	ID            string `json:"id"`
	RequirementID string `json:"requirementId"`
	ChapterLevel  string `json:"chapter_level"`
	FileName      string `json:"file_name"`
	Caption       string `json:"caption"`
	MimeType      string `json:"mime_type"`
	Size          int    `json:"size"`
	Timestamp     int64  `json:"timestamp"`
}

// EvidenceInfo describes a stored document evidence file without its content.
type EvidenceInfo struct {
	ID        string `json:"id"`
	DocID     string `json:"docId"`
	FileName  string `json:"fileName"`
	FileType  string `json:"fileType"`
	FileSize  int64  `json:"fileSize"`
	Note      string `json:"note,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func photoInfo(p *models.EvidencePhoto) PhotoInfo {
	return PhotoInfo{
		ID:            p.ID,
		RequirementID: p.RequirementID,
		ChapterLevel:  p.ChapterLevel,
		FileName:      p.FileName,
		Caption:       p.Caption,
		MimeType:      p.MimeType,
		Size:          len(p.Data),
		Timestamp:     p.Timestamp,
	}
}

func evidenceInfo(e *models.DocumentEvidence) EvidenceInfo {
	return EvidenceInfo{
		ID:        e.ID,
		DocID:     e.DocID,
		FileName:  e.FileName,
		FileType:  e.FileType,
		FileSize:  e.FileSize,
		Note:      e.Note,
		Timestamp: e.Timestamp,
	}
}

// mimeAttachment builds a Content-Disposition header for a download.
func mimeAttachment(name string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": name})
}
