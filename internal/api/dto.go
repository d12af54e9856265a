package api

import (
	"github.com/starford/hrpaudit/internal/audit"
	"github.com/starford/hrpaudit/internal/models"
	"github.com/starford/hrpaudit/internal/projectservice"
	"github.com/starford/hrpaudit/internal/store"
)

// CreateProjectRequest is the request body for starting a project.
type CreateProjectRequest struct {
	Meta  models.ProjectMeta `json:"meta"`
	Force bool               `json:"force" example:"false"`
}

// CaptionRequest is the request body for changing a photo caption.
type CaptionRequest struct {
	Caption string `json:"caption" example:"Blocked fire exit, hall B" validate:"required"`
}

// ProjectResponse is the full project with its concurrency token.
type ProjectResponse = projectservice.View

// SummaryResponse aliases the service summary.
type SummaryResponse = projectservice.Summary

// ImportResponse reports an import.
type ImportResponse = projectservice.ImportResult

// RequirementListResponse wraps a requirement listing.
type RequirementListResponse struct {
	Requirements []models.Requirement `json:"requirements" validate:"required"`
	Total        int                  `json:"total" example:"212" validate:"required"`
}

// CapListResponse wraps the CAP.
type CapListResponse struct {
	Items []models.CapItem `json:"items" validate:"required"`
	Total int              `json:"total" example:"14" validate:"required"`
}

// DocumentListResponse wraps a document listing.
type DocumentListResponse struct {
	Documents []models.DocumentItem `json:"documents" validate:"required"`
	Total     int                   `json:"total" example:"172" validate:"required"`
}

// CategoryListResponse lists document categories.
type CategoryListResponse struct {
	Categories []string `json:"categories" validate:"required"`
}

// ChapterInfo is one entry of the chapter catalog.
type ChapterInfo struct {
	Key   string `json:"key" example:"1" validate:"required"`
	Title string `json:"title" example:"CHILD LABOUR" validate:"required"`
}

// ChapterListResponse wraps the chapter catalog.
type ChapterListResponse struct {
	Chapters []ChapterInfo `json:"chapters" validate:"required"`
}

// ImportHistoryResponse lists recent imports.
type ImportHistoryResponse struct {
	Imports []store.ImportRecord `json:"imports" validate:"required"`
}

func chapterCatalog() ChapterListResponse {
	keys := audit.ChapterKeys()
	out := ChapterListResponse{Chapters: make([]ChapterInfo, 0, len(keys))}
	for _, k := range keys {
		out.Chapters = append(out.Chapters, ChapterInfo{Key: k, Title: audit.ChapterTitle(k)})
	}
	return out
}
