package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/hrpaudit/internal/projectservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *projectservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Project lifecycle and imports.
	r.Get("/project", h.GetProject)
	r.Post("/project", h.CreateProject)
	r.Delete("/project", h.DeleteProject)
	r.Put("/project/meta", h.UpdateMeta)
	r.Post("/project/import/master", h.ImportMaster)
	r.Post("/project/import/responses", h.ImportResponses)
	r.Get("/project/imports", h.ListImports)

	// Checklist and photo evidence.
	r.Get("/requirements", h.ListRequirements)
	r.Patch("/requirements/{id}", h.PatchRequirement)
	r.Post("/requirements/{id}/photos", h.UploadPhoto)
	r.Patch("/photos/{id}", h.PatchPhoto)
	r.Delete("/photos/{id}", h.DeletePhoto)

	// Corrective action plan.
	r.Get("/cap", h.ListCap)
	r.Post("/cap/generate", h.GenerateCap)
	r.Patch("/cap/{id}", h.PatchCap)

	// Document checklist.
	r.Get("/documents", h.ListDocuments)
	r.Get("/documents/categories", h.ListCategories)
	r.Post("/documents/seed", h.SeedDocuments)
	r.Patch("/documents/{id}", h.PatchDocument)
	r.Post("/documents/{id}/evidence", h.UploadEvidence)
	r.Delete("/evidence/{id}", h.DeleteEvidence)

	// Results.
	r.Get("/summary", h.Summary)
	r.Get("/chapters", h.Chapters)
	r.Get("/export/{format}", h.Export)

	// SSE endpoint (protected by same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
