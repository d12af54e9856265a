package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/hrpaudit/internal/models"
	"github.com/starford/hrpaudit/internal/projectservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *projectservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *projectservice.Service) *Handler {
	return &Handler{svc: svc}
}

// pathID extracts the {id} URL parameter. Supports encoded slashes from
// clients (e.g. 3%2F1%3A%3AFireexits).
func pathID(r *http.Request) string {
	raw := chi.URLParam(r, "id")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// GetProject handles GET /api/project.
//
//	@Summary		Get the active audit project
//	@Tags			project
//	@Produce		json
//	@Success		200	{object}	ProjectResponse
//	@Failure		412	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/project [get]
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Get(r.Context())
	if err != nil {
		writeError(w, "get project", err)
		return
	}
	setETag(w, v.Checksum)
	writeJSON(w, http.StatusOK, v)
}

// CreateProject handles POST /api/project.
//
//	@Summary		Start a new audit project
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateProjectRequest	true	"Project attributes"
//	@Success		201		{object}	ProjectResponse
//	@Failure		400		{object}	errResponse
//	@Failure		409		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/project [post]
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	v, err := h.svc.Create(r.Context(), req.Meta, req.Force)
	if err != nil {
		writeError(w, "create project", err)
		return
	}
	setETag(w, v.Checksum)
	writeJSON(w, http.StatusCreated, v)
}

// DeleteProject handles DELETE /api/project.
//
//	@Summary		Delete the active project and its import history
//	@Tags			project
//	@Success		204
//	@Failure		412	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/project [delete]
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context()); err != nil {
		writeError(w, "delete project", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateMeta handles PUT /api/project/meta.
//
//	@Summary		Replace the project attributes
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			If-Match	header	string				false	"Project checksum for optimistic concurrency"
//	@Param			body		body	models.ProjectMeta	true	"Project attributes"
//	@Success		200	{object}	ProjectResponse
//	@Failure		409	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/project/meta [put]
func (h *Handler) UpdateMeta(w http.ResponseWriter, r *http.Request) {
	var meta models.ProjectMeta
	if !decodeJSON(w, r, &meta) {
		return
	}
	v, err := h.svc.UpdateMeta(r.Context(), meta, ifMatch(r))
	if err != nil {
		writeError(w, "update meta", err)
		return
	}
	setETag(w, v.Checksum)
	writeJSON(w, http.StatusOK, v)
}

// ImportMaster handles POST /api/project/import/master.
//
//	@Summary		Replace the requirement list with a master checklist (JSON or YAML)
//	@Tags			import
//	@Accept			json,mpfd
//	@Produce		json
//	@Param			If-Match	header	string	false	"Project checksum for optimistic concurrency"
//	@Param			source		query	string	false	"Name recorded in the import history"
//	@Success		200	{object}	ImportResponse
//	@Failure		400	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/project/import/master [post]
func (h *Handler) ImportMaster(w http.ResponseWriter, r *http.Request) {
	data, source, ok := readImport(w, r, "api:master")
	if !ok {
		return
	}
	res, err := h.svc.ImportMaster(r.Context(), data, source, ifMatch(r))
	if err != nil {
		writeError(w, "import master", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ImportResponses handles POST /api/project/import/responses.
//
//	@Summary		Merge a CSV response sheet into the requirement list
//	@Tags			import
//	@Accept			plain,mpfd
//	@Produce		json
//	@Param			If-Match	header	string	false	"Project checksum for optimistic concurrency"
//	@Param			source		query	string	false	"Name recorded in the import history"
//	@Success		200	{object}	ImportResponse
//	@Failure		400	{object}	errResponse
//	@Failure		412	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/project/import/responses [post]
func (h *Handler) ImportResponses(w http.ResponseWriter, r *http.Request) {
	data, source, ok := readImport(w, r, "api:responses")
	if !ok {
		return
	}
	res, err := h.svc.ImportResponses(r.Context(), data, source, ifMatch(r))
	if err != nil {
		writeError(w, "import responses", err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ListImports handles GET /api/project/imports.
//
//	@Summary		List recent imports, newest first
//	@Tags			import
//	@Produce		json
//	@Param			limit	query		int	false	"Maximum entries (default 50)"
//	@Success		200		{object}	ImportHistoryResponse
//	@Security		BearerAuth
//	@Router			/project/imports [get]
func (h *Handler) ListImports(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	imports, err := h.svc.Imports(r.Context(), limit)
	if err != nil {
		writeError(w, "list imports", err)
		return
	}
	writeJSON(w, http.StatusOK, ImportHistoryResponse{Imports: imports})
}

// ListRequirements handles GET /api/requirements.
//
//	@Summary		List requirements, optionally of one chapter
//	@Tags			requirements
//	@Produce		json
//	@Param			chapter	query		string	false	"Top-level chapter number"
//	@Success		200		{object}	RequirementListResponse
//	@Security		BearerAuth
//	@Router			/requirements [get]
func (h *Handler) ListRequirements(w http.ResponseWriter, r *http.Request) {
	reqs, cs, err := h.svc.Requirements(r.Context(), r.URL.Query().Get("chapter"))
	if err != nil {
		writeError(w, "list requirements", err)
		return
	}
	setETag(w, cs)
	writeJSON(w, http.StatusOK, RequirementListResponse{Requirements: reqs, Total: len(reqs)})
}

// PatchRequirement handles PATCH /api/requirements/{id}.
//
//	@Summary		Record the auditor's answer, verdict or comments
//	@Tags			requirements
//	@Accept			json
//	@Produce		json
//	@Param			id			path	string							true	"Requirement id"
//	@Param			If-Match	header	string							false	"Project checksum for optimistic concurrency"
//	@Param			body		body	projectservice.RequirementPatch	true	"Fields to change"
//	@Success		200	{object}	models.Requirement
//	@Failure		404	{object}	errResponse
//	@Failure		409	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/requirements/{id} [patch]
func (h *Handler) PatchRequirement(w http.ResponseWriter, r *http.Request) {
	var patch projectservice.RequirementPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	req, err := h.svc.UpdateRequirement(r.Context(), pathID(r), patch, ifMatch(r))
	if err != nil {
		writeError(w, "update requirement", err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// UploadPhoto handles POST /api/requirements/{id}/photos (multipart/form-data,
// fields "file" and "caption").
//
//	@Summary		Attach a photo to a requirement
//	@Tags			requirements
//	@Accept			mpfd
//	@Produce		json
//	@Param			id			path		string	true	"Requirement id"
//	@Param			If-Match	header	string	false	"Project checksum for optimistic concurrency"
//	@Param			file		formData	file	true	"Image file"
//	@Param			caption		formData	string	false	"Caption"
//	@Success		201	{object}	PhotoInfo
//	@Failure		400	{object}	errResponse
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/requirements/{id}/photos [post]
func (h *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	up, ok := readUpload(w, r)
	if !ok {
		return
	}
	ph, err := h.svc.AddPhoto(r.Context(), pathID(r), up, ifMatch(r))
	if err != nil {
		writeError(w, "add photo", err)
		return
	}
	writeJSON(w, http.StatusCreated, photoInfo(ph))
}

// PatchPhoto handles PATCH /api/photos/{id}.
//
//	@Summary		Change a photo caption
//	@Tags			requirements
//	@Accept			json
//	@Produce		json
//	@Param			id			path	string			true	"Photo id"
//	@Param			If-Match	header	string	false	"Project checksum for optimistic concurrency"
//	@Param			body		body	CaptionRequest	true	"New caption"
//	@Success		200	{object}	PhotoInfo
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/photos/{id} [patch]
func (h *Handler) PatchPhoto(w http.ResponseWriter, r *http.Request) {
	var req CaptionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	ph, err := h.svc.UpdatePhotoCaption(r.Context(), pathID(r), req.Caption, ifMatch(r))
	if err != nil {
		writeError(w, "update photo", err)
		return
	}
	writeJSON(w, http.StatusOK, photoInfo(ph))
}

// DeletePhoto handles DELETE /api/photos/{id}.
//
//	@Summary		Remove a photo
//	@Tags			requirements
//	@Param			id			path	string	true	"Photo id"
//	@Param			If-Match	header	string	false	"Project checksum for optimistic concurrency"
//	@Success		204
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/photos/{id} [delete]
func (h *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemovePhoto(r.Context(), pathID(r), ifMatch(r)); err != nil {
		writeError(w, "remove photo", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCap handles GET /api/cap.
//
//	@Summary		List the corrective action plan
//	@Tags			cap
//	@Produce		json
//	@Success		200	{object}	CapListResponse
//	@Failure		412	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/cap [get]
func (h *Handler) ListCap(w http.ResponseWriter, r *http.Request) {
	items, cs, err := h.svc.CapItems(r.Context())
	if err != nil {
		writeError(w, "list cap", err)
		return
	}
	setETag(w, cs)
	writeJSON(w, http.StatusOK, CapListResponse{Items: items, Total: len(items)})
}

// GenerateCap handles POST /api/cap/generate.
//
//	@Summary		Regenerate the CAP, keeping manual edits of open findings
//	@Tags			cap
//	@Produce		json
//	@Param			If-Match	header	string	false	"Project checksum for optimistic concurrency"
//	@Success		200	{object}	CapListResponse
//	@Security		BearerAuth
//	@Router			/cap/generate [post]
func (h *Handler) GenerateCap(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.RegenerateCAP(r.Context(), ifMatch(r))
	if err != nil {
		writeError(w, "regenerate cap", err)
		return
	}
	writeJSON(w, http.StatusOK, CapListResponse{Items: items, Total: len(items)})
}

// PatchCap handles PATCH /api/cap/{id}.
//
//	@Summary		Edit a CAP item
//	@Tags			cap
//	@Accept			json
//	@Produce		json
//	@Param			id			path	string					true	"CAP item id"
//	@Param			If-Match	header	string	false	"Project checksum for optimistic concurrency"
//	@Param			body		body	projectservice.CapPatch	true	"Fields to change"
//	@Success		200	{object}	models.CapItem
//	@Failure		400	{object}	errResponse
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/cap/{id} [patch]
func (h *Handler) PatchCap(w http.ResponseWriter, r *http.Request) {
	var patch projectservice.CapPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	item, err := h.svc.UpdateCap(r.Context(), pathID(r), patch, ifMatch(r))
	if err != nil {
		writeError(w, "update cap", err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// ListDocuments handles GET /api/documents.
//
//	@Summary		List the document checklist
//	@Tags			documents
//	@Produce		json
//	@Param			category	query		string	false	"Exact category"
//	@Param			q			query		string	false	"Search in name or number"
//	@Success		200			{object}	DocumentListResponse
//	@Security		BearerAuth
//	@Router			/documents [get]
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	docs, cs, err := h.svc.Documents(r.Context(), q.Get("category"), q.Get("q"))
	if err != nil {
		writeError(w, "list documents", err)
		return
	}
	setETag(w, cs)
	writeJSON(w, http.StatusOK, DocumentListResponse{Documents: docs, Total: len(docs)})
}

// ListCategories handles GET /api/documents/categories.
//
//	@Summary		List document categories in checklist order
//	@Tags			documents
//	@Produce		json
//	@Success		200	{object}	CategoryListResponse
//	@Security		BearerAuth
//	@Router			/documents/categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Categories(r.Context())
	if err != nil {
		writeError(w, "list categories", err)
		return
	}
	writeJSON(w, http.StatusOK, CategoryListResponse{Categories: cats})
}

// SeedDocuments handles POST /api/documents/seed.
//
//	@Summary		Seed the document checklist when it is empty
//	@Tags			documents
//	@Produce		json
//	@Param			If-Match	header	string	false	"Project checksum for optimistic concurrency"
//	@Success		200	{object}	DocumentListResponse
//	@Security		BearerAuth
//	@Router			/documents/seed [post]
func (h *Handler) SeedDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.svc.SeedDocuments(r.Context(), ifMatch(r))
	if err != nil {
		writeError(w, "seed documents", err)
		return
	}
	writeJSON(w, http.StatusOK, DocumentListResponse{Documents: docs, Total: len(docs)})
}

// PatchDocument handles PATCH /api/documents/{id}.
//
//	@Summary		Record availability or remarks of a document
//	@Tags			documents
//	@Accept			json
//	@Produce		json
//	@Param			id			path	string						true	"Document id"
//	@Param			If-Match	header	string	false	"Project checksum for optimistic concurrency"
//	@Param			body		body	projectservice.DocumentPatch	true	"Fields to change"
//	@Success		200	{object}	models.DocumentItem
//	@Failure		400	{object}	errResponse
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/documents/{id} [patch]
func (h *Handler) PatchDocument(w http.ResponseWriter, r *http.Request) {
	var patch projectservice.DocumentPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	doc, err := h.svc.UpdateDocument(r.Context(), pathID(r), patch, ifMatch(r))
	if err != nil {
		writeError(w, "update document", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// UploadEvidence handles POST /api/documents/{id}/evidence (multipart/form-data,
// fields "file" and "caption").
//
//	@Summary		Attach an evidence file to a document
//	@Tags			documents
//	@Accept			mpfd
//	@Produce		json
//	@Param			id			path		string	true	"Document id"
//	@Param			If-Match	header	string	false	"Project checksum for optimistic concurrency"
//	@Param			file		formData	file	true	"Evidence file"
//	@Param			caption		formData	string	false	"Note"
//	@Success		201	{object}	EvidenceInfo
//	@Failure		400	{object}	errResponse
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/documents/{id}/evidence [post]
func (h *Handler) UploadEvidence(w http.ResponseWriter, r *http.Request) {
	up, ok := readUpload(w, r)
	if !ok {
		return
	}
	ev, err := h.svc.AddDocumentEvidence(r.Context(), pathID(r), up, ifMatch(r))
	if err != nil {
		writeError(w, "add document evidence", err)
		return
	}
	writeJSON(w, http.StatusCreated, evidenceInfo(ev))
}

// DeleteEvidence handles DELETE /api/evidence/{id}.
//
//	@Summary		Remove a document evidence file
//	@Tags			documents
//	@Param			id			path	string	true	"Evidence id"
//	@Param			If-Match	header	string	false	"Project checksum for optimistic concurrency"
//	@Success		204
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/evidence/{id} [delete]
func (h *Handler) DeleteEvidence(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveDocumentEvidence(r.Context(), pathID(r), ifMatch(r)); err != nil {
		writeError(w, "remove document evidence", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Summary handles GET /api/summary.
//
//	@Summary		Grades and tallies of the active project
//	@Tags			summary
//	@Produce		json
//	@Success		200	{object}	SummaryResponse
//	@Security		BearerAuth
//	@Router			/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Summary(r.Context())
	if err != nil {
		writeError(w, "summary", err)
		return
	}
	setETag(w, sum.Checksum)
	writeJSON(w, http.StatusOK, sum)
}

// Chapters handles GET /api/chapters.
//
//	@Summary		List the chapter catalog
//	@Tags			summary
//	@Produce		json
//	@Success		200	{object}	ChapterListResponse
//	@Security		BearerAuth
//	@Router			/chapters [get]
func (h *Handler) Chapters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, chapterCatalog())
}

// Export handles GET /api/export/{format}.
//
//	@Summary		Download the project as xlsx, pdf or zip
//	@Tags			export
//	@Produce		octet-stream
//	@Param			format	path	string	true	"Export format"	Enums(xlsx, pdf, zip)
//	@Success		200
//	@Failure		400	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/export/{format} [get]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.Export(r.Context(), chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, "export", err)
		return
	}
	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Content-Disposition", mimeAttachment(f.Name))
	w.Header().Set("Content-Length", strconv.Itoa(len(f.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(f.Data)
}
