// Package projectservice coordinates the audit pipeline with project
// persistence. Every read-modify-write cycle on the active project is
// serialized here.
package projectservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/starford/hrpaudit/internal/apperr"
	"github.com/starford/hrpaudit/internal/audit"
	"github.com/starford/hrpaudit/internal/checksum"
	"github.com/starford/hrpaudit/internal/export"
	"github.com/starford/hrpaudit/internal/metrics"
	"github.com/starford/hrpaudit/internal/models"
	"github.com/starford/hrpaudit/internal/parser"
	"github.com/starford/hrpaudit/internal/store"
)

// Service owns the active audit project.
type Service struct {
	mu        sync.Mutex
	store     store.ProjectStore
	projectID string
	catalog   []audit.DocumentSeed
	metrics   *metrics.Metrics
	notify    Notifier
	now       func() time.Time
	logger    *slog.Logger
}

// New creates a service managing the project stored under projectID.
func New(st store.ProjectStore, projectID string, logger *slog.Logger, opts ...Option) *Service {
	if projectID == "" {
		projectID = models.DefaultProjectID
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		store:     st,
		projectID: projectID,
		catalog:   audit.DefaultDocumentCatalog,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProjectID returns the id of the managed project.
func (s *Service) ProjectID() string {
	return s.projectID
}

// Get returns the active project.
func (s *Service) Get(ctx context.Context) (*View, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &View{Project: snap.Project, Checksum: snap.Checksum}, nil
}

// Create starts a new project with a freshly seeded document checklist.
// An existing project is replaced only when force is set; its import history
// goes with it so the same files can be imported again.
func (s *Service) Create(ctx context.Context, meta models.ProjectMeta, force bool) (_ *View, err error) {
	defer s.observe("create", time.Now(), &err)
	if err := validateMeta(meta); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.store.ProjectExists(ctx, s.projectID)
	if err != nil {
		return nil, err
	}
	if exists && !force {
		return nil, apperr.ErrAlreadyExists
	}
	if exists {
		if err := s.store.DeleteImports(ctx, s.projectID); err != nil {
			return nil, err
		}
	}
	if meta.Date == "" {
		meta.Date = s.now().Format(dateLayout)
	}

	p := &models.ProjectData{
		ID:        s.projectID,
		Meta:      meta,
		Documents: audit.SeedDocuments(nil, s.catalog),
	}
	return s.commit(ctx, p, ChangeCreated, "")
}

// Reset deletes the active project and its import history.
func (s *Service) Reset(ctx context.Context) (err error) {
	defer s.observe("reset", time.Now(), &err)
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteProject(ctx, s.projectID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.ErrNoProject
		}
		return err
	}
	s.logger.Info("project: reset", slog.String("project_id", s.projectID))
	s.emit(Change{Kind: ChangeDeleted, ProjectID: s.projectID, Grade: audit.GradeA})
	s.metrics.SetProjectState(0, nil)
	return nil
}

// UpdateMeta replaces the descriptive attributes of the project.
func (s *Service) UpdateMeta(ctx context.Context, meta models.ProjectMeta, ifMatch string) (*View, error) {
	if err := validateMeta(meta); err != nil {
		return nil, err
	}
	return s.mutate(ctx, "update_meta", ChangeMeta, ifMatch, func(p *models.ProjectData) (string, error) {
		p.Meta = meta
		return "", nil
	})
}

// ImportMaster replaces the requirement list with a decoded master checklist.
// A document that cannot be decoded is rejected and leaves the project as is.
// Photos and CAP items keep their requirement references even when those no
// longer resolve.
func (s *Service) ImportMaster(ctx context.Context, data []byte, source, ifMatch string) (*ImportResult, error) {
	reqs, err := parser.ParseMaster(data)
	if err != nil {
		s.metrics.ObserveOperation("import_master", time.Now(), err)
		return nil, fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}
	prepared := audit.PrepareMaster(reqs)

	res := &ImportResult{Kind: store.ImportMaster, Records: len(prepared), Checksum: checksum.Sum(data)}
	_, err = s.mutate(ctx, "import_master", ChangeMasterImported, ifMatch, func(p *models.ProjectData) (string, error) {
		p.Requirements = prepared
		return source, nil
	})
	if err != nil {
		return nil, err
	}
	s.recordImport(ctx, res, source)
	return res, nil
}

// ImportResponses merges comma-separated responses into the requirement list.
func (s *Service) ImportResponses(ctx context.Context, data []byte, source, ifMatch string) (*ImportResult, error) {
	rows := parser.ParseCSV(string(data))
	res := &ImportResult{Kind: store.ImportResponses, Records: len(rows), Checksum: checksum.Sum(data)}
	_, err := s.mutate(ctx, "import_responses", ChangeResponsesMerged, ifMatch, func(p *models.ProjectData) (string, error) {
		p.Requirements = audit.Merge(p.Requirements, rows)
		return source, nil
	})
	if err != nil {
		return nil, err
	}
	s.recordImport(ctx, res, source)
	return res, nil
}

// ImportedChecksums returns the digests of every file already imported into
// the project.
func (s *Service) ImportedChecksums(ctx context.Context) (map[string]struct{}, error) {
	return s.store.ImportedChecksums(ctx, s.projectID)
}

// Imports returns the recent import history, newest first.
func (s *Service) Imports(ctx context.Context, limit int) ([]store.ImportRecord, error) {
	return s.store.ListImports(ctx, s.projectID, limit)
}

// UpdateRequirement applies an auditor edit. Verdicts outside the closed set
// are coerced to Not Assessed.
func (s *Service) UpdateRequirement(ctx context.Context, id string, patch RequirementPatch, ifMatch string) (*models.Requirement, error) {
	if err := patch.validate(); err != nil {
		return nil, err
	}
	var out models.Requirement
	_, err := s.mutate(ctx, "update_requirement", ChangeRequirement, ifMatch, func(p *models.ProjectData) (string, error) {
		r := p.FindRequirement(id)
		if r == nil {
			return "", apperr.ErrNotFound
		}
		if patch.Answer != nil {
			r.Answer = *patch.Answer
		}
		if patch.Complies != nil {
			r.Complies = audit.CoerceCompliance(*patch.Complies)
		}
		if patch.Comments != nil {
			r.Comments = *patch.Comments
		}
		out = *r
		return id, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RegenerateCAP derives the CAP from the current requirements, keeping the
// manual edits of items whose finding is still open.
func (s *Service) RegenerateCAP(ctx context.Context, ifMatch string) ([]models.CapItem, error) {
	var out []models.CapItem
	_, err := s.mutate(ctx, "regenerate_cap", ChangeCapRegenerated, ifMatch, func(p *models.ProjectData) (string, error) {
		p.CapItems = audit.RegenerateCAP(p.CapItems, p.Requirements)
		out = p.CapItems
		return "", nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateCap applies a manual edit to one CAP item.
func (s *Service) UpdateCap(ctx context.Context, id string, patch CapPatch, ifMatch string) (*models.CapItem, error) {
	if err := patch.validate(); err != nil {
		return nil, err
	}
	var out models.CapItem
	_, err := s.mutate(ctx, "update_cap", ChangeCapItem, ifMatch, func(p *models.ProjectData) (string, error) {
		for i := range p.CapItems {
			c := &p.CapItems[i]
			if c.ID != id {
				continue
			}
			setIf(&c.Status, patch.Status)
			setIf(&c.ImmediateContainment, patch.ImmediateContainment)
			setIf(&c.RootCause, patch.RootCause)
			setIf(&c.CorrectiveAction, patch.CorrectiveAction)
			setIf(&c.PreventiveAction, patch.PreventiveAction)
			setIf(&c.Owner, patch.Owner)
			setIf(&c.DueDate, patch.DueDate)
			setIf(&c.EvidenceNeeded, patch.EvidenceNeeded)
			setIf(&c.Priority, patch.Priority)
			out = *c
			return id, nil
		}
		return "", apperr.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SeedDocuments fills the document checklist if it is empty.
func (s *Service) SeedDocuments(ctx context.Context, ifMatch string) ([]models.DocumentItem, error) {
	var out []models.DocumentItem
	_, err := s.mutate(ctx, "seed_documents", ChangeDocumentsSeeded, ifMatch, func(p *models.ProjectData) (string, error) {
		p.Documents = audit.SeedDocuments(p.Documents, s.catalog)
		out = p.Documents
		return "", nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateDocument sets the availability and remarks of a document item.
func (s *Service) UpdateDocument(ctx context.Context, id string, patch DocumentPatch, ifMatch string) (*models.DocumentItem, error) {
	if err := patch.validate(); err != nil {
		return nil, err
	}
	var out models.DocumentItem
	_, err := s.mutate(ctx, "update_document", ChangeDocument, ifMatch, func(p *models.ProjectData) (string, error) {
		d := p.FindDocument(id)
		if d == nil {
			return "", apperr.ErrNotFound
		}
		setIf(&d.Available, patch.Available)
		setIf(&d.Remarks, patch.Remarks)
		out = *d
		return id, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AddPhoto attaches an image to a requirement.
func (s *Service) AddPhoto(ctx context.Context, requirementID string, up Upload, ifMatch string) (*models.EvidencePhoto, error) {
	if up.MimeType == "" && len(up.Data) > 0 {
		up.MimeType = http.DetectContentType(up.Data)
	}
	if err := up.validate("image/"); err != nil {
		return nil, err
	}
	var out models.EvidencePhoto
	_, err := s.mutate(ctx, "add_photo", ChangePhoto, ifMatch, func(p *models.ProjectData) (string, error) {
		r := p.FindRequirement(requirementID)
		if r == nil {
			return "", apperr.ErrNotFound
		}
		out = models.EvidencePhoto{
			ID:            uuid.NewString(),
			RequirementID: r.ID,
			ChapterLevel:  r.ChapterLevel,
			FileName:      up.FileName,
			Caption:       up.Caption,
			MimeType:      up.MimeType,
			Timestamp:     s.now().UnixMilli(),
			Data:          up.Data,
		}
		p.Photos = append(p.Photos, out)
		return out.ID, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePhotoCaption changes the caption of a photo.
func (s *Service) UpdatePhotoCaption(ctx context.Context, id, caption, ifMatch string) (*models.EvidencePhoto, error) {
	var out models.EvidencePhoto
	_, err := s.mutate(ctx, "update_photo", ChangePhoto, ifMatch, func(p *models.ProjectData) (string, error) {
		for i := range p.Photos {
			if p.Photos[i].ID == id {
				p.Photos[i].Caption = caption
				out = p.Photos[i]
				return id, nil
			}
		}
		return "", apperr.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RemovePhoto deletes a photo.
func (s *Service) RemovePhoto(ctx context.Context, id, ifMatch string) error {
	_, err := s.mutate(ctx, "remove_photo", ChangePhoto, ifMatch, func(p *models.ProjectData) (string, error) {
		for i := range p.Photos {
			if p.Photos[i].ID == id {
				p.Photos = append(p.Photos[:i], p.Photos[i+1:]...)
				return id, nil
			}
		}
		return "", apperr.ErrNotFound
	})
	return err
}

// AddDocumentEvidence attaches a file to a document item.
func (s *Service) AddDocumentEvidence(ctx context.Context, docID string, up Upload, ifMatch string) (*models.DocumentEvidence, error) {
	if up.MimeType == "" && len(up.Data) > 0 {
		up.MimeType = http.DetectContentType(up.Data)
	}
	if err := up.validate(); err != nil {
		return nil, err
	}
	var out models.DocumentEvidence
	_, err := s.mutate(ctx, "add_document_evidence", ChangeDocumentEvidence, ifMatch, func(p *models.ProjectData) (string, error) {
		if p.FindDocument(docID) == nil {
			return "", apperr.ErrNotFound
		}
		out = models.DocumentEvidence{
			ID:        uuid.NewString(),
			DocID:     docID,
			FileName:  up.FileName,
			FileType:  up.MimeType,
			FileSize:  int64(len(up.Data)),
			Data:      up.Data,
			Timestamp: s.now().UnixMilli(),
			Note:      up.Caption,
		}
		p.DocEvidence = append(p.DocEvidence, out)
		return out.ID, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveDocumentEvidence deletes an evidence file.
func (s *Service) RemoveDocumentEvidence(ctx context.Context, id, ifMatch string) error {
	_, err := s.mutate(ctx, "remove_document_evidence", ChangeDocumentEvidence, ifMatch, func(p *models.ProjectData) (string, error) {
		for i := range p.DocEvidence {
			if p.DocEvidence[i].ID == id {
				p.DocEvidence = append(p.DocEvidence[:i], p.DocEvidence[i+1:]...)
				return id, nil
			}
		}
		return "", apperr.ErrNotFound
	})
	return err
}

// Summary computes grades and tallies of the active project.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	p := snap.Project
	open := 0
	for _, c := range p.CapItems {
		if c.Status != models.CapStatusClosed {
			open++
		}
	}
	return &Summary{
		Meta:      p.Meta,
		Audit:     audit.Summarize(p.Requirements),
		Documents: audit.DocumentSummary(p.Documents),
		CapItems:  len(p.CapItems),
		OpenCap:   open,
		Photos:    len(p.Photos),
		Checksum:  snap.Checksum,
	}, nil
}

// Export renders the active project in the given format.
func (s *Service) Export(ctx context.Context, format string) (_ *export.File, err error) {
	defer s.observe("export_"+format, time.Now(), &err)
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	f, err := export.Render(format, snap.Project)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			return nil, fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
		}
		return nil, err
	}
	s.metrics.AddExportBytes(format, len(f.Data))
	return f, nil
}

// mutate runs fn against the stored project under the service lock and
// persists the result. fn returns the id of the affected entity, if any.
func (s *Service) mutate(ctx context.Context, op, kind, ifMatch string, fn func(p *models.ProjectData) (string, error)) (_ *View, err error) {
	defer s.observe(op, time.Now(), &err)
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if ifMatch != "" && ifMatch != snap.Checksum {
		return nil, apperr.ErrConflict
	}
	subject, err := fn(snap.Project)
	if err != nil {
		return nil, err
	}
	return s.commit(ctx, snap.Project, kind, subject)
}

// commit persists p and notifies listeners. The lock must be held.
func (s *Service) commit(ctx context.Context, p *models.ProjectData, kind, subject string) (*View, error) {
	ensureCollections(p)
	cs, err := s.store.SaveProject(ctx, p)
	if err != nil {
		return nil, err
	}
	stats := audit.ComputeStats(p.Requirements)
	s.logger.Debug("project: committed",
		slog.String("kind", kind),
		slog.String("subject", subject),
		slog.String("checksum", cs))
	s.emit(Change{
		Kind:      kind,
		ProjectID: p.ID,
		Checksum:  cs,
		Subject:   subject,
		Grade:     audit.Grade(p.Requirements, ""),
		Stats:     stats,
	})
	s.metrics.SetProjectState(len(p.CapItems), map[string]int{
		models.ComplianceOK:          stats.OK,
		models.ComplianceNOK:         stats.NOK,
		models.ComplianceNA:          stats.NA,
		models.ComplianceNotAssessed: stats.NotAssessed,
	})
	return &View{Project: p, Checksum: cs}, nil
}

func (s *Service) load(ctx context.Context) (*store.Snapshot, error) {
	snap, err := s.store.GetProject(ctx, s.projectID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrNoProject
		}
		return nil, err
	}
	ensureCollections(snap.Project)
	return snap, nil
}

func (s *Service) recordImport(ctx context.Context, res *ImportResult, source string) {
	s.metrics.AddImported(res.Kind, res.Records)
	err := s.store.RecordImport(ctx, store.ImportRecord{
		ProjectID: s.projectID,
		Kind:      res.Kind,
		Source:    source,
		Checksum:  res.Checksum,
		Records:   res.Records,
	})
	if err != nil {
		s.logger.Warn("project: record import failed",
			slog.String("source", source),
			slog.String("error", err.Error()))
		return
	}
	s.logger.Info("project: imported",
		slog.String("kind", res.Kind),
		slog.String("source", source),
		slog.Int("records", res.Records))
}

func (s *Service) emit(c Change) {
	if s.notify != nil {
		s.notify(c)
	}
}

func (s *Service) observe(op string, start time.Time, errp *error) {
	s.metrics.ObserveOperation(op, start, *errp)
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func ensureCollections(p *models.ProjectData) {
	if p.Requirements == nil {
		p.Requirements = []models.Requirement{}
	}
	if p.Photos == nil {
		p.Photos = []models.EvidencePhoto{}
	}
	if p.CapItems == nil {
		p.CapItems = []models.CapItem{}
	}
	if p.Documents == nil {
		p.Documents = []models.DocumentItem{}
	}
	if p.DocEvidence == nil {
		p.DocEvidence = []models.DocumentEvidence{}
	}
}
