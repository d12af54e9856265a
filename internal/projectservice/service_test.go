package projectservice_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/hrpaudit/internal/apperr"
	"github.com/starford/hrpaudit/internal/audit"
	"github.com/starford/hrpaudit/internal/export"
	"github.com/starford/hrpaudit/internal/metrics"
	"github.com/starford/hrpaudit/internal/models"
	"github.com/starford/hrpaudit/internal/projectservice"
	"github.com/starford/hrpaudit/internal/testutil"
)

const (
	wagesID = "2.1::Wagesarepaidonti"
	childID = "1.1::Nochildunder15is"
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func newService(t *testing.T, opts ...projectservice.Option) *projectservice.Service {
	t.Helper()
	opts = append([]projectservice.Option{
		projectservice.WithClock(func() time.Time { return fixedNow }),
		projectservice.WithMetrics(metrics.New()),
	}, opts...)
	return projectservice.New(testutil.TestStore(t), "", nil, opts...)
}

// seeded returns a service whose project has the fixture checklist merged
// with the fixture responses.
func seeded(t *testing.T) *projectservice.Service {
	t.Helper()
	ctx := context.Background()
	svc := newService(t)
	_, err := svc.Create(ctx, models.ProjectMeta{SupplierName: "Acme Textiles"}, false)
	require.NoError(t, err)
	_, err = svc.ImportMaster(ctx, []byte(testutil.MasterJSON), "master.json", "")
	require.NoError(t, err)
	_, err = svc.ImportResponses(ctx, []byte(testutil.ResponsesCSV), "responses.csv", "")
	require.NoError(t, err)
	return svc
}

func strPtr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	v, err := svc.Create(ctx, models.ProjectMeta{SupplierName: "Acme"}, false)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProjectID, v.Project.ID)
	assert.Equal(t, "2026-03-01", v.Project.Meta.Date)
	assert.Len(t, v.Project.Documents, len(audit.DefaultDocumentCatalog))
	assert.NotNil(t, v.Project.Requirements)
	assert.NotEmpty(t, v.Checksum)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, v.Checksum, got.Checksum)
}

func TestCreate_ExistingRequiresForce(t *testing.T) {
	ctx := context.Background()
	svc := seeded(t)

	_, err := svc.Create(ctx, models.ProjectMeta{SupplierName: "Other"}, false)
	require.ErrorIs(t, err, apperr.ErrAlreadyExists)

	v, err := svc.Create(ctx, models.ProjectMeta{SupplierName: "Other"}, true)
	require.NoError(t, err)
	assert.Equal(t, "Other", v.Project.Meta.SupplierName)
	assert.Empty(t, v.Project.Requirements)

	sums, err := svc.ImportedChecksums(ctx)
	require.NoError(t, err)
	assert.Empty(t, sums, "forced create must forget previous imports")

	res, err := svc.ImportMaster(ctx, []byte(testutil.MasterJSON), "master.json", "")
	require.NoError(t, err)
	assert.Equal(t, 4, res.Records)
}

func TestCreate_InvalidDate(t *testing.T) {
	_, err := newService(t).Create(context.Background(), models.ProjectMeta{Date: "01/03/2026"}, false)
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestOperationsWithoutProject(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.Get(ctx)
	assert.ErrorIs(t, err, apperr.ErrNoProject)
	_, err = svc.ImportResponses(ctx, []byte(testutil.ResponsesCSV), "r.csv", "")
	assert.ErrorIs(t, err, apperr.ErrNoProject)
	_, err = svc.Summary(ctx)
	assert.ErrorIs(t, err, apperr.ErrNoProject)
	assert.ErrorIs(t, svc.Reset(ctx), apperr.ErrNoProject)
}

func TestImportPipeline(t *testing.T) {
	ctx := context.Background()
	svc := seeded(t)

	reqs, _, err := svc.Requirements(ctx, "")
	require.NoError(t, err)
	require.Len(t, reqs, 4)
	assert.Equal(t, childID, reqs[0].ID)
	assert.Equal(t, "1.1", reqs[0].ChapterLevel)
	assert.Equal(t, models.ComplianceOK, reqs[0].Complies)
	assert.Equal(t, wagesID, reqs[1].ID)
	assert.Equal(t, "No, two weeks late", reqs[1].Answer)
	assert.Equal(t, models.ComplianceNOK, reqs[1].Complies)

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, audit.GradeD, sum.Audit.Grade)
	assert.Equal(t, audit.Stats{Total: 4, OK: 2, NOK: 1, NA: 1}, sum.Audit.Stats)

	ch3, _, err := svc.Requirements(ctx, "3")
	require.NoError(t, err)
	assert.Len(t, ch3, 2)

	grade, err := svc.ChapterGrade(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, audit.GradeD, grade.Grade)
	assert.Equal(t, "FORCED LABOUR", grade.Title)

	imports, err := svc.Imports(ctx, 0)
	require.NoError(t, err)
	require.Len(t, imports, 2)
	assert.Equal(t, "responses.csv", imports[0].Source)

	sums, err := svc.ImportedChecksums(ctx)
	require.NoError(t, err)
	assert.Len(t, sums, 2)
}

func TestImportMaster_CoercesVerdicts(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	_, err := svc.Create(ctx, models.ProjectMeta{SupplierName: "Acme"}, false)
	require.NoError(t, err)

	master := `[
  {"chapter_level": "4.1", "requirement_level": "1. CONSOLIDATED", "requirement": "Contracts are signed", "complies": "Yes"},
  {"chapter_level": "4.2", "requirement_level": "2. ADVANCED", "requirement": "Payslips are issued"}
]`
	_, err = svc.ImportMaster(ctx, []byte(master), "master.json", "")
	require.NoError(t, err)

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, audit.Stats{Total: 2, NotAssessed: 2}, sum.Audit.Stats)
}

func TestImportMaster_InvalidLeavesProjectUntouched(t *testing.T) {
	ctx := context.Background()
	svc := seeded(t)
	before, err := svc.Get(ctx)
	require.NoError(t, err)

	_, err = svc.ImportMaster(ctx, []byte("{not json"), "broken.json", "")
	require.ErrorIs(t, err, apperr.ErrInvalidInput)

	after, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Checksum, after.Checksum)
}

func TestMutate_IfMatch(t *testing.T) {
	ctx := context.Background()
	svc := seeded(t)
	v, err := svc.Get(ctx)
	require.NoError(t, err)

	_, err = svc.UpdateRequirement(ctx, wagesID, projectservice.RequirementPatch{Comments: strPtr("late")}, "stale")
	require.ErrorIs(t, err, apperr.ErrConflict)

	_, err = svc.UpdateRequirement(ctx, wagesID, projectservice.RequirementPatch{Comments: strPtr("late")}, v.Checksum)
	require.NoError(t, err)

	_, err = svc.UpdateRequirement(ctx, wagesID, projectservice.RequirementPatch{Comments: strPtr("later")}, v.Checksum)
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestUpdateRequirement(t *testing.T) {
	ctx := context.Background()
	svc := seeded(t)

	r, err := svc.UpdateRequirement(ctx, childID, projectservice.RequirementPatch{
		Complies: strPtr("Maybe"),
		Answer:   strPtr("Unclear"),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, models.ComplianceNotAssessed, r.Complies)
	assert.Equal(t, "Unclear", r.Answer)
	assert.Equal(t, "Checked 20 files", r.Comments)

	_, err = svc.UpdateRequirement(ctx, "9.9::missing", projectservice.RequirementPatch{}, "")
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRegenerateCAP_PreservesEdits(t *testing.T) {
	ctx := context.Background()
	svc := seeded(t)

	items, err := svc.RegenerateCAP(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "CAP_"+wagesID, items[0].ID)
	assert.Equal(t, audit.PriorityMediumHigh, items[0].Priority)
	assert.Equal(t, audit.SelectTemplate("wage").Corrective, items[0].CorrectiveAction)

	_, err = svc.UpdateCap(ctx, items[0].ID, projectservice.CapPatch{
		Owner:   strPtr("HR Manager"),
		Status:  strPtr(models.CapStatusInProgress),
		DueDate: strPtr("2026-04-01"),
	}, "")
	require.NoError(t, err)

	_, err = svc.UpdateRequirement(ctx, childID, projectservice.RequirementPatch{Complies: strPtr(models.ComplianceNOK)}, "")
	require.NoError(t, err)

	items, err = svc.RegenerateCAP(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "CAP_"+childID, items[0].ID)
	assert.Equal(t, "HR Manager", items[1].Owner)
	assert.Equal(t, models.CapStatusInProgress, items[1].Status)
	assert.Equal(t, "2026-04-01", items[1].DueDate)

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.CapItems)
	assert.Equal(t, 2, sum.OpenCap)
}

func TestUpdateCap_Validation(t *testing.T) {
	ctx := context.Background()
	svc := seeded(t)
	items, err := svc.RegenerateCAP(ctx, "")
	require.NoError(t, err)

	_, err = svc.UpdateCap(ctx, items[0].ID, projectservice.CapPatch{Status: strPtr("Done")}, "")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	_, err = svc.UpdateCap(ctx, items[0].ID, projectservice.CapPatch{DueDate: strPtr("next week")}, "")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	_, err = svc.UpdateCap(ctx, "CAP_missing", projectservice.CapPatch{}, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDocuments(t *testing.T) {
	ctx := context.Background()
	svc := seeded(t)

	docs, _, err := svc.Documents(ctx, "", "")
	require.NoError(t, err)
	require.NotEmpty(t, docs)
	first := docs[0]

	d, err := svc.UpdateDocument(ctx, first.ID, projectservice.DocumentPatch{
		Available: strPtr(models.AvailabilityPartial),
		Remarks:   strPtr("expired"),
	}, "")
	require.NoError(t, err)
	assert.Equal(t, models.AvailabilityPartial, d.Available)

	_, err = svc.UpdateDocument(ctx, first.ID, projectservice.DocumentPatch{Available: strPtr("Maybe")}, "")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	filtered, _, err := svc.Documents(ctx, first.Category, "")
	require.NoError(t, err)
	for _, doc := range filtered {
		assert.Equal(t, first.Category, doc.Category)
	}

	none, _, err := svc.Documents(ctx, "", "no document is called this")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Category, cats[0])

	seeded, err := svc.SeedDocuments(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, models.AvailabilityPartial, seeded[0].Available, "seeding keeps an existing checklist")

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Documents.Available)
}

func pngData(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestPhotos(t *testing.T) {
	ctx := context.Background()
	svc := seeded(t)

	ph, err := svc.AddPhoto(ctx, wagesID, projectservice.Upload{FileName: "payroll.png", Caption: "Payroll", Data: pngData(t)}, "")
	require.NoError(t, err)
	assert.Equal(t, "image/png", ph.MimeType)
	assert.Equal(t, "2.1", ph.ChapterLevel)
	assert.Equal(t, fixedNow.UnixMilli(), ph.Timestamp)
	assert.NotEmpty(t, ph.ID)

	_, err = svc.AddPhoto(ctx, wagesID, projectservice.Upload{FileName: "notes.txt", Data: []byte("plain text")}, "")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	_, err = svc.AddPhoto(ctx, "9.9::missing", projectservice.Upload{FileName: "a.png", Data: pngData(t)}, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	updated, err := svc.UpdatePhotoCaption(ctx, ph.ID, "Payroll ledger", "")
	require.NoError(t, err)
	assert.Equal(t, "Payroll ledger", updated.Caption)

	require.NoError(t, svc.RemovePhoto(ctx, ph.ID, ""))
	assert.ErrorIs(t, svc.RemovePhoto(ctx, ph.ID, ""), apperr.ErrNotFound)
}

func TestDocumentEvidence(t *testing.T) {
	ctx := context.Background()
	svc := seeded(t)
	docs, _, err := svc.Documents(ctx, "", "")
	require.NoError(t, err)

	ev, err := svc.AddDocumentEvidence(ctx, docs[0].ID, projectservice.Upload{FileName: "licence.pdf", MimeType: "application/pdf", Data: []byte("%PDF-1.4")}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(8), ev.FileSize)

	v, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Project.EvidenceCount(docs[0].ID))

	require.NoError(t, svc.RemoveDocumentEvidence(ctx, ev.ID, ""))
	_, err = svc.AddDocumentEvidence(ctx, "DOC-missing", projectservice.Upload{FileName: "x", Data: []byte("x")}, "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestNotifier(t *testing.T) {
	ctx := context.Background()
	var changes []projectservice.Change
	svc := newService(t, projectservice.WithNotifier(func(c projectservice.Change) {
		changes = append(changes, c)
	}))

	_, err := svc.Create(ctx, models.ProjectMeta{}, false)
	require.NoError(t, err)
	_, err = svc.ImportMaster(ctx, []byte(testutil.MasterJSON), "m.json", "")
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx))

	require.Len(t, changes, 3)
	assert.Equal(t, projectservice.ChangeCreated, changes[0].Kind)
	assert.Equal(t, projectservice.ChangeMasterImported, changes[1].Kind)
	assert.Equal(t, "m.json", changes[1].Subject)
	assert.Equal(t, 4, changes[1].Stats.Total)
	assert.NotEmpty(t, changes[1].Checksum)
	assert.Equal(t, projectservice.ChangeDeleted, changes[2].Kind)
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	svc := seeded(t)

	f, err := svc.Export(ctx, export.FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "HRP_Audit_Acme Textiles_2026-03-01.xlsx", f.Name)

	_, err = svc.Export(ctx, "docx")
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	svc := seeded(t)
	require.NoError(t, svc.Reset(ctx))

	_, err := svc.Get(ctx)
	assert.ErrorIs(t, err, apperr.ErrNoProject)
	imports, err := svc.Imports(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, imports)
}
