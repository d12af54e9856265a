package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/hrpaudit/internal/audit"
	"github.com/starford/hrpaudit/internal/models"
)

func TestDefaultDocumentCatalog_UniqueNumbers(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range audit.DefaultDocumentCatalog {
		assert.False(t, seen[d.Number], "duplicate catalog number %q", d.Number)
		seen[d.Number] = true
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Category)
	}
}

func TestSeedDocuments(t *testing.T) {
	docs := audit.SeedDocuments(nil, audit.DefaultDocumentCatalog)

	require.Len(t, docs, len(audit.DefaultDocumentCatalog))
	first := audit.DefaultDocumentCatalog[0]
	assert.Equal(t, "DOC-"+first.Number, docs[0].ID)
	assert.Equal(t, first.Number, docs[0].DocNo)
	assert.Equal(t, first.Timing, docs[0].WhenInfo)
	assert.Equal(t, models.AvailabilityUnset, docs[0].Available)
}

func TestSeedDocuments_NoOpWhenPresent(t *testing.T) {
	existing := []models.DocumentItem{{ID: "DOC-9", Available: models.AvailabilityYes}}
	docs := audit.SeedDocuments(existing, audit.DefaultDocumentCatalog)
	assert.Equal(t, existing, docs)
}

func TestDocumentSummary(t *testing.T) {
	docs := []models.DocumentItem{
		{Available: models.AvailabilityYes},
		{Available: models.AvailabilityPartial},
		{Available: models.AvailabilityNo},
		{Available: models.AvailabilityNA},
		{},
	}
	assert.Equal(t, audit.DocStats{Total: 5, Available: 2, Missing: 1}, audit.DocumentSummary(docs))
}

func TestFilterDocuments(t *testing.T) {
	docs := []models.DocumentItem{
		{DocNo: "12", Category: "Wages", DocumentName: "Payroll records"},
		{DocNo: "120", Category: "Wages", DocumentName: "Bonus policy"},
		{DocNo: "7", Category: "General", DocumentName: "Payroll calendar"},
	}

	assert.Len(t, audit.FilterDocuments(docs, "Wages", ""), 2)
	assert.Len(t, audit.FilterDocuments(docs, "Wages", "PAYROLL"), 1)
	assert.Len(t, audit.FilterDocuments(docs, "Wages", "12"), 2)
	assert.Len(t, audit.FilterDocuments(docs, "", "payroll"), 2)
	assert.Empty(t, audit.FilterDocuments(docs, "Fire", ""))
}

func TestDocumentCategories(t *testing.T) {
	docs := []models.DocumentItem{{Category: "B"}, {Category: "A"}, {Category: "B"}}
	assert.Equal(t, []string{"B", "A"}, audit.DocumentCategories(docs))
}

func TestIsAvailability(t *testing.T) {
	assert.True(t, audit.IsAvailability(""))
	assert.True(t, audit.IsAvailability("Partial"))
	assert.False(t, audit.IsAvailability("yes"))
}
