package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/starford/hrpaudit/internal/audit"
	"github.com/starford/hrpaudit/internal/models"
)

func TestNormalizeChapter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0.0"},
		{"1,3", "1.3"},
		{"2", "2.0"},
		{" 4.2 ", "4.2"},
		{"10,1,2", "10.1.2"},
		{"3.1", "3.1"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, audit.NormalizeChapter(tt.in))
		})
	}
}

func TestNormalizeChapter_Idempotent(t *testing.T) {
	inputs := []string{"", "1", "1,3", " 7 ", "12.4", "a,b", ",", "  ", "5.", "0.0"}
	for _, in := range inputs {
		once := audit.NormalizeChapter(in)
		assert.Equal(t, once, audit.NormalizeChapter(once), "input %q", in)
	}
}

func TestChapterSection(t *testing.T) {
	assert.Equal(t, "1", audit.ChapterSection("1,3"))
	assert.Equal(t, "10", audit.ChapterSection("10.2"))
	assert.Equal(t, "2", audit.ChapterSection("2"))
	assert.Equal(t, "0", audit.ChapterSection(""))
}

func TestGenerateID(t *testing.T) {
	r := models.Requirement{ChapterLevel: "1,2", Requirement: "No child (under 15) is employed at all"}
	assert.Equal(t, "1.2::Nochildunder15", audit.GenerateID(r))

	formula := models.Requirement{ChapterLevel: "3", Requirement: "=VLOOKUP(A1,B:C,2)"}
	assert.Equal(t, "3.0::", audit.GenerateID(formula))
}

func TestGenerateID_CollidesOnSharedPrefix(t *testing.T) {
	a := models.Requirement{ChapterLevel: "5.1", Requirement: "Emergency exits are unlocked during shifts"}
	b := models.Requirement{ChapterLevel: "5.1", Requirement: "Emergency exits are unlocked and marked"}
	assert.Equal(t, audit.GenerateID(a), audit.GenerateID(b))
}

func TestPrepareMaster(t *testing.T) {
	in := []models.Requirement{
		{ChapterLevel: "2", Requirement: "  Passports are not retained  ", RequirementLevel: "0. UNACCEPTABLE", Complies: "Yes"},
		{Requirement: "Orphan"},
		{ChapterLevel: "3.1", Requirement: "Exits are marked", Complies: models.ComplianceNOK},
	}
	out := audit.PrepareMaster(in)

	assert.Len(t, out, 3)
	assert.Equal(t, models.ComplianceNotAssessed, out[0].Complies)
	assert.Equal(t, models.ComplianceNotAssessed, out[1].Complies)
	assert.Equal(t, models.ComplianceNOK, out[2].Complies)
	assert.Equal(t, "Yes", in[0].Complies, "input must not be modified")

	st := audit.ComputeStats(out)
	assert.Equal(t, st.Total, st.OK+st.NOK+st.NA+st.NotAssessed)
	assert.Equal(t, "2.0", out[0].ChapterLevel)
	assert.Equal(t, "2.0::Passportsarenotre", out[0].ID)
	assert.Equal(t, "  Passports are not retained  ", out[0].Requirement)
	assert.Equal(t, "0.0", out[1].ChapterLevel)
	assert.Equal(t, "2", in[0].ChapterLevel, "input must not be modified")
}
