package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/starford/hrpaudit/internal/audit"
	"github.com/starford/hrpaudit/internal/models"
)

// Workbook sheet names, in tab order.
const (
	SheetSummary   = "SUMMARY"
	SheetChecklist = "CHECKLIST"
	SheetDocuments = "DOCUMENTS"
	SheetPictures  = "PICTURES"
	SheetCAP       = "CAP"
)

// pictureRowHeight is the height in points of a PICTURES row.
const pictureRowHeight = 119

type column struct {
	header string
	width  float64
}

// Workbook renders p as an xlsx workbook.
func Workbook(p *models.ProjectData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	w := &workbook{f: f}
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("export: workbook: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCE3F5"}},
	})
	if err != nil {
		return nil, fmt.Errorf("export: workbook: %w", err)
	}
	w.header = header

	for _, step := range []func(*models.ProjectData) error{
		w.summary,
		w.checklist,
		w.documents,
		w.pictures,
		w.capPlan,
	} {
		if err := step(p); err != nil {
			return nil, fmt.Errorf("export: workbook: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: workbook: %w", err)
	}
	return buf.Bytes(), nil
}

type workbook struct {
	f      *excelize.File
	header int
}

// sheet creates the sheet if needed and writes its header row.
func (w *workbook) sheet(name string, cols []column) error {
	if idx, _ := w.f.GetSheetIndex(name); idx < 0 {
		if _, err := w.f.NewSheet(name); err != nil {
			return err
		}
	}
	headers := make([]any, len(cols))
	for i, c := range cols {
		headers[i] = c.header
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := w.f.SetColWidth(name, col, col, c.width); err != nil {
			return err
		}
	}
	if err := w.f.SetSheetRow(name, "A1", &headers); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(cols), 1)
	return w.f.SetCellStyle(name, "A1", last, w.header)
}

func (w *workbook) row(sheet string, n int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	return w.f.SetSheetRow(sheet, cell, &values)
}

func (w *workbook) summary(p *models.ProjectData) error {
	if err := w.sheet(SheetSummary, []column{{"Item", 30}, {"Value", 50}}); err != nil {
		return err
	}
	rows := [][]any{
		{"Supplier Name", p.Meta.SupplierName},
		{"Site", p.Meta.Site},
		{"Date", p.Meta.Date},
		{"Assessor", p.Meta.Assessor},
		{"Brand", p.Meta.Brand},
		{"Global Grade", audit.Grade(p.Requirements, "")},
		{},
		{"Requirement Level Stats"},
	}
	for _, ls := range audit.LevelStats(p.Requirements) {
		rows = append(rows, []any{ls.Level, fmt.Sprintf("OK: %d, NOK: %d, N/A: %d", ls.OK, ls.NOK, ls.NA)})
	}
	for i, r := range rows {
		if len(r) == 0 {
			continue
		}
		if err := w.row(SheetSummary, i+2, r...); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbook) checklist(p *models.ProjectData) error {
	err := w.sheet(SheetChecklist, []column{
		{"Chapter", 10}, {"Level", 15}, {"Requirement", 50},
		{"Answer", 15}, {"Complies", 15}, {"Comments", 40},
	})
	if err != nil {
		return err
	}
	for i, r := range p.Requirements {
		if err := w.row(SheetChecklist, i+2, r.ChapterLevel, r.RequirementLevel, r.Requirement, r.Answer, r.Complies, r.Comments); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbook) documents(p *models.ProjectData) error {
	err := w.sheet(SheetDocuments, []column{
		{"No", 8}, {"Category", 20}, {"Document", 40}, {"Who", 10},
		{"Available", 12}, {"Remarks", 30}, {"Evidence Files", 10},
	})
	if err != nil {
		return err
	}
	for i, d := range p.Documents {
		if err := w.row(SheetDocuments, i+2, d.DocNo, d.Category, d.DocumentName, d.Who, d.Available, d.Remarks, p.EvidenceCount(d.ID)); err != nil {
			return err
		}
	}
	return nil
}

func (w *workbook) pictures(p *models.ProjectData) error {
	err := w.sheet(SheetPictures, []column{{"Chapter", 10}, {"Requirement", 40}, {"Caption", 30}, {"Photo", 50}})
	if err != nil {
		return err
	}
	for i, ph := range p.Photos {
		n := i + 2
		if err := w.row(SheetPictures, n, ph.ChapterLevel, requirementText(p, ph.RequirementID), ph.Caption); err != nil {
			return err
		}
		if err := w.f.SetRowHeight(SheetPictures, n, pictureRowHeight); err != nil {
			return err
		}
		if len(ph.Data) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(4, n)
		err := w.f.AddPictureFromBytes(SheetPictures, cell, &excelize.Picture{
			Extension: imageExt(ph.MimeType),
			File:      ph.Data,
			Format:    &excelize.GraphicOptions{AutoFit: true, Positioning: "oneCell", AltText: ph.Caption},
		})
		if err != nil {
			// Undecodable pictures keep their row without the image.
			if err := w.f.SetCellValue(SheetPictures, cell, "[image unavailable]"); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *workbook) capPlan(p *models.ProjectData) error {
	err := w.sheet(SheetCAP, []column{
		{"Finding ID", 15}, {"Requirement", 40}, {"Status", 15}, {"Risk Explanation", 30},
		{"Corrective Action", 30}, {"Owner", 15}, {"Due Date", 15}, {"Priority", 15},
	})
	if err != nil {
		return err
	}
	for i, c := range p.CapItems {
		if err := w.row(SheetCAP, i+2, c.FindingID, c.Requirement, c.Status, c.RiskExplanation, c.CorrectiveAction, c.Owner, c.DueDate, c.Priority); err != nil {
			return err
		}
	}
	return nil
}
