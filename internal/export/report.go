package export

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/starford/hrpaudit/internal/audit"
	"github.com/starford/hrpaudit/internal/models"
)

const (
	pageMargin  = 14.0
	photoWidth  = 80.0
	photoHeight = 60.0
	photoGap    = 10.0
)

type rgb struct{ r, g, b int }

var (
	colorCover = rgb{30, 64, 175}
	colorCAP   = rgb{220, 38, 38}
	colorDocs  = rgb{50, 50, 50}
)

// Report renders p as a paginated PDF: cover with tallies, CAP table,
// document checklist, document evidence appendix and a photo grid.
func Report(p *models.ProjectData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("HRP Social Audit Report", true)
	pdf.SetCreator("hrpaudit", true)
	pdf.SetAutoPageBreak(true, 15)

	r := &report{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	r.cover(p)
	r.capPlan(p)
	r.documents(p)
	r.documentEvidence(p)
	r.photos(p)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: report: %w", err)
	}
	return buf.Bytes(), nil
}

type report struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	images int
}

func (r *report) text(x, y float64, s string) {
	r.pdf.Text(x, y, r.tr(s))
}

func (r *report) heading(s string) {
	r.pdf.AddPage()
	r.pdf.SetFont("Helvetica", "B", 16)
	r.pdf.SetTextColor(0, 0, 0)
	r.text(pageMargin, 20, s)
}

func (r *report) cover(p *models.ProjectData) {
	pdf := r.pdf
	pdf.AddPage()
	w, _ := pdf.GetPageSize()

	pdf.SetFillColor(colorCover.r, colorCover.g, colorCover.b)
	pdf.Rect(0, 0, w, 40, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetXY(0, 12)
	pdf.CellFormat(w, 10, "HRP SOCIAL AUDIT REPORT", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(w, 8, "Offline Audit Tool Generated", "", 1, "C", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 14)
	r.text(20, 60, "Supplier: "+p.Meta.SupplierName)
	r.text(20, 70, "Site: "+p.Meta.Site)
	r.text(20, 80, "Date: "+p.Meta.Date)
	r.text(20, 90, "Assessor: "+p.Meta.Assessor)
	r.text(20, 110, "Global Grade: "+audit.Grade(p.Requirements, ""))

	s := audit.ComputeStats(p.Requirements)
	pdf.SetY(120)
	r.table(colorCover, 9, []float64{120, 60}, []string{"Metric", "Count"}, [][]string{
		{"Total Requirements", strconv.Itoa(s.Total)},
		{"Compliant (OK)", strconv.Itoa(s.OK)},
		{"Non-Compliant (NOK)", strconv.Itoa(s.NOK)},
		{"Not Applicable (N/A)", strconv.Itoa(s.NA)},
		{"Not Assessed", strconv.Itoa(s.NotAssessed)},
	})
}

func (r *report) capPlan(p *models.ProjectData) {
	r.heading("Corrective Action Plan (CAP)")
	rows := make([][]string, 0, len(p.CapItems))
	for _, c := range p.CapItems {
		rows = append(rows, []string{c.FindingID, c.Priority, c.Status, c.Requirement, c.CorrectiveAction, c.DueDate})
	}
	r.pdf.SetY(30)
	r.table(colorCAP, 8, []float64{18, 26, 20, 52, 46, 20}, []string{"ID", "Priority", "Status", "Finding", "Action", "Due Date"}, rows)
}

func (r *report) documents(p *models.ProjectData) {
	r.heading("Document Checking-List")
	s := audit.DocumentSummary(p.Documents)
	r.pdf.SetFont("Helvetica", "", 10)
	r.text(pageMargin, 28, fmt.Sprintf("Total Documents: %d | Available/Partial: %d | Missing: %d", s.Total, s.Available, s.Missing))

	rows := make([][]string, 0, len(p.Documents))
	for _, d := range p.Documents {
		rows = append(rows, []string{d.DocNo, d.Category, d.DocumentName, d.Who, orDash(d.Available), d.Remarks})
	}
	r.pdf.SetY(35)
	r.table(colorDocs, 8, []float64{12, 34, 70, 18, 16, 32}, []string{"No", "Category", "Document", "Who", "Avail.", "Remarks"}, rows)
}

func (r *report) documentEvidence(p *models.ProjectData) {
	if len(p.DocEvidence) == 0 {
		return
	}
	r.heading("Appendix: Document Evidence")
	pdf := r.pdf
	_, pageH := pdf.GetPageSize()
	y := 30.0
	for _, ev := range p.DocEvidence {
		name := "Unknown Doc"
		if d := p.FindDocument(ev.DocID); d != nil {
			name = d.DocumentName
		}
		if y > pageH-47 {
			pdf.AddPage()
			y = 20
		}
		pdf.SetFont("Helvetica", "B", 10)
		r.text(pageMargin, y, fmt.Sprintf("Doc: %s (%s)", name, ev.FileName))
		y += 7

		pdf.SetFont("Helvetica", "", 10)
		if strings.HasPrefix(ev.FileType, "image/") {
			if r.image(ev.Data, pageMargin, y) {
				y += photoHeight + 10
			} else {
				r.text(pageMargin, y, "[Image Error]")
				y += 10
			}
			continue
		}
		r.text(pageMargin, y, fmt.Sprintf("[File Attached: %s - %d KB]", ev.FileName, (ev.FileSize+512)/1024))
		y += 10
	}
}

// photos lays the evidence photos out in a two-column grid.
func (r *report) photos(p *models.ProjectData) {
	r.heading("Audit Findings Photos")
	pdf := r.pdf
	_, pageH := pdf.GetPageSize()
	x, y := pageMargin, 30.0
	for _, ph := range p.Photos {
		if y+photoHeight+20 > pageH {
			pdf.AddPage()
			y = 20
		}
		if !r.image(ph.Data, x, y) {
			continue
		}
		pdf.SetFont("Helvetica", "", 10)
		r.text(x, y+photoHeight+5, "ID: "+ph.ChapterLevel+" - "+truncate(ph.Caption, 30))
		if x == pageMargin {
			x += photoWidth + photoGap
		} else {
			x = pageMargin
			y += photoHeight + 20
		}
	}
}

// image draws data at x,y and reports whether it could be decoded.
func (r *report) image(data []byte, x, y float64) bool {
	if len(data) == 0 {
		return false
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return false
	}
	opts := fpdf.ImageOptions{ImageType: strings.ToUpper(format)}
	if opts.ImageType == "JPEG" {
		opts.ImageType = "JPG"
	}
	r.images++
	name := "img" + strconv.Itoa(r.images)
	r.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if !r.pdf.Ok() {
		r.pdf.ClearError()
		return false
	}
	r.pdf.ImageOptions(name, x, y, photoWidth, photoHeight, false, opts, 0, "")
	return true
}

// table draws a single-line-per-row grid starting at the current y. Cell text
// is cut to the column width.
func (r *report) table(head rgb, size float64, widths []float64, headers []string, rows [][]string) {
	pdf := r.pdf
	const lineH = 6.0

	pdf.SetFont("Helvetica", "B", size+1)
	pdf.SetFillColor(head.r, head.g, head.b)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetX(pageMargin)
	for i, h := range headers {
		pdf.CellFormat(widths[i], lineH+1, r.tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", size)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(241, 245, 249)
	for n, row := range rows {
		pdf.SetX(pageMargin)
		for i, cell := range row {
			pdf.CellFormat(widths[i], lineH, r.fit(cell, widths[i]-2), "1", 0, "L", n%2 == 1, 0, "")
		}
		pdf.Ln(-1)
	}
}

// fit translates s and shortens it with an ellipsis until it is narrower than w.
func (r *report) fit(s string, w float64) string {
	out := r.tr(s)
	if r.pdf.GetStringWidth(out) <= w {
		return out
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		out = r.tr(string(runes) + "...")
		if r.pdf.GetStringWidth(out) <= w {
			return out
		}
	}
	return ""
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
