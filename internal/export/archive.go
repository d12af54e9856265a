package export

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"path"
	"strings"
	"time"

	"github.com/starford/hrpaudit/internal/models"
)

// Archive bundles the workbook, every evidence file and a printable HTML
// report into a zip archive.
func Archive(p *models.ProjectData) ([]byte, error) {
	book, err := Workbook(p)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	root := archiveFolder(p.Meta)
	modified := time.Now()

	add := func(name string, data []byte) error {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     path.Join(root, name),
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	if err := add("Audit_Report.xlsx", book); err != nil {
		return nil, fmt.Errorf("export: archive: %w", err)
	}
	for name, data := range archiveEntries(p) {
		if err := add(name, data); err != nil {
			return nil, fmt.Errorf("export: archive: %w", err)
		}
	}
	page, err := printable(p)
	if err != nil {
		return nil, fmt.Errorf("export: archive: %w", err)
	}
	if err := add("Printable_Report.html", page); err != nil {
		return nil, fmt.Errorf("export: archive: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("export: archive: %w", err)
	}
	return buf.Bytes(), nil
}

// archiveEntries yields the evidence files of p keyed by their path inside
// the archive folder. Files without content are skipped.
func archiveEntries(p *models.ProjectData) func(yield func(string, []byte) bool) {
	return func(yield func(string, []byte) bool) {
		for i, ph := range p.Photos {
			if len(ph.Data) == 0 {
				continue
			}
			chapter := ph.ChapterLevel
			if chapter == "" {
				chapter = "GEN"
			}
			name := fmt.Sprintf("Evidence_Photos/%s_%d_%s.jpg", chapter, i, safeFileName(ph.FileName))
			if !yield(name, ph.Data) {
				return
			}
		}
		for _, ev := range p.DocEvidence {
			if len(ev.Data) == 0 {
				continue
			}
			if !yield("Document_Evidence/"+evidenceName(p, ev), ev.Data) {
				return
			}
		}
	}
}

func evidenceName(p *models.ProjectData, ev models.DocumentEvidence) string {
	prefix := "Unknown"
	if d := p.FindDocument(ev.DocID); d != nil {
		prefix = "Doc" + d.DocNo
	}
	name := prefix + "_" + safeFileName(ev.FileName)
	if strings.Contains(name, ".") {
		return name
	}
	switch {
	case strings.Contains(ev.FileType, "pdf"):
		return name + ".pdf"
	case strings.Contains(ev.FileType, "image"):
		return name + ".jpg"
	default:
		return name + ".bin"
	}
}

var printableTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Audit Report - {{.Meta.SupplierName}}</title>
<style>
body { font-family: sans-serif; padding: 20px; }
h1, h2 { color: #333; }
.finding { border-bottom: 1px solid #ccc; padding-bottom: 10px; margin-bottom: 10px; }
.status { font-weight: bold; color: red; }
img { max-width: 300px; max-height: 200px; display: block; margin-top: 5px; }
</style>
</head>
<body>
<h1>Audit Report: {{.Meta.SupplierName}}</h1>
<p>Date: {{.Meta.Date}} | Assessor: {{.Meta.Assessor}}</p>
<h2>Findings &amp; CAP</h2>
{{range .Findings}}<div class="finding">
<h3>#{{.FindingID}} {{.Requirement}}</h3>
<p><strong>Status:</strong> <span class="status">{{.Status}}</span></p>
<p><strong>Action:</strong> {{.Action}}</p>
<div>
{{range .Photos}}<img src="{{.Src}}" alt="{{.Caption}}"><p><i>{{.Caption}}</i></p>
{{end}}</div>
</div>
{{end}}</body>
</html>
`))

type printablePhoto struct {
	Src     template.URL
	Caption string
}

type printableFinding struct {
	FindingID   string
	Requirement string
	Status      string
	Action      string
	Photos      []printablePhoto
}

// printable renders the standalone HTML report with inline photos.
func printable(p *models.ProjectData) ([]byte, error) {
	findings := make([]printableFinding, 0, len(p.CapItems))
	for _, c := range p.CapItems {
		f := printableFinding{
			FindingID:   c.FindingID,
			Requirement: c.Requirement,
			Status:      c.Status,
			Action:      c.CorrectiveAction,
		}
		if f.Action == "" {
			f.Action = "N/A"
		}
		for _, ph := range p.PhotosFor(c.RequirementID) {
			if len(ph.Data) == 0 {
				continue
			}
			f.Photos = append(f.Photos, printablePhoto{Src: dataURI(ph.MimeType, ph.Data), Caption: ph.Caption})
		}
		findings = append(findings, f)
	}

	var buf bytes.Buffer
	err := printableTmpl.Execute(&buf, struct {
		Meta     models.ProjectMeta
		Findings []printableFinding
	}{p.Meta, findings})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func dataURI(mime string, data []byte) template.URL {
	if !strings.HasPrefix(mime, "image/") {
		mime = "image/jpeg"
	}
	return template.URL("data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data))
}
