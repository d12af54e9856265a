// Package export renders an audit project as a workbook, a paginated PDF
// report or a complete evidence archive.
package export

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/starford/hrpaudit/internal/models"
)

// Supported formats.
const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
	FormatZIP  = "zip"
)

// ErrUnsupportedFormat is returned by Render for an unknown format.
var ErrUnsupportedFormat = errors.New("export: unsupported format")

// Content types of the rendered files.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
	ContentTypeZIP  = "application/zip"
)

// File is a rendered export artifact.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Formats lists the supported export formats.
func Formats() []string {
	return []string{FormatXLSX, FormatPDF, FormatZIP}
}

// Render produces the export artifact of p in the given format.
func Render(format string, p *models.ProjectData) (*File, error) {
	var (
		data []byte
		err  error
		ct   string
	)
	switch strings.ToLower(format) {
	case FormatXLSX:
		data, err = Workbook(p)
		ct = ContentTypeXLSX
	case FormatPDF:
		data, err = Report(p)
		ct = ContentTypePDF
	case FormatZIP:
		data, err = Archive(p)
		ct = ContentTypeZIP
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return &File{Name: FileName(format, p.Meta), ContentType: ct, Data: data}, nil
}

// FileName returns the download name of an export.
func FileName(format string, meta models.ProjectMeta) string {
	switch strings.ToLower(format) {
	case FormatXLSX:
		return fmt.Sprintf("HRP_Audit_%s_%s.xlsx", meta.SupplierName, meta.Date)
	case FormatPDF:
		return fmt.Sprintf("HRP_Report_%s_%s.pdf", meta.SupplierName, meta.Date)
	case FormatZIP:
		return archiveFolder(meta) + "_Package.zip"
	default:
		return ""
	}
}

var (
	whitespace = regexp.MustCompile(`\s+`)
	unsafeName = regexp.MustCompile(`(?i)[^a-z0-9.]`)
)

func archiveFolder(meta models.ProjectMeta) string {
	return "HRP_Audit_" + whitespace.ReplaceAllString(meta.SupplierName, "_")
}

// safeFileName replaces everything but ASCII letters, digits and dots.
func safeFileName(name string) string {
	return unsafeName.ReplaceAllString(name, "_")
}

// imageExt returns the picture extension for a mime type, defaulting to jpg.
func imageExt(mime string) string {
	switch {
	case strings.Contains(mime, "png"):
		return ".png"
	case strings.Contains(mime, "gif"):
		return ".gif"
	default:
		return ".jpg"
	}
}

func requirementText(p *models.ProjectData, id string) string {
	if r := p.FindRequirement(id); r != nil {
		return r.Requirement
	}
	return "Unknown"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
