package api

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/starford/hrpaudit/internal/projectservice"
)

const (
	maxUploadBytes = 50 << 20 // 50 MB
	maxImportBytes = 20 << 20
	maxJSONBytes   = 1 << 20
)

// cleanFileName validates that the filename is a plain name with no path
// separators or traversal.
func cleanFileName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("filename is required")
	}
	cleaned := filepath.Clean(strings.ReplaceAll(name, `\`, "/"))
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("invalid filename: %s", name)
	}
	return cleaned, nil
}

// readUpload decodes a multipart/form-data evidence upload: the "file" field
// holds the content and an optional "caption" field a description.
func readUpload(w http.ResponseWriter, r *http.Request) (projectservice.Upload, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("file too large or invalid multipart"))
		return projectservice.Upload{}, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("missing 'file' field in multipart form"))
		return projectservice.Upload{}, false
	}
	defer file.Close()

	name, err := cleanFileName(header.Filename)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return projectservice.Upload{}, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("failed to read file"))
		return projectservice.Upload{}, false
	}

	up := projectservice.Upload{
		FileName: name,
		Caption:  r.FormValue("caption"),
		Data:     data,
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			up.MimeType = mt
		}
	}
	return up, true
}

// readImport returns the content of an import request: either the "file"
// field of a multipart form or the raw request body. The source name comes
// from the uploaded file name or the "source" query parameter.
func readImport(w http.ResponseWriter, r *http.Request, fallback string) ([]byte, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)

	source := r.URL.Query().Get("source")
	if source == "" {
		source = fallback
	}

	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxImportBytes); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("file too large or invalid multipart"))
			return nil, "", false
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("missing 'file' field in multipart form"))
			return nil, "", false
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("failed to read file"))
			return nil, "", false
		}
		if name, err := cleanFileName(header.Filename); err == nil {
			source = name
		}
		return data, source, true
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("failed to read body"))
		return nil, "", false
	}
	if len(data) == 0 {
		writeJSON(w, http.StatusBadRequest, errorBody("empty import"))
		return nil, "", false
	}
	return data, source, true
}
