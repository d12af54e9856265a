package api

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/starford/hrpaudit/internal/models"
	"github.com/starford/hrpaudit/internal/projectservice"
	"github.com/starford/hrpaudit/internal/testutil"
)

const wagesID = "2.1::Wagesarepaidonti"

// testEnv sets up a temp SQLite store, service, and router for testing.
// An empty authToken means disabled mode.
func testEnv(t *testing.T, authToken string) (*projectservice.Service, http.Handler) {
	t.Helper()
	return testEnvWithSSE(t, authToken != "", authToken, nil)
}

func testEnvWithSSE(t *testing.T, authEnabled bool, token string, sseHandler http.Handler) (*projectservice.Service, http.Handler) {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	svc := projectservice.New(testutil.TestStore(t), "", logger)
	return svc, NewRouter(svc, authEnabled, token, sseHandler)
}

// seededEnv returns a router whose project holds the fixture checklist and
// responses.
func seededEnv(t *testing.T) (*projectservice.Service, http.Handler) {
	t.Helper()
	svc, router := testEnv(t, "")
	ctx := context.Background()
	if _, err := svc.Create(ctx, models.ProjectMeta{SupplierName: "Acme Textiles", Date: "2026-03-01"}, false); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ImportMaster(ctx, []byte(testutil.MasterJSON), "master.json", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ImportResponses(ctx, []byte(testutil.ResponsesCSV), "responses.csv", ""); err != nil {
		t.Fatal(err)
	}
	return svc, router
}

func do(t *testing.T, router http.Handler, method, path string, body any, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatal(err)
		}
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

func TestCreateAndGetProject(t *testing.T) {
	_, router := testEnv(t, "")

	w := do(t, router, http.MethodPost, "/project", CreateProjectRequest{
		Meta: models.ProjectMeta{SupplierName: "Acme", Date: "2026-03-01"},
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	etag := w.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag on create")
	}

	w = do(t, router, http.MethodGet, "/project", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	if got := w.Header().Get("ETag"); got != etag {
		t.Errorf("ETag = %q, want %q", got, etag)
	}
	var v ProjectResponse
	decode(t, w, &v)
	if v.Project.Meta.SupplierName != "Acme" {
		t.Errorf("supplier = %q, want Acme", v.Project.Meta.SupplierName)
	}
	if len(v.Project.Documents) == 0 {
		t.Error("documents not seeded")
	}
}

func TestCreateDuplicate(t *testing.T) {
	_, router := testEnv(t, "")
	body := CreateProjectRequest{Meta: models.ProjectMeta{SupplierName: "Acme"}}

	if w := do(t, router, http.MethodPost, "/project", body, nil); w.Code != http.StatusCreated {
		t.Fatalf("first create = %d", w.Code)
	}
	if w := do(t, router, http.MethodPost, "/project", body, nil); w.Code != http.StatusConflict {
		t.Errorf("duplicate create = %d, want 409", w.Code)
	}
	body.Force = true
	if w := do(t, router, http.MethodPost, "/project", body, nil); w.Code != http.StatusCreated {
		t.Errorf("forced create = %d, want 201", w.Code)
	}
}

func TestNoProject(t *testing.T) {
	_, router := testEnv(t, "")

	for _, path := range []string{"/project", "/requirements", "/summary", "/cap"} {
		w := do(t, router, http.MethodGet, path, nil, nil)
		if w.Code != http.StatusPreconditionFailed {
			t.Errorf("GET %s without project = %d, want 412", path, w.Code)
		}
	}
	if w := do(t, router, http.MethodDelete, "/project", nil, nil); w.Code != http.StatusPreconditionFailed {
		t.Errorf("DELETE without project = %d, want 412", w.Code)
	}
}

func TestImportEndpoints(t *testing.T) {
	_, router := testEnv(t, "")
	do(t, router, http.MethodPost, "/project", CreateProjectRequest{}, nil)

	w := do(t, router, http.MethodPost, "/project/import/master?source=checklist.json", testutil.MasterJSON, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("import master = %d, body = %s", w.Code, w.Body.String())
	}
	var res ImportResponse
	decode(t, w, &res)
	if res.Records != 4 {
		t.Errorf("records = %d, want 4", res.Records)
	}

	// Multipart upload of the responses sheet.
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "answers.csv")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = io.WriteString(part, testutil.ResponsesCSV)
	mw.Close()
	w = do(t, router, http.MethodPost, "/project/import/responses", buf.String(), http.Header{"Content-Type": {mw.FormDataContentType()}})
	if w.Code != http.StatusOK {
		t.Fatalf("import responses = %d, body = %s", w.Code, w.Body.String())
	}

	w = do(t, router, http.MethodGet, "/project/imports", nil, nil)
	var hist ImportHistoryResponse
	decode(t, w, &hist)
	if len(hist.Imports) != 2 || hist.Imports[0].Source != "answers.csv" || hist.Imports[1].Source != "checklist.json" {
		t.Errorf("imports = %+v", hist.Imports)
	}

	if w := do(t, router, http.MethodPost, "/project/import/master", "{broken", nil); w.Code != http.StatusBadRequest {
		t.Errorf("invalid master = %d, want 400", w.Code)
	}
	if w := do(t, router, http.MethodPost, "/project/import/master", "", nil); w.Code != http.StatusBadRequest {
		t.Errorf("empty master = %d, want 400", w.Code)
	}
}

func TestListRequirements(t *testing.T) {
	_, router := seededEnv(t)

	w := do(t, router, http.MethodGet, "/requirements?chapter=3", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	var resp RequirementListResponse
	decode(t, w, &resp)
	if resp.Total != 2 {
		t.Errorf("chapter 3 total = %d, want 2", resp.Total)
	}
}

func TestPatchRequirementWithOptimisticLocking(t *testing.T) {
	_, router := seededEnv(t)

	w := do(t, router, http.MethodGet, "/project", nil, nil)
	etag := w.Header().Get("ETag")

	path := "/requirements/" + url.PathEscape(wagesID)
	body := map[string]string{"complies": "OK", "comments": "paid after review"}

	// Stale checksum is rejected.
	w = do(t, router, http.MethodPatch, path, body, http.Header{"If-Match": {`"stale"`}})
	if w.Code != http.StatusConflict {
		t.Errorf("stale If-Match = %d, want 409", w.Code)
	}

	w = do(t, router, http.MethodPatch, path, body, http.Header{"If-Match": {etag}})
	if w.Code != http.StatusOK {
		t.Fatalf("patch = %d, body = %s", w.Code, w.Body.String())
	}
	var req models.Requirement
	decode(t, w, &req)
	if req.Complies != models.ComplianceOK || req.Comments != "paid after review" {
		t.Errorf("requirement = %+v", req)
	}

	// Same checksum again is now stale.
	w = do(t, router, http.MethodPatch, path, body, http.Header{"If-Match": {etag}})
	if w.Code != http.StatusConflict {
		t.Errorf("reused If-Match = %d, want 409", w.Code)
	}

	w = do(t, router, http.MethodPatch, "/requirements/nope", body, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing requirement = %d, want 404", w.Code)
	}
}

func TestCapEndpoints(t *testing.T) {
	_, router := seededEnv(t)

	w := do(t, router, http.MethodPost, "/cap/generate", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("generate = %d", w.Code)
	}
	var caps CapListResponse
	decode(t, w, &caps)
	if caps.Total != 1 || caps.Items[0].RequirementID != wagesID {
		t.Fatalf("cap = %+v", caps)
	}

	path := "/cap/" + url.PathEscape(caps.Items[0].ID)
	w = do(t, router, http.MethodPatch, path, map[string]string{"owner": "HR", "status": "Closed"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("patch cap = %d, body = %s", w.Code, w.Body.String())
	}
	w = do(t, router, http.MethodPatch, path, map[string]string{"status": "Finished"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid status = %d, want 400", w.Code)
	}

	w = do(t, router, http.MethodGet, "/cap", nil, nil)
	decode(t, w, &caps)
	if caps.Items[0].Owner != "HR" {
		t.Errorf("owner = %q, want HR", caps.Items[0].Owner)
	}
}

func TestDocumentEndpoints(t *testing.T) {
	_, router := seededEnv(t)

	w := do(t, router, http.MethodGet, "/documents/categories", nil, nil)
	var cats CategoryListResponse
	decode(t, w, &cats)
	if len(cats.Categories) == 0 {
		t.Fatal("no categories")
	}

	w = do(t, router, http.MethodGet, "/documents?category="+url.QueryEscape(cats.Categories[0]), nil, nil)
	var docs DocumentListResponse
	decode(t, w, &docs)
	if docs.Total == 0 {
		t.Fatal("no documents in first category")
	}

	id := docs.Documents[0].ID
	w = do(t, router, http.MethodPatch, "/documents/"+id, map[string]string{"available": "Yes"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("patch document = %d, body = %s", w.Code, w.Body.String())
	}
	w = do(t, router, http.MethodPatch, "/documents/"+id, map[string]string{"available": "Sometimes"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid availability = %d, want 400", w.Code)
	}

	w = upload(t, router, "/documents/"+id+"/evidence", "licence.pdf", []byte("%PDF-1.4 test"), "current licence")
	if w.Code != http.StatusCreated {
		t.Fatalf("upload evidence = %d, body = %s", w.Code, w.Body.String())
	}
	var ev EvidenceInfo
	decode(t, w, &ev)
	if ev.FileType != "application/pdf" || ev.Note != "current licence" {
		t.Errorf("evidence = %+v", ev)
	}
	if w := do(t, router, http.MethodDelete, "/evidence/"+ev.ID, nil, nil); w.Code != http.StatusNoContent {
		t.Errorf("delete evidence = %d, want 204", w.Code)
	}
}

func TestSummaryAndChapters(t *testing.T) {
	_, router := seededEnv(t)

	w := do(t, router, http.MethodGet, "/summary", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("summary = %d", w.Code)
	}
	var sum SummaryResponse
	decode(t, w, &sum)
	if sum.Audit.Grade != "D" {
		t.Errorf("grade = %q, want D", sum.Audit.Grade)
	}
	if sum.Audit.Stats.NOK != 1 {
		t.Errorf("nok = %d, want 1", sum.Audit.Stats.NOK)
	}

	w = do(t, router, http.MethodGet, "/chapters", nil, nil)
	var chapters ChapterListResponse
	decode(t, w, &chapters)
	if len(chapters.Chapters) != 12 || chapters.Chapters[0].Title != "CHILD LABOUR" {
		t.Errorf("chapters = %+v", chapters.Chapters)
	}
}

func TestExport(t *testing.T) {
	_, router := seededEnv(t)

	w := do(t, router, http.MethodGet, "/export/pdf", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "HRP_Report_Acme Textiles_2026-03-01.pdf") {
		t.Errorf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")) {
		t.Error("body is not a PDF")
	}

	if w := do(t, router, http.MethodGet, "/export/docx", nil, nil); w.Code != http.StatusBadRequest {
		t.Errorf("unknown format = %d, want 400", w.Code)
	}
}

// Auth tests.

func TestAuthMiddleware_TokenMode(t *testing.T) {
	_, router := testEnv(t, "secret")

	if w := do(t, router, http.MethodGet, "/chapters", nil, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("no auth = %d, want 401", w.Code)
	}
	if w := do(t, router, http.MethodGet, "/chapters", nil, http.Header{"Authorization": {"Bearer wrong"}}); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong token = %d, want 401", w.Code)
	}
	if w := do(t, router, http.MethodGet, "/chapters", nil, http.Header{"Authorization": {"Bearer secret"}}); w.Code != http.StatusOK {
		t.Errorf("valid token = %d, want 200", w.Code)
	}
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	_, router := testEnv(t, "")

	if w := do(t, router, http.MethodGet, "/chapters", nil, nil); w.Code != http.StatusOK {
		t.Errorf("no auth = %d, want 200", w.Code)
	}
}

// SSE endpoint auth tests.

// sseStub writes headers and blocks until the request context is done.
var sseStub = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.WriteHeader(http.StatusOK)
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
	<-r.Context().Done()
})

func TestSSEEvents_AuthProtected(t *testing.T) {
	_, router := testEnvWithSSE(t, true, "secret", sseStub)

	if w := do(t, router, http.MethodGet, "/events", nil, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("SSE no auth = %d, want 401", w.Code)
	}
}

func TestSSEEvents_ValidToken(t *testing.T) {
	_, router := testEnvWithSSE(t, true, "tok", sseStub)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code == http.StatusUnauthorized {
		t.Error("SSE with valid token should not 401")
	}
}

// Upload tests.

func upload(t *testing.T, router http.Handler, path, filename string, content []byte, caption string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = io.Copy(part, bytes.NewReader(content))
	if caption != "" {
		_ = mw.WriteField("caption", caption)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func pngData(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestPhotoUploadLifecycle(t *testing.T) {
	_, router := seededEnv(t)
	path := "/requirements/" + url.PathEscape(wagesID) + "/photos"

	w := upload(t, router, path, "payroll.png", pngData(t), "Payroll ledger")
	if w.Code != http.StatusCreated {
		t.Fatalf("upload = %d, body = %s", w.Code, w.Body.String())
	}
	var ph PhotoInfo
	decode(t, w, &ph)
	if ph.MimeType != "image/png" || ph.Caption != "Payroll ledger" || ph.RequirementID != wagesID {
		t.Errorf("photo = %+v", ph)
	}

	w = do(t, router, http.MethodPatch, "/photos/"+ph.ID, CaptionRequest{Caption: "Ledger p.3"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("caption = %d", w.Code)
	}
	if w := do(t, router, http.MethodDelete, "/photos/"+ph.ID, nil, nil); w.Code != http.StatusNoContent {
		t.Errorf("delete = %d, want 204", w.Code)
	}
	if w := do(t, router, http.MethodDelete, "/photos/"+ph.ID, nil, nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete = %d, want 404", w.Code)
	}
}

func TestPhotoUpload_RejectsNonImage(t *testing.T) {
	_, router := seededEnv(t)
	w := upload(t, router, "/requirements/"+url.PathEscape(wagesID)+"/photos", "notes.txt", []byte("plain text"), "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("non-image upload = %d, want 400", w.Code)
	}
}

func TestUpload_MissingFileField(t *testing.T) {
	_, router := seededEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("wrong", "data")
	mw.Close()

	w := do(t, router, http.MethodPost, "/requirements/"+url.PathEscape(wagesID)+"/photos", buf.String(),
		http.Header{"Content-Type": {mw.FormDataContentType()}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing field = %d, want 400", w.Code)
	}
}

func TestCleanFileName(t *testing.T) {
	for _, name := range []string{"", "../escape.txt", "a/b.png", `..\evil.png`} {
		if _, err := cleanFileName(name); err == nil {
			t.Errorf("cleanFileName(%q) accepted", name)
		}
	}
	if got, err := cleanFileName("photo 1.jpg"); err != nil || got != "photo 1.jpg" {
		t.Errorf("cleanFileName(photo 1.jpg) = %q, %v", got, err)
	}
}
