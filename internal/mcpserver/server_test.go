package mcpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/hrpaudit/internal/models"
	"github.com/starford/hrpaudit/internal/projectservice"
	"github.com/starford/hrpaudit/internal/testutil"
)

const wagesID = "2.1::Wagesarepaidonti"

// pngHeader is enough for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func testServer(t *testing.T) (*Server, *projectservice.Service) {
	t.Helper()
	svc := projectservice.New(testutil.TestStore(t), "", nil)
	return New(svc, "test"), svc
}

func seededServer(t *testing.T) (*Server, *projectservice.Service) {
	t.Helper()
	srv, svc := testServer(t)
	ctx := context.Background()
	if _, err := svc.Create(ctx, models.ProjectMeta{SupplierName: "Acme"}, false); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ImportMaster(ctx, []byte(testutil.MasterJSON), "master.json", ""); err != nil {
		t.Fatal(err)
	}
	return srv, svc
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	var result *mcp.CallToolResult
	var err error

	switch name {
	case "get_audit_summary":
		result, err = srv.getAuditSummary(ctx, req)
	case "list_findings":
		result, err = srv.listFindings(ctx, req)
	case "list_requirements":
		result, err = srv.listRequirements(ctx, req)
	case "get_chapter_grade":
		result, err = srv.getChapterGrade(ctx, req)
	case "update_requirement":
		result, err = srv.updateRequirement(ctx, req)
	case "regenerate_cap":
		result, err = srv.regenerateCAP(ctx, req)
	case "import_master":
		result, err = srv.importMaster(ctx, req)
	case "import_responses":
		result, err = srv.importResponses(ctx, req)
	case "get_import_contract":
		result, err = srv.getImportContract(ctx, req)
	case "attach_photo":
		result, err = srv.attachPhoto(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestNoProject(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "get_audit_summary", map[string]interface{}{})
	if !r.IsError {
		t.Fatal("expected error without a project")
	}
	if !strings.Contains(resultText(r), "no active audit project") {
		t.Errorf("error = %q", resultText(r))
	}
}

func TestImportAndSummary(t *testing.T) {
	srv, _ := seededServer(t)

	r := callTool(t, srv, "import_responses", map[string]interface{}{"csv": testutil.ResponsesCSV})
	if text := resultText(r); text != "merged: 4 response rows" {
		t.Errorf("import result = %q", text)
	}

	r = callTool(t, srv, "get_audit_summary", map[string]interface{}{})
	if r.IsError {
		t.Fatalf("summary error: %s", resultText(r))
	}
	var sum projectservice.Summary
	if err := json.Unmarshal([]byte(resultText(r)), &sum); err != nil {
		t.Fatal(err)
	}
	if sum.Audit.Grade != "D" {
		t.Errorf("grade = %q, want D", sum.Audit.Grade)
	}
	if sum.Audit.Stats.NOK != 1 {
		t.Errorf("nok = %d, want 1", sum.Audit.Stats.NOK)
	}
}

func TestImportMasterInvalid(t *testing.T) {
	srv, _ := seededServer(t)
	r := callTool(t, srv, "import_master", map[string]interface{}{"content": "{not json"})
	if !r.IsError {
		t.Error("expected error for malformed master")
	}
}

func TestListRequirementsFilters(t *testing.T) {
	srv, _ := seededServer(t)
	_ = callTool(t, srv, "import_responses", map[string]interface{}{"csv": testutil.ResponsesCSV})

	r := callTool(t, srv, "list_requirements", map[string]interface{}{"chapter": "3"})
	var reqs []models.Requirement
	if err := json.Unmarshal([]byte(resultText(r)), &reqs); err != nil {
		t.Fatal(err)
	}
	if len(reqs) != 2 {
		t.Errorf("chapter 3 requirements = %d, want 2", len(reqs))
	}

	r = callTool(t, srv, "list_requirements", map[string]interface{}{"complies": models.ComplianceNOK})
	reqs = nil
	if err := json.Unmarshal([]byte(resultText(r)), &reqs); err != nil {
		t.Fatal(err)
	}
	if len(reqs) != 1 || reqs[0].ID != wagesID {
		t.Errorf("NOK requirements = %+v", reqs)
	}
}

func TestUpdateRequirementAndFindings(t *testing.T) {
	srv, _ := seededServer(t)

	r := callTool(t, srv, "update_requirement", map[string]interface{}{
		"id":       wagesID,
		"complies": models.ComplianceNOK,
		"comments": "Late by two weeks",
	})
	if r.IsError {
		t.Fatalf("update error: %s", resultText(r))
	}

	r = callTool(t, srv, "regenerate_cap", map[string]interface{}{})
	if r.IsError {
		t.Fatalf("regenerate error: %s", resultText(r))
	}

	r = callTool(t, srv, "list_findings", map[string]interface{}{})
	var items []models.CapItem
	if err := json.Unmarshal([]byte(resultText(r)), &items); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, it := range items {
		if it.RequirementID == wagesID {
			found = true
			if it.Status != models.CapStatusOpen {
				t.Errorf("status = %q, want Open", it.Status)
			}
		}
	}
	if !found {
		t.Errorf("no CAP item for %s in %+v", wagesID, items)
	}

	r = callTool(t, srv, "list_findings", map[string]interface{}{"status": models.CapStatusClosed})
	if text := resultText(r); text != "[]" {
		t.Errorf("closed findings = %q, want []", text)
	}
}

func TestUpdateRequirementMissing(t *testing.T) {
	srv, _ := seededServer(t)
	r := callTool(t, srv, "update_requirement", map[string]interface{}{"id": "9.9::nope"})
	if !r.IsError {
		t.Error("expected error for missing requirement")
	}
}

func TestChapterGrade(t *testing.T) {
	srv, _ := seededServer(t)
	r := callTool(t, srv, "get_chapter_grade", map[string]interface{}{})
	if !r.IsError {
		t.Error("expected error without chapter")
	}
	r = callTool(t, srv, "get_chapter_grade", map[string]interface{}{"chapter": "2"})
	if r.IsError {
		t.Fatalf("chapter grade error: %s", resultText(r))
	}
	if !strings.Contains(resultText(r), "FORCED LABOUR") {
		t.Errorf("chapter grade = %q", resultText(r))
	}
}

func TestImportContract(t *testing.T) {
	srv, _ := testServer(t)
	r := callTool(t, srv, "get_import_contract", map[string]interface{}{})
	if resultText(r) != ImportFormatContract {
		t.Error("contract text mismatch")
	}

	contents, err := srv.readContractResource(context.Background(), mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if len(contents) != 1 {
		t.Fatalf("resource contents = %d, want 1", len(contents))
	}
}

func TestAttachPhotoDataURI(t *testing.T) {
	srv, svc := seededServer(t)
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngHeader)

	r := callTool(t, srv, "attach_photo", map[string]interface{}{
		"requirement_id": wagesID,
		"url":            uri,
		"caption":        "payslips",
	})
	if r.IsError {
		t.Fatalf("attach error: %s", resultText(r))
	}
	var res attachResult
	if err := json.Unmarshal([]byte(resultText(r)), &res); err != nil {
		t.Fatal(err)
	}
	if res.MimeType != "image/png" || !strings.HasSuffix(res.FileName, ".png") {
		t.Errorf("result = %+v", res)
	}

	view, err := svc.Get(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n := len(view.Project.PhotosFor(wagesID)); n != 1 {
		t.Errorf("photos = %d, want 1", n)
	}
}

func TestAttachPhotoRejectsMismatch(t *testing.T) {
	srv, _ := seededServer(t)
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("plain text"))
	r := callTool(t, srv, "attach_photo", map[string]interface{}{
		"requirement_id": wagesID,
		"url":            uri,
	})
	if !r.IsError {
		t.Error("expected error for non-image content")
	}
}

func TestAttachPhotoBlocksLoopback(t *testing.T) {
	srv, _ := seededServer(t)
	r := callTool(t, srv, "attach_photo", map[string]interface{}{
		"requirement_id": wagesID,
		"url":            "http://127.0.0.1/photo.png",
	})
	if !r.IsError || !strings.Contains(resultText(r), "blocked host") {
		t.Errorf("result = %q, want blocked host", resultText(r))
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"../../etc/passwd.png": "passwd.png",
		"my photo (1).jpg":     "my_photo__1_.jpg",
	}
	for in, want := range tests {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
