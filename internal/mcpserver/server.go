// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes audit tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/hrpaudit/internal/apperr"
	"github.com/starford/hrpaudit/internal/models"
	"github.com/starford/hrpaudit/internal/projectservice"
)

const contractURI = "hrpaudit://import-format"

// Server wraps the MCP server with audit tools.
type Server struct {
	mcp *server.MCPServer
	svc *projectservice.Service
}

// New creates a new MCP server with all audit tools registered.
func New(svc *projectservice.Service, version string) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"HRP Audit",
		version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("get_audit_summary",
		mcp.WithDescription("Global grade, verdict tallies, per-tier and per-chapter results, "+
			"document availability and CAP counts of the active audit."),
	), s.getAuditSummary)

	s.mcp.AddTool(mcp.NewTool("list_findings",
		mcp.WithDescription("List corrective action plan (CAP) items derived from non-compliant findings."),
		mcp.WithString("status", mcp.Description("Optional status filter"),
			mcp.Enum(models.CapStatusOpen, models.CapStatusInProgress, models.CapStatusClosed)),
	), s.listFindings)

	s.mcp.AddTool(mcp.NewTool("list_requirements",
		mcp.WithDescription("List checklist requirements with their answers and verdicts."),
		mcp.WithString("chapter", mcp.Description("Optional top-level chapter number (e.g. 3)")),
		mcp.WithString("complies", mcp.Description("Optional verdict filter"),
			mcp.Enum(models.ComplianceValues...)),
	), s.listRequirements)

	s.mcp.AddTool(mcp.NewTool("get_chapter_grade",
		mcp.WithDescription("Grade and verdict tally of one top-level chapter."),
		mcp.WithString("chapter", mcp.Required(), mcp.Description("Top-level chapter number (e.g. 3)")),
	), s.getChapterGrade)

	s.mcp.AddTool(mcp.NewTool("update_requirement",
		mcp.WithDescription("Record an answer, verdict or comment for one requirement. "+
			"Omitted fields are left unchanged."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Requirement id, e.g. 3.2::Fireexitsareunobs")),
		mcp.WithString("answer", mcp.Description("Auditor answer")),
		mcp.WithString("complies", mcp.Description("Verdict"), mcp.Enum(models.ComplianceValues...)),
		mcp.WithString("comments", mcp.Description("Auditor comments")),
	), s.updateRequirement)

	s.mcp.AddTool(mcp.NewTool("regenerate_cap",
		mcp.WithDescription("Rebuild the corrective action plan from the current verdicts. "+
			"Manual edits of findings that are still open are kept."),
	), s.regenerateCAP)

	s.mcp.AddTool(mcp.NewTool("import_master",
		mcp.WithDescription("Replace the requirement list with a master checklist in JSON or YAML. "+
			"Read the contract first via get_import_contract."),
		mcp.WithString("content", mcp.Required(), mcp.Description("Master checklist document")),
	), s.importMaster)

	s.mcp.AddTool(mcp.NewTool("import_responses",
		mcp.WithDescription("Merge a comma-separated response sheet into the requirement list. "+
			"Read the contract first via get_import_contract."),
		mcp.WithString("csv", mcp.Required(), mcp.Description("CSV text with a header row")),
	), s.importResponses)

	s.mcp.AddTool(mcp.NewTool("get_import_contract",
		mcp.WithDescription("Returns the master checklist and response sheet formats. "+
			"Call this before importing."),
	), s.getImportContract)

	s.mcp.AddTool(mcp.NewTool("attach_photo",
		mcp.WithDescription("Attach a photo to a requirement from a data URI or an http(s) URL."),
		mcp.WithString("requirement_id", mcp.Required(), mcp.Description("Requirement id")),
		mcp.WithString("url", mcp.Required(), mcp.Description("data:image/...;base64,... URI or http(s) URL")),
		mcp.WithString("caption", mcp.Description("Photo caption")),
		mcp.WithString("filename", mcp.Description("Optional file name")),
	), s.attachPhoto)

	// Resource: import format contract.
	s.mcp.AddResource(
		mcp.NewResource(contractURI, "Import Format Contract",
			mcp.WithResourceDescription("Master checklist and response sheet formats accepted by the importer."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readContractResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// toolError turns a service error into a tool error result.
func toolError(err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, apperr.ErrNoProject):
		return mcp.NewToolResultError("no active audit project: create one first")
	case errors.Is(err, apperr.ErrNotFound):
		return mcp.NewToolResultError("not found")
	default:
		return mcp.NewToolResultError(err.Error())
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getAuditSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sum, err := s.svc.Summary(ctx)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(sum)
}

func (s *Server) listFindings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, _, err := s.svc.CapItems(ctx)
	if err != nil {
		return toolError(err), nil
	}
	status := req.GetString("status", "")
	filtered := []models.CapItem{}
	for _, it := range items {
		if status == "" || it.Status == status {
			filtered = append(filtered, it)
		}
	}
	return jsonResult(filtered)
}

func (s *Server) listRequirements(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reqs, _, err := s.svc.Requirements(ctx, req.GetString("chapter", ""))
	if err != nil {
		return toolError(err), nil
	}
	complies := req.GetString("complies", "")
	filtered := []models.Requirement{}
	for _, r := range reqs {
		if complies == "" || r.Complies == complies {
			filtered = append(filtered, r)
		}
	}
	return jsonResult(filtered)
}

func (s *Server) getChapterGrade(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chapter, err := req.RequireString("chapter")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	grade, err := s.svc.ChapterGrade(ctx, chapter)
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(grade)
}

func (s *Server) updateRequirement(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var patch projectservice.RequirementPatch
	args := req.GetArguments()
	for key, dst := range map[string]**string{
		"answer":   &patch.Answer,
		"complies": &patch.Complies,
		"comments": &patch.Comments,
	} {
		if v, ok := args[key].(string); ok {
			*dst = &v
		}
	}
	r, err := s.svc.UpdateRequirement(ctx, id, patch, "")
	if err != nil {
		return toolError(err), nil
	}
	return jsonResult(r)
}

func (s *Server) regenerateCAP(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	items, err := s.svc.RegenerateCAP(ctx, "")
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("regenerated: %d CAP items", len(items))), nil
}

func (s *Server) importMaster(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := s.svc.ImportMaster(ctx, []byte(content), "mcp:import_master", "")
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("imported: %d requirements", res.Records)), nil
}

func (s *Server) importResponses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	csv, err := req.RequireString("csv")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	res, err := s.svc.ImportResponses(ctx, []byte(csv), "mcp:import_responses", "")
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("merged: %d response rows", res.Records)), nil
}

func (s *Server) getImportContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(ImportFormatContract), nil
}

func (s *Server) readContractResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      contractURI,
			MIMEType: "text/markdown",
			Text:     ImportFormatContract,
		},
	}, nil
}
