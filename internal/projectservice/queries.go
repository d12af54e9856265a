package projectservice

import (
	"context"

	"github.com/starford/hrpaudit/internal/audit"
	"github.com/starford/hrpaudit/internal/models"
)

// Requirements returns the requirement list, optionally restricted to one
// top-level chapter.
func (s *Service) Requirements(ctx context.Context, chapter string) ([]models.Requirement, string, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, "", err
	}
	reqs := snap.Project.Requirements
	if chapter != "" {
		reqs = audit.FilterByChapter(reqs, chapter)
		if reqs == nil {
			reqs = []models.Requirement{}
		}
	}
	return reqs, snap.Checksum, nil
}

// CapItems returns the current CAP.
func (s *Service) CapItems(ctx context.Context) ([]models.CapItem, string, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, "", err
	}
	return snap.Project.CapItems, snap.Checksum, nil
}

// Documents returns the document checklist filtered by category and a search
// term. Empty filters match everything.
func (s *Service) Documents(ctx context.Context, category, term string) ([]models.DocumentItem, string, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, "", err
	}
	docs := audit.FilterDocuments(snap.Project.Documents, category, term)
	if docs == nil {
		docs = []models.DocumentItem{}
	}
	return docs, snap.Checksum, nil
}

// Categories returns the document categories in checklist order.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return audit.DocumentCategories(snap.Project.Documents), nil
}

// ChapterGrade computes the grade of one top-level chapter.
func (s *Service) ChapterGrade(ctx context.Context, chapter string) (*audit.ChapterSummary, error) {
	snap, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	reqs := audit.FilterByChapter(snap.Project.Requirements, chapter)
	return &audit.ChapterSummary{
		Key:   chapter,
		Title: audit.ChapterTitle(chapter),
		Grade: audit.Grade(snap.Project.Requirements, chapter+"."),
		Stats: audit.ComputeStats(reqs),
	}, nil
}
