package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"focusboard/internal/content"
	"focusboard/internal/storage"
)

type InspirationResult struct {
	Key         string
	Inspiration storage.Inspiration
	// Generated is false when today's record already existed.
	Generated bool
	XPGained  int
	NewBadges []string
}

// GetTodayOrGenerate returns the canonical record for today, generating and
// storing it on first call. A failed generation stores nothing.
func (s *Service) GetTodayOrGenerate(ctx context.Context) (*InspirationResult, error) {
	today := s.Today()
	existing, err := s.inspirations.Get(ctx, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &InspirationResult{Key: today, Inspiration: *existing}, nil
	}
	return s.generateInspiration(ctx, func(id string) string { return today })
}

// Regenerate always generates a new record and stores it under a
// date-<id> key, leaving today's canonical record untouched.
func (s *Service) Regenerate(ctx context.Context) (*InspirationResult, error) {
	today := s.Today()
	return s.generateInspiration(ctx, func(id string) string { return today + "-" + id })
}

func (s *Service) generateInspiration(ctx context.Context, keyFor func(id string) string) (*InspirationResult, error) {
	c, err := s.gen.Inspiration(ctx)
	if err != nil {
		s.log.Warn("inspiration generation failed", zap.Error(err))
		return nil, GenerationError{Op: "inspiration", Err: err}
	}
	if !c.Valid() {
		s.log.Warn("inspiration generation returned an empty bundle")
		return nil, GenerationError{Op: "inspiration", Err: content.ErrEmptyInspiration}
	}

	id := uuid.NewString()
	key := keyFor(id)
	insp := storage.Inspiration{ID: id, Date: key, InspirationContent: c}
	if err := s.inspirations.Save(ctx, key, insp); err != nil {
		return nil, fmt.Errorf("save inspiration: %w", err)
	}
	if _, err := s.AddXP(ctx, XPInspirationView); err != nil {
		return nil, err
	}
	badges, err := s.CheckAndAwardBadges(ctx)
	if err != nil {
		return nil, err
	}
	return &InspirationResult{
		Key:         key,
		Inspiration: insp,
		Generated:   true,
		XPGained:    XPInspirationView,
		NewBadges:   badges,
	}, nil
}

// Viewed returns every inspiration ever saved, deduplicated by id.
func (s *Service) Viewed(ctx context.Context) ([]storage.Inspiration, error) {
	return s.inspirations.Viewed(ctx)
}

type HistoryEntry struct {
	Key         string
	Inspiration storage.Inspiration
}

// History lists every stored record, canonical and regenerated, by key.
func (s *Service) History(ctx context.Context) ([]HistoryEntry, error) {
	all, err := s.inspirations.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryEntry, 0, len(all))
	for k, insp := range all {
		out = append(out, HistoryEntry{Key: k, Inspiration: insp})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}
