package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"focusboard/internal/content"
	"focusboard/internal/storage"
)

// GoodUsageScore is the lowest score that earns xp instead of costing it.
const GoodUsageScore = 3

type JournalResult struct {
	Entry     storage.AIUsage
	XPDelta   int
	Profile   *storage.Profile
	NewBadges []string
}

// Submit scores one AI usage and records it ahead of older entries.
func (s *Service) Submit(ctx context.Context, category, question, reason string) (*JournalResult, error) {
	question = strings.TrimSpace(question)
	reason = strings.TrimSpace(reason)
	cat, err := ParseCategory(category)
	if err != nil {
		return nil, err
	}
	if question == "" {
		return nil, ValidationError{Field: "question"}
	}
	if reason == "" {
		return nil, ValidationError{Field: "reason"}
	}

	a, err := s.gen.Analyse(ctx, cat, question, reason)
	if err != nil {
		s.log.Warn("usage analysis failed", zap.Error(err))
		return nil, GenerationError{Op: "analysis", Err: err}
	}
	if !a.Valid() {
		s.log.Warn("usage analysis returned no text")
		return nil, GenerationError{Op: "analysis", Err: content.ErrEmptyAnalysis}
	}
	score := min(max(a.Score, 0), 5)

	entry := storage.AIUsage{
		ID:         uuid.NewString(),
		Category:   cat,
		Question:   question,
		Reason:     reason,
		Score:      score,
		Analysis:   a.Analysis,
		Suggestion: a.Suggestion,
		Timestamp:  s.now().UTC(),
	}
	if err := s.journal.Prepend(ctx, entry); err != nil {
		return nil, fmt.Errorf("save usage: %w", err)
	}

	res := &JournalResult{Entry: entry, XPDelta: XPAIUsageBad}
	if score >= GoodUsageScore {
		res.XPDelta = XPAIUsageGood
	}
	if res.Profile, err = s.AddXP(ctx, res.XPDelta); err != nil {
		return nil, err
	}
	if res.NewBadges, err = s.CheckAndAwardBadges(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

// Journal returns entries newest first.
func (s *Service) Journal(ctx context.Context) ([]storage.AIUsage, error) {
	return s.journal.ListAll(ctx)
}

func (s *Service) TodayAIUsageCount(ctx context.Context) (int, error) {
	week, err := s.usagePerDay(ctx, 1)
	if err != nil {
		return 0, err
	}
	return week[0].Count, nil
}

type DayCount struct {
	Date  string
	Count int
}

// Last7DaysAIUsage returns per-day entry counts, oldest day first, ending today.
func (s *Service) Last7DaysAIUsage(ctx context.Context) ([]DayCount, error) {
	return s.usagePerDay(ctx, 7)
}

func (s *Service) usagePerDay(ctx context.Context, days int) ([]DayCount, error) {
	entries, err := s.journal.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		counts[DateKey(e.Timestamp)]++
	}

	today := s.now().UTC()
	out := make([]DayCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := DateKey(today.Add(-time.Duration(i) * 24 * time.Hour))
		out = append(out, DayCount{Date: d, Count: counts[d]})
	}
	return out, nil
}
