package engine

import (
	"context"
	"math"

	"focusboard/internal/storage"
)

// QuizStat summarizes the results of one quiz kind. Avg and Best are rounded
// percentages.
type QuizStat struct {
	Avg   int
	Best  int
	Count int
}

func summarize(results []storage.QuizResult) QuizStat {
	if len(results) == 0 {
		return QuizStat{}
	}
	sum, best := 0.0, 0.0
	for _, r := range results {
		pct := r.Percent()
		sum += pct
		best = math.Max(best, pct)
	}
	return QuizStat{
		Avg:   int(math.Round(sum / float64(len(results)))),
		Best:  int(math.Round(best)),
		Count: len(results),
	}
}

func (s *Service) QuizStats(ctx context.Context, kind QuizKind) (QuizStat, error) {
	results, err := s.quizzes.ListByType(ctx, string(kind))
	if err != nil {
		return QuizStat{}, err
	}
	return summarize(results), nil
}

// RecentQuizWindow is how many results the overview's recent averages cover.
const RecentQuizWindow = 5

// RecentQuizAverage averages the last n results of kind.
func (s *Service) RecentQuizAverage(ctx context.Context, kind QuizKind, n int) (QuizStat, error) {
	results, err := s.quizzes.ListByType(ctx, string(kind))
	if err != nil {
		return QuizStat{}, err
	}
	if n > 0 && len(results) > n {
		results = results[len(results)-n:]
	}
	return summarize(results), nil
}

// Overview is the dashboard summary shown by `focus stats` and the board.
type Overview struct {
	Profile           *storage.Profile
	Progress          Progress
	Streak            int
	Code              QuizStat
	Inspiration       QuizStat
	CodeRecent        QuizStat // last RecentQuizWindow code results
	InspirationRecent QuizStat
	ViewedCount       int
	AIUsageToday      int
	AIUsageWeek       []DayCount
	PinnedNotes       int
	BadgesEarned      int
	BadgesTotal       int
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	p, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	ov := &Overview{Profile: p, Progress: XPForNextLevel(p.XP), BadgesTotal: len(BadgeCatalog)}
	for _, b := range BadgeCatalog {
		if p.HasBadge(b.ID) {
			ov.BadgesEarned++
		}
	}
	if ov.Streak, err = s.ComputeStreak(ctx); err != nil {
		return nil, err
	}
	if ov.Code, err = s.QuizStats(ctx, QuizCode); err != nil {
		return nil, err
	}
	if ov.Inspiration, err = s.QuizStats(ctx, QuizInspiration); err != nil {
		return nil, err
	}
	if ov.CodeRecent, err = s.RecentQuizAverage(ctx, QuizCode, RecentQuizWindow); err != nil {
		return nil, err
	}
	if ov.InspirationRecent, err = s.RecentQuizAverage(ctx, QuizInspiration, RecentQuizWindow); err != nil {
		return nil, err
	}
	viewed, err := s.inspirations.Viewed(ctx)
	if err != nil {
		return nil, err
	}
	ov.ViewedCount = len(viewed)
	if ov.AIUsageToday, err = s.TodayAIUsageCount(ctx); err != nil {
		return nil, err
	}
	if ov.AIUsageWeek, err = s.Last7DaysAIUsage(ctx); err != nil {
		return nil, err
	}
	pinned, err := s.PinnedNotes(ctx)
	if err != nil {
		return nil, err
	}
	ov.PinnedNotes = len(pinned)
	return ov, nil
}
