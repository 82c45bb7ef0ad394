package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"focusboard/internal/content"
	"focusboard/internal/storage"
)

func addQuizResult(t *testing.T, svc *Service, kind QuizKind, score, total int) {
	t.Helper()
	res := storage.QuizResult{
		ID:    fmt.Sprintf("%s-%d-%d", kind, score, total),
		Type:  string(kind),
		Score: score,
		Total: total,
		Date:  testNow,
	}
	if err := svc.QuizResultRepo().Append(context.Background(), res); err != nil {
		t.Fatalf("append quiz result: %v", err)
	}
}

func awardBadges(t *testing.T, svc *Service) []string {
	t.Helper()
	got, err := svc.CheckAndAwardBadges(context.Background())
	if err != nil {
		t.Fatalf("CheckAndAwardBadges: %v", err)
	}
	return got
}

func TestNoLifeNeedsSevenDays(t *testing.T) {
	svc, cleanup := newTestService(t, nil)
	defer cleanup()

	for i := 0; i < 6; i++ {
		completeDay(t, svc, i, true)
	}
	if diff := cmp.Diff([]string{BadgeMorning}, awardBadges(t, svc)); diff != "" {
		t.Fatalf("six days (-want +got):\n%s", diff)
	}

	completeDay(t, svc, 6, true)
	if diff := cmp.Diff([]string{BadgeNoLife}, awardBadges(t, svc)); diff != "" {
		t.Fatalf("seven days (-want +got):\n%s", diff)
	}
}

func TestQuizBadgesNeedMoreThanNinety(t *testing.T) {
	svc, cleanup := newTestService(t, nil)
	defer cleanup()

	addQuizResult(t, svc, QuizCode, 18, 20)
	addQuizResult(t, svc, QuizInspiration, 9, 10)
	if got := awardBadges(t, svc); len(got) != 0 {
		t.Fatalf("exactly 90%% awarded %v", got)
	}

	addQuizResult(t, svc, QuizCode, 19, 20)
	if diff := cmp.Diff([]string{BadgeDriver}, awardBadges(t, svc)); diff != "" {
		t.Fatalf("code 95%% (-want +got):\n%s", diff)
	}

	addQuizResult(t, svc, QuizInspiration, 10, 10)
	if diff := cmp.Diff([]string{BadgeCulture}, awardBadges(t, svc)); diff != "" {
		t.Fatalf("inspiration 100%% (-want +got):\n%s", diff)
	}
}

func TestExplorerCountsDistinctViewed(t *testing.T) {
	svc, cleanup := newTestService(t, nil)
	defer cleanup()
	ctx := context.Background()
	repo := svc.InspirationRepo()

	for i := 0; i < 9; i++ {
		insp := storage.Inspiration{ID: fmt.Sprintf("insp-%d", i), InspirationContent: content.MockInspiration(i)}
		if err := repo.Save(ctx, fmt.Sprintf("2026-03-%02d", i+1), insp); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	// Same id under a regenerated key does not count twice.
	dup := storage.Inspiration{ID: "insp-0", InspirationContent: content.MockInspiration(0)}
	if err := repo.Save(ctx, "2026-03-01-insp-0", dup); err != nil {
		t.Fatalf("save duplicate: %v", err)
	}
	if got := awardBadges(t, svc); len(got) != 0 {
		t.Fatalf("9 distinct viewed awarded %v", got)
	}

	tenth := storage.Inspiration{ID: "insp-9", InspirationContent: content.MockInspiration(9)}
	if err := repo.Save(ctx, "2026-03-10", tenth); err != nil {
		t.Fatalf("save tenth: %v", err)
	}
	if diff := cmp.Diff([]string{BadgeExplorer}, awardBadges(t, svc)); diff != "" {
		t.Fatalf("10 viewed (-want +got):\n%s", diff)
	}
}

func TestInspirationQuizHalvesXP(t *testing.T) {
	gen := &fakeGen{inspiQuiz: codeQuestions(4)}
	svc, cleanup := newTestService(t, gen)
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.InspirationRepo().MarkViewed(ctx, storage.Inspiration{ID: "seen", InspirationContent: content.MockInspiration(0)}); err != nil {
		t.Fatalf("MarkViewed: %v", err)
	}

	q := svc.NewQuizSession()
	if err := q.Start(ctx, QuizInspiration); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if q.Offline() {
		t.Fatalf("generator succeeded, session should not be offline")
	}

	var out *QuizOutcome
	for i := 0; i < 4; i++ {
		pick := 0
		if i == 3 {
			pick = 1
		}
		if _, err := q.SelectAnswer(pick); err != nil {
			t.Fatalf("SelectAnswer #%d: %v", i, err)
		}
		var err error
		if out, err = q.Advance(ctx); err != nil {
			t.Fatalf("Advance #%d: %v", i, err)
		}
	}
	if out == nil {
		t.Fatalf("quiz did not finish")
	}
	// 75% * 0.5 = 37.5, rounded half away from zero.
	if out.Percent != 75 || out.XPGained != 38 || out.Profile.XP != 38 {
		t.Fatalf("percent=%d xp gained=%d profile xp=%d, want 75 38 38", out.Percent, out.XPGained, out.Profile.XP)
	}
	if out.Result.Type != string(QuizInspiration) {
		t.Fatalf("result type=%q", out.Result.Type)
	}
}

func TestOverviewRecentAverages(t *testing.T) {
	svc, cleanup := newTestService(t, nil)
	defer cleanup()

	addQuizResult(t, svc, QuizCode, 0, 10)
	for i := 0; i < RecentQuizWindow; i++ {
		addQuizResult(t, svc, QuizCode, 8, 10)
	}

	ov, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if ov.Code.Count != RecentQuizWindow+1 || ov.Code.Avg != 67 {
		t.Fatalf("all-time code=%+v, want count %d avg 67", ov.Code, RecentQuizWindow+1)
	}
	if ov.CodeRecent.Count != RecentQuizWindow || ov.CodeRecent.Avg != 80 {
		t.Fatalf("recent code=%+v, want count %d avg 80", ov.CodeRecent, RecentQuizWindow)
	}
	if ov.InspirationRecent.Count != 0 {
		t.Fatalf("recent inspiration=%+v, want empty", ov.InspirationRecent)
	}
}
