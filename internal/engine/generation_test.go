package engine

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"focusboard/internal/content"
	"focusboard/internal/proxy"
)

type cannedCompletion string

func (c cannedCompletion) Complete(ctx context.Context, system, user string) (string, error) {
	return string(c), nil
}

func assertNothingRecorded(t *testing.T, svc *Service) {
	t.Helper()
	ctx := context.Background()

	hist, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(hist) != 0 {
		t.Fatalf("history=%d, want 0", len(hist))
	}
	viewed, err := svc.Viewed(ctx)
	if err != nil {
		t.Fatalf("Viewed: %v", err)
	}
	if len(viewed) != 0 {
		t.Fatalf("viewed=%d, want 0", len(viewed))
	}
	entries, err := svc.Journal(ctx)
	if err != nil {
		t.Fatalf("Journal: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("journal=%d, want 0", len(entries))
	}
	p, err := svc.Profile(ctx)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if p.XP != 0 {
		t.Fatalf("xp=%d, want 0", p.XP)
	}
}

func TestEmptyGeneratorPayloadsAreRejected(t *testing.T) {
	gen := &fakeGen{analysis: content.Analysis{Score: 0}}
	svc, cleanup := newTestService(t, gen)
	defer cleanup()
	ctx := context.Background()

	_, err := svc.GetTodayOrGenerate(ctx)
	var ge GenerationError
	if !errors.As(err, &ge) || !errors.Is(err, content.ErrEmptyInspiration) {
		t.Fatalf("GetTodayOrGenerate err=%v, want GenerationError wrapping ErrEmptyInspiration", err)
	}
	if _, err := svc.Regenerate(ctx); !errors.Is(err, content.ErrEmptyInspiration) {
		t.Fatalf("Regenerate err=%v, want ErrEmptyInspiration", err)
	}

	_, err = svc.Submit(ctx, "Autre", "q", "r")
	if !errors.As(err, &ge) || !errors.Is(err, content.ErrEmptyAnalysis) {
		t.Fatalf("Submit err=%v, want GenerationError wrapping ErrEmptyAnalysis", err)
	}

	assertNothingRecorded(t, svc)

	// A later good bundle still lands in today's slot.
	gen.insp = content.MockInspiration(0)
	res, err := svc.GetTodayOrGenerate(ctx)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !res.Generated || res.Key != svc.Today() {
		t.Fatalf("retry=%+v", res)
	}
}

func TestEmptyCompletionThroughProxy(t *testing.T) {
	for name, completion := range map[string]string{
		"blank":        "",
		"empty object": "{}",
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(proxy.NewHandler(cannedCompletion(completion), "", 0, nil))
			defer srv.Close()

			svc, cleanup := newTestService(t, content.NewClient(srv.URL, 5*time.Second, nil))
			defer cleanup()
			ctx := context.Background()

			var ge GenerationError
			if _, err := svc.GetTodayOrGenerate(ctx); !errors.As(err, &ge) {
				t.Fatalf("GetTodayOrGenerate err=%v, want GenerationError", err)
			}
			if _, err := svc.Submit(ctx, "Autre", "q", "r"); !errors.As(err, &ge) {
				t.Fatalf("Submit err=%v, want GenerationError", err)
			}
			assertNothingRecorded(t, svc)
		})
	}
}
