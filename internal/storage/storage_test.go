package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *SQLiteKV {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteKV(db, "test")
}

func TestKVRoundTripAndNamespaces(t *testing.T) {
	ctx := context.Background()
	for name, kv := range map[string]KV{
		"sqlite": openTestDB(t),
		"memory": NewMemoryKV("test"),
	} {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
				t.Fatalf("Get(missing) ok=%v err=%v, want absent", ok, err)
			}
			if err := kv.Put(ctx, "a", []byte(`{"x":1}`)); err != nil {
				t.Fatalf("Put: %v", err)
			}
			got, ok, err := kv.Get(ctx, "a")
			if err != nil || !ok {
				t.Fatalf("Get(a) ok=%v err=%v", ok, err)
			}
			if string(got) != `{"x":1}` {
				t.Fatalf("Get(a)=%s", got)
			}

			err = kv.Update(ctx, "a", func(cur []byte, ok bool) ([]byte, error) {
				if !ok || string(cur) != `{"x":1}` {
					t.Fatalf("Update saw cur=%s ok=%v", cur, ok)
				}
				return []byte(`{"x":2}`), nil
			})
			if err != nil {
				t.Fatalf("Update: %v", err)
			}
			got, _, _ = kv.Get(ctx, "a")
			if string(got) != `{"x":2}` {
				t.Fatalf("after Update Get(a)=%s", got)
			}
		})
	}
}

func TestSQLiteKVNamespaceIsolation(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "ns.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	a := NewSQLiteKV(db, "alpha")
	b := NewSQLiteKV(db, "beta")
	if err := a.Put(ctx, KeyProfile, []byte(`{}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, ok, _ := b.Get(ctx, KeyProfile); ok {
		t.Fatalf("namespace beta sees alpha's profile")
	}
	if err := b.Put(ctx, KeyProfile, []byte(`{"pseudo":"b"}`)); err != nil {
		t.Fatalf("put beta: %v", err)
	}
	got, ok, err := a.Get(ctx, KeyProfile)
	if err != nil || !ok || string(got) != `{}` {
		t.Fatalf("alpha profile=%s ok=%v err=%v, want {}", got, ok, err)
	}
}

func TestProfileDefaultsOnFirstAccess(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	repo := NewProfileRepo(NewMemoryKV(""), func() time.Time { return fixed })

	p, err := repo.Get(ctx)
	if err != nil || p != nil {
		t.Fatalf("Get before create = %v, %v; want nil, nil", p, err)
	}
	p, err = repo.GetOrCreate(ctx)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if p.Pseudo != DefaultPseudo || p.XP != 0 || p.Level != 1 || !p.HasBadge(BeginnerBadge) {
		t.Fatalf("default profile=%+v", p)
	}
	if !p.CreatedAt.Equal(fixed) {
		t.Fatalf("createdAt=%v, want %v", p.CreatedAt, fixed)
	}
}

func TestInspirationSaveMarksViewedOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewInspirationRepo(openTestDB(t))

	insp := Inspiration{ID: "one", Date: "2026-03-01"}
	if err := repo.Save(ctx, "2026-03-01", insp); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, "2026-03-01-one", insp); err != nil {
		t.Fatalf("save again: %v", err)
	}
	viewed, err := repo.Viewed(ctx)
	if err != nil {
		t.Fatalf("viewed: %v", err)
	}
	if len(viewed) != 1 {
		t.Fatalf("viewed len=%d, want 1", len(viewed))
	}
	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("stored=%d, want 2 entries", len(all))
	}
}

func TestRoutineRepoKeepsDatesApart(t *testing.T) {
	ctx := context.Background()
	repo := NewRoutineRepo(openTestDB(t))

	day1 := []RoutineTask{{ID: "fixed-0", Title: "Réveil", Time: "07:30", Type: "fixed", Date: "2026-03-01"}}
	day2 := []RoutineTask{{ID: "fixed-0", Title: "Réveil", Time: "07:30", Type: "fixed", Date: "2026-03-02", Completed: true}}
	if err := repo.Save(ctx, "2026-03-01", day1); err != nil {
		t.Fatalf("save day1: %v", err)
	}
	if err := repo.Save(ctx, "2026-03-02", day2); err != nil {
		t.Fatalf("save day2: %v", err)
	}
	got, err := repo.Get(ctx, "2026-03-01")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 || got[0].Completed {
		t.Fatalf("day1=%+v", got)
	}
	missing, err := repo.Get(ctx, "2026-01-01")
	if err != nil || len(missing) != 0 {
		t.Fatalf("missing day=%v err=%v", missing, err)
	}
}

func TestResolveDBPathOrder(t *testing.T) {
	got, err := ResolveDBPath("/flag.db", "/config.db")
	if err != nil || got != "/flag.db" {
		t.Fatalf("ResolveDBPath(flag, config)=%q, %v; want /flag.db", got, err)
	}
	got, err = ResolveDBPath("  ", "/config.db")
	if err != nil || got != "/config.db" {
		t.Fatalf("ResolveDBPath(blank, config)=%q, %v; want /config.db", got, err)
	}

	t.Setenv("HOME", t.TempDir())
	want, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	got, err = ResolveDBPath("", "")
	if err != nil || got != want {
		t.Fatalf("ResolveDBPath()=%q, %v; want %q", got, err, want)
	}
}
