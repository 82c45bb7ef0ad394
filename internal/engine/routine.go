package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"focusboard/internal/storage"
)

const (
	TaskFixed    = "fixed"
	TaskVariable = "variable"

	// StreakWindowDays bounds the backward walk of ComputeStreak.
	StreakWindowDays = 30
)

type fixedTask struct {
	title string
	time  string
}

// Ids follow this order (fixed-0 is Réveil, fixed-3 is Dîner).
var fixedTasks = []fixedTask{
	{"Réveil", "07:30"},
	{"Petit déjeuner", "07:45"},
	{"Déjeuner", "11:30"},
	{"Dîner", "19:00"},
	{"Session jeux", "14:00"},
	{"Session stream", "20:00"},
	{"Coucher", "23:30"},
}

var variablePool = []string{
	"Lecture - 30 min",
	"Rangement chambre",
	"Exercices physiques",
	"Révision code",
	"Session créativité",
	"Organisation agenda",
	"Recherche emploi",
	"Méditation",
	"Apprentissage langue",
	"Projet personnel",
}

var (
	variableSlots        = []string{"09:00", "10:30", "15:00", "17:00"}
	variableFallbackTime = "16:00"
)

// GenerateRoutine builds a fresh day: every fixed task plus 3 or 4 variable
// tasks sampled without replacement, sorted by time.
func GenerateRoutine(rng *rand.Rand, date string) []storage.RoutineTask {
	tasks := make([]storage.RoutineTask, 0, len(fixedTasks)+4)
	for i, f := range fixedTasks {
		tasks = append(tasks, storage.RoutineTask{
			ID:    fmt.Sprintf("fixed-%d", i),
			Title: f.title,
			Time:  f.time,
			Type:  TaskFixed,
			Date:  date,
		})
	}

	n := 3 + rng.Intn(2)
	for i, idx := range rng.Perm(len(variablePool))[:n] {
		t := variableFallbackTime
		if i < len(variableSlots) {
			t = variableSlots[i]
		}
		tasks = append(tasks, storage.RoutineTask{
			ID:    fmt.Sprintf("var-%d", i),
			Title: variablePool[idx],
			Time:  t,
			Type:  TaskVariable,
			Date:  date,
		})
	}

	// HH:MM is zero padded, so string order is time order.
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Time < tasks[j].Time })
	return tasks
}

// GetOrCreateDailyRoutine returns the tasks for date, generating and
// persisting a new set when none exists.
func (s *Service) GetOrCreateDailyRoutine(ctx context.Context, date string) ([]storage.RoutineTask, error) {
	existing, err := s.routines.Get(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	var out []storage.RoutineTask
	err = s.routines.Update(ctx, date, func(tasks []storage.RoutineTask) ([]storage.RoutineTask, error) {
		if len(tasks) == 0 {
			tasks = GenerateRoutine(s.rng, date)
			s.log.Debug("routine generated", zap.String("date", date), zap.Int("tasks", len(tasks)))
		}
		out = tasks
		return tasks, nil
	})
	if err != nil {
		return nil, fmt.Errorf("create routine %s: %w", date, err)
	}
	return out, nil
}

// RegenerateRoutine replaces the whole task set for date.
func (s *Service) RegenerateRoutine(ctx context.Context, date string) ([]storage.RoutineTask, error) {
	tasks := GenerateRoutine(s.rng, date)
	if err := s.routines.Save(ctx, date, tasks); err != nil {
		return nil, fmt.Errorf("regenerate routine %s: %w", date, err)
	}
	return tasks, nil
}

type ToggleResult struct {
	Task      storage.RoutineTask
	XPDelta   int
	Profile   *storage.Profile
	NewBadges []string
}

// ToggleTask flips the completion of one task, adjusts xp (+10 on completion,
// -5 on un-completion) and evaluates badges.
func (s *Service) ToggleTask(ctx context.Context, date, taskID string) (*ToggleResult, error) {
	var toggled *storage.RoutineTask
	err := s.routines.Update(ctx, date, func(tasks []storage.RoutineTask) ([]storage.RoutineTask, error) {
		for i := range tasks {
			if tasks[i].ID == taskID {
				tasks[i].Completed = !tasks[i].Completed
				t := tasks[i]
				toggled = &t
				return tasks, nil
			}
		}
		return nil, NotFoundError{Kind: "task", ID: taskID}
	})
	if err != nil {
		return nil, err
	}

	res := &ToggleResult{Task: *toggled, XPDelta: XPRoutineMissed}
	if toggled.Completed {
		res.XPDelta = XPRoutineComplete
	}
	if res.Profile, err = s.AddXP(ctx, res.XPDelta); err != nil {
		return nil, err
	}
	if res.NewBadges, err = s.CheckAndAwardBadges(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

func dayComplete(tasks []storage.RoutineTask) bool {
	if len(tasks) == 0 {
		return false
	}
	for _, t := range tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}

// ComputeStreak counts fully completed days walking back from today. An
// unfinished today does not end the walk; any earlier gap does.
func (s *Service) ComputeStreak(ctx context.Context) (int, error) {
	all, err := s.routines.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	today := s.now().UTC()
	streak := 0
	for i := 0; i < StreakWindowDays; i++ {
		date := DateKey(today.Add(-time.Duration(i) * 24 * time.Hour))
		if dayComplete(all[date]) {
			streak++
		} else if i > 0 {
			break
		}
	}
	return streak, nil
}
