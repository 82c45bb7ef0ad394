package engine

import (
	"context"
	"math"

	"go.uber.org/zap"

	"focusboard/internal/storage"
)

const (
	XPRoutineComplete   = 10
	XPRoutineMissed     = -5
	XPInspirationView   = 20
	XPAIUsageGood       = 10
	XPAIUsageBad        = -10
	QuizCodeMultiplier  = 1.0
	QuizInspiMultiplier = 0.5

	// XPStepBeyondTable extends the curve past the last defined level.
	XPStepBeyondTable = 600
)

type LevelThreshold struct {
	Level int
	XP    int
}

// Levels is ordered by strictly increasing XP; the first entry is always 0.
var Levels = []LevelThreshold{
	{1, 0},
	{2, 200},
	{3, 500},
	{4, 900},
	{5, 1400},
	{6, 2000},
	{7, 2600},
	{8, 3200},
	{9, 3800},
	{10, 4400},
}

// LevelForXP returns the highest level whose threshold is <= xp.
func LevelForXP(xp int) int {
	for i := len(Levels) - 1; i >= 0; i-- {
		if xp >= Levels[i].XP {
			return Levels[i].Level
		}
	}
	return 1
}

type Progress struct {
	Floor   int
	Next    int
	Percent float64
}

// XPForNextLevel returns the current level floor, the next threshold and the
// progress between them, clamped to [0, 100].
func XPForNextLevel(xp int) Progress {
	idx := 0
	for i := len(Levels) - 1; i >= 0; i-- {
		if xp >= Levels[i].XP {
			idx = i
			break
		}
	}
	floor := Levels[idx].XP
	next := floor + XPStepBeyondTable
	if idx+1 < len(Levels) {
		next = Levels[idx+1].XP
	}

	pct := float64(xp-floor) / float64(next-floor) * 100
	pct = math.Max(0, math.Min(100, pct))
	return Progress{Floor: floor, Next: next, Percent: pct}
}

func applyXP(p *storage.Profile, delta int) {
	p.XP += delta
	if p.XP < 0 {
		p.XP = 0
	}
	p.Level = LevelForXP(p.XP)
}

// AddXP adjusts the profile's xp by delta (never below zero) and recomputes
// its level.
func (s *Service) AddXP(ctx context.Context, delta int) (*storage.Profile, error) {
	p, err := s.profiles.Update(ctx, func(p *storage.Profile) error {
		applyXP(p, delta)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("xp adjusted", zap.Int("delta", delta), zap.Int("xp", p.XP), zap.Int("level", p.Level))
	return p, nil
}
