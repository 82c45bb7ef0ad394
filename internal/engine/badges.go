package engine

import (
	"context"

	"go.uber.org/zap"

	"focusboard/internal/storage"
)

const (
	BadgeBeginner = storage.BeginnerBadge
	BadgeMorning  = "morning"
	BadgeCulture  = "culture"
	BadgeDriver   = "driver"
	BadgeNoLife   = "nolife"
	BadgeExplorer = "explorer"
)

type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

// BadgeCatalog lists every badge in display order.
var BadgeCatalog = []Badge{
	{BadgeBeginner, "Débutant", "Atteindre niveau 1", "🌱"},
	{BadgeMorning, "Matinal", "Routine complète 3 jours", "☀️"},
	{BadgeCulture, "Culture G", ">90 au quiz inspiration", "🎭"},
	{BadgeDriver, "Permis A+", ">90 au quiz route", "🚗"},
	{BadgeNoLife, "No Life", "Routine 7 jours complets", "🏆"},
	{BadgeExplorer, "Explorateur", "10 inspirations vues", "🧭"},
}

func BadgeByID(id string) (Badge, bool) {
	for _, b := range BadgeCatalog {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}

// BadgeStatus is a catalog entry with its earned flag.
type BadgeStatus struct {
	Badge
	Earned bool
}

// badgeStats is the snapshot the unlock rules are evaluated against.
type badgeStats struct {
	streak    int
	bestInspi int
	bestCode  int
	viewed    int
}

type badgeRule struct {
	id  string
	met func(badgeStats) bool
}

// Evaluated in this order; beginner is granted with the profile.
var badgeRules = []badgeRule{
	{BadgeMorning, func(s badgeStats) bool { return s.streak >= 3 }},
	{BadgeNoLife, func(s badgeStats) bool { return s.streak >= 7 }},
	{BadgeCulture, func(s badgeStats) bool { return s.bestInspi > 90 }},
	{BadgeDriver, func(s badgeStats) bool { return s.bestCode > 90 }},
	{BadgeExplorer, func(s badgeStats) bool { return s.viewed >= 10 }},
}

func (s *Service) collectBadgeStats(ctx context.Context) (badgeStats, error) {
	var st badgeStats
	var err error
	if st.streak, err = s.ComputeStreak(ctx); err != nil {
		return st, err
	}
	inspi, err := s.QuizStats(ctx, QuizInspiration)
	if err != nil {
		return st, err
	}
	code, err := s.QuizStats(ctx, QuizCode)
	if err != nil {
		return st, err
	}
	viewed, err := s.inspirations.Viewed(ctx)
	if err != nil {
		return st, err
	}
	st.bestInspi = inspi.Best
	st.bestCode = code.Best
	st.viewed = len(viewed)
	return st, nil
}

func newlyMet(p *storage.Profile, st badgeStats) []string {
	var ids []string
	for _, r := range badgeRules {
		if !p.HasBadge(r.id) && r.met(st) {
			ids = append(ids, r.id)
		}
	}
	return ids
}

// CheckAndAwardBadges unlocks every badge whose condition now holds and
// returns only the newly awarded ids. The profile is written only when
// something was awarded.
func (s *Service) CheckAndAwardBadges(ctx context.Context) ([]string, error) {
	st, err := s.collectBadgeStats(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if len(newlyMet(p, st)) == 0 {
		return nil, nil
	}

	var awarded []string
	_, err = s.profiles.Update(ctx, func(p *storage.Profile) error {
		awarded = newlyMet(p, st)
		p.Badges = append(p.Badges, awarded...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("badges awarded", zap.Strings("badges", awarded))
	return awarded, nil
}

// Badges returns the full catalog with earned flags.
func (s *Service) Badges(ctx context.Context) ([]BadgeStatus, error) {
	p, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]BadgeStatus, 0, len(BadgeCatalog))
	for _, b := range BadgeCatalog {
		out = append(out, BadgeStatus{Badge: b, Earned: p.HasBadge(b.ID)})
	}
	return out, nil
}
