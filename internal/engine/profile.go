package engine

import (
	"context"
	"strings"

	"focusboard/internal/storage"
)

// Profile returns the profile, creating the default one on first access. A
// stored level that disagrees with the xp is corrected.
func (s *Service) Profile(ctx context.Context) (*storage.Profile, error) {
	p, err := s.profiles.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	computed := LevelForXP(p.XP)
	if p.Level != computed || p.XP < 0 {
		return s.profiles.Update(ctx, func(p *storage.Profile) error {
			applyXP(p, 0)
			return nil
		})
	}
	return p, nil
}

func (s *Service) UpdatePseudo(ctx context.Context, pseudo string) (*storage.Profile, error) {
	name := strings.TrimSpace(pseudo)
	if name == "" {
		return nil, ValidationError{Field: "pseudo"}
	}
	return s.profiles.Update(ctx, func(p *storage.Profile) error {
		p.Pseudo = name
		return nil
	})
}
