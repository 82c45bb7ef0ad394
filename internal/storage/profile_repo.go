package storage

import (
	"context"
	"time"
)

const (
	DefaultPseudo = "Utilisateur"
	// BeginnerBadge is granted to every fresh profile.
	BeginnerBadge = "beginner"
)

type ProfileRepo struct {
	kv  KV
	now func() time.Time
}

func NewProfileRepo(kv KV, now func() time.Time) *ProfileRepo {
	if now == nil {
		now = time.Now
	}
	return &ProfileRepo{kv: kv, now: now}
}

func (r *ProfileRepo) defaultProfile() Profile {
	return Profile{
		Pseudo:    DefaultPseudo,
		XP:        0,
		Level:     1,
		Badges:    []string{BeginnerBadge},
		CreatedAt: r.now().UTC(),
	}
}

// Get returns the stored profile, or nil when none exists yet.
func (r *ProfileRepo) Get(ctx context.Context) (*Profile, error) {
	p, ok, err := loadDoc[Profile](ctx, r.kv, KeyProfile)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// GetOrCreate returns the profile, persisting the default one on first access.
func (r *ProfileRepo) GetOrCreate(ctx context.Context) (*Profile, error) {
	p, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	def := r.defaultProfile()
	if err := r.Save(ctx, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

func (r *ProfileRepo) Save(ctx context.Context, p *Profile) error {
	return saveDoc(ctx, r.kv, KeyProfile, p)
}

// Update applies fn to the current (or default) profile and persists the result.
func (r *ProfileRepo) Update(ctx context.Context, fn func(p *Profile) error) (*Profile, error) {
	var out Profile
	err := updateDoc(ctx, r.kv, KeyProfile, func(p *Profile, existed bool) error {
		if !existed {
			*p = r.defaultProfile()
		}
		if err := fn(p); err != nil {
			return err
		}
		out = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
