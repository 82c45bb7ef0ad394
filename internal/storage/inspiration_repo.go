package storage

import "context"

type InspirationRepo struct {
	kv KV
}

func NewInspirationRepo(kv KV) *InspirationRepo {
	return &InspirationRepo{kv: kv}
}

// Get returns the record stored under key, or nil.
func (r *InspirationRepo) Get(ctx context.Context, key string) (*Inspiration, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	insp, ok := all[key]
	if !ok {
		return nil, nil
	}
	return &insp, nil
}

func (r *InspirationRepo) ListAll(ctx context.Context) (map[string]Inspiration, error) {
	all, _, err := loadDoc[map[string]Inspiration](ctx, r.kv, KeyInspiration)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = map[string]Inspiration{}
	}
	return all, nil
}

// Save stores insp under key and records it as viewed.
func (r *InspirationRepo) Save(ctx context.Context, key string, insp Inspiration) error {
	err := updateDoc(ctx, r.kv, KeyInspiration, func(all *map[string]Inspiration, _ bool) error {
		if *all == nil {
			*all = map[string]Inspiration{}
		}
		(*all)[key] = insp
		return nil
	})
	if err != nil {
		return err
	}
	_, err = r.MarkViewed(ctx, insp)
	return err
}

// Viewed returns every inspiration ever saved, deduplicated by id, in first-seen order.
func (r *InspirationRepo) Viewed(ctx context.Context) ([]Inspiration, error) {
	viewed, _, err := loadDoc[[]Inspiration](ctx, r.kv, KeyInspirationsViewed)
	return viewed, err
}

// MarkViewed appends insp unless an entry with the same id exists.
func (r *InspirationRepo) MarkViewed(ctx context.Context, insp Inspiration) (bool, error) {
	added := false
	err := updateDoc(ctx, r.kv, KeyInspirationsViewed, func(viewed *[]Inspiration, _ bool) error {
		for _, v := range *viewed {
			if v.ID == insp.ID {
				return nil
			}
		}
		*viewed = append(*viewed, insp)
		added = true
		return nil
	})
	return added, err
}
