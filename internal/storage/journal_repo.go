package storage

import "context"

type JournalRepo struct {
	kv KV
}

func NewJournalRepo(kv KV) *JournalRepo {
	return &JournalRepo{kv: kv}
}

// ListAll returns entries newest first.
func (r *JournalRepo) ListAll(ctx context.Context) ([]AIUsage, error) {
	entries, _, err := loadDoc[[]AIUsage](ctx, r.kv, KeyAIUsage)
	return entries, err
}

// Prepend stores u ahead of the existing entries.
func (r *JournalRepo) Prepend(ctx context.Context, u AIUsage) error {
	return updateDoc(ctx, r.kv, KeyAIUsage, func(entries *[]AIUsage, _ bool) error {
		*entries = append([]AIUsage{u}, *entries...)
		return nil
	})
}
