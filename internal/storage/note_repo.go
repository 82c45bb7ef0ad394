package storage

import "context"

type NoteRepo struct {
	kv KV
}

func NewNoteRepo(kv KV) *NoteRepo {
	return &NoteRepo{kv: kv}
}

// ListAll returns notes in stored order (newest created first).
func (r *NoteRepo) ListAll(ctx context.Context) ([]Note, error) {
	notes, _, err := loadDoc[[]Note](ctx, r.kv, KeyNotes)
	return notes, err
}

func (r *NoteRepo) Update(ctx context.Context, fn func(notes []Note) ([]Note, error)) error {
	return updateDoc(ctx, r.kv, KeyNotes, func(notes *[]Note, _ bool) error {
		next, err := fn(*notes)
		if err != nil {
			return err
		}
		*notes = next
		return nil
	})
}
