package engine

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"focusboard/internal/storage"
)

const DefaultNoteTitle = "Nouvelle note"

// sortNotes orders pinned notes first, then by most recent update.
func sortNotes(notes []storage.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].Pinned != notes[j].Pinned {
			return notes[i].Pinned
		}
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}

func (s *Service) ListNotes(ctx context.Context) ([]storage.Note, error) {
	notes, err := s.notes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortNotes(notes)
	return notes, nil
}

func (s *Service) PinnedNotes(ctx context.Context) ([]storage.Note, error) {
	notes, err := s.ListNotes(ctx)
	if err != nil {
		return nil, err
	}
	var pinned []storage.Note
	for _, n := range notes {
		if n.Pinned {
			pinned = append(pinned, n)
		}
	}
	return pinned, nil
}

func (s *Service) CreateNote(ctx context.Context, title, body string) (*storage.Note, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		t = DefaultNoteTitle
	}
	now := s.now().UTC()
	n := storage.Note{
		ID:        uuid.NewString(),
		Title:     t,
		Content:   body,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := s.notes.Update(ctx, func(notes []storage.Note) ([]storage.Note, error) {
		return append([]storage.Note{n}, notes...), nil
	})
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *Service) mutateNote(ctx context.Context, id string, fn func(n *storage.Note)) (*storage.Note, error) {
	var out storage.Note
	err := s.notes.Update(ctx, func(notes []storage.Note) ([]storage.Note, error) {
		for i := range notes {
			if notes[i].ID == id {
				fn(&notes[i])
				out = notes[i]
				return notes, nil
			}
		}
		return nil, NotFoundError{Kind: "note", ID: id}
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateNote replaces title and content and refreshes updatedAt. An empty
// title keeps the current one.
func (s *Service) UpdateNote(ctx context.Context, id, title, body string) (*storage.Note, error) {
	return s.mutateNote(ctx, id, func(n *storage.Note) {
		if t := strings.TrimSpace(title); t != "" {
			n.Title = t
		}
		n.Content = body
		n.UpdatedAt = s.now().UTC()
	})
}

func (s *Service) TogglePin(ctx context.Context, id string) (*storage.Note, error) {
	return s.mutateNote(ctx, id, func(n *storage.Note) {
		n.Pinned = !n.Pinned
	})
}

func (s *Service) DeleteNote(ctx context.Context, id string) error {
	return s.notes.Update(ctx, func(notes []storage.Note) ([]storage.Note, error) {
		for i := range notes {
			if notes[i].ID == id {
				return append(notes[:i], notes[i+1:]...), nil
			}
		}
		return nil, NotFoundError{Kind: "note", ID: id}
	})
}

// FindNote resolves id or a unique id prefix.
func (s *Service) FindNote(ctx context.Context, ref string) (*storage.Note, error) {
	notes, err := s.notes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var match *storage.Note
	for i := range notes {
		if notes[i].ID == ref {
			return &notes[i], nil
		}
		if ref != "" && strings.HasPrefix(notes[i].ID, ref) {
			if match != nil {
				return nil, ValidationError{Field: "id", Reason: "ambiguous prefix " + ref}
			}
			match = &notes[i]
		}
	}
	if match == nil {
		return nil, NotFoundError{Kind: "note", ID: ref}
	}
	return match, nil
}
