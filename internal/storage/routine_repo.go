package storage

import "context"

// RoutineRepo keeps one task list per date key under a single document.
type RoutineRepo struct {
	kv KV
}

func NewRoutineRepo(kv KV) *RoutineRepo {
	return &RoutineRepo{kv: kv}
}

// Get returns the tasks for date; an empty slice when none were generated.
func (r *RoutineRepo) Get(ctx context.Context, date string) ([]RoutineTask, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return all[date], nil
}

func (r *RoutineRepo) ListAll(ctx context.Context) (map[string][]RoutineTask, error) {
	all, _, err := loadDoc[map[string][]RoutineTask](ctx, r.kv, KeyRoutine)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = map[string][]RoutineTask{}
	}
	return all, nil
}

// Save replaces the whole task list for date.
func (r *RoutineRepo) Save(ctx context.Context, date string, tasks []RoutineTask) error {
	return r.Update(ctx, date, func([]RoutineTask) ([]RoutineTask, error) { return tasks, nil })
}

// Update rewrites the task list for date through fn.
func (r *RoutineRepo) Update(ctx context.Context, date string, fn func(tasks []RoutineTask) ([]RoutineTask, error)) error {
	return updateDoc(ctx, r.kv, KeyRoutine, func(all *map[string][]RoutineTask, _ bool) error {
		if *all == nil {
			*all = map[string][]RoutineTask{}
		}
		next, err := fn((*all)[date])
		if err != nil {
			return err
		}
		(*all)[date] = next
		return nil
	})
}
