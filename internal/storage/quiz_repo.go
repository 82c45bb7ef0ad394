package storage

import "context"

type QuizResultRepo struct {
	kv KV
}

func NewQuizResultRepo(kv KV) *QuizResultRepo {
	return &QuizResultRepo{kv: kv}
}

// ListAll returns results in the order they were recorded.
func (r *QuizResultRepo) ListAll(ctx context.Context) ([]QuizResult, error) {
	results, _, err := loadDoc[[]QuizResult](ctx, r.kv, KeyQuizResults)
	return results, err
}

func (r *QuizResultRepo) ListByType(ctx context.Context, typ string) ([]QuizResult, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []QuizResult
	for _, res := range all {
		if res.Type == typ {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *QuizResultRepo) Append(ctx context.Context, res QuizResult) error {
	return updateDoc(ctx, r.kv, KeyQuizResults, func(results *[]QuizResult, _ bool) error {
		*results = append(*results, res)
		return nil
	})
}
