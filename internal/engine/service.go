package engine

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"focusboard/internal/content"
	"focusboard/internal/storage"
)

// Generator produces the AI-backed content. content.Client talks to the proxy;
// content.Local works offline.
type Generator interface {
	Inspiration(ctx context.Context) (storage.InspirationContent, error)
	CodeQuiz(ctx context.Context) ([]content.Question, error)
	InspirationQuiz(ctx context.Context, viewed []storage.Inspiration) ([]content.Question, error)
	Analyse(ctx context.Context, category, question, reason string) (content.Analysis, error)
}

type Service struct {
	profiles     *storage.ProfileRepo
	notes        *storage.NoteRepo
	routines     *storage.RoutineRepo
	journal      *storage.JournalRepo
	quizzes      *storage.QuizResultRepo
	inspirations *storage.InspirationRepo

	gen      Generator
	fallback Generator
	now      func() time.Time
	rng      *rand.Rand
	log      *zap.Logger
}

type Option func(*Service)

// WithGenerator sets the content generator. Defaults to the offline generator.
func WithGenerator(g Generator) Option {
	return func(s *Service) { s.gen = g }
}

// WithFallback sets the generator used when the inspiration quiz cannot be
// generated upstream.
func WithFallback(g Generator) Option {
	return func(s *Service) { s.fallback = g }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

func NewService(kv storage.KV, opts ...Option) *Service {
	s := &Service{
		now: time.Now,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(s.now().UnixNano()))
	}
	if s.fallback == nil {
		s.fallback = content.NewLocal(rand.New(rand.NewSource(s.rng.Int63())))
	}
	if s.gen == nil {
		s.gen = s.fallback
	}

	s.profiles = storage.NewProfileRepo(kv, s.now)
	s.notes = storage.NewNoteRepo(kv)
	s.routines = storage.NewRoutineRepo(kv)
	s.journal = storage.NewJournalRepo(kv)
	s.quizzes = storage.NewQuizResultRepo(kv)
	s.inspirations = storage.NewInspirationRepo(kv)
	return s
}

func (s *Service) ProfileRepo() *storage.ProfileRepo         { return s.profiles }
func (s *Service) RoutineRepo() *storage.RoutineRepo         { return s.routines }
func (s *Service) QuizResultRepo() *storage.QuizResultRepo   { return s.quizzes }
func (s *Service) InspirationRepo() *storage.InspirationRepo { return s.inspirations }

// DateKey formats t as the UTC calendar date used for routine and
// inspiration keys.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Today returns the date key for the service clock.
func (s *Service) Today() string {
	return DateKey(s.now())
}
