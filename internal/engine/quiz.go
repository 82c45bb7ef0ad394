package engine

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"focusboard/internal/content"
	"focusboard/internal/storage"
)

type QuizState int

const (
	StateSelecting QuizState = iota
	StateActive
	StateResults
)

func (s QuizState) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StateActive:
		return "active"
	case StateResults:
		return "results"
	default:
		return fmt.Sprintf("QuizState(%d)", int(s))
	}
}

// QuizOutcome is what a finished session produced.
type QuizOutcome struct {
	Result    storage.QuizResult
	Percent   int
	XPGained  int
	Profile   *storage.Profile
	NewBadges []string
}

// AnswerResult reports the correctness of the recorded answer for the current
// question. Accepted is false when an answer had already been recorded.
type AnswerResult struct {
	Accepted     bool
	Selected     int
	CorrectIndex int
	Correct      bool
}

// QuizSession drives one quiz: selecting, then active over the questions,
// then results until Reset. It is not safe for concurrent use.
type QuizSession struct {
	svc *Service

	state     QuizState
	kind      QuizKind
	offline   bool
	questions []content.Question
	index     int
	answers   []int
	outcome   *QuizOutcome
}

func (s *Service) NewQuizSession() *QuizSession {
	return &QuizSession{svc: s}
}

func (q *QuizSession) State() QuizState { return q.state }
func (q *QuizSession) Kind() QuizKind   { return q.kind }

// Offline reports whether the questions came from the local generator.
func (q *QuizSession) Offline() bool { return q.offline }

func (q *QuizSession) Total() int { return len(q.questions) }

// Index is the zero-based position of the current question.
func (q *QuizSession) Index() int { return q.index }

// Current returns the question being asked; ok is false outside the active state.
func (q *QuizSession) Current() (content.Question, bool) {
	if q.state != StateActive {
		return content.Question{}, false
	}
	return q.questions[q.index], true
}

// Answered reports whether the current question already has an answer.
func (q *QuizSession) Answered() bool {
	return q.state == StateActive && len(q.answers) > q.index
}

func (q *QuizSession) Outcome() *QuizOutcome { return q.outcome }

// Start fetches the questions for kind and enters the active state. On any
// error the session stays in selecting.
func (q *QuizSession) Start(ctx context.Context, kind QuizKind) error {
	if q.state != StateSelecting {
		return ErrSessionState
	}
	if !kind.IsValid() {
		return ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown quiz kind %q", kind)}
	}

	var (
		questions []content.Question
		offline   bool
	)
	switch kind {
	case QuizCode:
		got, err := q.svc.gen.CodeQuiz(ctx)
		if err != nil {
			q.svc.log.Warn("code quiz generation failed", zap.Error(err))
			return GenerationError{Op: "code quiz", Err: err}
		}
		questions = content.Usable(got)
		if len(questions) == 0 {
			return GenerationError{Op: "code quiz", Err: content.ErrEmptyQuiz}
		}

	case QuizInspiration:
		viewed, err := q.svc.inspirations.Viewed(ctx)
		if err != nil {
			return err
		}
		if len(viewed) == 0 {
			return ErrNoViewedInspirations
		}
		got, err := q.svc.gen.InspirationQuiz(ctx, viewed)
		if err == nil {
			questions = content.Usable(got)
		}
		if len(questions) == 0 {
			if err == nil {
				err = content.ErrEmptyQuiz
			}
			q.svc.log.Warn("inspiration quiz generation failed, using local quiz", zap.Error(err))
			got, ferr := q.svc.fallback.InspirationQuiz(ctx, viewed)
			if ferr != nil {
				return GenerationError{Op: "inspiration quiz", Err: errors.Join(err, ferr)}
			}
			questions = content.Usable(got)
			offline = true
		}
		if len(questions) == 0 {
			return GenerationError{Op: "inspiration quiz", Err: content.ErrEmptyQuiz}
		}
	}

	q.kind = kind
	q.offline = offline
	q.questions = questions
	q.index = 0
	q.answers = make([]int, 0, len(questions))
	q.outcome = nil
	q.state = StateActive
	return nil
}

// SelectAnswer records option for the current question. Only the first call
// per question is recorded; later calls report the recorded answer.
func (q *QuizSession) SelectAnswer(option int) (AnswerResult, error) {
	if q.state != StateActive {
		return AnswerResult{}, ErrSessionState
	}
	cur := q.questions[q.index]
	if q.Answered() {
		sel := q.answers[q.index]
		return AnswerResult{Selected: sel, CorrectIndex: cur.Correct, Correct: sel == cur.Correct}, nil
	}
	if option < 0 || option >= len(cur.Options) {
		return AnswerResult{}, ValidationError{Field: "option", Reason: fmt.Sprintf("must be between 0 and %d", len(cur.Options)-1)}
	}
	q.answers = append(q.answers, option)
	return AnswerResult{Accepted: true, Selected: option, CorrectIndex: cur.Correct, Correct: option == cur.Correct}, nil
}

// Advance moves to the next question, or finishes the quiz after the last
// one. The current question must have been answered.
func (q *QuizSession) Advance(ctx context.Context) (*QuizOutcome, error) {
	if !q.Answered() {
		return nil, ErrSessionState
	}
	if q.index < len(q.questions)-1 {
		q.index++
		return nil, nil
	}
	out, err := q.finish(ctx)
	if err != nil {
		return nil, err
	}
	q.outcome = out
	q.state = StateResults
	return out, nil
}

// Score counts answers matching each question's correct index.
func Score(questions []content.Question, answers []int) (correct, percent int) {
	for i, a := range answers {
		if i < len(questions) && a == questions[i].Correct {
			correct++
		}
	}
	if len(questions) == 0 {
		return correct, 0
	}
	percent = int(math.Round(float64(correct) / float64(len(questions)) * 100))
	return correct, percent
}

func (q *QuizSession) finish(ctx context.Context) (*QuizOutcome, error) {
	correct, percent := Score(q.questions, q.answers)
	res := storage.QuizResult{
		ID:    uuid.NewString(),
		Type:  string(q.kind),
		Score: correct,
		Total: len(q.questions),
		Date:  q.svc.now().UTC(),
	}
	if err := q.svc.quizzes.Append(ctx, res); err != nil {
		return nil, fmt.Errorf("save quiz result: %w", err)
	}

	xp := int(math.Round(float64(percent) * q.kind.Multiplier()))
	p, err := q.svc.AddXP(ctx, xp)
	if err != nil {
		return nil, err
	}
	badges, err := q.svc.CheckAndAwardBadges(ctx)
	if err != nil {
		return nil, err
	}
	q.svc.log.Info("quiz finished",
		zap.String("kind", string(q.kind)),
		zap.Int("correct", correct),
		zap.Int("total", res.Total),
		zap.Int("xp", xp),
	)
	return &QuizOutcome{Result: res, Percent: percent, XPGained: xp, Profile: p, NewBadges: badges}, nil
}

// Reset discards any progress and returns to selecting.
func (q *QuizSession) Reset() {
	*q = QuizSession{svc: q.svc}
}
