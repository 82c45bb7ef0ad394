package content

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"sync"

	"focusboard/internal/storage"
)

// Local generates content without any network access. Inspirations and
// analysis scores are drawn from rng; the inspiration quiz is a pure function
// of the viewed records.
type Local struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewLocal(rng *rand.Rand) *Local {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Local{rng: rng}
}

func (l *Local) intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

func (l *Local) Inspiration(ctx context.Context) (storage.InspirationContent, error) {
	return mockInspirations[l.intn(len(mockInspirations))], nil
}

func (l *Local) CodeQuiz(ctx context.Context) ([]Question, error) {
	out := make([]Question, len(mockCodeQuiz))
	copy(out, mockCodeQuiz)
	return out, nil
}

func (l *Local) InspirationQuiz(ctx context.Context, viewed []storage.Inspiration) ([]Question, error) {
	return QuizFromViewed(viewed), nil
}

// Analyse scores at random, like the offline journal did.
func (l *Local) Analyse(ctx context.Context, category, question, reason string) (Analysis, error) {
	score := l.intn(6)
	if score >= 3 {
		return Analysis{
			Score:      score,
			Analysis:   "Utilisation pertinente de l'IA pour améliorer votre productivité.",
			Suggestion: "Continuez à utiliser l'IA pour des tâches similaires.",
		}, nil
	}
	return Analysis{
		Score:      score,
		Analysis:   "Cette utilisation pourrait être évitée. Essayez de chercher par vous-même d'abord.",
		Suggestion: "Prenez le temps de réfléchir avant de recourir à l'IA.",
	}, nil
}

type questionTemplate struct {
	prompt string
	answer func(storage.Inspiration) (subject, answer string)
	decoys []string
}

var quizTemplates = []questionTemplate{
	{
		prompt: "Qui a écrit « %s » ?",
		answer: func(i storage.Inspiration) (string, string) { return i.Book.Title, i.Book.Author },
		decoys: []string{"Victor Hugo", "Jean-Paul Sartre", "Marcel Proust", "Émile Zola"},
	},
	{
		prompt: "Quel artiste est associé au mouvement %s ?",
		answer: func(i storage.Inspiration) (string, string) { return i.Artist.Style, i.Artist.Name },
		decoys: []string{"Picasso", "Monet", "Dalí", "Frida Kahlo"},
	},
	{
		prompt: "Que désigne le mot « %s » ?",
		answer: func(i storage.Inspiration) (string, string) { return i.Word.Word, i.Word.Definition },
		decoys: []string{"Une maladie rare", "Un style artistique", "Un genre musical", "Un instrument ancien"},
	},
	{
		prompt: "Qui est à l'origine de : %s ?",
		answer: func(i storage.Inspiration) (string, string) { return i.Invention.Name, i.Invention.Inventor },
		decoys: []string{"Thomas Edison", "Nikola Tesla", "Louis Pasteur", "Léonard de Vinci"},
	},
}

// QuizFromViewed builds up to InspiQuizSize questions from viewed records.
// The same input always yields the same quiz. When the records carry too
// little material, the built-in questions pad the quiz to at least three.
func QuizFromViewed(viewed []storage.Inspiration) []Question {
	h := fnv.New64a()
	for _, v := range viewed {
		_, _ = h.Write([]byte(v.ID))
	}
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	var out []Question
	for i := len(viewed) - 1; i >= 0 && len(out) < InspiQuizSize; i-- {
		for _, tmpl := range quizTemplates {
			if len(out) == InspiQuizSize {
				break
			}
			subject, answer := tmpl.answer(viewed[i])
			if subject == "" || answer == "" {
				continue
			}
			out = append(out, buildQuestion(rng, fmt.Sprintf(tmpl.prompt, subject), answer, tmpl.decoys))
		}
	}
	for _, q := range mockInspiQuiz {
		if len(out) >= 3 {
			break
		}
		out = append(out, q)
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func buildQuestion(rng *rand.Rand, prompt, answer string, decoys []string) Question {
	options := []string{answer}
	for _, d := range decoys {
		if len(options) == 4 {
			break
		}
		if !strings.EqualFold(d, answer) {
			options = append(options, d)
		}
	}
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	correct := 0
	for i, o := range options {
		if o == answer {
			correct = i
			break
		}
	}
	return Question{Question: prompt, Options: options, Correct: correct}
}
