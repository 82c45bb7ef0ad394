// Package content talks to the content-generation proxy and provides the
// local generator used when the proxy is unavailable.
package content

import (
	"strings"

	"focusboard/internal/storage"
)

type Action string

const (
	ActionInspiration Action = "inspiration"
	ActionQuizCode    Action = "quiz_code"
	ActionQuizInspi   Action = "quiz_inspi"
	ActionAnalyse     Action = "analyse"
)

// Valid reports whether a is one of the four proxy actions.
func (a Action) Valid() bool {
	switch a {
	case ActionInspiration, ActionQuizCode, ActionQuizInspi, ActionAnalyse:
		return true
	default:
		return false
	}
}

// Expected question counts the proxy asks the model for.
const (
	CodeQuizSize  = 20
	InspiQuizSize = 10
)

// Request is the proxy request body.
type Request struct {
	Action Action `json:"action"`
	Data   any    `json:"data,omitempty"`
}

type QuizInspiData struct {
	Inspirations []storage.Inspiration `json:"inspirations"`
}

type AnalyseData struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Reason   string `json:"reason"`
}

type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}

// Valid reports whether q has at least two options and a correct index
// pointing at one of them.
func (q Question) Valid() bool {
	return q.Question != "" && len(q.Options) >= 2 && q.Correct >= 0 && q.Correct < len(q.Options)
}

// Usable drops malformed questions.
func Usable(in []Question) []Question {
	out := make([]Question, 0, len(in))
	for _, q := range in {
		if q.Valid() {
			out = append(out, q)
		}
	}
	return out
}

type QuizResponse struct {
	Questions []Question `json:"questions"`
}

type Analysis struct {
	Score      int    `json:"score"`
	Analysis   string `json:"analysis"`
	Suggestion string `json:"suggestion"`
}

// Valid reports whether the model actually wrote an analysis.
func (a Analysis) Valid() bool {
	return strings.TrimSpace(a.Analysis) != ""
}

// ErrorResponse is the body of every non-2xx proxy response.
type ErrorResponse struct {
	Error string `json:"error"`
}
