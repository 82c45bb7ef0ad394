package engine

import (
	"fmt"
	"strings"
)

type QuizKind string

const (
	QuizCode        QuizKind = "code"
	QuizInspiration QuizKind = "inspiration"
)

func (k QuizKind) IsValid() bool {
	return k == QuizCode || k == QuizInspiration
}

// Multiplier converts a percentage score into xp for this kind.
func (k QuizKind) Multiplier() float64 {
	if k == QuizCode {
		return QuizCodeMultiplier
	}
	return QuizInspiMultiplier
}

// ParseQuizKind parses user input to a QuizKind.
// Supported: code, route, inspiration, inspi, culture
func ParseQuizKind(input string) (QuizKind, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "code", "route":
		return QuizCode, nil
	case "inspiration", "inspi", "culture":
		return QuizInspiration, nil
	default:
		return "", fmt.Errorf("invalid quiz kind: %q", input)
	}
}

// Categories are the journal categories, in display order.
var Categories = []string{
	"Recherche",
	"Création",
	"Apprentissage",
	"Productivité",
	"Divertissement",
	"Autre",
}

var categoryAliases = map[string]string{
	"creation":     "Création",
	"productivite": "Productivité",
}

// ParseCategory matches input case-insensitively against Categories. The
// unaccented spellings are accepted too.
func ParseCategory(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ValidationError{Field: "category"}
	}
	for _, c := range Categories {
		if strings.EqualFold(c, s) {
			return c, nil
		}
	}
	if c, ok := categoryAliases[strings.ToLower(s)]; ok {
		return c, nil
	}
	return "", ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", input)}
}
