package proxy

import (
	"encoding/json"
	"errors"
	"fmt"

	"focusboard/internal/content"
)

var ErrUnknownAction = errors.New("unknown action")

const inspirationUser = `Génère une inspiration du jour avec le format JSON suivant :
{
  "artist": { "style": "nom du mouvement", "name": "nom artiste", "description": "description courte", "palette": ["#hex1", "#hex2", "#hex3", "#hex4", "#hex5"] },
  "personality": { "name": "nom réel", "bio": "biographie courte", "wikiLink": "lien wikipedia français" },
  "book": { "title": "titre", "author": "auteur", "summary": "résumé complet", "context": "contexte historique", "importance": "pourquoi important" },
  "artwork": { "name": "nom oeuvre", "artist": "artiste", "techniques": "techniques utilisées", "meaning": "signification" },
  "album": { "title": "titre album français", "artist": "artiste français", "style": "genre musical", "spotifyLink": "lien spotify" },
  "invention": { "name": "nom invention", "inventor": "inventeur", "date": "date", "impact": "impact sur le monde" },
  "word": { "word": "mot rare", "definition": "définition", "etymology": "étymologie", "example": "exemple" },
  "exercise": "exercice créatif"
}`

const quizFormat = `{
  "questions": [
    { "question": "texte", "options": ["A", "B", "C", "D"], "correct": 0 }
  ]
}`

// BuildPrompt returns the system and user prompts for action. data is the
// raw "data" member of the request and may be empty.
func BuildPrompt(action content.Action, data json.RawMessage) (system, user string, err error) {
	switch action {
	case content.ActionInspiration:
		return "Tu es un expert en culture générale. Tu dois générer une inspiration du jour COMPLÈTE et UNIQUE. Réponds UNIQUEMENT en JSON valide.",
			inspirationUser, nil

	case content.ActionQuizCode:
		return "Tu es un expert du code de la route. Réponds UNIQUEMENT en JSON.",
			fmt.Sprintf("Génère %d questions de quiz au format :\n%s", content.CodeQuizSize, quizFormat), nil

	case content.ActionQuizInspi:
		var d struct {
			Inspirations json.RawMessage `json:"inspirations"`
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &d); err != nil {
				return "", "", fmt.Errorf("decode quiz_inspi data: %w", err)
			}
		}
		viewed := string(d.Inspirations)
		if viewed == "" || viewed == "null" {
			viewed = "[]"
		}
		return "Tu es un expert en culture générale. Réponds UNIQUEMENT en JSON.",
			fmt.Sprintf("Voici les inspirations vues :\n%s\n\nGénère %d questions au format :\n%s", viewed, content.InspiQuizSize, quizFormat), nil

	case content.ActionAnalyse:
		var d content.AnalyseData
		if len(data) > 0 {
			if err := json.Unmarshal(data, &d); err != nil {
				return "", "", fmt.Errorf("decode analyse data: %w", err)
			}
		}
		return "Tu es un coach productivité. Réponds UNIQUEMENT en JSON.",
			fmt.Sprintf("Analyse cette utilisation :\nCatégorie: %s\nQuestion: %s\nRaison: %s\n\nRéponds :\n{\n  \"score\": 0-5,\n  \"analysis\": \"texte\",\n  \"suggestion\": \"texte\"\n}",
				d.Category, d.Question, d.Reason), nil

	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}
