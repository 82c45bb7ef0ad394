package storage

import (
	"strings"
	"time"
)

type Profile struct {
	Pseudo    string    `json:"pseudo"`
	XP        int       `json:"xp"`
	Level     int       `json:"level"`
	Badges    []string  `json:"badges"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasBadge reports whether id is already unlocked.
func (p *Profile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RoutineTask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Time      string `json:"time"` // "HH:MM", 24h, zero padded
	Type      string `json:"type"` // fixed | variable
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
}

type AIUsage struct {
	ID         string    `json:"id"`
	Category   string    `json:"category"`
	Question   string    `json:"question"`
	Reason     string    `json:"reason"`
	Score      int       `json:"score"`
	Analysis   string    `json:"analysis"`
	Suggestion string    `json:"suggestion"`
	Timestamp  time.Time `json:"timestamp"`
}

type Artist struct {
	Style       string   `json:"style"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Palette     []string `json:"palette"`
}

type Personality struct {
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	WikiLink string `json:"wikiLink"`
}

type Book struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	Summary    string `json:"summary"`
	Context    string `json:"context"`
	Importance string `json:"importance"`
}

type Artwork struct {
	Name       string `json:"name"`
	Artist     string `json:"artist"`
	Techniques string `json:"techniques"`
	Meaning    string `json:"meaning"`
}

type Album struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Style       string `json:"style"`
	SpotifyLink string `json:"spotifyLink"`
}

type Invention struct {
	Name     string `json:"name"`
	Inventor string `json:"inventor"`
	Date     string `json:"date"`
	Impact   string `json:"impact"`
}

type Word struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Etymology  string `json:"etymology"`
	Example    string `json:"example"`
}

// InspirationContent is the generated bundle, before it gets an id and a date key.
type InspirationContent struct {
	Artist      Artist      `json:"artist"`
	Personality Personality `json:"personality"`
	Book        Book        `json:"book"`
	Artwork     Artwork     `json:"artwork"`
	Album       Album       `json:"album"`
	Invention   Invention   `json:"invention"`
	Word        Word        `json:"word"`
	Exercise    string      `json:"exercise"`
}

// Valid reports whether the bundle carries the artist, book and word every
// view and quiz relies on.
func (c InspirationContent) Valid() bool {
	return strings.TrimSpace(c.Artist.Name) != "" &&
		strings.TrimSpace(c.Book.Title) != "" &&
		strings.TrimSpace(c.Word.Word) != ""
}

type Inspiration struct {
	ID   string `json:"id"`
	Date string `json:"date"` // storage key: plain date, or date-id for regenerated records
	InspirationContent
}

type QuizResult struct {
	ID    string    `json:"id"`
	Type  string    `json:"type"` // code | inspiration
	Score int       `json:"score"`
	Total int       `json:"total"`
	Date  time.Time `json:"date"`
}

// Percent is the derived score percentage; it is never stored.
func (r QuizResult) Percent() float64 {
	if r.Total <= 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total) * 100
}
