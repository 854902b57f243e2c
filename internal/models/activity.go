package models

import (
	"encoding/json"
	"time"
)

// ActivityType represents the kind of practice activity attached to a module
type ActivityType string

const (
	ActivityTypeQuiz      ActivityType = "quiz"
	ActivityTypeUpload    ActivityType = "upload"
	ActivityTypeSimulator ActivityType = "simulator"
)

// Valid reports whether the activity type is one of the known kinds
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityTypeQuiz, ActivityTypeUpload, ActivityTypeSimulator:
		return true
	}
	return false
}

// Activity represents a practice activity attached to a module.
// Content is opaque text; its interpretation depends on Type and is only
// decoded at render time.
type Activity struct {
	ID        int          `json:"id"`
	ModuleID  int          `json:"moduleId"`
	Title     string       `json:"title"`
	Type      ActivityType `json:"type"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"createdAt"`
}

// QuizQuestion is a single question inside a quiz activity
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	// Correct is the index of the right option; nil when the question has no
	// marked answer.
	Correct *int `json:"correct,omitempty"`
}

// QuizContent is the decoded content of a quiz activity
type QuizContent struct {
	Questions []QuizQuestion `json:"questions"`
}

// SimulatorContent is the decoded content of a simulator activity
type SimulatorContent struct {
	Instructions string   `json:"instructions,omitempty"`
	Deliverables []string `json:"deliverables,omitempty"`
}

// Quiz decodes the activity content as quiz data. The second return value is
// false when the activity is not a quiz or the content is not valid quiz
// JSON; callers are expected to fall back to the raw content string.
func (a *Activity) Quiz() (*QuizContent, bool) {
	if a.Type != ActivityTypeQuiz {
		return nil, false
	}
	var quiz QuizContent
	if err := json.Unmarshal([]byte(a.Content), &quiz); err != nil {
		return nil, false
	}
	return &quiz, true
}

// Simulator decodes the activity content as simulator data, with the same
// fallback contract as Quiz.
func (a *Activity) Simulator() (*SimulatorContent, bool) {
	if a.Type != ActivityTypeSimulator {
		return nil, false
	}
	var sim SimulatorContent
	if err := json.Unmarshal([]byte(a.Content), &sim); err != nil {
		return nil, false
	}
	return &sim, true
}
