// Package session implements the in-memory per-user conversation state
// store. Each user owns at most one active flow at a time; entering a new
// flow abandons the previous flow's variables. Nothing here survives a
// process restart: durability is an explicit external concern.
package session

import (
	"time"

	"github.com/avdeyev/umnikbot/internal/quiz"
)

// Flow identifies which dialogue is active for a user.
type Flow string

const (
	FlowNone      Flow = ""
	FlowQuiz      Flow = "quiz"
	FlowPersona   Flow = "persona"
	FlowTranslate Flow = "translate"
	FlowRecommend Flow = "recommend"
	FlowAssistant Flow = "assistant"
)

// State is a named state within a flow's state machine.
type State string

const (
	StateNone State = ""

	// Quiz flow states.
	StateSelectingTopic    State = "selecting_topic"
	StateAnsweringQuestion State = "answering_question"

	// Persona flow states.
	StateSelectingPersona State = "selecting_persona"
	StateChatting         State = "chatting"

	// Translate flow states.
	StateSelectingLanguage State = "selecting_language"
	StateAwaitingText      State = "awaiting_text"

	// Recommend flow states.
	StateSelectingCategory State = "selecting_category"
	StateSelectingGenre    State = "selecting_genre"

	// Assistant flow states.
	StateAwaitingQuestion State = "awaiting_question"
)

// Session holds one user's active conversation state. The active flow's
// record is allocated by Manager.Enter and is never nil while that flow is
// active; records of inactive flows are nil. Handlers mutate records only
// through Manager.UpdateFlow, which rejects the write once the user has
// moved to a different flow.
type Session struct {
	UserID    int64
	Flow      Flow
	State     State
	UpdatedAt time.Time

	Quiz      *QuizState
	Persona   *PersonaState
	Translate *TranslateState
	Recommend *RecommendState
}

// QuizState carries the quiz flow's variables.
type QuizState struct {
	Topic         string
	Question      string
	CorrectAnswer string
	Score         int
	Total         int
}

// RecordAnswer evaluates the user's free-text answer against the stored
// correct letter and updates the counters: Total always increments by one,
// Score only on a correct answer. Reports whether the answer was correct.
func (q *QuizState) RecordAnswer(answer string) bool {
	correct := quiz.Evaluate(answer, q.CorrectAnswer)

	q.Total++
	if correct {
		q.Score++
	}
	return correct
}

// snapshot returns a deep copy for lock-free reading.
func (s *Session) snapshot() *Session {
	out := *s
	if s.Quiz != nil {
		q := *s.Quiz
		out.Quiz = &q
	}
	if s.Persona != nil {
		p := *s.Persona
		out.Persona = &p
	}
	if s.Translate != nil {
		t := *s.Translate
		out.Translate = &t
	}
	if s.Recommend != nil {
		r := *s.Recommend
		out.Recommend = &r
	}
	return &out
}

// PersonaState carries the persona-chat flow's variables.
type PersonaState struct {
	Persona string
}

// TranslateState carries the translation flow's variables.
type TranslateState struct {
	TargetLang string
}

// RecommendState carries the recommendation flow's variables.
type RecommendState struct {
	Category   string
	Genre      string
	GenreIndex int
}
