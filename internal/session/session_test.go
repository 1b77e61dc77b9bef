package session_test

import (
	"testing"
	"time"

	"github.com/avdeyev/umnikbot/internal/session"
)

func TestQuizStateRecordAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		correct     string
		answer      string
		wantCorrect bool
	}{
		{name: "Exact match", correct: "B", answer: "B", wantCorrect: true},
		{name: "Lowercase answer", correct: "B", answer: "b", wantCorrect: true},
		{name: "Answer with whitespace", correct: "C", answer: "  c \n", wantCorrect: true},
		{name: "Wrong letter", correct: "A", answer: "D", wantCorrect: false},
		{name: "Full word instead of letter", correct: "A", answer: "Вариант A", wantCorrect: false},
		{name: "Empty answer", correct: "A", answer: "", wantCorrect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := &session.QuizState{CorrectAnswer: tt.correct}
			got := q.RecordAnswer(tt.answer)
			if got != tt.wantCorrect {
				t.Errorf("RecordAnswer(%q) = %v, want %v", tt.answer, got, tt.wantCorrect)
			}
			if q.Total != 1 {
				t.Errorf("Total = %d, want 1", q.Total)
			}
			wantScore := 0
			if tt.wantCorrect {
				wantScore = 1
			}
			if q.Score != wantScore {
				t.Errorf("Score = %d, want %d", q.Score, wantScore)
			}
		})
	}
}

func TestQuizStateCountersAccumulate(t *testing.T) {
	t.Parallel()

	q := &session.QuizState{}

	q.CorrectAnswer = "B"
	if !q.RecordAnswer("b") {
		t.Error("expected first answer to be correct")
	}
	q.CorrectAnswer = "C"
	if q.RecordAnswer("a") {
		t.Error("expected second answer to be wrong")
	}

	if q.Score != 1 || q.Total != 2 {
		t.Errorf("counters = %d/%d, want 1/2", q.Score, q.Total)
	}
}

func TestManagerEnterDiscardsPreviousFlow(t *testing.T) {
	t.Parallel()

	m := session.NewManager(nil)
	const userID = int64(42)

	m.Enter(userID, session.FlowQuiz, session.StateSelectingTopic)
	m.Update(userID, func(s *session.Session) {
		s.Quiz.Score = 3
		s.Quiz.Total = 4
	})

	sess := m.Enter(userID, session.FlowTranslate, session.StateSelectingLanguage)
	if sess.Flow != session.FlowTranslate {
		t.Errorf("Flow = %q, want %q", sess.Flow, session.FlowTranslate)
	}
	if sess.Quiz != nil {
		t.Error("quiz record survived entering a new flow")
	}
	if sess.Translate == nil {
		t.Error("translate record not allocated on entry")
	}
}

func TestManagerEnterInitializesFlowRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flow  session.Flow
		state session.State
		check func(*session.Session) bool
	}{
		{"Quiz", session.FlowQuiz, session.StateSelectingTopic, func(s *session.Session) bool { return s.Quiz != nil }},
		{"Persona", session.FlowPersona, session.StateSelectingPersona, func(s *session.Session) bool { return s.Persona != nil }},
		{"Translate", session.FlowTranslate, session.StateSelectingLanguage, func(s *session.Session) bool { return s.Translate != nil }},
		{"Recommend", session.FlowRecommend, session.StateSelectingCategory, func(s *session.Session) bool { return s.Recommend != nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := session.NewManager(nil)
			sess := m.Enter(1, tt.flow, tt.state)
			if !tt.check(sess) {
				t.Errorf("flow %q entered without its record", tt.flow)
			}
		})
	}
}

func TestManagerUpdateFlowRejectsStaleWrites(t *testing.T) {
	t.Parallel()

	m := session.NewManager(nil)
	const userID = int64(42)

	m.Enter(userID, session.FlowQuiz, session.StateAnsweringQuestion)
	m.UpdateFlow(userID, session.FlowQuiz, func(s *session.Session) {
		s.Quiz.CorrectAnswer = "B"
	})

	// The user opens the persona menu while their answer is still being
	// graded on another goroutine.
	m.Enter(userID, session.FlowPersona, session.StateSelectingPersona)

	ran := m.UpdateFlow(userID, session.FlowQuiz, func(s *session.Session) {
		s.Quiz.RecordAnswer("B")
	})
	if ran {
		t.Error("quiz write applied after the user switched to another flow")
	}

	sess := m.Get(userID)
	if sess == nil || sess.Flow != session.FlowPersona {
		t.Fatalf("session = %+v, want persona flow", sess)
	}
	if sess.Quiz != nil {
		t.Error("stale quiz record present in persona session")
	}
}

func TestManagerClearFlow(t *testing.T) {
	t.Parallel()

	m := session.NewManager(nil)
	const userID = int64(42)

	m.Enter(userID, session.FlowQuiz, session.StateAnsweringQuestion)

	if m.ClearFlow(userID, session.FlowPersona) {
		t.Error("ClearFlow removed a session belonging to another flow")
	}
	if m.Get(userID) == nil {
		t.Fatal("session removed by mismatched ClearFlow")
	}

	if !m.ClearFlow(userID, session.FlowQuiz) {
		t.Error("ClearFlow did not remove the matching flow's session")
	}
	if m.Get(userID) != nil {
		t.Error("session survived matching ClearFlow")
	}
}

func TestManagerGetReturnsSnapshot(t *testing.T) {
	t.Parallel()

	m := session.NewManager(nil)
	const userID = int64(42)

	m.Enter(userID, session.FlowQuiz, session.StateAnsweringQuestion)
	snap := m.Get(userID)
	snap.Quiz.Score = 99

	if got := m.Get(userID).Quiz.Score; got != 0 {
		t.Errorf("mutating a snapshot leaked into the stored session: Score = %d", got)
	}
}

func TestManagerIsolatesUsers(t *testing.T) {
	t.Parallel()

	m := session.NewManager(nil)

	m.Enter(1, session.FlowQuiz, session.StateAnsweringQuestion)
	m.Enter(2, session.FlowPersona, session.StateChatting)

	if got := m.Get(1).Flow; got != session.FlowQuiz {
		t.Errorf("user 1 flow = %q, want %q", got, session.FlowQuiz)
	}
	if got := m.Get(2).Flow; got != session.FlowPersona {
		t.Errorf("user 2 flow = %q, want %q", got, session.FlowPersona)
	}

	m.Clear(1)
	if m.Get(1) != nil {
		t.Error("user 1 session survived Clear")
	}
	if m.Get(2) == nil {
		t.Error("clearing user 1 dropped user 2's session")
	}
}

func TestManagerGetUnknownUser(t *testing.T) {
	t.Parallel()

	m := session.NewManager(nil)
	if m.Get(99) != nil {
		t.Error("expected nil session for unknown user")
	}
}

func TestManagerUpdateRefreshesTimestamp(t *testing.T) {
	t.Parallel()

	m := session.NewManager(nil)
	sess := m.Enter(7, session.FlowAssistant, session.StateAwaitingQuestion)
	before := sess.UpdatedAt

	time.Sleep(5 * time.Millisecond)
	m.Update(7, func(s *session.Session) {})

	if got := m.Get(7).UpdatedAt; !got.After(before) {
		t.Errorf("UpdatedAt not refreshed: %v <= %v", got, before)
	}
}

func TestManagerSweepIdle(t *testing.T) {
	t.Parallel()

	m := session.NewManager(nil)
	m.Enter(1, session.FlowQuiz, session.StateSelectingTopic)
	m.Enter(2, session.FlowPersona, session.StateChatting)

	time.Sleep(20 * time.Millisecond)
	m.Update(2, func(s *session.Session) {})

	removed := m.SweepIdle(10 * time.Millisecond)
	if removed != 1 {
		t.Errorf("SweepIdle() = %d, want 1", removed)
	}
	if m.Get(1) != nil {
		t.Error("idle session survived sweep")
	}
	if m.Get(2) == nil {
		t.Error("fresh session was swept")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}
