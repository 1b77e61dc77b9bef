package session

import (
	"log/slog"
	"sync"
	"time"
)

// Manager owns the mapping from user ID to Session. It is injected into the
// handlers rather than held as package state, so tests get a fresh mapping
// and a durable store could be swapped in later. All methods are safe for
// concurrent use; per-user mutation happens under the manager's lock, so two
// racing updates for the same user never corrupt each other's counters.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
	log      *slog.Logger
}

// NewManager creates an empty session manager.
func NewManager(log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		sessions: make(map[int64]*Session),
		log:      log.With("component", "session_manager"),
	}
}

// Get returns a snapshot of the user's session, or nil when the user has no
// active flow. The snapshot is the caller's own copy: handlers read it for
// flow and state checks without holding the lock, and all mutation goes
// through UpdateFlow against the live session.
func (m *Manager) Get(userID int64) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[userID]
	if !ok {
		return nil
	}
	return sess.snapshot()
}

// Enter starts a flow for the user in its initial state, discarding any
// previous session. The flow's record is allocated here, under the same lock
// acquisition: no session is ever observable with its active flow's record
// nil. Handlers run on concurrent goroutines, so a two-step
// enter-then-initialize would leave a window where another handler sees the
// half-built session.
func (m *Manager) Enter(userID int64, flow Flow, state State) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.sessions[userID]; ok && old.Flow != flow {
		m.log.Debug("Abandoning previous flow", "user_id", userID, "old_flow", old.Flow, "new_flow", flow)
	}

	sess := &Session{
		UserID:    userID,
		Flow:      flow,
		State:     state,
		UpdatedAt: time.Now(),
	}
	switch flow {
	case FlowQuiz:
		sess.Quiz = &QuizState{}
	case FlowPersona:
		sess.Persona = &PersonaState{}
	case FlowTranslate:
		sess.Translate = &TranslateState{}
	case FlowRecommend:
		sess.Recommend = &RecommendState{}
	}
	m.sessions[userID] = sess
	return sess
}

// Update applies fn to the user's session under the manager's lock and
// refreshes its idle timestamp. It is a no-op when the user has no session.
func (m *Manager) Update(userID int64, fn func(*Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[userID]
	if !ok {
		return
	}
	fn(sess)
	sess.UpdatedAt = time.Now()
}

// UpdateFlow applies fn only while the user's session is still in the given
// flow, and reports whether fn ran. Handlers use this instead of Update for
// every record mutation: a user can enter a different flow between a
// handler's session lookup and its write, and the stale write must miss
// rather than dereference the new flow's nil record.
func (m *Manager) UpdateFlow(userID int64, flow Flow, fn func(*Session)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[userID]
	if !ok || sess.Flow != flow {
		return false
	}
	fn(sess)
	sess.UpdatedAt = time.Now()
	return true
}

// Clear removes the user's session entirely. Subsequent events from the
// same user are treated as having no active flow.
func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// ClearFlow removes the user's session only if it is still in the given
// flow, and reports whether it was removed. A finish button pressed after
// the user already started another flow must not destroy that flow.
func (m *Manager) ClearFlow(userID int64, flow Flow) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[userID]
	if !ok || sess.Flow != flow {
		return false
	}
	delete(m.sessions, userID)
	return true
}

// SweepIdle removes sessions that have not been touched for maxIdle and
// returns how many were dropped. Affected users see the stale-button hint
// on their next interaction.
func (m *Manager) SweepIdle(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	removed := 0
	for id, sess := range m.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		m.log.Info("Swept idle sessions", "removed", removed, "remaining", len(m.sessions))
	}
	return removed
}

// Len reports the number of active sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
