package services

import (
	"fmt"
	"sync"

	"github.com/Ipannazim/Calorie-Tracker/utils"
)

// Session is the per-login unit of state: one owner, their ledger for the
// current day, and their standing goal. It replaces what the page scripts
// used to keep in page-global variables; nothing here is shared between
// users.
type Session struct {
	UserID string

	mu     sync.Mutex
	ledger *DailyLedger
	goal   int

	store   LedgerStore
	catalog *Catalog
}

func NewSession(store LedgerStore, catalog *Catalog, userID string) *Session {
	return &Session{
		UserID:  userID,
		ledger:  NewDailyLedger(store, catalog, userID, utils.TodayKey()),
		goal:    DefaultDailyGoal,
		store:   store,
		catalog: catalog,
	}
}

// Ledger returns the ledger for today, swapping in a fresh one if the
// calendar day has rolled over since the last call. The old day's entries
// are never carried across.
func (s *Session) Ledger() *DailyLedger {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := utils.TodayKey()
	if s.ledger.Date() != today {
		s.ledger = NewDailyLedger(s.store, s.catalog, s.UserID, today)
	}
	return s.ledger
}

// LoadGoal refreshes the goal from the store. On failure the last confirmed
// value stands, so Summary always has a goal to divide by.
func (s *Session) LoadGoal() error {
	goal, err := s.store.GetGoal(s.UserID)
	if err != nil {
		return fmt.Errorf("%w: get goal: %v", ErrLoad, err)
	}
	s.mu.Lock()
	s.goal = goal
	s.mu.Unlock()
	return nil
}

func (s *Session) Goal() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goal
}

// SetGoal clamps to a floor of 0, persists, and only then adopts the new
// value; a failed write keeps the old goal.
func (s *Session) SetGoal(goal int) error {
	if goal < 0 {
		goal = 0
	}
	if err := s.store.SetGoal(s.UserID, goal); err != nil {
		return fmt.Errorf("%w: set goal: %v", ErrPersistence, err)
	}
	s.mu.Lock()
	s.goal = goal
	s.mu.Unlock()
	return nil
}

// Summary answers the dashboard numbers for the current ledger contents.
func (s *Session) Summary() Summary {
	return s.Ledger().Summarize(s.Goal())
}

// SessionManager hands out one Session per logged-in user. Sessions are
// created lazily so a server restart does not log anyone out; state is
// rebuilt from the store on first use.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	store   LedgerStore
	catalog *Catalog
}

func NewSessionManager(store LedgerStore, catalog *Catalog) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		store:    store,
		catalog:  catalog,
	}
}

// Get returns the user's session, creating it on first use. A freshly
// created session pulls the goal from the store; if that fails it starts
// on the default and the next LoadGoal corrects it.
func (m *SessionManager) Get(userID string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[userID]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok = m.sessions[userID]; ok {
		return s
	}
	s = NewSession(m.store, m.catalog, userID)
	_ = s.LoadGoal()
	m.sessions[userID] = s
	return s
}

// Drop forgets the user's session, e.g. on logout.
func (m *SessionManager) Drop(userID string) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()
}
