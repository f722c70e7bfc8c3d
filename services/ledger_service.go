package services

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Ipannazim/Calorie-Tracker/models"
	"github.com/Ipannazim/Calorie-Tracker/utils"
)

// LedgerState tracks where the ledger is in its load lifecycle.
type LedgerState int

const (
	StateUnloaded LedgerState = iota
	StateLoading
	StateReady
)

// Summary is the running total against the goal. PercentOfGoal is clamped
// to [0,100]; the raw overage stays recoverable as Total-Goal.
type Summary struct {
	Total         float64 `json:"total"`
	Goal          int     `json:"goal"`
	PercentOfGoal float64 `json:"percent_of_goal"`
}

// DailyLedger holds the session's view of what one user ate on one day.
// It never mixes days or users: every entry it holds matches its owner and
// date. Mutations go to the store first and touch memory only after the
// store confirms, so the screen never shows an entry that is not durable.
//
// Operations are serialized by the internal mutex; the ledger is not
// reentrant and there is no cancellation once a store round trip is issued.
type DailyLedger struct {
	mu      sync.Mutex
	store   LedgerStore
	catalog *Catalog
	ownerID string
	date    string
	state   LedgerState
	entries []models.Entry
}

func NewDailyLedger(store LedgerStore, catalog *Catalog, ownerID, date string) *DailyLedger {
	return &DailyLedger{
		store:   store,
		catalog: catalog,
		ownerID: ownerID,
		date:    date,
	}
}

func (l *DailyLedger) Date() string { return l.date }

func (l *DailyLedger) State() LedgerState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Entries returns a copy of the current sequence in insertion order.
func (l *DailyLedger) Entries() []models.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Load fetches the authoritative entry list from the store and replaces the
// in-memory sequence wholesale. It never merges with stale local state. On
// failure the previous contents are kept (empty if this was the first load)
// and the caller must surface the error instead of showing a silently
// unrefreshed view.
func (l *DailyLedger) Load() ([]models.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadLocked()
}

func (l *DailyLedger) loadLocked() ([]models.Entry, error) {
	prev := l.state
	l.state = StateLoading

	entries, err := l.store.ListEntries(l.ownerID, l.date)
	if err != nil {
		l.state = prev
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	l.entries = entries
	l.state = StateReady

	out := make([]models.Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// Add looks foodID up in the catalog, computes calories, persists the
// candidate entry and appends it to memory only once the store has
// confirmed creation and assigned an id. A failed write leaves the ledger
// exactly as it was.
func (l *DailyLedger) Add(foodID string, amount float64) (models.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	food, ok := l.catalog.Lookup(foodID)
	if !ok {
		return models.Entry{}, fmt.Errorf("%w: unknown food %q", ErrValidation, foodID)
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return models.Entry{}, fmt.Errorf("%w: amount must be a positive number", ErrValidation)
	}

	cals := utils.ComputeCalories(food.Unit, amount, food.Cals)
	if math.IsNaN(cals) || math.IsInf(cals, 0) {
		return models.Entry{}, fmt.Errorf("%w: calories out of range", ErrValidation)
	}

	// Round exactly once, at write time. The stored value is trusted
	// from here on.
	entry := models.Entry{
		UserID:    l.ownerID,
		Name:      food.Name,
		Unit:      food.Unit,
		Amount:    amount,
		Cals:      math.Round(cals),
		Date:      l.date,
		Timestamp: time.Now().UnixMilli(),
	}

	if err := l.store.CreateEntry(&entry); err != nil {
		return models.Entry{}, fmt.Errorf("%w: create entry: %v", ErrPersistence, err)
	}

	l.entries = append(l.entries, entry)
	return entry, nil
}

// Remove deletes the identified entry. The id must be present in the
// in-memory sequence; memory is updated only after the store confirms the
// delete, so a failed delete leaves the entry visible.
func (l *DailyLedger) Remove(entryID uint) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i, e := range l.entries {
		if e.ID == entryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, entryID)
	}

	if err := l.store.DeleteEntry(entryID); err != nil {
		return fmt.Errorf("%w: delete entry %d: %v", ErrPersistence, entryID, err)
	}

	l.entries = append(l.entries[:idx], l.entries[idx+1:]...)
	return nil
}

// ClearAll deletes every entry for the ledger's day, one store delete per
// row: the store offers no batch primitive, so the operation is not atomic
// and can fail partway. Whatever happens, the ledger re-loads afterward and
// trusts the store's view rather than its own partial bookkeeping. A partial
// failure surfaces as ErrPersistence after the reload.
func (l *DailyLedger) ClearAll() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// A never-loaded ledger holds nothing in memory even when the store
	// has rows for the day; fetch them first so the clear hits the whole
	// day, not just what this session happens to have seen.
	if l.state == StateUnloaded {
		if _, err := l.loadLocked(); err != nil {
			return err
		}
	}

	var firstErr error
	for _, e := range l.entries {
		if err := l.store.DeleteEntry(e.ID); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%w: delete entry %d: %v", ErrPersistence, e.ID, err)
		}
	}

	if _, err := l.loadLocked(); err != nil {
		if firstErr != nil {
			return firstErr
		}
		return err
	}
	return firstErr
}

// Summarize totals the calories currently held against the given goal.
// Order-independent; clamped so the percentage never leaves [0,100].
func (l *DailyLedger) Summarize(goal int) Summary {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total float64
	for _, e := range l.entries {
		total += e.Cals
	}

	var pct float64
	if goal > 0 {
		pct = total / float64(goal) * 100
		if pct > 100 {
			pct = 100
		}
	}

	return Summary{Total: total, Goal: goal, PercentOfGoal: pct}
}
