package services

import (
	"errors"

	"github.com/Ipannazim/Calorie-Tracker/models"
)

var errStoreDown = errors.New("store unreachable")

// fakeStore is an in-memory LedgerStore with switchable failures, standing
// in for the database in ledger and session tests.
type fakeStore struct {
	nextID  uint
	order   []uint
	entries map[uint]models.Entry
	goals   map[string]int

	failCreate  bool
	failList    bool
	failSetGoal bool
	failGetGoal bool
	// delete fails only for ids in this set; nil means never fail
	failDelete map[uint]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		entries: make(map[uint]models.Entry),
		goals:   make(map[string]int),
	}
}

func (f *fakeStore) CreateEntry(e *models.Entry) error {
	if f.failCreate {
		return errStoreDown
	}
	f.nextID++
	e.ID = f.nextID
	f.entries[e.ID] = *e
	f.order = append(f.order, e.ID)
	return nil
}

func (f *fakeStore) ListEntries(userID, date string) ([]models.Entry, error) {
	if f.failList {
		return nil, errStoreDown
	}
	var out []models.Entry
	for _, id := range f.order {
		e, ok := f.entries[id]
		if ok && e.UserID == userID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) DeleteEntry(id uint) error {
	if f.failDelete[id] {
		return errStoreDown
	}
	delete(f.entries, id)
	return nil
}

func (f *fakeStore) GetGoal(userID string) (int, error) {
	if f.failGetGoal {
		return 0, errStoreDown
	}
	if g, ok := f.goals[userID]; ok {
		return g, nil
	}
	return DefaultDailyGoal, nil
}

func (f *fakeStore) SetGoal(userID string, goal int) error {
	if f.failSetGoal {
		return errStoreDown
	}
	f.goals[userID] = goal
	return nil
}
