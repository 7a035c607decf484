// Package store is the in-process entity store backing the REST API.
//
// It owns three keyed mappings (categories, transactions, users) with
// per-kind auto-incrementing identifiers. Identifiers start at 1 and are
// never reused, even after deletion, so ascending-id iteration equals
// insertion order. Durability is process lifetime.
//
// The store never returns errors: absence is an absent value. Validation is
// the API surface's responsibility.
package store

import (
	"slices"
	"sync"
	"time"

	"fintrack/internal/core"
)

// Store holds all entities behind a single lock. Every mutation together
// with its counter increment runs under the write lock; reads take the
// shared lock and return copies, never interior references.
type Store struct {
	mu sync.RWMutex

	categories   map[int64]core.Category
	transactions map[int64]core.Transaction
	users        map[int64]core.User

	nextCategoryID    int64
	nextTransactionID int64
	nextUserID        int64
}

// CategoryPatch carries the fields of a partial category update. Nil fields
// keep their prior values.
type CategoryPatch struct {
	Name  *string
	Color *string
	Type  *core.Type
}

// TransactionPatch carries the fields of a partial transaction update.
type TransactionPatch struct {
	Amount      *core.Money
	Date        *time.Time
	Description *string
	Type        *core.Type
	CategoryID  *int64
	Notes       *string
}

// New creates a store seeded with the fixed default categories.
func New() *Store {
	s := &Store{
		categories:        make(map[int64]core.Category),
		transactions:      make(map[int64]core.Transaction),
		users:             make(map[int64]core.User),
		nextCategoryID:    1,
		nextTransactionID: 1,
		nextUserID:        1,
	}
	s.seedCategories()
	return s
}

func (s *Store) seedCategories() {
	defaults := []core.Category{
		{Name: "Food", Color: "#3b82f6", Type: core.TypeExpense},
		{Name: "Housing", Color: "#8b5cf6", Type: core.TypeExpense},
		{Name: "Transport", Color: "#ec4899", Type: core.TypeExpense},
		{Name: "Entertainment", Color: "#f59e0b", Type: core.TypeExpense},
		{Name: "Other", Color: "#10b981", Type: core.TypeExpense},
		{Name: "Income", Color: "#10b981", Type: core.TypeIncome},
	}
	for _, c := range defaults {
		s.CreateCategory(c)
	}
}

// CreateCategory assigns the next category id and stores a copy.
func (s *Store) CreateCategory(c core.Category) core.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories[c.ID] = c
	return c
}

// Categories returns all categories in insertion order.
func (s *Store) Categories() []core.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Category, 0, len(s.categories))
	for _, id := range sortedIDs(s.categories) {
		out = append(out, s.categories[id])
	}
	return out
}

// CategoryByID returns the category and whether it exists.
func (s *Store) CategoryByID(id int64) (core.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	return c, ok
}

// UpdateCategory merges the supplied fields into an existing category.
// Returns false when no category has the given id.
func (s *Store) UpdateCategory(id int64, patch CategoryPatch) (core.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return core.Category{}, false
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Color != nil {
		c.Color = *patch.Color
	}
	if patch.Type != nil {
		c.Type = *patch.Type
	}
	s.categories[id] = c
	return c, true
}

// DeleteCategory removes the category if present and reports whether a
// record was removed. Transactions referencing it are left untouched; the
// read-time join simply stops resolving.
func (s *Store) DeleteCategory(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.categories[id]
	delete(s.categories, id)
	return ok
}

// CreateTransaction assigns the next transaction id and stores a copy.
func (s *Store) CreateTransaction(t core.Transaction) core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.nextTransactionID
	s.nextTransactionID++
	s.transactions[t.ID] = t
	return t
}

// Transactions returns every transaction in insertion order, each joined
// with its referenced category.
func (s *Store) Transactions() []core.TransactionWithCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.TransactionWithCategory, 0, len(s.transactions))
	for _, id := range sortedIDs(s.transactions) {
		out = append(out, s.joinLocked(s.transactions[id]))
	}
	return out
}

// TransactionByID returns the joined form of a transaction.
func (s *Store) TransactionByID(id int64) (core.TransactionWithCategory, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.transactions[id]
	if !ok {
		return core.TransactionWithCategory{}, false
	}
	return s.joinLocked(t), true
}

// UpdateTransaction merges the supplied fields into an existing transaction.
// The merge is a shallow field-by-field overwrite; unsupplied fields keep
// their prior values. Returns false when no transaction has the given id.
func (s *Store) UpdateTransaction(id int64, patch TransactionPatch) (core.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.transactions[id]
	if !ok {
		return core.Transaction{}, false
	}
	if patch.Amount != nil {
		t.Amount = *patch.Amount
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Type != nil {
		t.Type = *patch.Type
	}
	if patch.CategoryID != nil {
		cid := *patch.CategoryID
		t.CategoryID = &cid
	}
	if patch.Notes != nil {
		notes := *patch.Notes
		t.Notes = &notes
	}
	s.transactions[id] = t
	return t, true
}

// DeleteTransaction removes the transaction if present and reports whether
// a record was removed.
func (s *Store) DeleteTransaction(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.transactions[id]
	delete(s.transactions, id)
	return ok
}

// CreateUser assigns the next user id and stores a copy.
func (s *Store) CreateUser(u core.User) core.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.nextUserID
	s.nextUserID++
	s.users[u.ID] = u
	return u
}

// UserByID returns the user and whether it exists.
func (s *Store) UserByID(id int64) (core.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok
}

// UserByUsername scans for a user with the given username.
func (s *Store) UserByUsername(username string) (core.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.users) {
		if s.users[id].Username == username {
			return s.users[id], true
		}
	}
	return core.User{}, false
}

// joinLocked resolves the weak category reference. Callers hold s.mu.
func (s *Store) joinLocked(t core.Transaction) core.TransactionWithCategory {
	joined := core.TransactionWithCategory{Transaction: t}
	if t.CategoryID != nil {
		if c, ok := s.categories[*t.CategoryID]; ok {
			joined.Category = &c
		}
	}
	return joined
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
