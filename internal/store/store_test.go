package store

import (
	"testing"
	"time"

	"fintrack/internal/core"
)

func int64Ptr(v int64) *int64    { return &v }
func strPtr(s string) *string    { return &s }
func typePtr(t core.Type) *core.Type { return &t }

func TestSeedCategories(t *testing.T) {
	s := New()
	cats := s.Categories()
	if len(cats) != 6 {
		t.Fatalf("expected 6 seed categories, got %d", len(cats))
	}

	wantNames := []string{"Food", "Housing", "Transport", "Entertainment", "Other", "Income"}
	for i, name := range wantNames {
		if cats[i].Name != name {
			t.Errorf("category %d: got %q, want %q", i, cats[i].Name, name)
		}
		if cats[i].ID != int64(i+1) {
			t.Errorf("category %q: got id %d, want %d", name, cats[i].ID, i+1)
		}
	}
	for _, c := range cats[:5] {
		if c.Type != core.TypeExpense {
			t.Errorf("category %q: got type %q, want expense", c.Name, c.Type)
		}
	}
	if cats[5].Type != core.TypeIncome {
		t.Errorf("Income category: got type %q, want income", cats[5].Type)
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	s := New()
	created := s.CreateTransaction(core.Transaction{
		Amount:      core.MoneyFromFloat(45),
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Description: "groceries",
		Type:        core.TypeExpense,
		CategoryID:  int64Ptr(1),
	})
	if created.ID != 1 {
		t.Fatalf("first transaction id = %d, want 1", created.ID)
	}

	got, ok := s.TransactionByID(created.ID)
	if !ok {
		t.Fatalf("created transaction not found")
	}
	if got.Description != "groceries" || !got.Amount.Equal(created.Amount) ||
		!got.Date.Equal(created.Date) || got.Type != core.TypeExpense {
		t.Fatalf("round trip mismatch: %+v vs %+v", got.Transaction, created)
	}
	if got.Category == nil || got.Category.Name != "Food" {
		t.Fatalf("expected joined Food category, got %+v", got.Category)
	}
}

func TestDeleteTransactionTwice(t *testing.T) {
	s := New()
	created := s.CreateTransaction(core.Transaction{
		Amount: core.MoneyFromFloat(10), Date: time.Now(),
		Description: "x", Type: core.TypeExpense,
	})

	if !s.DeleteTransaction(created.ID) {
		t.Fatalf("first delete should report removal")
	}
	if s.DeleteTransaction(created.ID) {
		t.Fatalf("second delete should report nothing removed")
	}
	if _, ok := s.TransactionByID(created.ID); ok {
		t.Fatalf("deleted transaction still found")
	}
}

func TestIDsNeverReused(t *testing.T) {
	s := New()
	first := s.CreateTransaction(core.Transaction{
		Amount: core.MoneyFromFloat(1), Date: time.Now(),
		Description: "a", Type: core.TypeExpense,
	})
	s.DeleteTransaction(first.ID)

	second := s.CreateTransaction(core.Transaction{
		Amount: core.MoneyFromFloat(2), Date: time.Now(),
		Description: "b", Type: core.TypeExpense,
	})
	if second.ID != first.ID+1 {
		t.Fatalf("id after delete = %d, want %d", second.ID, first.ID+1)
	}
}

func TestUpdateTransactionPartialMerge(t *testing.T) {
	s := New()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	created := s.CreateTransaction(core.Transaction{
		Amount:      core.MoneyFromFloat(45),
		Date:        date,
		Description: "original",
		Type:        core.TypeExpense,
		CategoryID:  int64Ptr(2),
	})

	updated, ok := s.UpdateTransaction(created.ID, TransactionPatch{
		Description: strPtr("renamed"),
	})
	if !ok {
		t.Fatalf("update reported not found")
	}
	if updated.Description != "renamed" {
		t.Fatalf("description = %q, want renamed", updated.Description)
	}
	if !updated.Amount.Equal(created.Amount) || !updated.Date.Equal(date) ||
		updated.Type != core.TypeExpense ||
		updated.CategoryID == nil || *updated.CategoryID != 2 {
		t.Fatalf("unsupplied fields changed: %+v", updated)
	}

	// A fuller patch overwrites exactly what it carries.
	updated, ok = s.UpdateTransaction(created.ID, TransactionPatch{
		Amount: moneyPtr(core.MoneyFromFloat(60)),
		Type:   typePtr(core.TypeIncome),
	})
	if !ok || !updated.Amount.Equal(core.MoneyFromFloat(60)) || updated.Type != core.TypeIncome {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Description != "renamed" {
		t.Fatalf("description lost on second patch: %q", updated.Description)
	}
}

func moneyPtr(m core.Money) *core.Money { return &m }

func TestUpdateMissingTransaction(t *testing.T) {
	s := New()
	if _, ok := s.UpdateTransaction(999, TransactionPatch{Description: strPtr("x")}); ok {
		t.Fatalf("update of missing id should report not found")
	}
}

func TestDeleteCategoryDoesNotCascade(t *testing.T) {
	s := New()
	created := s.CreateTransaction(core.Transaction{
		Amount: core.MoneyFromFloat(5), Date: time.Now(),
		Description: "dangling", Type: core.TypeExpense,
		CategoryID: int64Ptr(1),
	})

	if !s.DeleteCategory(1) {
		t.Fatalf("seed category delete should succeed")
	}

	got, ok := s.TransactionByID(created.ID)
	if !ok {
		t.Fatalf("transaction disappeared with its category")
	}
	if got.CategoryID == nil || *got.CategoryID != 1 {
		t.Fatalf("categoryId nulled out: %+v", got.CategoryID)
	}
	if got.Category != nil {
		t.Fatalf("dangling reference should not resolve, got %+v", got.Category)
	}
}

func TestCategoryCRUD(t *testing.T) {
	s := New()
	created := s.CreateCategory(core.Category{Name: "Travel", Color: "#000000", Type: core.TypeExpense})
	if created.ID != 7 {
		t.Fatalf("new category id = %d, want 7 after seeds", created.ID)
	}

	updated, ok := s.UpdateCategory(created.ID, CategoryPatch{Color: strPtr("#ffffff")})
	if !ok || updated.Color != "#ffffff" || updated.Name != "Travel" {
		t.Fatalf("unexpected update result: %+v ok=%v", updated, ok)
	}

	if _, ok := s.CategoryByID(999); ok {
		t.Fatalf("missing category reported found")
	}
	if _, ok := s.UpdateCategory(999, CategoryPatch{}); ok {
		t.Fatalf("update of missing category should report not found")
	}
	if s.DeleteCategory(999) {
		t.Fatalf("delete of missing category should report nothing removed")
	}
}

func TestTransactionsInsertionOrder(t *testing.T) {
	s := New()
	for _, desc := range []string{"a", "b", "c"} {
		s.CreateTransaction(core.Transaction{
			Amount: core.MoneyFromFloat(1), Date: time.Now(),
			Description: desc, Type: core.TypeExpense,
		})
	}
	txs := s.Transactions()
	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txs))
	}
	for i, desc := range []string{"a", "b", "c"} {
		if txs[i].Description != desc {
			t.Fatalf("position %d: got %q, want %q", i, txs[i].Description, desc)
		}
	}
}

func TestUsers(t *testing.T) {
	s := New()
	created := s.CreateUser(core.User{Username: "alice", Password: "secret"})
	if created.ID != 1 {
		t.Fatalf("first user id = %d, want 1", created.ID)
	}

	byName, ok := s.UserByUsername("alice")
	if !ok || byName.ID != created.ID {
		t.Fatalf("lookup by username failed: %+v ok=%v", byName, ok)
	}
	if _, ok := s.UserByUsername("bob"); ok {
		t.Fatalf("unknown username reported found")
	}
	if got, ok := s.UserByID(created.ID); !ok || got.Username != "alice" {
		t.Fatalf("lookup by id failed: %+v ok=%v", got, ok)
	}
}
