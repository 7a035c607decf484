package core

import (
	"errors"
	"time"
)

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

type (
	// Type classifies a category or transaction as money in or money out.
	Type string

	// Category is a named grouping with a presentation color.
	Category struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
		Type  Type   `json:"type"`
	}

	// Transaction is a single recorded money movement. CategoryID is a weak
	// reference: it is never checked against the category set, and deleting a
	// category leaves it dangling.
	Transaction struct {
		ID          int64     `json:"id"`
		Amount      Money     `json:"amount"`
		Date        time.Time `json:"date"`
		Description string    `json:"description"`
		Type        Type      `json:"type"`
		CategoryID  *int64    `json:"categoryId,omitempty"`
		Notes       *string   `json:"notes,omitempty"`
	}

	// TransactionWithCategory joins a transaction to its referenced category.
	// It is computed on every read, never stored. Category is nil when the
	// reference is absent or dangling.
	TransactionWithCategory struct {
		Transaction
		Category *Category `json:"category,omitempty"`
	}

	// User is the auth-adjacent entity. Nothing else in the service reads it.
	User struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
		Password string `json:"-"`
	}
)

var (
	ErrInvalidType      = errors.New("type must be income or expense")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyDate        = errors.New("empty date")
)

// Valid reports whether t is one of the two known types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}
