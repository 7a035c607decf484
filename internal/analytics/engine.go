// Package analytics derives spending aggregates from the entity store.
//
// Every computation is a pure read that rescans the full transaction set.
// That is the documented behavior at this data scale; no incremental
// aggregates are maintained on write.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/core"
	"fintrack/internal/store"
)

// budgetCeiling is the fixed reference amount, in currency units, against
// which expense utilization is computed.
const budgetCeiling = 3000

// MonthTotal is the expense sum for one calendar month.
type MonthTotal struct {
	Month  string     `json:"month"`
	Amount core.Money `json:"amount"`
}

// CategoryTotal is the expense sum for one expense-type category.
type CategoryTotal struct {
	CategoryID int64      `json:"categoryId"`
	Amount     core.Money `json:"amount"`
}

// Summary aggregates totals over all transactions. BudgetUsed is the
// percentage of the budget ceiling consumed by expenses, capped at 100.
type Summary struct {
	TotalExpenses core.Money `json:"totalExpenses"`
	TotalIncome   core.Money `json:"totalIncome"`
	Balance       core.Money `json:"balance"`
	BudgetUsed    float64    `json:"budgetUsed"`
}

// Engine computes aggregates by reading the store. It never mutates it.
type Engine struct {
	store *store.Store

	// now is swapped out in tests that pin the current month.
	now func() time.Time
}

// NewEngine returns an engine reading from st.
func NewEngine(st *store.Store) *Engine {
	return &Engine{store: st, now: time.Now}
}

// MonthlyExpenses sums expense transactions per calendar month for the most
// recent months, ending at the current month inclusive. Transactions match
// by month-of-year and year, not by a rolling window. The result is ordered
// oldest to newest and carries a zero amount for empty months. A months
// value of zero or less yields an empty sequence.
func (e *Engine) MonthlyExpenses(months int) []MonthTotal {
	result := make([]MonthTotal, 0, max(months, 0))
	if months <= 0 {
		return result
	}

	txs := e.store.Transactions()
	now := e.now()
	// Anchor on the first of the month so stepping back never rolls over
	// short months.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for i := months - 1; i >= 0; i-- {
		target := anchor.AddDate(0, -i, 0)
		sum := core.MoneyZero
		for _, t := range txs {
			if t.Type != core.TypeExpense {
				continue
			}
			if t.Date.Month() == target.Month() && t.Date.Year() == target.Year() {
				sum = sum.Add(t.Amount)
			}
		}
		result = append(result, MonthTotal{Month: target.Format("Jan"), Amount: sum})
	}
	return result
}

// CategoryExpenses sums expense transactions per expense-type category, in
// ascending category id order. Categories with no matching transactions are
// included at zero. Income-type categories are excluded entirely, even when
// an expense transaction inconsistently references one; such amounts, like
// those with dangling or absent references, contribute to no entry.
func (e *Engine) CategoryExpenses() []CategoryTotal {
	totals := make(map[int64]core.Money)
	var order []int64
	for _, c := range e.store.Categories() {
		if c.Type == core.TypeExpense {
			totals[c.ID] = core.MoneyZero
			order = append(order, c.ID)
		}
	}

	for _, t := range e.store.Transactions() {
		if t.Type != core.TypeExpense || t.CategoryID == nil {
			continue
		}
		if sum, ok := totals[*t.CategoryID]; ok {
			totals[*t.CategoryID] = sum.Add(t.Amount)
		}
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, id := range order {
		result = append(result, CategoryTotal{CategoryID: id, Amount: totals[id]})
	}
	return result
}

// Summary computes overall totals, the balance (which may be negative), and
// budget utilization against the fixed ceiling.
func (e *Engine) Summary() Summary {
	expenses := core.MoneyZero
	income := core.MoneyZero
	for _, t := range e.store.Transactions() {
		switch t.Type {
		case core.TypeExpense:
			expenses = expenses.Add(t.Amount)
		case core.TypeIncome:
			income = income.Add(t.Amount)
		}
	}

	pct := expenses.Decimal().
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(budgetCeiling), 8)
	hundred := decimal.NewFromInt(100)
	if pct.GreaterThan(hundred) {
		pct = hundred
	}
	used, _ := pct.Float64()

	return Summary{
		TotalExpenses: expenses,
		TotalIncome:   income,
		Balance:       income.Sub(expenses),
		BudgetUsed:    used,
	}
}
