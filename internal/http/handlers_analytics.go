package http

import (
	"net/http"

	"fintrack/internal/core"
)

// categoryExpense is a per-category total joined with the full category
// record for display. Category is omitted when the id no longer resolves.
type categoryExpense struct {
	CategoryID int64          `json:"categoryId"`
	Amount     core.Money     `json:"amount"`
	Category   *core.Category `json:"category,omitempty"`
}

func (s *Server) handleMonthlyExpenses(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.engine.MonthlyExpenses(parseMonths(r)))
}

func (s *Server) handleCategoryExpenses(w http.ResponseWriter, r *http.Request) {
	totals := s.engine.CategoryExpenses()
	result := make([]categoryExpense, 0, len(totals))
	for _, t := range totals {
		entry := categoryExpense{CategoryID: t.CategoryID, Amount: t.Amount}
		if c, ok := s.store.CategoryByID(t.CategoryID); ok {
			entry.Category = &c
		}
		result = append(result, entry)
	}
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.engine.Summary())
}
