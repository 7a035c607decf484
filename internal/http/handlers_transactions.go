package http

import (
	"log/slog"
	"net/http"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.Transactions())
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	transaction, ok := s.store.TransactionByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	respondJSON(w, http.StatusOK, transaction)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeTransactionPayload(r)
	if err != nil {
		slog.WarnContext(r.Context(), "Transaction body decode failed", "error", err)
		respondError(w, http.StatusBadRequest, "Invalid transaction data")
		return
	}
	if errs := payload.validate(false); errs != nil {
		respondFieldErrors(w, "Invalid transaction data", errs)
		return
	}

	created := s.store.CreateTransaction(payload.transaction())

	slog.InfoContext(r.Context(), "Transaction created",
		"transaction_id", created.ID,
		"type", created.Type,
		"amount", created.Amount.String())

	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeTransactionPayload(r)
	if err != nil {
		slog.WarnContext(r.Context(), "Transaction body decode failed", "error", err)
		respondError(w, http.StatusBadRequest, "Invalid transaction data")
		return
	}
	// Body validation comes before the id lookup so a malformed payload is
	// reported even for an unknown id.
	if errs := payload.validate(true); errs != nil {
		respondFieldErrors(w, "Invalid transaction data", errs)
		return
	}

	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	updated, ok := s.store.UpdateTransaction(id, payload.patch())
	if !ok {
		respondError(w, http.StatusNotFound, "Transaction not found")
		return
	}

	slog.InfoContext(r.Context(), "Transaction updated", "transaction_id", updated.ID)

	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if !s.store.DeleteTransaction(id) {
		respondError(w, http.StatusNotFound, "Transaction not found")
		return
	}

	slog.InfoContext(r.Context(), "Transaction deleted", "transaction_id", id)

	w.WriteHeader(http.StatusNoContent)
}
