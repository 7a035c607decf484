// Request decoding and validation helpers.
//
// Validation is the API surface's responsibility; the store accepts
// whatever it is handed. Note that categoryId is deliberately not checked
// against existing categories: dangling references are tolerated and simply
// stop resolving at read time.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/store"
)

const defaultMonths = 6

// transactionPayload is the request body of POST and PUT /api/transactions.
// Pointer fields distinguish absent from zero so PUT can merge partially.
type transactionPayload struct {
	Type        *core.Type  `json:"type"`
	Amount      *core.Money `json:"amount"`
	Date        *string     `json:"date"`
	Description *string     `json:"description"`
	CategoryID  *int64      `json:"categoryId"`
	Notes       *string     `json:"notes"`

	parsedDate time.Time
}

func decodeTransactionPayload(r *http.Request) (*transactionPayload, error) {
	var p transactionPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		// An empty body reads as an empty partial update.
		if errors.Is(err, io.EOF) {
			return &transactionPayload{}, nil
		}
		return nil, err
	}
	return &p, nil
}

// validate checks the supplied fields and, unless partial, that all
// required fields are present. It returns one message per offending field.
func (p *transactionPayload) validate(partial bool) map[string]string {
	errs := make(map[string]string)

	if p.Type == nil {
		if !partial {
			errs["type"] = "required"
		}
	} else if !p.Type.Valid() {
		errs["type"] = core.ErrInvalidType.Error()
	}

	if p.Amount == nil {
		if !partial {
			errs["amount"] = "required"
		}
	} else if !p.Amount.IsPositive() {
		errs["amount"] = core.ErrInvalidAmount.Error()
	}

	if p.Date == nil {
		if !partial {
			errs["date"] = "required"
		}
	} else if strings.TrimSpace(*p.Date) == "" {
		errs["date"] = core.ErrEmptyDate.Error()
	} else if t, err := parseDate(*p.Date); err != nil {
		errs["date"] = "invalid date"
	} else {
		p.parsedDate = t
	}

	if p.Description == nil {
		if !partial {
			errs["description"] = "required"
		}
	} else if strings.TrimSpace(*p.Description) == "" {
		errs["description"] = core.ErrEmptyDescription.Error()
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// transaction builds the record a valid full payload describes.
func (p *transactionPayload) transaction() core.Transaction {
	return core.Transaction{
		Amount:      *p.Amount,
		Date:        p.parsedDate,
		Description: *p.Description,
		Type:        *p.Type,
		CategoryID:  p.CategoryID,
		Notes:       p.Notes,
	}
}

// patch builds the partial update a valid partial payload describes.
func (p *transactionPayload) patch() store.TransactionPatch {
	patch := store.TransactionPatch{
		Amount:      p.Amount,
		Description: p.Description,
		Type:        p.Type,
		CategoryID:  p.CategoryID,
		Notes:       p.Notes,
	}
	if p.Date != nil {
		d := p.parsedDate
		patch.Date = &d
	}
	return patch
}

// parseDate accepts RFC 3339 timestamps and plain calendar dates.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// parseID reads the {id} path segment. A non-integer id behaves like an id
// that simply does not exist.
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("id")), 10, 64)
	return id, err == nil
}

// parseMonths reads the months query parameter, defaulting when absent or
// unparseable. Zero and negative values pass through; the engine answers
// them with an empty sequence.
func parseMonths(r *http.Request) int {
	months := defaultMonths
	if v := strings.TrimSpace(r.URL.Query().Get("months")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			months = n
		}
	}
	return months
}
