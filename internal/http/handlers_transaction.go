package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/services"
)

// transactionHandlers serves /api/expenses and /api/incomes from one
// implementation; the bound service decides which table it touches.
type transactionHandlers struct {
	service *services.TransactionService
}

type transactionCreateRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	CategoryID  int64   `json:"categoryId"`
}

type transactionPatchRequest struct {
	Amount      float64               `json:"amount"`
	Description core.Optional[string] `json:"description"`
	Date        string                `json:"date"`
	CategoryID  core.Optional[int64]  `json:"categoryId"`
}

func (h *transactionHandlers) list(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	filter, err := parseTxFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	txs, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (h *transactionHandlers) get(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tx, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *transactionHandlers) create(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	var req transactionCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, core.ValidationError("invalid request payload"))
		return
	}

	nt := core.NewTransaction{
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Date != "" {
		date, ok := parseDate(req.Date)
		if !ok {
			writeError(w, r, core.ValidationError("invalid date"))
			return
		}
		nt.Date = date
	}
	if req.CategoryID != 0 {
		nt.CategoryID = &req.CategoryID
	}

	tx, err := h.service.Create(r.Context(), userID, nt)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

func (h *transactionHandlers) update(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req transactionPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, core.ValidationError("invalid request payload"))
		return
	}

	patch := core.TransactionPatch{
		Amount:      req.Amount,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if req.Date != "" {
		date, ok := parseDate(req.Date)
		if !ok {
			writeError(w, r, core.ValidationError("invalid date"))
			return
		}
		patch.Date = date
	}

	tx, err := h.service.Update(r.Context(), userID, id, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *transactionHandlers) delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		writeError(w, r, err)
		return
	}
	msg := fmt.Sprintf("%s deleted successfully", titleFor(h.service.Kind()))
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func titleFor(kind core.TxKind) string {
	switch kind {
	case core.KindExpense:
		return "Expense"
	case core.KindIncome:
		return "Income"
	}
	return "Transaction"
}
