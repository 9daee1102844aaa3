package handler

import (
	"fmt"
	"net/http"

	"github.com/NickyVHDP/pokertracker/internal/model"
	"github.com/NickyVHDP/pokertracker/internal/service"
)

// BankrollHandler handles the bankroll ledger and settings routes.
type BankrollHandler struct {
	bankroll *service.BankrollService
}

// NewBankrollHandler creates a new BankrollHandler.
func NewBankrollHandler(bankroll *service.BankrollService) *BankrollHandler {
	return &BankrollHandler{bankroll: bankroll}
}

// ListTransactions handles GET /api/bankroll/transactions.
func (h *BankrollHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	txs, err := h.bankroll.ListTransactions(r.Context(), limit, offset)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

// CreateTransaction handles POST /api/bankroll/transactions.
func (h *BankrollHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in model.TransactionInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validateTransactionInput(in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.bankroll.CreateTransaction(r.Context(), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

// GetSetting handles GET /api/settings/{key}.
func (h *BankrollHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	setting, err := h.bankroll.GetSetting(r.Context(), r.PathValue("key"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

// SetSetting handles PUT /api/settings/{key}.
func (h *BankrollHandler) SetSetting(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value string `json:"value"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	setting, err := h.bankroll.SetSetting(r.Context(), r.PathValue("key"), body.Value)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

func validateTransactionInput(in model.TransactionInput) error {
	if !model.ValidTransactionType(in.Type) {
		return fmt.Errorf("invalid transaction type %q", in.Type)
	}
	if in.Description == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}
