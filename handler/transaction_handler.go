package handler

import (
	"fmt"
	"go-bank-ledger/common"
	"go-bank-ledger/service"
	"io"

	"github.com/shopspring/decimal"
)

// TransactionHandler holds dependencies for transfer operations.
type TransactionHandler struct {
	service *service.BankService
	out     io.Writer
}

// NewTransactionHandler creates a new TransactionHandler with its dependencies.
func NewTransactionHandler(s *service.BankService, out io.Writer) *TransactionHandler {
	return &TransactionHandler{service: s, out: out}
}

// Transfer moves money between two accounts and prints the confirmation.
func (h *TransactionHandler) Transfer(from, to int, amount decimal.Decimal) *common.AppError {
	transfer, err := h.service.Transfer(from, to, amount)
	if err != nil {
		return respond(h.out, err, "")
	}
	return respond(h.out, nil, fmt.Sprintf("Transferred %s from account %d to account %d (ref %s)",
		transfer.Amount.StringFixed(2), transfer.FromAccount, transfer.ToAccount, transfer.ID))
}
