package handler

import (
	"fmt"
	"go-bank-ledger/common"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/service"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	service *service.BankService
	out     io.Writer
}

func NewAccountHandler(service *service.BankService, out io.Writer) *AccountHandler {
	return &AccountHandler{service: service, out: out}
}

// OpenAccount validates the request and registers the account.
func (h *AccountHandler) OpenAccount(req model.OpenAccountRequest) *common.AppError {
	req.Kind = strings.ToLower(strings.TrimSpace(req.Kind))
	if appErr := common.Validate(req); appErr != nil {
		return respond(h.out, appErr, "")
	}

	log := logger.Log.WithFields(logrus.Fields{
		"kind":           req.Kind,
		"account_number": req.Number,
	})
	log.Info("Open account request received")

	kind, err := model.ParseKind(req.Kind)
	if err != nil {
		return respond(h.out, err, "")
	}
	opening, err := decimal.NewFromString(req.OpeningBalance)
	if err != nil {
		return respond(h.out, common.NewAppError(common.OutcomeInvalidRequest, "Invalid opening balance", err), "")
	}

	account, err := h.service.OpenAccount(kind, req.Number, req.Holder, opening)
	if err != nil {
		return respond(h.out, err, "")
	}
	return respond(h.out, nil, fmt.Sprintf("Opened %s account %d for %s with %s",
		account.Kind(), account.Number(), account.HolderName(), account.Balance().StringFixed(2)))
}

func (h *AccountHandler) Deposit(number int, amount decimal.Decimal) *common.AppError {
	account, err := h.service.Deposit(number, amount)
	if err != nil {
		return respond(h.out, err, "")
	}
	return respond(h.out, nil, fmt.Sprintf("Deposited %s to account %d. New balance: %s",
		amount.StringFixed(2), number, account.Balance().StringFixed(2)))
}

func (h *AccountHandler) Withdraw(number int, amount decimal.Decimal) *common.AppError {
	account, err := h.service.Withdraw(number, amount)
	if err != nil {
		return respond(h.out, err, "")
	}
	return respond(h.out, nil, fmt.Sprintf("Withdrew %s from account %d. New balance: %s",
		amount.StringFixed(2), number, account.Balance().StringFixed(2)))
}

func (h *AccountHandler) FindAccount(number int) *common.AppError {
	account, err := h.service.FindAccount(number)
	if err != nil {
		return respond(h.out, err, "")
	}
	return respond(h.out, nil, account.Info())
}

// ShowAllAccounts prints the report of every account.
func (h *AccountHandler) ShowAllAccounts() {
	fmt.Fprintln(h.out, "=== All Accounts ===")
	for _, line := range h.service.ShowAllAccounts() {
		fmt.Fprintln(h.out, line)
	}
}

func (h *AccountHandler) ShowTransactions(number int) *common.AppError {
	statement, err := h.service.ShowTransactions(number)
	if err != nil {
		return respond(h.out, err, "")
	}
	fmt.Fprintln(h.out, statement)
	return nil
}

func (h *AccountHandler) ApplyMonthlyInterest() {
	credits := h.service.ApplyMonthlyInterest()
	parts := make([]string, 0, len(credits))
	for _, c := range credits {
		parts = append(parts, fmt.Sprintf("%d: +%s", c.AccountNumber, c.Amount.StringFixed(2)))
	}
	respond(h.out, nil, fmt.Sprintf("Monthly interest applied to %d account(s) [%s]", len(credits), strings.Join(parts, ", ")))
}
