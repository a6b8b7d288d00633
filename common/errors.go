package common

import (
	"fmt"
	"go-bank-ledger/logger"

	"github.com/sirupsen/logrus"
)

// Outcome enumerates the result of a ledger operation.
type Outcome string

const (
	OutcomeOK                      Outcome = "OK"
	OutcomeInvalidAmount           Outcome = "INVALID_AMOUNT"
	OutcomeInsufficientFunds       Outcome = "INSUFFICIENT_FUNDS"
	OutcomeBelowMinimumBalance     Outcome = "BELOW_MINIMUM_BALANCE"
	OutcomeAboveMaximumBalance     Outcome = "ABOVE_MAXIMUM_BALANCE"
	OutcomeWithdrawalLimitExceeded Outcome = "WITHDRAWAL_LIMIT_EXCEEDED"
	OutcomeAccountNotFound         Outcome = "ACCOUNT_NOT_FOUND"
	OutcomeInvalidTransferAmount   Outcome = "INVALID_TRANSFER_AMOUNT"
	OutcomeSameAccountTransfer     Outcome = "SAME_ACCOUNT_TRANSFER"
	OutcomeInvalidRequest          Outcome = "INVALID_REQUEST"
	OutcomeInternal                Outcome = "INTERNAL"
)

type AppError struct {
	Code    Outcome `json:"code"`
	Message string  `json:"message"`
	Err     error   `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code Outcome, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// String renders the error the way the console prints it.
func (e *AppError) String() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Report logs failures worth an operator's attention. Rejected requests are
// logged as warnings, unexpected errors as errors. Policy rejections such as
// insufficient funds are ordinary outcomes and are not logged.
func (e *AppError) Report() {
	fields := logrus.Fields{"outcome": e.Code}
	if e.Err != nil {
		fields["internal_error"] = e.Err.Error()
	}

	switch e.Code {
	case OutcomeInternal:
		logger.Log.WithFields(fields).Error(e.Message)
	case OutcomeInvalidRequest:
		logger.Log.WithFields(fields).Warn(e.Message)
	}
}
