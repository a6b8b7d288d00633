package handler

import (
	"errors"
	"fmt"
	"go-bank-ledger/common"
	"go-bank-ledger/model"
	"go-bank-ledger/service"
	"io"
)

// ToAppError maps business errors to an outcome the console can render.
func ToAppError(err error) *common.AppError {
	if err == nil {
		return nil
	}
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, model.ErrInvalidAmount):
		return common.NewAppError(common.OutcomeInvalidAmount, err.Error(), err)
	case errors.Is(err, model.ErrInsufficientFunds):
		return common.NewAppError(common.OutcomeInsufficientFunds, err.Error(), err)
	case errors.Is(err, model.ErrBelowMinimumBalance):
		return common.NewAppError(common.OutcomeBelowMinimumBalance, err.Error(), err)
	case errors.Is(err, model.ErrAboveMaximumBalance):
		return common.NewAppError(common.OutcomeAboveMaximumBalance, err.Error(), err)
	case errors.Is(err, model.ErrWithdrawalLimitExceeded):
		return common.NewAppError(common.OutcomeWithdrawalLimitExceeded, err.Error(), err)
	case errors.Is(err, service.ErrAccountNotFound):
		return common.NewAppError(common.OutcomeAccountNotFound, err.Error(), err)
	case errors.Is(err, service.ErrInvalidTransferAmount):
		return common.NewAppError(common.OutcomeInvalidTransferAmount, err.Error(), err)
	case errors.Is(err, service.ErrSameAccountTransfer):
		return common.NewAppError(common.OutcomeSameAccountTransfer, err.Error(), err)
	case errors.Is(err, model.ErrUnknownAccountKind):
		return common.NewAppError(common.OutcomeInvalidRequest, err.Error(), err)
	default:
		return common.NewAppError(common.OutcomeInternal, "Could not process operation", err)
	}
}

// respond prints the outcome of one operation and hands the error back.
func respond(w io.Writer, err error, success string) *common.AppError {
	appErr := ToAppError(err)
	if appErr != nil {
		appErr.Report()
		fmt.Fprintln(w, appErr.String())
		return appErr
	}
	fmt.Fprintf(w, "[%s] %s\n", common.OutcomeOK, success)
	return nil
}
