package service

import (
	"errors"
	"fmt"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrAccountNotFound         = errors.New("account not found")
	ErrSenderAccountNotFound   = fmt.Errorf("sender %w", ErrAccountNotFound)
	ErrReceiverAccountNotFound = fmt.Errorf("receiver %w", ErrAccountNotFound)
	ErrInvalidTransferAmount   = errors.New("transfer amount must be greater than zero")
	ErrSameAccountTransfer     = errors.New("cannot transfer money to the same account")
)

// Transfer moves amount from one account to another. Both sides' policies are
// checked before either balance changes, so a rejected transfer leaves both
// accounts untouched.
func (s *BankService) Transfer(fromNumber, toNumber int, amount decimal.Decimal) (*model.Transfer, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"from_account": fromNumber,
		"to_account":   toNumber,
		"amount":       amount.StringFixed(2),
	})

	log.Info("Starting money transfer process")

	sender, err := s.FindAccount(fromNumber)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrSenderAccountNotFound
		}
		return nil, err
	}

	receiver, err := s.FindAccount(toNumber)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrReceiverAccountNotFound
		}
		return nil, err
	}

	if !amount.IsPositive() {
		log.Warn("Transfer rejected: invalid amount")
		return nil, ErrInvalidTransferAmount
	}
	if fromNumber == toNumber {
		log.Warn("Transfer rejected: same account")
		return nil, ErrSameAccountTransfer
	}

	if err := sender.CanWithdraw(amount); err != nil {
		log.WithError(err).Warn("Transfer rejected by sender account")
		return nil, err
	}
	if err := receiver.CanDeposit(amount); err != nil {
		log.WithError(err).Warn("Transfer rejected by receiver account")
		return nil, err
	}

	if err := sender.Withdraw(amount); err != nil {
		return nil, fmt.Errorf("could not debit sender: %w", err)
	}
	if err := receiver.Deposit(amount); err != nil {
		return nil, fmt.Errorf("could not credit receiver: %w", err)
	}

	sender.RecordTransferOut(toNumber, amount)
	receiver.RecordTransferIn(fromNumber, amount)

	transfer := &model.Transfer{
		ID:          uuid.New(),
		FromAccount: fromNumber,
		ToAccount:   toNumber,
		Amount:      amount,
		CreatedAt:   s.now(),
	}

	log.WithField("transfer_id", transfer.ID).Info("Transfer completed successfully")
	return transfer, nil
}
