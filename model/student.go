package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StudentAccount caps the balance and never goes below zero.
type StudentAccount struct {
	account
	rules StudentRules
}

func NewStudentAccount(number int, holder string, opening decimal.Decimal, rules StudentRules, opts ...Option) *StudentAccount {
	return &StudentAccount{
		account: newAccount(number, holder, opening, opts),
		rules:   rules,
	}
}

func (s *StudentAccount) Kind() Kind { return KindStudent }

func (s *StudentAccount) CanDeposit(amount decimal.Decimal) error {
	if err := requirePositive(amount); err != nil {
		return err
	}
	if s.balance.Add(amount).GreaterThan(s.rules.MaxBalance) {
		return ErrAboveMaximumBalance
	}
	return nil
}

func (s *StudentAccount) Deposit(amount decimal.Decimal) error {
	if err := s.CanDeposit(amount); err != nil {
		return err
	}
	s.credit(TransactionDeposit, amount, fmt.Sprintf("Deposited %s", money(amount)))
	return nil
}

func (s *StudentAccount) CanWithdraw(amount decimal.Decimal) error {
	if err := requirePositive(amount); err != nil {
		return err
	}
	if amount.GreaterThan(s.balance) {
		return ErrInsufficientFunds
	}
	return nil
}

func (s *StudentAccount) Withdraw(amount decimal.Decimal) error {
	if err := s.CanWithdraw(amount); err != nil {
		return err
	}
	s.debit(TransactionWithdrawal, amount, fmt.Sprintf("Withdrew %s", money(amount)))
	return nil
}
