package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SavingsAccount keeps a minimum balance, earns interest and allows a limited
// number of withdrawals over its lifetime.
type SavingsAccount struct {
	account
	rules       SavingsRules
	withdrawals int
}

var _ InterestBearing = (*SavingsAccount)(nil)

func NewSavingsAccount(number int, holder string, opening decimal.Decimal, rules SavingsRules, opts ...Option) *SavingsAccount {
	return &SavingsAccount{
		account: newAccount(number, holder, opening, opts),
		rules:   rules,
	}
}

func (s *SavingsAccount) Kind() Kind { return KindSavings }

// WithdrawalCount is the number of accepted withdrawals so far. It is never reset.
func (s *SavingsAccount) WithdrawalCount() int { return s.withdrawals }

func (s *SavingsAccount) CanDeposit(amount decimal.Decimal) error {
	return requirePositive(amount)
}

func (s *SavingsAccount) Deposit(amount decimal.Decimal) error {
	if err := s.CanDeposit(amount); err != nil {
		return err
	}
	s.credit(TransactionDeposit, amount, fmt.Sprintf("Deposited %s", money(amount)))
	return nil
}

func (s *SavingsAccount) CanWithdraw(amount decimal.Decimal) error {
	if err := requirePositive(amount); err != nil {
		return err
	}
	if s.withdrawals >= s.rules.WithdrawalLimit {
		return ErrWithdrawalLimitExceeded
	}
	if s.balance.Sub(amount).LessThan(s.rules.MinBalance) {
		return ErrBelowMinimumBalance
	}
	return nil
}

func (s *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	if err := s.CanWithdraw(amount); err != nil {
		return err
	}
	s.debit(TransactionWithdrawal, amount, fmt.Sprintf("Withdrew %s", money(amount)))
	s.withdrawals++
	return nil
}

func (s *SavingsAccount) CalculateInterest() decimal.Decimal {
	interest := s.balance.Mul(s.rules.InterestRate).Round(2)
	s.credit(TransactionInterest, interest, fmt.Sprintf("Interest credited: %s", money(interest)))
	return interest
}
