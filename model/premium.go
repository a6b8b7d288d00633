package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PremiumAccount keeps a high minimum balance and earns a higher interest rate.
type PremiumAccount struct {
	account
	rules PremiumRules
}

var _ InterestBearing = (*PremiumAccount)(nil)

func NewPremiumAccount(number int, holder string, opening decimal.Decimal, rules PremiumRules, opts ...Option) *PremiumAccount {
	return &PremiumAccount{
		account: newAccount(number, holder, opening, opts),
		rules:   rules,
	}
}

func (p *PremiumAccount) Kind() Kind { return KindPremium }

func (p *PremiumAccount) CanDeposit(amount decimal.Decimal) error {
	return requirePositive(amount)
}

func (p *PremiumAccount) Deposit(amount decimal.Decimal) error {
	if err := p.CanDeposit(amount); err != nil {
		return err
	}
	p.credit(TransactionDeposit, amount, fmt.Sprintf("Deposited %s", money(amount)))
	return nil
}

func (p *PremiumAccount) CanWithdraw(amount decimal.Decimal) error {
	if err := requirePositive(amount); err != nil {
		return err
	}
	if p.balance.Sub(amount).LessThan(p.rules.MinBalance) {
		return ErrBelowMinimumBalance
	}
	return nil
}

func (p *PremiumAccount) Withdraw(amount decimal.Decimal) error {
	if err := p.CanWithdraw(amount); err != nil {
		return err
	}
	p.debit(TransactionWithdrawal, amount, fmt.Sprintf("Withdrew %s", money(amount)))
	return nil
}

func (p *PremiumAccount) CalculateInterest() decimal.Decimal {
	interest := p.balance.Mul(p.rules.InterestRate).Round(2)
	p.credit(TransactionInterest, interest, fmt.Sprintf("Premium interest credited: %s", money(interest)))
	return interest
}
