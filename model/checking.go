package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CheckingAccount may go negative. Every withdrawal that leaves the balance
// below zero is charged the overdraft fee.
type CheckingAccount struct {
	account
	rules CheckingRules
}

func NewCheckingAccount(number int, holder string, opening decimal.Decimal, rules CheckingRules, opts ...Option) *CheckingAccount {
	return &CheckingAccount{
		account: newAccount(number, holder, opening, opts),
		rules:   rules,
	}
}

func (c *CheckingAccount) Kind() Kind { return KindChecking }

func (c *CheckingAccount) CanDeposit(amount decimal.Decimal) error {
	return requirePositive(amount)
}

func (c *CheckingAccount) Deposit(amount decimal.Decimal) error {
	if err := c.CanDeposit(amount); err != nil {
		return err
	}
	c.credit(TransactionDeposit, amount, fmt.Sprintf("Deposited %s", money(amount)))
	return nil
}

func (c *CheckingAccount) CanWithdraw(amount decimal.Decimal) error {
	return requirePositive(amount)
}

func (c *CheckingAccount) Withdraw(amount decimal.Decimal) error {
	if err := c.CanWithdraw(amount); err != nil {
		return err
	}
	c.debit(TransactionWithdrawal, amount, fmt.Sprintf("Withdrew %s", money(amount)))
	if c.balance.IsNegative() {
		fee := c.rules.OverdraftFee
		c.debit(TransactionFee, fee, fmt.Sprintf("Overdraft fee charged: %s", money(fee)))
	}
	return nil
}
