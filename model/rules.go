package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type SavingsRules struct {
	MinBalance      decimal.Decimal
	InterestRate    decimal.Decimal
	WithdrawalLimit int
}

type CheckingRules struct {
	OverdraftFee decimal.Decimal
}

type PremiumRules struct {
	MinBalance   decimal.Decimal
	InterestRate decimal.Decimal
}

type StudentRules struct {
	MaxBalance decimal.Decimal
}

// Rules holds the policy parameters for every account variant.
type Rules struct {
	Savings  SavingsRules
	Checking CheckingRules
	Premium  PremiumRules
	Student  StudentRules
}

// DefaultRules returns the standard bank policy.
func DefaultRules() Rules {
	return Rules{
		Savings: SavingsRules{
			MinBalance:      decimal.NewFromInt(500),
			InterestRate:    decimal.RequireFromString("0.02"),
			WithdrawalLimit: 3,
		},
		Checking: CheckingRules{
			OverdraftFee: decimal.NewFromInt(35),
		},
		Premium: PremiumRules{
			MinBalance:   decimal.NewFromInt(10000),
			InterestRate: decimal.RequireFromString("0.05"),
		},
		Student: StudentRules{
			MaxBalance: decimal.NewFromInt(5000),
		},
	}
}

// Open builds an account of the given kind using these rules. The opening
// balance may be zero but never negative, and a student account cannot start
// above its maximum balance.
func (r Rules) Open(kind Kind, number int, holder string, opening decimal.Decimal, opts ...Option) (Account, error) {
	if opening.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance %s", ErrInvalidAmount, money(opening))
	}
	switch kind {
	case KindSavings:
		return NewSavingsAccount(number, holder, opening, r.Savings, opts...), nil
	case KindChecking:
		return NewCheckingAccount(number, holder, opening, r.Checking, opts...), nil
	case KindPremium:
		return NewPremiumAccount(number, holder, opening, r.Premium, opts...), nil
	case KindStudent:
		if opening.GreaterThan(r.Student.MaxBalance) {
			return nil, fmt.Errorf("%w: opening balance %s", ErrAboveMaximumBalance, money(opening))
		}
		return NewStudentAccount(number, holder, opening, r.Student, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccountKind, kind)
	}
}
