// file: model/account.go

package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindSavings  Kind = "savings"
	KindChecking Kind = "checking"
	KindPremium  Kind = "premium"
	KindStudent  Kind = "student"
)

// ParseKind converts a configured kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindSavings, KindChecking, KindPremium, KindStudent:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAccountKind, s)
	}
}

// Account is the contract shared by every account variant. The set of variants
// is closed: only types in this package can satisfy it.
type Account interface {
	Number() int
	HolderName() string
	SetHolderName(name string)
	Balance() decimal.Decimal
	Kind() Kind

	// CanDeposit and CanWithdraw run the variant's policy without changing state.
	CanDeposit(amount decimal.Decimal) error
	CanWithdraw(amount decimal.Decimal) error
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error

	RecordTransaction(detail string)
	// RecordTransferOut and RecordTransferIn note a completed transfer. They do
	// not move money; the withdrawal and deposit are logged separately.
	RecordTransferOut(to int, amount decimal.Decimal)
	RecordTransferIn(from int, amount decimal.Decimal)
	Transactions() []Transaction
	Log() []string
	Info() string
	Statement() string

	record() *account
}

// InterestBearing is implemented by accounts that earn periodic interest.
// CalculateInterest credits the interest and returns the amount credited.
type InterestBearing interface {
	Account
	CalculateInterest() decimal.Decimal
}

// Option customizes an account at construction time.
type Option func(*account)

// WithClock sets the time source used to stamp log entries.
func WithClock(now func() time.Time) Option {
	return func(a *account) {
		if now != nil {
			a.now = now
		}
	}
}

// account is the record every variant embeds.
type account struct {
	number  int
	holder  string
	balance decimal.Decimal
	log     []Transaction
	now     func() time.Time
}

func newAccount(number int, holder string, opening decimal.Decimal, opts []Option) account {
	a := account{
		number:  number,
		holder:  holder,
		balance: opening,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func (a *account) record() *account { return a }

func (a *account) Number() int { return a.number }

func (a *account) HolderName() string { return a.holder }

// SetHolderName ignores empty names.
func (a *account) SetHolderName(name string) {
	if strings.TrimSpace(name) == "" {
		return
	}
	a.holder = name
}

func (a *account) Balance() decimal.Decimal { return a.balance }

func (a *account) setBalance(amount decimal.Decimal) {
	a.balance = amount
}

// RecordTransaction appends a free-form note to the log.
func (a *account) RecordTransaction(detail string) {
	a.recordTransaction(TransactionNote, decimal.Zero, detail)
}

func (a *account) RecordTransferOut(to int, amount decimal.Decimal) {
	a.recordTransaction(TransactionTransferOut, amount, fmt.Sprintf("Transferred %s to account %d", money(amount), to))
}

func (a *account) RecordTransferIn(from int, amount decimal.Decimal) {
	a.recordTransaction(TransactionTransferIn, amount, fmt.Sprintf("Received %s from account %d", money(amount), from))
}

func (a *account) recordTransaction(typ TransactionType, amount decimal.Decimal, detail string) {
	a.log = append(a.log, Transaction{
		Time:   a.now(),
		Type:   typ,
		Amount: amount,
		Detail: detail,
	})
}

// Transactions returns a copy of the log in insertion order.
func (a *account) Transactions() []Transaction {
	out := make([]Transaction, len(a.log))
	copy(out, a.log)
	return out
}

func (a *account) Log() []string {
	out := make([]string, 0, len(a.log))
	for _, t := range a.log {
		out = append(out, t.String())
	}
	return out
}

func (a *account) Info() string {
	return fmt.Sprintf("Account Number: %d | Holder: %s | Balance: %s",
		a.number, a.holder, a.balance.StringFixed(2))
}

func (a *account) Statement() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Transactions for %s:\n", a.holder)
	for _, t := range a.log {
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("-", 40))
	return b.String()
}

// credit and debit apply an accepted movement and log it.
func (a *account) credit(typ TransactionType, amount decimal.Decimal, detail string) {
	a.setBalance(a.balance.Add(amount))
	a.recordTransaction(typ, amount, detail)
}

func (a *account) debit(typ TransactionType, amount decimal.Decimal, detail string) {
	a.setBalance(a.balance.Sub(amount))
	a.recordTransaction(typ, amount, detail)
}

func requirePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

func money(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
