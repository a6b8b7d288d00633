package repository

import (
	"errors"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"

	"github.com/sirupsen/logrus"
)

// ErrRecordNotFound is returned when no account matches a lookup.
var ErrRecordNotFound = errors.New("record not found")

// IAccountRepository defines the contract for account storage.
type IAccountRepository interface {
	CreateAccount(account model.Account)
	GetAccountByNumber(number int) (model.Account, error)
	GetAllAccounts() []model.Account
}

// AccountRepository keeps accounts in memory in registration order.
// Membership is append-only.
type AccountRepository struct {
	accounts []model.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{}
}

// CreateAccount appends an account. Duplicate numbers are accepted; lookups
// return the earliest registration.
func (r *AccountRepository) CreateAccount(account model.Account) {
	logger.Log.WithFields(logrus.Fields{
		"account_number": account.Number(),
		"kind":           account.Kind(),
	}).Debug("Storing account")

	r.accounts = append(r.accounts, account)
}

// GetAccountByNumber returns the first account with the given number.
func (r *AccountRepository) GetAccountByNumber(number int) (model.Account, error) {
	for _, acc := range r.accounts {
		if acc.Number() == number {
			return acc, nil
		}
	}
	return nil, ErrRecordNotFound
}

// GetAllAccounts returns the accounts in registration order.
func (r *AccountRepository) GetAllAccounts() []model.Account {
	out := make([]model.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}
