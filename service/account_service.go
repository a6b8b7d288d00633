// file: service/account_service.go

package service

import (
	"errors"
	"fmt"
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// BankService is the bank aggregate: it owns the registered accounts and runs
// the operations that span them.
type BankService struct {
	repo  repository.IAccountRepository
	rules model.Rules
	now   func() time.Time
}

// InterestCredit reports the interest paid to one account.
type InterestCredit struct {
	AccountNumber int
	Amount        decimal.Decimal
}

func NewBankService(repo repository.IAccountRepository, rules model.Rules) *BankService {
	return &BankService{
		repo:  repo,
		rules: rules,
		now:   time.Now,
	}
}

// AddAccount registers an account created elsewhere.
func (s *BankService) AddAccount(account model.Account) {
	s.repo.CreateAccount(account)

	logger.Log.WithFields(logrus.Fields{
		"account_number": account.Number(),
		"holder":         account.HolderName(),
		"kind":           account.Kind(),
		"balance":        account.Balance().StringFixed(2),
	}).Info("Account added to bank")
}

// OpenAccount builds an account of the given kind from the bank's rules and registers it.
func (s *BankService) OpenAccount(kind model.Kind, number int, holder string, opening decimal.Decimal) (model.Account, error) {
	account, err := s.rules.Open(kind, number, holder, opening, model.WithClock(s.now))
	if err != nil {
		return nil, fmt.Errorf("could not open account %d: %w", number, err)
	}
	s.AddAccount(account)
	return account, nil
}

// FindAccount returns the first account registered under number.
func (s *BankService) FindAccount(number int) (model.Account, error) {
	account, err := s.repo.GetAccountByNumber(number)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			logger.Log.WithField("account_number", number).Warn("Account not found")
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// Deposit credits an account through its own deposit policy.
func (s *BankService) Deposit(number int, amount decimal.Decimal) (model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": number,
		"amount":         amount.StringFixed(2),
	})

	account, err := s.FindAccount(number)
	if err != nil {
		return nil, err
	}
	if err := account.Deposit(amount); err != nil {
		log.WithError(err).Warn("Deposit rejected")
		return account, err
	}

	log.WithField("balance", account.Balance().StringFixed(2)).Info("Deposit completed")
	return account, nil
}

// Withdraw debits an account through its own withdrawal policy.
func (s *BankService) Withdraw(number int, amount decimal.Decimal) (model.Account, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": number,
		"amount":         amount.StringFixed(2),
	})

	account, err := s.FindAccount(number)
	if err != nil {
		return nil, err
	}
	if err := account.Withdraw(amount); err != nil {
		log.WithError(err).Warn("Withdrawal rejected")
		return account, err
	}

	log.WithField("balance", account.Balance().StringFixed(2)).Info("Withdrawal completed")
	return account, nil
}

// ShowAllAccounts renders every account in registration order.
func (s *BankService) ShowAllAccounts() []string {
	accounts := s.repo.GetAllAccounts()
	out := make([]string, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, account.Info())
	}
	return out
}

// ShowTransactions renders the statement of one account.
func (s *BankService) ShowTransactions(number int) (string, error) {
	account, err := s.FindAccount(number)
	if err != nil {
		return "", err
	}
	return account.Statement(), nil
}

// ApplyMonthlyInterest credits interest to every interest-bearing account.
// Other accounts are skipped.
func (s *BankService) ApplyMonthlyInterest() []InterestCredit {
	var credits []InterestCredit
	for _, account := range s.repo.GetAllAccounts() {
		bearing, ok := account.(model.InterestBearing)
		if !ok {
			continue
		}
		amount := bearing.CalculateInterest()
		credits = append(credits, InterestCredit{AccountNumber: account.Number(), Amount: amount})

		logger.Log.WithFields(logrus.Fields{
			"account_number": account.Number(),
			"interest":       amount.StringFixed(2),
			"balance":        account.Balance().StringFixed(2),
		}).Info("Monthly interest applied")
	}
	return credits
}
