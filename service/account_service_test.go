// file: service/account_service_test.go

package service

import (
	"errors"
	"go-bank-ledger/model"
	"go-bank-ledger/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAccountRepository is a mock for IAccountRepository.
type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) CreateAccount(account model.Account) {
	m.Called(account)
}

func (m *MockAccountRepository) GetAccountByNumber(number int) (model.Account, error) {
	args := m.Called(number)
	// Handle nil case for failed lookups
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Account), args.Error(1)
}

func (m *MockAccountRepository) GetAllAccounts() []model.Account {
	args := m.Called()
	return args.Get(0).([]model.Account)
}

func TestBankService_AddAccount(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	svc := NewBankService(mockRepo, model.DefaultRules())

	acc := model.NewSavingsAccount(1001, "Alice", d("2000"), model.DefaultRules().Savings)
	mockRepo.On("CreateAccount", acc).Return().Once()

	svc.AddAccount(acc)

	mockRepo.AssertExpectations(t)
}

func TestBankService_OpenAccount(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	svc := NewBankService(mockRepo, model.DefaultRules())

	t.Run("success", func(t *testing.T) {
		mockRepo.On("CreateAccount", mock.MatchedBy(func(acc model.Account) bool {
			return acc.Number() == 1003 && acc.Kind() == model.KindPremium
		})).Return().Once()

		acc, err := svc.OpenAccount(model.KindPremium, 1003, "Carol", d("15000"))

		require.NoError(t, err)
		assert.Equal(t, "Carol", acc.HolderName())
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := svc.OpenAccount(model.Kind("gold"), 1, "X", d("1"))

		assert.ErrorIs(t, err, model.ErrUnknownAccountKind)
		mockRepo.AssertNumberOfCalls(t, "CreateAccount", 1)
	})
}

func TestBankService_FindAccount(t *testing.T) {
	mockRepo := new(MockAccountRepository)
	svc := NewBankService(mockRepo, model.DefaultRules())

	t.Run("found", func(t *testing.T) {
		acc := model.NewCheckingAccount(1002, "Bob", d("500"), model.DefaultRules().Checking)
		mockRepo.On("GetAccountByNumber", 1002).Return(acc, nil).Once()

		got, err := svc.FindAccount(1002)

		assert.NoError(t, err)
		assert.Same(t, acc, got)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.On("GetAccountByNumber", 9999).Return(nil, repository.ErrRecordNotFound).Once()

		got, err := svc.FindAccount(9999)

		assert.ErrorIs(t, err, ErrAccountNotFound)
		assert.Nil(t, got)
	})

	t.Run("repository error", func(t *testing.T) {
		expectedError := errors.New("storage error")
		mockRepo.On("GetAccountByNumber", 1).Return(nil, expectedError).Once()

		_, err := svc.FindAccount(1)

		assert.Equal(t, expectedError, err)
	})

	mockRepo.AssertExpectations(t)
}

func TestBankService_DepositWithdraw(t *testing.T) {
	svc := newTestBank(t)

	t.Run("deposit", func(t *testing.T) {
		acc, err := svc.Deposit(1002, d("250"))
		require.NoError(t, err)
		assert.Equal(t, "750.00", acc.Balance().StringFixed(2))
	})

	t.Run("rejected deposit keeps state", func(t *testing.T) {
		acc, err := svc.Deposit(1002, d("0"))
		assert.ErrorIs(t, err, model.ErrInvalidAmount)
		assert.Equal(t, "750.00", acc.Balance().StringFixed(2))
		assert.Len(t, acc.Transactions(), 1)
	})

	t.Run("withdraw", func(t *testing.T) {
		acc, err := svc.Withdraw(1001, d("500"))
		require.NoError(t, err)
		assert.Equal(t, "1500.00", acc.Balance().StringFixed(2))
	})

	t.Run("rejected withdrawal keeps state", func(t *testing.T) {
		acc, err := svc.Withdraw(1001, d("1001"))
		assert.ErrorIs(t, err, model.ErrBelowMinimumBalance)
		assert.Equal(t, "1500.00", acc.Balance().StringFixed(2))
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := svc.Deposit(5, d("1"))
		assert.ErrorIs(t, err, ErrAccountNotFound)
		_, err = svc.Withdraw(5, d("1"))
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

func TestBankService_ShowAllAccounts(t *testing.T) {
	svc := newTestBank(t)

	assert.Equal(t, []string{
		"Account Number: 1001 | Holder: Alice | Balance: 2000.00",
		"Account Number: 1002 | Holder: Bob | Balance: 500.00",
	}, svc.ShowAllAccounts())
}

func TestBankService_ShowTransactions(t *testing.T) {
	svc := newTestBank(t)
	_, err := svc.Deposit(1001, d("10"))
	require.NoError(t, err)

	statement, err := svc.ShowTransactions(1001)
	require.NoError(t, err)
	assert.Contains(t, statement, "Transactions for Alice:")
	assert.Contains(t, statement, "2026-10-15 12:00:00: Deposited 10.00")

	_, err = svc.ShowTransactions(7)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestBankService_ApplyMonthlyInterest(t *testing.T) {
	svc := newTestBank(t)
	_, err := svc.OpenAccount(model.KindPremium, 1003, "Carol", d("15000"))
	require.NoError(t, err)
	_, err = svc.OpenAccount(model.KindStudent, 1004, "Dan", d("1000"))
	require.NoError(t, err)

	credits := svc.ApplyMonthlyInterest()

	require.Len(t, credits, 2)
	assert.Equal(t, 1001, credits[0].AccountNumber)
	assert.Equal(t, "40.00", credits[0].Amount.StringFixed(2))
	assert.Equal(t, 1003, credits[1].AccountNumber)
	assert.Equal(t, "750.00", credits[1].Amount.StringFixed(2))

	assert.Equal(t, "2040.00", balanceOf(t, svc, 1001))
	assert.Equal(t, "500.00", balanceOf(t, svc, 1002))
	assert.Equal(t, "15750.00", balanceOf(t, svc, 1003))
	assert.Equal(t, "1000.00", balanceOf(t, svc, 1004))
	assert.Empty(t, logOf(t, svc, 1002))
	assert.Empty(t, logOf(t, svc, 1004))
}
