package repository

import (
	"go-bank-ledger/logger"
	"go-bank-ledger/model"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestAccountRepository(t *testing.T) {
	rules := model.DefaultRules()
	repo := NewAccountRepository()

	first := model.NewSavingsAccount(1001, "Alice", decimal.NewFromInt(2000), rules.Savings)
	second := model.NewCheckingAccount(1002, "Bob", decimal.NewFromInt(500), rules.Checking)
	duplicate := model.NewStudentAccount(1001, "Impostor", decimal.NewFromInt(10), rules.Student)

	repo.CreateAccount(first)
	repo.CreateAccount(second)
	repo.CreateAccount(duplicate)

	t.Run("first match wins", func(t *testing.T) {
		acc, err := repo.GetAccountByNumber(1001)
		require.NoError(t, err)
		assert.Equal(t, "Alice", acc.HolderName())
	})

	t.Run("not found", func(t *testing.T) {
		acc, err := repo.GetAccountByNumber(9999)
		assert.ErrorIs(t, err, ErrRecordNotFound)
		assert.Nil(t, acc)
	})

	t.Run("registration order", func(t *testing.T) {
		all := repo.GetAllAccounts()
		require.Len(t, all, 3)
		assert.Equal(t, []int{1001, 1002, 1001}, []int{all[0].Number(), all[1].Number(), all[2].Number()})
	})
}
