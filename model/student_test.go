package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentAccount_Deposit(t *testing.T) {
	acc := NewStudentAccount(1004, "Dan", d("4000"), DefaultRules().Student)

	assert.ErrorIs(t, acc.Deposit(d("1000.01")), ErrAboveMaximumBalance)
	assertState(t, acc, "4000", 0)

	assert.ErrorIs(t, acc.Deposit(d("0")), ErrInvalidAmount)
	assert.ErrorIs(t, acc.Deposit(d("-50")), ErrInvalidAmount)
	assertState(t, acc, "4000", 0)

	require.NoError(t, acc.Deposit(d("1000")))
	assertState(t, acc, "5000", 1)
}

func TestStudentAccount_Withdraw(t *testing.T) {
	acc := NewStudentAccount(1004, "Dan", d("300"), DefaultRules().Student)

	assert.ErrorIs(t, acc.Withdraw(d("300.01")), ErrInsufficientFunds)
	assertState(t, acc, "300", 0)

	require.NoError(t, acc.Withdraw(d("300")))
	assertState(t, acc, "0", 1)
}

func TestStudentAccount_CanDepositDoesNotMutate(t *testing.T) {
	acc := NewStudentAccount(1004, "Dan", d("100"), DefaultRules().Student)

	assert.NoError(t, acc.CanDeposit(d("50")))
	assert.NoError(t, acc.CanWithdraw(d("50")))
	assertState(t, acc, "100", 0)
}
