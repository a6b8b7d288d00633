package app

import (
	"bytes"
	"go-bank-ledger/logger"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_DefaultScenario(t *testing.T) {
	logger.Init()
	logger.Log.SetOutput(io.Discard)

	var out bytes.Buffer
	require.NoError(t, Execute(t.TempDir(), &out))

	got := out.String()
	assert.Contains(t, got, "[OK] Opened savings account 1001 for Alice Johnson with 2000.00")
	assert.Contains(t, got, "[BELOW_MINIMUM_BALANCE] minimum balance required")
	assert.Contains(t, got, "[ABOVE_MAXIMUM_BALANCE] maximum balance exceeded")
	assert.Contains(t, got, "[INSUFFICIENT_FUNDS] insufficient balance")
	assert.Contains(t, got, "[ACCOUNT_NOT_FOUND] receiver account not found")
	assert.Contains(t, got, "[INVALID_TRANSFER_AMOUNT] transfer amount must be greater than zero")
	assert.Contains(t, got, "[OK] Monthly interest applied to 2 account(s)")
	assert.Contains(t, got, "Transactions for Bob Smith:")
}

func TestExecute_InvalidConfig(t *testing.T) {
	logger.Init()
	logger.Log.SetOutput(io.Discard)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("log:\n  format: xml\n"), 0o600))

	assert.Error(t, Execute(dir, &bytes.Buffer{}))
}
