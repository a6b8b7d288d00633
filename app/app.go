// File: app/app.go
package app

import (
	"fmt"
	"go-bank-ledger/config"
	"go-bank-ledger/handler"
	"go-bank-ledger/logger"
	"go-bank-ledger/repository"
	"go-bank-ledger/service"
	"io"
	"os"

	"github.com/shopspring/decimal"
)

func Run() {
	logger.Init()
	if err := Execute(".", os.Stdout); err != nil {
		logger.Log.Fatalf("Demo failed: %v", err)
	}
}

// Execute loads the configuration from configPath, opens the configured
// accounts and runs the demo scenario, writing its output to out.
func Execute(configPath string, out io.Writer) error {
	if err := config.LoadConfig(configPath); err != nil {
		return err
	}
	logger.Configure(config.AppConfig.Log.Level, config.AppConfig.Log.Format)
	logger.Log.Info("Configuration loaded successfully")

	rules, err := config.AppConfig.ModelRules()
	if err != nil {
		return err
	}

	// --- Wiring All Layers Together ---
	accountRepo := repository.NewAccountRepository()
	bankService := service.NewBankService(accountRepo, rules)
	accountHandler := handler.NewAccountHandler(bankService, out)
	transactionHandler := handler.NewTransactionHandler(bankService, out)

	for _, req := range config.AppConfig.Demo.Accounts {
		if appErr := accountHandler.OpenAccount(req); appErr != nil {
			return fmt.Errorf("could not open demo account %d: %w", req.Number, appErr)
		}
	}

	runScenario(accountHandler, transactionHandler, out)
	logger.Log.Info("Demo finished")
	return nil
}

// runScenario exercises every account rule once. Rejections are expected
// and only printed.
func runScenario(accounts *handler.AccountHandler, transfers *handler.TransactionHandler, out io.Writer) {
	amount := decimal.NewFromInt

	section(out, "Initial state")
	accounts.ShowAllAccounts()

	section(out, "Deposits and withdrawals")
	accounts.Deposit(1001, amount(500))
	accounts.Withdraw(1001, amount(200))
	accounts.Withdraw(1001, amount(2000))
	accounts.Withdraw(1002, amount(700))
	accounts.Withdraw(1003, amount(6000))
	accounts.Deposit(1004, amount(4500))
	accounts.Withdraw(1004, amount(2000))
	accounts.Deposit(1002, amount(0))

	section(out, "Transfers")
	transfers.Transfer(1001, 1002, amount(100))
	transfers.Transfer(1004, 1003, amount(5000))
	transfers.Transfer(1004, 9999, amount(50))
	transfers.Transfer(1001, 1002, amount(-10))

	section(out, "Lookups")
	accounts.FindAccount(1003)
	accounts.FindAccount(9999)

	section(out, "Monthly interest")
	accounts.ApplyMonthlyInterest()

	section(out, "Final state")
	accounts.ShowAllAccounts()
	for _, number := range []int{1001, 1002, 1003, 1004} {
		accounts.ShowTransactions(number)
	}
}

func section(out io.Writer, title string) {
	fmt.Fprintf(out, "\n### %s ###\n", title)
}
