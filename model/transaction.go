package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the format used when rendering log entries.
const TimestampLayout = "2006-01-02 15:04:05"

type TransactionType string

const (
	TransactionDeposit     TransactionType = "deposit"
	TransactionWithdrawal  TransactionType = "withdrawal"
	TransactionFee         TransactionType = "fee"
	TransactionInterest    TransactionType = "interest"
	TransactionNote        TransactionType = "note"
	TransactionTransferOut TransactionType = "transfer_out"
	TransactionTransferIn  TransactionType = "transfer_in"
)

// Transaction is a single entry in an account's log.
type Transaction struct {
	Time   time.Time       `json:"time"`
	Type   TransactionType `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Detail string          `json:"detail"`
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s: %s", t.Time.Format(TimestampLayout), t.Detail)
}
