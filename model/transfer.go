package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer is the receipt of a completed transfer between two accounts.
type Transfer struct {
	ID          uuid.UUID       `json:"id"`
	FromAccount int             `json:"from_account"`
	ToAccount   int             `json:"to_account"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}
