package model

import "errors"

// Policy errors returned by account operations. A rejected operation leaves the
// balance and the transaction log untouched.
var (
	ErrInvalidAmount           = errors.New("amount must be greater than zero")
	ErrInsufficientFunds       = errors.New("insufficient balance")
	ErrBelowMinimumBalance     = errors.New("minimum balance required")
	ErrAboveMaximumBalance     = errors.New("maximum balance exceeded")
	ErrWithdrawalLimitExceeded = errors.New("withdrawal limit reached")
	ErrUnknownAccountKind      = errors.New("unknown account kind")
)
