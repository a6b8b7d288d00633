// file: model/request.go

package model

// OpenAccountRequest describes an account to open. It is read from the demo
// configuration and validated before use.
type OpenAccountRequest struct {
	Kind           string `mapstructure:"kind" validate:"required,oneof=savings checking premium student"`
	Number         int    `mapstructure:"number" validate:"gt=0"`
	Holder         string `mapstructure:"holder" validate:"required"`
	OpeningBalance string `mapstructure:"opening_balance" validate:"required,numeric"`
}
