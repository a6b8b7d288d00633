package config

import (
	"errors"
	"fmt"
	"go-bank-ledger/common"
	"go-bank-ledger/model"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Log struct {
		Level  string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
		Format string `mapstructure:"format" validate:"omitempty,oneof=text json"`
	} `mapstructure:"log"`
	Rules RulesConfig `mapstructure:"rules"`
	Demo  struct {
		Accounts []model.OpenAccountRequest `mapstructure:"accounts" validate:"dive"`
	} `mapstructure:"demo"`
}

// RulesConfig holds the account policies. Money values are decimal strings.
type RulesConfig struct {
	Savings struct {
		MinBalance      string `mapstructure:"min_balance" validate:"required,numeric"`
		InterestRate    string `mapstructure:"interest_rate" validate:"required,numeric"`
		WithdrawalLimit int    `mapstructure:"withdrawal_limit" validate:"gte=0"`
	} `mapstructure:"savings"`
	Checking struct {
		OverdraftFee string `mapstructure:"overdraft_fee" validate:"required,numeric"`
	} `mapstructure:"checking"`
	Premium struct {
		MinBalance   string `mapstructure:"min_balance" validate:"required,numeric"`
		InterestRate string `mapstructure:"interest_rate" validate:"required,numeric"`
	} `mapstructure:"premium"`
	Student struct {
		MaxBalance string `mapstructure:"max_balance" validate:"required,numeric"`
	} `mapstructure:"student"`
}

var AppConfig Config

// LoadConfig reads config.yml from path. A .env file next to it is loaded into
// the environment first, and BANK_* variables override file values
// (rules.checking.overdraft_fee -> BANK_RULES_CHECKING_OVERDRAFT_FEE).
// A missing config file is not an error: defaults apply.
func LoadConfig(path string) error {
	if err := godotenv.Load(filepath.Join(path, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix("BANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("unable to decode into struct: %w", err)
	}
	if appErr := common.Validate(cfg); appErr != nil {
		return fmt.Errorf("invalid configuration: %w", appErr)
	}
	if _, err := cfg.ModelRules(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	AppConfig = cfg
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("rules.savings.min_balance", "500")
	v.SetDefault("rules.savings.interest_rate", "0.02")
	v.SetDefault("rules.savings.withdrawal_limit", 3)
	v.SetDefault("rules.checking.overdraft_fee", "35")
	v.SetDefault("rules.premium.min_balance", "10000")
	v.SetDefault("rules.premium.interest_rate", "0.05")
	v.SetDefault("rules.student.max_balance", "5000")

	v.SetDefault("demo.accounts", []map[string]interface{}{
		{"kind": "savings", "number": 1001, "holder": "Alice Johnson", "opening_balance": "2000"},
		{"kind": "checking", "number": 1002, "holder": "Bob Smith", "opening_balance": "500"},
		{"kind": "premium", "number": 1003, "holder": "Carol White", "opening_balance": "15000"},
		{"kind": "student", "number": 1004, "holder": "Dan Brown", "opening_balance": "1000"},
	})
}

// ModelRules converts the configured policies into model.Rules.
func (c Config) ModelRules() (model.Rules, error) {
	var (
		rules model.Rules
		err   error
	)
	r := c.Rules
	if rules.Savings.MinBalance, err = parseAmount("rules.savings.min_balance", r.Savings.MinBalance); err != nil {
		return rules, err
	}
	if rules.Savings.InterestRate, err = parseAmount("rules.savings.interest_rate", r.Savings.InterestRate); err != nil {
		return rules, err
	}
	rules.Savings.WithdrawalLimit = r.Savings.WithdrawalLimit
	if rules.Checking.OverdraftFee, err = parseAmount("rules.checking.overdraft_fee", r.Checking.OverdraftFee); err != nil {
		return rules, err
	}
	if rules.Premium.MinBalance, err = parseAmount("rules.premium.min_balance", r.Premium.MinBalance); err != nil {
		return rules, err
	}
	if rules.Premium.InterestRate, err = parseAmount("rules.premium.interest_rate", r.Premium.InterestRate); err != nil {
		return rules, err
	}
	if rules.Student.MaxBalance, err = parseAmount("rules.student.max_balance", r.Student.MaxBalance); err != nil {
		return rules, err
	}
	return rules, nil
}

func parseAmount(key, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative", key)
	}
	return amount, nil
}
