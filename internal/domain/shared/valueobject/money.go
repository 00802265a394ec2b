package valueobject

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

const (
	TRY Currency = "TRY" // Turkish Lira (base currency)
	USD Currency = "USD" // US Dollar
	EUR Currency = "EUR" // Euro
	GBP Currency = "GBP" // British Pound
	SAR Currency = "SAR" // Saudi Riyal
)

// BaseCurrency is the currency all reporting totals are normalized into.
const BaseCurrency = TRY

// Money is a value object pairing a decimal amount with its currency.
// It is immutable - all operations return new Money instances.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney creates a new Money with the specified amount and currency
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if currency == "" {
		return Money{}, errors.New("currency cannot be empty")
	}
	return Money{
		amount:   amount,
		currency: currency,
	}, nil
}

// NewMoneyTRY creates Money in the base currency
func NewMoneyTRY(amount decimal.Decimal) Money {
	return Money{amount: amount, currency: TRY}
}

// ToBase converts this Money into the base currency using the exchange-rate
// multiplier stored on the record. Base-currency amounts pass through untouched
// even when a stale rate is present; a zero rate falls back to 1, which keeps
// the record in the totals at face value (known precision risk, see DESIGN.md).
func (m Money) ToBase(exchangeRate decimal.Decimal) Money {
	if m.currency == BaseCurrency || m.currency == "" {
		return Money{amount: m.amount, currency: BaseCurrency}
	}
	if exchangeRate.IsZero() {
		return Money{amount: m.amount, currency: BaseCurrency}
	}
	return Money{amount: m.amount.Mul(exchangeRate), currency: BaseCurrency}
}

// NormalizeToBase converts a native-currency amount to the base currency. It is
// the decimal-valued shorthand every record accessor uses; the conversion rules
// themselves live on Money.ToBase.
func NormalizeToBase(amount decimal.Decimal, currency Currency, exchangeRate decimal.Decimal) decimal.Decimal {
	return Money{amount: amount, currency: currency}.ToBase(exchangeRate).Amount()
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return m.currency
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equals returns true if both Money values are equal (same amount and currency)
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String returns a string representation of the Money
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}
