package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vakif/backend/internal/domain/shared/valueobject"
)

// TransactionType classifies the direction of a transaction
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// TransactionStatus represents the approval lifecycle of a transaction
type TransactionStatus string

const (
	TransactionStatusDraft    TransactionStatus = "draft"
	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusApproved TransactionStatus = "approved"
	TransactionStatusRejected TransactionStatus = "rejected"
)

// Transaction is an immutable financial record snapshot. Amount is in the native
// currency; ExchangeRate is the multiplier to the base currency resolved at entry
// time. Only approved transactions count toward realized totals.
type Transaction struct {
	ID                   uuid.UUID
	FacilityID           uuid.UUID
	Type                 TransactionType
	Date                 time.Time
	Amount               decimal.Decimal
	Currency             valueobject.Currency
	ExchangeRate         decimal.Decimal
	AmountInBaseCurrency decimal.Decimal
	Status               TransactionStatus
	CategoryID           *uuid.UUID
	CategoryName         string
	VendorCustomerID     *uuid.UUID
	VendorCustomerName   string
	ProjectID            *uuid.UUID
	ProjectName          string
	Description          string
}

// BaseAmount returns the transaction amount normalized into the base currency.
// Base-currency records always report their native amount, even when the row
// carries a stale rate or a derived figure computed from it. For foreign
// currencies the stored AmountInBaseCurrency is preferred when present;
// otherwise the amount is derived from Amount and ExchangeRate.
func (t Transaction) BaseAmount() decimal.Decimal {
	if t.Currency == valueobject.BaseCurrency || t.Currency == "" {
		return t.Amount
	}
	if !t.AmountInBaseCurrency.IsZero() {
		return t.AmountInBaseCurrency
	}
	return valueobject.NormalizeToBase(t.Amount, t.Currency, t.ExchangeRate)
}

// IsRealized reports whether the transaction counts toward realized totals.
func (t Transaction) IsRealized() bool {
	return t.Status == TransactionStatusApproved
}

// FilterRealized returns only the approved transactions. Every reporting
// aggregation runs on the output of this single filter so that no report variant
// re-derives the approval condition on its own.
func FilterRealized(transactions []Transaction) []Transaction {
	realized := make([]Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.IsRealized() {
			realized = append(realized, tx)
		}
	}
	return realized
}

// FilterByType returns the transactions matching any of the given types.
func FilterByType(transactions []Transaction, types ...TransactionType) []Transaction {
	matched := make([]Transaction, 0, len(transactions))
	for _, tx := range transactions {
		for _, tt := range types {
			if tx.Type == tt {
				matched = append(matched, tx)
				break
			}
		}
	}
	return matched
}
