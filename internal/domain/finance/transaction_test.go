package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vakif/backend/internal/domain/shared/valueobject"
)

func TestTransactionBaseAmount(t *testing.T) {
	t.Run("uses stored base amount when present", func(t *testing.T) {
		tx := Transaction{
			Amount:               decimal.NewFromInt(50),
			Currency:             valueobject.USD,
			ExchangeRate:         decimal.NewFromInt(30),
			AmountInBaseCurrency: decimal.NewFromInt(1500),
		}
		assert.True(t, tx.BaseAmount().Equal(decimal.NewFromInt(1500)))
	})

	t.Run("derives from rate when base amount missing", func(t *testing.T) {
		tx := Transaction{
			Amount:       decimal.NewFromInt(50),
			Currency:     valueobject.USD,
			ExchangeRate: decimal.NewFromInt(30),
		}
		assert.True(t, tx.BaseAmount().Equal(decimal.NewFromInt(1500)))
	})

	t.Run("base currency ignores stale rate", func(t *testing.T) {
		tx := Transaction{
			Amount:       decimal.NewFromInt(1000),
			Currency:     valueobject.TRY,
			ExchangeRate: decimal.NewFromInt(30),
		}
		assert.True(t, tx.BaseAmount().Equal(decimal.NewFromInt(1000)))
	})

	t.Run("base currency ignores stored amount derived from stale rate", func(t *testing.T) {
		tx := Transaction{
			Amount:               decimal.NewFromInt(1000),
			Currency:             valueobject.TRY,
			ExchangeRate:         decimal.NewFromInt(30),
			AmountInBaseCurrency: decimal.NewFromInt(30000),
		}
		assert.True(t, tx.BaseAmount().Equal(decimal.NewFromInt(1000)))
	})

	t.Run("empty currency treated as base", func(t *testing.T) {
		tx := Transaction{
			Amount:               decimal.NewFromInt(250),
			ExchangeRate:         decimal.NewFromInt(2),
			AmountInBaseCurrency: decimal.NewFromInt(500),
		}
		assert.True(t, tx.BaseAmount().Equal(decimal.NewFromInt(250)))
	})
}

func TestFilterRealized(t *testing.T) {
	transactions := []Transaction{
		{ID: uuid.New(), Status: TransactionStatusApproved},
		{ID: uuid.New(), Status: TransactionStatusPending},
		{ID: uuid.New(), Status: TransactionStatusApproved},
		{ID: uuid.New(), Status: TransactionStatusDraft},
		{ID: uuid.New(), Status: TransactionStatusRejected},
	}

	realized := FilterRealized(transactions)
	assert.Len(t, realized, 2)
	for _, tx := range realized {
		assert.True(t, tx.IsRealized())
	}
}

func TestFilterByType(t *testing.T) {
	transactions := []Transaction{
		{Type: TransactionTypeIncome},
		{Type: TransactionTypeExpense},
		{Type: TransactionTypeTransfer},
		{Type: TransactionTypeExpense},
	}

	expenses := FilterByType(transactions, TransactionTypeExpense)
	assert.Len(t, expenses, 2)

	both := FilterByType(transactions, TransactionTypeIncome, TransactionTypeExpense)
	assert.Len(t, both, 3)
}

func TestBudgetOverlapsPeriod(t *testing.T) {
	budget := Budget{
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, budget.OverlapsPeriod(
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	))
	assert.True(t, budget.OverlapsPeriod(
		time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	))
	assert.False(t, budget.OverlapsPeriod(
		time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC),
	))
}
