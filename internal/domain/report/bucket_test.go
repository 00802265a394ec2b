package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vakif/backend/internal/domain/finance"
	"github.com/vakif/backend/internal/domain/shared/valueobject"
)

func tx(txType finance.TransactionType, date time.Time, amount int64) finance.Transaction {
	return finance.Transaction{
		Type:     txType,
		Date:     date,
		Amount:   decimal.NewFromInt(amount),
		Currency: valueobject.TRY,
		Status:   finance.TransactionStatusApproved,
	}
}

func TestBucketTransactionsByMonth(t *testing.T) {
	transactions := []finance.Transaction{
		tx(finance.TransactionTypeIncome, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), 1000),
		tx(finance.TransactionTypeExpense, time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC), 400),
		tx(finance.TransactionTypeExpense, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), 100),
	}

	buckets := BucketTransactions(transactions, GranularityMonth)
	require.Len(t, buckets, 2)

	chart := ToChartData(buckets)
	assert.Equal(t, []string{"Şubat", "Mart"}, chart.Labels)
	assert.True(t, chart.Income[0].Equal(decimal.NewFromInt(1000)))
	assert.True(t, chart.Income[1].IsZero())
	assert.True(t, chart.Expense[0].Equal(decimal.NewFromInt(400)))
	assert.True(t, chart.Expense[1].Equal(decimal.NewFromInt(100)))
}

func TestBucketTransactionsSparseMonths(t *testing.T) {
	// January and April only; February and March must not be emitted.
	transactions := []finance.Transaction{
		tx(finance.TransactionTypeIncome, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), 50),
		tx(finance.TransactionTypeIncome, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), 200),
	}

	buckets := BucketTransactions(transactions, GranularityMonth)
	require.Len(t, buckets, 2)
	assert.Equal(t, "2026-01", buckets[0].Key)
	assert.Equal(t, "2026-04", buckets[1].Key)
	assert.Equal(t, "Ocak", buckets[0].Label)
	assert.Equal(t, "Nisan", buckets[1].Label)
}

func TestBucketTransactionsByDay(t *testing.T) {
	transactions := []finance.Transaction{
		tx(finance.TransactionTypeExpense, time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC), 75),
		tx(finance.TransactionTypeIncome, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), 300),
	}

	buckets := BucketTransactions(transactions, GranularityDay)
	require.Len(t, buckets, 2)
	assert.Equal(t, "2026-05-01", buckets[0].Key)
	assert.Equal(t, "01.05", buckets[0].Label)
	assert.Equal(t, "03.05", buckets[1].Label)
}

func TestFillGapsMonths(t *testing.T) {
	transactions := []finance.Transaction{
		tx(finance.TransactionTypeIncome, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), 200),
		tx(finance.TransactionTypeIncome, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), 50),
	}

	sparse := BucketTransactions(transactions, GranularityMonth)
	filled := FillGaps(sparse,
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
		GranularityMonth,
	)

	require.Len(t, filled, 4)
	assert.Equal(t, []string{"2026-01", "2026-02", "2026-03", "2026-04"},
		[]string{filled[0].Key, filled[1].Key, filled[2].Key, filled[3].Key})
	assert.Equal(t, "Şubat", filled[1].Label)
	assert.True(t, filled[1].Income.IsZero())
	assert.True(t, filled[1].Expense.IsZero())
	assert.True(t, filled[0].Income.Equal(decimal.NewFromInt(200)))
	assert.True(t, filled[3].Income.Equal(decimal.NewFromInt(50)))
}

func TestFillGapsDays(t *testing.T) {
	transactions := []finance.Transaction{
		tx(finance.TransactionTypeExpense, time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), 10),
	}

	sparse := BucketTransactions(transactions, GranularityDay)
	filled := FillGaps(sparse,
		time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC),
		GranularityDay,
	)

	require.Len(t, filled, 3)
	assert.Equal(t, "01.05", filled[0].Label)
	assert.True(t, filled[0].Expense.IsZero())
	assert.True(t, filled[1].Expense.Equal(decimal.NewFromInt(10)))
	assert.True(t, filled[2].Expense.IsZero())
}

func TestBucketCompleteness(t *testing.T) {
	// Bucketed income must sum to total income across the input, expense likewise.
	transactions := []finance.Transaction{
		tx(finance.TransactionTypeIncome, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 100),
		tx(finance.TransactionTypeIncome, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), 250),
		tx(finance.TransactionTypeExpense, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), 80),
		tx(finance.TransactionTypeExpense, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), 20),
	}

	buckets := BucketTransactions(transactions, GranularityMonth)
	income, expense := decimal.Zero, decimal.Zero
	for _, b := range buckets {
		income = income.Add(b.Income)
		expense = expense.Add(b.Expense)
	}
	assert.True(t, income.Equal(decimal.NewFromInt(350)))
	assert.True(t, expense.Equal(decimal.NewFromInt(100)))
}
