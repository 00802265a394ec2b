package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vakif/backend/internal/domain/finance"
	"github.com/vakif/backend/internal/domain/shared/valueobject"
)

func categoryDimension() Dimension {
	return Dimension{
		Key: func(t finance.Transaction) string {
			if t.CategoryID == nil {
				return ""
			}
			return t.CategoryID.String()
		},
		Name: func(t finance.Transaction) string { return t.CategoryName },
	}
}

func catTx(txType finance.TransactionType, categoryID uuid.UUID, categoryName string, amount int64) finance.Transaction {
	return finance.Transaction{
		Type:         txType,
		Date:         time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:       decimal.NewFromInt(amount),
		Currency:     valueobject.TRY,
		Status:       finance.TransactionStatusApproved,
		CategoryID:   &categoryID,
		CategoryName: categoryName,
	}
}

func TestAggregateByCategory(t *testing.T) {
	rentID := uuid.New()
	aidID := uuid.New()

	transactions := []finance.Transaction{
		catTx(finance.TransactionTypeExpense, rentID, "Kira", 3000),
		catTx(finance.TransactionTypeIncome, aidID, "Bağış", 1000),
		catTx(finance.TransactionTypeExpense, rentID, "Kira", 1000),
	}
	seeds := []SeedEntry{
		{Key: rentID.String(), Name: "Kira"},
		{Key: aidID.String(), Name: "Bağış"},
	}

	rows := Aggregate(transactions, categoryDimension(), seeds, nil)
	require.Len(t, rows, 2)

	// Sorted by descending |income + expense|.
	assert.Equal(t, "Kira", rows[0].Label)
	assert.True(t, rows[0].Expense.Equal(decimal.NewFromInt(4000)))
	assert.True(t, rows[0].Net.Equal(decimal.NewFromInt(-4000)))
	assert.Equal(t, "Bağış", rows[1].Label)
	assert.True(t, rows[1].Net.Equal(decimal.NewFromInt(1000)))

	assert.True(t, rows[0].Percentage.Equal(decimal.NewFromInt(80)))
	assert.True(t, rows[1].Percentage.Equal(decimal.NewFromInt(20)))
}

func TestAggregatePercentageBound(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	transactions := []finance.Transaction{
		catTx(finance.TransactionTypeIncome, a, "A", 333),
		catTx(finance.TransactionTypeExpense, b, "B", 333),
		catTx(finance.TransactionTypeIncome, c, "C", 334),
	}

	rows := Aggregate(transactions, categoryDimension(), nil, nil)
	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.Percentage)
	}
	epsilon := decimal.RequireFromString("0.0001")
	assert.True(t, sum.LessThanOrEqual(oneHundred.Add(epsilon)), "percentages sum to %s", sum)
}

func TestAggregateZeroActivityFiltering(t *testing.T) {
	activeID := uuid.New()
	idleID := uuid.New()
	otherID := uuid.New()

	transactions := []finance.Transaction{
		catTx(finance.TransactionTypeIncome, activeID, "Aktif", 500),
	}
	seeds := []SeedEntry{
		{Key: activeID.String(), Name: "Aktif"},
		{Key: idleID.String(), Name: "Boş"},
		{Key: otherID.String(), Name: finance.CategoryOtherIncome},
	}

	rows := Aggregate(transactions, categoryDimension(), seeds, finance.AlwaysShownCategories)
	require.Len(t, rows, 2)
	assert.Equal(t, "Aktif", rows[0].Label)
	// Zero-activity synthetic category survives; the plain idle one does not.
	assert.Equal(t, finance.CategoryOtherIncome, rows[1].Label)
}

func TestAggregateDanglingForeignKey(t *testing.T) {
	// A transaction whose category was deleted still gets a row, named from the
	// denormalized field carried on the transaction itself.
	ghostID := uuid.New()
	transactions := []finance.Transaction{
		catTx(finance.TransactionTypeExpense, ghostID, "Silinmiş Kategori", 250),
	}

	rows := Aggregate(transactions, categoryDimension(), nil, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, "Silinmiş Kategori", rows[0].Label)
	assert.True(t, rows[0].Expense.Equal(decimal.NewFromInt(250)))
}

func TestAggregateSkipsKeylessTransactions(t *testing.T) {
	transactions := []finance.Transaction{
		{
			Type:     finance.TransactionTypeExpense,
			Amount:   decimal.NewFromInt(100),
			Currency: valueobject.TRY,
			Status:   finance.TransactionStatusApproved,
		},
	}

	rows := Aggregate(transactions, categoryDimension(), nil, nil)
	assert.Empty(t, rows)
}

func TestTotals(t *testing.T) {
	id := uuid.New()
	transactions := []finance.Transaction{
		catTx(finance.TransactionTypeIncome, id, "X", 1000),
		catTx(finance.TransactionTypeExpense, id, "X", 400),
		catTx(finance.TransactionTypeExpense, id, "X", 100),
	}

	income, expense := Totals(transactions)
	assert.True(t, income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, expense.Equal(decimal.NewFromInt(500)))
}

func TestTotalsNormalizesForeignCurrency(t *testing.T) {
	// 50 USD at rate 30 lands in totals as 1500, never as 50.
	usd := finance.Transaction{
		Type:         finance.TransactionTypeExpense,
		Amount:       decimal.NewFromInt(50),
		Currency:     valueobject.USD,
		ExchangeRate: decimal.NewFromInt(30),
		Status:       finance.TransactionStatusApproved,
	}

	_, expense := Totals([]finance.Transaction{usd})
	assert.True(t, expense.Equal(decimal.NewFromInt(1500)))
}
