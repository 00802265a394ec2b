package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vakif/backend/internal/domain/finance"
)

// Granularity selects the bucketing resolution of a chart series.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// turkishMonths maps time.Month (1-based) to the localized label shown on
// monthly chart axes.
var turkishMonths = [13]string{
	"",
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

// Bucket is one time-indexed accumulation unit of a chart series.
type Bucket struct {
	Key     string
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// BucketTransactions groups transactions into chronologically ordered day or
// month buckets. Only periods containing at least one transaction are emitted;
// empty periods in the middle of the range are skipped. Period keys are
// YYYY-MM for months and YYYY-MM-DD for days, so lexicographic order equals
// chronological order.
func BucketTransactions(transactions []finance.Transaction, granularity Granularity) []Bucket {
	accum := make(map[string]*Bucket)
	for _, tx := range transactions {
		key, label := periodOf(tx, granularity)
		b, ok := accum[key]
		if !ok {
			b = &Bucket{Key: key, Label: label, Income: decimal.Zero, Expense: decimal.Zero}
			accum[key] = b
		}
		switch tx.Type {
		case finance.TransactionTypeIncome:
			b.Income = b.Income.Add(tx.BaseAmount())
		case finance.TransactionTypeExpense:
			b.Expense = b.Expense.Add(tx.BaseAmount())
		}
	}

	buckets := make([]Bucket, 0, len(accum))
	for _, b := range accum {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Key < buckets[j].Key })
	return buckets
}

func periodOf(tx finance.Transaction, granularity Granularity) (key, label string) {
	if granularity == GranularityDay {
		key = tx.Date.Format("2006-01-02")
		label = tx.Date.Format("02.01")
		return key, label
	}
	key = tx.Date.Format("2006-01")
	label = turkishMonths[tx.Date.Month()]
	return key, label
}

// ToChartData flattens ordered buckets into the label-aligned series shape.
func ToChartData(buckets []Bucket) ChartData {
	chart := ChartData{
		Labels:  make([]string, 0, len(buckets)),
		Income:  make([]decimal.Decimal, 0, len(buckets)),
		Expense: make([]decimal.Decimal, 0, len(buckets)),
	}
	for _, b := range buckets {
		chart.Labels = append(chart.Labels, b.Label)
		chart.Income = append(chart.Income, b.Income)
		chart.Expense = append(chart.Expense, b.Expense)
	}
	return chart
}

// FillGaps expands a sparse bucket series into a contiguous one covering
// [start, end], inserting zero-valued buckets for periods without activity.
// Sparse output is the default everywhere; callers opt into gap filling per
// series.
func FillGaps(buckets []Bucket, start, end time.Time, granularity Granularity) []Bucket {
	byKey := make(map[string]Bucket, len(buckets))
	for _, b := range buckets {
		byKey[b.Key] = b
	}

	step := func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	if granularity == GranularityDay {
		step = func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }
		cursor = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	}

	filled := make([]Bucket, 0, len(buckets))
	for !cursor.After(end) {
		key, label := periodOf(finance.Transaction{Date: cursor}, granularity)
		if b, ok := byKey[key]; ok {
			filled = append(filled, b)
		} else {
			filled = append(filled, Bucket{Key: key, Label: label, Income: decimal.Zero, Expense: decimal.Zero})
		}
		cursor = step(cursor)
	}
	return filled
}
