package report

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vakif/backend/internal/domain/finance"
)

var oneHundred = decimal.NewFromInt(100)

// Dimension describes how a transaction maps onto a grouping key. Key returns
// the stable identity of the group (empty means the transaction belongs to no
// group and is skipped); Name returns the denormalized display label carried on
// the transaction itself, used when the key is not among the seeded entries.
type Dimension struct {
	Key  func(finance.Transaction) string
	Name func(finance.Transaction) string
}

// SeedEntry pre-registers a known dimension value so that zero-activity groups
// can still surface when allow-listed.
type SeedEntry struct {
	Key  string
	Name string
}

// group is the mutable accumulator behind one table row.
type group struct {
	name    string
	income  decimal.Decimal
	expense decimal.Decimal
}

// Aggregate groups normalized transaction amounts by the given dimension and
// produces the ordered table rows of a report. Seeds are inserted with zero
// totals first; transactions referencing an unseeded key create their entry on
// the fly from the transaction's own name field, so rows survive deleted
// foreign keys. Rows are kept when they have activity or their name is in
// alwaysShown, get a percentage share of the total absolute volume, and sort by
// descending |income + expense|.
func Aggregate(transactions []finance.Transaction, dim Dimension, seeds []SeedEntry, alwaysShown map[string]bool) []Row {
	groups := make(map[string]*group)
	order := make([]string, 0, len(seeds))
	for _, s := range seeds {
		if _, ok := groups[s.Key]; ok {
			continue
		}
		groups[s.Key] = &group{name: s.Name, income: decimal.Zero, expense: decimal.Zero}
		order = append(order, s.Key)
	}

	for _, tx := range transactions {
		key := dim.Key(tx)
		if key == "" {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &group{name: dim.Name(tx), income: decimal.Zero, expense: decimal.Zero}
			groups[key] = g
			order = append(order, key)
		}
		switch tx.Type {
		case finance.TransactionTypeIncome:
			g.income = g.income.Add(tx.BaseAmount())
		case finance.TransactionTypeExpense:
			g.expense = g.expense.Add(tx.BaseAmount())
		}
	}

	totalVolume := decimal.Zero
	for _, g := range groups {
		totalVolume = totalVolume.Add(g.income.Abs()).Add(g.expense.Abs())
	}

	rows := make([]Row, 0, len(groups))
	for _, key := range order {
		g := groups[key]
		hasActivity := !g.income.IsZero() || !g.expense.IsZero()
		if !hasActivity && !alwaysShown[g.name] {
			continue
		}
		percentage := decimal.Zero
		if !totalVolume.IsZero() {
			volume := g.income.Abs().Add(g.expense.Abs())
			percentage = volume.Div(totalVolume).Mul(oneHundred)
		}
		rows = append(rows, Row{
			Label:      g.name,
			Income:     g.income,
			Expense:    g.expense,
			Net:        g.income.Sub(g.expense),
			Percentage: percentage,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		vi := rows[i].Income.Add(rows[i].Expense).Abs()
		vj := rows[j].Income.Add(rows[j].Expense).Abs()
		return vi.GreaterThan(vj)
	})
	return rows
}

// Totals sums realized income and expense over already-filtered transactions.
func Totals(transactions []finance.Transaction) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, tx := range transactions {
		switch tx.Type {
		case finance.TransactionTypeIncome:
			income = income.Add(tx.BaseAmount())
		case finance.TransactionTypeExpense:
			expense = expense.Add(tx.BaseAmount())
		}
	}
	return income, expense
}
