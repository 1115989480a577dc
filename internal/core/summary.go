package core

import "sort"

const recentLimit = 10

type (
	// Totals is the headline figures of the dashboard.
	Totals struct {
		TotalExpenses float64 `json:"totalExpenses"`
		TotalIncomes  float64 `json:"totalIncomes"`
		Balance       float64 `json:"balance"`
	}

	// RecentTransaction is a transaction tagged with its kind for the
	// merged recent-activity list.
	RecentTransaction struct {
		Transaction
		Type TxKind `json:"type"`
	}

	// DashboardView is the read-only summary computed from a user's
	// expenses and incomes. Nothing in it is persisted.
	DashboardView struct {
		Summary            Totals              `json:"summary"`
		ExpenseByCategory  map[string]float64  `json:"expenseByCategory"`
		IncomeByCategory   map[string]float64  `json:"incomeByCategory"`
		RecentTransactions []RecentTransaction `json:"recentTransactions"`
	}
)

// Summarize aggregates a user's expenses and incomes into a dashboard
// view: totals, per-category sums keyed by category name (or
// "Uncategorized"), and the merged recent-transaction list.
//
// The recent list is built in two stages: each collection is sorted by
// date descending and cut to 10 before the merge, then the merged list
// is re-sorted and cut to 10 again. A kind with more than 10 entries
// newer than the other kind's can therefore crowd out its own older
// rows even when those would make a single global top 10. Existing
// clients depend on that ordering, so it stays.
func Summarize(expenses, incomes []Transaction) DashboardView {
	view := DashboardView{
		ExpenseByCategory: make(map[string]float64),
		IncomeByCategory:  make(map[string]float64),
	}

	for _, e := range expenses {
		view.Summary.TotalExpenses += e.Amount
		view.ExpenseByCategory[e.CategoryName()] += e.Amount
	}
	for _, i := range incomes {
		view.Summary.TotalIncomes += i.Amount
		view.IncomeByCategory[i.CategoryName()] += i.Amount
	}
	view.Summary.Balance = view.Summary.TotalIncomes - view.Summary.TotalExpenses

	recent := append(
		tagRecent(expenses, KindExpense),
		tagRecent(incomes, KindIncome)...,
	)
	sortByDateDesc(recent)
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	view.RecentTransactions = recent

	return view
}

// tagRecent returns the newest rows of one kind, already truncated to
// the per-kind limit.
func tagRecent(txs []Transaction, kind TxKind) []RecentTransaction {
	tagged := make([]RecentTransaction, len(txs))
	for i, t := range txs {
		tagged[i] = RecentTransaction{Transaction: t, Type: kind}
	}
	sortByDateDesc(tagged)
	if len(tagged) > recentLimit {
		tagged = tagged[:recentLimit]
	}
	return tagged
}

func sortByDateDesc(txs []RecentTransaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
}
