package services

import (
	"context"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

// DashboardService fetches a user's full expense and income history
// and hands it to the pure aggregation in core. Nothing is persisted.
type DashboardService struct {
	storage *storage.SQLiteRepository
}

func NewDashboardService(storage *storage.SQLiteRepository) *DashboardService {
	return &DashboardService{storage: storage}
}

func (s *DashboardService) Summarize(ctx context.Context, userID int64) (core.DashboardView, error) {
	expenses, err := s.storage.ListTransactions(ctx, core.KindExpense, userID, storage.TxFilter{})
	if err != nil {
		return core.DashboardView{}, core.Internal("list expenses", err)
	}

	incomes, err := s.storage.ListTransactions(ctx, core.KindIncome, userID, storage.TxFilter{})
	if err != nil {
		return core.DashboardView{}, core.Internal("list incomes", err)
	}

	return core.Summarize(expenses, incomes), nil
}
