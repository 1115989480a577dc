package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

// TransactionService implements expense and income CRUD once;
// instantiate it per kind. All operations are scoped to the owning
// user, and a scoped miss is NotFound regardless of whether the row
// exists under someone else.
//
// A transaction's category reference is not cross-checked against the
// owning user. Tightening that would be a behavior change for
// existing clients, so it stays a plain foreign key.
type TransactionService struct {
	storage *storage.SQLiteRepository
	kind    core.TxKind
}

func NewTransactionService(storage *storage.SQLiteRepository, kind core.TxKind) *TransactionService {
	return &TransactionService{storage: storage, kind: kind}
}

// Kind reports which entity this instance serves.
func (s *TransactionService) Kind() core.TxKind { return s.kind }

func (s *TransactionService) notFound() error {
	return core.NotFound(fmt.Sprintf("%s not found", s.kind))
}

func (s *TransactionService) List(ctx context.Context, userID int64, filter storage.TxFilter) ([]core.Transaction, error) {
	txs, err := s.storage.ListTransactions(ctx, s.kind, userID, filter)
	if err != nil {
		return nil, core.Internal(fmt.Sprintf("list %ss", s.kind), err)
	}
	return txs, nil
}

func (s *TransactionService) Get(ctx context.Context, userID, id int64) (core.Transaction, error) {
	tx, err := s.storage.GetTransaction(ctx, s.kind, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Transaction{}, s.notFound()
		}
		return core.Transaction{}, core.Internal(fmt.Sprintf("get %s", s.kind), err)
	}
	return tx, nil
}

// Create validates the amount before any write. A zero date defaults
// to now; a nil category means uncategorized.
func (s *TransactionService) Create(ctx context.Context, userID int64, nt core.NewTransaction) (core.Transaction, error) {
	if err := nt.Validate(); err != nil {
		return core.Transaction{}, err
	}
	if nt.Date.IsZero() {
		nt.Date = time.Now()
	}

	tx, err := s.storage.CreateTransaction(ctx, s.kind, userID, nt)
	if err != nil {
		return core.Transaction{}, core.Internal(fmt.Sprintf("create %s", s.kind), err)
	}
	return tx, nil
}

// Update merges the patch into the existing row field by field; see
// core.TransactionPatch for the per-field semantics.
func (s *TransactionService) Update(ctx context.Context, userID, id int64, patch core.TransactionPatch) (core.Transaction, error) {
	existing, err := s.Get(ctx, userID, id)
	if err != nil {
		return core.Transaction{}, err
	}

	amount := existing.Amount
	if patch.Amount != 0 {
		if patch.Amount < 0 {
			return core.Transaction{}, core.ValidationError("valid amount is required")
		}
		amount = patch.Amount
	}

	description := existing.Description
	if patch.Description.Set {
		if patch.Description.Value != nil {
			description = *patch.Description.Value
		} else {
			description = ""
		}
	}

	date := existing.Date
	if !patch.Date.IsZero() {
		date = patch.Date
	}

	categoryID := existing.CategoryID
	if patch.CategoryID.Set {
		if patch.CategoryID.Value != nil && *patch.CategoryID.Value != 0 {
			categoryID = patch.CategoryID.Value
		} else {
			categoryID = nil
		}
	}

	tx, err := s.storage.UpdateTransaction(ctx, s.kind, userID, id, amount, description, date, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Transaction{}, s.notFound()
		}
		return core.Transaction{}, core.Internal(fmt.Sprintf("update %s", s.kind), err)
	}
	return tx, nil
}

func (s *TransactionService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.storage.DeleteTransaction(ctx, s.kind, userID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s.notFound()
		}
		return core.Internal(fmt.Sprintf("delete %s", s.kind), err)
	}
	return nil
}
