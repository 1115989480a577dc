package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"fintrack/internal/core"
)

// TxFilter narrows a transaction listing. Filters compose with AND;
// nil/empty fields are ignored.
type TxFilter struct {
	CategoryID *int64
	StartDate  *time.Time
	EndDate    *time.Time
	Search     string
}

func tableFor(kind core.TxKind) (string, error) {
	switch kind {
	case core.KindExpense:
		return "expenses", nil
	case core.KindIncome:
		return "incomes", nil
	default:
		return "", fmt.Errorf("unknown transaction kind %q", kind)
	}
}

const txColumns = `t.id, t.user_id, t.amount, t.description, t.date, t.category_id,
		c.id, c.user_id, c.name, c.color`

func scanTransaction(row interface{ Scan(...any) error }) (core.Transaction, error) {
	var (
		t          core.Transaction
		categoryID sql.NullInt64
		catID      sql.NullInt64
		catUserID  sql.NullInt64
		catName    sql.NullString
		catColor   sql.NullString
	)
	err := row.Scan(&t.ID, &t.UserID, &t.Amount, &t.Description, &t.Date, &categoryID,
		&catID, &catUserID, &catName, &catColor)
	if err != nil {
		return core.Transaction{}, err
	}
	if categoryID.Valid {
		t.CategoryID = &categoryID.Int64
	}
	if catID.Valid {
		t.Category = &core.Category{
			ID:     catID.Int64,
			UserID: catUserID.Int64,
			Name:   catName.String,
			Color:  catColor.String,
		}
	}
	return t, nil
}

// ListTransactions returns a user's expenses or incomes, newest
// first, with their categories resolved.
func (r *SQLiteRepository) ListTransactions(ctx context.Context, kind core.TxKind, userID int64, filter TxFilter) ([]core.Transaction, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + txColumns + `
		FROM ` + table + ` t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = ?`)
	args := []any{userID}

	if filter.CategoryID != nil {
		sb.WriteString(" AND t.category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.StartDate != nil {
		sb.WriteString(" AND t.date >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		sb.WriteString(" AND t.date <= ?")
		args = append(args, *filter.EndDate)
	}
	if filter.Search != "" {
		sb.WriteString(" AND t.description LIKE '%' || ? || '%'")
		args = append(args, filter.Search)
	}
	sb.WriteString(" ORDER BY t.date DESC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	txs := []core.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// GetTransaction performs a scoped lookup by (id, user_id).
func (r *SQLiteRepository) GetTransaction(ctx context.Context, kind core.TxKind, userID, id int64) (core.Transaction, error) {
	table, err := tableFor(kind)
	if err != nil {
		return core.Transaction{}, err
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+txColumns+`
		FROM `+table+` t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.id = ? AND t.user_id = ?`,
		id, userID,
	)
	t, err := scanTransaction(row)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get %s: %w", strings.TrimSuffix(table, "s"), err)
	}
	return t, nil
}

func (r *SQLiteRepository) CreateTransaction(ctx context.Context, kind core.TxKind, userID int64, nt core.NewTransaction) (core.Transaction, error) {
	table, err := tableFor(kind)
	if err != nil {
		return core.Transaction{}, err
	}

	var categoryID any
	if nt.CategoryID != nil {
		categoryID = *nt.CategoryID
	}

	var id int64
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO `+table+` (user_id, amount, description, date, category_id)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`,
		userID, nt.Amount, nt.Description, nt.Date, categoryID,
	).Scan(&id)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("create %s: %w", strings.TrimSuffix(table, "s"), err)
	}

	return r.GetTransaction(ctx, kind, userID, id)
}

// UpdateTransaction writes already-merged fields, scoped to the
// owner. The wrapped error is sql.ErrNoRows when nothing matched.
func (r *SQLiteRepository) UpdateTransaction(ctx context.Context, kind core.TxKind, userID, id int64, amount float64, description string, date time.Time, catID *int64) (core.Transaction, error) {
	table, err := tableFor(kind)
	if err != nil {
		return core.Transaction{}, err
	}

	var categoryID any
	if catID != nil {
		categoryID = *catID
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE `+table+`
		SET amount = ?, description = ?, date = ?, category_id = ?
		WHERE id = ? AND user_id = ?`,
		amount, description, date, categoryID, id, userID,
	)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("update %s: %w", strings.TrimSuffix(table, "s"), err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return core.Transaction{}, fmt.Errorf("update %s: %w", strings.TrimSuffix(table, "s"), err)
	} else if n == 0 {
		return core.Transaction{}, fmt.Errorf("update %s: %w", strings.TrimSuffix(table, "s"), sql.ErrNoRows)
	}

	return r.GetTransaction(ctx, kind, userID, id)
}

func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, kind core.TxKind, userID, id int64) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM `+table+`
		WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete %s: %w", strings.TrimSuffix(table, "s"), err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete %s: %w", strings.TrimSuffix(table, "s"), err)
	} else if n == 0 {
		return fmt.Errorf("delete %s: %w", strings.TrimSuffix(table, "s"), sql.ErrNoRows)
	}
	return nil
}
