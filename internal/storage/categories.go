package storage

import (
	"context"
	"database/sql"
	"fmt"

	"fintrack/internal/core"
)

// ListCategories returns all of a user's categories ordered by name.
func (r *SQLiteRepository) ListCategories(ctx context.Context, userID int64) ([]core.Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, color
		FROM categories
		WHERE user_id = ?
		ORDER BY name ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []core.Category{}
	for rows.Next() {
		var c core.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Color); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategory performs a scoped lookup by (id, user_id). A row owned
// by another user is indistinguishable from a missing one.
func (r *SQLiteRepository) GetCategory(ctx context.Context, userID, id int64) (core.Category, error) {
	var c core.Category
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, color
		FROM categories
		WHERE id = ? AND user_id = ?`,
		id, userID,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Color)
	if err != nil {
		return core.Category{}, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func (r *SQLiteRepository) CreateCategory(ctx context.Context, userID int64, nc core.NewCategory) (core.Category, error) {
	var c core.Category
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (user_id, name, color)
		VALUES (?, ?, ?)
		RETURNING id, user_id, name, color`,
		userID, nc.Name, nc.Color,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Color)
	if err != nil {
		return core.Category{}, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// UpdateCategory writes the already-merged name and color, scoped to
// the owner. The wrapped error is sql.ErrNoRows when nothing matched.
func (r *SQLiteRepository) UpdateCategory(ctx context.Context, userID, id int64, name, color string) (core.Category, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE categories SET name = ?, color = ?
		WHERE id = ? AND user_id = ?`,
		name, color, id, userID,
	)
	if err != nil {
		return core.Category{}, fmt.Errorf("update category: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return core.Category{}, fmt.Errorf("update category: %w", err)
	} else if n == 0 {
		return core.Category{}, fmt.Errorf("update category: %w", sql.ErrNoRows)
	}
	return r.GetCategory(ctx, userID, id)
}

// DeleteCategory removes the category. Referencing transactions keep
// existing with their category_id nulled by the schema's foreign key.
func (r *SQLiteRepository) DeleteCategory(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM categories
		WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("delete category: %w", err)
	} else if n == 0 {
		return fmt.Errorf("delete category: %w", sql.ErrNoRows)
	}
	return nil
}
