package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"fintrack/internal/core"
	"fintrack/internal/storage"
)

// CategoryService is the single, strictly user-scoped implementation
// of category CRUD. Cross-user access surfaces as NotFound, never as
// Forbidden, so row existence is not leaked.
type CategoryService struct {
	storage *storage.SQLiteRepository
}

func NewCategoryService(storage *storage.SQLiteRepository) *CategoryService {
	return &CategoryService{storage: storage}
}

func (s *CategoryService) List(ctx context.Context, userID int64) ([]core.Category, error) {
	categories, err := s.storage.ListCategories(ctx, userID)
	if err != nil {
		return nil, core.Internal("list categories", err)
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, userID, id int64) (core.Category, error) {
	category, err := s.storage.GetCategory(ctx, userID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Category{}, core.NotFound("category not found")
		}
		return core.Category{}, core.Internal("get category", err)
	}
	return category, nil
}

func (s *CategoryService) Create(ctx context.Context, userID int64, nc core.NewCategory) (core.Category, error) {
	nc.Name = strings.TrimSpace(nc.Name)
	if err := nc.Validate(); err != nil {
		return core.Category{}, err
	}
	if nc.Color == "" {
		nc.Color = core.DefaultCategoryColor
	}

	category, err := s.storage.CreateCategory(ctx, userID, nc)
	if err != nil {
		return core.Category{}, core.Internal("create category", err)
	}
	return category, nil
}

// Update merges the patch into the existing row: empty name or color
// keeps the prior value.
func (s *CategoryService) Update(ctx context.Context, userID, id int64, patch core.CategoryPatch) (core.Category, error) {
	existing, err := s.Get(ctx, userID, id)
	if err != nil {
		return core.Category{}, err
	}

	name := existing.Name
	if strings.TrimSpace(patch.Name) != "" {
		name = patch.Name
	}
	color := existing.Color
	if patch.Color != "" {
		color = patch.Color
	}

	category, err := s.storage.UpdateCategory(ctx, userID, id, name, color)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Category{}, core.NotFound("category not found")
		}
		return core.Category{}, core.Internal("update category", err)
	}
	return category, nil
}

// Delete removes the category. Transactions that referenced it are
// kept and become uncategorized.
func (s *CategoryService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.storage.DeleteCategory(ctx, userID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.NotFound("category not found")
		}
		return core.Internal("delete category", err)
	}
	return nil
}
