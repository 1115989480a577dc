package core

import (
	"strings"
	"time"
)

// DefaultCategoryColor is assigned when a category is created without
// an explicit color.
const DefaultCategoryColor = "#6366f1"

// UncategorizedLabel is the display name for transactions with no
// category reference.
const UncategorizedLabel = "Uncategorized"

// TxKind discriminates the two structurally identical transaction
// tables.
type TxKind string

const (
	KindExpense TxKind = "expense"
	KindIncome  TxKind = "income"
)

type (
	User struct {
		ID           int64     `json:"id"`
		Email        string    `json:"email"`
		PasswordHash string    `json:"-"`
		Name         string    `json:"name"`
		CreatedAt    time.Time `json:"createdAt"`
	}

	Category struct {
		ID     int64  `json:"id"`
		UserID int64  `json:"userId"`
		Name   string `json:"name"`
		Color  string `json:"color"`
	}

	// Transaction is an expense or income row. Category is resolved
	// on reads and nil when the row is uncategorized.
	Transaction struct {
		ID          int64     `json:"id"`
		UserID      int64     `json:"userId"`
		Amount      float64   `json:"amount"`
		Description string    `json:"description"`
		Date        time.Time `json:"date"`
		CategoryID  *int64    `json:"categoryId"`
		Category    *Category `json:"category"`
	}

	// NewTransaction carries the fields accepted when creating an
	// expense or income.
	NewTransaction struct {
		Amount      float64
		Description string
		Date        time.Time // zero means "now"
		CategoryID  *int64
	}

	NewCategory struct {
		Name  string
		Color string
	}
)

// CategoryName returns the resolved category name or the
// uncategorized label.
func (t Transaction) CategoryName() string {
	if t.Category == nil {
		return UncategorizedLabel
	}
	return t.Category.Name
}

func (n NewTransaction) Validate() error {
	if n.Amount <= 0 {
		return ValidationError("valid amount is required")
	}
	return nil
}

func (n NewCategory) Validate() error {
	if strings.TrimSpace(n.Name) == "" {
		return ValidationError("category name is required")
	}
	return nil
}
