package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"fintrack/internal/core"
)

type RepositoryTestSuite struct {
	suite.Suite
	repo *SQLiteRepository
	ctx  context.Context

	alice int64
	bob   int64
}

func (s *RepositoryTestSuite) SetupTest() {
	repo, err := NewSQLiteRepository(":memory:")
	require.NoError(s.T(), err, "failed to create test database")
	s.repo = repo
	s.ctx = context.Background()

	alice, err := repo.CreateUser(s.ctx, "alice@example.com", "hash-a", "Alice")
	require.NoError(s.T(), err)
	bob, err := repo.CreateUser(s.ctx, "bob@example.com", "hash-b", "Bob")
	require.NoError(s.T(), err)
	s.alice = alice.ID
	s.bob = bob.ID
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.repo != nil {
		s.repo.Close()
	}
}

func (s *RepositoryTestSuite) date(day int) time.Time {
	return time.Date(2025, 3, day, 10, 0, 0, 0, time.UTC)
}

func (s *RepositoryTestSuite) mustCategory(userID int64, name string) core.Category {
	c, err := s.repo.CreateCategory(s.ctx, userID, core.NewCategory{Name: name, Color: core.DefaultCategoryColor})
	require.NoError(s.T(), err)
	return c
}

func (s *RepositoryTestSuite) mustExpense(userID int64, amount float64, desc string, day int, catID *int64) core.Transaction {
	tx, err := s.repo.CreateTransaction(s.ctx, core.KindExpense, userID, core.NewTransaction{
		Amount:      amount,
		Description: desc,
		Date:        s.date(day),
		CategoryID:  catID,
	})
	require.NoError(s.T(), err)
	return tx
}

func (s *RepositoryTestSuite) TestUserUniqueEmail() {
	_, err := s.repo.CreateUser(s.ctx, "alice@example.com", "hash", "Other Alice")
	assert.Error(s.T(), err, "duplicate email must be rejected by the schema")
}

func (s *RepositoryTestSuite) TestGetUserByEmail() {
	u, err := s.repo.GetUserByEmail(s.ctx, "alice@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), s.alice, u.ID)
	assert.Equal(s.T(), "hash-a", u.PasswordHash)

	_, err = s.repo.GetUserByEmail(s.ctx, "nobody@example.com")
	assert.ErrorIs(s.T(), err, sql.ErrNoRows)
}

func (s *RepositoryTestSuite) TestCategoryOrderedByName() {
	s.mustCategory(s.alice, "Transport")
	s.mustCategory(s.alice, "Food")
	s.mustCategory(s.bob, "Bob stuff")

	categories, err := s.repo.ListCategories(s.ctx, s.alice)
	require.NoError(s.T(), err)
	require.Len(s.T(), categories, 2)
	assert.Equal(s.T(), "Food", categories[0].Name)
	assert.Equal(s.T(), "Transport", categories[1].Name)
}

func (s *RepositoryTestSuite) TestCategoryScopedLookup() {
	c := s.mustCategory(s.alice, "Food")

	_, err := s.repo.GetCategory(s.ctx, s.bob, c.ID)
	assert.ErrorIs(s.T(), err, sql.ErrNoRows, "cross-user get must look missing")

	_, err = s.repo.UpdateCategory(s.ctx, s.bob, c.ID, "Hijacked", "#000000")
	assert.ErrorIs(s.T(), err, sql.ErrNoRows)

	err = s.repo.DeleteCategory(s.ctx, s.bob, c.ID)
	assert.ErrorIs(s.T(), err, sql.ErrNoRows)

	// Still intact for its owner.
	got, err := s.repo.GetCategory(s.ctx, s.alice, c.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Food", got.Name)
}

func (s *RepositoryTestSuite) TestDeleteCategoryLeavesTransactions() {
	c := s.mustCategory(s.alice, "Food")
	tx := s.mustExpense(s.alice, 12.50, "lunch", 1, &c.ID)
	require.NotNil(s.T(), tx.Category)

	require.NoError(s.T(), s.repo.DeleteCategory(s.ctx, s.alice, c.ID))

	got, err := s.repo.GetTransaction(s.ctx, core.KindExpense, s.alice, tx.ID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got.CategoryID, "category reference must be cleared")
	assert.Nil(s.T(), got.Category)
	assert.Equal(s.T(), 12.50, got.Amount, "amount untouched")
}

func (s *RepositoryTestSuite) TestTransactionScopedLookup() {
	tx := s.mustExpense(s.alice, 20, "alice only", 1, nil)

	_, err := s.repo.GetTransaction(s.ctx, core.KindExpense, s.bob, tx.ID)
	assert.ErrorIs(s.T(), err, sql.ErrNoRows)

	_, err = s.repo.UpdateTransaction(s.ctx, core.KindExpense, s.bob, tx.ID, 1, "", s.date(1), nil)
	assert.ErrorIs(s.T(), err, sql.ErrNoRows)

	err = s.repo.DeleteTransaction(s.ctx, core.KindExpense, s.bob, tx.ID)
	assert.ErrorIs(s.T(), err, sql.ErrNoRows)
}

func (s *RepositoryTestSuite) TestExpensesAndIncomesAreSeparate() {
	s.mustExpense(s.alice, 5, "expense row", 1, nil)

	incomes, err := s.repo.ListTransactions(s.ctx, core.KindIncome, s.alice, TxFilter{})
	require.NoError(s.T(), err)
	assert.Empty(s.T(), incomes)
}

func (s *RepositoryTestSuite) TestListOrdering() {
	s.mustExpense(s.alice, 1, "oldest", 1, nil)
	s.mustExpense(s.alice, 2, "newest", 20, nil)
	s.mustExpense(s.alice, 3, "middle", 10, nil)

	txs, err := s.repo.ListTransactions(s.ctx, core.KindExpense, s.alice, TxFilter{})
	require.NoError(s.T(), err)
	require.Len(s.T(), txs, 3)
	assert.Equal(s.T(), "newest", txs[0].Description)
	assert.Equal(s.T(), "middle", txs[1].Description)
	assert.Equal(s.T(), "oldest", txs[2].Description)
}

func (s *RepositoryTestSuite) TestListFilters() {
	food := s.mustCategory(s.alice, "Food")
	s.mustExpense(s.alice, 10, "groceries at market", 5, &food.ID)
	s.mustExpense(s.alice, 20, "fuel", 10, nil)
	s.mustExpense(s.alice, 30, "groceries again", 15, nil)

	byCategory, err := s.repo.ListTransactions(s.ctx, core.KindExpense, s.alice, TxFilter{CategoryID: &food.ID})
	require.NoError(s.T(), err)
	require.Len(s.T(), byCategory, 1)
	assert.Equal(s.T(), "groceries at market", byCategory[0].Description)

	start, end := s.date(6), s.date(15)
	byRange, err := s.repo.ListTransactions(s.ctx, core.KindExpense, s.alice, TxFilter{StartDate: &start, EndDate: &end})
	require.NoError(s.T(), err)
	require.Len(s.T(), byRange, 2)
	assert.Equal(s.T(), "groceries again", byRange[0].Description)
	assert.Equal(s.T(), "fuel", byRange[1].Description)

	bySearch, err := s.repo.ListTransactions(s.ctx, core.KindExpense, s.alice, TxFilter{Search: "groceries"})
	require.NoError(s.T(), err)
	assert.Len(s.T(), bySearch, 2)

	combined, err := s.repo.ListTransactions(s.ctx, core.KindExpense, s.alice, TxFilter{Search: "groceries", StartDate: &start})
	require.NoError(s.T(), err)
	require.Len(s.T(), combined, 1)
	assert.Equal(s.T(), "groceries again", combined[0].Description)
}

func (s *RepositoryTestSuite) TestCreateResolvesCategory() {
	food := s.mustCategory(s.alice, "Food")
	tx := s.mustExpense(s.alice, 9.99, "snack", 3, &food.ID)

	require.NotNil(s.T(), tx.Category)
	assert.Equal(s.T(), "Food", tx.Category.Name)
	require.NotNil(s.T(), tx.CategoryID)
	assert.Equal(s.T(), food.ID, *tx.CategoryID)
}

func (s *RepositoryTestSuite) TestUpdateTransaction() {
	food := s.mustCategory(s.alice, "Food")
	tx := s.mustExpense(s.alice, 10, "before", 2, &food.ID)

	updated, err := s.repo.UpdateTransaction(s.ctx, core.KindExpense, s.alice, tx.ID, 25, "after", s.date(4), nil)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 25.0, updated.Amount)
	assert.Equal(s.T(), "after", updated.Description)
	assert.Nil(s.T(), updated.CategoryID)
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
