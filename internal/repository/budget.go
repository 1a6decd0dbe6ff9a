package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

const budgetColumns = `id, event, name, category, allocated_amount, spent_amount, created_at, updated_at`

type BudgetRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBudgetRepo(db *dbpg.DB) *BudgetRepository {
	return &BudgetRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BudgetRepository) Create(ctx context.Context, item *domain.BudgetItem) error {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `INSERT INTO budget_items (` + budgetColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		item.ID, item.EventID, item.Name, item.Category,
		item.AllocatedAmount, item.SpentAmount, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert budget item: %w", err)
	}

	return nil
}

func (r *BudgetRepository) GetByID(ctx context.Context, id string) (*domain.BudgetItem, error) {
	query := `SELECT ` + budgetColumns + `
			  FROM budget_items
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get budget item: %w", err)
	}

	var item domain.BudgetItem
	if err = row.Scan(
		&item.ID, &item.EventID, &item.Name, &item.Category,
		&item.AllocatedAmount, &item.SpentAmount, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBudgetItemNotFound
		}
		return nil, fmt.Errorf("scan budget item: %w", err)
	}

	return &item, nil
}

func (r *BudgetRepository) List(ctx context.Context, eventID string) ([]*domain.BudgetItem, error) {
	query := `SELECT ` + budgetColumns + `
			  FROM budget_items
			  ORDER BY category`
	args := []any{}
	if eventID != "" {
		query = `SELECT ` + budgetColumns + `
				 FROM budget_items
				 WHERE event = $1
				 ORDER BY category`
		args = append(args, eventID)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list budget items: %w", err)
	}
	defer rows.Close()

	var res []*domain.BudgetItem
	for rows.Next() {
		var item domain.BudgetItem
		if err = rows.Scan(
			&item.ID, &item.EventID, &item.Name, &item.Category,
			&item.AllocatedAmount, &item.SpentAmount, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan budget item: %w", err)
		}
		res = append(res, &item)
	}

	return res, rows.Err()
}

func (r *BudgetRepository) Update(ctx context.Context, item *domain.BudgetItem) error {
	query := `UPDATE budget_items
			  SET event = $2, name = $3, category = $4, allocated_amount = $5,
			      spent_amount = $6, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		item.ID, item.EventID, item.Name, item.Category, item.AllocatedAmount, item.SpentAmount,
	)
	if err != nil {
		return fmt.Errorf("update budget item: %w", err)
	}

	return requireAffected(res, domain.ErrBudgetItemNotFound)
}

func (r *BudgetRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM budget_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete budget item: %w", err)
	}

	return requireAffected(res, domain.ErrBudgetItemNotFound)
}

func (r *BudgetRepository) SetSpentAmount(ctx context.Context, id string, amount decimal.Decimal) error {
	query := `UPDATE budget_items
			  SET spent_amount = $2, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, amount)
	if err != nil {
		return fmt.Errorf("set spent amount: %w", err)
	}

	return requireAffected(res, domain.ErrBudgetItemNotFound)
}
