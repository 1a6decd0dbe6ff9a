package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

const eventColumns = `id, name, description, date, venue, status, budget, guest_count, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Description, e.Date, e.Venue, e.Status,
		e.Budget, e.GuestCount, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Name, &e.Description, &e.Date, &e.Venue, &e.Status,
		&e.Budget, &e.GuestCount, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY date DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.Date, &e.Venue, &e.Status,
			&e.Budget, &e.GuestCount, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET name = $2, description = $3, date = $4, venue = $5, status = $6,
			      budget = $7, guest_count = $8, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Description, e.Date, e.Venue, e.Status, e.Budget, e.GuestCount,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return requireAffected(res, domain.ErrEventNotFound)
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return requireAffected(res, domain.ErrEventNotFound)
}
