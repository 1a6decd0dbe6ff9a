package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

const guestColumns = `id, event, name, email, rsvp_status, created_at, updated_at`

type GuestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGuestRepo(db *dbpg.DB) *GuestRepository {
	return &GuestRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) error {
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now

	query := `INSERT INTO guests (` + guestColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		g.ID, g.EventID, g.Name, g.Email, g.RSVPStatus, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert guest: %w", err)
	}

	return nil
}

func (r *GuestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	query := `SELECT ` + guestColumns + `
			  FROM guests
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}

	var g domain.Guest
	if err = row.Scan(&g.ID, &g.EventID, &g.Name, &g.Email, &g.RSVPStatus, &g.CreatedAt, &g.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, fmt.Errorf("scan guest: %w", err)
	}

	return &g, nil
}

func (r *GuestRepository) List(ctx context.Context, eventID string) ([]*domain.Guest, error) {
	query := `SELECT ` + guestColumns + `
			  FROM guests
			  ORDER BY name`
	args := []any{}
	if eventID != "" {
		query = `SELECT ` + guestColumns + `
				 FROM guests
				 WHERE event = $1
				 ORDER BY name`
		args = append(args, eventID)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer rows.Close()

	var res []*domain.Guest
	for rows.Next() {
		var g domain.Guest
		if err = rows.Scan(&g.ID, &g.EventID, &g.Name, &g.Email, &g.RSVPStatus, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		res = append(res, &g)
	}

	return res, rows.Err()
}

func (r *GuestRepository) Update(ctx context.Context, g *domain.Guest) error {
	query := `UPDATE guests
			  SET event = $2, name = $3, email = $4, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, g.ID, g.EventID, g.Name, g.Email)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("update guest: %w", err)
	}

	return requireAffected(res, domain.ErrGuestNotFound)
}

func (r *GuestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM guests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete guest: %w", err)
	}

	return requireAffected(res, domain.ErrGuestNotFound)
}

func (r *GuestRepository) SetRSVP(ctx context.Context, id string, status domain.RSVPStatus) error {
	query := `UPDATE guests
			  SET rsvp_status = $2, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("set rsvp status: %w", err)
	}

	return requireAffected(res, domain.ErrGuestNotFound)
}
