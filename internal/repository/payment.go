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

const paymentColumns = `id, event, type, amount, description, status, due_date, paid_date,
			payment_method, client_name, vendor_name, invoice_number, transaction_id,
			processing_fee, net_amount, confirmation_number, created_at, updated_at`

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Invoice numbers are issued by the store: the sequence is the count of
	// client payments plus one, so it stays monotonic under one writer.
	if p.Type == domain.PaymentTypeClient && p.InvoiceNumber == "" {
		var count int
		seqQuery := `SELECT COUNT(*) FROM payments WHERE type = $1`
		if err = tx.QueryRowContext(ctx, seqQuery, domain.PaymentTypeClient).Scan(&count); err != nil {
			return fmt.Errorf("count client payments: %w", err)
		}
		p.InvoiceNumber = fmt.Sprintf("INV-%d-%04d", time.Now().UTC().Year(), count+1)
	}

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `INSERT INTO payments (` + paymentColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = tx.ExecContext(
		ctx, query,
		p.ID, p.EventID, p.Type, p.Amount, p.Description, p.Status,
		p.DueDate, p.PaidDate, p.PaymentMethod, p.ClientName, p.VendorName,
		p.InvoiceNumber, p.TransactionID, p.ProcessingFee, p.NetAmount,
		p.ConfirmationNumber, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert payment: %w", err)
	}

	return tx.Commit()
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}

	return p, nil
}

func (r *PaymentRepository) List(ctx context.Context, eventID string) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  ORDER BY created_at DESC`
	args := []any{}
	if eventID != "" {
		query = `SELECT ` + paymentColumns + `
				 FROM payments
				 WHERE event = $1
				 ORDER BY created_at DESC`
		args = append(args, eventID)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *PaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments
			  SET event = $2, type = $3, amount = $4, description = $5, due_date = $6,
			      payment_method = $7, client_name = $8, vendor_name = $9, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.EventID, p.Type, p.Amount, p.Description, p.DueDate,
		p.PaymentMethod, p.ClientName, p.VendorName,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("update payment: %w", err)
	}

	return requireAffected(res, domain.ErrPaymentNotFound)
}

func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	return requireAffected(res, domain.ErrPaymentNotFound)
}

func (r *PaymentRepository) SetStatus(ctx context.Context, id string, status domain.PaymentStatus) error {
	// Entering paid stamps paid_date once; leaving paid clears it; setting
	// paid again keeps the original stamp.
	query := `UPDATE payments
			  SET status = $2,
			      paid_date = CASE
			          WHEN $2 = 'paid' AND status <> 'paid' THEN now()
			          WHEN $2 <> 'paid' THEN NULL
			          ELSE paid_date
			      END,
			      updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("set payment status: %w", err)
	}

	return requireAffected(res, domain.ErrPaymentNotFound)
}

func (r *PaymentRepository) MarkPaid(ctx context.Context, id string, receipt domain.PaymentReceipt) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE payments
			  SET status = $2, paid_date = now(), payment_method = $3, transaction_id = $4,
			      processing_fee = $5, net_amount = $6, confirmation_number = $7, updated_at = now()
			  WHERE id = $1 AND status = $8`
	res, err := tx.ExecContext(
		ctx, query,
		id, domain.PaymentStatusPaid, receipt.Method, receipt.TransactionID,
		receipt.ProcessingFee, receipt.NetAmount, receipt.ConfirmationNumber,
		domain.PaymentStatusPending,
	)
	if err != nil {
		return fmt.Errorf("mark payment paid: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark paid rows affected: %w", err)
	}
	if affected == 0 {
		// Distinguish a missing payment from one that is not pending.
		var status string
		err = tx.QueryRowContext(ctx, `SELECT status FROM payments WHERE id = $1`, id).Scan(&status)
		if err != nil {
			return domain.ErrPaymentNotFound
		}
		return domain.ErrPaymentNotPending
	}

	return tx.Commit()
}

func (r *PaymentRepository) ListDue(ctx context.Context, before time.Time) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
			  FROM payments
			  WHERE status = $1 AND due_date < $2
			  ORDER BY due_date`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.PaymentStatusPending, before)
	if err != nil {
		return nil, fmt.Errorf("list due payments: %w", err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var p domain.Payment
	var paidDate sql.NullTime
	err := row.Scan(
		&p.ID, &p.EventID, &p.Type, &p.Amount, &p.Description, &p.Status,
		&p.DueDate, &paidDate, &p.PaymentMethod, &p.ClientName, &p.VendorName,
		&p.InvoiceNumber, &p.TransactionID, &p.ProcessingFee, &p.NetAmount,
		&p.ConfirmationNumber, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if paidDate.Valid {
		t := paidDate.Time
		p.PaidDate = &t
	}
	return &p, nil
}

func collectPayments(rows *sql.Rows) ([]*domain.Payment, error) {
	var res []*domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func requireAffected(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
