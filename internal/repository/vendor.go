package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/apper-canvas/eventflow-ether-cell/internal/domain"
)

const vendorColumns = `id, name, company, email, phone, specialty, location, rating, review_count,
			description, website, price_range, availability, portfolio_images, created_at, updated_at`

type VendorRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVendorRepo(db *dbpg.DB) *VendorRepository {
	return &VendorRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VendorRepository) Create(ctx context.Context, v *domain.Vendor) error {
	now := time.Now().UTC()
	v.CreatedAt = now
	v.UpdatedAt = now

	query := `INSERT INTO vendors (` + vendorColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Company, v.Email, v.Phone, v.Specialty, v.Location,
		v.Rating, v.ReviewCount, v.Description, v.Website, v.PriceRange,
		v.Availability, joinImages(v.PortfolioImages), v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vendor: %w", err)
	}

	return nil
}

func (r *VendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + `
			  FROM vendors
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get vendor: %w", err)
	}

	v, err := scanVendor(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVendorNotFound
		}
		return nil, fmt.Errorf("scan vendor: %w", err)
	}

	return v, nil
}

func (r *VendorRepository) List(ctx context.Context) ([]*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + `
			  FROM vendors
			  ORDER BY rating DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var res []*domain.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		res = append(res, v)
	}

	return res, rows.Err()
}

func (r *VendorRepository) Update(ctx context.Context, v *domain.Vendor) error {
	query := `UPDATE vendors
			  SET name = $2, company = $3, email = $4, phone = $5, specialty = $6,
			      location = $7, description = $8, website = $9, price_range = $10,
			      availability = $11, portfolio_images = $12, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Company, v.Email, v.Phone, v.Specialty, v.Location,
		v.Description, v.Website, v.PriceRange, v.Availability, joinImages(v.PortfolioImages),
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}

	return requireAffected(res, domain.ErrVendorNotFound)
}

func (r *VendorRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}

	return requireAffected(res, domain.ErrVendorNotFound)
}

func (r *VendorRepository) SetRating(ctx context.Context, id string, rating float64, reviewCount int) error {
	query := `UPDATE vendors
			  SET rating = $2, review_count = $3, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, rating, reviewCount)
	if err != nil {
		return fmt.Errorf("set vendor rating: %w", err)
	}

	return requireAffected(res, domain.ErrVendorNotFound)
}

func (r *VendorRepository) SetAvailability(ctx context.Context, id string, availability domain.Availability) error {
	query := `UPDATE vendors
			  SET availability = $2, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, availability)
	if err != nil {
		return fmt.Errorf("set vendor availability: %w", err)
	}

	return requireAffected(res, domain.ErrVendorNotFound)
}

func scanVendor(row rowScanner) (*domain.Vendor, error) {
	var v domain.Vendor
	var images string
	err := row.Scan(
		&v.ID, &v.Name, &v.Company, &v.Email, &v.Phone, &v.Specialty, &v.Location,
		&v.Rating, &v.ReviewCount, &v.Description, &v.Website, &v.PriceRange,
		&v.Availability, &images, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.PortfolioImages = splitImages(images)
	return &v, nil
}

// Portfolio images are stored as one comma-separated text column.
func joinImages(images []string) string {
	return strings.Join(images, ",")
}

func splitImages(s string) []string {
	var res []string
	for _, img := range strings.Split(s, ",") {
		if img = strings.TrimSpace(img); img != "" {
			res = append(res, img)
		}
	}
	return res
}
