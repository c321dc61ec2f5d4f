package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/permitd/permitd/internal/auth/domain"
)

type productsRepo struct {
	q querier
}

func (r *productsRepo) CreateProduct(ctx context.Context, p domain.Product) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO products (id, name, type, is_active, is_deleted, created_at, updated_at)
		VALUES (?, ?, ?, 1, 0, ?, ?)`,
		p.ID, p.Name, mapOptionalString(p.Type), now, now)
	return err
}

func (r *productsRepo) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, name, type, is_active, is_deleted, created_at, updated_at
		FROM products
		WHERE id = ? AND is_deleted = 0`, id)
	return scanProduct(row)
}

func (r *productsRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, name, type, is_active, is_deleted, created_at, updated_at
		FROM products
		WHERE is_deleted = 0
		ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	var typ sql.NullString
	err := row.Scan(&p.ID, &p.Name, &typ, &p.IsActive, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Product{}, mapNotFound(err)
	}
	p.Type = mapNullString(typ)
	return p, nil
}
