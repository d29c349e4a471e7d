package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/doggyworld/backend/internal/model"
)

// The catalog here is deliberately thin: only the fields the adoption flow
// references. Images, pricing and breed data live elsewhere.

func (p *Postgres) EnsureProductSchema(ctx context.Context) error {
	_, err := p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id         UUID        PRIMARY KEY,
			name       TEXT        NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (p *Postgres) CreateProduct(ctx context.Context, name string) (*model.Product, error) {
	var product model.Product
	err := p.Pool.QueryRow(ctx, `
		INSERT INTO products (id, name, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, name, created_at
	`, uuid.NewString(), name).Scan(&product.ID, &product.Name, &product.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *Postgres) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := p.Pool.Query(ctx, `
		SELECT id, name, created_at
		FROM products
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var product model.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if products == nil {
		products = []model.Product{}
	}
	return products, rows.Err()
}

func (p *Postgres) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := p.Pool.QueryRow(ctx, `
		SELECT id, name, created_at
		FROM products
		WHERE id = $1
	`, id).Scan(&product.ID, &product.Name, &product.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *Postgres) DeleteProduct(ctx context.Context, id string) error {
	tag, err := p.Pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
