package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/doggyworld/backend/internal/model"
)

func (p *Postgres) EnsureAdoptionSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS adoption_requests (
			id           UUID        PRIMARY KEY,
			product_id   TEXT        NOT NULL,
			product_name TEXT        NOT NULL,
			user_email   TEXT        NOT NULL,
			user_name    TEXT        NOT NULL DEFAULT '',
			user_contact TEXT        NOT NULL DEFAULT '',
			message      TEXT        NOT NULL DEFAULT '',
			status       TEXT        NOT NULL DEFAULT 'Pending',
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS adoption_requests_created_at_idx ON adoption_requests(created_at DESC)`,
	}

	for _, query := range queries {
		if _, err := p.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

const adoptionColumns = `id, product_id, product_name, user_email, user_name, user_contact, message, status, created_at, updated_at`

func scanAdoption(row interface{ Scan(dest ...any) error }) (*model.AdoptionRequest, error) {
	var req model.AdoptionRequest
	err := row.Scan(
		&req.ID,
		&req.ProductID,
		&req.ProductName,
		&req.UserEmail,
		&req.UserName,
		&req.UserContact,
		&req.Message,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (p *Postgres) CreateAdoptionRequest(ctx context.Context, req model.CreateAdoptionRequest) (*model.AdoptionRequest, error) {
	query := `
		INSERT INTO adoption_requests
			(id, product_id, product_name, user_email, user_name, user_contact, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + adoptionColumns
	row := p.Pool.QueryRow(ctx, query,
		uuid.NewString(),
		req.ProductID,
		req.ProductName,
		req.UserEmail,
		req.UserName,
		req.UserContact,
		req.Message,
		model.StatusPending,
	)
	return scanAdoption(row)
}

// ListAdoptionRequests returns every request, newest first.
func (p *Postgres) ListAdoptionRequests(ctx context.Context) ([]model.AdoptionRequest, error) {
	rows, err := p.Pool.Query(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoption_requests
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []model.AdoptionRequest
	for rows.Next() {
		req, err := scanAdoption(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	if requests == nil {
		requests = []model.AdoptionRequest{}
	}
	return requests, rows.Err()
}

func (p *Postgres) GetAdoptionRequestByID(ctx context.Context, id string) (*model.AdoptionRequest, error) {
	row := p.Pool.QueryRow(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoption_requests
		WHERE id = $1
	`, id)
	return scanAdoption(row)
}

func (p *Postgres) UpdateAdoptionStatus(ctx context.Context, id string, status model.AdoptionStatus) (*model.AdoptionRequest, error) {
	row := p.Pool.QueryRow(ctx, `
		UPDATE adoption_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+adoptionColumns, id, status)
	return scanAdoption(row)
}

// DeleteAdoptionRequest removes the record and returns the deleted snapshot.
func (p *Postgres) DeleteAdoptionRequest(ctx context.Context, id string) (*model.AdoptionRequest, error) {
	row := p.Pool.QueryRow(ctx, `
		DELETE FROM adoption_requests
		WHERE id = $1
		RETURNING `+adoptionColumns, id)
	return scanAdoption(row)
}
