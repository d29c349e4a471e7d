package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/doggyworld/backend/internal/model"
)

func (p *Postgres) EnsureAdminSchema(ctx context.Context) error {
	_, err := p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS admins (
			id            UUID        PRIMARY KEY,
			email         TEXT        NOT NULL UNIQUE,
			name          TEXT        NOT NULL DEFAULT '',
			password_hash TEXT        NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (p *Postgres) CreateAdmin(ctx context.Context, email, name, passwordHash string) (*model.Admin, error) {
	query := `
		INSERT INTO admins (id, email, name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, email, name, password_hash, created_at, updated_at
	`
	var admin model.Admin
	err := p.Pool.QueryRow(ctx, query, uuid.NewString(), email, name, passwordHash).Scan(
		&admin.ID,
		&admin.Email,
		&admin.Name,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetAdminByEmail is an exact, case-sensitive match.
func (p *Postgres) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	query := `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM admins
		WHERE email = $1
	`
	var admin model.Admin
	err := p.Pool.QueryRow(ctx, query, email).Scan(
		&admin.ID,
		&admin.Email,
		&admin.Name,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (p *Postgres) GetAdminByID(ctx context.Context, id string) (*model.Admin, error) {
	query := `
		SELECT id, email, name, password_hash, created_at, updated_at
		FROM admins
		WHERE id = $1
	`
	var admin model.Admin
	err := p.Pool.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Email,
		&admin.Name,
		&admin.PasswordHash,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (p *Postgres) UpdateAdminPassword(ctx context.Context, id, passwordHash string) error {
	tag, err := p.Pool.Exec(ctx, `
		UPDATE admins
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1
	`, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
