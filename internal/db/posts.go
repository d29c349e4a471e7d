package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/doggyworld/backend/internal/model"
)

func (p *Postgres) EnsurePostSchema(ctx context.Context) error {
	_, err := p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS posts (
			id         UUID        PRIMARY KEY,
			title      TEXT        NOT NULL,
			content    TEXT        NOT NULL,
			author     TEXT        NOT NULL DEFAULT 'Admin',
			image      TEXT        NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

const postColumns = `id, title, content, author, image, created_at, updated_at`

func scanPost(row interface{ Scan(dest ...any) error }) (*model.Post, error) {
	var post model.Post
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Author,
		&post.Image,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (p *Postgres) CreatePost(ctx context.Context, req model.CreatePostRequest) (*model.Post, error) {
	author := req.Author
	if author == "" {
		author = "Admin"
	}
	row := p.Pool.QueryRow(ctx, `
		INSERT INTO posts (id, title, content, author, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING `+postColumns,
		uuid.NewString(), req.Title, req.Content, author, req.Image)
	return scanPost(row)
}

func (p *Postgres) ListPosts(ctx context.Context) ([]model.Post, error) {
	rows, err := p.Pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	if posts == nil {
		posts = []model.Post{}
	}
	return posts, rows.Err()
}

func (p *Postgres) GetPostByID(ctx context.Context, id string) (*model.Post, error) {
	row := p.Pool.QueryRow(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE id = $1
	`, id)
	return scanPost(row)
}

// UpdatePost applies a partial update; COALESCE keeps current values for
// absent fields.
func (p *Postgres) UpdatePost(ctx context.Context, id string, req model.UpdatePostRequest) (*model.Post, error) {
	row := p.Pool.QueryRow(ctx, `
		UPDATE posts
		SET title      = COALESCE($2, title),
		    content    = COALESCE($3, content),
		    author     = COALESCE($4, author),
		    image      = COALESCE($5, image),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+postColumns,
		id, req.Title, req.Content, req.Author, req.Image)
	return scanPost(row)
}

func (p *Postgres) DeletePost(ctx context.Context, id string) error {
	tag, err := p.Pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
