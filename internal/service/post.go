package service

import (
	"context"

	"github.com/doggyworld/backend/internal/db"
	"github.com/doggyworld/backend/internal/model"
)

type postRepo interface {
	CreatePost(ctx context.Context, req model.CreatePostRequest) (*model.Post, error)
	ListPosts(ctx context.Context) ([]model.Post, error)
	GetPostByID(ctx context.Context, id string) (*model.Post, error)
	UpdatePost(ctx context.Context, id string, req model.UpdatePostRequest) (*model.Post, error)
	DeletePost(ctx context.Context, id string) error
}

type PostService struct {
	repo postRepo
}

func NewPostService(repo postRepo) *PostService {
	return &PostService{repo: repo}
}

func (s *PostService) Create(ctx context.Context, req model.CreatePostRequest) (*model.Post, error) {
	if req.Title == "" || req.Content == "" {
		return nil, ErrMissingField
	}
	return s.repo.CreatePost(ctx, req)
}

func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	return s.repo.ListPosts(ctx)
}

func (s *PostService) Get(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.repo.GetPostByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) Update(ctx context.Context, id string, req model.UpdatePostRequest) (*model.Post, error) {
	post, err := s.repo.UpdatePost(ctx, id, req)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeletePost(ctx, id); err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
