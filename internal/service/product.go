package service

import (
	"context"

	"github.com/doggyworld/backend/internal/db"
	"github.com/doggyworld/backend/internal/model"
)

type productRepo interface {
	CreateProduct(ctx context.Context, name string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProductByID(ctx context.Context, id string) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type ProductService struct {
	repo productRepo
}

func NewProductService(repo productRepo) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(ctx context.Context, name string) (*model.Product, error) {
	if name == "" {
		return nil, ErrMissingField
	}
	return s.repo.CreateProduct(ctx, name)
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
