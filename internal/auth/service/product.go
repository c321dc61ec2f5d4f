package service

import (
	"context"
	"strings"

	"github.com/permitd/permitd/internal/auth/domain"
	"github.com/permitd/permitd/internal/auth/store"
	"github.com/permitd/permitd/pkg/idx"
)

// ProductService is a representative protected business surface. It has
// no authorization logic of its own; the dynamic engine guards its
// routes like any other.
type ProductService struct {
	Store store.Store
}

func (s *ProductService) AddProduct(ctx context.Context, name string, productType *string) (domain.Product, error) {
	p := domain.Product{
		ID:       idx.New().String(),
		Name:     strings.TrimSpace(name),
		Type:     productType,
		IsActive: true,
	}
	if err := s.Store.Products().CreateProduct(ctx, p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	return s.Store.Products().GetProductByID(ctx, id)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.Store.Products().ListProducts(ctx)
}
