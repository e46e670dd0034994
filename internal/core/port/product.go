package port

import (
	"context"

	"github.com/rafaelleal24/catalog/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	Create(ctx context.Context, product *domain.Product) error
	FindPage(ctx context.Context, query domain.ProductQuery) (*domain.PageResult[domain.Product], error)
	FindByID(ctx context.Context, id domain.ID, opts domain.FindOptions) (*domain.Product, error)
	// Update applies patch and returns the stored record with the provider name resolved.
	Update(ctx context.Context, id domain.ID, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id domain.ID) (*domain.Product, error)
}
