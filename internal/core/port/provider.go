package port

import (
	"context"

	"github.com/rafaelleal24/catalog/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProviderPort interface {
	Create(ctx context.Context, provider *domain.Provider) error
	FindPage(ctx context.Context, query domain.ProviderQuery) (*domain.PageResult[domain.Provider], error)
	FindByID(ctx context.Context, id domain.ID, opts domain.FindOptions) (*domain.Provider, error)
	// ExistsByName matches name exactly. A non-empty excludeID leaves that provider out of the check.
	ExistsByName(ctx context.Context, name string, excludeID domain.ID) (bool, error)
	Update(ctx context.Context, id domain.ID, patch domain.ProviderPatch) (*domain.Provider, error)
	Replace(ctx context.Context, provider *domain.Provider) (*domain.Provider, error)
	Delete(ctx context.Context, id domain.ID) (*domain.Provider, error)
}
