package repository

import (
	"context"

	"github.com/rafaelleal24/catalog/internal/adapters/mongo/document"
	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/logger"
	"github.com/rafaelleal24/catalog/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	providersCollection  = "providers"
	providerNameConflict = "Provider with this name already exists"
)

type ProviderRepository struct {
	*BaseRepository[document.ProviderDocument]
	collection *mongo.Collection
}

func NewProviderRepository(db *mongo.Database) port.ProviderPort {
	base := NewBaseRepository[document.ProviderDocument](db, providersCollection, "Provider")
	base.messages.conflict = providerNameConflict

	repo := &ProviderRepository{
		BaseRepository: base,
		collection:     db.Collection(providersCollection),
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": providersCollection,
		})
	}

	return repo
}

func (r *ProviderRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: document.FieldCreatedAt, Value: -1}},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func providerFilterOf(filter domain.ProviderFilter) bson.M {
	query := bson.M{}
	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": containsInsensitive(filter.Search)},
			bson.M{"description": containsInsensitive(filter.Search)},
		}
	}
	if filter.Name != nil {
		query["name"] = *filter.Name
	}
	return query
}

func (r *ProviderRepository) Create(ctx context.Context, provider *domain.Provider) error {
	now := document.Now()
	provider.CreatedAt, provider.UpdatedAt = now, now

	id, err := r.BaseRepository.Create(ctx, document.ToProviderDocument(provider))
	if err != nil {
		return err
	}

	provider.ID = domain.ID(id.Hex())
	return nil
}

func (r *ProviderRepository) FindPage(ctx context.Context, query domain.ProviderQuery) (*domain.PageResult[domain.Provider], error) {
	docs, total, err := r.BaseRepository.FindPage(ctx, providerFilterOf(query.Filter), pageOptions(query.Sort, query.Page, query.Projection))
	if err != nil {
		return nil, err
	}

	providers := make([]*domain.Provider, len(docs))
	for i := range docs {
		providers[i] = docs[i].ToDomain()
	}

	return &domain.PageResult[domain.Provider]{Items: providers, Total: total}, nil
}

func (r *ProviderRepository) FindByID(ctx context.Context, id domain.ID, opts domain.FindOptions) (*domain.Provider, error) {
	doc, err := r.BaseRepository.FindByID(ctx, string(id), projectionOf(opts.Projection))
	if err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}

func (r *ProviderRepository) ExistsByName(ctx context.Context, name string, excludeID domain.ID) (bool, error) {
	filter := bson.M{"name": name}
	if excludeID != "" {
		objectID, err := r.objectID(string(excludeID))
		if err != nil {
			return false, err
		}
		filter[document.FieldID] = bson.M{"$ne": objectID}
	}
	return r.Exists(ctx, filter)
}

func (r *ProviderRepository) Update(ctx context.Context, id domain.ID, patch domain.ProviderPatch) (*domain.Provider, error) {
	set := bson.M{document.FieldUpdatedAt: document.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}

	doc, err := r.BaseRepository.Update(ctx, string(id), set)
	if err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}

// Replace swaps every stored field for those of provider, keeping its identity.
func (r *ProviderRepository) Replace(ctx context.Context, provider *domain.Provider) (*domain.Provider, error) {
	provider.UpdatedAt = document.Now()

	doc, err := r.BaseRepository.Replace(ctx, string(provider.ID), document.ToProviderDocument(provider))
	if err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}

func (r *ProviderRepository) Delete(ctx context.Context, id domain.ID) (*domain.Provider, error) {
	doc, err := r.DeleteByID(ctx, string(id))
	if err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}
