package repository

import (
	"context"

	"github.com/rafaelleal24/catalog/internal/adapters/mongo/document"
	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/logger"
	"github.com/rafaelleal24/catalog/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productsCollection = "products"

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
	providers  *BaseRepository[document.ProviderDocument]
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) port.ProductPort {
	repo := &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, productsCollection, "Product"),
		providers:      NewBaseRepository[document.ProviderDocument](db, providersCollection, "Provider"),
		collection:     db.Collection(productsCollection),
	}

	if err := repo.createIndexes(context.Background()); err != nil {
		logger.Error(context.Background(), "failed to create indexes", err, map[string]any{
			"collection": productsCollection,
		})
	}

	return repo
}

func (r *ProductRepository) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "provider", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetUnique(false),
		},
		{
			Keys:    bson.D{{Key: document.FieldCreatedAt, Value: -1}},
			Options: options.Index().SetUnique(false),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ProductRepository) filterOf(filter domain.ProductFilter) (bson.M, error) {
	query := bson.M{}

	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": containsInsensitive(filter.Search)},
			bson.M{"description": containsInsensitive(filter.Search)},
		}
	}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	if filter.ProviderID != nil {
		providerID, err := r.providers.objectID(string(*filter.ProviderID))
		if err != nil {
			return nil, err
		}
		query["provider"] = providerID
	}

	price := bson.M{}
	if filter.PriceMin != nil {
		price["$gte"] = *filter.PriceMin
	}
	if filter.PriceMax != nil {
		price["$lte"] = *filter.PriceMax
	}
	if len(price) > 0 {
		query["price"] = price
	}

	return query, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	now := document.Now()
	product.CreatedAt, product.UpdatedAt = now, now

	doc, err := document.ToProductDocument(product)
	if err != nil {
		return r.providers.parseError(err)
	}

	id, err := r.BaseRepository.Create(ctx, doc)
	if err != nil {
		return err
	}

	product.ID = domain.ID(id.Hex())
	return nil
}

func (r *ProductRepository) FindPage(ctx context.Context, query domain.ProductQuery) (*domain.PageResult[domain.Product], error) {
	filter, err := r.filterOf(query.Filter)
	if err != nil {
		return nil, err
	}

	docs, total, err := r.BaseRepository.FindPage(ctx, filter, pageOptions(query.Sort, query.Page, query.Projection))
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(docs))
	for i := range docs {
		products[i] = docs[i].ToDomain()
	}

	if err := r.populate(ctx, products, query.Populate, query.Projection); err != nil {
		return nil, err
	}

	return &domain.PageResult[domain.Product]{Items: products, Total: total}, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id domain.ID, opts domain.FindOptions) (*domain.Product, error) {
	doc, err := r.BaseRepository.FindByID(ctx, string(id), projectionOf(opts.Projection))
	if err != nil {
		return nil, err
	}

	product := doc.ToDomain()
	if err := r.populate(ctx, []*domain.Product{product}, opts.Populate, opts.Projection); err != nil {
		return nil, err
	}

	return product, nil
}

func (r *ProductRepository) Update(ctx context.Context, id domain.ID, patch domain.ProductPatch) (*domain.Product, error) {
	set := bson.M{document.FieldUpdatedAt: document.Now()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ProviderID != nil {
		providerID, err := r.providers.objectID(string(*patch.ProviderID))
		if err != nil {
			return nil, err
		}
		set["provider"] = providerID
	}
	if patch.Stock != nil {
		set["stock"] = *patch.Stock
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}

	doc, err := r.BaseRepository.Update(ctx, string(id), set)
	if err != nil {
		return nil, err
	}

	product := doc.ToDomain()
	populate := &domain.Populate{Path: "provider", Fields: []string{"name"}}
	if err := r.populate(ctx, []*domain.Product{product}, populate, nil); err != nil {
		return nil, err
	}

	return product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.DeleteByID(ctx, string(id))
	if err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}

// populate resolves provider references with a single $in lookup. References that no longer
// resolve keep only their id.
func (r *ProductRepository) populate(ctx context.Context, products []*domain.Product, populate *domain.Populate, projection domain.Projection) error {
	if populate == nil || !projection.Includes(populate.Path) {
		return nil
	}

	seen := map[primitive.ObjectID]bool{}
	ids := bson.A{}
	for _, product := range products {
		if product.ProviderID == "" {
			continue
		}
		objectID, err := primitive.ObjectIDFromHex(string(product.ProviderID))
		if err != nil || seen[objectID] {
			continue
		}
		seen[objectID] = true
		ids = append(ids, objectID)
	}
	if len(ids) == 0 {
		return nil
	}

	fields := bson.D{}
	for _, field := range populate.Fields {
		fields = append(fields, bson.E{Key: field, Value: 1})
	}

	docs, err := r.providers.Find(ctx, bson.M{document.FieldID: bson.M{"$in": ids}}, options.Find().SetProjection(fields))
	if err != nil {
		return err
	}

	summaries := make(map[domain.ID]*domain.ProviderSummary, len(docs))
	for i := range docs {
		summary := docs[i].ToSummary()
		summaries[summary.ID] = summary
	}

	for _, product := range products {
		if product.ProviderID == "" {
			continue
		}
		if summary, ok := summaries[product.ProviderID]; ok {
			product.Provider = summary
		} else {
			product.Provider = &domain.ProviderSummary{ID: product.ProviderID}
		}
	}

	return nil
}
