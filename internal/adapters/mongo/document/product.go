package document

import (
	"time"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description"`
	Provider    primitive.ObjectID `bson:"provider"`
	Stock       int                `bson:"stock"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (doc ProductDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *ProductDocument) ToDomain() *domain.Product {
	product := &domain.Product{
		ID:          domain.ID(doc.ID.Hex()),
		Name:        doc.Name,
		Price:       doc.Price,
		Description: doc.Description,
		Stock:       doc.Stock,
		Status:      domain.ProductStatus(doc.Status),
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
	if !doc.Provider.IsZero() {
		product.ProviderID = domain.ID(doc.Provider.Hex())
	}
	return product
}

func ToProductDocument(p *domain.Product) (*ProductDocument, error) {
	providerID, err := primitive.ObjectIDFromHex(string(p.ProviderID))
	if err != nil {
		return nil, err
	}
	return &ProductDocument{
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Provider:    providerID,
		Stock:       p.Stock,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}
