package document

import (
	"time"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProviderDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Address     string             `bson:"address"`
	Phone       string             `bson:"phone"`
	Email       string             `bson:"email,omitempty"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (doc ProviderDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *ProviderDocument) ToDomain() *domain.Provider {
	return &domain.Provider{
		ID:          domain.ID(doc.ID.Hex()),
		Name:        doc.Name,
		Address:     doc.Address,
		Phone:       doc.Phone,
		Email:       doc.Email,
		Description: doc.Description,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func (doc *ProviderDocument) ToSummary() *domain.ProviderSummary {
	return &domain.ProviderSummary{
		ID:      domain.ID(doc.ID.Hex()),
		Name:    doc.Name,
		Address: doc.Address,
	}
}

// ToProviderDocument keeps the ID when set so the result can be used for replacement.
func ToProviderDocument(p *domain.Provider) *ProviderDocument {
	doc := &ProviderDocument{
		Name:        p.Name,
		Address:     p.Address,
		Phone:       p.Phone,
		Email:       p.Email,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if id, err := primitive.ObjectIDFromHex(string(p.ID)); err == nil {
		doc.ID = id
	}
	return doc
}
