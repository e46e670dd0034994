package controllers

import (
	"time"

	"github.com/rafaelleal24/catalog/internal/core/domain"
)

// Every field but id is optional so a projection can leave it out of the body.

type ProviderSummaryResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
}

type ProductResponse struct {
	ID          string                   `json:"id" example:"65f1c2a9e4b0a1b2c3d4e5f6"`
	Name        *string                  `json:"name,omitempty" example:"Widget"`
	Price       *float64                 `json:"price,omitempty" example:"9.99"`
	Description *string                  `json:"description,omitempty" example:"A small widget"`
	Provider    *ProviderSummaryResponse `json:"provider,omitempty"`
	Stock       *int                     `json:"stock,omitempty" example:"5"`
	Status      *string                  `json:"status,omitempty" example:"active"`
	CreatedAt   *time.Time               `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time               `json:"updatedAt,omitempty"`
}

type ProviderResponse struct {
	ID          string     `json:"id" example:"65f1c2a9e4b0a1b2c3d4e5f0"`
	Name        *string    `json:"name,omitempty" example:"Acme"`
	Address     *string    `json:"address,omitempty" example:"1 Main St"`
	Phone       *string    `json:"phone,omitempty" example:"555-0100"`
	Email       *string    `json:"email,omitempty" example:"sales@acme.test"`
	Description *string    `json:"description,omitempty" example:"Hardware supplier"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type DeletedResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func field[T any](projection domain.Projection, name string, value T) *T {
	if !projection.Includes(name) {
		return nil
	}
	return &value
}

func NewProductResponse(product *domain.Product, projection domain.Projection) ProductResponse {
	response := ProductResponse{
		ID:          string(product.ID),
		Name:        field(projection, "name", product.Name),
		Price:       field(projection, "price", product.Price),
		Description: field(projection, "description", product.Description),
		Stock:       field(projection, "stock", product.Stock),
		Status:      field(projection, "status", string(product.Status)),
		CreatedAt:   field(projection, "createdAt", product.CreatedAt),
		UpdatedAt:   field(projection, "updatedAt", product.UpdatedAt),
	}

	if projection.Includes("provider") && product.ProviderID != "" {
		response.Provider = &ProviderSummaryResponse{ID: string(product.ProviderID)}
		if product.Provider != nil {
			response.Provider.Name = product.Provider.Name
			response.Provider.Address = product.Provider.Address
		}
	}

	return response
}

func NewProductResponses(products []*domain.Product, projection domain.Projection) []ProductResponse {
	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product, projection)
	}
	return response
}

func NewProviderResponse(provider *domain.Provider, projection domain.Projection) ProviderResponse {
	response := ProviderResponse{
		ID:          string(provider.ID),
		Name:        field(projection, "name", provider.Name),
		Address:     field(projection, "address", provider.Address),
		Phone:       field(projection, "phone", provider.Phone),
		Description: field(projection, "description", provider.Description),
		CreatedAt:   field(projection, "createdAt", provider.CreatedAt),
		UpdatedAt:   field(projection, "updatedAt", provider.UpdatedAt),
	}
	if provider.Email != "" {
		response.Email = field(projection, "email", provider.Email)
	}
	return response
}

func NewProviderResponses(providers []*domain.Provider, projection domain.Projection) []ProviderResponse {
	response := make([]ProviderResponse, len(providers))
	for i, provider := range providers {
		response[i] = NewProviderResponse(provider, projection)
	}
	return response
}
