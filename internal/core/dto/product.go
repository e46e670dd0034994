package dto

import "github.com/rafaelleal24/catalog/internal/core/domain"

type CreateProductRequest struct {
	Name        *string  `json:"name" validate:"required,min=1"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Description *string  `json:"description" validate:"required,min=1"`
	Provider    *string  `json:"provider" validate:"required,objectid"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
	Status      *string  `json:"status" validate:"omitnil,oneof=active inactive discontinued"`
}

func (r *CreateProductRequest) ToDomain() *domain.Product {
	status := domain.ProductStatusActive
	if r.Status != nil {
		status = domain.ProductStatus(*r.Status)
	}
	return domain.NewProduct(*r.Name, *r.Price, *r.Description, domain.ID(*r.Provider), *r.Stock, status)
}

// UpdateProductRequest is the partial-update payload: every field is optional.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitnil,min=1"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
	Description *string  `json:"description" validate:"omitnil,min=1"`
	Provider    *string  `json:"provider" validate:"omitnil,objectid"`
	Stock       *int     `json:"stock" validate:"omitnil,gte=0"`
	Status      *string  `json:"status" validate:"omitnil,oneof=active inactive discontinued"`
}

func (r *UpdateProductRequest) ToPatch() domain.ProductPatch {
	patch := domain.ProductPatch{
		Name:        r.Name,
		Price:       r.Price,
		Description: r.Description,
		Stock:       r.Stock,
	}
	if r.Provider != nil {
		id := domain.ID(*r.Provider)
		patch.ProviderID = &id
	}
	if r.Status != nil {
		status := domain.ProductStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}
