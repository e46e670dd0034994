package domain

import "time"

type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

func (s ProductStatus) IsValid() bool {
	return s == ProductStatusActive || s == ProductStatusInactive || s == ProductStatusDiscontinued
}

// ProviderSummary is the partial provider view embedded in product reads.
// Name and Address are empty when the reference was not resolved.
type ProviderSummary struct {
	ID      ID
	Name    string
	Address string
}

type Product struct {
	ID          ID
	Name        string
	Price       float64
	Description string
	ProviderID  ID
	Provider    *ProviderSummary
	Stock       int
	Status      ProductStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProduct(name string, price float64, description string, providerID ID, stock int, status ProductStatus) *Product {
	if status == "" {
		status = ProductStatusActive
	}
	return &Product{
		Name:        name,
		Price:       price,
		Description: description,
		ProviderID:  providerID,
		Stock:       stock,
		Status:      status,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// ProductPatch holds the fields of a partial update. Nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Price       *float64
	Description *string
	ProviderID  *ID
	Stock       *int
	Status      *ProductStatus
}

func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Description == nil &&
		p.ProviderID == nil && p.Stock == nil && p.Status == nil
}
