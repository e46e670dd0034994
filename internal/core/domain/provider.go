package domain

import "time"

type Provider struct {
	ID          ID
	Name        string
	Address     string
	Phone       string
	Email       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewProvider(name, address, phone, email, description string) *Provider {
	return &Provider{
		Name:        name,
		Address:     address,
		Phone:       phone,
		Email:       email,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

type ProviderPatch struct {
	Name        *string
	Address     *string
	Phone       *string
	Email       *string
	Description *string
}

func (p ProviderPatch) IsEmpty() bool {
	return p.Name == nil && p.Address == nil && p.Phone == nil && p.Email == nil && p.Description == nil
}
