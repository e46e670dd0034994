package dto

import "github.com/rafaelleal24/catalog/internal/core/domain"

// CreateProviderRequest is used for creation and for full replacement.
type CreateProviderRequest struct {
	Name        *string `json:"name" validate:"required,min=1"`
	Address     *string `json:"address" validate:"required,min=1"`
	Phone       *string `json:"phone" validate:"required,min=1"`
	Email       *string `json:"email" validate:"omitnil,email"`
	Description *string `json:"description" validate:"required,min=1"`
}

func (r *CreateProviderRequest) ToDomain() *domain.Provider {
	email := ""
	if r.Email != nil {
		email = *r.Email
	}
	return domain.NewProvider(*r.Name, *r.Address, *r.Phone, email, *r.Description)
}

type UpdateProviderRequest struct {
	Name        *string `json:"name" validate:"omitnil,min=1"`
	Address     *string `json:"address" validate:"omitnil,min=1"`
	Phone       *string `json:"phone" validate:"omitnil,min=1"`
	Email       *string `json:"email" validate:"omitnil,email"`
	Description *string `json:"description" validate:"omitnil,min=1"`
}

func (r *UpdateProviderRequest) ToPatch() domain.ProviderPatch {
	return domain.ProviderPatch{
		Name:        r.Name,
		Address:     r.Address,
		Phone:       r.Phone,
		Email:       r.Email,
		Description: r.Description,
	}
}
