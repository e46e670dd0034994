package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
)

// Envelope wraps every response body.
type Envelope struct {
	Success    bool                       `json:"success" example:"true"`
	Message    string                     `json:"message" example:"Products retrieved successfully"`
	Data       any                        `json:"data,omitempty"`
	Pagination *PaginationResponse        `json:"pagination,omitempty"`
	Errors     []serviceerrors.FieldError `json:"errors,omitempty"`
	Error      string                     `json:"error,omitempty"`
}

type PaginationResponse struct {
	CurrentPage  int   `json:"currentPage" example:"1"`
	TotalPages   int   `json:"totalPages" example:"3"`
	TotalItems   int64 `json:"totalItems" example:"25"`
	ItemsPerPage int   `json:"itemsPerPage" example:"10"`
	HasNext      bool  `json:"hasNext" example:"true"`
	HasPrev      bool  `json:"hasPrev" example:"false"`
}

func NewPaginationResponse(p domain.Pagination) *PaginationResponse {
	return &PaginationResponse{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalItems:   p.TotalItems,
		ItemsPerPage: p.ItemsPerPage,
		HasNext:      p.HasNext,
		HasPrev:      p.HasPrev,
	}
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

func Paginated(c *gin.Context, status int, message string, data any, pagination domain.Pagination) {
	c.JSON(status, Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: NewPaginationResponse(pagination),
	})
}
