package domain

import "math"

type SortDirection int

const (
	SortAscending  SortDirection = 1
	SortDescending SortDirection = -1
)

type Sort struct {
	Field     string
	Direction SortDirection
}

// Page is a 1-based pagination window.
type Page struct {
	Number int
	Size   int
}

// Skip saturates at math.MaxInt64 instead of wrapping negative.
func (p Page) Skip() int64 {
	if p.Number <= 1 || p.Size <= 0 {
		return 0
	}
	pages, size := int64(p.Number-1), int64(p.Size)
	if pages > math.MaxInt64/size {
		return math.MaxInt64
	}
	return pages * size
}

func (p Page) Limit() int64 {
	return int64(p.Size)
}

// Projection restricts the fields returned for an entity. An empty projection returns everything.
type Projection []string

func (p Projection) IsEmpty() bool {
	return len(p) == 0
}

// Includes reports whether field is part of the projection. The identifier is always included.
func (p Projection) Includes(field string) bool {
	if p.IsEmpty() || field == "id" {
		return true
	}
	for _, f := range p {
		if f == field {
			return true
		}
	}
	return false
}

// Populate resolves a reference field into a partial view of the referenced entity.
type Populate struct {
	Path   string
	Fields []string
}

type ProductFilter struct {
	Search     string
	Status     *string
	ProviderID *ID
	PriceMin   *float64
	PriceMax   *float64
}

type ProviderFilter struct {
	Search string
	Name   *string
}

type ProductQuery struct {
	Filter     ProductFilter
	Sort       Sort
	Page       Page
	Projection Projection
	Populate   *Populate
}

type ProviderQuery struct {
	Filter     ProviderFilter
	Sort       Sort
	Page       Page
	Projection Projection
}

// FindOptions carries the read shaping for single-record lookups.
type FindOptions struct {
	Projection Projection
	Populate   *Populate
}

type PageResult[T any] struct {
	Items []*T
	Total int64
}

type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int64
	ItemsPerPage int
	HasNext      bool
	HasPrev      bool
}

func NewPagination(page Page, total int64) Pagination {
	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}
	return Pagination{
		CurrentPage:  page.Number,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: page.Size,
		HasNext:      page.Number < totalPages,
		HasPrev:      page.Number > 1,
	}
}
