// Package query turns raw HTTP query parameters into typed, bounded query descriptors.
package query

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
)

const (
	DefaultPage   = 1
	DefaultLimit  = 10
	MaxLimit      = 50
	DefaultSortBy = "createdAt"

	// MaxPage keeps (page-1)*limit inside int for every allowed limit.
	MaxPage = math.MaxInt / MaxLimit
)

var disallowedFieldChars = regexp.MustCompile(`[^a-zA-Z0-9,_]`)

// ParsePage reads page and limit. Missing, non-numeric or out of range values fall back
// to defaults and limits above MaxLimit are clamped.
func ParsePage(values url.Values) domain.Page {
	page, err := strconv.Atoi(values.Get("page"))
	if err != nil || page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}

	limit, err := strconv.Atoi(values.Get("limit"))
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return domain.Page{Number: page, Size: limit}
}

// ParseSort reads sortBy and order. Only "asc" sorts ascending.
func ParseSort(values url.Values) domain.Sort {
	field := strings.ReplaceAll(disallowedFieldChars.ReplaceAllString(values.Get("sortBy"), ""), ",", "")
	if field == "" {
		field = DefaultSortBy
	}

	direction := domain.SortDescending
	if values.Get("order") == "asc" {
		direction = domain.SortAscending
	}

	return domain.Sort{Field: field, Direction: direction}
}

// SanitizeFields strips every character outside [a-zA-Z0-9,_] from raw.
func SanitizeFields(raw string) string {
	return disallowedFieldChars.ReplaceAllString(raw, "")
}

// ParseProjection reads the comma separated fields parameter.
func ParseProjection(values url.Values) domain.Projection {
	sanitized := SanitizeFields(values.Get("fields"))
	if sanitized == "" {
		return nil
	}

	var projection domain.Projection
	seen := map[string]bool{}
	for _, field := range strings.Split(sanitized, ",") {
		if field == "" || seen[field] {
			continue
		}
		seen[field] = true
		projection = append(projection, field)
	}
	return projection
}

func optionalString(values url.Values, key string) *string {
	value := values.Get(key)
	if value == "" {
		return nil
	}
	return &value
}

func optionalFloat(values url.Values, key string) *float64 {
	value, err := strconv.ParseFloat(values.Get(key), 64)
	if err != nil {
		return nil
	}
	return &value
}

func listPopulate() *domain.Populate {
	return &domain.Populate{Path: "provider", Fields: []string{"name"}}
}

// ProductList builds the descriptor for GET /products.
func ProductList(values url.Values) (domain.ProductQuery, error) {
	filter := domain.ProductFilter{
		Search:   values.Get("search"),
		Status:   optionalString(values, "status"),
		PriceMin: optionalFloat(values, "minPrice"),
		PriceMax: optionalFloat(values, "maxPrice"),
	}

	if provider := values.Get("provider"); provider != "" {
		if !domain.ValidateID(provider) {
			return domain.ProductQuery{}, serviceerrors.NewInvalidRequestError("Invalid provider ID format")
		}
		id := domain.ID(provider)
		filter.ProviderID = &id
	}

	return domain.ProductQuery{
		Filter:     filter,
		Sort:       ParseSort(values),
		Page:       ParsePage(values),
		Projection: ParseProjection(values),
		Populate:   listPopulate(),
	}, nil
}

// ProductsByProvider builds the descriptor for GET /products/provider/:providerId.
// Only pagination, sorting and projection apply.
func ProductsByProvider(providerID string, values url.Values) (domain.ProductQuery, error) {
	if !domain.ValidateID(providerID) {
		return domain.ProductQuery{}, serviceerrors.NewInvalidRequestError("Invalid provider ID format")
	}
	id := domain.ID(providerID)

	return domain.ProductQuery{
		Filter:     domain.ProductFilter{ProviderID: &id},
		Sort:       ParseSort(values),
		Page:       ParsePage(values),
		Projection: ParseProjection(values),
		Populate:   listPopulate(),
	}, nil
}

// ProductDetail builds the read options for GET /products/:id.
func ProductDetail(values url.Values) domain.FindOptions {
	return domain.FindOptions{
		Projection: ParseProjection(values),
		Populate:   &domain.Populate{Path: "provider", Fields: []string{"name", "address"}},
	}
}

// ProviderList builds the descriptor for GET /providers.
func ProviderList(values url.Values) domain.ProviderQuery {
	return domain.ProviderQuery{
		Filter: domain.ProviderFilter{
			Search: values.Get("search"),
			Name:   optionalString(values, "name"),
		},
		Sort:       ParseSort(values),
		Page:       ParsePage(values),
		Projection: ParseProjection(values),
	}
}

// ProviderDetail builds the read options for GET /providers/:id.
func ProviderDetail(values url.Values) domain.FindOptions {
	return domain.FindOptions{Projection: ParseProjection(values)}
}
