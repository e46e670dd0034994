package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/catalog/internal/adapters/http/handlers"
	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/dto"
	"github.com/rafaelleal24/catalog/internal/core/query"
	"github.com/rafaelleal24/catalog/internal/core/service"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
	"github.com/rafaelleal24/catalog/internal/core/validation"
)

const invalidProductID = "Invalid product ID format"

type ProductController struct {
	productService *service.ProductService
	validator      *validation.Validator
}

func NewProductController(productService *service.ProductService, validator *validation.Validator) *ProductController {
	return &ProductController{productService: productService, validator: validator}
}

func (pc *ProductController) productID(c *gin.Context) (domain.ID, bool) {
	id := c.Param("id")
	if !domain.ValidateID(id) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(invalidProductID), "")
		return "", false
	}
	return domain.ID(id), true
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Creates a new product. The provider reference is format-checked but not resolved.
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateProductRequest true "Product data"
// @Success     201     {object} handlers.Envelope{data=ProductResponse}
// @Failure     400     {object} handlers.Envelope
// @Failure     500     {object} handlers.Envelope
// @Router      /api/v1/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	const failure = "Internal server error"

	body, err := c.GetRawData()
	if err != nil {
		handlers.HandleError(c, err, failure)
		return
	}

	var request dto.CreateProductRequest
	if err := pc.validator.Decode(body, &request); err != nil {
		handlers.HandleError(c, err, failure)
		return
	}

	product, err := pc.productService.CreateProduct(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err, failure)
		return
	}

	handlers.Success(c, http.StatusCreated, "Product created successfully", NewProductResponse(product, nil))
}

// GetProducts godoc
// @Summary     List products
// @Description Paginated, filterable product listing with the provider name resolved
// @Tags        products
// @Produce     json
// @Param       page     query    int    false "Page number (default 1)"
// @Param       limit    query    int    false "Items per page (default 10, max 50)"
// @Param       sortBy   query    string false "Sort field (default createdAt)"
// @Param       order    query    string false "asc or desc (default desc)"
// @Param       search   query    string false "Case-insensitive match on name or description"
// @Param       status   query    string false "active, inactive or discontinued"
// @Param       provider query    string false "Provider id"
// @Param       minPrice query    number false "Inclusive lower price bound"
// @Param       maxPrice query    number false "Inclusive upper price bound"
// @Param       fields   query    string false "Comma separated fields to return"
// @Success     200      {object} handlers.Envelope{data=[]ProductResponse}
// @Failure     400      {object} handlers.Envelope
// @Failure     500      {object} handlers.Envelope
// @Router      /api/v1/products [get]
func (pc *ProductController) GetProducts(c *gin.Context) {
	const failure = "Error retrieving products"

	q, err := query.ProductList(c.Request.URL.Query())
	if err != nil {
		handlers.HandleError(c, err, failure)
		return
	}

	pc.respondPage(c, q, "Products retrieved successfully", failure)
}

// GetProductsByProvider godoc
// @Summary     List products of a provider
// @Tags        products
// @Produce     json
// @Param       providerId path     string true  "Provider id"
// @Param       page       query    int    false "Page number (default 1)"
// @Param       limit      query    int    false "Items per page (default 10, max 50)"
// @Param       sortBy     query    string false "Sort field (default createdAt)"
// @Param       order      query    string false "asc or desc (default desc)"
// @Param       fields     query    string false "Comma separated fields to return"
// @Success     200        {object} handlers.Envelope{data=[]ProductResponse}
// @Failure     400        {object} handlers.Envelope
// @Failure     500        {object} handlers.Envelope
// @Router      /api/v1/products/provider/{providerId} [get]
func (pc *ProductController) GetProductsByProvider(c *gin.Context) {
	const failure = "Error retrieving products by provider"

	q, err := query.ProductsByProvider(c.Param("providerId"), c.Request.URL.Query())
	if err != nil {
		handlers.HandleError(c, err, failure)
		return
	}

	pc.respondPage(c, q, "Products from provider retrieved successfully", failure)
}

func (pc *ProductController) respondPage(c *gin.Context, q domain.ProductQuery, message, failure string) {
	result, err := pc.productService.List(c.Request.Context(), q)
	if err != nil {
		handlers.HandleError(c, err, failure)
		return
	}

	handlers.Paginated(c, http.StatusOK, message,
		NewProductResponses(result.Items, q.Projection),
		domain.NewPagination(q.Page, result.Total),
	)
}

// GetProductByID godoc
// @Summary     Get a product
// @Description Returns one product with the provider name and address resolved
// @Tags        products
// @Produce     json
// @Param       id     path     string true  "Product id"
// @Param       fields query    string false "Comma separated fields to return"
// @Success     200    {object} handlers.Envelope{data=ProductResponse}
// @Failure     400    {object} handlers.Envelope
// @Failure     404    {object} handlers.Envelope
// @Failure     500    {object} handlers.Envelope
// @Router      /api/v1/products/{id} [get]
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, ok := pc.productID(c)
	if !ok {
		return
	}

	opts := query.ProductDetail(c.Request.URL.Query())
	product, err := pc.productService.GetByID(c.Request.Context(), id, opts)
	if err != nil {
		handlers.HandleError(c, err, "Error retrieving product")
		return
	}

	handlers.Success(c, http.StatusOK, "Product retrieved successfully", NewProductResponse(product, opts.Projection))
}

// UpdateProduct godoc
// @Summary     Update a product
// @Description Partial update; PUT and PATCH behave the same
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     string                   true "Product id"
// @Param       request body     dto.UpdateProductRequest true "Fields to change"
// @Success     200     {object} handlers.Envelope{data=ProductResponse}
// @Failure     400     {object} handlers.Envelope
// @Failure     404     {object} handlers.Envelope
// @Failure     500     {object} handlers.Envelope
// @Router      /api/v1/products/{id} [put]
// @Router      /api/v1/products/{id} [patch]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	const failure = "Error updating product"

	id, ok := pc.productID(c)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		handlers.HandleError(c, err, failure)
		return
	}

	var request dto.UpdateProductRequest
	if err := pc.validator.Decode(body, &request); err != nil {
		handlers.HandleError(c, err, failure)
		return
	}

	product, err := pc.productService.UpdateProduct(c.Request.Context(), id, &request)
	if err != nil {
		handlers.HandleError(c, err, failure)
		return
	}

	handlers.Success(c, http.StatusOK, "Product updated successfully", NewProductResponse(product, nil))
}

// DeleteProduct godoc
// @Summary     Delete a product
// @Tags        products
// @Produce     json
// @Param       id  path     string true "Product id"
// @Success     200 {object} handlers.Envelope{data=DeletedResponse}
// @Failure     400 {object} handlers.Envelope
// @Failure     404 {object} handlers.Envelope
// @Failure     500 {object} handlers.Envelope
// @Router      /api/v1/products/{id} [delete]
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := pc.productID(c)
	if !ok {
		return
	}

	product, err := pc.productService.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err, "Error deleting product")
		return
	}

	handlers.Success(c, http.StatusOK, "Product deleted successfully", DeletedResponse{
		ID:   string(product.ID),
		Name: product.Name,
	})
}
