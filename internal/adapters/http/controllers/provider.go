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

const invalidProviderID = "Invalid provider ID format"

type ProviderController struct {
	providerService *service.ProviderService
	validator       *validation.Validator
}

func NewProviderController(providerService *service.ProviderService, validator *validation.Validator) *ProviderController {
	return &ProviderController{providerService: providerService, validator: validator}
}

func (pc *ProviderController) providerID(c *gin.Context) (domain.ID, bool) {
	id := c.Param("id")
	if !domain.ValidateID(id) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(invalidProviderID), "")
		return "", false
	}
	return domain.ID(id), true
}

// decode reads the body into dst and reports whether the handler may continue.
func (pc *ProviderController) decode(c *gin.Context, dst any, failure string) bool {
	body, err := c.GetRawData()
	if err != nil {
		handlers.HandleError(c, err, failure)
		return false
	}
	if err := pc.validator.Decode(body, dst); err != nil {
		handlers.HandleError(c, err, failure)
		return false
	}
	return true
}

// CreateProvider godoc
// @Summary     Create a provider
// @Description Creates a provider. Names are unique.
// @Tags        providers
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateProviderRequest true "Provider data"
// @Success     201     {object} handlers.Envelope{data=ProviderResponse}
// @Failure     400     {object} handlers.Envelope
// @Failure     409     {object} handlers.Envelope
// @Failure     500     {object} handlers.Envelope
// @Router      /api/v1/providers [post]
func (pc *ProviderController) CreateProvider(c *gin.Context) {
	const failure = "Internal server error"

	var request dto.CreateProviderRequest
	if !pc.decode(c, &request, failure) {
		return
	}

	provider, err := pc.providerService.CreateProvider(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err, failure)
		return
	}

	handlers.Success(c, http.StatusCreated, "Provider created successfully", NewProviderResponse(provider, nil))
}

// GetProviders godoc
// @Summary     List providers
// @Tags        providers
// @Produce     json
// @Param       page   query    int    false "Page number (default 1)"
// @Param       limit  query    int    false "Items per page (default 10, max 50)"
// @Param       sortBy query    string false "Sort field (default createdAt)"
// @Param       order  query    string false "asc or desc (default desc)"
// @Param       search query    string false "Case-insensitive match on name or description"
// @Param       name   query    string false "Exact provider name"
// @Param       fields query    string false "Comma separated fields to return"
// @Success     200    {object} handlers.Envelope{data=[]ProviderResponse}
// @Failure     500    {object} handlers.Envelope
// @Router      /api/v1/providers [get]
func (pc *ProviderController) GetProviders(c *gin.Context) {
	q := query.ProviderList(c.Request.URL.Query())

	result, err := pc.providerService.List(c.Request.Context(), q)
	if err != nil {
		handlers.HandleError(c, err, "Error retrieving providers")
		return
	}

	handlers.Paginated(c, http.StatusOK, "Providers retrieved successfully",
		NewProviderResponses(result.Items, q.Projection),
		domain.NewPagination(q.Page, result.Total),
	)
}

// GetProviderByID godoc
// @Summary     Get a provider
// @Tags        providers
// @Produce     json
// @Param       id     path     string true  "Provider id"
// @Param       fields query    string false "Comma separated fields to return"
// @Success     200    {object} handlers.Envelope{data=ProviderResponse}
// @Failure     400    {object} handlers.Envelope
// @Failure     404    {object} handlers.Envelope
// @Failure     500    {object} handlers.Envelope
// @Router      /api/v1/providers/{id} [get]
func (pc *ProviderController) GetProviderByID(c *gin.Context) {
	id, ok := pc.providerID(c)
	if !ok {
		return
	}

	opts := query.ProviderDetail(c.Request.URL.Query())
	provider, err := pc.providerService.GetByID(c.Request.Context(), id, opts)
	if err != nil {
		handlers.HandleError(c, err, "Error retrieving provider")
		return
	}

	handlers.Success(c, http.StatusOK, "Provider retrieved successfully", NewProviderResponse(provider, opts.Projection))
}

// UpdateProvider godoc
// @Summary     Partially update a provider
// @Description Only the given fields change. Renaming re-checks uniqueness.
// @Tags        providers
// @Accept      json
// @Produce     json
// @Param       id      path     string                    true "Provider id"
// @Param       request body     dto.UpdateProviderRequest true "Fields to change"
// @Success     200     {object} handlers.Envelope{data=ProviderResponse}
// @Failure     400     {object} handlers.Envelope
// @Failure     404     {object} handlers.Envelope
// @Failure     409     {object} handlers.Envelope
// @Failure     500     {object} handlers.Envelope
// @Router      /api/v1/providers/{id} [patch]
func (pc *ProviderController) UpdateProvider(c *gin.Context) {
	const failure = "Error updating provider"

	id, ok := pc.providerID(c)
	if !ok {
		return
	}

	var request dto.UpdateProviderRequest
	if !pc.decode(c, &request, failure) {
		return
	}

	provider, err := pc.providerService.UpdateProvider(c.Request.Context(), id, &request)
	if err != nil {
		handlers.HandleError(c, err, failure)
		return
	}

	handlers.Success(c, http.StatusOK, "Provider updated successfully", NewProviderResponse(provider, nil))
}

// ReplaceProvider godoc
// @Summary     Replace a provider
// @Description Full replacement validated like a create; an omitted email is removed
// @Tags        providers
// @Accept      json
// @Produce     json
// @Param       id      path     string                    true "Provider id"
// @Param       request body     dto.CreateProviderRequest true "Complete provider"
// @Success     200     {object} handlers.Envelope{data=ProviderResponse}
// @Failure     400     {object} handlers.Envelope
// @Failure     404     {object} handlers.Envelope
// @Failure     409     {object} handlers.Envelope
// @Failure     500     {object} handlers.Envelope
// @Router      /api/v1/providers/{id} [put]
func (pc *ProviderController) ReplaceProvider(c *gin.Context) {
	const failure = "Error updating provider"

	id, ok := pc.providerID(c)
	if !ok {
		return
	}

	var request dto.CreateProviderRequest
	if !pc.decode(c, &request, failure) {
		return
	}

	provider, err := pc.providerService.ReplaceProvider(c.Request.Context(), id, &request)
	if err != nil {
		handlers.HandleError(c, err, failure)
		return
	}

	handlers.Success(c, http.StatusOK, "Provider updated successfully", NewProviderResponse(provider, nil))
}

// DeleteProvider godoc
// @Summary     Delete a provider
// @Description Products referencing the provider are left untouched
// @Tags        providers
// @Produce     json
// @Param       id  path     string true "Provider id"
// @Success     200 {object} handlers.Envelope{data=DeletedResponse}
// @Failure     400 {object} handlers.Envelope
// @Failure     404 {object} handlers.Envelope
// @Failure     500 {object} handlers.Envelope
// @Router      /api/v1/providers/{id} [delete]
func (pc *ProviderController) DeleteProvider(c *gin.Context) {
	id, ok := pc.providerID(c)
	if !ok {
		return
	}

	provider, err := pc.providerService.DeleteProvider(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err, "Error deleting provider")
		return
	}

	handlers.Success(c, http.StatusOK, "Provider deleted successfully", DeletedResponse{
		ID:   string(provider.ID),
		Name: provider.Name,
	})
}
