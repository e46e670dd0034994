package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/catalog/internal/adapters/http/controllers"
	"github.com/rafaelleal24/catalog/internal/core/port/mock"
	"github.com/rafaelleal24/catalog/internal/core/service"
	"github.com/rafaelleal24/catalog/internal/core/validation"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	productID  = "aabbccddee112233aabbccdd"
	providerID = "112233445566778899aabbcc"
)

type envelope struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	Data       json.RawMessage  `json:"data"`
	Pagination *paginationBody  `json:"pagination"`
	Errors     []fieldErrorBody `json:"errors"`
	Error      string           `json:"error"`
}

type paginationBody struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

type fieldErrorBody struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type testServer struct {
	engine    *gin.Engine
	products  *mock.MockProductPort
	providers *mock.MockProviderPort
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	products := mock.NewMockProductPort(ctrl)
	providers := mock.NewMockProviderPort(ctrl)
	broker := mock.NewMockBrokerPort(ctrl)
	broker.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	validator := validation.New()
	pc := controllers.NewProductController(service.NewProductService(products, broker), validator)
	vc := controllers.NewProviderController(service.NewProviderService(providers, broker), validator)

	engine := gin.New()
	api := engine.Group("/api/v1")
	api.POST("/products", pc.CreateProduct)
	api.GET("/products", pc.GetProducts)
	api.GET("/products/provider/:providerId", pc.GetProductsByProvider)
	api.GET("/products/:id", pc.GetProductByID)
	api.PUT("/products/:id", pc.UpdateProduct)
	api.PATCH("/products/:id", pc.UpdateProduct)
	api.DELETE("/products/:id", pc.DeleteProduct)
	api.POST("/providers", vc.CreateProvider)
	api.GET("/providers", vc.GetProviders)
	api.GET("/providers/:id", vc.GetProviderByID)
	api.PATCH("/providers/:id", vc.UpdateProvider)
	api.PUT("/providers/:id", vc.ReplaceProvider)
	api.DELETE("/providers/:id", vc.DeleteProvider)

	return &testServer{engine: engine, products: products, providers: providers}
}

func (s *testServer) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var data T
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data
}

func TestMalformedIDsNeverReachStorage(t *testing.T) {
	tests := []struct {
		method  string
		path    string
		body    string
		message string
	}{
		{http.MethodGet, "/api/v1/products/123", "", "Invalid product ID format"},
		{http.MethodPut, "/api/v1/products/zzzzzzzzzzzzzzzzzzzzzzzz", `{"name":"x"}`, "Invalid product ID format"},
		{http.MethodPatch, "/api/v1/products/abc", `{"name":"x"}`, "Invalid product ID format"},
		{http.MethodDelete, "/api/v1/products/abc", "", "Invalid product ID format"},
		{http.MethodGet, "/api/v1/products/provider/abc", "", "Invalid provider ID format"},
		{http.MethodGet, "/api/v1/products?provider=abc", "", "Invalid provider ID format"},
		{http.MethodGet, "/api/v1/providers/aabbccddee112233aabbccd", "", "Invalid provider ID format"},
		{http.MethodPatch, "/api/v1/providers/abc", `{"name":"x"}`, "Invalid provider ID format"},
		{http.MethodPut, "/api/v1/providers/abc", `{}`, "Invalid provider ID format"},
		{http.MethodDelete, "/api/v1/providers/abc", "", "Invalid provider ID format"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			// no EXPECT on the repository mocks: any storage call fails the test
			s := newTestServer(t)

			rec, env := s.do(t, tt.method, tt.path, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.False(t, env.Success)
			require.Equal(t, tt.message, env.Message)
		})
	}
}
