package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	adaptconfig "github.com/rafaelleal24/catalog/internal/adapters/config"
	adapthttp "github.com/rafaelleal24/catalog/internal/adapters/http"
	"github.com/rafaelleal24/catalog/internal/adapters/http/controllers"
	adaptmongo "github.com/rafaelleal24/catalog/internal/adapters/mongo"
	"github.com/rafaelleal24/catalog/internal/adapters/mongo/repository"
	adaptrabbitmq "github.com/rafaelleal24/catalog/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/service"
	"github.com/rafaelleal24/catalog/internal/core/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	tcrabbit "github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	mongoClient  *mongo.Client
	broker       *adaptrabbitmq.RabbitMQAdapter
	amqpEndpoint string
)

type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		TotalItems int64 `json:"totalItems"`
		TotalPages int   `json:"totalPages"`
	} `json:"pagination"`
}

type providerSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type productBody struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Stock    *int             `json:"stock"`
	Status   string           `json:"status"`
	Provider *providerSummary `json:"provider"`
}

func TestMain(m *testing.M) {
	ctx := context.Background()
	gin.SetMode(gin.TestMode)

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		log.Fatalf("mongodb container: %v", err)
	}
	mongoEndpoint, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("mongodb connection string: %v", err)
	}
	mongoClient, err = mongo.Connect(ctx, options.Client().
		ApplyURI(mongoEndpoint).
		SetConnectTimeout(30*time.Second).
		SetServerSelectionTimeout(30*time.Second))
	if err != nil {
		log.Fatalf("mongodb connect: %v", err)
	}
	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("mongodb ping: %v", err)
	}

	rabbitContainer, err := tcrabbit.Run(ctx, "rabbitmq:3-management-alpine")
	if err != nil {
		log.Fatalf("rabbitmq container: %v", err)
	}
	amqpEndpoint, err = rabbitContainer.AmqpURL(ctx)
	if err != nil {
		log.Fatalf("rabbitmq amqp url: %v", err)
	}
	broker, err = adaptrabbitmq.NewRabbitMQAdapter(adaptconfig.RabbitMQConfig{
		Enabled:    true,
		URL:        amqpEndpoint,
		MaxRetries: 2,
		RetryDelay: 100 * time.Millisecond,
		ExchangeConfigs: []adaptconfig.ExchangeConfig{
			{Name: "exchange.product", Type: "topic", Durable: true},
			{Name: "exchange.provider", Type: "topic", Durable: true},
		},
	})
	if err != nil {
		log.Fatalf("rabbitmq adapter: %v", err)
	}

	code := m.Run()

	_ = broker.Close()
	_ = mongoClient.Disconnect(ctx)
	_ = mongoContainer.Terminate(ctx)
	_ = rabbitContainer.Terminate(ctx)

	os.Exit(code)
}

func setupConsumer(t *testing.T, exchange, bindingKey string) <-chan amqp.Delivery {
	t.Helper()

	conn, err := amqp.Dial(amqpEndpoint)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	ch, err := conn.Channel()
	require.NoError(t, err)
	t.Cleanup(func() { ch.Close() })

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, bindingKey, exchange, false, nil))

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	require.NoError(t, err)
	return msgs
}

func expectEvent(t *testing.T, msgs <-chan amqp.Delivery, routingKey string) domain.ChangeEvent {
	t.Helper()

	select {
	case msg := <-msgs:
		require.Equal(t, routingKey, msg.RoutingKey)
		var event domain.ChangeEvent
		require.NoError(t, json.Unmarshal(msg.Body, &event))
		return event
	case <-time.After(10 * time.Second):
		t.Fatalf("timed out waiting for %s", routingKey)
		return domain.ChangeEvent{}
	}
}

// newServer wires the application the same way cmd/http does, on a fresh database.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	db := mongoClient.Database(strings.ReplaceAll(t.Name(), "/", "_"))
	t.Cleanup(func() { _ = db.Drop(context.Background()) })

	productService := service.NewProductService(repository.NewProductRepository(db), broker)
	providerService := service.NewProviderService(repository.NewProviderRepository(db), broker)

	validator := validation.New()
	health := controllers.NewHealthController([]controllers.HealthChecker{
		{Name: "mongodb", Check: adaptmongo.HealthCheck(mongoClient)},
		{Name: "rabbitmq", Check: func(ctx context.Context) error { return broker.HealthCheck() }},
	})
	router := adapthttp.NewRouter(
		health,
		controllers.NewProductController(productService, validator),
		controllers.NewProviderController(providerService, validator),
		true,
	)

	engine := gin.New()
	router.SetupRoutes(engine)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func createProvider(t *testing.T, srv *httptest.Server, name string) string {
	t.Helper()

	code, env := call(t, srv, http.MethodPost, "/api/v1/providers",
		`{"name":"`+name+`","address":"1 Main St","phone":"555-0100","description":"Tools"}`)
	require.Equal(t, http.StatusCreated, code, env.Message)

	var provider providerSummary
	require.NoError(t, json.Unmarshal(env.Data, &provider))
	return provider.ID
}

func TestIntegration_ProviderAndProductLifecycle(t *testing.T) {
	srv := newServer(t)
	providerEvents := setupConsumer(t, "exchange.provider", "provider.*")
	productEvents := setupConsumer(t, "exchange.product", "product.#")

	providerID := createProvider(t, srv, "Acme")
	created := expectEvent(t, providerEvents, "provider.created")
	assert.Equal(t, domain.ID(providerID), created.EntityID)

	code, env := call(t, srv, http.MethodPost, "/api/v1/providers",
		`{"name":"Acme","address":"2 Side St","phone":"555-0101","description":"Copy"}`)
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "Provider with this name already exists", env.Message)

	code, env = call(t, srv, http.MethodPost, "/api/v1/products",
		`{"name":"Hammer","price":19.5,"description":"Steel","provider":"`+providerID+`","stock":3}`)
	require.Equal(t, http.StatusCreated, code, env.Message)
	var product productBody
	require.NoError(t, json.Unmarshal(env.Data, &product))
	assert.Equal(t, "active", product.Status)
	expectEvent(t, productEvents, "product.created")

	code, env = call(t, srv, http.MethodGet, "/api/v1/products/"+product.ID, "")
	require.Equal(t, http.StatusOK, code)
	var detail productBody
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, &providerSummary{ID: providerID, Name: "Acme", Address: "1 Main St"}, detail.Provider)

	code, env = call(t, srv, http.MethodGet, "/api/v1/products/provider/"+providerID, "")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 1, env.Pagination.TotalItems)
	var listed []productBody
	require.NoError(t, json.Unmarshal(env.Data, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, &providerSummary{ID: providerID, Name: "Acme"}, listed[0].Provider)

	code, env = call(t, srv, http.MethodPatch, "/api/v1/products/"+product.ID, `{"stock":0,"status":"inactive"}`)
	require.Equal(t, http.StatusOK, code, env.Message)
	var updated productBody
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.NotNil(t, updated.Stock)
	assert.Equal(t, 0, *updated.Stock)
	assert.Equal(t, "inactive", updated.Status)
	expectEvent(t, productEvents, "product.updated")

	code, _ = call(t, srv, http.MethodDelete, "/api/v1/providers/"+providerID, "")
	require.Equal(t, http.StatusOK, code)
	expectEvent(t, providerEvents, "provider.deleted")

	// products keep the dangling reference
	code, env = call(t, srv, http.MethodGet, "/api/v1/products/"+product.ID, "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, &providerSummary{ID: providerID}, detail.Provider)

	code, _ = call(t, srv, http.MethodDelete, "/api/v1/products/"+product.ID, "")
	require.Equal(t, http.StatusOK, code)
	expectEvent(t, productEvents, "product.deleted")

	code, env = call(t, srv, http.MethodGet, "/api/v1/products/"+product.ID, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Product not found", env.Message)
}

func TestIntegration_ListProductsFiltersAndPages(t *testing.T) {
	srv := newServer(t)
	providerID := createProvider(t, srv, "Globex")

	for _, body := range []string{
		`{"name":"Bolt","price":1,"description":"d","provider":"` + providerID + `","stock":1}`,
		`{"name":"Nut","price":2,"description":"d","provider":"` + providerID + `","stock":1}`,
		`{"name":"Screw","price":3,"description":"d","provider":"` + providerID + `","stock":1,"status":"discontinued"}`,
		`{"name":"Washer","price":4,"description":"d","provider":"` + providerID + `","stock":1}`,
	} {
		code, env := call(t, srv, http.MethodPost, "/api/v1/products", body)
		require.Equal(t, http.StatusCreated, code, env.Message)
	}

	code, env := call(t, srv, http.MethodGet, "/api/v1/products?status=active&minPrice=2&sortBy=price&order=asc&limit=1&page=2", "")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 2, env.Pagination.TotalItems)
	assert.Equal(t, 2, env.Pagination.TotalPages)
	var page []productBody
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page, 1)
	assert.Equal(t, "Washer", page[0].Name)

	code, env = call(t, srv, http.MethodGet, "/api/v1/products?search=scr", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page, 1)
	assert.Equal(t, "Screw", page[0].Name)
}

func TestIntegration_Operational(t *testing.T) {
	srv := newServer(t)

	code, env := call(t, srv, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	resp, err := srv.Client().Get(srv.URL + "/api/v1/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.Client().Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	metrics, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `http_requests_total{code="200",method="GET",route="/"}`)
}
