package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"inventory-api/internal/handler"
	"inventory-api/internal/model"
	"inventory-api/internal/repository"
	"inventory-api/internal/router"
	"inventory-api/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	productService := service.NewProductService(productRepo, logger)
	productHandler := handler.NewProductHandler(productService, logger)
	systemHandler := handler.NewSystemHandler(testDB.Pool, logger)

	return router.New(productHandler, systemHandler, logger)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func createProduct(t *testing.T, server http.Handler, body string) model.Product {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	server.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var product model.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&product))

	return product
}

func TestProductAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("create then fetch returns the same values", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created := createProduct(t, server, `{"name": "Widget", "quantity": 5, "price": 2.5}`)
		assert.Positive(t, created.ID)
		assert.Equal(t, "Widget", created.Name)
		assert.Equal(t, "General", created.Category)
		assert.Equal(t, 5, created.Quantity)
		assert.Equal(t, 2.5, created.Price)
		assert.False(t, created.CreatedAt.IsZero())

		req := httptest.NewRequest(http.MethodGet, "/api/products/"+itoa(created.ID), nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var fetched model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&fetched))
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, created.Name, fetched.Name)
		assert.Equal(t, created.Quantity, fetched.Quantity)
		assert.Equal(t, created.Price, fetched.Price)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		a := createProduct(t, server, `{"name": "Product A"}`)
		b := createProduct(t, server, `{"name": "Product B"}`)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
		require.Len(t, products, 2)
		assert.Equal(t, b.ID, products[0].ID)
		assert.Equal(t, a.ID, products[1].ID)
	})

	t.Run("partial update leaves other fields unchanged", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created := createProduct(t, server, `{"name": "Widget", "category": "Hardware", "quantity": 5, "price": 2.5}`)

		req := httptest.NewRequest(http.MethodPut, "/api/products/"+itoa(created.ID), bytes.NewBufferString(`{"quantity": 9}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var updated model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
		assert.Equal(t, 9, updated.Quantity)
		assert.Equal(t, "Widget", updated.Name)
		assert.Equal(t, "Hardware", updated.Category)
		assert.Equal(t, 2.5, updated.Price)
	})

	t.Run("unknown id yields 404 for fetch, update, and delete", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		get := httptest.NewRequest(http.MethodGet, "/api/products/999999", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, get)
		assert.Equal(t, http.StatusNotFound, w.Code)

		put := httptest.NewRequest(http.MethodPut, "/api/products/999999", bytes.NewBufferString(`{"quantity": 1}`))
		put.Header.Set("Content-Type", "application/json")
		w = httptest.NewRecorder()
		server.ServeHTTP(w, put)
		assert.Equal(t, http.StatusNotFound, w.Code)

		del := httptest.NewRequest(http.MethodDelete, "/api/products/999999", nil)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, del)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("empty name is rejected and creates no row", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewBufferString(`{"name": ""}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		list := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, list)

		var products []model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
		assert.Empty(t, products)
	})

	t.Run("delete removes the product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		created := createProduct(t, server, `{"name": "Widget"}`)

		req := httptest.NewRequest(http.MethodDelete, "/api/products/"+itoa(created.ID), nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Product deleted successfully")

		get := httptest.NewRequest(http.MethodGet, "/api/products/"+itoa(created.ID), nil)
		w = httptest.NewRecorder()
		server.ServeHTTP(w, get)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("stats aggregates quantity and inventory value", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		createProduct(t, server, `{"name": "Product A", "quantity": 2, "price": 1.0}`)
		createProduct(t, server, `{"name": "Product B", "quantity": 3, "price": 2.0}`)

		req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var stats model.InventoryStats
		require.NoError(t, json.NewDecoder(w.Body).Decode(&stats))
		assert.Equal(t, int64(2), stats.TotalProducts)
		assert.Equal(t, int64(5), stats.TotalQuantity)
		assert.Equal(t, 8.0, stats.TotalInventoryValue)
	})

	t.Run("stats on empty store returns zeros", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var stats model.InventoryStats
		require.NoError(t, json.NewDecoder(w.Body).Decode(&stats))
		assert.Equal(t, int64(0), stats.TotalProducts)
		assert.Equal(t, int64(0), stats.TotalQuantity)
		assert.Equal(t, 0.0, stats.TotalInventoryValue)
	})

	t.Run("health endpoint reports connected database", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"healthy"`)
		assert.Contains(t, w.Body.String(), `"connected"`)
	})

	t.Run("root endpoint reports service info", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "/api/products")
	})
}
