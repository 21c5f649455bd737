package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeShowsCounts(t *testing.T) {
	db := SetupTestDB(t)
	router := SetupTestRouter(t, db)
	s := CreateTestSupplier(t, db, "SIAGRO")
	CreateTestIngredient(t, db, "tomato", s)
	CreateTestIngredient(t, db, "lettuce", s)

	w := PerformGet(router, "/inventory/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Restaurant Inventory Home")
}

func TestHealthCheck(t *testing.T) {
	db := SetupTestDB(t)
	router := SetupTestRouter(t, db)

	w := PerformGet(router, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	db := SetupTestDB(t)
	router := SetupTestRouter(t, db)

	w := PerformGet(router, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateRouteWinsOverDetail(t *testing.T) {
	db := SetupTestDB(t)
	router := SetupTestRouter(t, db)

	// "create" must reach the form page, never be parsed as an id.
	for _, path := range []string{
		"/inventory/supplier/create",
		"/inventory/ingredient/create",
		"/inventory/restaurantware/create",
		"/inventory/recipe/create",
	} {
		w := PerformGet(router, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
