package api

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdiagne/resto-inventory/internal/models"
)

func TestWareCreate(t *testing.T) {
	db := SetupTestDB(t)
	router := SetupTestRouter(t, db)
	s := CreateTestSupplier(t, db, "SENICO")

	w := PerformForm(router, "/inventory/restaurantware/create", url.Values{
		"name":     {"fork"},
		"type":     {""},
		"cost":     {"10"},
		"stock":    {"40"},
		"critical": {"20"},
		"supplier": {s.ID.String()},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = PerformGet(router, w.Header().Get("Location"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fork")
	assert.Contains(t, w.Body.String(), "SENICO")
}

func TestWareCreateValidation(t *testing.T) {
	db := SetupTestDB(t)
	router := SetupTestRouter(t, db)
	s := CreateTestSupplier(t, db, "SENICO")

	w := PerformForm(router, "/inventory/restaurantware/create", url.Values{
		"name":     {""},
		"cost":     {"10"},
		"stock":    {"many"},
		"critical": {"20"},
		"supplier": {s.ID.String()},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Name must not be empty.")
	assert.Contains(t, w.Body.String(), "Stock must be a number.")

	var count int64
	db.Model(&models.RestaurantWare{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestWareListShowsDanglingSupplierAsEmpty(t *testing.T) {
	db := SetupTestDB(t)
	router := SetupTestRouter(t, db)
	s := CreateTestSupplier(t, db, "SENICO")
	CreateTestWare(t, db, "plate", s)

	require.NoError(t, db.Delete(&models.Supplier{}, "id = ?", s.ID).Error)

	w := PerformGet(router, "/inventory/restaurantwares")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "plate")
	assert.NotContains(t, w.Body.String(), "SENICO")
}

func TestWareUpdateAndDelete(t *testing.T) {
	db := SetupTestDB(t)
	router := SetupTestRouter(t, db)
	s := CreateTestSupplier(t, db, "SENICO")
	ware := CreateTestWare(t, db, "knife", s)

	w := PerformForm(router, ware.URL()+"/update", url.Values{
		"name":     {"knife"},
		"type":     {"cutlery"},
		"cost":     {"11"},
		"stock":    {"35"},
		"critical": {"20"},
		"supplier": {s.ID.String()},
	})
	require.Equal(t, http.StatusSeeOther, w.Code)

	var updated models.RestaurantWare
	require.NoError(t, db.First(&updated, "id = ?", ware.ID).Error)
	assert.Equal(t, "cutlery", updated.Type)
	assert.Equal(t, 35.0, updated.Stock)

	w = PerformForm(router, ware.URL()+"/delete", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/inventory/restaurantwares", w.Header().Get("Location"))

	var count int64
	db.Model(&models.RestaurantWare{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestWareListOrderedByName(t *testing.T) {
	db := SetupTestDB(t)
	router := SetupTestRouter(t, db)
	s := CreateTestSupplier(t, db, "SENICO")
	CreateTestWare(t, db, "plate", s)
	CreateTestWare(t, db, "fork", s)
	CreateTestWare(t, db, "knife", s)

	w := PerformGet(router, "/inventory/restaurantwares")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Less(t, strings.Index(body, "fork"), strings.Index(body, "knife"))
	assert.Less(t, strings.Index(body, "knife"), strings.Index(body, "plate"))
}

func TestWareDetailNotFound(t *testing.T) {
	db := SetupTestDB(t)
	router := SetupTestRouter(t, db)

	w := PerformGet(router, "/inventory/restaurantware/not-a-uuid")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
