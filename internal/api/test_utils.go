package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tdiagne/resto-inventory/internal/database"
	"github.com/tdiagne/resto-inventory/internal/models"
	"github.com/tdiagne/resto-inventory/templates"
)

// SetupTestDB creates an in-memory database with the full schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSQLite()
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

// SetupTestRouter builds a router with every inventory page registered,
// rendering the real templates. No rate limiter is attached.
func SetupTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(templates.Load())
	SetupAPI(router, db, nil)
	return router
}

// PerformGet issues a GET request against the router.
func PerformGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// PerformForm issues a POST with an urlencoded form body.
func PerformForm(router *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// CreateTestSupplier inserts a supplier directly into the store.
func CreateTestSupplier(t *testing.T, db *gorm.DB, name string) *models.Supplier {
	t.Helper()
	s := &models.Supplier{Name: name, Address: "Av. Malick Sy, Dakar", Tel: "+221 33 849 56 66"}
	if err := db.WithContext(context.Background()).Create(s).Error; err != nil {
		t.Fatalf("failed to create test supplier: %v", err)
	}
	return s
}

// CreateTestIngredient inserts an ingredient referencing the given supplier.
func CreateTestIngredient(t *testing.T, db *gorm.DB, name string, supplier *models.Supplier) *models.Ingredient {
	t.Helper()
	i := &models.Ingredient{Name: name, Type: "fruit", Cost: 10, Quantity: 100, Critical: 25}
	if supplier != nil {
		i.SupplierID = &supplier.ID
	}
	if err := db.WithContext(context.Background()).Create(i).Error; err != nil {
		t.Fatalf("failed to create test ingredient: %v", err)
	}
	return i
}

// CreateTestWare inserts a restaurant ware referencing the given supplier.
func CreateTestWare(t *testing.T, db *gorm.DB, name string, supplier *models.Supplier) *models.RestaurantWare {
	t.Helper()
	w := &models.RestaurantWare{Name: name, Cost: 10, Stock: 40, Critical: 20}
	if supplier != nil {
		w.SupplierID = &supplier.ID
	}
	if err := db.WithContext(context.Background()).Create(w).Error; err != nil {
		t.Fatalf("failed to create test ware: %v", err)
	}
	return w
}

// CreateTestRecipe inserts a recipe with the given ingredients in order.
func CreateTestRecipe(t *testing.T, db *gorm.DB, name string, ingredients ...*models.Ingredient) *models.Recipe {
	t.Helper()
	r := &models.Recipe{Name: name, PrepTime: "10 min", Price: 24}
	if err := db.WithContext(context.Background()).Omit("Ingredients").Create(r).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	for pos, ingr := range ingredients {
		row := &models.RecipeIngredient{RecipeID: r.ID, Position: pos, IngredientID: ingr.ID}
		if err := db.WithContext(context.Background()).Create(row).Error; err != nil {
			t.Fatalf("failed to create test recipe ingredient: %v", err)
		}
	}
	return r
}
