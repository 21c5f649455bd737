package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/tdiagne/resto-inventory/internal/database"
	"github.com/tdiagne/resto-inventory/internal/middleware"
	"github.com/tdiagne/resto-inventory/internal/service"
)

// SetupAPI wires every inventory page plus the health and metrics
// endpoints onto the router. The per-entity services are built here, once,
// and handed to their handlers.
func SetupAPI(router *gin.Engine, db *gorm.DB, limiter *middleware.RateLimiter) {
	suppliers := service.NewSupplierService(db)
	ingredients := service.NewIngredientService(db)
	wares := service.NewWareService(db)
	recipes := service.NewRecipeService(db)

	inventory := router.Group("/inventory")
	if limiter != nil {
		inventory.Use(limiter.Middleware())
	}

	home := NewHomeHandler(suppliers, ingredients, wares, recipes)
	inventory.GET("/", home.Index)

	NewSupplierHandler(suppliers).RegisterRoutes(inventory)
	NewIngredientHandler(ingredients, suppliers).RegisterRoutes(inventory)
	NewWareHandler(wares, suppliers).RegisterRoutes(inventory)
	NewRecipeHandler(recipes, ingredients).RegisterRoutes(inventory)

	router.GET("/health", HealthCheck(db))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// HomeHandler renders the inventory home page with per-entity counts.
type HomeHandler struct {
	suppliers   *service.SupplierService
	ingredients *service.IngredientService
	wares       *service.WareService
	recipes     *service.RecipeService
}

func NewHomeHandler(suppliers *service.SupplierService, ingredients *service.IngredientService, wares *service.WareService, recipes *service.RecipeService) *HomeHandler {
	return &HomeHandler{
		suppliers:   suppliers,
		ingredients: ingredients,
		wares:       wares,
		recipes:     recipes,
	}
}

func (h *HomeHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	supplierCount, err := h.suppliers.Count(ctx)
	if err != nil {
		renderServerError(c, err)
		return
	}
	ingredientCount, err := h.ingredients.Count(ctx)
	if err != nil {
		renderServerError(c, err)
		return
	}
	wareCount, err := h.wares.Count(ctx)
	if err != nil {
		renderServerError(c, err)
		return
	}
	recipeCount, err := h.recipes.Count(ctx)
	if err != nil {
		renderServerError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":                "Restaurant Inventory Home",
		"supplier_count":       supplierCount,
		"ingredient_count":     ingredientCount,
		"restaurantware_count": wareCount,
		"recipe_count":         recipeCount,
	})
}

// HealthCheck returns the health status of the application including a
// database ping.
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := database.HealthCheck(ctx, db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Restaurant inventory is running",
		})
	}
}
