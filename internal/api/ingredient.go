package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tdiagne/resto-inventory/internal/form"
	"github.com/tdiagne/resto-inventory/internal/models"
	"github.com/tdiagne/resto-inventory/internal/service"
)

type IngredientHandler struct {
	ingredients *service.IngredientService
	suppliers   *service.SupplierService
}

func NewIngredientHandler(ingredients *service.IngredientService, suppliers *service.SupplierService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients, suppliers: suppliers}
}

func (h *IngredientHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/ingredients", h.List)
	r.GET("/ingredient/create", h.CreateForm)
	r.POST("/ingredient/create", h.Create)
	r.GET("/ingredient/:id", h.Detail)
	r.GET("/ingredient/:id/update", h.UpdateForm)
	r.POST("/ingredient/:id/update", h.Update)
	r.GET("/ingredient/:id/delete", h.DeleteForm)
	r.POST("/ingredient/:id/delete", h.Delete)
}

func (h *IngredientHandler) List(c *gin.Context) {
	ingredients, err := h.ingredients.List(c.Request.Context())
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.HTML(http.StatusOK, "ingredient_list.html", gin.H{
		"title":           "Ingredient List",
		"ingredient_list": ingredients,
	})
}

func (h *IngredientHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ingredient, err := h.ingredients.Get(c.Request.Context(), id)
	if err != nil {
		renderLookupError(c, err, "Ingredient not found.")
		return
	}
	c.HTML(http.StatusOK, "ingredient_detail.html", gin.H{
		"title":      "Ingredient Detail",
		"ingredient": ingredient,
	})
}

// formData fetches the supplier list and the live set of type tags needed
// to render the create/update form.
func (h *IngredientHandler) formData(c *gin.Context) ([]models.Supplier, []string, bool) {
	suppliers, err := h.suppliers.List(c.Request.Context())
	if err != nil {
		renderServerError(c, err)
		return nil, nil, false
	}
	types, err := h.ingredients.DistinctTypes(c.Request.Context())
	if err != nil {
		renderServerError(c, err)
		return nil, nil, false
	}
	return suppliers, types, true
}

func (h *IngredientHandler) CreateForm(c *gin.Context) {
	suppliers, types, ok := h.formData(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "ingredient_form.html", gin.H{
		"title":     "Create Ingredient",
		"form":      &form.IngredientForm{},
		"suppliers": suppliers,
		"types":     types,
	})
}

func (h *IngredientHandler) Create(c *gin.Context) {
	values, err := postForm(c)
	if err != nil {
		renderServerError(c, err)
		return
	}
	f := form.ParseIngredient(values)
	if !f.Validate() {
		suppliers, types, ok := h.formData(c)
		if !ok {
			return
		}
		c.HTML(http.StatusOK, "ingredient_form.html", gin.H{
			"title":     "Create Ingredient",
			"form":      f,
			"suppliers": suppliers,
			"types":     types,
		})
		return
	}
	ingredient, err := h.ingredients.Create(c.Request.Context(), f.Record())
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, ingredient.URL())
}

func (h *IngredientHandler) UpdateForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ingredient, err := h.ingredients.Get(c.Request.Context(), id)
	if err != nil {
		renderLookupError(c, err, "Ingredient not found.")
		return
	}
	suppliers, types, ok := h.formData(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "ingredient_form.html", gin.H{
		"title":     "Update Ingredient",
		"form":      form.IngredientFormOf(ingredient),
		"suppliers": suppliers,
		"types":     types,
	})
}

func (h *IngredientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	values, err := postForm(c)
	if err != nil {
		renderServerError(c, err)
		return
	}
	f := form.ParseIngredient(values)
	if !f.Validate() {
		suppliers, types, ok := h.formData(c)
		if !ok {
			return
		}
		c.HTML(http.StatusOK, "ingredient_form.html", gin.H{
			"title":     "Update Ingredient",
			"form":      f,
			"suppliers": suppliers,
			"types":     types,
		})
		return
	}
	ingredient, err := h.ingredients.Update(c.Request.Context(), id, f.Record())
	if err != nil {
		renderLookupError(c, err, "Ingredient not found.")
		return
	}
	c.Redirect(http.StatusSeeOther, ingredient.URL())
}

func (h *IngredientHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ingredient, err := h.ingredients.Get(c.Request.Context(), id)
	if err != nil {
		renderLookupError(c, err, "Ingredient not found.")
		return
	}
	c.HTML(http.StatusOK, "ingredient_delete.html", gin.H{
		"title":      "Delete Ingredient",
		"ingredient": ingredient,
	})
}

func (h *IngredientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.ingredients.Delete(c.Request.Context(), id); err != nil {
		renderLookupError(c, err, "Ingredient not found.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/inventory/ingredients")
}
