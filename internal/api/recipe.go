package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tdiagne/resto-inventory/internal/form"
	"github.com/tdiagne/resto-inventory/internal/models"
	"github.com/tdiagne/resto-inventory/internal/service"
)

type RecipeHandler struct {
	recipes     *service.RecipeService
	ingredients *service.IngredientService
}

func NewRecipeHandler(recipes *service.RecipeService, ingredients *service.IngredientService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, ingredients: ingredients}
}

func (h *RecipeHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/recipes", h.List)
	r.GET("/recipe/create", h.CreateForm)
	r.POST("/recipe/create", h.Create)
	r.GET("/recipe/:id", h.Detail)
	r.GET("/recipe/:id/update", h.UpdateForm)
	r.POST("/recipe/:id/update", h.Update)
	r.GET("/recipe/:id/delete", h.DeleteForm)
	r.POST("/recipe/:id/delete", h.Delete)
}

func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.HTML(http.StatusOK, "recipe_list.html", gin.H{
		"title":       "Recipe List",
		"recipe_list": recipes,
	})
}

func (h *RecipeHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		renderLookupError(c, err, "Recipe not found.")
		return
	}
	c.HTML(http.StatusOK, "recipe_detail.html", gin.H{
		"title":  "Recipe Detail",
		"recipe": recipe,
	})
}

// formData fetches the full ingredient list for the multi-select.
func (h *RecipeHandler) formData(c *gin.Context) ([]models.Ingredient, bool) {
	ingredients, err := h.ingredients.List(c.Request.Context())
	if err != nil {
		renderServerError(c, err)
		return nil, false
	}
	return ingredients, true
}

func (h *RecipeHandler) CreateForm(c *gin.Context) {
	ingredients, ok := h.formData(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "recipe_form.html", gin.H{
		"title":       "Create Recipe",
		"form":        &form.RecipeForm{},
		"ingredients": ingredients,
	})
}

func (h *RecipeHandler) Create(c *gin.Context) {
	values, err := postForm(c)
	if err != nil {
		renderServerError(c, err)
		return
	}
	f := form.ParseRecipe(values)
	if !f.Validate() {
		ingredients, ok := h.formData(c)
		if !ok {
			return
		}
		c.HTML(http.StatusOK, "recipe_form.html", gin.H{
			"title":       "Create Recipe",
			"form":        f,
			"ingredients": ingredients,
		})
		return
	}
	recipe, err := h.recipes.Create(c.Request.Context(), f.Record(), f.IngredientUUIDs())
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, recipe.URL())
}

func (h *RecipeHandler) UpdateForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		renderLookupError(c, err, "Recipe not found.")
		return
	}
	ingredients, ok := h.formData(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "recipe_form.html", gin.H{
		"title":       "Update Recipe",
		"form":        form.RecipeFormOf(recipe),
		"ingredients": ingredients,
	})
}

func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	values, err := postForm(c)
	if err != nil {
		renderServerError(c, err)
		return
	}
	f := form.ParseRecipe(values)
	if !f.Validate() {
		ingredients, ok := h.formData(c)
		if !ok {
			return
		}
		c.HTML(http.StatusOK, "recipe_form.html", gin.H{
			"title":       "Update Recipe",
			"form":        f,
			"ingredients": ingredients,
		})
		return
	}
	recipe, err := h.recipes.Update(c.Request.Context(), id, f.Record(), f.IngredientUUIDs())
	if err != nil {
		renderLookupError(c, err, "Recipe not found.")
		return
	}
	c.Redirect(http.StatusSeeOther, recipe.URL())
}

func (h *RecipeHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		renderLookupError(c, err, "Recipe not found.")
		return
	}
	c.HTML(http.StatusOK, "recipe_delete.html", gin.H{
		"title":  "Delete Recipe",
		"recipe": recipe,
	})
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		renderLookupError(c, err, "Recipe not found.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/inventory/recipes")
}
