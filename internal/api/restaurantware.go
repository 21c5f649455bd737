package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tdiagne/resto-inventory/internal/form"
	"github.com/tdiagne/resto-inventory/internal/models"
	"github.com/tdiagne/resto-inventory/internal/service"
)

type WareHandler struct {
	wares     *service.WareService
	suppliers *service.SupplierService
}

func NewWareHandler(wares *service.WareService, suppliers *service.SupplierService) *WareHandler {
	return &WareHandler{wares: wares, suppliers: suppliers}
}

func (h *WareHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/restaurantwares", h.List)
	r.GET("/restaurantware/create", h.CreateForm)
	r.POST("/restaurantware/create", h.Create)
	r.GET("/restaurantware/:id", h.Detail)
	r.GET("/restaurantware/:id/update", h.UpdateForm)
	r.POST("/restaurantware/:id/update", h.Update)
	r.GET("/restaurantware/:id/delete", h.DeleteForm)
	r.POST("/restaurantware/:id/delete", h.Delete)
}

func (h *WareHandler) List(c *gin.Context) {
	wares, err := h.wares.List(c.Request.Context())
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.HTML(http.StatusOK, "restaurantware_list.html", gin.H{
		"title":               "Restaurant Ware List",
		"restaurantware_list": wares,
	})
}

func (h *WareHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ware, err := h.wares.Get(c.Request.Context(), id)
	if err != nil {
		renderLookupError(c, err, "Restaurant ware not found.")
		return
	}
	c.HTML(http.StatusOK, "restaurantware_detail.html", gin.H{
		"title":          "Restaurant Ware Detail",
		"restaurantware": ware,
	})
}

func (h *WareHandler) formData(c *gin.Context) ([]models.Supplier, []string, bool) {
	suppliers, err := h.suppliers.List(c.Request.Context())
	if err != nil {
		renderServerError(c, err)
		return nil, nil, false
	}
	types, err := h.wares.DistinctTypes(c.Request.Context())
	if err != nil {
		renderServerError(c, err)
		return nil, nil, false
	}
	return suppliers, types, true
}

func (h *WareHandler) CreateForm(c *gin.Context) {
	suppliers, types, ok := h.formData(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "restaurantware_form.html", gin.H{
		"title":     "Create Restaurant Ware",
		"form":      &form.WareForm{},
		"suppliers": suppliers,
		"types":     types,
	})
}

func (h *WareHandler) Create(c *gin.Context) {
	values, err := postForm(c)
	if err != nil {
		renderServerError(c, err)
		return
	}
	f := form.ParseWare(values)
	if !f.Validate() {
		suppliers, types, ok := h.formData(c)
		if !ok {
			return
		}
		c.HTML(http.StatusOK, "restaurantware_form.html", gin.H{
			"title":     "Create Restaurant Ware",
			"form":      f,
			"suppliers": suppliers,
			"types":     types,
		})
		return
	}
	ware, err := h.wares.Create(c.Request.Context(), f.Record())
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, ware.URL())
}

func (h *WareHandler) UpdateForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ware, err := h.wares.Get(c.Request.Context(), id)
	if err != nil {
		renderLookupError(c, err, "Restaurant ware not found.")
		return
	}
	suppliers, types, ok := h.formData(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "restaurantware_form.html", gin.H{
		"title":     "Update Restaurant Ware",
		"form":      form.WareFormOf(ware),
		"suppliers": suppliers,
		"types":     types,
	})
}

func (h *WareHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	values, err := postForm(c)
	if err != nil {
		renderServerError(c, err)
		return
	}
	f := form.ParseWare(values)
	if !f.Validate() {
		suppliers, types, ok := h.formData(c)
		if !ok {
			return
		}
		c.HTML(http.StatusOK, "restaurantware_form.html", gin.H{
			"title":     "Update Restaurant Ware",
			"form":      f,
			"suppliers": suppliers,
			"types":     types,
		})
		return
	}
	ware, err := h.wares.Update(c.Request.Context(), id, f.Record())
	if err != nil {
		renderLookupError(c, err, "Restaurant ware not found.")
		return
	}
	c.Redirect(http.StatusSeeOther, ware.URL())
}

func (h *WareHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ware, err := h.wares.Get(c.Request.Context(), id)
	if err != nil {
		renderLookupError(c, err, "Restaurant ware not found.")
		return
	}
	c.HTML(http.StatusOK, "restaurantware_delete.html", gin.H{
		"title":          "Delete Restaurant Ware",
		"restaurantware": ware,
	})
}

func (h *WareHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.wares.Delete(c.Request.Context(), id); err != nil {
		renderLookupError(c, err, "Restaurant ware not found.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/inventory/restaurantwares")
}
