package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tdiagne/resto-inventory/internal/form"
	"github.com/tdiagne/resto-inventory/internal/service"
)

type SupplierHandler struct {
	suppliers *service.SupplierService
}

func NewSupplierHandler(suppliers *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// RegisterRoutes wires the supplier pages. The literal create route is
// registered before the parameterized detail route, matching the original
// route table's ordering contract.
func (h *SupplierHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/suppliers", h.List)
	r.GET("/supplier/create", h.CreateForm)
	r.POST("/supplier/create", h.Create)
	r.GET("/supplier/:id", h.Detail)
	r.GET("/supplier/:id/update", h.UpdateForm)
	r.POST("/supplier/:id/update", h.Update)
	r.GET("/supplier/:id/delete", h.DeleteForm)
	r.POST("/supplier/:id/delete", h.Delete)
}

func (h *SupplierHandler) List(c *gin.Context) {
	suppliers, err := h.suppliers.List(c.Request.Context())
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.HTML(http.StatusOK, "supplier_list.html", gin.H{
		"title":         "Supplier List",
		"supplier_list": suppliers,
	})
}

func (h *SupplierHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	supplier, err := h.suppliers.Get(c.Request.Context(), id)
	if err != nil {
		renderLookupError(c, err, "Supplier not found.")
		return
	}
	c.HTML(http.StatusOK, "supplier_detail.html", gin.H{
		"title":    "Supplier Detail",
		"supplier": supplier,
	})
}

func (h *SupplierHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "supplier_form.html", gin.H{
		"title": "Create Supplier",
		"form":  &form.SupplierForm{},
	})
}

func (h *SupplierHandler) Create(c *gin.Context) {
	values, err := postForm(c)
	if err != nil {
		renderServerError(c, err)
		return
	}
	f := form.ParseSupplier(values)
	if !f.Validate() {
		c.HTML(http.StatusOK, "supplier_form.html", gin.H{
			"title": "Create Supplier",
			"form":  f,
		})
		return
	}
	supplier, err := h.suppliers.Create(c.Request.Context(), f.Record())
	if errors.Is(err, service.ErrDuplicateName) {
		f.AddError("name", "A supplier with that name already exists.")
		c.HTML(http.StatusOK, "supplier_form.html", gin.H{
			"title": "Create Supplier",
			"form":  f,
		})
		return
	}
	if err != nil {
		renderServerError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, supplier.URL())
}

func (h *SupplierHandler) UpdateForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	supplier, err := h.suppliers.Get(c.Request.Context(), id)
	if err != nil {
		renderLookupError(c, err, "Supplier not found.")
		return
	}
	c.HTML(http.StatusOK, "supplier_form.html", gin.H{
		"title": "Update Supplier",
		"form":  form.SupplierFormOf(supplier),
	})
}

func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	values, err := postForm(c)
	if err != nil {
		renderServerError(c, err)
		return
	}
	f := form.ParseSupplier(values)
	if !f.Validate() {
		c.HTML(http.StatusOK, "supplier_form.html", gin.H{
			"title": "Update Supplier",
			"form":  f,
		})
		return
	}
	supplier, err := h.suppliers.Update(c.Request.Context(), id, f.Record())
	if errors.Is(err, service.ErrDuplicateName) {
		f.AddError("name", "A supplier with that name already exists.")
		c.HTML(http.StatusOK, "supplier_form.html", gin.H{
			"title": "Update Supplier",
			"form":  f,
		})
		return
	}
	if err != nil {
		renderLookupError(c, err, "Supplier not found.")
		return
	}
	c.Redirect(http.StatusSeeOther, supplier.URL())
}

func (h *SupplierHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	supplier, err := h.suppliers.Get(c.Request.Context(), id)
	if err != nil {
		renderLookupError(c, err, "Supplier not found.")
		return
	}
	c.HTML(http.StatusOK, "supplier_delete.html", gin.H{
		"title":    "Delete Supplier",
		"supplier": supplier,
	})
}

func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.suppliers.Delete(c.Request.Context(), id); err != nil {
		renderLookupError(c, err, "Supplier not found.")
		return
	}
	c.Redirect(http.StatusSeeOther, "/inventory/suppliers")
}
