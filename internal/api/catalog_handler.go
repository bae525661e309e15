package api

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/commercekit/storefront/errors"
	"github.com/commercekit/storefront/internal/catalog"
	"github.com/commercekit/storefront/server"
	"github.com/commercekit/storefront/validation"
)

type catalogHandler struct {
	svc *catalog.Service
}

// list handles GET /products with an optional ?category= filter.
func (h *catalogHandler) list(c *gin.Context) {
	var categoryID *int64
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			server.RespondWithError(c, apperrors.Validation("Invalid category."))
			return
		}
		categoryID = &id
	}

	products, err := h.svc.List(c.Request.Context(), categoryID)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, products)
}

// get handles GET /products/:id.
func (h *catalogHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid product ID."))
		return
	}

	product, svcErr := h.svc.GetByID(c.Request.Context(), id)
	if svcErr != nil {
		server.RespondWithError(c, svcErr)
		return
	}
	server.RespondOK(c, product)
}

// create handles POST /products (gated).
func (h *catalogHandler) create(c *gin.Context) {
	var in catalog.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid request body."))
		return
	}
	if err := validation.Validate(in); err != nil {
		server.RespondWithError(c, err)
		return
	}

	product, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondCreated(c, gin.H{
		"message": "Product added successfully!",
		"product": product,
	})
}

// update handles PUT /products/:id (gated).
func (h *catalogHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid product ID."))
		return
	}

	var in catalog.ProductInput
	if bindErr := c.ShouldBindJSON(&in); bindErr != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid request body."))
		return
	}
	if valErr := validation.Validate(in); valErr != nil {
		server.RespondWithError(c, valErr)
		return
	}

	product, svcErr := h.svc.Update(c.Request.Context(), id, in)
	if svcErr != nil {
		server.RespondWithError(c, svcErr)
		return
	}

	server.RespondOK(c, gin.H{
		"message": "Product updated successfully!",
		"product": product,
	})
}

// remove handles DELETE /products/:id (gated).
func (h *catalogHandler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid product ID."))
		return
	}

	if svcErr := h.svc.Delete(c.Request.Context(), id); svcErr != nil {
		server.RespondWithError(c, svcErr)
		return
	}

	server.RespondOK(c, gin.H{
		"message": fmt.Sprintf("Product with ID %d deleted successfully!", id),
	})
}
