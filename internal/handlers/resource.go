package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arquinori/portfolio-backend/internal/platform/apierr"
	"github.com/arquinori/portfolio-backend/internal/services"
)

// CRUD is what the router needs from any resource handler, whatever its
// concrete model type.
type CRUD interface {
	GetAll(c *gin.Context)
	GetByID(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// ResourceHandler binds the HTTP verbs of one resource kind to the shared
// CRUD engine.
type ResourceHandler[T any, PT services.Record[T]] struct {
	svc *services.ResourceService[T, PT]
}

func NewResourceHandler[T any, PT services.Record[T]](svc *services.ResourceService[T, PT]) *ResourceHandler[T, PT] {
	return &ResourceHandler[T, PT]{svc: svc}
}

func (h *ResourceHandler[T, PT]) GetAll(c *gin.Context) {
	items, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"count": len(items),
		"data":  items,
	})
}

func (h *ResourceHandler[T, PT]) GetByID(c *gin.Context) {
	item, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": item})
}

func (h *ResourceHandler[T, PT]) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	item, err := h.svc.Create(c.Request.Context(), body)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"ok":      true,
		"message": fmt.Sprintf("%s created successfully.", h.svc.Name()),
		"data":    item,
	})
}

func (h *ResourceHandler[T, PT]) Update(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		RespondError(c, apierr.Validation("invalid request body"))
		return
	}
	item, err := h.svc.Update(c.Request.Context(), c.Param("id"), body)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": fmt.Sprintf("%s updated successfully.", h.svc.Name()),
		"data":    item,
	})
}

func (h *ResourceHandler[T, PT]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": fmt.Sprintf("%s deleted successfully.", h.svc.Name()),
	})
}
