package handler

import (
	"net/http"
	"time"

	"awardshub/internal/microservices/http-api/dto"
	"awardshub/internal/microservices/http-api/middleware"
	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	base
	svc service.CategoryService
}

func NewCategoryHandler(svc service.CategoryService, timeout time.Duration) *CategoryHandler {
	return &CategoryHandler{base: base{timeout: timeout}, svc: svc}
}

// RegisterRoutes mounts the public read routes under /categories.
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListActive)
	rg.GET("/:slug", h.GetBySlug)
}

// RegisterAdminRoutes mounts the management routes under /admin/categories.
func (h *CategoryHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListAll)
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *CategoryHandler) ListActive(c *gin.Context) { h.list(c, true) }

func (h *CategoryHandler) ListAll(c *gin.Context) { h.list(c, false) }

func (h *CategoryHandler) list(c *gin.Context, activeOnly bool) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	categories, err := h.svc.List(ctx, activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetBySlug returns an active category with its nominees.
func (h *CategoryHandler) GetBySlug(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	category, err := h.svc.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	if !category.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrCategoryNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	category, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	category := req.ToModel()
	if err := h.svc.Create(ctx, &category, middleware.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCategoryDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	category, err := h.svc.Update(ctx, id, req.ToPatch(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.Delete(ctx, id, middleware.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
