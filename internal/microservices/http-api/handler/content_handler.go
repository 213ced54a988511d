package handler

import (
	"net/http"
	"time"

	"awardshub/internal/microservices/http-api/dto"
	"awardshub/internal/microservices/http-api/middleware"
	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	base
	svc service.ContentService
}

func NewContentHandler(svc service.ContentService, timeout time.Duration) *ContentHandler {
	return &ContentHandler{base: base{timeout: timeout}, svc: svc}
}

func (h *ContentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/:section", h.Get)
}

func (h *ContentHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("/ensure-defaults", h.EnsureDefaults)
	rg.PUT("/:section", h.Upsert)
	rg.DELETE("/:section", h.Delete)
}

func (h *ContentHandler) Get(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	block, err := h.svc.Get(ctx, c.Param("section"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

func (h *ContentHandler) List(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	blocks, err := h.svc.List(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocks)
}

func (h *ContentHandler) Upsert(c *gin.Context) {
	var req dto.UpsertContentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	block, err := h.svc.Upsert(ctx, c.Param("section"), req.Content, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

func (h *ContentHandler) Delete(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.Delete(ctx, c.Param("section"), middleware.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// EnsureDefaults inserts any missing predefined section and reports how many were created.
func (h *ContentHandler) EnsureDefaults(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	created, err := h.svc.EnsureDefaults(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created, "sections": service.DefaultSectionNames()})
}
