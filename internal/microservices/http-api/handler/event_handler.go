package handler

import (
	"net/http"
	"time"

	"awardshub/internal/microservices/http-api/dto"
	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	base
	svc      service.EventService
	uploader ImageUploader
}

func NewEventHandler(svc service.EventService, uploader ImageUploader, timeout time.Duration) *EventHandler {
	return &EventHandler{base: base{timeout: timeout}, svc: svc, uploader: uploader}
}

func (h *EventHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListPublished)
	rg.GET("/:slug", h.GetPublished)
}

func (h *EventHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.ListAll)
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/image", h.UploadImage)
}

// ListPublished accepts ?upcoming=true.
func (h *EventHandler) ListPublished(c *gin.Context) { h.list(c, true) }

func (h *EventHandler) ListAll(c *gin.Context) { h.list(c, false) }

func (h *EventHandler) list(c *gin.Context, publishedOnly bool) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	events, err := h.svc.List(ctx, publishedOnly, queryBool(c, "upcoming"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetPublished(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	event, err := h.svc.GetPublished(ctx, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	event, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	event := req.ToModel()
	if err := h.svc.Create(ctx, &event); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEventDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	event, err := h.svc.Update(ctx, id, req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventHandler) UploadImage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	url, ok := receiveImage(ctx, c, h.uploader, "events")
	if !ok {
		return
	}
	event, err := h.svc.SetImage(ctx, id, url)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}
