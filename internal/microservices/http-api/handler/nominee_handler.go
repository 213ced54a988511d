package handler

import (
	"net/http"
	"time"

	"awardshub/internal/microservices/http-api/dto"
	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type NomineeHandler struct {
	base
	svc      service.NomineeService
	uploader ImageUploader
}

func NewNomineeHandler(svc service.NomineeService, uploader ImageUploader, timeout time.Duration) *NomineeHandler {
	return &NomineeHandler{base: base{timeout: timeout}, svc: svc, uploader: uploader}
}

func (h *NomineeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
}

func (h *NomineeHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/image", h.UploadImage)
}

// List accepts an optional ?category_id= filter.
func (h *NomineeHandler) List(c *gin.Context) {
	categoryID, ok := queryID(c, "category_id")
	if !ok {
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	nominees, err := h.svc.List(ctx, categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nominees)
}

func (h *NomineeHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	nominee, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nominee)
}

func (h *NomineeHandler) Create(c *gin.Context) {
	var req dto.CreateNomineeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	nominee := req.ToModel()
	if err := h.svc.Create(ctx, &nominee); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, nominee)
}

func (h *NomineeHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateNomineeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	nominee, err := h.svc.Update(ctx, id, req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nominee)
}

func (h *NomineeHandler) Delete(c *gin.Context) {
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

// UploadImage accepts multipart field "file" and stores the resulting URL on the nominee.
func (h *NomineeHandler) UploadImage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	url, ok := receiveImage(ctx, c, h.uploader, "nominees")
	if !ok {
		return
	}
	nominee, err := h.svc.SetImage(ctx, id, url)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nominee)
}
