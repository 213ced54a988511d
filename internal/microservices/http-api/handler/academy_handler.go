package handler

import (
	"net/http"
	"time"

	"awardshub/internal/microservices/http-api/dto"
	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type AcademyHandler struct {
	base
	svc      service.AcademyService
	uploader ImageUploader
}

func NewAcademyHandler(svc service.AcademyService, uploader ImageUploader, timeout time.Duration) *AcademyHandler {
	return &AcademyHandler{base: base{timeout: timeout}, svc: svc, uploader: uploader}
}

func (h *AcademyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/genres", h.ListGenres)
	rg.GET("/genres/:slug", h.GetGenre)
	rg.GET("/members", h.ListMembers)
}

func (h *AcademyHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	genres := rg.Group("/genres")
	{
		genres.GET("", h.ListGenres)
		genres.POST("", h.CreateGenre)
		genres.PUT("/:id", h.UpdateGenre)
		genres.DELETE("/:id", h.DeleteGenre)
	}

	members := rg.Group("/members")
	{
		members.GET("", h.ListMembers)
		members.POST("", h.CreateMember)
		members.GET("/:id", h.GetMember)
		members.PUT("/:id", h.UpdateMember)
		members.DELETE("/:id", h.DeleteMember)
		members.POST("/:id/photo", h.UploadPhoto)
	}
}

// ListGenres embeds members when ?members=true.
func (h *AcademyHandler) ListGenres(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	genres, err := h.svc.ListGenres(ctx, queryBool(c, "members"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}

func (h *AcademyHandler) GetGenre(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	genre, err := h.svc.GetGenre(ctx, c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}

func (h *AcademyHandler) CreateGenre(c *gin.Context) {
	var req dto.CreateGenreDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	genre := req.ToModel()
	if err := h.svc.CreateGenre(ctx, &genre); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, genre)
}

func (h *AcademyHandler) UpdateGenre(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateGenreDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	genre, err := h.svc.UpdateGenre(ctx, id, req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}

func (h *AcademyHandler) DeleteGenre(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.DeleteGenre(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMembers accepts an optional ?genre_id= filter.
func (h *AcademyHandler) ListMembers(c *gin.Context) {
	genreID, ok := queryID(c, "genre_id")
	if !ok {
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	members, err := h.svc.ListMembers(ctx, genreID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *AcademyHandler) GetMember(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	member, err := h.svc.GetMember(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *AcademyHandler) CreateMember(c *gin.Context) {
	var req dto.CreateMemberDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	member := req.ToModel()
	if err := h.svc.CreateMember(ctx, &member); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

func (h *AcademyHandler) UpdateMember(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateMemberDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	member, err := h.svc.UpdateMember(ctx, id, req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *AcademyHandler) DeleteMember(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.DeleteMember(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AcademyHandler) UploadPhoto(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	url, ok := receiveImage(ctx, c, h.uploader, "academy")
	if !ok {
		return
	}
	member, err := h.svc.SetMemberPhoto(ctx, id, url)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}
