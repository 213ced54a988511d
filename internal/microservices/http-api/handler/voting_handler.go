package handler

import (
	"net/http"
	"time"

	"awardshub/internal/microservices/http-api/dto"
	"awardshub/internal/microservices/http-api/middleware"
	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// VotingHandler serves the voting window configuration and the result tallies.
type VotingHandler struct {
	base
	config  service.VotingConfigService
	results service.ResultsService
}

func NewVotingHandler(config service.VotingConfigService, results service.ResultsService, timeout time.Duration) *VotingHandler {
	return &VotingHandler{base: base{timeout: timeout}, config: config, results: results}
}

// RegisterRoutes mounts the public routes. identify should attach claims when a
// token is present so admins see hidden results here too.
func (h *VotingHandler) RegisterRoutes(rg *gin.RouterGroup, identify gin.HandlerFunc) {
	rg.GET("/voting/config", h.PublicConfig)
	rg.GET("/results", identify, h.PublicResults)
}

func (h *VotingHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/voting/config", h.GetConfig)
	rg.PUT("/voting/config", h.UpdateConfig)
	rg.GET("/results", h.AdminResults)
}

func (h *VotingHandler) PublicConfig(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	cfg, err := h.config.Public(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *VotingHandler) GetConfig(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	cfg, err := h.config.Get(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *VotingHandler) UpdateConfig(c *gin.Context) {
	var req dto.UpdateVotingConfigDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	cfg, err := h.config.Update(ctx, req.ToPatch(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (h *VotingHandler) PublicResults(c *gin.Context) {
	h.tally(c, c.GetString(middleware.RoleKey) == models.RoleAdmin)
}

func (h *VotingHandler) AdminResults(c *gin.Context) { h.tally(c, true) }

func (h *VotingHandler) tally(c *gin.Context, asAdmin bool) {
	categoryID, ok := queryID(c, "category_id")
	if !ok {
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	rows, err := h.results.Tally(ctx, categoryID, asAdmin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
