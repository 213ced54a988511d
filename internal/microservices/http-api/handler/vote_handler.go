package handler

import (
	"net/http"
	"time"

	"awardshub/internal/microservices/http-api/dto"
	"awardshub/internal/microservices/http-api/middleware"
	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	base
	svc service.VoteService
}

func NewVoteHandler(svc service.VoteService, timeout time.Duration) *VoteHandler {
	return &VoteHandler{base: base{timeout: timeout}, svc: svc}
}

// RegisterRoutes expects rg to already require authentication.
func (h *VoteHandler) RegisterRoutes(rg *gin.RouterGroup, limit gin.HandlerFunc) {
	rg.POST("", limit, h.Cast)
	rg.GET("/me", h.Mine)
	rg.DELETE("/:category_id", h.Retract)
}

// Cast answers 201 for a first vote and 200 when an earlier vote was replaced.
func (h *VoteHandler) Cast(c *gin.Context) {
	var req dto.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	vote, changed, err := h.svc.Cast(ctx, middleware.CurrentUserID(c), req.NomineeID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.VoteFromModel(*vote)
	resp.Changed = changed
	status := http.StatusCreated
	if changed {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

func (h *VoteHandler) Mine(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	votes, err := h.svc.MyVotes(ctx, middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.VoteResponse, 0, len(votes))
	for _, v := range votes {
		out = append(out, dto.VoteFromModel(v))
	}
	c.JSON(http.StatusOK, out)
}

func (h *VoteHandler) Retract(c *gin.Context) {
	categoryID, ok := paramID(c, "category_id")
	if !ok {
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	if err := h.svc.Retract(ctx, middleware.CurrentUserID(c), categoryID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
