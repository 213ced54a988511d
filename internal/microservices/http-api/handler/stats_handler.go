package handler

import (
	"net/http"
	"time"

	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	base
	svc service.StatsService
}

func NewStatsHandler(svc service.StatsService, timeout time.Duration) *StatsHandler {
	return &StatsHandler{base: base{timeout: timeout}, svc: svc}
}

// Dashboard never fails; counts that could not be read are reported as zero.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	ctx, cancel := h.ctx(c)
	defer cancel()

	c.JSON(http.StatusOK, h.svc.Dashboard(ctx))
}
