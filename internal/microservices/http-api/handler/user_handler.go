package handler

import (
	"net/http"
	"strconv"
	"time"

	"awardshub/internal/microservices/http-api/dto"
	"awardshub/internal/microservices/http-api/middleware"
	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	base
	svc service.UserAdminService
}

func NewUserHandler(svc service.UserAdminService, timeout time.Duration) *UserHandler {
	return &UserHandler{base: base{timeout: timeout}, svc: svc}
}

func (h *UserHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.PUT("/:id/role", h.SetRole)
}

// List pages through users with ?page= and ?page_size=.
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	ctx, cancel := h.ctx(c)
	defer cancel()

	users, total, err := h.svc.List(ctx, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserFromModel(u))
	}
	c.JSON(http.StatusOK, gin.H{
		"users":     out,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *UserHandler) SetRole(c *gin.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		badRequest(c, "invalid id")
		return
	}
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := h.ctx(c)
	defer cancel()

	user, err := h.svc.SetRole(ctx, middleware.CurrentUserID(c), userID, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserFromModel(*user))
}
