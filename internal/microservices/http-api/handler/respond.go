package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"awardshub/internal/media"
	"awardshub/internal/microservices/http-api/middleware"
	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to HTTP status codes. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, media.ErrEmptyFile),
		errors.Is(err, media.ErrNotImage),
		errors.Is(err, media.ErrTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrExpiredToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrResultsHidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrGenreNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSlugTaken),
		errors.Is(err, service.ErrCategoryHasNominees),
		errors.Is(err, service.ErrNomineeHasVotes),
		errors.Is(err, service.ErrGenreHasMembers),
		errors.Is(err, service.ErrCategoryInactive),
		errors.Is(err, service.ErrVotingClosed),
		errors.Is(err, service.ErrAlreadyVoted),
		errors.Is(err, service.ErrVoteLocked),
		errors.Is(err, service.ErrPredefinedSection),
		errors.Is(err, service.ErrSelfDemotion),
		errors.Is(err, service.ErrNameInUse),
		errors.Is(err, service.ErrEmailInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": ...}. Internal failures are logged and hidden from the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Default().Error("request_failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"user_id", middleware.CurrentUserID(c),
			"error", err,
		)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// base carries the per-request database deadline shared by every handler.
type base struct {
	timeout time.Duration
}

func (b base) ctx(c *gin.Context) (context.Context, context.CancelFunc) {
	d := b.timeout
	if d <= 0 {
		d = 5 * time.Second
	}
	return context.WithTimeout(c.Request.Context(), d)
}

// paramID parses a positive integer path parameter, writing 400 when it is not one.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// queryID parses an optional positive integer query parameter; absent means 0.
func queryID(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

func queryBool(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.Query(name))
	return v
}
