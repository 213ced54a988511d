package handler

import (
	"net/http"
	"testing"
	"time"

	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func newContentRouter(svc *MockContentService) *gin.Engine {
	h := NewContentHandler(svc, time.Second)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/content"))
	h.RegisterAdminRoutes(router.Group("/admin/content", withUser("admin-1", models.RoleAdmin)))
	return router
}

func TestContentHandler_Get(t *testing.T) {
	svc := new(MockContentService)
	router := newContentRouter(svc)

	svc.On("Get", "hero").Return(&models.ContentBlock{
		Section:      "hero",
		Content:      datatypes.JSON(`{"title":"Welcome"}`),
		IsPredefined: true,
	}, nil)
	svc.On("Get", "nope").Return(nil, service.ErrNotFound)

	w := doJSON(t, router, http.MethodGet, "/content/hero", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Welcome"`)

	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/content/nope", nil).Code)
}

func TestContentHandler_Upsert(t *testing.T) {
	svc := new(MockContentService)
	router := newContentRouter(svc)

	svc.On("Upsert", "banner", `{"text":"Vote now"}`, "admin-1").
		Return(&models.ContentBlock{Section: "banner", Content: datatypes.JSON(`{"text":"Vote now"}`)}, nil)
	svc.On("Upsert", "banner", `[1,2]`, "admin-1").
		Return(nil, service.ErrInvalidInput)

	body := map[string]any{"content": map[string]string{"text": "Vote now"}}
	assert.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPut, "/admin/content/banner", body).Code)

	body = map[string]any{"content": []int{1, 2}}
	assert.Equal(t, http.StatusBadRequest, doJSON(t, router, http.MethodPut, "/admin/content/banner", body).Code)

	assert.Equal(t, http.StatusBadRequest, doJSON(t, router, http.MethodPut, "/admin/content/banner", map[string]any{}).Code)
	svc.AssertNumberOfCalls(t, "Upsert", 2)
}

func TestContentHandler_Delete(t *testing.T) {
	svc := new(MockContentService)
	router := newContentRouter(svc)

	svc.On("Delete", "hero", "admin-1").Return(service.ErrPredefinedSection)
	svc.On("Delete", "promo", "admin-1").Return(nil)

	assert.Equal(t, http.StatusConflict, doJSON(t, router, http.MethodDelete, "/admin/content/hero", nil).Code)
	assert.Equal(t, http.StatusNoContent, doJSON(t, router, http.MethodDelete, "/admin/content/promo", nil).Code)
}

func TestContentHandler_EnsureDefaults(t *testing.T) {
	svc := new(MockContentService)
	router := newContentRouter(svc)

	svc.On("EnsureDefaults").Return(2, nil)

	w := doJSON(t, router, http.MethodPost, "/admin/content/ensure-defaults", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Created  int      `json:"created"`
		Sections []string `json:"sections"`
	}
	decode(t, w, &resp)
	assert.Equal(t, 2, resp.Created)
	assert.ElementsMatch(t, service.DefaultSectionNames(), resp.Sections)
}
