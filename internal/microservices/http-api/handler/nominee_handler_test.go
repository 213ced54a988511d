package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"awardshub/internal/media"
	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newNomineeRouter(svc *MockNomineeService, up ImageUploader) *gin.Engine {
	h := NewNomineeHandler(svc, up, time.Second)
	router := setupRouter()
	h.RegisterRoutes(router.Group("/nominees"))
	h.RegisterAdminRoutes(router.Group("/admin/nominees", withUser("admin-1", models.RoleAdmin)))
	return router
}

func TestNomineeHandler_ListFiltersByCategory(t *testing.T) {
	svc := new(MockNomineeService)
	router := newNomineeRouter(svc, &fakeUploader{})

	svc.On("List", int64(0)).Return([]models.Nominee{{ID: 1}, {ID: 2}}, nil)
	svc.On("List", int64(5)).Return([]models.Nominee{{ID: 2, CategoryID: 5}}, nil)

	var all, filtered []models.Nominee
	decode(t, doJSON(t, router, http.MethodGet, "/nominees", nil), &all)
	decode(t, doJSON(t, router, http.MethodGet, "/nominees?category_id=5", nil), &filtered)

	assert.Len(t, all, 2)
	assert.Len(t, filtered, 1)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, router, http.MethodGet, "/nominees?category_id=x", nil).Code)
}

func TestNomineeHandler_Create_UnknownCategory(t *testing.T) {
	svc := new(MockNomineeService)
	router := newNomineeRouter(svc, &fakeUploader{})

	svc.On("Create", &models.Nominee{CategoryID: 99, Name: "Roma"}).Return(service.ErrCategoryNotFound)

	w := doJSON(t, router, http.MethodPost, "/admin/nominees", map[string]any{"category_id": 99, "name": "Roma"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNomineeHandler_UploadImage(t *testing.T) {
	svc := new(MockNomineeService)
	up := &fakeUploader{url: "data:image/png;base64,AAAA"}
	router := newNomineeRouter(svc, up)

	svc.On("SetImage", int64(3), "data:image/png;base64,AAAA").
		Return(&models.Nominee{ID: 3, ImageURL: &up.url}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "/admin/nominees/3/image", "poster.png", []byte("\x89PNG")))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nominees", up.prefix)
	assert.Equal(t, "poster.png", up.name)
	var got models.Nominee
	decode(t, w, &got)
	assert.Equal(t, "data:image/png;base64,AAAA", *got.ImageURL)
}

func TestNomineeHandler_UploadImage_Rejected(t *testing.T) {
	svc := new(MockNomineeService)
	router := newNomineeRouter(svc, &fakeUploader{err: media.ErrNotImage})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "/admin/nominees/3/image", "notes.txt", []byte("hello")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/admin/nominees/3/image", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertNotCalled(t, "SetImage")
}
