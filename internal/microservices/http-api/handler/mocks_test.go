package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// withUser simulates AuthMiddleware for handlers mounted without it.
func withUser(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	args := m.Called(username, password, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, identifier, password string) (*service.TokenPair, *models.User, error) {
	args := m.Called(identifier, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*service.TokenPair), args.Get(1).(*models.User), args.Error(2)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	args := m.Called(refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenPair), args.Error(1)
}

func (m *MockAuthService) Revoke(ctx context.Context, refreshToken string) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context, activeOnly bool) ([]models.CategoryWithCount, error) {
	args := m.Called(activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategoryWithCount), args.Error(1)
}

func (m *MockCategoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, c *models.Category, actorID string) error {
	args := m.Called(c, actorID)
	return args.Error(0)
}

func (m *MockCategoryService) Update(ctx context.Context, id int64, patch service.CategoryPatch, actorID string) (*models.Category, error) {
	args := m.Called(id, patch, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, id int64, actorID string) error {
	args := m.Called(id, actorID)
	return args.Error(0)
}

type MockNomineeService struct {
	mock.Mock
}

func (m *MockNomineeService) List(ctx context.Context, categoryID int64) ([]models.Nominee, error) {
	args := m.Called(categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Nominee), args.Error(1)
}

func (m *MockNomineeService) GetByID(ctx context.Context, id int64) (*models.Nominee, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Nominee), args.Error(1)
}

func (m *MockNomineeService) Create(ctx context.Context, n *models.Nominee) error {
	return m.Called(n).Error(0)
}

func (m *MockNomineeService) Update(ctx context.Context, id int64, patch service.NomineePatch) (*models.Nominee, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Nominee), args.Error(1)
}

func (m *MockNomineeService) SetImage(ctx context.Context, id int64, url string) (*models.Nominee, error) {
	args := m.Called(id, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Nominee), args.Error(1)
}

func (m *MockNomineeService) Delete(ctx context.Context, id int64) error {
	return m.Called(id).Error(0)
}

type MockVoteService struct {
	mock.Mock
}

func (m *MockVoteService) Cast(ctx context.Context, userID string, nomineeID int64) (*models.Vote, bool, error) {
	args := m.Called(userID, nomineeID)
	if args.Get(0) == nil {
		return nil, false, args.Error(2)
	}
	return args.Get(0).(*models.Vote), args.Bool(1), args.Error(2)
}

func (m *MockVoteService) MyVotes(ctx context.Context, userID string) ([]models.Vote, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vote), args.Error(1)
}

func (m *MockVoteService) Retract(ctx context.Context, userID string, categoryID int64) error {
	return m.Called(userID, categoryID).Error(0)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) List(ctx context.Context) ([]models.ContentBlock, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContentBlock), args.Error(1)
}

func (m *MockContentService) Get(ctx context.Context, section string) (*models.ContentBlock, error) {
	args := m.Called(section)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContentBlock), args.Error(1)
}

func (m *MockContentService) Upsert(ctx context.Context, section string, content json.RawMessage, actorID string) (*models.ContentBlock, error) {
	args := m.Called(section, string(content), actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContentBlock), args.Error(1)
}

func (m *MockContentService) Delete(ctx context.Context, section, actorID string) error {
	return m.Called(section, actorID).Error(0)
}

func (m *MockContentService) EnsureDefaults(ctx context.Context) (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type MockVotingConfigService struct {
	mock.Mock
}

func (m *MockVotingConfigService) Get(ctx context.Context) (*models.VotingConfig, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VotingConfig), args.Error(1)
}

func (m *MockVotingConfigService) Public(ctx context.Context) (*service.PublicVotingConfig, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PublicVotingConfig), args.Error(1)
}

func (m *MockVotingConfigService) Update(ctx context.Context, patch service.VotingConfigPatch, actorID string) (*models.VotingConfig, error) {
	args := m.Called(patch, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VotingConfig), args.Error(1)
}

type MockResultsService struct {
	mock.Mock
}

func (m *MockResultsService) Tally(ctx context.Context, categoryID int64, asAdmin bool) ([]models.NomineeTally, error) {
	args := m.Called(categoryID, asAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NomineeTally), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) Dashboard(ctx context.Context) models.DashboardStats {
	return m.Called().Get(0).(models.DashboardStats)
}

type MockUserAdminService struct {
	mock.Mock
}

func (m *MockUserAdminService) List(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserAdminService) SetRole(ctx context.Context, actorID, userID, role string) (*models.User, error) {
	args := m.Called(actorID, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserAdminService) PromoteByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockRoleLookup struct {
	mock.Mock
}

func (m *MockRoleLookup) GetRole(ctx context.Context, userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

type fakeUploader struct {
	url    string
	err    error
	prefix string
	name   string
}

func (f *fakeUploader) Upload(_ context.Context, fh *multipart.FileHeader, prefix string) (string, error) {
	f.prefix = prefix
	f.name = fh.Filename
	return f.url, f.err
}

// multipartRequest builds a request carrying one "file" field.
func multipartRequest(t *testing.T, path, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}
