package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"awardshub/internal/cache"
	"awardshub/internal/events"
	"awardshub/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newContentService(repo *MockContentRepository, c cache.Cache, pub *recordingPublisher) ContentService {
	return NewContentService(repo, c, 50*time.Millisecond, pub, discardLogger())
}

func TestContentGet_CachesDatabaseRead(t *testing.T) {
	repo := new(MockContentRepository)
	mc := newMemoryCache()
	svc := newContentService(repo, mc, nil)

	block := &models.ContentBlock{ID: 1, Section: "about", Content: datatypes.JSON(`{"title":"Hi"}`)}
	repo.On("GetBySection", mock.Anything, "about").Return(block, nil).Once()

	got, err := svc.Get(context.Background(), "about")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Hi"}`, string(got.Content))
	assert.True(t, mc.has(cache.ContentKey("about")))

	// second read is served from the cache
	got, err = svc.Get(context.Background(), "about")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	repo.AssertNumberOfCalls(t, "GetBySection", 1)
}

func TestContentGet_FallsBackOnTimeout(t *testing.T) {
	repo := new(MockContentRepository)
	svc := newContentService(repo, newMemoryCache(), nil)

	repo.On("GetBySection", mock.Anything, "hero").
		After(500*time.Millisecond).
		Return(&models.ContentBlock{Section: "hero", Content: datatypes.JSON(`{"title":"slow"}`)}, nil)

	start := time.Now()
	got, err := svc.Get(context.Background(), "hero")
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
	assert.True(t, got.IsPredefined)
	assert.JSONEq(t, defaultSections["hero"], string(got.Content))
}

func TestContentGet_FallsBackOnError(t *testing.T) {
	repo := new(MockContentRepository)
	svc := newContentService(repo, newMemoryCache(), nil)

	repo.On("GetBySection", mock.Anything, "footer").Return(nil, errors.New("connection refused"))

	got, err := svc.Get(context.Background(), "footer")
	require.NoError(t, err)
	assert.Equal(t, "footer", got.Section)
}

func TestContentGet_UnknownSection(t *testing.T) {
	repo := new(MockContentRepository)
	svc := newContentService(repo, newMemoryCache(), nil)

	repo.On("GetBySection", mock.Anything, "custom").Return(nil, fmt.Errorf("get content block: %w", gorm.ErrRecordNotFound))

	_, err := svc.Get(context.Background(), "custom")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(context.Background(), "Bad Section")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestContentUpsert_InvalidatesCache(t *testing.T) {
	repo := new(MockContentRepository)
	mc := newMemoryCache()
	pub := &recordingPublisher{}
	svc := newContentService(repo, mc, pub)
	require.NoError(t, mc.SetJSON(context.Background(), cache.ContentKey("about"), models.ContentBlock{Section: "about"}))

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(b *models.ContentBlock) bool {
		return b.Section == "about" && b.IsPredefined
	})).Return(nil)
	repo.On("GetBySection", mock.Anything, "about").
		Return(&models.ContentBlock{Section: "about", Content: datatypes.JSON(`{"title":"New"}`), IsPredefined: true}, nil)

	got, err := svc.Upsert(context.Background(), "about", json.RawMessage(`{"title":"New"}`), "admin-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"New"}`, string(got.Content))
	assert.False(t, mc.has(cache.ContentKey("about")))
	assert.Equal(t, []string{events.ContentUpdated}, pub.types())
}

func TestContentUpsert_RejectsNonObject(t *testing.T) {
	svc := newContentService(new(MockContentRepository), newMemoryCache(), nil)

	for _, raw := range []string{`[1,2]`, `"text"`, `null`, `{broken`} {
		_, err := svc.Upsert(context.Background(), "about", json.RawMessage(raw), "")
		assert.ErrorIs(t, err, ErrInvalidInput, raw)
	}
}

func TestContentDelete_Predefined(t *testing.T) {
	repo := new(MockContentRepository)
	svc := newContentService(repo, newMemoryCache(), nil)

	repo.On("GetBySection", mock.Anything, "about").Return(&models.ContentBlock{Section: "about", IsPredefined: true}, nil)
	repo.On("GetBySection", mock.Anything, "banner").Return(&models.ContentBlock{Section: "banner", IsPredefined: true}, nil)

	assert.ErrorIs(t, svc.Delete(context.Background(), "about", ""), ErrPredefinedSection)
	assert.ErrorIs(t, svc.Delete(context.Background(), "banner", ""), ErrPredefinedSection)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestContentDelete_Custom(t *testing.T) {
	repo := new(MockContentRepository)
	svc := newContentService(repo, newMemoryCache(), nil)

	repo.On("GetBySection", mock.Anything, "promo").Return(&models.ContentBlock{Section: "promo"}, nil)
	repo.On("Delete", mock.Anything, "promo").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "promo", "admin-1"))
	repo.AssertExpectations(t)
}

func TestContentEnsureDefaults(t *testing.T) {
	repo := new(MockContentRepository)
	svc := newContentService(repo, newMemoryCache(), nil)

	var seen []string
	repo.On("EnsureDefault", mock.Anything, mock.AnythingOfType("*models.ContentBlock")).
		Run(func(args mock.Arguments) {
			b := args.Get(1).(*models.ContentBlock)
			seen = append(seen, b.Section)
		}).
		Return(&models.ContentBlock{}, nil)

	n, err := svc.EnsureDefaults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(defaultSections), n)
	assert.Equal(t, DefaultSectionNames(), seen)
}

func TestContentEnsureDefaults_ReportsFailures(t *testing.T) {
	repo := new(MockContentRepository)
	svc := newContentService(repo, newMemoryCache(), nil)

	repo.On("EnsureDefault", mock.Anything, mock.MatchedBy(func(b *models.ContentBlock) bool { return b.Section == "about" })).
		Return(nil, errors.New("boom"))
	repo.On("EnsureDefault", mock.Anything, mock.Anything).Return(&models.ContentBlock{}, nil)

	n, err := svc.EnsureDefaults(context.Background())
	assert.Error(t, err)
	assert.Equal(t, len(defaultSections)-1, n)
}
