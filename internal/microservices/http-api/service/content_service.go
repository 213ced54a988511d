package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"regexp"
	"sort"
	"time"

	"awardshub/internal/cache"
	"awardshub/internal/events"
	"awardshub/internal/fallback"
	"awardshub/internal/microservices/http-api/models"
	"awardshub/internal/microservices/http-api/repository"

	"gorm.io/datatypes"
)

var sectionPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,99}$`)

// defaultSections are the predefined content sections. They are created on
// startup, served when the database is slow, and can never be deleted.
var defaultSections = map[string]string{
	"hero":         `{"title":"The Awards","subtitle":"Celebrating this year's finest work"}`,
	"about":        `{"title":"About the Awards","body":""}`,
	"voting_rules": `{"title":"How Voting Works","body":"Sign in and pick one nominee per category."}`,
	"academy":      `{"title":"The Academy","body":""}`,
	"contact":      `{"title":"Contact","email":""}`,
	"footer":       `{"text":""}`,
}

// DefaultSectionNames lists the predefined sections in a stable order.
func DefaultSectionNames() []string {
	names := make([]string, 0, len(defaultSections))
	for name := range defaultSections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func defaultBlock(section string) *models.ContentBlock {
	raw, ok := defaultSections[section]
	if !ok {
		return nil
	}
	return &models.ContentBlock{Section: section, Content: datatypes.JSON(raw), IsPredefined: true}
}

type ContentService interface {
	List(ctx context.Context) ([]models.ContentBlock, error)
	Get(ctx context.Context, section string) (*models.ContentBlock, error)
	Upsert(ctx context.Context, section string, content json.RawMessage, actorID string) (*models.ContentBlock, error)
	Delete(ctx context.Context, section, actorID string) error
	EnsureDefaults(ctx context.Context) (int, error)
}

type contentService struct {
	repo        repository.ContentRepository
	cache       cache.Cache
	readTimeout time.Duration
	logger      *slog.Logger
	notifier
}

// NewContentService builds the content service. Reads slower than readTimeout
// are answered with the section's default block when one exists.
func NewContentService(
	repo repository.ContentRepository,
	c cache.Cache,
	readTimeout time.Duration,
	pub events.Publisher,
	logger *slog.Logger,
) ContentService {
	return &contentService{
		repo:        repo,
		cache:       c,
		readTimeout: readTimeout,
		logger:      logger,
		notifier:    notifier{pub: pub, logger: logger},
	}
}

func validSection(section string) error {
	if !sectionPattern.MatchString(section) {
		return invalid("section %q must be lowercase letters, digits, dashes or underscores", section)
	}
	return nil
}

func (s *contentService) List(ctx context.Context) ([]models.ContentBlock, error) {
	return s.repo.List(ctx)
}

// Get reads a section through the cache. On a database error or timeout the
// predefined default is returned instead, if the section has one.
func (s *contentService) Get(ctx context.Context, section string) (*models.ContentBlock, error) {
	if err := validSection(section); err != nil {
		return nil, err
	}

	key := cache.ContentKey(section)
	var cached models.ContentBlock
	hit, err := s.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		s.logger.Warn("content_cache_get_failed", "section", section, "error", err)
	}
	if hit {
		return &cached, nil
	}
	s.logger.Debug("content_cache_miss", "section", section)

	def := defaultBlock(section)
	block, err := fallback.WithTimeout(ctx, s.readTimeout, func(ctx context.Context) (*models.ContentBlock, error) {
		return s.repo.GetBySection(ctx, section)
	}, def)
	if err != nil {
		if def == nil {
			return nil, notFoundAs(err, ErrNotFound)
		}
		s.logger.Warn("content_fallback_used", "section", section, "error", err)
		return block, nil
	}

	if err := s.cache.SetJSON(ctx, key, block); err != nil {
		s.logger.Warn("content_cache_set_failed", "section", section, "error", err)
	}
	return block, nil
}

func (s *contentService) Upsert(ctx context.Context, section string, content json.RawMessage, actorID string) (*models.ContentBlock, error) {
	if err := validSection(section); err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := json.Unmarshal(content, &obj); err != nil || obj == nil {
		return nil, invalid("content must be a JSON object")
	}

	block := &models.ContentBlock{
		Section:      section,
		Content:      datatypes.JSON(content),
		IsPredefined: defaultBlock(section) != nil,
	}
	if err := s.repo.Upsert(ctx, block); err != nil {
		return nil, err
	}
	s.invalidate(ctx, section)

	s.emit(ctx, events.New(events.ContentUpdated, "content:"+section, actorID, nil))
	return s.repo.GetBySection(ctx, section)
}

func (s *contentService) Delete(ctx context.Context, section, actorID string) error {
	if err := validSection(section); err != nil {
		return err
	}
	existing, err := s.repo.GetBySection(ctx, section)
	if err != nil {
		return notFoundAs(err, ErrNotFound)
	}
	if existing.IsPredefined || defaultBlock(section) != nil {
		return ErrPredefinedSection
	}

	if err := s.repo.Delete(ctx, section); err != nil {
		return notFoundAs(err, ErrNotFound)
	}
	s.invalidate(ctx, section)

	s.emit(ctx, events.New(events.ContentUpdated, "content:"+section, actorID, map[string]any{"deleted": true}))
	return nil
}

// EnsureDefaults creates every missing predefined section and leaves existing ones untouched.
func (s *contentService) EnsureDefaults(ctx context.Context) (int, error) {
	var errs []error
	ensured := 0
	for _, name := range DefaultSectionNames() {
		if _, err := s.repo.EnsureDefault(ctx, defaultBlock(name)); err != nil {
			errs = append(errs, err)
			continue
		}
		ensured++
	}
	if len(errs) > 0 {
		return ensured, errors.Join(errs...)
	}
	s.logger.Info("content_defaults_ensured", "sections", ensured)
	return ensured, nil
}

func (s *contentService) invalidate(ctx context.Context, section string) {
	if err := s.cache.Delete(ctx, cache.ContentKey(section)); err != nil {
		s.logger.Warn("content_cache_invalidate_failed", "section", section, "error", err)
	}
}
