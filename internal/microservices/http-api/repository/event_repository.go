package repository

import (
	"context"
	"time"

	"awardshub/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

// EventFilter narrows List. Now is the reference time for UpcomingOnly.
type EventFilter struct {
	PublishedOnly bool
	UpcomingOnly  bool
	Now           time.Time
}

type EventRepository interface {
	List(ctx context.Context, filter EventFilter) ([]models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetBySlug(ctx context.Context, slug string) (*models.Event, error)
	Create(ctx context.Context, e *models.Event) error
	Update(ctx context.Context, e *models.Event) error
	Delete(ctx context.Context, id int64) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) List(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	var list []models.Event
	q := r.db.WithContext(ctx).Order("starts_at asc nulls last, title asc")
	if filter.PublishedOnly {
		q = q.Where("is_published = ?", true)
	}
	if filter.UpcomingOnly {
		now := filter.Now
		if now.IsZero() {
			now = time.Now()
		}
		// still running counts as upcoming
		q = q.Where("COALESCE(ends_at, starts_at) >= ?", now)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, wrap("list events", err)
	}
	return list, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	var e models.Event
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, wrap("get event", err)
	}
	return &e, nil
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*models.Event, error) {
	var e models.Event
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&e).Error; err != nil {
		return nil, wrap("get event by slug", err)
	}
	return &e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *models.Event) error {
	return wrap("create event", r.db.WithContext(ctx).Create(e).Error)
}

func (r *eventRepository) Update(ctx context.Context, e *models.Event) error {
	return wrap("update event", r.db.WithContext(ctx).Save(e).Error)
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, id)
	if result.Error != nil {
		return wrap("delete event", result.Error)
	}
	if result.RowsAffected == 0 {
		return wrap("delete event", gorm.ErrRecordNotFound)
	}
	return nil
}
