package repository

import (
	"context"
	"fmt"
	"time"

	domainSchedule "github.com/zapagenda/zapagenda/domains/schedule"
	"gorm.io/gorm"
)

// Persistence models carry the GORM tags so the domain structs stay clean.

type linkPostModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	ChatID      string    `gorm:"column:chat_id;not null;index"`
	Link        string    `gorm:"not null"`
	Description string    `gorm:"column:description"`
	ScheduledAt time.Time `gorm:"column:scheduled_at;not null;index"`
	Executed    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (linkPostModel) TableName() string {
	return "link_posts"
}

type statusChangeModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	ChatID      string    `gorm:"column:chat_id;not null;index"`
	Action      string    `gorm:"not null"`
	Message     string    `gorm:"column:message"`
	ScheduledAt time.Time `gorm:"column:scheduled_at;not null;index"`
	Executed    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (statusChangeModel) TableName() string {
	return "status_changes"
}

// ScheduleGormRepository implements IScheduleRepository on GORM, backed by
// SQLite or Postgres depending on the connection.
type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) Init(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&linkPostModel{}, &statusChangeModel{})
}

func (r *ScheduleGormRepository) InsertLinkPost(ctx context.Context, post *domainSchedule.LinkPost) error {
	model := linkPostModel{
		ChatID:      post.ChatID,
		Link:        post.Link,
		Description: post.Description,
		ScheduledAt: post.ScheduledAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	post.ID = model.ID
	post.CreatedAt = model.CreatedAt
	return nil
}

func (r *ScheduleGormRepository) InsertStatusChange(ctx context.Context, change *domainSchedule.StatusChange) error {
	model := statusChangeModel{
		ChatID:      change.ChatID,
		Action:      string(change.Action),
		Message:     change.Message,
		ScheduledAt: change.ScheduledAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	change.ID = model.ID
	change.CreatedAt = model.CreatedAt
	return nil
}

// ListDueLinkPosts returns non-executed posts with scheduled_at <= asOf.
// Full-precision comparison; ordering is only for reproducible output.
func (r *ScheduleGormRepository) ListDueLinkPosts(ctx context.Context, asOf time.Time) ([]domainSchedule.LinkPost, error) {
	var models []linkPostModel
	err := r.db.WithContext(ctx).
		Where("executed = ? AND scheduled_at <= ?", false, asOf.UTC()).
		Order("scheduled_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	posts := make([]domainSchedule.LinkPost, len(models))
	for i, m := range models {
		posts[i] = fromLinkPostModel(m)
	}
	return posts, nil
}

func (r *ScheduleGormRepository) ListDueStatusChanges(ctx context.Context, asOf time.Time) ([]domainSchedule.StatusChange, error) {
	var models []statusChangeModel
	err := r.db.WithContext(ctx).
		Where("executed = ? AND scheduled_at <= ?", false, asOf.UTC()).
		Order("scheduled_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	changes := make([]domainSchedule.StatusChange, len(models))
	for i, m := range models {
		changes[i] = fromStatusChangeModel(m)
	}
	return changes, nil
}

// MarkExecuted flips the executed flag. Marking an already-executed row again
// is a no-op, never an error.
func (r *ScheduleGormRepository) MarkExecuted(ctx context.Context, kind domainSchedule.Kind, id int64) error {
	model, err := modelForKind(kind)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Update("executed", true).Error
}

func (r *ScheduleGormRepository) ListAll(ctx context.Context) ([]domainSchedule.Entry, error) {
	var posts []linkPostModel
	if err := r.db.WithContext(ctx).Order("scheduled_at ASC").Find(&posts).Error; err != nil {
		return nil, err
	}

	var changes []statusChangeModel
	if err := r.db.WithContext(ctx).Order("scheduled_at ASC").Find(&changes).Error; err != nil {
		return nil, err
	}

	entries := make([]domainSchedule.Entry, 0, len(posts)+len(changes))
	for _, m := range posts {
		entries = append(entries, domainSchedule.Entry{
			Kind:        domainSchedule.KindLinkPost,
			ID:          m.ID,
			ChatID:      m.ChatID,
			Link:        m.Link,
			Description: m.Description,
			ScheduledAt: m.ScheduledAt,
			Executed:    m.Executed,
		})
	}
	for _, m := range changes {
		entries = append(entries, domainSchedule.Entry{
			Kind:        domainSchedule.KindStatusChange,
			ID:          m.ID,
			ChatID:      m.ChatID,
			Action:      domainSchedule.StatusAction(m.Action),
			Message:     m.Message,
			ScheduledAt: m.ScheduledAt,
			Executed:    m.Executed,
		})
	}
	return entries, nil
}

// Delete removes a row by kind and id. Zero rows affected is fine: the item
// may have been deleted from the panel twice.
func (r *ScheduleGormRepository) Delete(ctx context.Context, kind domainSchedule.Kind, id int64) error {
	model, err := modelForKind(kind)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(model).Error
}

func modelForKind(kind domainSchedule.Kind) (any, error) {
	switch kind {
	case domainSchedule.KindLinkPost:
		return &linkPostModel{}, nil
	case domainSchedule.KindStatusChange:
		return &statusChangeModel{}, nil
	default:
		return nil, fmt.Errorf("unknown schedule kind: %s", kind)
	}
}

func fromLinkPostModel(m linkPostModel) domainSchedule.LinkPost {
	return domainSchedule.LinkPost{
		ID:          m.ID,
		ChatID:      m.ChatID,
		Link:        m.Link,
		Description: m.Description,
		ScheduledAt: m.ScheduledAt,
		Executed:    m.Executed,
		CreatedAt:   m.CreatedAt,
	}
}

func fromStatusChangeModel(m statusChangeModel) domainSchedule.StatusChange {
	return domainSchedule.StatusChange{
		ID:          m.ID,
		ChatID:      m.ChatID,
		Action:      domainSchedule.StatusAction(m.Action),
		Message:     m.Message,
		ScheduledAt: m.ScheduledAt,
		Executed:    m.Executed,
		CreatedAt:   m.CreatedAt,
	}
}
