package schedule

import (
	"context"
	"time"
)

// IScheduleRepository is the durable schedule store. ListDue* return items at
// or before asOf that are not yet executed; MarkExecuted is idempotent and
// Delete reports no error for rows that are already gone.
type IScheduleRepository interface {
	Init(ctx context.Context) error

	InsertLinkPost(ctx context.Context, post *LinkPost) error
	InsertStatusChange(ctx context.Context, change *StatusChange) error

	ListDueLinkPosts(ctx context.Context, asOf time.Time) ([]LinkPost, error)
	ListDueStatusChanges(ctx context.Context, asOf time.Time) ([]StatusChange, error)

	MarkExecuted(ctx context.Context, kind Kind, id int64) error
	ListAll(ctx context.Context) ([]Entry, error)
	Delete(ctx context.Context, kind Kind, id int64) error
}
