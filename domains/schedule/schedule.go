package schedule

import (
	"context"
	"time"
)

// Kind tags the two scheduled item flavours across the store, the scheduler
// and the REST layer.
type Kind string

const (
	KindLinkPost     Kind = "link"
	KindStatusChange Kind = "status"
)

// StatusAction says whether a group becomes open-posting or admins-only.
type StatusAction string

const (
	StatusActionOpen  StatusAction = "open"
	StatusActionClose StatusAction = "close"
)

// LinkPost is a link to publish in a chat at a scheduled time.
type LinkPost struct {
	ID          int64     `json:"id"`
	ChatID      string    `json:"chat_id"`
	Link        string    `json:"link"`
	Description string    `json:"description,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Executed    bool      `json:"executed"`
	CreatedAt   time.Time `json:"created_at"`
}

// StatusChange toggles a group's admins-only flag at a scheduled time,
// optionally broadcasting a message after the toggle.
type StatusChange struct {
	ID          int64        `json:"id"`
	ChatID      string       `json:"chat_id"`
	Action      StatusAction `json:"action"`
	Message     string       `json:"message,omitempty"`
	ScheduledAt time.Time    `json:"scheduled_at"`
	Executed    bool         `json:"executed"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Entry is the kind-annotated projection returned by ListAll for the panel.
type Entry struct {
	Kind        Kind         `json:"kind"`
	ID          int64        `json:"id"`
	ChatID      string       `json:"chat_id"`
	Link        string       `json:"link,omitempty"`
	Description string       `json:"description,omitempty"`
	Action      StatusAction `json:"action,omitempty"`
	Message     string       `json:"message,omitempty"`
	ScheduledAt time.Time    `json:"scheduled_at"`
	Executed    bool         `json:"executed"`
}

type CreateLinkPostRequest struct {
	ChatID      string `json:"chat_id" form:"chat_id"`
	Link        string `json:"link" form:"link"`
	Description string `json:"description,omitempty" form:"description"`
	ScheduledAt string `json:"scheduled_at" form:"scheduled_at"`
}

type CreateStatusChangeRequest struct {
	ChatID      string `json:"chat_id" form:"chat_id"`
	Action      string `json:"action" form:"action"`
	Message     string `json:"message,omitempty" form:"message"`
	ScheduledAt string `json:"scheduled_at" form:"scheduled_at"`
}

type CreateResponse struct {
	Kind Kind  `json:"kind"`
	ID   int64 `json:"id"`
}

type IScheduleUsecase interface {
	CreateLinkPost(ctx context.Context, request CreateLinkPostRequest) (CreateResponse, error)
	CreateStatusChange(ctx context.Context, request CreateStatusChangeRequest) (CreateResponse, error)
	ListAll(ctx context.Context) ([]Entry, error)
	Delete(ctx context.Context, kind Kind, id int64) error
}
