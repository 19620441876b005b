package chat

import "context"

// ISession is the live messaging connection consumed by the scheduler and the
// REST layer. The whatsmeow adapter is the only implementation in production;
// tests substitute their own.
type ISession interface {
	SendMessage(ctx context.Context, chatID string, text string) error
	SetAdminsOnly(ctx context.Context, chatID string, adminsOnly bool) error
	IsReady() bool
	Groups(ctx context.Context) ([]GroupInfo, error)
}

type GroupInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
