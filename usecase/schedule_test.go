package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	domainSchedule "github.com/zapagenda/zapagenda/domains/schedule"
	pkgError "github.com/zapagenda/zapagenda/pkg/error"
)

// stubRepo captures inserts; the scheduler package owns the behavioural fakes.
type stubRepo struct {
	lastLink   *domainSchedule.LinkPost
	lastChange *domainSchedule.StatusChange
	deleted    []string
}

func (r *stubRepo) Init(context.Context) error { return nil }

func (r *stubRepo) InsertLinkPost(_ context.Context, post *domainSchedule.LinkPost) error {
	post.ID = 7
	r.lastLink = post
	return nil
}

func (r *stubRepo) InsertStatusChange(_ context.Context, change *domainSchedule.StatusChange) error {
	change.ID = 9
	r.lastChange = change
	return nil
}

func (r *stubRepo) ListDueLinkPosts(context.Context, time.Time) ([]domainSchedule.LinkPost, error) {
	return nil, nil
}

func (r *stubRepo) ListDueStatusChanges(context.Context, time.Time) ([]domainSchedule.StatusChange, error) {
	return nil, nil
}

func (r *stubRepo) MarkExecuted(context.Context, domainSchedule.Kind, int64) error { return nil }

func (r *stubRepo) ListAll(context.Context) ([]domainSchedule.Entry, error) {
	return []domainSchedule.Entry{}, nil
}

func (r *stubRepo) Delete(_ context.Context, kind domainSchedule.Kind, id int64) error {
	r.deleted = append(r.deleted, string(kind))
	return nil
}

func TestCreateLinkPost(t *testing.T) {
	repo := &stubRepo{}
	service := NewScheduleService(repo)

	response, err := service.CreateLinkPost(context.Background(), domainSchedule.CreateLinkPostRequest{
		ChatID:      "123456789@g.us",
		Link:        "http://example.com/promo",
		Description: "Promo",
		ScheduledAt: "2026-09-01T10:30",
	})
	require.NoError(t, err)
	require.Equal(t, domainSchedule.KindLinkPost, response.Kind)
	require.Equal(t, int64(7), response.ID)

	require.NotNil(t, repo.lastLink)
	require.Equal(t, time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC), repo.lastLink.ScheduledAt)
	require.False(t, repo.lastLink.Executed)
}

func TestCreateLinkPostValidation(t *testing.T) {
	service := NewScheduleService(&stubRepo{})
	ctx := context.Background()

	cases := []struct {
		name    string
		request domainSchedule.CreateLinkPostRequest
	}{
		{"missing chat id", domainSchedule.CreateLinkPostRequest{Link: "http://x", ScheduledAt: "2026-09-01T10:30"}},
		{"missing link", domainSchedule.CreateLinkPostRequest{ChatID: "g1", ScheduledAt: "2026-09-01T10:30"}},
		{"not a url", domainSchedule.CreateLinkPostRequest{ChatID: "g1", Link: "not a url", ScheduledAt: "2026-09-01T10:30"}},
		{"missing timestamp", domainSchedule.CreateLinkPostRequest{ChatID: "g1", Link: "http://x"}},
		{"garbage timestamp", domainSchedule.CreateLinkPostRequest{ChatID: "g1", Link: "http://x", ScheduledAt: "tomorrow maybe"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.CreateLinkPost(ctx, tc.request)
			require.Error(t, err)
			var validationErr pkgError.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestCreateStatusChange(t *testing.T) {
	repo := &stubRepo{}
	service := NewScheduleService(repo)

	response, err := service.CreateStatusChange(context.Background(), domainSchedule.CreateStatusChangeRequest{
		ChatID:      "123456789@g.us",
		Action:      "close",
		Message:     "Closing now",
		ScheduledAt: "2026-09-01 10:30",
	})
	require.NoError(t, err)
	require.Equal(t, domainSchedule.KindStatusChange, response.Kind)
	require.Equal(t, int64(9), response.ID)

	require.NotNil(t, repo.lastChange)
	require.Equal(t, domainSchedule.StatusActionClose, repo.lastChange.Action)
	require.Equal(t, "Closing now", repo.lastChange.Message)
}

func TestCreateStatusChangeRejectsUnknownAction(t *testing.T) {
	service := NewScheduleService(&stubRepo{})

	_, err := service.CreateStatusChange(context.Background(), domainSchedule.CreateStatusChangeRequest{
		ChatID:      "g1",
		Action:      "freeze",
		ScheduledAt: "2026-09-01T10:30",
	})
	require.Error(t, err)
	var validationErr pkgError.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestDeleteRejectsUnknownKind(t *testing.T) {
	repo := &stubRepo{}
	service := NewScheduleService(repo)

	err := service.Delete(context.Background(), domainSchedule.Kind("bogus"), 1)
	require.Error(t, err)
	require.Empty(t, repo.deleted)

	require.NoError(t, service.Delete(context.Background(), domainSchedule.KindLinkPost, 1))
	require.Equal(t, []string{"link"}, repo.deleted)
}
