package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zapagenda/zapagenda/core/database"
	domainSchedule "github.com/zapagenda/zapagenda/domains/schedule"
)

func newTestRepository(t *testing.T) *ScheduleGormRepository {
	t.Helper()

	uri := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=on", filepath.Join(t.TempDir(), "schedules.db"))
	db, err := database.NewDatabase(uri)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})

	repo := NewScheduleGormRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestListDueLinkPosts(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().UTC()

	past := domainSchedule.LinkPost{ChatID: "g1", Link: "http://a", ScheduledAt: now.Add(-time.Minute)}
	require.NoError(t, repo.InsertLinkPost(ctx, &past))

	exact := domainSchedule.LinkPost{ChatID: "g1", Link: "http://b", ScheduledAt: now}
	require.NoError(t, repo.InsertLinkPost(ctx, &exact))

	future := domainSchedule.LinkPost{ChatID: "g1", Link: "http://c", ScheduledAt: now.Add(time.Hour)}
	require.NoError(t, repo.InsertLinkPost(ctx, &future))

	due, err := repo.ListDueLinkPosts(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 2, "items at or before asOf must be selected")
	require.Equal(t, "http://a", due[0].Link)
	require.Equal(t, "http://b", due[1].Link)

	// Executed items drop out of the due set.
	require.NoError(t, repo.MarkExecuted(ctx, domainSchedule.KindLinkPost, past.ID))
	due, err = repo.ListDueLinkPosts(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.Equal(t, "http://b", due[0].Link)
}

func TestListDueStatusChanges(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().UTC()

	change := domainSchedule.StatusChange{
		ChatID:      "g1",
		Action:      domainSchedule.StatusActionClose,
		Message:     "Closing now",
		ScheduledAt: now.Add(-time.Minute),
	}
	require.NoError(t, repo.InsertStatusChange(ctx, &change))

	due, err := repo.ListDueStatusChanges(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	require.Equal(t, domainSchedule.StatusActionClose, due[0].Action)
	require.Equal(t, "Closing now", due[0].Message)
	require.False(t, due[0].Executed)
}

func TestMarkExecutedIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	post := domainSchedule.LinkPost{ChatID: "g1", Link: "http://a", ScheduledAt: time.Now().UTC()}
	require.NoError(t, repo.InsertLinkPost(ctx, &post))

	require.NoError(t, repo.MarkExecuted(ctx, domainSchedule.KindLinkPost, post.ID))
	require.NoError(t, repo.MarkExecuted(ctx, domainSchedule.KindLinkPost, post.ID))

	entries, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.True(t, entries[0].Executed)
}

func TestMarkExecutedRejectsUnknownKind(t *testing.T) {
	repo := newTestRepository(t)
	err := repo.MarkExecuted(context.Background(), domainSchedule.Kind("bogus"), 1)
	require.Error(t, err)
}

func TestDeleteMissingRowIsSilent(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.Delete(context.Background(), domainSchedule.KindLinkPost, 12345))
	require.NoError(t, repo.Delete(context.Background(), domainSchedule.KindStatusChange, 12345))
}

func TestListAllAnnotatesKinds(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().UTC()

	post := domainSchedule.LinkPost{ChatID: "g1", Link: "http://a", Description: "Promo", ScheduledAt: now}
	require.NoError(t, repo.InsertLinkPost(ctx, &post))

	change := domainSchedule.StatusChange{ChatID: "g2", Action: domainSchedule.StatusActionOpen, ScheduledAt: now}
	require.NoError(t, repo.InsertStatusChange(ctx, &change))

	entries, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byKind := map[domainSchedule.Kind]domainSchedule.Entry{}
	for _, entry := range entries {
		byKind[entry.Kind] = entry
	}
	require.Equal(t, "http://a", byKind[domainSchedule.KindLinkPost].Link)
	require.Equal(t, domainSchedule.StatusActionOpen, byKind[domainSchedule.KindStatusChange].Action)
}

func TestDeleteRemovesOnlyTargetKind(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now().UTC()

	post := domainSchedule.LinkPost{ChatID: "g1", Link: "http://a", ScheduledAt: now}
	require.NoError(t, repo.InsertLinkPost(ctx, &post))

	change := domainSchedule.StatusChange{ChatID: "g1", Action: domainSchedule.StatusActionOpen, ScheduledAt: now}
	require.NoError(t, repo.InsertStatusChange(ctx, &change))

	require.NoError(t, repo.Delete(ctx, domainSchedule.KindLinkPost, post.ID))

	entries, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, domainSchedule.KindStatusChange, entries[0].Kind)
}
