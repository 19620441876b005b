package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	domainChat "github.com/zapagenda/zapagenda/domains/chat"
	domainSchedule "github.com/zapagenda/zapagenda/domains/schedule"
)

// tickSpec matches the original one-minute sweep cadence.
const tickSpec = "* * * * *"

// Dispatcher drives the periodic sweep: every tick it pulls due items from
// the store, pushes them through the chat session and records the outcome.
// Items whose dispatch fails stay pending and are retried on every following
// tick until they succeed or get deleted.
type Dispatcher struct {
	repo    domainSchedule.IScheduleRepository
	session domainChat.ISession
	runner  *cron.Cron
}

func NewDispatcher(repo domainSchedule.IScheduleRepository, session domainChat.ISession) *Dispatcher {
	return &Dispatcher{repo: repo, session: session}
}

// Start registers the tick job and launches the cron runner. Ticks never
// overlap: a tick still running when the next fires makes the new one skip.
func (d *Dispatcher) Start(ctx context.Context) error {
	cronLog := cron.PrintfLogger(logrus.StandardLogger())
	runner := cron.New(cron.WithChain(
		cron.Recover(cronLog),
		cron.SkipIfStillRunning(cronLog),
	))

	if _, err := runner.AddFunc(tickSpec, func() { d.RunTick(ctx) }); err != nil {
		return fmt.Errorf("failed to register tick job: %w", err)
	}

	runner.Start()
	d.runner = runner
	logrus.Infof("[SCHEDULER] Tick loop started (%s)", tickSpec)
	return nil
}

// Stop halts the runner and waits for an in-flight tick to finish.
func (d *Dispatcher) Stop() {
	if d.runner == nil {
		return
	}
	<-d.runner.Stop().Done()
	logrus.Info("[SCHEDULER] Tick loop stopped")
}

// RunTick performs one sweep over both item kinds. Exported so tests can fire
// ticks directly. A store failure aborts only the affected kind; the other
// kind still runs.
func (d *Dispatcher) RunTick(ctx context.Context) {
	if !d.session.IsReady() {
		logrus.Debug("[SCHEDULER] Session not ready, leaving due items pending")
		return
	}

	d.dispatchLinkPosts(ctx)
	d.dispatchStatusChanges(ctx)
}

func (d *Dispatcher) dispatchLinkPosts(ctx context.Context) {
	now := time.Now().UTC()

	posts, err := d.repo.ListDueLinkPosts(ctx, now)
	if err != nil {
		logrus.WithError(err).Error("[SCHEDULER] Listing due link posts failed")
		return
	}

	for _, post := range posts {
		if err := d.session.SendMessage(ctx, post.ChatID, ComposeLinkMessage(post)); err != nil {
			logrus.WithError(err).Errorf("[SCHEDULER] Link post %d to %s failed, will retry next tick", post.ID, post.ChatID)
			continue
		}
		if err := d.repo.MarkExecuted(ctx, domainSchedule.KindLinkPost, post.ID); err != nil {
			// The send went out; a resend on the next tick is the accepted
			// at-least-once outcome.
			logrus.WithError(err).Errorf("[SCHEDULER] Failed to mark link post %d executed", post.ID)
			continue
		}
		logrus.Infof("[SCHEDULER] Link post %d delivered to %s", post.ID, post.ChatID)
	}
}

func (d *Dispatcher) dispatchStatusChanges(ctx context.Context) {
	now := time.Now().UTC()

	changes, err := d.repo.ListDueStatusChanges(ctx, now)
	if err != nil {
		logrus.WithError(err).Error("[SCHEDULER] Listing due status changes failed")
		return
	}

	for _, change := range changes {
		adminsOnly := change.Action == domainSchedule.StatusActionClose
		if err := d.session.SetAdminsOnly(ctx, change.ChatID, adminsOnly); err != nil {
			logrus.WithError(err).Errorf("[SCHEDULER] Status change %d on %s failed, will retry next tick", change.ID, change.ChatID)
			continue
		}
		if change.Message != "" {
			if err := d.session.SendMessage(ctx, change.ChatID, change.Message); err != nil {
				logrus.WithError(err).Errorf("[SCHEDULER] Announcement for status change %d failed, will retry next tick", change.ID)
				continue
			}
		}
		if err := d.repo.MarkExecuted(ctx, domainSchedule.KindStatusChange, change.ID); err != nil {
			logrus.WithError(err).Errorf("[SCHEDULER] Failed to mark status change %d executed", change.ID)
			continue
		}
		logrus.Infof("[SCHEDULER] Status change %d applied on %s (%s)", change.ID, change.ChatID, change.Action)
	}
}

// ComposeLinkMessage builds the outgoing text for a link post: the link alone,
// or "*description*" on its own paragraph above it.
func ComposeLinkMessage(post domainSchedule.LinkPost) string {
	if post.Description != "" {
		return fmt.Sprintf("*%s*\n\n%s", post.Description, post.Link)
	}
	return post.Link
}
