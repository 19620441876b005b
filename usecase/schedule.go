package usecase

import (
	"context"

	domainSchedule "github.com/zapagenda/zapagenda/domains/schedule"
	pkgError "github.com/zapagenda/zapagenda/pkg/error"
	"github.com/zapagenda/zapagenda/pkg/timeutils"
	"github.com/zapagenda/zapagenda/validations"
)

type serviceSchedule struct {
	repo domainSchedule.IScheduleRepository
}

func NewScheduleService(repo domainSchedule.IScheduleRepository) domainSchedule.IScheduleUsecase {
	return &serviceSchedule{repo: repo}
}

func (service *serviceSchedule) CreateLinkPost(ctx context.Context, request domainSchedule.CreateLinkPostRequest) (response domainSchedule.CreateResponse, err error) {
	if err = validations.ValidateCreateLinkPost(ctx, request); err != nil {
		return response, err
	}

	scheduledAt, err := timeutils.ParseScheduledAt(request.ScheduledAt)
	if err != nil {
		return response, pkgError.ValidationError(err.Error())
	}

	post := domainSchedule.LinkPost{
		ChatID:      request.ChatID,
		Link:        request.Link,
		Description: request.Description,
		ScheduledAt: scheduledAt,
	}
	if err = service.repo.InsertLinkPost(ctx, &post); err != nil {
		return response, pkgError.InternalServerError(err.Error())
	}

	return domainSchedule.CreateResponse{Kind: domainSchedule.KindLinkPost, ID: post.ID}, nil
}

func (service *serviceSchedule) CreateStatusChange(ctx context.Context, request domainSchedule.CreateStatusChangeRequest) (response domainSchedule.CreateResponse, err error) {
	if err = validations.ValidateCreateStatusChange(ctx, request); err != nil {
		return response, err
	}

	scheduledAt, err := timeutils.ParseScheduledAt(request.ScheduledAt)
	if err != nil {
		return response, pkgError.ValidationError(err.Error())
	}

	change := domainSchedule.StatusChange{
		ChatID:      request.ChatID,
		Action:      domainSchedule.StatusAction(request.Action),
		Message:     request.Message,
		ScheduledAt: scheduledAt,
	}
	if err = service.repo.InsertStatusChange(ctx, &change); err != nil {
		return response, pkgError.InternalServerError(err.Error())
	}

	return domainSchedule.CreateResponse{Kind: domainSchedule.KindStatusChange, ID: change.ID}, nil
}

func (service *serviceSchedule) ListAll(ctx context.Context) ([]domainSchedule.Entry, error) {
	entries, err := service.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgError.InternalServerError(err.Error())
	}
	return entries, nil
}

func (service *serviceSchedule) Delete(ctx context.Context, kind domainSchedule.Kind, id int64) error {
	if kind != domainSchedule.KindLinkPost && kind != domainSchedule.KindStatusChange {
		return pkgError.ValidationError("kind: must be either link or status")
	}
	if err := service.repo.Delete(ctx, kind, id); err != nil {
		return pkgError.InternalServerError(err.Error())
	}
	return nil
}
