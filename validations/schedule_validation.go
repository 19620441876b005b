package validations

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	domainSchedule "github.com/zapagenda/zapagenda/domains/schedule"
	pkgError "github.com/zapagenda/zapagenda/pkg/error"
)

func ValidateCreateLinkPost(ctx context.Context, request domainSchedule.CreateLinkPostRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.ChatID, validation.Required),
		validation.Field(&request.Link, validation.Required, is.URL),
		validation.Field(&request.ScheduledAt, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateCreateStatusChange(ctx context.Context, request domainSchedule.CreateStatusChangeRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.ChatID, validation.Required),
		validation.Field(&request.Action, validation.Required, validation.In(
			string(domainSchedule.StatusActionOpen),
			string(domainSchedule.StatusActionClose),
		)),
		validation.Field(&request.ScheduledAt, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
