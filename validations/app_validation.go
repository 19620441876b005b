package validations

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	pkgError "github.com/zapagenda/zapagenda/pkg/error"
)

func ValidateLoginWithCode(ctx context.Context, phoneNumber string) error {
	err := validation.Validate(phoneNumber, validation.Required)
	if err != nil {
		return pkgError.ValidationError("phone: " + err.Error())
	}

	return nil
}
