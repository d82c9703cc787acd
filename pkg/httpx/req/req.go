package req

import (
	"context"
	"errors"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"

	"tarkov_trader/pkg/errcodes"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

// FieldCodes maps a struct field name to the error code reported when that
// field fails validation.
type FieldCodes map[string]failure.ErrorCode

// Validate checks dest against its `validate` tags. The first failing field
// selects the error code; unknown fields report ValidationError.
func Validate(ctx context.Context, dest any, codes FieldCodes) error {
	err := validate.StructCtx(ctx, dest)
	if err == nil {
		return nil
	}

	code := errcodes.ValidationError

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		if c, ok := codes[validationErrors[0].Field()]; ok {
			code = c
		}
	}

	return failure.NewInvalidArgumentError(
		"validation error",
		failure.WithCode(code),
		failure.WithDescription(err.Error()),
	)
}
