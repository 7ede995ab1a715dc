package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
	"recruitment-portal/pkg/validation"
)

// validateStruct runs the validator and converts failures into invalid form
// data carrying the formatted field messages.
func validateStruct(v *validator.Validate, s any) error {
	if err := v.Struct(s); err != nil {
		return apperror.InvalidFormData(validation.Message(err))
	}
	return nil
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, string, int64, string, string) {}

func recorderOrNop(r domain.ActivityRecorder) domain.ActivityRecorder {
	if r == nil {
		return nopRecorder{}
	}
	return r
}
