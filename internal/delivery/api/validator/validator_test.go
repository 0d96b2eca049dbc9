package validator

import (
	"testing"

	domainerrors "folio/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Href  string `json:"href" validate:"omitempty,url"`
	Row   int    `json:"row_number" validate:"gte=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid request passes", func(t *testing.T) {
		err := v.Validate(&sampleRequest{Name: "Ada", Email: "ada@example.com", Href: "https://example.com"})
		assert.NoError(t, err)
	})

	t.Run("failures use json names", func(t *testing.T) {
		err := v.Validate(&sampleRequest{Email: "nope", Row: -1})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Contains(t, appErr.Details(), "name is required")
		assert.Contains(t, appErr.Details(), "email must be a valid e-mail address")
		assert.Contains(t, appErr.Details(), "row_number must be greater than or equal to 0")
	})
}
