package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "folio/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody []string
		hideBody []string
	}{
		{
			name:     "app error keeps client details",
			err:      errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name is required"), "save profile"),
			wantCode: http.StatusBadRequest,
			wantBody: []string{`"code":"VALIDATION_FAILED"`, `"details":"name is required"`},
		},
		{
			name:     "server side details are hidden",
			err:      domainerrors.ErrStorageFailed.WithDetails("s3: access denied"),
			wantCode: http.StatusInternalServerError,
			wantBody: []string{`"code":"STORAGE_FAILED"`},
			hideBody: []string{"access denied"},
		},
		{
			name:     "body limit",
			err:      echo.ErrStatusRequestEntityTooLarge,
			wantCode: http.StatusRequestEntityTooLarge,
			wantBody: []string{`"code":"PAYLOAD_TOO_LARGE"`},
		},
		{
			name:     "unknown error",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: []string{`"code":"INTERNAL_ERROR"`},
			hideBody: []string{"connection refused"},
		},
	}

	m := NewErrorMiddleware(newDiscardLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			for _, s := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), s)
			}
			for _, s := range tt.hideBody {
				assert.NotContains(t, rec.Body.String(), s)
			}
		})
	}
}
