package impl

import (
	"strings"

	domainerrors "folio/internal/domain/errors"
)

// field pairs a request field name with its submitted value.
type field struct {
	name  string
	value string
}

// requireFields rejects the first blank field. Transports validate too; this keeps non-HTTP callers such as the
// seed command to the same rule.
func requireFields(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return domainerrors.ErrValidationFailed.WithDetails(f.name + " is required")
		}
	}

	return nil
}
