package handler

import (
	"io"
	"strconv"
	"strings"

	domainerrors "folio/internal/domain/errors"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const uploadField = "file"

func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	return id, nil
}

// readUpload loads the multipart file field into memory. The body limit middleware bounds its size.
func readUpload(c echo.Context) (*usecase.FileInput, error) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file is required")
	}

	f, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open upload")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Wrap(err, "read upload")
	}

	return &usecase.FileInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

// optionalFormInt returns nil for an absent or blank field.
func optionalFormInt(c echo.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
	}

	return &v, nil
}
