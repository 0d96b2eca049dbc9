package handler

import (
	"bytes"
	"encoding/json"
	"fmt"

	domainerrors "folio/internal/domain/errors"
	"folio/internal/usecase"

	"github.com/pkg/errors"
)

// Profile request schema versions. A body without schema_version is read as the current one.
const (
	profileSchemaLegacy  = 1
	profileSchemaCurrent = 2
)

// ProfileRequest is the canonical profile body.
type ProfileRequest struct {
	SchemaVersion int    `json:"schema_version,omitempty"`
	Name          string `json:"name" validate:"required"`
	Title         string `json:"title" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Location      string `json:"location"`
	Bio           string `json:"bio" validate:"required"`
	OGTitle       string `json:"og_title"`
	OGDescription string `json:"og_description"`
	OGImageURL    string `json:"og_image_url" validate:"omitempty,url"`
}

// legacyProfileRequest is the first dashboard's field naming.
type legacyProfileRequest struct {
	SchemaVersion int    `json:"schema_version"`
	Name          string `json:"name"`
	CareerName    string `json:"career_name"`
	Email         string `json:"email"`
	Availability  string `json:"availability"`
	About         string `json:"about"`
	OGTitle       string `json:"og_title"`
	OGDescription string `json:"og_description"`
	OGImageURL    string `json:"og_image_url"`
}

func (r *legacyProfileRequest) canonical() *ProfileRequest {
	return &ProfileRequest{
		SchemaVersion: profileSchemaCurrent,
		Name:          r.Name,
		Title:         r.CareerName,
		Email:         r.Email,
		Location:      r.Availability,
		Bio:           r.About,
		OGTitle:       r.OGTitle,
		OGDescription: r.OGDescription,
		OGImageURL:    r.OGImageURL,
	}
}

func (r *ProfileRequest) toInput() *usecase.ProfileInput {
	return &usecase.ProfileInput{
		Name:          r.Name,
		Title:         r.Title,
		Email:         r.Email,
		Location:      r.Location,
		Bio:           r.Bio,
		OGTitle:       r.OGTitle,
		OGDescription: r.OGDescription,
		OGImageURL:    r.OGImageURL,
	}
}

var profileDecoders = map[int]func([]byte) (*ProfileRequest, error){
	profileSchemaLegacy: func(body []byte) (*ProfileRequest, error) {
		legacy := new(legacyProfileRequest)
		if err := decodeStrict(body, legacy); err != nil {
			return nil, err
		}

		return legacy.canonical(), nil
	},
	profileSchemaCurrent: func(body []byte) (*ProfileRequest, error) {
		req := new(ProfileRequest)
		if err := decodeStrict(body, req); err != nil {
			return nil, err
		}
		req.SchemaVersion = profileSchemaCurrent

		return req, nil
	},
}

// decodeProfileRequest selects the decoder named by schema_version. Unknown fields are rejected so that
// legacy spellings never leak into a canonical body.
func decodeProfileRequest(body []byte) (*ProfileRequest, error) {
	var envelope struct {
		SchemaVersion *int `json:"schema_version"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed JSON body")
	}

	version := profileSchemaCurrent
	if envelope.SchemaVersion != nil {
		version = *envelope.SchemaVersion
	}

	decode, ok := profileDecoders[version]
	if !ok {
		return nil, domainerrors.ErrUnsupportedSchemaVersion.WithDetails(fmt.Sprintf("schema_version %d", version))
	}

	return decode(body)
}

func decodeStrict(body []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	return nil
}
