package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the singleton personal information shown on the portfolio page.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Title         string    `json:"title"`
	Email         string    `json:"email"`
	Location      string    `json:"location"`
	Bio           string    `json:"bio"`
	OGTitle       string    `json:"og_title"`       // Optional Open Graph title override.
	OGDescription string    `json:"og_description"` // Optional Open Graph description override.
	OGImageURL    string    `json:"og_image_url"`   // Optional Open Graph image.
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Experience is one entry of the career timeline.
type Experience struct {
	ID          uuid.UUID `json:"id"`
	Company     string    `json:"company"`
	Period      string    `json:"period"` // Free-form, e.g. "2021 - present".
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SocialLink is an outbound profile link such as GitHub or LinkedIn.
type SocialLink struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Href      string    `json:"href"`
	CreatedAt time.Time `json:"created_at"`
}
