package entity

import "time"

// MetadataSnapshot is the published page metadata consumed when rendering <head> tags.
// It only changes through an explicit publish, never as a side effect of a profile save.
type MetadataSnapshot struct {
	Name          string    `json:"name"`
	Title         string    `json:"title"`
	Email         string    `json:"email"`
	Location      string    `json:"location"`
	Description   string    `json:"description"`
	OGTitle       string    `json:"og_title"`
	OGDescription string    `json:"og_description"`
	OGImageURL    string    `json:"og_image_url,omitempty"`
	FaviconURL    string    `json:"favicon_url,omitempty"`
	PublishedAt   time.Time `json:"published_at"`
}

// StoredObject describes an object held in managed storage.
type StoredObject struct {
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}
