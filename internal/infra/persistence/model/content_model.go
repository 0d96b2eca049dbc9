package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the singleton 'portfolio_profile' table.
type ProfileModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);not null"`
	Location      string    `gorm:"type:varchar(255);not null"`
	Bio           string    `gorm:"type:text;not null"`
	OGTitle       string    `gorm:"column:og_title;type:varchar(255);not null"`
	OGDescription string    `gorm:"column:og_description;type:text;not null"`
	OGImageURL    string    `gorm:"column:og_image_url;type:text;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "portfolio_profile"
}

// ExperienceModel mirrors the 'experiences' table.
type ExperienceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Company     string    `gorm:"type:varchar(255);not null"`
	Period      string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExperienceModel) TableName() string {
	return "experiences"
}

// SocialLinkModel mirrors the 'social_links' table.
type SocialLinkModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Label     string    `gorm:"type:varchar(100);not null"`
	Href      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SocialLinkModel) TableName() string {
	return "social_links"
}

// GalleryImageModel mirrors the 'gallery_images' table.
type GalleryImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RowNumber int       `gorm:"not null;index:idx_gallery_images_placement,priority:1"`
	Position  int       `gorm:"not null;index:idx_gallery_images_placement,priority:2"`
	ImageURL  string    `gorm:"column:image_url;type:text;not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GalleryImageModel) TableName() string {
	return "gallery_images"
}
