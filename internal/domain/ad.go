package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Ad struct {
	ID          uuid.UUID      `json:"id" db:"ad_id"`
	UserID      uuid.UUID      `json:"user_id" db:"user_id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Category    string         `json:"category" db:"category"`
	Price       float64        `json:"price" db:"price"`
	Location    string         `json:"location" db:"location"`
	ImageURLs   pq.StringArray `json:"image_urls" db:"image_urls"`
	VideoURLs   pq.StringArray `json:"video_urls" db:"video_urls"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time     `json:"-" db:"deleted_at"`

	Owner *AdUser `json:"user_profile,omitempty"`
}

type AdUser struct {
	ID        uuid.UUID `json:"id" db:"user_id"`
	FullName  string    `json:"full_name" db:"owner_full_name"`
	AvatarURL *string   `json:"avatar_url" db:"owner_avatar_url"`
}

type CreateAdInput struct {
	Title       string   `json:"title" validate:"required,min=3,max=120"`
	Description string   `json:"description" validate:"required,min=10,max=5000"`
	Category    string   `json:"category" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Location    string   `json:"location" validate:"required"`
	ImageURLs   []string `json:"image_urls"`
	VideoURLs   []string `json:"video_urls"`
}

type UpdateAdInput struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,min=3,max=120"`
	Description *string   `json:"description,omitempty" validate:"omitempty,min=10,max=5000"`
	Category    *string   `json:"category,omitempty"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Location    *string   `json:"location,omitempty"`
	ImageURLs   *[]string `json:"image_urls,omitempty"`
	VideoURLs   *[]string `json:"video_urls,omitempty"`
}

// AdFilter mirrors the browse page search controls.
type AdFilter struct {
	Query    string
	Category string
	Location string
	MinPrice *float64
	MaxPrice *float64
}

type SavedAd struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	AdID      uuid.UUID `json:"ad_id" db:"ad_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	Ad *Ad `json:"ad,omitempty"`
}
