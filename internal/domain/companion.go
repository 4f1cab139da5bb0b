package domain

import "time"

const (
	AvailabilityAvailable   = "Available"
	AvailabilityUnavailable = "Unavailable"
)

// Companion is one gallery listing plus the extended profile shown on the
// detail page. List endpoints return the short shape, detail returns everything.
type Companion struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Age          int      `json:"age"`
	Location     string   `json:"location"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Price        string   `json:"price"`
	Tags         []string `json:"tags" gorm:"serializer:json"`
	Availability string   `json:"availability"`
	Description  string   `json:"description" gorm:"type:text"`

	About          string          `json:"about,omitempty" gorm:"type:text"`
	Languages      []string        `json:"languages,omitempty" gorm:"serializer:json"`
	Services       []string        `json:"services,omitempty" gorm:"serializer:json"`
	Photos         []string        `json:"photos,omitempty" gorm:"serializer:json"`
	AvailableDates []AvailableDate `json:"available_dates,omitempty" gorm:"serializer:json"`
	Contact        *Contact        `json:"contact,omitempty" gorm:"serializer:json"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

type AvailableDate struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type Contact struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Telegram string `json:"telegram"`
}
