package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Duration options offered by the booking form, in hours.
type Duration string

const (
	Duration2h  Duration = "2"
	Duration4h  Duration = "4"
	Duration8h  Duration = "8"
	Duration24h Duration = "24"
)

func (d Duration) Valid() bool {
	switch d {
	case Duration2h, Duration4h, Duration8h, Duration24h:
		return true
	}
	return false
}

type ServiceType string

const (
	ServiceDinner   ServiceType = "dinner"
	ServiceEvent    ServiceType = "event"
	ServiceTravel   ServiceType = "travel"
	ServiceBusiness ServiceType = "business"
	ServiceCustom   ServiceType = "custom"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceDinner, ServiceEvent, ServiceTravel, ServiceBusiness, ServiceCustom:
		return true
	}
	return false
}

type Booking struct {
	ID          int64 `json:"id"`
	CompanionID int64 `json:"companion_id" validate:"required"`

	ClientName  string `json:"client_name" validate:"required"`
	ClientEmail string `json:"client_email" validate:"required,email"`
	ClientPhone string `json:"client_phone" validate:"required"`

	Date     string      `json:"date" validate:"required"` // 2006-01-02
	Time     string      `json:"time" validate:"required"` // 15:04
	Duration Duration    `json:"duration"`
	Service  ServiceType `json:"service"`
	Location string      `json:"location" validate:"required"`
	Requests string      `json:"requests,omitempty" gorm:"type:text"`

	// Carried verbatim from the listing. The total never varies with
	// duration or service; per-selection pricing is an open product question.
	TotalPrice string `json:"total_price"`

	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Companion *Companion `json:"companion,omitempty" gorm:"foreignKey:CompanionID"`
}
