package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID             string        `json:"id" gorm:"primaryKey;size:36"`
	UserID         string        `json:"userId" gorm:"size:36;index;not null"`
	PropertyID     string        `json:"propertyId" gorm:"size:36;index;not null"`
	CheckinDate    time.Time     `json:"checkinDate"`
	CheckoutDate   time.Time     `json:"checkoutDate"`
	NumberOfGuests int           `json:"numberOfGuests"`
	TotalPrice     float64       `json:"totalPrice"`
	BookingStatus  BookingStatus `json:"bookingStatus" gorm:"size:16"`
	Property       *Property     `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
