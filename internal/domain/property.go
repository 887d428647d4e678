package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Property struct {
	ID            string    `json:"id" gorm:"primaryKey;size:36"`
	HostID        string    `json:"hostId" gorm:"size:36;index;not null"`
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description"`
	Location      string    `json:"location" gorm:"index"`
	PricePerNight float64   `json:"pricePerNight"`
	BedroomCount  int       `json:"bedroomCount"`
	BathRoomCount int       `json:"bathRoomCount"`
	MaxGuestCount int       `json:"maxGuestCount"`
	Rating        float64   `json:"rating"`
	Amenities     []Amenity `json:"amenities,omitempty" gorm:"many2many:property_amenities"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
