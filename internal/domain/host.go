package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Host is a property owner. Hosts are a separate account type from
// users and do not take part in the authentication flow.
type Host struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:64;not null"`
	Password       string    `json:"-" gorm:"column:password;not null"`
	Name           string    `json:"name"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PhoneNumber    string    `json:"phoneNumber"`
	ProfilePicture string    `json:"profilePicture"`
	AboutMe        string    `json:"aboutMe"`
	Properties     []Property `json:"properties,omitempty" gorm:"foreignKey:HostID"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (h *Host) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
