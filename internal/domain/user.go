package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the subject of authentication. Email is unique
// case-insensitively (normalized to lowercase before storage),
// username is unique case-sensitively.
type User struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	Username       string    `json:"username" gorm:"uniqueIndex;size:64;not null"`
	Password       string    `json:"-" gorm:"column:password;not null"`
	Name           string    `json:"name"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PhoneNumber    string    `json:"phoneNumber"`
	ProfilePicture string    `json:"profilePicture"`
	PictureURL     string    `json:"pictureUrl"`
	// At most one live refresh token per user; login overwrites it,
	// which is what invalidates the previously issued one.
	RefreshToken *string   `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
