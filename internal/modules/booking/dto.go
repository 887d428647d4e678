package booking

import "time"

type CreateBookingRequest struct {
	UserID         string    `json:"userId" binding:"required"`
	PropertyID     string    `json:"propertyId" binding:"required"`
	CheckinDate    time.Time `json:"checkinDate" binding:"required"`
	CheckoutDate   time.Time `json:"checkoutDate" binding:"required"`
	NumberOfGuests int       `json:"numberOfGuests" binding:"required,gt=0"`
	TotalPrice     float64   `json:"totalPrice" binding:"required,gt=0"`
	BookingStatus  string    `json:"bookingStatus"`
}

type UpdateBookingRequest struct {
	CheckinDate    *time.Time `json:"checkinDate"`
	CheckoutDate   *time.Time `json:"checkoutDate"`
	NumberOfGuests *int       `json:"numberOfGuests" binding:"omitempty,gt=0"`
	TotalPrice     *float64   `json:"totalPrice" binding:"omitempty,gt=0"`
	BookingStatus  string     `json:"bookingStatus"`
}
