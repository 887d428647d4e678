package property

type CreatePropertyRequest struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Location      string   `json:"location" validate:"required"`
	PricePerNight float64  `json:"pricePerNight" validate:"required,gt=0"`
	BedroomCount  int      `json:"bedroomCount" validate:"required,gte=0"`
	BathRoomCount int      `json:"bathRoomCount" validate:"required,gte=0"`
	MaxGuestCount int      `json:"maxGuestCount" validate:"required,gt=0"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	HostID        string   `json:"hostId" validate:"required"`
	Amenities     []string `json:"amenities,omitempty"`
}

type UpdatePropertyRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	PricePerNight *float64 `json:"pricePerNight" validate:"omitempty,gt=0"`
	BedroomCount  *int     `json:"bedroomCount" validate:"omitempty,gte=0"`
	BathRoomCount *int     `json:"bathRoomCount" validate:"omitempty,gte=0"`
	MaxGuestCount *int     `json:"maxGuestCount" validate:"omitempty,gt=0"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Amenities     []string `json:"amenities,omitempty"`
}
