package amenity

type AmenityRequest struct {
	Name string `json:"name" binding:"required"`
}
