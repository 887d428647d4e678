package review

type CreateReviewRequest struct {
	UserID     string `json:"userId" binding:"required"`
	PropertyID string `json:"propertyId" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment" binding:"required"`
}

type UpdateReviewRequest struct {
	Rating  *int   `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment string `json:"comment"`
}
