package booking

import (
	"errors"
	"net/http"

	"staybook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/bookings", h.ListByUser)

	protected.GET("/bookings/:id", h.Get)
	protected.POST("/bookings", h.Create)
	protected.PUT("/bookings/:id", h.Update)
	protected.DELETE("/bookings/:id", h.Delete)
}

func (h *Handler) ListByUser(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "userId query parameter is required")
		return
	}

	bookings, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to fetch bookings")
		return
	}
	if len(bookings) == 0 {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No bookings found for this user")
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) Get(c *gin.Context) {
	b, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to fetch booking")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "All booking fields are required")
		return
	}

	b, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDates):
			response.Error(c, http.StatusBadRequest, "INVALID_DATES", "Checkout date must be after checkin date")
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusBadRequest, "USER_NOT_FOUND", "User does not exist")
		case errors.Is(err, ErrPropertyNotFound):
			response.Error(c, http.StatusBadRequest, "PROPERTY_NOT_FOUND", "Property does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to create booking")
		}
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrInvalidDates):
			response.Error(c, http.StatusBadRequest, "INVALID_DATES", "Checkout date must be after checkin date")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update booking")
		}
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Booking deleted"})
}
