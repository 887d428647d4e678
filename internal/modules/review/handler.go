package review

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
	public.GET("/reviews", h.List)
	public.GET("/reviews/:id", h.Get)

	protected.POST("/reviews", h.Create)
	protected.PUT("/reviews/:id", h.Update)
	protected.DELETE("/reviews/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	reviews, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to fetch reviews")
		return
	}
	response.Success(c, http.StatusOK, reviews)
}

func (h *Handler) Get(c *gin.Context) {
	rv, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to fetch review")
		return
	}
	response.Success(c, http.StatusOK, rv)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "userId, propertyId, rating and comment are required")
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusBadRequest, "USER_NOT_FOUND", "User does not exist")
		case errors.Is(err, ErrPropertyNotFound):
			response.Error(c, http.StatusBadRequest, "PROPERTY_NOT_FOUND", "Property does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to create review")
		}
		return
	}
	response.Success(c, http.StatusCreated, rv)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update review")
		return
	}
	response.Success(c, http.StatusOK, rv)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete review")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Review deleted"})
}
