package amenity

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
	public.GET("/amenities", h.List)
	public.GET("/amenities/:id", h.Get)

	protected.POST("/amenities", h.Create)
	protected.PUT("/amenities/:id", h.Update)
	protected.DELETE("/amenities/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	amenities, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to fetch amenities")
		return
	}
	response.Success(c, http.StatusOK, amenities)
}

func (h *Handler) Get(c *gin.Context) {
	a, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Amenity not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to fetch amenity")
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) Create(c *gin.Context) {
	var req AmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	a, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			response.Error(c, http.StatusBadRequest, "ALREADY_EXISTS", "An amenity with this name already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to create amenity")
		return
	}
	response.Success(c, http.StatusCreated, a)
}

func (h *Handler) Update(c *gin.Context) {
	var req AmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	a, err := h.svc.Update(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Amenity not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update amenity")
		return
	}
	response.Success(c, http.StatusOK, a)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Amenity not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete amenity")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Amenity deleted"})
}
