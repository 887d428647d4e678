package property

import (
	"errors"
	"net/http"
	"strconv"

	"staybook/internal/pkg/response"
	"staybook/internal/pkg/validator"
	"staybook/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/properties", h.List)
	public.GET("/properties/:id", h.Get)

	protected.POST("/properties", h.Create)
	protected.PUT("/properties/:id", h.Update)
	protected.DELETE("/properties/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	filter := repository.PropertyFilter{
		Location: c.Query("location"),
	}
	if raw := c.Query("pricePerNight"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_FILTER", "pricePerNight must be a number")
			return
		}
		filter.PricePerNight = &price
	}

	properties, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to fetch properties")
		return
	}
	response.Success(c, http.StatusOK, properties)
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to fetch property")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Required fields are missing", fields)
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrHostNotFound) {
			response.Error(c, http.StatusBadRequest, "HOST_NOT_FOUND", "Host does not exist")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to create property")
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field values", fields)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update property")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete property")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Property deleted"})
}
