package host

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
	public.GET("/hosts", h.List)
	public.GET("/hosts/:id", h.Get)

	protected.POST("/hosts", h.Create)
	protected.PUT("/hosts/:id", h.Update)
	protected.DELETE("/hosts/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	hosts, err := h.svc.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to fetch hosts")
		return
	}
	if len(hosts) == 0 {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No hosts found")
		return
	}
	response.Success(c, http.StatusOK, hosts)
}

func (h *Handler) Get(c *gin.Context) {
	host, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Host not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to fetch host")
		return
	}
	response.Success(c, http.StatusOK, host)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email, password and username are required")
		return
	}

	host, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			response.Error(c, http.StatusBadRequest, "USERNAME_TAKEN", "A host with this username already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to create host")
		return
	}
	response.Success(c, http.StatusCreated, host)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	host, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Host not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to update host")
		return
	}
	response.Success(c, http.StatusOK, host)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Host not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Failed to delete host")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Host deleted"})
}
