package projects

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches project routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects", h.create)
	rg.GET("/projects", h.list)
	rg.GET("/projects/detail", h.detail)
	rg.PUT("/projects", h.update)
	rg.DELETE("/projects", h.remove)
}

func (h *Handler) create(c *gin.Context) {
	var p Project
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("owner", p.Owner)
	c.Set("projectTitle", p.Title)

	created, err := h.Svc.Create(c.Request.Context(), p)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrAlreadyExists):
			respond.Error(c, http.StatusConflict, "conflict", "Project already exists", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Error creating project", nil)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, created)
}

func (h *Handler) list(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "owner is required", nil)
		return
	}
	c.Set("owner", owner)

	list, err := h.Svc.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Error fetching projects", nil)
		return
	}
	if list == nil {
		list = []Project{}
	}
	respond.OK(c, list)
}

func (h *Handler) detail(c *gin.Context) {
	owner := c.Query("owner")
	title := c.Query("title")
	if owner == "" || title == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "owner and title are required", nil)
		return
	}
	c.Set("owner", owner)
	c.Set("projectTitle", title)

	p, err := h.Svc.GetByTitle(c.Request.Context(), owner, title)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Project not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Error fetching project", nil)
		return
	}
	respond.OK(c, p)
}

func (h *Handler) update(c *gin.Context) {
	var p Project
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("owner", p.Owner)
	c.Set("projectTitle", p.Title)

	updated, err := h.Svc.Update(c.Request.Context(), p)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Project not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Error updating project", nil)
		}
		return
	}
	respond.OK(c, updated)
}

func (h *Handler) remove(c *gin.Context) {
	owner := c.Query("owner")
	title := c.Query("title")
	if owner == "" || title == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "owner and title are required", nil)
		return
	}
	c.Set("owner", owner)
	c.Set("projectTitle", title)

	if err := h.Svc.Delete(c.Request.Context(), owner, title); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "Project not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Error deleting project", nil)
		return
	}
	respond.OK(c, gin.H{"message": "Project deleted successfully"})
}
