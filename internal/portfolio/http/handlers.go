// Package http exposes the JSON CRUD API over both portfolio collections.
// The page flow stays silent on lookup misses; the API reports them as 404s.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/domain"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/service"
)

type Handler struct {
	projects    *service.ProjectService
	experiences *service.ExperienceService
}

func Register(rg *gin.RouterGroup, projects *service.ProjectService, experiences *service.ExperienceService) {
	h := &Handler{projects: projects, experiences: experiences}

	pr := rg.Group("/projects")
	pr.GET("", h.listProjects)
	pr.POST("", h.createProject)
	pr.GET("/:id", h.getProject)
	pr.PUT("/:id", h.updateProject)
	pr.DELETE("/:id", h.deleteProject)

	ex := rg.Group("/experiences")
	ex.GET("", h.listExperiences)
	ex.POST("", h.createExperience)
	ex.GET("/:id", h.getExperience)
	ex.PUT("/:id", h.updateExperience)
	ex.DELETE("/:id", h.deleteExperience)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) listProjects(c *gin.Context) {
	items, err := h.projects.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) createProject(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.projects.Add(c.Request.Context(), req.Title, req.Description)
	if errors.Is(err, domain.ErrEmptyField) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) getProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.projects.Get(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) updateProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, found, err := h.projects.Update(c.Request.Context(), id, req.Title, req.Description)
	if errors.Is(err, domain.ErrEmptyField) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	removed, err := h.projects.Remove(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) listExperiences(c *gin.Context) {
	items, err := h.experiences.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "experiences": items})
}

func (h *Handler) createExperience(c *gin.Context) {
	var req experienceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	e, err := h.experiences.Add(c.Request.Context(), req.Company, req.Role, req.Duration, req.Description)
	if errors.Is(err, domain.ErrEmptyField) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "experience": e})
}

func (h *Handler) getExperience(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	e, err := h.experiences.Get(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "experience not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "experience": e})
}

func (h *Handler) updateExperience(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req experienceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	e, found, err := h.experiences.Update(c.Request.Context(), id, req.Company, req.Role, req.Duration, req.Description)
	if errors.Is(err, domain.ErrEmptyField) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "experience not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "experience": e})
}

func (h *Handler) deleteExperience(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	removed, err := h.experiences.Remove(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "experience not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
