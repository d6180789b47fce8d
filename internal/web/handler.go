// Package web serves the rendered portfolio page: the card grids, the
// shared overlay and the form posts behind it, and the load-time action
// router that turns a consumed admin session into an opened overlay.
package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Folio-25-26J-118/portfolio-backend/internal/action"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/kv"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/domain"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/render"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/service"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/session"
)

// pendingActionKey carries a gate-approved overlay action across the
// redirect that strips the query parameters. Single use, short TTL.
const pendingActionKey = "admin:pending-action"

type Handler struct {
	projects    *service.ProjectService
	experiences *service.ExperienceService
	gate        *session.Gate
	store       kv.Store
	pendingTTL  time.Duration
	version     string
	logger      *zap.Logger
}

func NewHandler(
	projects *service.ProjectService,
	experiences *service.ExperienceService,
	gate *session.Gate,
	store kv.Store,
	pendingTTL time.Duration,
	version string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		projects:    projects,
		experiences: experiences,
		gate:        gate,
		store:       store,
		pendingTTL:  pendingTTL,
		version:     version,
		logger:      logger,
	}
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.page)

	r.POST("/projects", h.createProject)
	r.POST("/projects/:id/edit", h.updateProject)
	r.POST("/projects/:id/delete", h.deleteProject)

	r.POST("/experiences", h.createExperience)
	r.POST("/experiences/:id/edit", h.updateExperience)
	r.POST("/experiences/:id/delete", h.deleteExperience)

	r.POST("/contact", h.contact)
}

// page is the load-time entry point. A recognized action token with an open
// session gate is consumed into a one-time pending action, then the request
// is redirected to the bare path so the address ends up without the query
// string. The follow-up render pops the pending action and opens the
// overlay.
func (h *Handler) page(c *gin.Context) {
	ctx := c.Request.Context()
	query := c.Request.URL.Query()

	if act, ok := action.Parse(query); ok {
		allowed, err := h.gate.Consume(ctx)
		if err != nil {
			h.fail(c, "session check failed", err)
			return
		}
		if allowed {
			raw, err := action.Encode(act)
			if err == nil {
				err = h.store.SetTTL(ctx, pendingActionKey, raw, h.pendingTTL)
			}
			if err != nil {
				h.fail(c, "failed to stash pending action", err)
				return
			}
		}
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	overlay, err := h.resolveOverlay(ctx, query.Get("project"), query.Get("experience"))
	if err != nil {
		h.fail(c, "failed to resolve overlay", err)
		return
	}

	h.renderPage(c, overlay, http.StatusOK)
}

func (h *Handler) renderPage(c *gin.Context, overlay *render.Overlay, status int) {
	ctx := c.Request.Context()

	projects, err := h.projects.List(ctx)
	if err != nil {
		h.fail(c, "failed to load projects", err)
		return
	}
	experiences, err := h.experiences.List(ctx)
	if err != nil {
		h.fail(c, "failed to load experiences", err)
		return
	}

	c.HTML(status, "page", render.Page{
		Projects:    projects,
		Experiences: experiences,
		Overlay:     overlay,
		Notice:      popNotice(ctx, h.store),
		Version:     h.version,
	})
}

// resolveOverlay decides what the shared overlay shows: a pending gated
// action wins, then an ungated detail view. A lookup miss leaves the
// overlay closed.
func (h *Handler) resolveOverlay(ctx context.Context, projectParam, experienceParam string) (*render.Overlay, error) {
	raw, found, err := h.store.GetDel(ctx, pendingActionKey)
	if err != nil {
		return nil, err
	}
	if found {
		act, err := action.Decode(raw)
		if err != nil {
			h.logger.Warn("dropping unreadable pending action", zap.Error(err))
			return nil, nil
		}
		return h.overlayForAction(ctx, act)
	}

	if projectParam != "" {
		id, err := strconv.ParseInt(projectParam, 10, 64)
		if err != nil {
			return nil, nil
		}
		p, err := h.projects.Get(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &render.Overlay{Mode: render.ProjectDetail, Project: &p}, nil
	}

	if experienceParam != "" {
		id, err := strconv.ParseInt(experienceParam, 10, 64)
		if err != nil {
			return nil, nil
		}
		e, err := h.experiences.Get(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &render.Overlay{Mode: render.ExperienceDetail, Experience: &e}, nil
	}

	return nil, nil
}

func (h *Handler) overlayForAction(ctx context.Context, act action.Action) (*render.Overlay, error) {
	switch act.Kind {
	case action.AddProject:
		return &render.Overlay{Mode: render.ProjectAdd}, nil

	case action.EditProject:
		p, err := h.projects.Get(ctx, act.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &render.Overlay{
			Mode:    render.ProjectEdit,
			Project: &p,
			Form:    map[string]string{"title": p.Title, "description": p.Description},
		}, nil

	case action.DeleteProject:
		p, err := h.projects.Get(ctx, act.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &render.Overlay{Mode: render.ProjectDelete, Project: &p}, nil

	case action.AddExperience:
		return &render.Overlay{Mode: render.ExperienceAdd}, nil

	case action.EditExperience:
		e, err := h.experiences.Get(ctx, act.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &render.Overlay{
			Mode:       render.ExperienceEdit,
			Experience: &e,
			Form: map[string]string{
				"company":     e.Company,
				"role":        e.Role,
				"duration":    e.Duration,
				"description": e.Description,
			},
		}, nil

	case action.DeleteExperience:
		e, err := h.experiences.Get(ctx, act.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &render.Overlay{Mode: render.ExperienceDelete, Experience: &e}, nil
	}

	return nil, nil
}

func (h *Handler) createProject(c *gin.Context) {
	form := map[string]string{
		"title":       c.PostForm("title"),
		"description": c.PostForm("description"),
	}

	_, err := h.projects.Add(c.Request.Context(), form["title"], form["description"])
	if errors.Is(err, domain.ErrEmptyField) {
		// Keep the overlay open with the user's input intact.
		h.renderPage(c, &render.Overlay{Mode: render.ProjectAdd, Form: form}, http.StatusOK)
		return
	}
	if err != nil {
		h.fail(c, "failed to add project", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) updateProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	form := map[string]string{
		"title":       c.PostForm("title"),
		"description": c.PostForm("description"),
	}

	_, _, err = h.projects.Update(c.Request.Context(), id, form["title"], form["description"])
	if errors.Is(err, domain.ErrEmptyField) {
		p, getErr := h.projects.Get(c.Request.Context(), id)
		if getErr != nil {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		h.renderPage(c, &render.Overlay{Mode: render.ProjectEdit, Project: &p, Form: form}, http.StatusOK)
		return
	}
	if err != nil {
		h.fail(c, "failed to update project", err)
		return
	}
	// A lookup miss falls through silently, same as a successful update.
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if _, err := h.projects.Remove(c.Request.Context(), id); err != nil {
		h.fail(c, "failed to delete project", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) createExperience(c *gin.Context) {
	form := map[string]string{
		"company":     c.PostForm("company"),
		"role":        c.PostForm("role"),
		"duration":    c.PostForm("duration"),
		"description": c.PostForm("description"),
	}

	_, err := h.experiences.Add(c.Request.Context(), form["company"], form["role"], form["duration"], form["description"])
	if errors.Is(err, domain.ErrEmptyField) {
		h.renderPage(c, &render.Overlay{Mode: render.ExperienceAdd, Form: form}, http.StatusOK)
		return
	}
	if err != nil {
		h.fail(c, "failed to add experience", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) updateExperience(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	form := map[string]string{
		"company":     c.PostForm("company"),
		"role":        c.PostForm("role"),
		"duration":    c.PostForm("duration"),
		"description": c.PostForm("description"),
	}

	_, _, err = h.experiences.Update(c.Request.Context(), id, form["company"], form["role"], form["duration"], form["description"])
	if errors.Is(err, domain.ErrEmptyField) {
		e, getErr := h.experiences.Get(c.Request.Context(), id)
		if getErr != nil {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		h.renderPage(c, &render.Overlay{Mode: render.ExperienceEdit, Experience: &e, Form: form}, http.StatusOK)
		return
	}
	if err != nil {
		h.fail(c, "failed to update experience", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) deleteExperience(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if _, err := h.experiences.Remove(c.Request.Context(), id); err != nil {
		h.fail(c, "failed to delete experience", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// contact accepts the message and acknowledges it locally. Nothing is
// transmitted anywhere; this mirrors the original's stubbed behavior.
func (h *Handler) contact(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	message := c.PostForm("message")
	if name == "" || email == "" || message == "" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	h.logger.Info("contact form submitted", zap.String("name", name))
	if err := h.store.SetTTL(c.Request.Context(), noticeKey, "Thank you for your message! I will get back to you soon.", noticeTTL); err != nil {
		h.logger.Warn("failed to store notice", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) fail(c *gin.Context, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	c.String(http.StatusInternalServerError, "something went wrong")
}
