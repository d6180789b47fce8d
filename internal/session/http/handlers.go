// Package http exposes the admin session endpoints. Logging in verifies the
// configured password hash and opens the session gate; the caller is then
// expected to revisit the portfolio page with the action parameters it
// wanted gated.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/Folio-25-26J-118/portfolio-backend/internal/session"
)

type Handler struct {
	gate         *session.Gate
	passwordHash string
	limiter      *rate.Limiter
	logger       *zap.Logger
}

func Register(rg *gin.RouterGroup, gate *session.Gate, passwordHash string, logger *zap.Logger) {
	h := &Handler{
		gate:         gate,
		passwordHash: passwordHash,
		// Brute-force damper on a single shared credential.
		limiter: rate.NewLimiter(rate.Limit(1), 5),
		logger:  logger,
	}

	rg.POST("/session", h.login)
	rg.DELETE("/session", h.logout)
}

type loginReq struct {
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	if h.passwordHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "login disabled"})
		return
	}

	if !h.limiter.Allow() {
		c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many attempts"})
		return
	}

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid credentials"})
		return
	}

	if err := h.gate.Open(c.Request.Context()); err != nil {
		h.logger.Error("failed to open session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to open session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.gate.Close(c.Request.Context()); err != nil {
		h.logger.Error("failed to close session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to close session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
