package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/Folio-25-26J-118/portfolio-backend/internal/api/http"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/api/http/middleware"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/kv"
	porthttp "github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/http"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/render"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/service"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/session"
	sessionhttp "github.com/Folio-25-26J-118/portfolio-backend/internal/session/http"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/web"
)

type RouterDeps struct {
	ServiceName       string
	Version           string
	Store             kv.Store
	Gate              *session.Gate
	Projects          *service.ProjectService
	Experiences       *service.ExperienceService
	AdminPasswordHash string
	PendingTTL        time.Duration
	Logger            *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Logger))
	r.SetHTMLTemplate(render.Templates())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(cors.Default())
	porthttp.Register(api, dep.Projects, dep.Experiences)
	sessionhttp.Register(api, dep.Gate, dep.AdminPasswordHash, dep.Logger)

	pages := web.NewHandler(dep.Projects, dep.Experiences, dep.Gate, dep.Store, dep.PendingTTL, dep.Version, dep.Logger)
	pages.Register(r)

	return r
}
