// Package backup periodically exports both portfolio collections to a JSON
// file, so the Redis-held state has an offline copy.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/domain"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/service"
)

type Snapshot struct {
	TakenAt     time.Time           `json:"taken_at"`
	Projects    []domain.Project    `json:"projects"`
	Experiences []domain.Experience `json:"experiences"`
}

type Scheduler struct {
	projects    *service.ProjectService
	experiences *service.ExperienceService
	dir         string
	spec        string
	logger      *zap.Logger
	cron        *cron.Cron
}

func NewScheduler(projects *service.ProjectService, experiences *service.ExperienceService, dir, spec string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		projects:    projects,
		experiences: experiences,
		dir:         dir,
		spec:        spec,
		logger:      logger,
	}
}

// Start registers the export job and launches the cron loop.
func (s *Scheduler) Start() error {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		path, err := s.Export(ctx)
		if err != nil {
			s.logger.Error("backup failed", zap.Error(err))
			return
		}
		s.logger.Info("backup written", zap.String("path", path))
	})
	if err != nil {
		return fmt.Errorf("failed to schedule backup: %w", err)
	}

	s.cron = c
	c.Start()
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Export writes a timestamped snapshot of both collections and returns the
// file path.
func (s *Scheduler) Export(ctx context.Context) (string, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return "", err
	}
	experiences, err := s.experiences.List(ctx)
	if err != nil {
		return "", err
	}

	snap := Snapshot{
		TakenAt:     time.Now().UTC(),
		Projects:    projects,
		Experiences: experiences,
	}
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup dir: %w", err)
	}

	path := filepath.Join(s.dir, "portfolio-"+snap.TakenAt.Format("20060102-150405")+".json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return path, nil
}
