// Package service holds the two portfolio CRUD services. They are
// deliberately the same shape: two independent collections with identical
// lifecycles, differing only in their fields.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/domain"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/repository"
)

// idAllocAttempts bounds the collision bump when two entities would get the
// same millisecond id. UI-driven creation can't collide; seeding and tests
// can.
const idAllocAttempts = 5

// allocateID hands out the current unix-millisecond instant, bumping by one
// while the id is already taken.
func allocateID[T domain.Entity](ctx context.Context, col *repository.Collection[T], now time.Time) (int64, error) {
	id := now.UnixMilli()
	for i := 0; i < idAllocAttempts; i++ {
		taken, err := col.ContainsID(ctx, id)
		if err != nil {
			return 0, err
		}
		if !taken {
			return id, nil
		}
		id++
	}
	return 0, fmt.Errorf("failed to allocate unique id")
}

type ProjectService struct {
	col      *repository.Collection[domain.Project]
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewProjectService(col *repository.Collection[domain.Project], notifier Notifier, logger *zap.Logger) *ProjectService {
	return &ProjectService{col: col, notifier: notifier, logger: logger, now: time.Now}
}

// Bootstrap seeds the default projects on first run only.
func (s *ProjectService) Bootstrap(ctx context.Context) error {
	return s.col.EnsureSeed(ctx, repository.DefaultProjects(s.now()))
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.col.List(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id int64) (domain.Project, error) {
	p, found, err := s.col.GetByID(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	if !found {
		return domain.Project{}, domain.ErrNotFound
	}
	return p, nil
}

func (s *ProjectService) Add(ctx context.Context, title, description string) (domain.Project, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return domain.Project{}, domain.ErrEmptyField
	}

	id, err := allocateID(ctx, s.col, s.now())
	if err != nil {
		return domain.Project{}, err
	}

	p := domain.Project{ID: id, Title: title, Description: description}
	if err := s.col.Insert(ctx, p); err != nil {
		return domain.Project{}, err
	}

	s.logger.Info("project added", zap.Int64("id", p.ID))
	s.notifier.Notify(ctx, "Project added successfully!")
	return p, nil
}

// Update overwrites title and description of the project with the given id.
// A lookup miss is not an error: found reports whether anything changed.
func (s *ProjectService) Update(ctx context.Context, id int64, title, description string) (domain.Project, bool, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return domain.Project{}, false, domain.ErrEmptyField
	}

	p, found, err := s.col.Update(ctx, id, func(p *domain.Project) {
		p.Title = title
		p.Description = description
	})
	if err != nil || !found {
		return domain.Project{}, found, err
	}

	s.logger.Info("project updated", zap.Int64("id", id))
	s.notifier.Notify(ctx, "Project updated successfully!")
	return p, true, nil
}

func (s *ProjectService) Remove(ctx context.Context, id int64) (bool, error) {
	removed, err := s.col.Remove(ctx, id)
	if err != nil || !removed {
		return removed, err
	}

	s.logger.Info("project deleted", zap.Int64("id", id))
	s.notifier.Notify(ctx, "Project deleted successfully!")
	return true, nil
}

type ExperienceService struct {
	col      *repository.Collection[domain.Experience]
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func NewExperienceService(col *repository.Collection[domain.Experience], notifier Notifier, logger *zap.Logger) *ExperienceService {
	return &ExperienceService{col: col, notifier: notifier, logger: logger, now: time.Now}
}

func (s *ExperienceService) Bootstrap(ctx context.Context) error {
	return s.col.EnsureSeed(ctx, repository.DefaultExperiences(s.now()))
}

func (s *ExperienceService) List(ctx context.Context) ([]domain.Experience, error) {
	return s.col.List(ctx)
}

func (s *ExperienceService) Get(ctx context.Context, id int64) (domain.Experience, error) {
	e, found, err := s.col.GetByID(ctx, id)
	if err != nil {
		return domain.Experience{}, err
	}
	if !found {
		return domain.Experience{}, domain.ErrNotFound
	}
	return e, nil
}

func (s *ExperienceService) Add(ctx context.Context, company, role, duration, description string) (domain.Experience, error) {
	company = strings.TrimSpace(company)
	role = strings.TrimSpace(role)
	duration = strings.TrimSpace(duration)
	description = strings.TrimSpace(description)
	if company == "" || role == "" || duration == "" || description == "" {
		return domain.Experience{}, domain.ErrEmptyField
	}

	id, err := allocateID(ctx, s.col, s.now())
	if err != nil {
		return domain.Experience{}, err
	}

	e := domain.Experience{ID: id, Company: company, Role: role, Duration: duration, Description: description}
	if err := s.col.Insert(ctx, e); err != nil {
		return domain.Experience{}, err
	}

	s.logger.Info("experience added", zap.Int64("id", e.ID))
	s.notifier.Notify(ctx, "Experience added successfully!")
	return e, nil
}

func (s *ExperienceService) Update(ctx context.Context, id int64, company, role, duration, description string) (domain.Experience, bool, error) {
	company = strings.TrimSpace(company)
	role = strings.TrimSpace(role)
	duration = strings.TrimSpace(duration)
	description = strings.TrimSpace(description)
	if company == "" || role == "" || duration == "" || description == "" {
		return domain.Experience{}, false, domain.ErrEmptyField
	}

	e, found, err := s.col.Update(ctx, id, func(e *domain.Experience) {
		e.Company = company
		e.Role = role
		e.Duration = duration
		e.Description = description
	})
	if err != nil || !found {
		return domain.Experience{}, found, err
	}

	s.logger.Info("experience updated", zap.Int64("id", id))
	s.notifier.Notify(ctx, "Experience updated successfully!")
	return e, true, nil
}

func (s *ExperienceService) Remove(ctx context.Context, id int64) (bool, error) {
	removed, err := s.col.Remove(ctx, id)
	if err != nil || !removed {
		return removed, err
	}

	s.logger.Info("experience deleted", zap.Int64("id", id))
	s.notifier.Notify(ctx, "Experience deleted successfully!")
	return true, nil
}
