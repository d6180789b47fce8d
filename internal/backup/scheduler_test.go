package backup

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Folio-25-26J-118/portfolio-backend/internal/kv"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/domain"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/repository"
	"github.com/Folio-25-26J-118/portfolio-backend/internal/portfolio/service"
)

func TestExportWritesSnapshot(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := kv.NewRedisStore(client)
	logger := zap.NewNop()
	notifier := service.NopNotifier{}

	projects := service.NewProjectService(repository.NewCollection[domain.Project](store, repository.ProjectsKey), notifier, logger)
	experiences := service.NewExperienceService(repository.NewCollection[domain.Experience](store, repository.ExperiencesKey), notifier, logger)

	ctx := context.Background()
	_, err = projects.Add(ctx, "Alpha", "desc")
	require.NoError(t, err)
	_, err = experiences.Add(ctx, "Acme", "Analyst", "2024", "desc")
	require.NoError(t, err)

	dir := t.TempDir()
	s := NewScheduler(projects, experiences, dir, "0 0 0 * * *", logger)

	path, err := s.Export(ctx)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(raw, &snap))
	assert.Len(t, snap.Projects, 1)
	assert.Len(t, snap.Experiences, 1)
	assert.Equal(t, "Alpha", snap.Projects[0].Title)
	assert.Equal(t, "Acme", snap.Experiences[0].Company)
}
