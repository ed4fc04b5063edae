package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/sitehero/sitehero/internal/report"
	"github.com/sitehero/sitehero/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestReportDefinitionRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertProject(t, db, "p1", "tenant1")

	repo := NewReportDefinitionRepository(db)
	def := &report.Definition{
		ID:        "def1",
		ProjectID: "p1",
		Name:      "Open high-priority RFIs",
		Source:    report.SourceRFIs,
		Columns:   []string{"number", "title", "due"},
		Status:    "open",
		Priority:  "high",
		CreatedAt: time.Now(),
	}

	require.NoError(t, repo.Create(ctx, "tenant1", def))

	loaded, err := repo.Get(ctx, "tenant1", "def1")
	require.NoError(t, err)
	require.Equal(t, "tenant1", loaded.TenantID)
	require.Equal(t, report.SourceRFIs, loaded.Source)
	require.Equal(t, []string{"number", "title", "due"}, loaded.Columns)
	require.Equal(t, "open", loaded.Status)
	require.Equal(t, "high", loaded.Priority)
}

func TestReportDefinitionRepository_EmptyFilters(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertProject(t, db, "p1", "tenant1")

	repo := NewReportDefinitionRepository(db)
	def := &report.Definition{
		ID:        "def1",
		ProjectID: "p1",
		Name:      "All punch items",
		Source:    report.SourcePunchItems,
		Columns:   []string{"number", "title"},
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, "tenant1", def))

	loaded, err := repo.Get(ctx, "tenant1", "def1")
	require.NoError(t, err)
	require.Empty(t, loaded.Status)
	require.Empty(t, loaded.Priority)
}

func TestReportDefinitionRepository_ListDelete(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertProject(t, db, "p1", "tenant1")

	repo := NewReportDefinitionRepository(db)
	for _, id := range []string{"def1", "def2"} {
		def := &report.Definition{
			ID:        id,
			ProjectID: "p1",
			Name:      id,
			Source:    report.SourceDailyReports,
			Columns:   []string{"date", "weather"},
			CreatedAt: time.Now(),
		}
		require.NoError(t, repo.Create(ctx, "tenant1", def))
	}

	defs, err := repo.List(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, defs, 2)

	require.NoError(t, repo.Delete(ctx, "tenant1", "def1"))
	require.Equal(t, repository.ErrNotFound, repo.Delete(ctx, "tenant1", "def1"))

	defs, err = repo.List(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, defs, 1)
}
