package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/cadence/internal/domain"
	"github.com/alexanderramin/cadence/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkstreamRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	proj := testutil.NewTestProject("Platform")
	require.NoError(t, NewSQLiteProjectRepo(database).Create(ctx, proj))

	repo := NewSQLiteWorkstreamRepo(database)
	ws := testutil.NewTestWorkstream(proj.ID, "Infra biweekly",
		testutil.WithCadence(domain.CadenceBiweekly),
		testutil.WithAnchor(testutil.Date("2025-02-03")),
		testutil.WithLead("Alex"))
	require.NoError(t, repo.Create(ctx, ws))

	fetched, err := repo.GetByID(ctx, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, "Infra biweekly", fetched.Name)
	assert.Equal(t, domain.CadenceBiweekly, fetched.Cadence)
	assert.Equal(t, "2025-02-03", domain.FormatDate(fetched.FirstCycleStart))
	assert.Equal(t, "Alex", fetched.Lead)
	assert.Equal(t, proj.ID, fetched.ProjectID)
}

func TestWorkstreamRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteWorkstreamRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkstreamRepo_ListByProject(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	projRepo := NewSQLiteProjectRepo(database)
	repo := NewSQLiteWorkstreamRepo(database)

	p1 := testutil.NewTestProject("One")
	p2 := testutil.NewTestProject("Two")
	require.NoError(t, projRepo.Create(ctx, p1))
	require.NoError(t, projRepo.Create(ctx, p2))

	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkstream(p1.ID, "A")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkstream(p1.ID, "B")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestWorkstream(p2.ID, "C")))

	list, err := repo.ListByProject(ctx, p1.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSettingsRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewSQLiteSettingsRepo(database)

	_, err := repo.Get(ctx, SettingSelectedProject)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Set(ctx, SettingSelectedProject, "p1"))
	require.NoError(t, repo.Set(ctx, SettingSelectedProject, "p2"))

	got, err := repo.Get(ctx, SettingSelectedProject)
	require.NoError(t, err)
	assert.Equal(t, "p2", got, "set overwrites the prior value")
}
