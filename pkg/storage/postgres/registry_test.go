package postgres_test

import (
	"context"
	"testing"

	"countervalidator/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Registry(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	p1 := domain.Platform{
		ID:   uuid.New(),
		Name: "Beta platform",
		Reports: []domain.Report{
			{ReportID: "TR", CounterRelease: "5"},
			{ReportID: "PR", CounterRelease: "5"},
		},
	}
	p2 := domain.Platform{ID: uuid.New(), Name: "Alpha platform"}
	require.NoError(t, pgSQL.UpsertPlatform(ctx, p1))
	require.NoError(t, pgSQL.UpsertPlatform(ctx, p2))

	yes := true
	s1 := domain.SushiService{
		ID: uuid.New(), CounterRelease: "5", URL: "https://sushi.example.com/r5",
		PlatformID: &p1.ID, APIKeyRequired: &yes,
	}
	require.NoError(t, pgSQL.UpsertSushiService(ctx, s1))

	platforms, err := pgSQL.Platforms(ctx)
	require.NoError(t, err)
	require.Len(t, platforms, 2)
	require.Equal(t, "Alpha platform", platforms[0].Name)

	detail, err := pgSQL.PlatformByID(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, detail.Reports, 2)
	require.Equal(t, "PR", detail.Reports[0].ReportID)
	require.Equal(t, []uuid.UUID{s1.ID}, detail.SushiServices)

	// replacing the links keeps only the new report set
	p1.Name = "Beta renamed"
	p1.Reports = []domain.Report{{ReportID: "DR", CounterRelease: "5.1"}}
	require.NoError(t, pgSQL.UpsertPlatform(ctx, p1))
	detail, err = pgSQL.PlatformByID(ctx, p1.ID)
	require.NoError(t, err)
	require.Equal(t, "Beta renamed", detail.Name)
	require.Equal(t, []domain.Report{{ReportID: "DR", CounterRelease: "5.1"}}, detail.Reports)

	svc, err := pgSQL.SushiServiceByID(ctx, s1.ID)
	require.NoError(t, err)
	require.NotNil(t, svc.APIKeyRequired)
	require.True(t, *svc.APIKeyRequired)
	require.Nil(t, svc.RequestorIDRequired)

	missing, err := pgSQL.PlatformByID(ctx, uuid.New())
	require.NoError(t, err)
	require.Nil(t, missing)

	require.NoError(t, pgSQL.DeprecateUnseen(ctx, []uuid.UUID{p1.ID}, nil))
	platforms, err = pgSQL.Platforms(ctx)
	require.NoError(t, err)
	for _, p := range platforms {
		require.Equal(t, p.ID == p2.ID, p.Deprecated, p.Name)
	}
	services, err := pgSQL.SushiServices(ctx)
	require.NoError(t, err)
	require.Len(t, services, 1)
	require.True(t, services[0].Deprecated)
}
