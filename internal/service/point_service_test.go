package service_test

import (
	"context"
	"testing"

	"github.com/ani/point-check-backend/internal/geometry"
	"github.com/ani/point-check-backend/internal/repository/postgres"
	"github.com/ani/point-check-backend/internal/service"
	"github.com/ani/point-check-backend/internal/stats"
	"github.com/ani/point-check-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointService_Check(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	counter := stats.NewCounter(nil)
	polygon := geometry.NewPolygonTracker()
	pointService := service.NewPointService(repos.Point, counter, polygon)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	point, err := pointService.Check(ctx, user, 1, 1, 2)
	require.NoError(t, err)
	assert.True(t, point.Hit)
	assert.Equal(t, user.ID, point.UserID)

	miss, err := pointService.Check(ctx, user, 4, 4, 2)
	require.NoError(t, err)
	assert.False(t, miss.Hit)

	// Both checks were persisted, counted and fed to the polygon tracker.
	points, err := pointService.History(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, points, 2)

	snapshot := pointService.Stats()
	assert.Equal(t, 2, snapshot.TotalPoints)
	assert.Equal(t, 0, snapshot.InvalidPoints)
	assert.Equal(t, 1, snapshot.NotInAreaPoints)
	assert.Equal(t, 2, snapshot.PolygonPoints)
}

func TestPointService_HistoryIsPerUser(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	pointService := service.NewPointService(repos.Point, stats.NewCounter(nil), geometry.NewPolygonTracker())
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().WithUsername("alice").Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().WithUsername("bob").Build(t, testDB.DB)

	_, err := pointService.Check(ctx, alice, 1, 1, 2)
	require.NoError(t, err)
	_, err = pointService.Check(ctx, alice, 2, 2, 2)
	require.NoError(t, err)
	_, err = pointService.Check(ctx, bob, 0, 0, 1)
	require.NoError(t, err)

	alicePoints, err := pointService.History(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, alicePoints, 2)

	bobPoints, err := pointService.History(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobPoints, 1)
	assert.Equal(t, bob.ID, bobPoints[0].UserID)
}
