package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michel-adelino/schedule/internal/models"
	"github.com/michel-adelino/schedule/internal/repository"
	"github.com/michel-adelino/schedule/internal/service"
)

func TestLoadSeedsDemoBoard(t *testing.T) {
	ctx := context.Background()
	store := repository.NewStore()
	repos := Repositories{
		Dancers:    repository.NewDancerRepository(store),
		Routines:   repository.NewRoutineRepository(store),
		References: repository.NewReferenceRepository(store),
		Schedules:  repository.NewScheduleRepository(store),
	}

	require.NoError(t, Load(ctx, repos, nil))

	dancers, err := repos.Dancers.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, dancers, 10)

	_, total, err := repos.Routines.List(ctx, models.RoutineFilter{})
	require.NoError(t, err)
	assert.Equal(t, 7, total)

	sessions, err := repos.Schedules.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 7)

	// The demo board ships with exactly one double-booking: Emma Rodriguez
	// on Tuesday 2 PM, visible from both sessions.
	var conflicts []models.Conflict
	for _, session := range sessions {
		conflicts = append(conflicts, service.FindConflicts(sessions, session)...)
	}
	require.Len(t, conflicts, 2)
	for _, conflict := range conflicts {
		assert.Equal(t, "Emma Rodriguez", conflict.DancerName)
		assert.Equal(t, models.TimeSlot{Day: models.Tuesday, Hour: 14}, conflict.TimeSlot)
	}

	// Placement credited each routine's rollup.
	routine, err := repos.Routines.FindByID(ctx, "routine-1")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, routine.ScheduledHours, 1e-9)
}
