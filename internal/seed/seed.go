// Package seed loads the demo roster, catalog and board used in
// development. Production deployments run with ENABLE_SEED_DATA=false and
// start from an empty store.
package seed

import (
	"context"

	"go.uber.org/zap"

	"github.com/michel-adelino/schedule/internal/models"
	"github.com/michel-adelino/schedule/internal/repository"
)

// Repositories bundles the stores the seeder writes into.
type Repositories struct {
	Dancers    *repository.DancerRepository
	Routines   *repository.RoutineRepository
	References *repository.ReferenceRepository
	Schedules  *repository.ScheduleRepository
}

// Load populates the store with the demo studio. The board includes a
// deliberate double-booking (Emma Rodriguez on Tuesday 2 PM) so conflict
// highlighting is visible out of the box.
func Load(ctx context.Context, repos Repositories, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, dancer := range dancers() {
		d := dancer
		if err := repos.Dancers.Create(ctx, &d); err != nil {
			return err
		}
	}
	for _, teacher := range teachers() {
		if err := repos.References.AddTeacher(ctx, teacher); err != nil {
			return err
		}
	}
	for _, genre := range genres() {
		if err := repos.References.AddGenre(ctx, genre); err != nil {
			return err
		}
	}

	routines := routines()
	for i := range routines {
		if err := repos.Routines.Create(ctx, &routines[i]); err != nil {
			return err
		}
	}

	byID := make(map[string]models.Routine, len(routines))
	for _, routine := range routines {
		byID[routine.ID] = routine
	}
	for _, placement := range placements() {
		routine := byID[placement.routineID]
		session := models.ScheduledRoutine{
			ID:        placement.id,
			RoutineID: routine.ID,
			Routine:   routine,
			RoomID:    placement.roomID,
			StartTime: placement.start,
			EndTime:   placement.start.AddMinutes(routine.Duration),
			Duration:  routine.Duration,
		}
		if err := repos.Schedules.Create(ctx, &session); err != nil {
			return err
		}
	}

	logger.Info("seed data loaded",
		zap.Int("dancers", len(dancers())),
		zap.Int("routines", len(routines)),
		zap.Int("sessions", len(placements())),
	)
	return nil
}

func dancers() []models.Dancer {
	return []models.Dancer{
		{ID: "dancer-1", Name: "Sarah Johnson", Email: "sarah.johnson@email.com", Level: models.LevelAdvanced, Genres: []string{"ballet", "contemporary"}},
		{ID: "dancer-2", Name: "Mike Chen", Email: "mike.chen@email.com", Level: models.LevelIntermediate, Genres: []string{"hip-hop", "jazz"}},
		{ID: "dancer-3", Name: "Emma Rodriguez", Email: "emma.rodriguez@email.com", Level: models.LevelAdvanced, Genres: []string{"ballet", "contemporary", "jazz"}},
		{ID: "dancer-4", Name: "Alex Thompson", Email: "alex.thompson@email.com", Level: models.LevelBeginner, Genres: []string{"hip-hop"}},
		{ID: "dancer-5", Name: "Zoe Williams", Email: "zoe.williams@email.com", Level: models.LevelIntermediate, Genres: []string{"jazz", "tap"}},
		{ID: "dancer-6", Name: "Jordan Kim", Email: "jordan.kim@email.com", Level: models.LevelAdvanced, Genres: []string{"contemporary", "jazz"}},
		{ID: "dancer-7", Name: "Maya Patel", Email: "maya.patel@email.com", Level: models.LevelIntermediate, Genres: []string{"ballet", "contemporary"}},
		{ID: "dancer-8", Name: "Ryan Davis", Email: "ryan.davis@email.com", Level: models.LevelBeginner, Genres: []string{"hip-hop", "jazz"}},
		{ID: "dancer-9", Name: "Luna Martinez", Email: "luna.martinez@email.com", Level: models.LevelAdvanced, Genres: []string{"ballet", "tap"}},
		{ID: "dancer-10", Name: "Kai Johnson", Email: "kai.johnson@email.com", Level: models.LevelIntermediate, Genres: []string{"contemporary", "jazz"}},
	}
}

func teachers() []models.Teacher {
	return []models.Teacher{
		{ID: "teacher-1", Name: "Amanda Foster", Email: "amanda@studio.com"},
		{ID: "teacher-2", Name: "Carlos Rivera", Email: "carlos@studio.com"},
		{ID: "teacher-3", Name: "Jen Nakamura", Email: "jen@studio.com"},
		{ID: "teacher-4", Name: "Marcus Lee", Email: "marcus@studio.com"},
	}
}

func genres() []models.Genre {
	return []models.Genre{
		{ID: "genre-1", Name: "Ballet", Color: "#ec4899"},
		{ID: "genre-2", Name: "Jazz", Color: "#f59e0b"},
		{ID: "genre-3", Name: "Contemporary", Color: "#8b5cf6"},
		{ID: "genre-4", Name: "Hip-Hop", Color: "#10b981"},
		{ID: "genre-5", Name: "Tap", Color: "#3b82f6"},
	}
}

func routines() []models.Routine {
	ds := dancers()
	ts := teachers()
	gs := genres()

	pick := func(indexes ...int) []models.Dancer {
		out := make([]models.Dancer, 0, len(indexes))
		for _, i := range indexes {
			out = append(out, ds[i])
		}
		return out
	}

	return []models.Routine{
		{ID: "routine-1", SongTitle: "Swan Lake Variation", Dancers: pick(0, 2, 6), Teacher: ts[0], Genre: gs[0], Duration: 60, Color: gs[0].Color},
		{ID: "routine-2", SongTitle: "Uptown Funk", Dancers: pick(1, 3, 7), Teacher: ts[1], Genre: gs[3], Duration: 60, Color: gs[3].Color},
		{ID: "routine-3", SongTitle: "Golden Hour", Dancers: pick(5, 9), Teacher: ts[2], Genre: gs[2], Duration: 60, Color: gs[2].Color},
		{ID: "routine-4", SongTitle: "Sing Sing Sing", Dancers: pick(4, 1), Teacher: ts[3], Genre: gs[1], Duration: 60, Color: gs[1].Color},
		{ID: "routine-5", SongTitle: "Shuffle Off to Buffalo", Dancers: pick(8, 4), Teacher: ts[3], Genre: gs[4], Duration: 60, Color: gs[4].Color},
		{ID: "routine-6", SongTitle: "Moonlight", Dancers: pick(2, 6), Teacher: ts[2], Genre: gs[2], Duration: 60, Color: gs[2].Color},
		{ID: "routine-7", SongTitle: "All That Jazz", Dancers: pick(2, 5, 9), Teacher: ts[3], Genre: gs[1], Duration: 60, Color: gs[1].Color},
	}
}

type placement struct {
	id        string
	routineID string
	roomID    string
	start     models.TimeSlot
}

func placements() []placement {
	return []placement{
		{id: "scheduled-1", routineID: "routine-1", roomID: "room-1", start: models.TimeSlot{Day: models.Monday, Hour: 10}},
		{id: "scheduled-2", routineID: "routine-2", roomID: "room-2", start: models.TimeSlot{Day: models.Monday, Hour: 11}},
		{id: "scheduled-3", routineID: "routine-3", roomID: "room-3", start: models.TimeSlot{Day: models.Monday, Hour: 14}},
		{id: "scheduled-4", routineID: "routine-4", roomID: "room-1", start: models.TimeSlot{Day: models.Tuesday, Hour: 10}},
		{id: "scheduled-5", routineID: "routine-5", roomID: "room-2", start: models.TimeSlot{Day: models.Tuesday, Hour: 11}},
		// Emma Rodriguez dances in both of these; they overlap on purpose.
		{id: "scheduled-6", routineID: "routine-6", roomID: "room-4", start: models.TimeSlot{Day: models.Tuesday, Hour: 14}},
		{id: "scheduled-7", routineID: "routine-7", roomID: "room-3", start: models.TimeSlot{Day: models.Tuesday, Hour: 14}},
	}
}
