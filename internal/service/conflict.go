package service

import (
	"github.com/michel-adelino/schedule/internal/models"
)

// FindConflicts evaluates a candidate placement against every other
// session on the board and returns one Conflict per overlapping session
// pair that shares at least one dancer. The candidate itself is excluded
// by ID, so re-checking an already-placed session never flags it against
// itself.
//
// The representative dancer on each record is the first shared one in the
// candidate's cast order, and the record names exactly the one other
// routine involved. A dancer shared across three overlapping sessions
// therefore yields three records, one per pairing; the warning sidebar
// counts on that fan-out. Output order follows the input session order.
func FindConflicts(sessions []models.ScheduledRoutine, candidate models.ScheduledRoutine) []models.Conflict {
	var conflicts []models.Conflict

	for _, existing := range sessions {
		if existing.ID == candidate.ID {
			continue
		}
		if !models.Overlaps(candidate.StartTime, candidate.EndTime, existing.StartTime, existing.EndTime) {
			continue
		}
		shared := sharedDancers(candidate.Routine.Dancers, existing.Routine)
		if len(shared) == 0 {
			continue
		}
		conflicts = append(conflicts, models.Conflict{
			DancerID:            shared[0].ID,
			DancerName:          shared[0].Name,
			ConflictingRoutines: []string{existing.Routine.SongTitle},
			TimeSlot:            candidate.StartTime,
		})
	}

	return conflicts
}

// HasConflicts reports whether the candidate placement double-books any
// dancer.
func HasConflicts(sessions []models.ScheduledRoutine, candidate models.ScheduledRoutine) bool {
	return len(FindConflicts(sessions, candidate)) > 0
}

// ConflictingDancers returns the representative dancer names from each
// detected conflict, in detection order.
func ConflictingDancers(sessions []models.ScheduledRoutine, candidate models.ScheduledRoutine) []string {
	conflicts := FindConflicts(sessions, candidate)
	names := make([]string, 0, len(conflicts))
	for _, conflict := range conflicts {
		names = append(names, conflict.DancerName)
	}
	return names
}

// sharedDancers intersects the candidate cast with another routine's cast,
// comparing by dancer ID only, preserving candidate cast order.
func sharedDancers(candidate []models.Dancer, other models.Routine) []models.Dancer {
	var shared []models.Dancer
	for _, dancer := range candidate {
		if other.HasDancer(dancer.ID) {
			shared = append(shared, dancer)
		}
	}
	return shared
}
