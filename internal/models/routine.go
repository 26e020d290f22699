package models

// Routine is a catalog entry: a dance number with its cast, teacher, genre
// and duration. ScheduledHours is a derived rollup kept equal to the sum of
// durations (in hours) of all sessions currently referencing the routine;
// the schedule store maintains it on every add/delete.
type Routine struct {
	ID             string   `json:"id"`
	SongTitle      string   `json:"song_title"`
	Dancers        []Dancer `json:"dancers"`
	Teacher        Teacher  `json:"teacher"`
	Genre          Genre    `json:"genre"`
	Duration       int      `json:"duration"`
	Notes          string   `json:"notes,omitempty"`
	ScheduledHours float64  `json:"scheduled_hours"`
	Color          string   `json:"color"`
}

// HasDancer reports whether the routine casts the dancer, compared by ID.
func (r Routine) HasDancer(dancerID string) bool {
	for _, d := range r.Dancers {
		if d.ID == dancerID {
			return true
		}
	}
	return false
}

// RoutineFilter describes query params for listing the catalog.
type RoutineFilter struct {
	Query     string
	TeacherID string
	GenreID   string
	Page      int
	PageSize  int
}
