package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michel-adelino/schedule/internal/models"
	"github.com/michel-adelino/schedule/internal/repository"
	appErrors "github.com/michel-adelino/schedule/pkg/errors"
)

// csvLines splits CSV output into lines regardless of the writer's line
// terminator.
func csvLines(data []byte) []string {
	normalized := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(strings.TrimSpace(normalized), "\n")
}

func newExportFixture(t *testing.T) *ExportService {
	t.Helper()
	ctx := context.Background()

	store := repository.NewStore()
	dancers := repository.NewDancerRepository(store)
	schedules := repository.NewScheduleRepository(store)
	rooms := repository.NewRoomRepository(store)
	require.NoError(t, rooms.InitRooms(ctx, 2, 2))

	for _, dancer := range []models.Dancer{alice, bob} {
		d := dancer
		require.NoError(t, dancers.Create(ctx, &d))
	}

	thunder := routineWith("routine-1", "Thunder", 60, alice, bob)
	thunder.Teacher = models.Teacher{ID: "teacher-1", Name: "Ms. Priya"}
	lightning := routineWith("routine-2", "Lightning", 60, bob)
	lightning.Teacher = models.Teacher{ID: "teacher-1", Name: "Ms. Priya"}

	// Insert out of board order so sorting is observable.
	s1 := sessionAt("scheduled-1", lightning, "room-2", models.TimeSlot{Day: models.Wednesday, Hour: 9})
	s2 := sessionAt("scheduled-2", thunder, "room-1", models.TimeSlot{Day: models.Monday, Hour: 14, Minute: 30})
	require.NoError(t, schedules.Create(ctx, &s1))
	require.NoError(t, schedules.Create(ctx, &s2))

	return NewExportService(schedules, rooms, dancers, nil)
}

func TestExportServiceRenderScheduleCSV(t *testing.T) {
	svc := newExportFixture(t)

	result, err := svc.RenderSchedule(context.Background(), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "schedule.csv", result.Filename)

	lines := csvLines(result.Data)
	require.Len(t, lines, 3)
	assert.Equal(t, "Day,Start,End,Room,Routine,Teacher,Dancers", lines[0])
	// Monday sorts before Wednesday regardless of insertion order.
	assert.Equal(t, "Monday,2:30 PM,3:30 PM,Studio 1,Thunder,Ms. Priya,\"Alice, Bob\"", lines[1])
	assert.Equal(t, "Wednesday,9:00 AM,10:00 AM,Studio 2,Lightning,Ms. Priya,Bob", lines[2])
}

func TestExportServiceRenderScheduleText(t *testing.T) {
	svc := newExportFixture(t)

	result, err := svc.RenderSchedule(context.Background(), FormatText)
	require.NoError(t, err)
	assert.Equal(t, "text/plain; charset=utf-8", result.ContentType)
	assert.Equal(t, "schedule.txt", result.Filename)

	text := string(result.Data)
	assert.True(t, strings.HasPrefix(text, "Weekly Schedule\n"))
	assert.Contains(t, text, "Thunder")
	assert.Contains(t, text, "Lightning")

	// The empty format defaults to text.
	result, err = svc.RenderSchedule(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "schedule.txt", result.Filename)
}

func TestExportServiceRenderSchedulePDF(t *testing.T) {
	svc := newExportFixture(t)

	result, err := svc.RenderSchedule(context.Background(), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, "schedule.pdf", result.Filename)
	assert.True(t, strings.HasPrefix(string(result.Data), "%PDF"))
}

func TestExportServiceRenderDancerSchedule(t *testing.T) {
	svc := newExportFixture(t)

	result, err := svc.RenderDancerSchedule(context.Background(), "dancer-1", FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "dancer-schedule.csv", result.Filename)

	lines := csvLines(result.Data)
	// Header plus Alice's single session; Bob's solo routine is filtered out.
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Thunder")
}

func TestExportServiceRenderDancerScheduleUnknownDancer(t *testing.T) {
	svc := newExportFixture(t)

	_, err := svc.RenderDancerSchedule(context.Background(), "missing", FormatCSV)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	svc := newExportFixture(t)

	_, err := svc.RenderSchedule(context.Background(), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
