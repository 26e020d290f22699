package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/michel-adelino/schedule/internal/models"
	"github.com/michel-adelino/schedule/internal/repository"
	appErrors "github.com/michel-adelino/schedule/pkg/errors"
	"github.com/michel-adelino/schedule/pkg/export"
)

// Export formats accepted by the export endpoints.
const (
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatText = "text"
)

// ExportResult is a rendered document ready to be served.
type ExportResult struct {
	ContentType string
	Filename    string
	Data        []byte
}

// ExportService renders the board and per-dancer schedules into portable
// documents. It is a read-only consumer of the store; nothing here can
// mutate the schedule.
type ExportService struct {
	sessions sessionLister
	rooms    roomLister
	dancers  dancerFinder

	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	text   *export.TextExporter
	logger *zap.Logger
}

// NewExportService instantiates ExportService.
func NewExportService(sessions sessionLister, rooms roomLister, dancers dancerFinder, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		sessions: sessions,
		rooms:    rooms,
		dancers:  dancers,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		text:     export.NewTextExporter(),
		logger:   logger,
	}
}

// RenderSchedule renders the full weekly board sorted by day, start time
// and room.
func (s *ExportService) RenderSchedule(ctx context.Context, format string) (*ExportResult, error) {
	sessions, err := s.sessions.List(ctx, models.SessionFilter{})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sessions")
	}

	dataset, err := s.scheduleDataset(ctx, sessions)
	if err != nil {
		return nil, err
	}
	return s.render(dataset, "Weekly Schedule", "schedule", format)
}

// RenderDancerSchedule renders the sessions for one dancer.
func (s *ExportService) RenderDancerSchedule(ctx context.Context, dancerID, format string) (*ExportResult, error) {
	dancer, err := s.dancers.FindByID(ctx, dancerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "dancer not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load dancer")
	}

	sessions, err := s.sessions.List(ctx, models.SessionFilter{DancerID: dancerID})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sessions")
	}

	dataset, err := s.scheduleDataset(ctx, sessions)
	if err != nil {
		return nil, err
	}
	title := dancer.Name + " - Schedule"
	return s.render(dataset, title, "dancer-schedule", format)
}

func (s *ExportService) scheduleDataset(ctx context.Context, sessions []models.ScheduledRoutine) (export.Dataset, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return export.Dataset{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rooms")
	}
	roomNames := make(map[string]string, len(rooms))
	for _, room := range rooms {
		roomNames[room.ID] = room.Name
	}

	sorted := make([]models.ScheduledRoutine, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.StartTime.Day != b.StartTime.Day {
			return a.StartTime.Day < b.StartTime.Day
		}
		if a.StartTime.MinutesOfDay() != b.StartTime.MinutesOfDay() {
			return a.StartTime.MinutesOfDay() < b.StartTime.MinutesOfDay()
		}
		return roomNames[a.RoomID] < roomNames[b.RoomID]
	})

	dataset := export.Dataset{
		Headers: []string{"Day", "Start", "End", "Room", "Routine", "Teacher", "Dancers"},
	}
	for _, session := range sorted {
		names := make([]string, 0, len(session.Routine.Dancers))
		for _, dancer := range session.Routine.Dancers {
			names = append(names, dancer.Name)
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Day":     models.DayNames[session.StartTime.Day],
			"Start":   session.StartTime.Clock(),
			"End":     session.EndTime.Clock(),
			"Room":    roomNames[session.RoomID],
			"Routine": session.Routine.SongTitle,
			"Teacher": session.Routine.Teacher.Name,
			"Dancers": strings.Join(names, ", "),
		})
	}
	return dataset, nil
}

func (s *ExportService) render(dataset export.Dataset, title, basename, format string) (*ExportResult, error) {
	switch format {
	case FormatCSV:
		data, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportResult{ContentType: "text/csv", Filename: basename + ".csv", Data: data}, nil
	case FormatPDF:
		data, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportResult{ContentType: "application/pdf", Filename: basename + ".pdf", Data: data}, nil
	case FormatText, "":
		data, err := s.text.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render text")
		}
		return &ExportResult{ContentType: "text/plain; charset=utf-8", Filename: basename + ".txt", Data: data}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}
