package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
	"github.com/SAP-F-2025/drive-schedule-service/internal/repositories"
)

const sessionsSheet = "Sessions"

var sessionExportHeaders = []string{
	"ID", "Teacher ID", "Teacher", "Learner IDs", "Learners", "Start", "End",
	"Status", "Type", "Requires Vehicle", "Vehicle ID", "Capacity", "Cancellation Reason", "Created At",
}

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

// ExportSessions renders the projected sessions into one sheet, one row each
func (s *exportService) ExportSessions(ctx context.Context, w io.Writer) error {
	sessions, err := s.repo.Session().List(ctx, nil, repositories.SessionFilters{})
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Error("Failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", sessionsSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sessionsSheet, "A1", &sessionExportHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, projected := range ProjectSessions(sessions) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := sessionExportRow(projected)
		if err := f.SetSheetRow(sessionsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write session %s: %w", projected.ID, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Info("Sessions exported", "count", len(sessions))
	return nil
}

func sessionExportRow(r *models.SessionResponse) []interface{} {
	return []interface{}{
		r.ID,
		r.TeacherID,
		r.TeacherName,
		strings.Join(r.LearnerIDs, ", "),
		strings.Join(r.LearnerNames, ", "),
		r.Start.UTC().Format(time.RFC3339),
		r.End.UTC().Format(time.RFC3339),
		string(r.Status),
		string(r.Type),
		r.RequiresVehicle,
		derefString(r.VehicleID),
		derefInt(r.Capacity),
		derefString(r.CancellationReason),
		r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// derefInt leaves the cell empty for a missing value
func derefInt(i *int) interface{} {
	if i == nil {
		return ""
	}
	return *i
}
