package services

import "github.com/SAP-F-2025/drive-schedule-service/internal/models"

// UnknownTeacherName stands in for a teacher that cannot be resolved
const UnknownTeacherName = "Unknown"

// ProjectSession builds the client view of a session from its loaded
// relations. It reads only and may be called any number of times.
func ProjectSession(s *models.Session) *models.SessionResponse {
	teacherName := UnknownTeacherName
	if s.Teacher != nil {
		teacherName = s.Teacher.Name
	}

	learnerIDs := make([]string, 0, len(s.Learners))
	learnerNames := make([]string, 0, len(s.Learners))
	for _, learner := range s.Learners {
		if learner == nil {
			continue
		}
		learnerIDs = append(learnerIDs, learner.ID)
		learnerNames = append(learnerNames, learner.Name)
	}

	return &models.SessionResponse{
		ID:                 s.ID,
		TeacherID:          s.TeacherID,
		TeacherName:        teacherName,
		LearnerIDs:         learnerIDs,
		LearnerNames:       learnerNames,
		Start:              s.Start,
		End:                s.End,
		Status:             s.Status,
		CreatedAt:          s.CreatedAt,
		CancellationReason: s.CancellationReason,
		RequiresVehicle:    s.RequiresVehicle,
		VehicleID:          s.VehicleID,
		Type:               s.Type,
		Capacity:           s.Capacity,
	}
}

// ProjectSessions projects each session in order
func ProjectSessions(sessions []*models.Session) []*models.SessionResponse {
	out := make([]*models.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, ProjectSession(s))
	}
	return out
}
