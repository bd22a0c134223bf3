package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
)

func TestProjectSession_UnknownTeacher(t *testing.T) {
	s := &models.Session{ID: "s1", TeacherID: "gone", Status: models.SessionScheduled}

	resp := ProjectSession(s)
	assert.Equal(t, UnknownTeacherName, resp.TeacherName)
	assert.Equal(t, "gone", resp.TeacherID)
	assert.NotNil(t, resp.LearnerIDs)
	assert.NotNil(t, resp.LearnerNames)
	assert.Empty(t, resp.LearnerIDs)
}

func TestProjectSession_ParallelLearnerSlices(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	reason := "rain"
	s := &models.Session{
		ID:                 "s1",
		TeacherID:          "t1",
		Teacher:            &models.User{ID: "t1", Name: "Tom"},
		Learners:           []*models.User{{ID: "a", Name: "Alice"}, {ID: "b", Name: "Bob"}},
		Start:              start,
		End:                start.Add(time.Hour),
		Status:             models.SessionCancelled,
		CancellationReason: &reason,
		Type:               models.SessionPractical,
	}

	resp := ProjectSession(s)
	assert.Equal(t, "Tom", resp.TeacherName)
	assert.Equal(t, []string{"a", "b"}, resp.LearnerIDs)
	assert.Equal(t, []string{"Alice", "Bob"}, resp.LearnerNames)
	assert.Equal(t, models.SessionCancelled, resp.Status)
	assert.Equal(t, &reason, resp.CancellationReason)
}

func TestProjectSession_Idempotent(t *testing.T) {
	s := &models.Session{
		ID:       "s1",
		Teacher:  &models.User{Name: "Tom"},
		Learners: []*models.User{{ID: "a", Name: "Alice"}},
	}

	assert.Equal(t, ProjectSession(s), ProjectSession(s))
	assert.Len(t, s.Learners, 1)
}

func TestProjectSessions_EmptyInput(t *testing.T) {
	out := ProjectSessions(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
