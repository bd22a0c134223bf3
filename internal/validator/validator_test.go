package validator

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func fieldsOf(errs ValidationErrors) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidate_ReturnsNilOnSuccess(t *testing.T) {
	v := New()
	err := v.Validate(&RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "p"})
	assert.NoError(t, err)
}

func TestValidate_RegisterRejectsBadEmail(t *testing.T) {
	v := New()
	err := v.Validate(&RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "p"})
	require.Error(t, err)

	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, []string{"email"}, fieldsOf(errs))
	assert.Equal(t, "email", errs[0].Rule)
}

func TestValidateLogin_RoleEnum(t *testing.T) {
	bv := NewBusinessValidator()

	errs := bv.ValidateLogin(&LoginRequest{Email: "a@x.com", Password: "p", Role: "superuser"})
	require.Len(t, errs, 1)
	assert.Equal(t, "role", errs[0].Field)
	assert.Equal(t, "user_role", errs[0].Rule)

	assert.Empty(t, bv.ValidateLogin(&LoginRequest{Email: "a@x.com", Password: "p", Role: models.RoleTeacher}))
}

func TestValidateVehicleCreate_StatusOptional(t *testing.T) {
	bv := NewBusinessValidator()

	assert.Empty(t, bv.ValidateVehicleCreate(&CreateVehicleRequest{Name: "Golf", Plate: "AB-1"}))

	errs := bv.ValidateVehicleCreate(&CreateVehicleRequest{Name: "Golf", Plate: "AB-1", Status: "stolen"})
	require.Len(t, errs, 1)
	assert.Equal(t, "status", errs[0].Field)
}

func TestValidateSessionCreate(t *testing.T) {
	bv := NewBusinessValidator()
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	valid := &CreateSessionRequest{
		TeacherID:       "t1",
		LearnerIDs:      []string{},
		Start:           NewTimestamp(start),
		End:             NewTimestamp(start.Add(-time.Hour)),
		RequiresVehicle: boolPtr(false),
		Type:            models.SessionTheory,
	}
	assert.Empty(t, bv.ValidateSessionCreate(valid), "end before start is accepted")

	errs := bv.ValidateSessionCreate(&CreateSessionRequest{Type: "flying"})
	assert.ElementsMatch(t,
		[]string{"teacherId", "learnerIds", "start", "end", "requiresVehicle", "type"},
		fieldsOf(errs))
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "is required"},
		{Field: "role", Message: "must be one of learner, teacher, admin"},
	}
	assert.Equal(t, "email: is required; role: must be one of learner, teacher, admin", errs.Error())
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339 utc", `"2024-05-01T10:00:00Z"`, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"rfc3339 offset", `"2024-05-01T12:00:00+02:00"`, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"naive seconds", `"2024-05-01T10:00:00"`, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{"naive fraction", `"2024-05-01T10:00:00.250"`, time.Date(2024, 5, 1, 10, 0, 0, 250_000_000, time.UTC)},
		{"naive minutes", `"2024-05-01T10:00"`, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}

	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"tomorrow"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`1717232400`), &ts))
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())
}
