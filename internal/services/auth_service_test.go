package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/drive-schedule-service/internal/events"
	"github.com/SAP-F-2025/drive-schedule-service/internal/models"
)

func TestAuthService_RegisterThenLogin(t *testing.T) {
	env := newTestEnv(t)
	svc := env.auth()
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterRequest{Name: "Alice", Email: "alice@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleLearner, user.Role)
	assert.Len(t, user.ID, 36)

	login, err := svc.Login(ctx, &LoginRequest{Email: "alice@x.com", Password: "pw", Role: models.RoleLearner})
	require.NoError(t, err)
	assert.Equal(t, "success", login.Status)
	assert.Equal(t, "Welcome back, Alice!", login.Message)
	assert.Equal(t, user.ID, login.ID)
	assert.Equal(t, "Alice", login.Name)
	assert.Equal(t, models.RoleLearner, login.Role)

	published := env.publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.UserRegistered, published[0].Type)
	assert.Equal(t, "drive-schedule-service", published[0].Source)
}

func TestAuthService_LoginRequiresAllThreeToMatch(t *testing.T) {
	env := newTestEnv(t)
	svc := env.auth()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Name: "Alice", Email: "alice@x.com", Password: "pw"})
	require.NoError(t, err)

	cases := []struct {
		name string
		req  LoginRequest
	}{
		{"wrong role", LoginRequest{Email: "alice@x.com", Password: "pw", Role: models.RoleTeacher}},
		{"wrong password", LoginRequest{Email: "alice@x.com", Password: "PW", Role: models.RoleLearner}},
		{"unknown email", LoginRequest{Email: "bob@x.com", Password: "pw", Role: models.RoleLearner}},
		{"email case differs", LoginRequest{Email: "Alice@x.com", Password: "pw", Role: models.RoleLearner}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(ctx, &tc.req)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_DuplicateEmailCreatesNothing(t *testing.T) {
	env := newTestEnv(t)
	svc := env.auth()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterRequest{Name: "Alice", Email: "alice@x.com", Password: "pw"})
	require.NoError(t, err)
	before := env.countUsers(t)

	_, err = svc.Register(ctx, &RegisterRequest{Name: "Impostor", Email: "alice@x.com", Password: "other"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, before, env.countUsers(t))
	assert.Len(t, env.publisher.GetPublishedEvents(), 1)
}

func TestAuthService_RoleInPayloadIsIgnored(t *testing.T) {
	env := newTestEnv(t)

	var req RegisterRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Mallory","email":"m@x.com","password":"pw","role":"admin"}`), &req))

	user, err := env.auth().Register(context.Background(), &req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleLearner, user.Role)

	_, err = env.auth().Login(context.Background(), &LoginRequest{Email: "m@x.com", Password: "pw", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ValidationErrors(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth().Register(context.Background(), &RegisterRequest{Name: "", Email: "nope", Password: "pw"})
	require.ErrorIs(t, err, ErrValidationFailed)

	var details ValidationErrors
	require.True(t, errors.As(err, &details))
	assert.Len(t, details, 2)

	_, err = env.auth().Login(context.Background(), &LoginRequest{Email: "a@x.com", Password: "pw", Role: "root"})
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, int64(0), env.countUsers(t))
}

func TestAuthService_PublishFailureDoesNotFailRegistration(t *testing.T) {
	env := newTestEnv(t)
	env.publisher.FailWith(errors.New("broker down"))

	user, err := env.auth().Register(context.Background(), &RegisterRequest{Name: "Alice", Email: "alice@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
}
