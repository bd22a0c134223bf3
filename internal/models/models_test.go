package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidity(t *testing.T) {
	assert.True(t, RoleLearner.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, UserRole("superuser").IsValid())
	assert.False(t, UserRole("").IsValid())

	assert.True(t, VehicleMaintenance.IsValid())
	assert.False(t, VehicleStatus("broken").IsValid())

	assert.True(t, SessionCancelled.IsValid())
	assert.False(t, SessionStatus("pending").IsValid())

	assert.True(t, SessionPractical.IsValid())
	assert.False(t, SessionType("online").IsValid())
}

func TestBeforeCreateDefaults(t *testing.T) {
	u := &User{}
	assert.NoError(t, u.BeforeCreate(nil))
	assert.Len(t, u.ID, 36)

	preset := &User{ID: "u1"}
	assert.NoError(t, preset.BeforeCreate(nil))
	assert.Equal(t, "u1", preset.ID)

	v := &Vehicle{}
	assert.NoError(t, v.BeforeCreate(nil))
	assert.Equal(t, VehicleActive, v.Status)

	s := &Session{}
	assert.NoError(t, s.BeforeCreate(nil))
	assert.Equal(t, SessionScheduled, s.Status)
	assert.NotEmpty(t, s.ID)

	n := &Notification{}
	assert.NoError(t, n.BeforeCreate(nil))
	assert.False(t, n.Read)
	assert.False(t, n.Timestamp.IsZero())
}
