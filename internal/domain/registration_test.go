package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideAdmission(t *testing.T) {
	tests := []struct {
		name      string
		confirmed int
		maxTeams  int
		want      RegistrationStatus
	}{
		{"empty event", 0, 10, RegistrationStatusConfirmed},
		{"one spot left", 9, 10, RegistrationStatusConfirmed},
		{"at capacity", 10, 10, RegistrationStatusWaitlist},
		{"over capacity", 11, 10, RegistrationStatusWaitlist},
		{"single team event", 0, 1, RegistrationStatusConfirmed},
		{"single team event full", 1, 1, RegistrationStatusWaitlist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecideAdmission(tt.confirmed, tt.maxTeams))
		})
	}
}

func TestFillsLastSlot(t *testing.T) {
	assert.False(t, FillsLastSlot(0, 10))
	assert.False(t, FillsLastSlot(8, 10))
	assert.True(t, FillsLastSlot(9, 10))
	assert.True(t, FillsLastSlot(10, 10))
	assert.True(t, FillsLastSlot(0, 1))
}

func TestEventStatus_AcceptsRegistrations(t *testing.T) {
	assert.True(t, EventStatusActive.AcceptsRegistrations())
	assert.True(t, EventStatusFull.AcceptsRegistrations())
	assert.False(t, EventStatusCancelled.AcceptsRegistrations())
	assert.False(t, EventStatusCompleted.AcceptsRegistrations())
}

func TestRegistrationStatus_Valid(t *testing.T) {
	assert.True(t, RegistrationStatusConfirmed.Valid())
	assert.True(t, RegistrationStatusWaitlist.Valid())
	assert.True(t, RegistrationStatusCancelled.Valid())
	assert.False(t, RegistrationStatus("PENDING").Valid())
	assert.False(t, RegistrationStatus("").Valid())
}

func TestExperience_Valid(t *testing.T) {
	assert.True(t, ExperienceBeginner.Valid())
	assert.True(t, ExperienceExperienced.Valid())
	assert.True(t, ExperienceProfessional.Valid())
	assert.False(t, Experience("EXPERT").Valid())
}
