package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlot_AllowsMode(t *testing.T) {
	tests := []struct {
		name     string
		slotMode ConsultationMode
		mode     ConsultationMode
		want     bool
	}{
		{name: "both allows online", slotMode: ModeBoth, mode: ModeOnline, want: true},
		{name: "both allows in_person", slotMode: ModeBoth, mode: ModeInPerson, want: true},
		{name: "online allows online", slotMode: ModeOnline, mode: ModeOnline, want: true},
		{name: "online rejects in_person", slotMode: ModeOnline, mode: ModeInPerson, want: false},
		{name: "in_person rejects online", slotMode: ModeInPerson, mode: ModeOnline, want: false},
		{name: "both is not an appointment mode", slotMode: ModeBoth, mode: ModeBoth, want: false},
		{name: "empty mode rejected", slotMode: ModeBoth, mode: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Slot{AllowedMode: tt.slotMode}
			assert.Equal(t, tt.want, s.AllowsMode(tt.mode))
		})
	}
}

func TestSlot_MatchesFilter(t *testing.T) {
	online := &Slot{AllowedMode: ModeOnline}
	both := &Slot{AllowedMode: ModeBoth}

	assert.True(t, online.MatchesFilter(""))
	assert.True(t, online.MatchesFilter(ModeBoth))
	assert.True(t, online.MatchesFilter(ModeOnline))
	assert.False(t, online.MatchesFilter(ModeInPerson))

	assert.True(t, both.MatchesFilter(ModeOnline))
	assert.True(t, both.MatchesFilter(ModeInPerson))
}

func TestAppointment_Transitions(t *testing.T) {
	scheduled := &Appointment{Status: StatusScheduled}
	assert.True(t, scheduled.IsActive())
	assert.True(t, scheduled.CanBeCancelled())
	assert.True(t, scheduled.CanBeCompleted())

	completed := &Appointment{Status: StatusCompleted}
	assert.True(t, completed.IsActive())
	assert.False(t, completed.CanBeCancelled())
	assert.False(t, completed.CanBeCompleted())

	cancelled := &Appointment{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
	assert.False(t, cancelled.CanBeCancelled())
	assert.False(t, cancelled.CanBeCompleted())
}
