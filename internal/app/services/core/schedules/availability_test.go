package schedules

import (
	"clinic-staff-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSlots(t *testing.T) {
	defaults := &models.DefaultTimeSlots{TimeSlots: []string{"2:00 pm", "9:00 am"}}

	tests := []struct {
		name      string
		override  *models.DaytimeSlots
		defaults  *models.DefaultTimeSlots
		wantSlots []string
		wantFrom  string
		wantAllDay bool
	}{
		{
			name:      "no records",
			wantSlots: []string{},
			wantFrom:  models.AvailabilitySourceNone,
		},
		{
			name:      "default only",
			defaults:  defaults,
			wantSlots: []string{"9:00 am", "2:00 pm"},
			wantFrom:  models.AvailabilitySourceDefault,
		},
		{
			name:      "all day unavailable ignores stored slots",
			override:  &models.DaytimeSlots{TimeSlots: []string{"9:00 am"}, AllDayUnavailable: true},
			defaults:  defaults,
			wantSlots: []string{},
			wantFrom:  models.AvailabilitySourceOverride,
			wantAllDay: true,
		},
		{
			name:      "explicit slots win over default",
			override:  &models.DaytimeSlots{TimeSlots: []string{"5:00 pm", "8:00 am"}},
			defaults:  defaults,
			wantSlots: []string{"8:00 am", "5:00 pm"},
			wantFrom:  models.AvailabilitySourceOverride,
		},
		{
			name:      "empty override hides default",
			override:  &models.DaytimeSlots{TimeSlots: nil},
			defaults:  defaults,
			wantSlots: []string{},
			wantFrom:  models.AvailabilitySourceOverride,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveSlots(tt.override, tt.defaults)
			assert.Equal(t, tt.wantSlots, got.Slots)
			assert.Equal(t, tt.wantFrom, got.Source)
			assert.Equal(t, tt.wantAllDay, got.AllDayUnavailable)
		})
	}
}

func TestResolveSlotsSortsByHour(t *testing.T) {
	override := &models.DaytimeSlots{TimeSlots: []string{"11:00 pm", "12:00 pm", "6:00 am", "1:00 pm", "10:00 am"}}

	got := resolveSlots(override, nil)

	assert.Equal(t, []string{"6:00 am", "10:00 am", "12:00 pm", "1:00 pm", "11:00 pm"}, got.Slots)
}
