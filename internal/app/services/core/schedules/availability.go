package schedules

import (
	"clinic-staff-service/internal/app/models"
	"clinic-staff-service/internal/pkg/timeslots"
)

type resolution struct {
	Slots             []string
	Source            string
	AllDayUnavailable bool
}

// resolveSlots applies the precedence rule for one doctor and day: an
// override of any kind wins over the default record, and no record at all
// means no slots.
func resolveSlots(override *models.DaytimeSlots, defaults *models.DefaultTimeSlots) resolution {
	switch override.Kind() {
	case models.OverrideAllDayUnavailable:
		return resolution{Slots: []string{}, Source: models.AvailabilitySourceOverride, AllDayUnavailable: true}
	case models.OverrideExplicitSlots:
		return resolution{Slots: timeslots.Sort(nonNil(override.TimeSlots)), Source: models.AvailabilitySourceOverride}
	}

	if defaults == nil {
		return resolution{Slots: []string{}, Source: models.AvailabilitySourceNone}
	}
	return resolution{Slots: timeslots.Sort(nonNil(defaults.TimeSlots)), Source: models.AvailabilitySourceDefault}
}

func nonNil(slots []string) []string {
	if slots == nil {
		return []string{}
	}
	return slots
}
