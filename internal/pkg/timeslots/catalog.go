// Package timeslots holds the clinic's fixed catalog of bookable hourly
// labels and the ordering rules applied to them.
package timeslots

type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

type Slot struct {
	Label          string `json:"label"`
	Period         Period `json:"period"`
	DefaultEnabled bool   `json:"defaultEnabled"`
}

var catalog = []Slot{
	{Label: "6:00 am", Period: PeriodMorning, DefaultEnabled: false},
	{Label: "7:00 am", Period: PeriodMorning, DefaultEnabled: false},
	{Label: "8:00 am", Period: PeriodMorning, DefaultEnabled: true},
	{Label: "9:00 am", Period: PeriodMorning, DefaultEnabled: true},
	{Label: "10:00 am", Period: PeriodMorning, DefaultEnabled: true},
	{Label: "11:00 am", Period: PeriodMorning, DefaultEnabled: true},
	{Label: "12:00 pm", Period: PeriodAfternoon, DefaultEnabled: false},
	{Label: "1:00 pm", Period: PeriodAfternoon, DefaultEnabled: true},
	{Label: "2:00 pm", Period: PeriodAfternoon, DefaultEnabled: true},
	{Label: "3:00 pm", Period: PeriodAfternoon, DefaultEnabled: true},
	{Label: "4:00 pm", Period: PeriodAfternoon, DefaultEnabled: true},
	{Label: "5:00 pm", Period: PeriodAfternoon, DefaultEnabled: true},
	{Label: "6:00 pm", Period: PeriodEvening, DefaultEnabled: false},
	{Label: "7:00 pm", Period: PeriodEvening, DefaultEnabled: false},
	{Label: "8:00 pm", Period: PeriodEvening, DefaultEnabled: false},
	{Label: "9:00 pm", Period: PeriodEvening, DefaultEnabled: false},
	{Label: "10:00 pm", Period: PeriodEvening, DefaultEnabled: false},
	{Label: "11:00 pm", Period: PeriodEvening, DefaultEnabled: false},
}

var index = func() map[string]Slot {
	m := make(map[string]Slot, len(catalog))
	for _, slot := range catalog {
		m[slot.Label] = slot
	}
	return m
}()

// AllSlots returns a copy of the catalog in hourly order.
func AllSlots() []Slot {
	out := make([]Slot, len(catalog))
	copy(out, catalog)
	return out
}

func SlotsByPeriod(period Period) []Slot {
	var out []Slot
	for _, slot := range catalog {
		if slot.Period == period {
			out = append(out, slot)
		}
	}
	return out
}

func DefaultEnabled() []string {
	var out []string
	for _, slot := range catalog {
		if slot.DefaultEnabled {
			out = append(out, slot.Label)
		}
	}
	return out
}

func IsKnown(label string) bool {
	_, ok := index[label]
	return ok
}

func IsValidPeriod(period string) bool {
	switch Period(period) {
	case PeriodMorning, PeriodAfternoon, PeriodEvening:
		return true
	}
	return false
}

func Lookup(label string) (Slot, bool) {
	slot, ok := index[label]
	return slot, ok
}
