package timeslots

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// HourKey converts an "h:mm am|pm" label to its 24-hour hour. Minutes are
// ignored, so "9:00 am" and "9:30 am" share a key.
func HourKey(label string) (int, error) {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(label)))
	if len(fields) != 2 {
		return 0, fmt.Errorf("malformed time slot %q", label)
	}

	clock, meridiem := fields[0], fields[1]
	hourPart, _, _ := strings.Cut(clock, ":")
	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("malformed hour in time slot %q", label)
	}

	switch meridiem {
	case "am":
		if hour == 12 {
			return 0, nil
		}
		return hour, nil
	case "pm":
		if hour == 12 {
			return 12, nil
		}
		return hour + 12, nil
	}
	return 0, fmt.Errorf("malformed meridiem in time slot %q", label)
}

// Sort orders labels by hour of day. Ties keep their input order and labels
// that cannot be parsed go last.
func Sort(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	sort.SliceStable(out, func(i, j int) bool {
		return sortKey(out[i]) < sortKey(out[j])
	})
	return out
}

// Normalize trims, drops duplicates and sorts.
func Normalize(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return Sort(out)
}

func sortKey(label string) int {
	hour, err := HourKey(label)
	if err != nil {
		return 24
	}
	return hour
}
