// Package timezone buckets instants into calendar days of the clinic's
// business timezone. The zone is fixed when the Normalizer is built.
package timezone

import (
	"clinic-staff-service/internal/pkg/constvars"
	"clinic-staff-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"strings"
	"time"
)

var errEmptyDate = errors.New("date is empty")

type Normalizer struct {
	location *time.Location
}

func New(zone string) (*Normalizer, error) {
	if strings.TrimSpace(zone) == "" {
		return nil, fmt.Errorf(constvars.ErrDevInvalidTimezone, zone)
	}
	location, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf(constvars.ErrDevInvalidTimezone+": %w", zone, err)
	}
	return &Normalizer{location: location}, nil
}

func (n *Normalizer) Location() *time.Location {
	return n.location
}

func (n *Normalizer) ToBusinessZone(instant time.Time) time.Time {
	return instant.In(n.location)
}

// StartOfDay returns the first instant, in UTC, of the business day that
// contains instant.
func (n *Normalizer) StartOfDay(instant time.Time) time.Time {
	local := instant.In(n.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, n.location).UTC()
}

// DayBounds returns [start, end) of the business day containing instant.
// end is the start of the following day, so DST days are 23 or 25 hours long.
func (n *Normalizer) DayBounds(instant time.Time) (time.Time, time.Time) {
	local := instant.In(n.location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, n.location)
	end := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, n.location)
	return start.UTC(), end.UTC()
}

// ParseDay accepts "YYYY-MM-DD" (read as a business-zone calendar date) or an
// RFC 3339 instant, and returns the start of the matching business day.
func (n *Normalizer) ParseDay(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, exceptions.ErrInvalidDate(errEmptyDate, value)
	}

	if day, err := time.ParseInLocation(constvars.DateLayoutYYYYMMDD, value, n.location); err == nil {
		return day.UTC(), nil
	}

	instant, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, exceptions.ErrInvalidDate(err, value)
	}
	return n.StartOfDay(instant), nil
}

func (n *Normalizer) SameDay(a, b time.Time) bool {
	return n.StartOfDay(a).Equal(n.StartOfDay(b))
}

func (n *Normalizer) FormatDay(instant time.Time) string {
	return instant.In(n.location).Format(constvars.DateLayoutYYYYMMDD)
}

// AtHour returns the instant hour o'clock on the business day containing day.
func (n *Normalizer) AtHour(day time.Time, hour int) time.Time {
	local := day.In(n.location)
	return time.Date(local.Year(), local.Month(), local.Day(), hour, 0, 0, 0, n.location).UTC()
}

// Today returns the start of the business day that now falls in.
func (n *Normalizer) Today(now time.Time) time.Time {
	return n.StartOfDay(now)
}
