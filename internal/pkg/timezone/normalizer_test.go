package timezone

import (
	"clinic-staff-service/internal/pkg/exceptions"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManila(t *testing.T) *Normalizer {
	t.Helper()
	n, err := New("Asia/Manila")
	require.NoError(t, err)
	return n
}

func TestNew(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)

	_, err = New("Mars/Olympus_Mons")
	assert.Error(t, err)

	n, err := New("Asia/Manila")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Manila", n.Location().String())
}

func TestDayBounds(t *testing.T) {
	n := newManila(t)

	t.Run("Bounds contain every instant of the day", func(t *testing.T) {
		dayStart := time.Date(2024, 6, 1, 0, 0, 0, 0, n.Location())
		for offset := time.Duration(0); offset < 24*time.Hour; offset += 37 * time.Minute {
			instant := dayStart.Add(offset)
			start, end := n.DayBounds(instant)
			assert.False(t, instant.Before(start), "start should be <= instant %s", instant)
			assert.True(t, instant.Before(end), "instant %s should be < end", instant)
			assert.True(t, start.Equal(dayStart))
		}
	})

	t.Run("End equals the next day's start", func(t *testing.T) {
		instant := time.Date(2024, 6, 1, 15, 0, 0, 0, n.Location())
		_, end := n.DayBounds(instant)
		nextStart, _ := n.DayBounds(end)
		assert.True(t, end.Equal(nextStart))
	})

	t.Run("UTC instant is bucketed by business day", func(t *testing.T) {
		// 2024-06-01 17:00 UTC is 2024-06-02 01:00 in Manila.
		start, end := n.DayBounds(time.Date(2024, 6, 1, 17, 0, 0, 0, time.UTC))
		assert.Equal(t, time.Date(2024, 6, 1, 16, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2024, 6, 2, 16, 0, 0, 0, time.UTC), end)
		assert.Equal(t, time.UTC, start.Location())
	})

	t.Run("DST day is 23 hours", func(t *testing.T) {
		ny, err := New("America/New_York")
		require.NoError(t, err)
		start, end := ny.DayBounds(time.Date(2024, 3, 10, 12, 0, 0, 0, ny.Location()))
		assert.Equal(t, 23*time.Hour, end.Sub(start))
	})
}

func TestParseDay(t *testing.T) {
	n := newManila(t)
	want := time.Date(2024, 7, 10, 0, 0, 0, 0, n.Location()).UTC()

	t.Run("Date only", func(t *testing.T) {
		got, err := n.ParseDay("2024-07-10")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("RFC3339 instant", func(t *testing.T) {
		got, err := n.ParseDay("2024-07-10T03:30:00.000Z")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("Invalid values", func(t *testing.T) {
		for _, value := range []string{"", "   ", "07/10/2024", "2024-13-01", "tomorrow"} {
			_, err := n.ParseDay(value)
			require.Error(t, err, "value %q", value)

			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, 400, customErr.StatusCode)
		}
	})
}

func TestSameDayAndFormat(t *testing.T) {
	n := newManila(t)
	morning := time.Date(2024, 7, 10, 0, 5, 0, 0, n.Location())
	night := time.Date(2024, 7, 10, 23, 55, 0, 0, n.Location())
	nextDay := time.Date(2024, 7, 11, 0, 0, 0, 0, n.Location())

	assert.True(t, n.SameDay(morning, night))
	assert.False(t, n.SameDay(night, nextDay))
	assert.Equal(t, "2024-07-10", n.FormatDay(morning.UTC()))
	assert.Equal(t, time.Date(2024, 7, 10, 14, 0, 0, 0, n.Location()).UTC(), n.AtHour(morning, 14))
}

func TestToBusinessZone(t *testing.T) {
	n := newManila(t)
	instant := time.Date(2024, 6, 1, 17, 30, 0, 0, time.UTC)

	local := n.ToBusinessZone(instant)
	assert.True(t, local.Equal(instant))
	assert.Equal(t, 2, local.Day())
	assert.Equal(t, 1, local.Hour())
	assert.Equal(t, "Asia/Manila", local.Location().String())
}
