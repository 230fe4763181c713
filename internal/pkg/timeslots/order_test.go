package timeslots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHourKey(t *testing.T) {
	tests := []struct {
		label   string
		want    int
		wantErr bool
	}{
		{label: "6:00 am", want: 6},
		{label: "11:00 am", want: 11},
		{label: "12:00 pm", want: 12},
		{label: "1:00 pm", want: 13},
		{label: "11:00 pm", want: 23},
		{label: "12:00 am", want: 0},
		{label: "9:45 AM", want: 9},
		{label: "13:00 pm", wantErr: true},
		{label: "nine am", wantErr: true},
		{label: "9:00", wantErr: true},
		{label: "9:00 xm", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := HourKey(tt.label)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSort(t *testing.T) {
	t.Run("Ascending by hour", func(t *testing.T) {
		input := []string{"2:00 pm", "9:00 am", "12:00 pm", "11:00 am", "6:00 pm"}
		assert.Equal(t, []string{"9:00 am", "11:00 am", "12:00 pm", "2:00 pm", "6:00 pm"}, Sort(input))
		assert.Equal(t, "2:00 pm", input[0], "input should not be mutated")
	})

	t.Run("Minutes do not affect order", func(t *testing.T) {
		input := []string{"9:30 am", "9:00 am", "8:45 am"}
		assert.Equal(t, []string{"8:45 am", "9:30 am", "9:00 am"}, Sort(input))
	})

	t.Run("Unparseable labels go last", func(t *testing.T) {
		input := []string{"bogus", "3:00 pm", "8:00 am"}
		assert.Equal(t, []string{"8:00 am", "3:00 pm", "bogus"}, Sort(input))
	})
}

func TestNormalize(t *testing.T) {
	got := Normalize([]string{" 2:00 pm", "9:00 am", "2:00 pm", "", "9:00 am"})
	assert.Equal(t, []string{"9:00 am", "2:00 pm"}, got)
	assert.Empty(t, Normalize(nil))
}
