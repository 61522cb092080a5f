package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// monday returns a known Monday (2025-10-13) at the given time
func monday(hour, minute int) time.Time {
	return time.Date(2025, 10, 13, hour, minute, 0, 0, time.UTC)
}

func saturday(hour, minute int) time.Time {
	return time.Date(2025, 10, 18, hour, minute, 0, 0, time.UTC)
}

func TestValidateTimeSlot(t *testing.T) {
	tests := []struct {
		name       string
		start      time.Time
		end        time.Time
		wantOK     bool
		wantReason string
	}{
		{
			name:   "обычный слот в понедельник",
			start:  monday(9, 0),
			end:    monday(10, 0),
			wantOK: true,
		},
		{
			name:   "слот до самого закрытия",
			start:  monday(18, 0),
			end:    monday(20, 0),
			wantOK: true,
		},
		{
			name:   "слот сразу после обеда",
			start:  monday(14, 0),
			end:    monday(16, 0),
			wantOK: true,
		},
		{
			name:   "слот заканчивается ровно в 13:00",
			start:  monday(11, 0),
			end:    monday(13, 0),
			wantOK: true,
		},
		{
			name:       "суббота",
			start:      saturday(10, 0),
			end:        saturday(11, 0),
			wantOK:     false,
			wantReason: ReasonWeekend,
		},
		{
			name:       "воскресенье",
			start:      time.Date(2025, 10, 19, 10, 0, 0, 0, time.UTC),
			end:        time.Date(2025, 10, 19, 11, 0, 0, 0, time.UTC),
			wantOK:     false,
			wantReason: ReasonWeekend,
		},
		{
			name:       "раньше открытия",
			start:      monday(8, 0),
			end:        monday(10, 0),
			wantOK:     false,
			wantReason: ReasonOutsideHours,
		},
		{
			name:       "позже закрытия",
			start:      monday(19, 0),
			end:        monday(21, 0),
			wantOK:     false,
			wantReason: ReasonOutsideHours,
		},
		{
			name:       "заканчивается в 20:30",
			start:      monday(19, 0),
			end:        monday(20, 30),
			wantOK:     false,
			wantReason: ReasonOutsideHours,
		},
		{
			name:       "пересекает обеденный блок",
			start:      monday(12, 0),
			end:        monday(14, 0),
			wantOK:     false,
			wantReason: ReasonLunchBlock,
		},
		{
			name:       "начинается в обеденный блок",
			start:      monday(13, 0),
			end:        monday(14, 0),
			wantOK:     false,
			wantReason: ReasonLunchBlock,
		},
		{
			name:       "не выровнен по часу",
			start:      monday(9, 30),
			end:        monday(10, 30),
			wantOK:     false,
			wantReason: ReasonNotHourAligned,
		},
		{
			name:       "конец не выровнен по часу",
			start:      monday(9, 0),
			end:        monday(10, 45),
			wantOK:     false,
			wantReason: ReasonNotHourAligned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := ValidateTimeSlot(tt.start, tt.end)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Equal(t, tt.wantReason, reason)
			}
		})
	}
}

// Порядок правил: выходной день побеждает все остальные нарушения
func TestValidateTimeSlot_RuleOrder(t *testing.T) {
	// суббота + нерабочие часы + не по часу: причина должна быть "weekend"
	ok, reason := ValidateTimeSlot(saturday(7, 15), saturday(8, 45))
	assert.False(t, ok)
	assert.Equal(t, ReasonWeekend, reason)

	// будний день, нерабочие часы + не по часу: причина - "outside hours"
	ok, reason = ValidateTimeSlot(monday(7, 15), monday(8, 45))
	assert.False(t, ok)
	assert.Equal(t, ReasonOutsideHours, reason)
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(saturday(10, 0)))
	assert.True(t, IsWeekend(time.Date(2025, 10, 19, 10, 0, 0, 0, time.UTC)))
	assert.False(t, IsWeekend(monday(10, 0)))
}
