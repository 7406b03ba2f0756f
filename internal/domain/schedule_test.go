package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeSlot(t *testing.T) {
	slot, err := NewTimeSlot("09:00", "12:30")
	require.NoError(t, err)
	assert.Equal(t, "09:00-12:30", slot.String())

	_, err = NewTimeSlot("12:00", "09:00")
	assert.ErrorIs(t, err, ErrMalformedTimeSlot)

	_, err = NewTimeSlot("10:00", "10:00")
	assert.ErrorIs(t, err, ErrMalformedTimeSlot)

	_, err = NewTimeSlot("9am", "10:00")
	assert.ErrorIs(t, err, ErrMalformedTimeSlot)
}

func TestTimeSlot_Overlaps(t *testing.T) {
	morning := MustTimeSlot("09:00", "12:00")

	assert.True(t, morning.Overlaps(MustTimeSlot("11:00", "13:00")))
	assert.True(t, morning.Overlaps(MustTimeSlot("10:00", "11:00")))
	assert.False(t, morning.Overlaps(MustTimeSlot("12:00", "13:00")))
	assert.False(t, morning.Overlaps(MustTimeSlot("07:00", "09:00")))
}

func TestWeeklySchedule_DayAndSetDay(t *testing.T) {
	var week WeeklySchedule
	open := DaySchedule{Enabled: true, TimeSlots: []TimeSlot{MustTimeSlot("10:00", "14:00")}}

	week.SetDay(time.Saturday, open)

	assert.Equal(t, open, week.Day(time.Saturday))
	assert.False(t, week.Day(time.Sunday).Enabled)
	assert.True(t, week.Day(time.Saturday).IsOpen())
	assert.Equal(t, "saturday", WeekdayName(time.Saturday))
	assert.Len(t, Weekdays, 7)
}

func TestDefaultScheduleConfig(t *testing.T) {
	cfg := DefaultScheduleConfig()

	assert.Equal(t, 60, cfg.SessionDurationMinutes)
	for _, weekday := range Weekdays {
		day := cfg.Weekly.Day(weekday)
		require.Len(t, day.TimeSlots, 1, WeekdayName(weekday))
		assert.Equal(t, "08:00-17:00", day.TimeSlots[0].String())

		weekend := weekday == time.Saturday || weekday == time.Sunday
		assert.Equal(t, !weekend, day.Enabled, WeekdayName(weekday))
	}
	assert.Empty(t, cfg.SpecialDates)
	assert.Empty(t, cfg.RecurringHolidays)
	assert.Empty(t, cfg.SeasonalSchedules)
}

func TestValidateSessionDuration(t *testing.T) {
	assert.NoError(t, ValidateSessionDuration(1))
	assert.NoError(t, ValidateSessionDuration(1440))
	assert.ErrorIs(t, ValidateSessionDuration(0), ErrInvalidSessionDuration)
	assert.ErrorIs(t, ValidateSessionDuration(-30), ErrInvalidSessionDuration)
	assert.ErrorIs(t, ValidateSessionDuration(1441), ErrInvalidSessionDuration)
}

func TestOverrides_Matching(t *testing.T) {
	newYear := RecurringHoliday{Month: 1, Day: 1}
	assert.True(t, newYear.Matches(MustDate(2024, time.January, 1)))
	assert.True(t, newYear.Matches(MustDate(2031, time.January, 1)))
	assert.False(t, newYear.Matches(MustDate(2024, time.January, 2)))

	feb30 := RecurringHoliday{Month: 2, Day: 30}
	for d := MustDate(2024, time.February, 1); d.Month == time.February; d = d.AddDays(1) {
		assert.False(t, feb30.Matches(d))
	}

	summer := SeasonalSchedule{
		StartDate: MustDate(2024, time.June, 1),
		EndDate:   MustDate(2024, time.August, 31),
	}
	assert.True(t, summer.Contains(MustDate(2024, time.June, 1)))
	assert.True(t, summer.Contains(MustDate(2024, time.August, 31)))
	assert.False(t, summer.Contains(MustDate(2024, time.May, 31)))
	assert.False(t, summer.Contains(MustDate(2024, time.September, 1)))
	assert.False(t, summer.HasSchedule())

	special := SpecialDate{Date: MustDate(2024, time.July, 4)}
	assert.True(t, special.Matches(MustDate(2024, time.July, 4)))
	assert.False(t, special.Matches(MustDate(2025, time.July, 4)))
}

func TestParseSpecialDateType(t *testing.T) {
	for _, s := range []string{"holiday", "modified_hours", "vacation"} {
		typ, err := ParseSpecialDateType(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(typ))
	}

	_, err := ParseSpecialDateType("day_off")
	assert.ErrorIs(t, err, ErrInvalidSpecialDateType)
}
