package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

func slots(pairs ...string) []domain.TimeSlot {
	result := make([]domain.TimeSlot, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		result = append(result, domain.MustTimeSlot(pairs[i], pairs[i+1]))
	}
	return result
}

func weekendsOpen(start, end string) *domain.WeeklySchedule {
	week := domain.DefaultScheduleConfig().Weekly
	week.Saturday = domain.DaySchedule{Enabled: true, TimeSlots: slots(start, end)}
	week.Sunday = domain.DaySchedule{Enabled: true, TimeSlots: slots(start, end)}
	return &week
}

func TestResolve_DefaultWeekly(t *testing.T) {
	cfg := domain.DefaultScheduleConfig()

	wednesday := Resolve(domain.MustDate(2024, time.July, 10), cfg)
	assert.Equal(t, TierWeekly, wednesday.Tier)
	assert.False(t, wednesday.Closed)
	assert.Equal(t, slots("08:00", "17:00"), wednesday.TimeSlots)

	saturday := Resolve(domain.MustDate(2024, time.July, 13), cfg)
	assert.Equal(t, TierWeekly, saturday.Tier)
	assert.True(t, saturday.Closed)
	assert.Empty(t, saturday.TimeSlots)
	assert.False(t, saturday.IsOpen())
}

func TestResolve_SpecialDateWinsOverEverything(t *testing.T) {
	july4 := domain.MustDate(2024, time.July, 4)

	cfg := domain.DefaultScheduleConfig()
	cfg.SpecialDates = []domain.SpecialDate{{
		Date:        july4,
		Type:        domain.SpecialDateModifiedHours,
		Description: "Short day",
		TimeSlots:   slots("09:00", "12:00"),
	}}
	cfg.RecurringHolidays = []domain.RecurringHoliday{{Month: 7, Day: 4, Description: "Independence Day", IsFullDayOff: true}}
	cfg.SeasonalSchedules = []domain.SeasonalSchedule{{
		StartDate:       domain.MustDate(2024, time.July, 1),
		EndDate:         domain.MustDate(2024, time.July, 31),
		Description:     "July closure",
		IsFullPeriodOff: true,
	}}

	got := Resolve(july4, cfg)

	assert.Equal(t, TierSpecialDate, got.Tier)
	assert.False(t, got.Closed)
	assert.Equal(t, "Short day", got.Description)
	assert.Equal(t, slots("09:00", "12:00"), got.TimeSlots)

	// Соседний день внутри сезона закрыт сезоном
	assert.Equal(t, TierSeasonal, Resolve(july4.AddDays(1), cfg).Tier)
	assert.True(t, Resolve(july4.AddDays(1), cfg).Closed)
}

func TestResolve_SpecialDateFullDayOff(t *testing.T) {
	cfg := domain.DefaultScheduleConfig()
	cfg.SpecialDates = []domain.SpecialDate{{
		Date:         domain.MustDate(2024, time.July, 10),
		Type:         domain.SpecialDateVacation,
		Description:  "Staff training",
		IsFullDayOff: true,
		TimeSlots:    slots("09:00", "12:00"),
	}}

	got := Resolve(domain.MustDate(2024, time.July, 10), cfg)
	assert.Equal(t, TierSpecialDate, got.Tier)
	assert.True(t, got.Closed)
	assert.Empty(t, got.TimeSlots)
}

func TestResolve_SpecialDateMatchesExactYearOnly(t *testing.T) {
	cfg := domain.DefaultScheduleConfig()
	cfg.SpecialDates = []domain.SpecialDate{{
		Date: domain.MustDate(2024, time.July, 10), Type: domain.SpecialDateHoliday, IsFullDayOff: true,
	}}

	assert.Equal(t, TierWeekly, Resolve(domain.MustDate(2025, time.July, 10), cfg).Tier)
}

func TestResolve_RecurringHolidayEveryYear(t *testing.T) {
	cfg := domain.DefaultScheduleConfig()
	cfg.RecurringHolidays = []domain.RecurringHoliday{{Month: 1, Day: 1, Description: "New Year", IsFullDayOff: true}}

	// 2024-01-01 понедельник, 2025-01-01 среда: оба рабочие дни по недельному расписанию
	for _, year := range []int{2024, 2025, 2030} {
		got := Resolve(domain.MustDate(year, time.January, 1), cfg)
		assert.Equal(t, TierRecurringHoliday, got.Tier, year)
		assert.True(t, got.Closed, year)
		assert.Equal(t, "New Year", got.Description)
	}
}

func TestResolve_RecurringHolidayWithHours(t *testing.T) {
	cfg := domain.DefaultScheduleConfig()
	cfg.RecurringHolidays = []domain.RecurringHoliday{{
		Month: 12, Day: 31, Description: "New Year's Eve", TimeSlots: slots("10:00", "13:00"),
	}}
	cfg.SeasonalSchedules = []domain.SeasonalSchedule{{
		StartDate: domain.MustDate(2024, time.December, 1), EndDate: domain.MustDate(2025, time.January, 15),
		Description: "Winter", IsFullPeriodOff: true,
	}}

	got := Resolve(domain.MustDate(2024, time.December, 31), cfg)
	assert.Equal(t, TierRecurringHoliday, got.Tier)
	assert.Equal(t, slots("10:00", "13:00"), got.TimeSlots)
}

func TestResolve_SeasonalScheduleOverridesWeekly(t *testing.T) {
	cfg := domain.DefaultScheduleConfig()
	cfg.SeasonalSchedules = []domain.SeasonalSchedule{{
		StartDate:   domain.MustDate(2024, time.June, 1),
		EndDate:     domain.MustDate(2024, time.August, 31),
		Description: "Summer",
		Schedule:    weekendsOpen("10:00", "14:00"),
	}}

	saturday := Resolve(domain.MustDate(2024, time.July, 13), cfg)
	assert.Equal(t, TierSeasonal, saturday.Tier)
	assert.Equal(t, slots("10:00", "14:00"), saturday.TimeSlots)

	// Границы периода включаются
	for _, d := range []domain.Date{domain.MustDate(2024, time.June, 1), domain.MustDate(2024, time.August, 31)} {
		assert.Equal(t, TierSeasonal, Resolve(d, cfg).Tier, d.String())
	}
	assert.Equal(t, TierWeekly, Resolve(domain.MustDate(2024, time.May, 31), cfg).Tier)
	assert.Equal(t, TierWeekly, Resolve(domain.MustDate(2024, time.September, 1), cfg).Tier)
}

func TestResolve_SeasonalDisabledDayIsClosed(t *testing.T) {
	week := domain.DefaultScheduleConfig().Weekly
	week.Monday.Enabled = false

	cfg := domain.DefaultScheduleConfig()
	cfg.SeasonalSchedules = []domain.SeasonalSchedule{{
		StartDate: domain.MustDate(2024, time.June, 1), EndDate: domain.MustDate(2024, time.August, 31),
		Description: "Summer", Schedule: &week,
	}}

	got := Resolve(domain.MustDate(2024, time.July, 15), cfg)
	assert.Equal(t, TierSeasonal, got.Tier)
	assert.True(t, got.Closed)
}

func TestResolve_SeasonalWithoutScheduleFallsThroughToWeekly(t *testing.T) {
	cfg := domain.DefaultScheduleConfig()
	cfg.SeasonalSchedules = []domain.SeasonalSchedule{
		{
			StartDate: domain.MustDate(2024, time.June, 1), EndDate: domain.MustDate(2024, time.August, 31),
			Description: "Summer (hours unchanged)",
		},
		{
			// Второй сезон не рассматривается: решает первый подходящий
			StartDate: domain.MustDate(2024, time.July, 1), EndDate: domain.MustDate(2024, time.July, 31),
			Description: "July", IsFullPeriodOff: true,
		},
	}

	wednesday := Resolve(domain.MustDate(2024, time.July, 10), cfg)
	assert.Equal(t, TierWeekly, wednesday.Tier)
	assert.Equal(t, slots("08:00", "17:00"), wednesday.TimeSlots)

	saturday := Resolve(domain.MustDate(2024, time.July, 13), cfg)
	assert.Equal(t, TierWeekly, saturday.Tier)
	assert.True(t, saturday.Closed)
}

func TestResolve_FirstMatchWinsWithinTier(t *testing.T) {
	date := domain.MustDate(2024, time.July, 10)

	cfg := domain.DefaultScheduleConfig()
	cfg.SpecialDates = []domain.SpecialDate{
		{Date: date, Type: domain.SpecialDateModifiedHours, Description: "first", TimeSlots: slots("09:00", "10:00")},
		{Date: date, Type: domain.SpecialDateHoliday, Description: "second", IsFullDayOff: true},
	}
	cfg.RecurringHolidays = []domain.RecurringHoliday{
		{Month: 8, Day: 1, Description: "first holiday", TimeSlots: slots("11:00", "12:00")},
		{Month: 8, Day: 1, Description: "second holiday", IsFullDayOff: true},
	}

	got := Resolve(date, cfg)
	assert.Equal(t, "first", got.Description)
	assert.Equal(t, slots("09:00", "10:00"), got.TimeSlots)

	holiday := Resolve(domain.MustDate(2024, time.August, 1), cfg)
	assert.Equal(t, "first holiday", holiday.Description)
	assert.False(t, holiday.Closed)
}

func TestResolve_OpenSpecialDateWithoutSlots(t *testing.T) {
	date := domain.MustDate(2024, time.July, 10)
	cfg := domain.DefaultScheduleConfig()
	cfg.SpecialDates = []domain.SpecialDate{{Date: date, Type: domain.SpecialDateModifiedHours, Description: "no hours"}}

	got := Resolve(date, cfg)
	assert.Equal(t, TierSpecialDate, got.Tier)
	assert.False(t, got.Closed)
	assert.False(t, got.IsOpen())
	assert.Empty(t, got.TimeSlots)
}

func TestResolve_IsIdempotentAndDoesNotAliasConfig(t *testing.T) {
	cfg := domain.DefaultScheduleConfig()
	date := domain.MustDate(2024, time.July, 10)

	first := Resolve(date, cfg)
	second := Resolve(date, cfg)
	require.Equal(t, first, second)

	first.TimeSlots[0] = domain.MustTimeSlot("00:00", "01:00")
	assert.Equal(t, slots("08:00", "17:00"), cfg.Weekly.Wednesday.TimeSlots)
}
