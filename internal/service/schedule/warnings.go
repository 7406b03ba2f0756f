package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// collectWarnings ищет неоднозначности, которые не мешают сохранению:
// повторяющиеся даты, пересекающиеся слоты и сезоны, праздники на несуществующие даты.
// При совпадениях действует первое правило в порядке следования.
func collectWarnings(cfg *domain.ScheduleConfig) []string {
	var warnings []string

	for _, wd := range domain.Weekdays {
		warnings = append(warnings, overlappingSlots(cfg.Weekly.Day(wd).TimeSlots, "schedule."+domain.WeekdayName(wd))...)
	}

	seenDates := make(map[domain.Date]int, len(cfg.SpecialDates))
	for i, sd := range cfg.SpecialDates {
		field := fmt.Sprintf("specialDates[%d]", i)
		if first, ok := seenDates[sd.Date]; ok {
			warnings = append(warnings, fmt.Sprintf("%s: date %s duplicates specialDates[%d], only the first entry applies",
				field, sd.Date, first))
		} else {
			seenDates[sd.Date] = i
		}
		if !sd.IsFullDayOff {
			warnings = append(warnings, overlappingSlots(sd.TimeSlots, field)...)
		}
	}

	type monthDay struct{ month, day int }
	seenHolidays := make(map[monthDay]int, len(cfg.RecurringHolidays))
	for i, h := range cfg.RecurringHolidays {
		field := fmt.Sprintf("recurringHolidays[%d]", i)
		key := monthDay{h.Month, h.Day}
		if first, ok := seenHolidays[key]; ok {
			warnings = append(warnings, fmt.Sprintf("%s: %02d-%02d duplicates recurringHolidays[%d], only the first entry applies",
				field, h.Month, h.Day, first))
		} else {
			seenHolidays[key] = i
		}
		if !existsInLeapYear(h.Month, h.Day) {
			warnings = append(warnings, fmt.Sprintf("%s: %02d-%02d never occurs in the calendar", field, h.Month, h.Day))
		}
		if !h.IsFullDayOff {
			warnings = append(warnings, overlappingSlots(h.TimeSlots, field)...)
		}
	}

	for i, s := range cfg.SeasonalSchedules {
		field := fmt.Sprintf("seasonalSchedules[%d]", i)
		for j := 0; j < i; j++ {
			prev := cfg.SeasonalSchedules[j]
			if !s.StartDate.After(prev.EndDate) && !prev.StartDate.After(s.EndDate) {
				warnings = append(warnings, fmt.Sprintf("%s: period %s..%s overlaps seasonalSchedules[%d], the earlier entry applies",
					field, s.StartDate, s.EndDate, j))
			}
		}
		if s.Schedule != nil {
			for _, wd := range domain.Weekdays {
				warnings = append(warnings, overlappingSlots(s.Schedule.Day(wd).TimeSlots, field+".schedule."+domain.WeekdayName(wd))...)
			}
		}
	}

	return warnings
}

func overlappingSlots(slots []domain.TimeSlot, field string) []string {
	var warnings []string
	for i := 1; i < len(slots); i++ {
		for j := 0; j < i; j++ {
			if slots[i].Overlaps(slots[j]) {
				warnings = append(warnings, fmt.Sprintf("%s: time slot %s overlaps %s", field, slots[i], slots[j]))
			}
		}
	}
	return warnings
}

// existsInLeapYear проверяет, что день существует хотя бы в високосном году (29 февраля допустимо)
func existsInLeapYear(month, day int) bool {
	_, err := domain.NewDate(2024, time.Month(month), day)
	return err == nil
}
