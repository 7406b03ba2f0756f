package availability

import "github.com/m04kA/SMC-ScheduleService/internal/domain"

// Tier уровень переопределения, который определил расписание на дату
type Tier string

const (
	TierSpecialDate      Tier = "special_date"
	TierRecurringHoliday Tier = "recurring_holiday"
	TierSeasonal         Tier = "seasonal"
	TierWeekly           Tier = "weekly"
)

// EffectiveSchedule итоговое расписание на одну календарную дату
type EffectiveSchedule struct {
	Date        domain.Date
	Tier        Tier
	Closed      bool              // выходной: весь день закрыт
	Description string            // описание сработавшего переопределения (пусто для weekly)
	TimeSlots   []domain.TimeSlot // окна в порядке хранения, пусто если Closed
}

// IsOpen возвращает true, если на дату есть хотя бы одно окно
func (e EffectiveSchedule) IsOpen() bool {
	return !e.Closed && len(e.TimeSlots) > 0
}

// Resolve определяет расписание на дату по строгому приоритету:
// особая дата > ежегодный праздник > сезонное расписание > недельное расписание.
// Побеждает первое совпадение, уровни не объединяются.
// Внутри одного уровня при нескольких совпадениях берется первое в порядке хранения.
func Resolve(date domain.Date, cfg *domain.ScheduleConfig) EffectiveSchedule {
	// 1. Особые даты
	for i := range cfg.SpecialDates {
		special := &cfg.SpecialDates[i]
		if !special.Matches(date) {
			continue
		}
		if special.IsFullDayOff {
			return closed(date, TierSpecialDate, special.Description)
		}
		return open(date, TierSpecialDate, special.Description, special.TimeSlots)
	}

	// 2. Ежегодные праздники (год не учитывается)
	for i := range cfg.RecurringHolidays {
		holiday := &cfg.RecurringHolidays[i]
		if !holiday.Matches(date) {
			continue
		}
		if holiday.IsFullDayOff {
			return closed(date, TierRecurringHoliday, holiday.Description)
		}
		return open(date, TierRecurringHoliday, holiday.Description, holiday.TimeSlots)
	}

	// 3. Сезонное расписание: решает только первый подходящий сезон
	for i := range cfg.SeasonalSchedules {
		season := &cfg.SeasonalSchedules[i]
		if !season.Contains(date) {
			continue
		}
		if season.IsFullPeriodOff {
			return closed(date, TierSeasonal, season.Description)
		}
		if season.HasSchedule() {
			return fromDay(date, TierSeasonal, season.Description, season.Schedule.Day(date.Weekday()))
		}
		// Сезон без собственного недельного расписания не меняет часы работы
		break
	}

	// 4. Недельное расписание по умолчанию
	return fromDay(date, TierWeekly, "", cfg.Weekly.Day(date.Weekday()))
}

func fromDay(date domain.Date, tier Tier, description string, day domain.DaySchedule) EffectiveSchedule {
	if !day.Enabled {
		return closed(date, tier, description)
	}
	return open(date, tier, description, day.TimeSlots)
}

func closed(date domain.Date, tier Tier, description string) EffectiveSchedule {
	return EffectiveSchedule{
		Date:        date,
		Tier:        tier,
		Closed:      true,
		Description: description,
		TimeSlots:   []domain.TimeSlot{},
	}
}

func open(date domain.Date, tier Tier, description string, slots []domain.TimeSlot) EffectiveSchedule {
	copied := make([]domain.TimeSlot, len(slots))
	copy(copied, slots)
	return EffectiveSchedule{
		Date:        date,
		Tier:        tier,
		Description: description,
		TimeSlots:   copied,
	}
}
