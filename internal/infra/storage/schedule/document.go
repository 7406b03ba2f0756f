package schedule

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Документы JSONB колонок. Даты хранятся как YYYY-MM-DD, время как HH:MM.

type timeSlotDocument struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type dayDocument struct {
	Enabled   bool               `json:"enabled"`
	TimeSlots []timeSlotDocument `json:"timeSlots"`
}

// weeklyDocument ключи - названия дней недели ("monday", ...)
type weeklyDocument map[string]dayDocument

type specialDateDocument struct {
	Date         string             `json:"date"`
	Type         string             `json:"type"`
	Description  string             `json:"description"`
	IsFullDayOff bool               `json:"isFullDayOff"`
	TimeSlots    []timeSlotDocument `json:"timeSlots,omitempty"`
}

type recurringHolidayDocument struct {
	Month        int                `json:"month"`
	Day          int                `json:"day"`
	Description  string             `json:"description"`
	IsFullDayOff bool               `json:"isFullDayOff"`
	TimeSlots    []timeSlotDocument `json:"timeSlots,omitempty"`
}

type seasonalScheduleDocument struct {
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
	Description     string          `json:"description"`
	IsFullPeriodOff bool            `json:"isFullPeriodOff"`
	Schedule        *weeklyDocument `json:"schedule,omitempty"`
}

// row строка таблицы schedule_config
type row struct {
	SessionDuration   int
	Weekly            []byte
	SpecialDates      []byte
	RecurringHolidays []byte
	SeasonalSchedules []byte
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// toRow сериализует конфигурацию в колонки таблицы
func toRow(cfg *domain.ScheduleConfig) (*row, error) {
	weekly, err := json.Marshal(fromWeekly(&cfg.Weekly))
	if err != nil {
		return nil, fmt.Errorf("%w: weekly: %v", ErrDocument, err)
	}

	specialDates := make([]specialDateDocument, 0, len(cfg.SpecialDates))
	for _, sd := range cfg.SpecialDates {
		specialDates = append(specialDates, specialDateDocument{
			Date:         sd.Date.String(),
			Type:         string(sd.Type),
			Description:  sd.Description,
			IsFullDayOff: sd.IsFullDayOff,
			TimeSlots:    fromTimeSlots(sd.TimeSlots),
		})
	}

	holidays := make([]recurringHolidayDocument, 0, len(cfg.RecurringHolidays))
	for _, h := range cfg.RecurringHolidays {
		holidays = append(holidays, recurringHolidayDocument{
			Month:        h.Month,
			Day:          h.Day,
			Description:  h.Description,
			IsFullDayOff: h.IsFullDayOff,
			TimeSlots:    fromTimeSlots(h.TimeSlots),
		})
	}

	seasons := make([]seasonalScheduleDocument, 0, len(cfg.SeasonalSchedules))
	for _, s := range cfg.SeasonalSchedules {
		doc := seasonalScheduleDocument{
			StartDate:       s.StartDate.String(),
			EndDate:         s.EndDate.String(),
			Description:     s.Description,
			IsFullPeriodOff: s.IsFullPeriodOff,
		}
		if s.Schedule != nil {
			weeklyDoc := fromWeekly(s.Schedule)
			doc.Schedule = &weeklyDoc
		}
		seasons = append(seasons, doc)
	}

	r := &row{
		SessionDuration: cfg.SessionDurationMinutes,
		Weekly:          weekly,
		CreatedAt:       cfg.CreatedAt,
		UpdatedAt:       cfg.UpdatedAt,
	}

	if r.SpecialDates, err = json.Marshal(specialDates); err != nil {
		return nil, fmt.Errorf("%w: special dates: %v", ErrDocument, err)
	}
	if r.RecurringHolidays, err = json.Marshal(holidays); err != nil {
		return nil, fmt.Errorf("%w: recurring holidays: %v", ErrDocument, err)
	}
	if r.SeasonalSchedules, err = json.Marshal(seasons); err != nil {
		return nil, fmt.Errorf("%w: seasonal schedules: %v", ErrDocument, err)
	}

	return r, nil
}

// toDomain собирает конфигурацию из колонок таблицы
func (r *row) toDomain() (*domain.ScheduleConfig, error) {
	var weeklyDoc weeklyDocument
	if err := json.Unmarshal(r.Weekly, &weeklyDoc); err != nil {
		return nil, fmt.Errorf("%w: weekly: %v", ErrDocument, err)
	}

	weekly, err := toWeekly(weeklyDoc)
	if err != nil {
		return nil, err
	}

	cfg := &domain.ScheduleConfig{
		Weekly:                 weekly,
		SessionDurationMinutes: r.SessionDuration,
		SpecialDates:           []domain.SpecialDate{},
		RecurringHolidays:      []domain.RecurringHoliday{},
		SeasonalSchedules:      []domain.SeasonalSchedule{},
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
	}

	var specialDates []specialDateDocument
	if err := unmarshalList(r.SpecialDates, &specialDates); err != nil {
		return nil, fmt.Errorf("%w: special dates: %v", ErrDocument, err)
	}
	for _, doc := range specialDates {
		date, err := domain.ParseDate(doc.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: special date %q: %v", ErrDocument, doc.Date, err)
		}
		slots, err := toTimeSlots(doc.TimeSlots)
		if err != nil {
			return nil, err
		}
		cfg.SpecialDates = append(cfg.SpecialDates, domain.SpecialDate{
			Date:         date,
			Type:         domain.SpecialDateType(doc.Type),
			Description:  doc.Description,
			IsFullDayOff: doc.IsFullDayOff,
			TimeSlots:    slots,
		})
	}

	var holidays []recurringHolidayDocument
	if err := unmarshalList(r.RecurringHolidays, &holidays); err != nil {
		return nil, fmt.Errorf("%w: recurring holidays: %v", ErrDocument, err)
	}
	for _, doc := range holidays {
		slots, err := toTimeSlots(doc.TimeSlots)
		if err != nil {
			return nil, err
		}
		cfg.RecurringHolidays = append(cfg.RecurringHolidays, domain.RecurringHoliday{
			Month:        doc.Month,
			Day:          doc.Day,
			Description:  doc.Description,
			IsFullDayOff: doc.IsFullDayOff,
			TimeSlots:    slots,
		})
	}

	var seasons []seasonalScheduleDocument
	if err := unmarshalList(r.SeasonalSchedules, &seasons); err != nil {
		return nil, fmt.Errorf("%w: seasonal schedules: %v", ErrDocument, err)
	}
	for _, doc := range seasons {
		start, err := domain.ParseDate(doc.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: season start %q: %v", ErrDocument, doc.StartDate, err)
		}
		end, err := domain.ParseDate(doc.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: season end %q: %v", ErrDocument, doc.EndDate, err)
		}
		season := domain.SeasonalSchedule{
			StartDate:       start,
			EndDate:         end,
			Description:     doc.Description,
			IsFullPeriodOff: doc.IsFullPeriodOff,
		}
		if doc.Schedule != nil {
			weekly, err := toWeekly(*doc.Schedule)
			if err != nil {
				return nil, err
			}
			season.Schedule = &weekly
		}
		cfg.SeasonalSchedules = append(cfg.SeasonalSchedules, season)
	}

	return cfg, nil
}

func unmarshalList(data []byte, v interface{}) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func fromWeekly(w *domain.WeeklySchedule) weeklyDocument {
	doc := make(weeklyDocument, len(domain.Weekdays))
	for _, wd := range domain.Weekdays {
		day := w.Day(wd)
		doc[domain.WeekdayName(wd)] = dayDocument{
			Enabled:   day.Enabled,
			TimeSlots: fromTimeSlots(day.TimeSlots),
		}
	}
	return doc
}

// toWeekly отсутствующий день считается выключенным
func toWeekly(doc weeklyDocument) (domain.WeeklySchedule, error) {
	var weekly domain.WeeklySchedule
	for _, wd := range domain.Weekdays {
		dayDoc, ok := doc[domain.WeekdayName(wd)]
		if !ok {
			weekly.SetDay(wd, domain.DaySchedule{Enabled: false, TimeSlots: []domain.TimeSlot{}})
			continue
		}
		slots, err := toTimeSlots(dayDoc.TimeSlots)
		if err != nil {
			return domain.WeeklySchedule{}, err
		}
		weekly.SetDay(wd, domain.DaySchedule{Enabled: dayDoc.Enabled, TimeSlots: slots})
	}
	return weekly, nil
}

func fromTimeSlots(slots []domain.TimeSlot) []timeSlotDocument {
	docs := make([]timeSlotDocument, 0, len(slots))
	for _, s := range slots {
		docs = append(docs, timeSlotDocument{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}
	return docs
}

func toTimeSlots(docs []timeSlotDocument) ([]domain.TimeSlot, error) {
	slots := make([]domain.TimeSlot, 0, len(docs))
	for _, d := range docs {
		slot, err := domain.NewTimeSlot(d.StartTime, d.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDocument, err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}
