package availability

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Engine привязывает расписание к конкретным моментам времени в часовом поясе развертывания
type Engine struct {
	loc *time.Location
}

// NewEngine создает движок доступности; nil означает time.Local
func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.Local
	}
	return &Engine{loc: loc}
}

// DateOf возвращает календарную дату момента t в часовом поясе движка
func (e *Engine) DateOf(t time.Time) domain.Date {
	return domain.DateIn(t, e.loc)
}

// Windows возвращает открытые окна на дату как конкретные интервалы времени
func (e *Engine) Windows(date domain.Date, cfg *domain.ScheduleConfig) []domain.AvailabilitySlot {
	return e.Anchor(date, Resolve(date, cfg).TimeSlots)
}

// GenerateSlots нарезает окна даты на сессии фиксированной длины.
// Неполная сессия в конце окна отбрасывается, окна не сортируются и не объединяются,
// поэтому пересекающиеся окна дают пересекающиеся слоты.
func (e *Engine) GenerateSlots(date domain.Date, sessionDurationMinutes int, cfg *domain.ScheduleConfig) []domain.AvailabilitySlot {
	return e.SlotsFor(Resolve(date, cfg), sessionDurationMinutes)
}

// SlotsFor нарезает уже определенное расписание дня на сессии
func (e *Engine) SlotsFor(effective EffectiveSchedule, sessionDurationMinutes int) []domain.AvailabilitySlot {
	if !effective.IsOpen() || sessionDurationMinutes <= 0 {
		return []domain.AvailabilitySlot{}
	}

	return splitWindows(e.Anchor(effective.Date, effective.TimeSlots), sessionDurationMinutes)
}

// IsSlotAvailable проверяет, что интервал [start, end] целиком лежит в одном из окон
// своей календарной даты. Выравнивание по сетке сессий не требуется.
func (e *Engine) IsSlotAvailable(start, end time.Time, cfg *domain.ScheduleConfig) bool {
	if !start.Before(end) {
		return false
	}

	for _, window := range e.Windows(e.DateOf(start), cfg) {
		if window.Contains(start, end) {
			return true
		}
	}
	return false
}

// Anchor совмещает календарную дату с HH:MM каждого слота (секунды = 0)
func (e *Engine) Anchor(date domain.Date, slots []domain.TimeSlot) []domain.AvailabilitySlot {
	windows := make([]domain.AvailabilitySlot, 0, len(slots))
	for _, slot := range slots {
		windows = append(windows, domain.AvailabilitySlot{
			StartTime: slot.StartTime.OnDate(date.Year, date.Month, date.Day, e.loc),
			EndTime:   slot.EndTime.OnDate(date.Year, date.Month, date.Day, e.loc),
		})
	}
	return windows
}

// splitWindows режет каждое окно с шагом в одну сессию, пока конец сессии не выходит за окно
func splitWindows(windows []domain.AvailabilitySlot, sessionDurationMinutes int) []domain.AvailabilitySlot {
	session := time.Duration(sessionDurationMinutes) * time.Minute
	slots := make([]domain.AvailabilitySlot, 0)

	for _, window := range windows {
		for cursor := window.StartTime; !cursor.Add(session).After(window.EndTime); cursor = cursor.Add(session) {
			slots = append(slots, domain.AvailabilitySlot{
				StartTime: cursor,
				EndTime:   cursor.Add(session),
			})
		}
	}

	return slots
}
