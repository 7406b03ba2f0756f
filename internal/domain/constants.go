package domain

// Default configuration values
const (
	DefaultSessionDurationMinutes = 60
	DefaultOpenTime               = "08:00"
	DefaultCloseTime              = "17:00"
)

// Business validation constants
const (
	MinSessionDurationMinutes = 1
	MaxSessionDurationMinutes = 1440 // 24 hours
	MinMonth                  = 1
	MaxMonth                  = 12
	MinDayOfMonth             = 1
	MaxDayOfMonth             = 31 // not checked against the month length
	MaxDescriptionLength      = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
