package domain

// Форматы даты и времени
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Ограничения бизнес-валидации
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 1440 // сутки
	MaxNameLength             = 255
	MaxPhoneLength            = 32
	MaxSlugLength             = 64
)
