package domain

import "time"

// Service услуга компании. Длительность услуги - единственный источник
// для вычисления времени окончания записи.
type Service struct {
	ID              int64
	CompanyID       int64
	Name            string
	Price           float64
	DurationMinutes int
	CreatedAt       time.Time
}
