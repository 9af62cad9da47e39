package domain

import "time"

// Schedule запись клиента на услугу компании.
// Интервал записи полуоткрытый: [StartTime, EndTime). EndTime вычисляется
// один раз при создании из длительности услуги и сохраняется - при
// последующем изменении длительности услуги прошлые записи не меняются.
type Schedule struct {
	ID          int64
	CompanyID   int64
	ServiceID   int64
	ClientName  string
	ClientPhone string
	StartTime   time.Time
	EndTime     time.Time
	CreatedAt   time.Time

	// Денормализованные данные из JOIN с services (только на чтение)
	ServiceName  string
	ServicePrice float64
}

// Overlaps проверяет пересечение записи с интервалом [start, end)
// Граничные случаи (back-to-back записи) пересечением не считаются
func (s *Schedule) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && s.EndTime.After(start)
}

// ScheduleFilter фильтр списка записей компании
type ScheduleFilter struct {
	CompanyID int64      // Обязательный параметр
	Date      *time.Time // Календарная дата (опционально, если nil - все записи)
}

// HistoryFilter фильтр истории записей компании
// Обе границы включительные; EndDate трактуется до конца дня (23:59:59)
type HistoryFilter struct {
	CompanyID int64
	StartDate *time.Time
	EndDate   *time.Time
}
