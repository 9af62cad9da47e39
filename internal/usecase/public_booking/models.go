package public_booking

import "time"

// Request модель публичного запроса на запись
type Request struct {
	Slug        string    // Слаг публичной страницы компании
	ServiceID   int64     // ID услуги
	ClientName  string    // Имя клиента
	ClientPhone string    // Телефон клиента
	StartTime   time.Time // Время начала записи
}

// Response модель ответа с созданной записью
type Response struct {
	ID          int64
	CompanyID   int64
	ServiceID   int64
	ClientName  string
	ClientPhone string
	StartTime   time.Time
	EndTime     time.Time
	ServiceName string
}
