package create_schedule

import "time"

// Request модель запроса на создание записи
type Request struct {
	CompanyID   int64     // ID компании (из auth-контекста или тела публичного запроса)
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
	EndTime     time.Time // Вычислено из длительности услуги
	ServiceName string    // Денормализовано для ответа и уведомления
	CreatedAt   time.Time
}
