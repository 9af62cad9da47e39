package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// ListSchedulesRequest запрос на список записей компании
type ListSchedulesRequest struct {
	CompanyID int64   `json:"companyId"`
	Date      *string `json:"date,omitempty"` // YYYY-MM-DD (опционально)
}

// HistoryRequest запрос на историю записей компании
// Обе границы включительные; endDate трактуется до конца дня
type HistoryRequest struct {
	CompanyID int64   `json:"companyId"`
	StartDate *string `json:"startDate,omitempty"` // YYYY-MM-DD (опционально)
	EndDate   *string `json:"endDate,omitempty"`   // YYYY-MM-DD (опционально)
}

// Response модели

// ScheduleResponse ответ с данными записи
type ScheduleResponse struct {
	ID          int64     `json:"id"`
	CompanyID   int64     `json:"companyId"`
	ServiceID   int64     `json:"serviceId"`
	ClientName  string    `json:"clientName"`
	ClientPhone string    `json:"clientPhone"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`

	// Денормализованные данные услуги
	ServiceName  string   `json:"serviceName"`
	ServicePrice *float64 `json:"servicePrice,omitempty"` // Только в истории

	CreatedAt time.Time `json:"createdAt"`
}

// ScheduleListResponse ответ со списком записей
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}

// FromDomainSchedule конвертирует domain.Schedule в response
func FromDomainSchedule(s *domain.Schedule, withPrice bool) ScheduleResponse {
	resp := ScheduleResponse{
		ID:          s.ID,
		CompanyID:   s.CompanyID,
		ServiceID:   s.ServiceID,
		ClientName:  s.ClientName,
		ClientPhone: s.ClientPhone,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		ServiceName: s.ServiceName,
		CreatedAt:   s.CreatedAt,
	}
	if withPrice {
		price := s.ServicePrice
		resp.ServicePrice = &price
	}
	return resp
}

// FromDomainScheduleList конвертирует список записей в response
func FromDomainScheduleList(schedules []*domain.Schedule, withPrice bool) *ScheduleListResponse {
	out := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, FromDomainSchedule(s, withPrice))
	}
	return &ScheduleListResponse{Schedules: out, Total: len(out)}
}
