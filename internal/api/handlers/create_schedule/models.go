package create_schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createSchedule "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_schedule"
)

// CreateScheduleRequest HTTP request model
type CreateScheduleRequest struct {
	ServiceID   int64  `json:"serviceId"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	Date        string `json:"date"`      // "2025-06-02"
	StartTime   string `json:"startTime"` // "14:00"
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	ID          int64  `json:"id"`
	CompanyID   int64  `json:"companyId"`
	ServiceID   int64  `json:"serviceId"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	StartTime   string `json:"startTime"` // RFC 3339
	EndTime     string `json:"endTime"`   // RFC 3339
	ServiceName string `json:"serviceName"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата и время трактуются как UTC
func (r *CreateScheduleRequest) ToUseCaseRequest(companyID int64) (*createSchedule.Request, error) {
	start, err := time.ParseInLocation(
		domain.DateFormat+" "+domain.TimeFormat,
		fmt.Sprintf("%s %s", r.Date, r.StartTime),
		time.UTC,
	)
	if err != nil {
		return nil, err
	}

	return &createSchedule.Request{
		CompanyID:   companyID,
		ServiceID:   r.ServiceID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		StartTime:   start,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createSchedule.Response) *ScheduleResponse {
	return &ScheduleResponse{
		ID:          resp.ID,
		CompanyID:   resp.CompanyID,
		ServiceID:   resp.ServiceID,
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		StartTime:   resp.StartTime.Format(time.RFC3339),
		EndTime:     resp.EndTime.Format(time.RFC3339),
		ServiceName: resp.ServiceName,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
