package create_public_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	publicBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/public_booking"
)

// PublicBookingRequest HTTP request model
type PublicBookingRequest struct {
	Slug        string `json:"slug"`
	ServiceID   int64  `json:"serviceId"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	Date        string `json:"date"`      // "2025-06-02"
	StartTime   string `json:"startTime"` // "14:00"
}

// PublicBookingResponse HTTP response model
type PublicBookingResponse struct {
	ID          int64  `json:"id"`
	ServiceID   int64  `json:"serviceId"`
	ClientName  string `json:"clientName"`
	StartTime   string `json:"startTime"` // RFC 3339
	EndTime     string `json:"endTime"`   // RFC 3339
	ServiceName string `json:"serviceName"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Дата и время трактуются как UTC
func (r *PublicBookingRequest) ToUseCaseRequest() (*publicBooking.Request, error) {
	start, err := time.ParseInLocation(
		domain.DateFormat+" "+domain.TimeFormat,
		fmt.Sprintf("%s %s", r.Date, r.StartTime),
		time.UTC,
	)
	if err != nil {
		return nil, err
	}

	return &publicBooking.Request{
		Slug:        r.Slug,
		ServiceID:   r.ServiceID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		StartTime:   start,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
// Телефон клиента и ID компании наружу не отдаются
func FromUseCaseResponse(resp *publicBooking.Response) *PublicBookingResponse {
	return &PublicBookingResponse{
		ID:          resp.ID,
		ServiceID:   resp.ServiceID,
		ClientName:  resp.ClientName,
		StartTime:   resp.StartTime.Format(time.RFC3339),
		EndTime:     resp.EndTime.Format(time.RFC3339),
		ServiceName: resp.ServiceName,
	}
}
