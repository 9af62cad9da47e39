package create_public_booking

import (
	"context"

	publicBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/public_booking"
)

type PublicBookingUseCase interface {
	Execute(ctx context.Context, req *publicBooking.Request) (*publicBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
