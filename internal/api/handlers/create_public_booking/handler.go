package create_public_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	publicBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/public_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgCompanyNotFound    = "компания не найдена"
	msgServiceNotFound    = "услуга не найдена"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
)

type Handler struct {
	useCase PublicBookingUseCase
	logger  Logger
}

func NewHandler(useCase PublicBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/public/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PublicBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /public/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /public/book - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, publicBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /public/book - Slot not available: slug=%q", req.Slug)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, publicBooking.ErrCompanyNotFound):
			h.logger.Warn("POST /public/book - Company not found: slug=%q", req.Slug)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		case errors.Is(err, publicBooking.ErrServiceNotFound):
			h.logger.Warn("POST /public/book - Service not found: slug=%q, service_id=%d", req.Slug, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, publicBooking.ErrInvalidInput):
			h.logger.Warn("POST /public/book - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /public/book - Failed to create booking: slug=%q, error=%v", req.Slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /public/book - Booking created: schedule_id=%d, slug=%q", result.ID, req.Slug)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
