package create_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	createSchedule "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgMissingCompanyID   = "отсутствует ID компании"
	msgServiceNotFound    = "услуга не найдена"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
)

type Handler struct {
	useCase CreateScheduleUseCase
	logger  Logger
}

func NewHandler(useCase CreateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		h.logger.Warn("POST /schedules - Missing company ID")
		handlers.RespondUnauthorized(w, msgMissingCompanyID)
		return
	}

	var req CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(companyID)
	if err != nil {
		h.logger.Warn("POST /schedules - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createSchedule.ErrSlotNotAvailable):
			h.logger.Warn("POST /schedules - Slot not available: company_id=%d", companyID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createSchedule.ErrServiceNotFound):
			h.logger.Warn("POST /schedules - Service not found: company_id=%d, service_id=%d", companyID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /schedules - Failed to create schedule: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Schedule created: schedule_id=%d, company_id=%d", result.ID, companyID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
