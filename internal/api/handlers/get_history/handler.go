package get_history

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedules"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedules/models"
)

const (
	msgMissingCompanyID = "отсутствует ID компании"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "дата начала периода не может быть позже даты окончания"
)

type Handler struct {
	service SchedulesService
	logger  Logger
}

func NewHandler(service SchedulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/history?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		h.logger.Warn("GET /schedules/history - Missing company ID")
		handlers.RespondUnauthorized(w, msgMissingCompanyID)
		return
	}

	req := &models.HistoryRequest{CompanyID: companyID}
	query := r.URL.Query()
	if start := query.Get("startDate"); start != "" {
		req.StartDate = &start
	}
	if end := query.Get("endDate"); end != "" {
		req.EndDate = &end
	}

	result, err := h.service.History(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidDate):
			h.logger.Warn("GET /schedules/history - Invalid date: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, schedules.ErrInvalidDateRange):
			h.logger.Warn("GET /schedules/history - Invalid date range: company_id=%d", companyID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /schedules/history - Failed to get history: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
