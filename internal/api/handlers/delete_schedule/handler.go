package delete_schedule

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
)

const (
	msgInvalidScheduleID = "некорректный ID записи"
	msgMissingCompanyID  = "отсутствует ID компании"
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

// Handle DELETE /api/v1/schedules/{scheduleId}
// Идемпотентный: повторное удаление и удаление чужой записи тоже 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /schedules/{id} - Missing company ID")
		handlers.RespondUnauthorized(w, msgMissingCompanyID)
		return
	}

	vars := mux.Vars(r)
	scheduleID, err := strconv.ParseInt(vars["scheduleId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	if err := h.service.Delete(r.Context(), companyID, scheduleID); err != nil {
		h.logger.Error("DELETE /schedules/{id} - Failed to delete schedule: schedule_id=%d, company_id=%d, error=%v",
			scheduleID, companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /schedules/{id} - Schedule deleted: schedule_id=%d, company_id=%d", scheduleID, companyID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
