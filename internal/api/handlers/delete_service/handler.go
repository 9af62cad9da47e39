package delete_service

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingCompanyID = "отсутствует ID компании"
)

type Handler struct {
	service ServicesService
	logger  Logger
}

func NewHandler(service ServicesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/services/{serviceId}
// Идемпотентный: удаление несуществующей услуги тоже возвращает 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /services/{id} - Missing company ID")
		handlers.RespondUnauthorized(w, msgMissingCompanyID)
		return
	}

	vars := mux.Vars(r)
	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.Delete(r.Context(), companyID, serviceID); err != nil {
		h.logger.Error("DELETE /services/{id} - Failed to delete service: service_id=%d, company_id=%d, error=%v",
			serviceID, companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: service_id=%d, company_id=%d", serviceID, companyID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
