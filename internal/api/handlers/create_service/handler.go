package create_service

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	servicesService "github.com/m04kA/SMC-AppointmentService/internal/service/services"
	"github.com/m04kA/SMC-AppointmentService/internal/service/services/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCompanyID   = "отсутствует ID компании"
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

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		h.logger.Warn("POST /services - Missing company ID")
		handlers.RespondUnauthorized(w, msgMissingCompanyID)
		return
	}

	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), companyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, servicesService.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid input: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /services - Failed to create service: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created: service_id=%d, company_id=%d", result.ID, companyID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
