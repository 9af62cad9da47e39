package get_my_company

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/companies"
)

const (
	msgMissingCompanyID = "отсутствует ID компании"
	msgNotFound         = "компания не найдена"
)

type Handler struct {
	service CompanyService
	logger  Logger
}

func NewHandler(service CompanyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		h.logger.Warn("GET /companies/me - Missing company ID")
		handlers.RespondUnauthorized(w, msgMissingCompanyID)
		return
	}

	company, err := h.service.GetMyCompany(r.Context(), companyID)
	if err != nil {
		if errors.Is(err, companies.ErrCompanyNotFound) {
			h.logger.Warn("GET /companies/me - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /companies/me - Failed to get company: company_id=%d, error=%v", companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, company)
}
