package update_company

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/companies"
	"github.com/m04kA/SMC-AppointmentService/internal/service/companies/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCompanyID   = "отсутствует ID компании"
	msgNotFound           = "компания не найдена"
	msgSlugTaken          = "слаг уже занят другой компанией"
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

// Handle PUT /api/v1/companies/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, ok := middleware.GetCompanyID(r.Context())
	if !ok {
		h.logger.Warn("PUT /companies/me - Missing company ID")
		handlers.RespondUnauthorized(w, msgMissingCompanyID)
		return
	}

	var req models.UpdateCompanyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /companies/me - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	company, err := h.service.Update(r.Context(), companyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, companies.ErrSlugTaken):
			h.logger.Warn("PUT /companies/me - Slug taken: company_id=%d, slug=%q", companyID, req.Slug)
			handlers.RespondConflict(w, msgSlugTaken)

		case errors.Is(err, companies.ErrCompanyNotFound):
			h.logger.Warn("PUT /companies/me - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, companies.ErrInvalidInput):
			h.logger.Warn("PUT /companies/me - Invalid input: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /companies/me - Failed to update company: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /companies/me - Company updated: company_id=%d", companyID)
	handlers.RespondJSON(w, http.StatusOK, company)
}
