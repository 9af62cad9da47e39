package get_company_page

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/companies"
)

const msgNotFound = "компания не найдена"

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

// Handle GET /api/v1/public/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]

	page, err := h.service.GetPublicPage(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, companies.ErrCompanyNotFound):
			h.logger.Warn("GET /public/{slug} - Company not found: slug=%q", slug)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, companies.ErrInvalidInput):
			h.logger.Warn("GET /public/{slug} - Invalid slug: %v", err)
			handlers.RespondBadRequest(w, msgNotFound)

		default:
			h.logger.Error("GET /public/{slug} - Failed to get company page: slug=%q, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, page)
}
