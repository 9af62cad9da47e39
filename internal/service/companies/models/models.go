package models

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// Request модели

// UpdateCompanyRequest запрос на обновление профиля компании
type UpdateCompanyRequest struct {
	Name    string  `json:"name"`
	Slug    string  `json:"slug"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Response модели

// CompanyResponse ответ с данными компании
type CompanyResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Slug    *string `json:"slug,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// ServiceSummary услуга на публичной странице
type ServiceSummary struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// PublicPageResponse публичная страница компании с услугами
type PublicPageResponse struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Slug     string           `json:"slug"`
	Phone    *string          `json:"phone,omitempty"`
	Address  *string          `json:"address,omitempty"`
	Services []ServiceSummary `json:"services"`
}

// CompanyListItem компания в публичном каталоге
type CompanyListItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CompanyListResponse ответ со списком компаний каталога
type CompanyListResponse struct {
	Companies []CompanyListItem `json:"companies"`
	Total     int               `json:"total"`
}

// FromDomainCompany конвертирует domain.Company в response
func FromDomainCompany(c *domain.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:      c.ID,
		Name:    c.Name,
		Slug:    c.Slug,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

// FromDomainServices конвертирует список услуг в публичные summary
func FromDomainServices(services []*domain.Service) []ServiceSummary {
	out := make([]ServiceSummary, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceSummary{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return out
}
