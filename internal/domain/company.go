package domain

// Company компания-арендатор (tenant). Единица изоляции данных:
// все услуги и записи принадлежат ровно одной компании.
type Company struct {
	ID      int64
	Name    string
	Slug    *string // Уникальный слаг публичной страницы, NULL пока не задан
	Phone   *string
	Address *string
}

// HasPublicPage сообщает, доступна ли компания на публичной странице записи
func (c *Company) HasPublicPage() bool {
	return c.Slug != nil && *c.Slug != ""
}

// CompanyUpdate данные обновления профиля компании
type CompanyUpdate struct {
	Name    string
	Slug    string
	Phone   *string
	Address *string
}
