package domain

import "time"

// Роли пользователей
const (
	RoleAdmin = "admin"
)

// User пользователь компании. Используется для аутентификации и как
// получатель уведомлений о новых записях.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         string
	CompanyID    int64
	CreatedAt    time.Time
}
