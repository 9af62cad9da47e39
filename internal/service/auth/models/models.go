package models

// Request модели

// RegisterRequest запрос на регистрацию компании и администратора
type RegisterRequest struct {
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response модели

// AuthResponse ответ с токеном доступа
type AuthResponse struct {
	Token       string `json:"token"`
	UserID      int64  `json:"userId"`
	CompanyID   int64  `json:"companyId"`
	CompanyName string `json:"companyName"`
}
