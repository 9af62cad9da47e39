package companies

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена или её
	// публичная страница выключена
	ErrCompanyNotFound = errors.New("company not found")

	// ErrSlugTaken возвращается, когда слаг уже занят другой компанией
	ErrSlugTaken = errors.New("slug already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
