package public_booking

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда слаг неизвестен или публичная
	// страница компании не включена
	ErrCompanyNotFound = errors.New("public_booking: company not found")

	// ErrServiceNotFound возвращается, когда услуга не принадлежит компании
	ErrServiceNotFound = errors.New("public_booking: service not found")

	// ErrSlotNotAvailable возвращается при конфликте интервала записи
	ErrSlotNotAvailable = errors.New("public_booking: time slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("public_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("public_booking: internal error")
)
