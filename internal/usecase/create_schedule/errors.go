package create_schedule

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не существует или
	// принадлежит другой компании
	ErrServiceNotFound = errors.New("create_schedule: service not found")

	// ErrSlotNotAvailable возвращается, когда интервал записи пересекается
	// с существующей записью компании
	ErrSlotNotAvailable = errors.New("create_schedule: time slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_schedule: internal error")
)
