package mailer

import "errors"

var (
	// ErrSendFailed возвращается, когда провайдер не принял письмо
	ErrSendFailed = errors.New("mailer: failed to send email")
)
