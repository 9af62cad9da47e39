package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AppointmentService/internal/integrations/mailer"
)

type fakeSender struct {
	req mailer.SendRequest
	err error
}

func (f *fakeSender) Send(_ context.Context, req mailer.SendRequest) error {
	f.req = req
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testNote() BookingNotification {
	return BookingNotification{
		OwnerEmail:  "owner@example.com",
		ClientName:  "Иван Петров",
		ServiceName: "Стрижка",
		CompanyName: "Барбершоп",
		Date:        "10.01.2025",
		Time:        "10:00",
	}
}

func TestSend_BuildsEmail(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, time.Second, nopLogger{})

	n.send(testNote())

	assert.Equal(t, []string{"owner@example.com"}, sender.req.To)
	assert.Equal(t, "Новая запись: Иван Петров - Стрижка", sender.req.Subject)
	assert.Contains(t, sender.req.Text, "Иван Петров")
	assert.Contains(t, sender.req.Text, "10.01.2025 в 10:00")
	assert.Contains(t, sender.req.HTML, "Барбершоп")
	assert.Contains(t, sender.req.HTML, "Стрижка")
}

func TestSend_SenderFailureIsContained(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	n := NewNotifier(sender, time.Second, nopLogger{})

	// Ошибка отправки не должна приводить к панике или как-либо
	// просачиваться наружу
	assert.NotPanics(t, func() {
		n.send(testNote())
	})
}
