package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/ptr"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/types"
)

type fakeWhatsApp struct {
	phone   string
	message string
	err     error
}

func (f *fakeWhatsApp) SendText(_ context.Context, phone, message string) error {
	f.phone = phone
	f.message = message
	return f.err
}

type fakeMailer struct {
	to      string
	subject string
	body    string
	err     error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.to = to
	f.subject = subject
	f.body = body
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:         "appt-1",
		ClientName: "Maria Souza",
		Date:       time.Date(2024, time.December, 2, 0, 0, 0, 0, time.UTC),
		StartTime:  types.TimeString("10:00"),
		Mode:       domain.ModeOnline,
		Status:     domain.StatusScheduled,
	}
}

func TestSendBookingConfirmation_BothChannels(t *testing.T) {
	wa := &fakeWhatsApp{}
	mail := &fakeMailer{}
	n := New(wa, mail, nopLogger{})

	err := n.SendBookingConfirmation(context.Background(), testAppointment(), Contact{
		Phone: "11987654321",
		Email: "maria@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "11987654321", wa.phone)
	assert.Contains(t, wa.message, "CONSULTA AGENDADA")
	assert.Contains(t, wa.message, "Maria Souza")
	assert.Contains(t, wa.message, "02/12/2024")
	assert.Contains(t, wa.message, "10:00")
	assert.Contains(t, wa.message, "Online")

	assert.Equal(t, "maria@example.com", mail.to)
	assert.Equal(t, wa.message, mail.body)
}

func TestSendBookingConfirmation_SkipsEmptyChannels(t *testing.T) {
	wa := &fakeWhatsApp{}
	mail := &fakeMailer{}
	n := New(wa, mail, nopLogger{})

	err := n.SendBookingConfirmation(context.Background(), testAppointment(), Contact{Phone: "11987654321"})
	require.NoError(t, err)

	assert.NotEmpty(t, wa.phone)
	assert.Empty(t, mail.to)
}

func TestSendBookingConfirmation_InPersonLabel(t *testing.T) {
	wa := &fakeWhatsApp{}
	n := New(wa, &fakeMailer{}, nopLogger{})

	appt := testAppointment()
	appt.Mode = domain.ModeInPerson

	require.NoError(t, n.SendBookingConfirmation(context.Background(), appt, Contact{Phone: "11987654321"}))
	assert.Contains(t, wa.message, "Presencial")
}

func TestSendBookingConfirmation_ProcessReference(t *testing.T) {
	wa := &fakeWhatsApp{}
	n := New(wa, &fakeMailer{}, nopLogger{})

	appt := testAppointment()
	appt.ProcessReference = ptr.Ptr("0001234-56.2024.8.26.0100")

	require.NoError(t, n.SendBookingConfirmation(context.Background(), appt, Contact{Phone: "11987654321"}))
	assert.Contains(t, wa.message, "0001234-56.2024.8.26.0100")
}

func TestSendBookingConfirmation_ReturnsFirstError(t *testing.T) {
	waErr := errors.New("zapi down")
	wa := &fakeWhatsApp{err: waErr}
	mail := &fakeMailer{err: errors.New("smtp down")}
	n := New(wa, mail, nopLogger{})

	err := n.SendBookingConfirmation(context.Background(), testAppointment(), Contact{
		Phone: "11987654321",
		Email: "maria@example.com",
	})
	assert.Equal(t, waErr, err)

	// Оба канала были испробованы несмотря на ошибку первого
	assert.NotEmpty(t, mail.to)
}
