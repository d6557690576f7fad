// Package notifier отправляет клиенту подтверждение бронирования
// (WhatsApp + e-mail). Доставка best-effort: ошибки логируются и не
// влияют на уже зафиксированное бронирование.
package notifier

import (
	"context"
	"fmt"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
)

// WhatsAppClient интерфейс клиента WhatsApp
type WhatsAppClient interface {
	SendText(ctx context.Context, phone, message string) error
}

// MailSender интерфейс отправителя e-mail
type MailSender interface {
	Send(to, subject, body string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Contact контакты клиента для доставки уведомления
// Пустой канал пропускается
type Contact struct {
	Phone string
	Email string
}

// Notifier рассылает подтверждения бронирования по настроенным каналам
type Notifier struct {
	whatsapp WhatsAppClient
	mailer   MailSender
	log      Logger
}

// New создает новый экземпляр Notifier
func New(whatsapp WhatsAppClient, mailer MailSender, log Logger) *Notifier {
	return &Notifier{
		whatsapp: whatsapp,
		mailer:   mailer,
		log:      log,
	}
}

// SendBookingConfirmation отправляет подтверждение созданного агендамента
// Возвращает ошибку только для логирования вызывающей стороной:
// неуспех доставки не откатывает бронирование
func (n *Notifier) SendBookingConfirmation(ctx context.Context, appt *domain.Appointment, contact Contact) error {
	message := buildConfirmationMessage(appt)

	var firstErr error

	if contact.Phone != "" {
		if err := n.whatsapp.SendText(ctx, contact.Phone, message); err != nil {
			n.log.Error("notifier: WhatsApp confirmation failed for appointment id=%s: %v", appt.ID, err)
			firstErr = err
		}
	}

	if contact.Email != "" {
		if err := n.mailer.Send(contact.Email, "Consulta agendada - Consultar Processos", message); err != nil {
			n.log.Error("notifier: e-mail confirmation failed for appointment id=%s: %v", appt.ID, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

func buildConfirmationMessage(appt *domain.Appointment) string {
	modeLabel := "Online"
	if appt.Mode == domain.ModeInPerson {
		modeLabel = "Presencial"
	}

	msg := fmt.Sprintf(
		"✅ *CONSULTA AGENDADA*\n\nOlá, %s!\n\nSua consulta %s foi agendada para %s às %s.",
		appt.ClientName,
		modeLabel,
		appt.Date.Format("02/01/2006"),
		appt.StartTime,
	)

	if appt.ProcessReference != nil && *appt.ProcessReference != "" {
		msg += fmt.Sprintf("\n📄 Processo: %s", *appt.ProcessReference)
	}

	return msg
}
