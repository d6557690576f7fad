package notifier

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPMailer отправляет письма через SMTP
// Если host не задан, работает в режиме симуляции
type SMTPMailer struct {
	host    string
	port    int
	user    string
	pass    string
	from    string
	log     Logger
	enabled bool
}

// NewSMTPMailer создает новый экземпляр SMTP отправителя
func NewSMTPMailer(host string, port int, user, pass, from string, log Logger) *SMTPMailer {
	enabled := host != ""
	if !enabled {
		log.Warn("SMTP not configured, e-mails will be simulated")
	}

	return &SMTPMailer{
		host:    host,
		port:    port,
		user:    user,
		pass:    pass,
		from:    from,
		log:     log,
		enabled: enabled,
	}
}

// Send отправляет письмо с указанной темой и телом
func (m *SMTPMailer) Send(to, subject, body string) error {
	if !m.enabled {
		m.log.Info("[SIMULADO] e-mail to %s: %s", to, subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("notifier: failed to send e-mail to %s: %w", to, err)
	}

	m.log.Info("e-mail sent to %s", to)
	return nil
}
