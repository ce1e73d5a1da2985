package mailservice

import (
	"time"

	"github.com/go-mail/mail/v2"
)

const smtpTimeout = 5 * time.Second

func NewMailer(host string, port int, username, password, sender string, tp *Template) *SMTPMailer {
	d := mail.NewDialer(host, port, username, password)
	d.Timeout = smtpTimeout

	return &SMTPMailer{
		dialer: d,
		parser: tp,
		sender: sender,
	}
}

// send renders the named template with data and delivers the result to
// recipient. The dialer opens a fresh SMTP connection per message.
func (m *SMTPMailer) send(recipient string, data any, templateFile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	subject, plainBody, htmlBody, err := m.parser.ParseTemplate(templateFile, data)
	if err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject.String())
	msg.SetBody("text/plain", plainBody.String())
	msg.AddAlternative("text/html", htmlBody.String())

	return m.dialer.DialAndSend(msg)
}
