package mailservice

import (
	"bytes"
	"context"
	"sync"

	"github.com/go-mail/mail/v2"

	"github.com/ayumukasuga/bloglist/internal/common"
)

// MailService consumes user lifecycle events from the message broker and
// turns them into outbound email.
type MailService struct {
	mb     common.MessageConsumer
	m      Mailer
	logger MailLogger
	ctx    context.Context
	cancel context.CancelFunc
}

// MailLogger is the subset of slog.Logger the service uses. Tests substitute
// a mock.
type MailLogger interface {
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

// Mailer renders a named template and delivers it to a single recipient.
type Mailer interface {
	send(recipient string, data any, templateFile string) error
}

// SMTPMailer delivers rendered templates over SMTP. The mutex serializes
// sends over the shared dialer.
type SMTPMailer struct {
	mu     sync.Mutex
	dialer Dialer
	parser TemplateParser
	sender string
}

// Dialer abstracts the SMTP client. Tests substitute a mock.
type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

// TemplateParser renders the subject, plain body and HTML body sections of a
// named email template.
type TemplateParser interface {
	ParseTemplate(name string, data any) (*bytes.Buffer, *bytes.Buffer, *bytes.Buffer, error)
}

// Template renders the email templates embedded in the binary.
type Template struct{}
