package mailer

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"text/template"
	"time"

	"github.com/go-mail/mail/v2"
)

//go:embed "templates"
var templateFS embed.FS

const WelcomeTemplate = "customer_welcome.tmpl"

type Mailer interface {
	Send(recipient, templateFile string, data any) error
}

type SMTPMailer struct {
	dialer *mail.Dialer
	sender string
}

func NewSMTPMailer(host string, port int, username, password, sender string) *SMTPMailer {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 5 * time.Second

	return &SMTPMailer{
		dialer: dialer,
		sender: sender,
	}
}

func (m *SMTPMailer) Send(recipient, templateFile string, data any) error {
	msg, err := m.newMessage(recipient, templateFile, data)
	if err != nil {
		return err
	}

	return m.dialer.DialAndSend(msg)
}

func (m *SMTPMailer) newMessage(recipient, templateFile string, data any) (*mail.Message, error) {
	content, err := render(templateFile, data)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMessage()
	msg.SetHeader("To", recipient)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", content.subject)
	msg.SetBody("text/plain", content.plainBody)
	msg.AddAlternative("text/html", content.htmlBody)

	return msg, nil
}

type renderedEmail struct {
	subject   string
	plainBody string
	htmlBody  string
}

type templateExecutor interface {
	ExecuteTemplate(w io.Writer, name string, data any) error
}

// render executes the subject and plain text body as text templates and only
// the HTML body with HTML escaping.
func render(templateFile string, data any) (*renderedEmail, error) {
	textTmpl, err := template.New("email").ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail template %s: %w", templateFile, err)
	}

	htmlTmpl, err := htmltemplate.New("email").ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail template %s: %w", templateFile, err)
	}

	var rendered renderedEmail

	parts := []struct {
		name string
		tmpl templateExecutor
		dst  *string
	}{
		{"subject", textTmpl, &rendered.subject},
		{"plainBody", textTmpl, &rendered.plainBody},
		{"htmlBody", htmlTmpl, &rendered.htmlBody},
	}

	for _, part := range parts {
		buf := new(bytes.Buffer)

		err = part.tmpl.ExecuteTemplate(buf, part.name, data)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s of %s: %w", part.name, templateFile, err)
		}

		*part.dst = buf.String()
	}

	return &rendered, nil
}
