// Package share implementa los destinos de compartir de la exportación.
package share

import (
	"io"

	"gopkg.in/gomail.v2"
)

// SMTPConfig credenciales del servidor de correo saliente.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Configured indica si hay un servidor SMTP utilizable.
func (c SMTPConfig) Configured() bool { return c.Host != "" && c.From != "" }

// MailSender implementa export.MailSender sobre gomail.
type MailSender struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

// NewMailSender construye el sender con el dialer SMTP.
func NewMailSender(cfg SMTPConfig) *MailSender {
	return &MailSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send envía el correo con la factura adjunta.
func (s *MailSender) Send(to, subject, body string, attachment []byte, filename string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachment)
		return err
	}))
	return s.dialer.DialAndSend(m)
}
