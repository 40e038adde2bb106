// Package mail sends plain-text notification emails over SMTP.
package mail

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
)

var ErrDisabled = errors.New("smtp is not configured")

type Message struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}

type Sender interface {
	Send(ctx context.Context, m Message) error
}

type SMTPSender struct {
	Host     string
	Port     string
	From     string
	Password string

	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(host, port, from, password string) *SMTPSender {
	return &SMTPSender{Host: host, Port: port, From: from, Password: password, send: smtp.SendMail}
}

func (s *SMTPSender) Enabled() bool {
	return s.Host != "" && s.From != ""
}

// Send delivers m. smtp.SendMail has no context support, so ctx is only
// checked before dialing.
func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	if !s.Enabled() {
		return ErrDisabled
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	auth := smtp.PlainAuth("", s.From, s.Password, s.Host)
	return s.send(s.Host+":"+s.Port, auth, s.From, []string{m.To}, buildMessage(s.From, m))
}

func buildMessage(from string, m Message) []byte {
	var b strings.Builder
	b.WriteString("Subject: " + headerSafe(m.Subject) + "\r\n")
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + headerSafe(m.To) + "\r\n")
	if m.ReplyTo != "" {
		b.WriteString("Reply-To: " + headerSafe(m.ReplyTo) + "\r\n")
	}
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(m.Body + "\r\n")
	return []byte(b.String())
}

// headerSafe drops line breaks so user input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
