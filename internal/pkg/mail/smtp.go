package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"github.com/barbershop-uz/backend/internal/pkg/models"
)

const otpSubject = "Your Barber Shop Code"

var otpTemplate = template.Must(template.New("otp").Parse(
	`<h2>Your Barber Shop code is: <b>{{.Code}}</b></h2><p>It expires in {{.Minutes}} minutes.</p>`))

// SMTPMailer sends OTP emails over SMTP with TLS
type SMTPMailer struct {
	config    models.SMTPConfig
	otpExpiry time.Duration
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config models.SMTPConfig, otpExpiry time.Duration) *SMTPMailer {
	return &SMTPMailer{
		config:    config,
		otpExpiry: otpExpiry,
	}
}

// SendOTP sends a one-time code to the given address
func (m *SMTPMailer) SendOTP(ctx context.Context, to, code string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	body, err := m.renderBody(code)
	if err != nil {
		return err
	}

	message := m.buildMessage(to, otpSubject, body)

	return m.send(to, message)
}

func (m *SMTPMailer) renderBody(code string) (string, error) {
	data := struct {
		Code    string
		Minutes int
	}{
		Code:    code,
		Minutes: int(m.otpExpiry.Minutes()),
	}

	var body bytes.Buffer
	if err := otpTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to render OTP email: %w", err)
	}

	return body.String(), nil
}

func (m *SMTPMailer) buildMessage(to, subject, body string) []byte {
	var message bytes.Buffer
	fmt.Fprintf(&message, "From: Barber Shop <%s>\r\n", m.config.From)
	fmt.Fprintf(&message, "To: %s\r\n", to)
	fmt.Fprintf(&message, "Subject: %s\r\n", subject)
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	fmt.Fprintf(&message, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	message.WriteString("\r\n")
	message.WriteString(body)
	return message.Bytes()
}

func (m *SMTPMailer) send(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	tlsConfig := &tls.Config{ServerName: m.config.Host}
	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := client.Mail(m.config.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err := w.Write(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}
