package mail

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"

	"mabar/internal/config"
)

// Mailer sends account related email.
type Mailer interface {
	SendOtpEmail(to string, otp int) error
}

const otpSubject = "Mabar OTP Verification"

var otpTemplate = template.Must(template.New("otp").Parse(`
<html>
<body>
  <p>Welcome to Mabar!</p>
  <p>Your verification code is <strong>{{.Otp}}</strong>.</p>
  <p>Submit it to the otp-confirmation endpoint to activate your account.</p>
</body>
</html>`))

// SMTPMailer delivers mail through a plain SMTP relay.
type SMTPMailer struct {
	cfg *config.Config
}

// NewSMTPMailer creates a mailer bound to the configured relay.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

var _ Mailer = (*SMTPMailer)(nil)

// SendOtpEmail renders the OTP template and sends it to the recipient.
func (m *SMTPMailer) SendOtpEmail(to string, otp int) error {
	var body bytes.Buffer
	if err := otpTemplate.Execute(&body, struct{ Otp int }{Otp: otp}); err != nil {
		return fmt.Errorf("render otp email: %w", err)
	}
	return m.send([]string{to}, otpSubject, body.String())
}

func (m *SMTPMailer) send(to []string, subject, body string) error {
	msg := []byte("To: " + to[0] + "\r\n" +
		"From: " + m.cfg.SMTPFrom + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n" +
		"\r\n" +
		body + "\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)

	tlsconfig := &tls.Config{
		InsecureSkipVerify: true,
		ServerName:         m.cfg.SMTPHost,
	}

	var client *smtp.Client
	if m.cfg.SMTPPort == 465 {
		// implicit TLS
		conn, err := tls.Dial("tcp", addr, tlsconfig)
		if err != nil {
			return fmt.Errorf("smtp tls dial: %w", err)
		}
		defer conn.Close()
		client, err = smtp.NewClient(conn, m.cfg.SMTPHost)
		if err != nil {
			return fmt.Errorf("smtp client: %w", err)
		}
	} else {
		// STARTTLS, usually port 587
		c, err := smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("smtp dial: %w", err)
		}
		client = c
		if err = client.StartTLS(tlsconfig); err != nil {
			client.Close()
			return fmt.Errorf("smtp starttls: %w", err)
		}
	}
	defer client.Quit()

	if m.cfg.SMTPUser != "" {
		auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPass, m.cfg.SMTPHost)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(m.cfg.SMTPFrom); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp rcpt to: %w", err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}
	return nil
}
