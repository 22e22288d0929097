// Package mailer delivers verification links by SMTP when a transport is
// configured, and logs them otherwise so an operator can retrieve the link
// manually. Delivery is best-effort: callers must never fail a request
// because a mail could not be sent.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"mamacare/internal/config"
)

const dialTimeout = 10 * time.Second

// Sender delivers an email verification link to a recipient.
type Sender interface {
	SendVerification(ctx context.Context, toEmail, link string) error
}

// NewSender returns an SMTP-backed sender when the transport is configured,
// else a log-only fallback.
func NewSender(cfg config.SMTPConfig) Sender {
	if cfg.Configured() {
		return &SMTPSender{cfg: cfg}
	}
	log.Println("SMTP_HOST not set, verification links will be logged instead of mailed")
	return &LogSender{}
}

// LogSender records verification links via the log instead of sending mail.
type LogSender struct{}

func (s *LogSender) SendVerification(_ context.Context, toEmail, link string) error {
	log.Printf("verification link for %s: %s", toEmail, link)
	return nil
}

// SMTPSender sends verification mail over SMTP.
type SMTPSender struct {
	cfg config.SMTPConfig
}

func (s *SMTPSender) SendVerification(_ context.Context, toEmail, link string) error {
	from := mail.Address{Name: "MamaCare", Address: s.cfg.From}
	subject := "Verify your email address"
	body := fmt.Sprintf("Welcome to MamaCare!\r\n\r\nPlease confirm your email address by opening the link below:\r\n\r\n%s\r\n\r\nIf you did not create an account, you can ignore this message.\r\n", link)

	// Build RFC 2822 message.
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from.String()))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", toEmail))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z)))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	switch s.cfg.Secure {
	case "ssl":
		return s.sendSSL(addr, from.Address, toEmail, msg.String())
	case "none":
		return s.sendPlain(addr, from.Address, toEmail, msg.String())
	default: // "starttls"
		return s.sendStartTLS(addr, from.Address, toEmail, msg.String())
	}
}

// sendStartTLS sends mail using STARTTLS (port 587 typical).
func (s *SMTPSender) sendStartTLS(addr, from, to, msg string) error {
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", addr, err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
		return fmt.Errorf("starting tls: %w", err)
	}
	return s.transmit(client, from, to, msg)
}

// sendSSL sends mail over an implicit TLS connection (port 465 typical).
func (s *SMTPSender) sendSSL(addr, from, to, msg string) error {
	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: s.cfg.Host})
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", addr, err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}
	defer client.Close()

	return s.transmit(client, from, to, msg)
}

// sendPlain sends mail without encryption. Local relays only.
func (s *SMTPSender) sendPlain(addr, from, to, msg string) error {
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", addr, err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("creating smtp client: %w", err)
	}
	defer client.Close()

	return s.transmit(client, from, to, msg)
}

func (s *SMTPSender) transmit(client *smtp.Client, from, to, msg string) error {
	if s.cfg.Username != "" {
		auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err := client.Mail(from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing message: %w", err)
	}
	return client.Quit()
}
