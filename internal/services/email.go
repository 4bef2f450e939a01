package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"unichip/internal/config"
)

// EmailService sends inquiry notifications through the configured provider
type EmailService struct {
	cfg        *config.EmailConfig
	directMail *DirectMailClient
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	s := &EmailService{cfg: cfg}
	if cfg.Provider == "directmail" {
		s.directMail = NewDirectMailClient(&cfg.DirectMail, cfg.NotifyTimeout())
	}
	return s
}

// Send delivers a plain text message to one recipient with optional copies
func (s *EmailService) Send(ctx context.Context, to string, cc []string, subject, body string) error {
	if to == "" {
		return fmt.Errorf("no recipient configured")
	}

	switch s.cfg.Provider {
	case "smtp":
		return s.sendSMTP(ctx, to, cc, subject, body)
	case "directmail":
		return s.directMail.SingleSendMail(ctx, append([]string{to}, cc...), subject, body)
	default:
		// In development mode, just log
		log.Printf("[EMAIL] Would send to %s (cc %s): %s", to, strings.Join(cc, ", "), subject)
		return nil
	}
}

// IsEnabled returns whether messages actually leave the process
func (s *EmailService) IsEnabled() bool {
	return s.cfg.Provider != "console"
}

func (s *EmailService) sendSMTP(ctx context.Context, to string, cc []string, subject, body string) error {
	// Validate configuration
	if s.cfg.SMTPHost == "" || s.cfg.Username == "" || s.cfg.Password == "" {
		return fmt.Errorf("email service not properly configured")
	}

	from := s.cfg.FromEmail
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	}
	message := buildPlainMessage(from, to, cc, subject, body, time.Now())

	addr := net.JoinHostPort(s.cfg.SMTPHost, strconv.Itoa(s.cfg.SMTPPort))
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to mail server: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	var c *smtp.Client
	if s.cfg.SMTPPort == 465 {
		c, err = smtp.NewClient(tls.Client(conn, &tls.Config{ServerName: s.cfg.SMTPHost}), s.cfg.SMTPHost)
	} else {
		c, err = smtp.NewClient(conn, s.cfg.SMTPHost)
	}
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to start smtp session: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.cfg.SMTPHost}); err != nil {
			return fmt.Errorf("failed to start tls: %w", err)
		}
	}
	if err := c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)); err != nil {
		return fmt.Errorf("smtp auth failed: %w", err)
	}
	if err := c.Mail(s.cfg.FromEmail); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	for _, rcpt := range append([]string{to}, cc...) {
		if err := c.Rcpt(rcpt); err != nil {
			return fmt.Errorf("failed to add recipient %s: %w", rcpt, err)
		}
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if _, err := w.Write(message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return c.Quit()
}

// buildPlainMessage renders a single-part text message with a Cc header
func buildPlainMessage(from, to string, cc []string, subject, body string, date time.Time) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	if len(cc) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(cc, ", "))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&b, "Date: %s\r\n", date.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}
