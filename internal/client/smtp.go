package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doggyworld/backend/internal/config"
)

type EncryptionMode string

const (
	EncNone     EncryptionMode = "NONE"
	EncStartTLS EncryptionMode = "STARTTLS"
	EncSSLTLS   EncryptionMode = "SSL/TLS"
)

const smtpDialTimeout = 15 * time.Second

// SMTPMailer delivers mail over SMTP with implicit TLS or STARTTLS.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	fromName string
	fromAddr string
	enc      EncryptionMode
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	mode := EncryptionMode(strings.ToUpper(strings.TrimSpace(cfg.Encryption)))
	if mode != EncNone && mode != EncStartTLS && mode != EncSSLTLS {
		mode = EncSSLTLS
	}
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.Username,
		password: cfg.Password,
		fromName: cfg.FromName,
		fromAddr: cfg.FromAddr,
		enc:      mode,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) (*Delivery, error) {
	msg := buildMIMEMessage(m.fromName, m.fromAddr, to, subject, htmlBody)

	dialer := net.Dialer{Timeout: smtpDialTimeout}
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining > 0 && remaining < dialer.Timeout {
			dialer.Timeout = remaining
		}
	}

	c, err := m.connect(ctx, &dialer)
	if err != nil {
		return nil, err
	}
	defer c.Quit()

	if m.username != "" {
		auth := smtp.PlainAuth("", m.username, m.password, m.host)
		if err := c.Auth(auth); err != nil {
			return nil, fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := c.Mail(m.fromAddr); err != nil {
		return nil, fmt.Errorf("smtp MAIL FROM: %w", err)
	}
	if err := c.Rcpt(strings.TrimSpace(to)); err != nil {
		return nil, fmt.Errorf("smtp RCPT TO %s: %w", to, err)
	}

	w, err := c.Data()
	if err != nil {
		return nil, fmt.Errorf("smtp DATA: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("smtp write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("smtp close data: %w", err)
	}

	return &Delivery{MessageID: uuid.NewString()}, nil
}

func (m *SMTPMailer) connect(ctx context.Context, dialer *net.Dialer) (*smtp.Client, error) {
	address := net.JoinHostPort(m.host, m.port)

	if m.enc == EncSSLTLS {
		conn, err := tls.DialWithDialer(dialer, "tcp", address, &tls.Config{ServerName: m.host})
		if err != nil {
			return nil, fmt.Errorf("smtp tls dial: %w", err)
		}
		c, err := smtp.NewClient(conn, m.host)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("smtp new client: %w", err)
		}
		return c, nil
	}

	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("smtp dial: %w", err)
	}
	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("smtp new client: %w", err)
	}
	if m.enc == EncStartTLS {
		if err := c.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			c.Close()
			return nil, fmt.Errorf("smtp starttls: %w", err)
		}
	}
	return c, nil
}

func buildMIMEMessage(fromName, fromAddr, to, subject, htmlBody string) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %q <%s>\r\n", fromName, fromAddr)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")
	return b.Bytes()
}
