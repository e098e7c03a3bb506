// Package mailer sends plain text notification mails.
package mailer

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"countervalidator/pkg/logger"

	"go.uber.org/zap"
)

// Mailer delivers a plain text message to a list of recipients.
//
//go:generate mockgen -package mockmailer -source=mailer.go -destination=mock/mockmailer.go *
type Mailer interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

// Options configures the SMTP mailer.
type Options struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	StartTLS bool
	Timeout  time.Duration
}

// New returns an SMTP mailer, or a mailer that only logs when no host is configured.
func New(opts Options) Mailer {
	if opts.Host == "" {
		return LogMailer{}
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}

	return &SMTP{opts: opts}
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct{}

// Send implements Mailer.
func (LogMailer) Send(ctx context.Context, to []string, subject, body string) error {
	logger.Info(ctx, "mail not sent, smtp is not configured",
		zap.Strings("to", to),
		zap.String("subject", subject),
		zap.String("body", body))

	return nil
}

// SMTP sends mails through an SMTP relay.
type SMTP struct {
	opts Options
}

// BuildMessage renders the headers and body of a plain text mail.
func BuildMessage(from string, to []string, subject, body string, now time.Time) string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ", ")))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", strings.NewReplacer("\r", " ", "\n", " ").Replace(subject)))
	msg.WriteString(fmt.Sprintf("Date: %s\r\n", now.Format(time.RFC1123Z)))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(strings.ReplaceAll(strings.ReplaceAll(body, "\r\n", "\n"), "\n", "\r\n"))

	return msg.String()
}

// Send implements Mailer.
func (s *SMTP) Send(ctx context.Context, to []string, subject, body string) error {
	if len(to) == 0 {
		return nil
	}
	addr := net.JoinHostPort(s.opts.Host, fmt.Sprint(s.opts.Port))

	dialer := &net.Dialer{Timeout: s.opts.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("could not connect to smtp server: %w", err)
	}
	defer func() { _ = conn.Close() }()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.opts.Host)
	if err != nil {
		return fmt.Errorf("could not create smtp client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if s.opts.StartTLS {
		if err := client.StartTLS(&tls.Config{ServerName: s.opts.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("could not start tls: %w", err)
		}
	}
	if s.opts.User != "" {
		if err := client.Auth(smtp.PlainAuth("", s.opts.User, s.opts.Password, s.opts.Host)); err != nil {
			return fmt.Errorf("could not authenticate: %w", err)
		}
	}
	if err := client.Mail(s.opts.From); err != nil {
		return fmt.Errorf("could not set sender: %w", err)
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("could not add recipient %s: %w", rcpt, err)
		}
	}
	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("could not start data: %w", err)
	}
	if _, err := w.Write([]byte(BuildMessage(s.opts.From, to, subject, body, time.Now()))); err != nil {
		_ = w.Close()

		return fmt.Errorf("could not write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("could not finish message: %w", err)
	}
	if err := client.Quit(); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("could not quit: %w", err)
	}

	return nil
}
