// Package notify sends operational mails: failure notices to admins and the
// daily validation report to operators.
package notify

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"countervalidator/internal/config"
	"countervalidator/pkg/logger"
	"countervalidator/pkg/mailer"
	"countervalidator/pkg/storage"

	"go.uber.org/zap"
)

// Options lists the mail recipients.
type Options struct {
	Admins    []string
	Operators []string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{Admins: cfg.Mail.Admins, Operators: cfg.Mail.Operators}
}

//go:generate mockgen -package mocknotify -source=notify.go -destination=mock/mocknotify.go *
type Service interface {
	NotifyAdmins(ctx context.Context, subject, body string) error
	// DailyReport mails statistics of the 24 hours before now to operators and validator admins.
	DailyReport(ctx context.Context, now time.Time) error
}

type service struct {
	options Options
	storage storage.Storage
	mailer  mailer.Mailer
}

// New creates a notify Service.
func New(storage storage.Storage, m mailer.Mailer, options Options) Service {
	return &service{options: options, storage: storage, mailer: m}
}

func (s *service) NotifyAdmins(ctx context.Context, subject, body string) error {
	if len(s.options.Admins) == 0 {
		logger.Warn(ctx, "no admins configured, dropping notification", zap.String("subject", subject))

		return nil
	}
	if err := s.mailer.Send(ctx, s.options.Admins, subject, body); err != nil {
		return fmt.Errorf("could not mail admins: %w", err)
	}

	return nil
}

func (s *service) recipients(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	add := func(r string) {
		if r != "" && !seen[strings.ToLower(r)] {
			seen[strings.ToLower(r)] = true
			out = append(out, r)
		}
	}
	for _, op := range s.options.Operators {
		add(op)
	}
	admins, err := s.storage.ValidatorAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get validator admins: %w", err)
	}
	for _, a := range admins {
		if a.IsValidatorAdmin && a.ReceiveOperatorEmails {
			add(a.Email)
		}
	}

	return out, nil
}

type countRow struct {
	label string
	count int64
}

func sortedRows(m map[string]int64) []countRow {
	rows := make([]countRow, 0, len(m))
	for k, v := range m {
		rows = append(rows, countRow{label: k, count: v})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}

		return rows[i].label < rows[j].label
	})

	return rows
}

func writeTable(b *strings.Builder, title, empty string, width, lineLen int, rows []countRow) {
	if len(rows) == 0 {
		b.WriteString("\n" + empty + "\n")

		return
	}
	line := strings.Repeat("-", lineLen)
	b.WriteString("\n" + line + "\n")
	fmt.Fprintf(b, "%-*s %-10s\n", width, title, "Validations")
	b.WriteString(line + "\n")
	for _, r := range rows {
		label := r.label
		if len([]rune(label)) > width-1 {
			label = string([]rune(label)[:width-4]) + "..."
		}
		fmt.Fprintf(b, "%-*s %-10d\n", width, label, r.count)
	}
}

// RenderDailyReport formats the counts of one reporting period as plain text.
func RenderDailyReport(from, to time.Time, counts []storage.DailyCount) (string, string) {
	var total int64
	byUser := map[string]int64{}
	byCoP := map[string]int64{}
	byResult := map[string]int64{}
	for _, c := range counts {
		total += c.Count
		email := c.UserEmail
		if email == "" {
			email = "Unknown"
		}
		byUser[email] += c.Count
		cop := c.CoPVersion
		if cop == "" {
			cop = "Unknown"
		}
		byCoP[cop] += c.Count
		result := c.ValidationResult.Label()
		if result == "" {
			result = "Unknown"
		}
		byResult[result] += c.Count
	}

	const stamp = "2006-01-02 15:04:05"
	var b strings.Builder
	fmt.Fprintf(&b, "Validation report for %s to %s\n\n", from.Format(stamp), to.Format(stamp))
	fmt.Fprintf(&b, "Total validations: %d\n", total)
	b.WriteString("\nValidations by user:\n")
	writeTable(&b, "User", "No user activity in the reported period.", 40, 60, sortedRows(byUser))
	b.WriteString("\nValidations by CoP version:\n")
	writeTable(&b, "CoP Version", "No CoP version data in the reported period.", 20, 50, sortedRows(byCoP))
	b.WriteString("\nValidations by result:\n")
	writeTable(&b, "Validation Result", "No validation result data in the reported period.", 20, 50, sortedRows(byResult))

	return "Daily Validation Report - " + to.Format(time.DateOnly), b.String()
}

func (s *service) DailyReport(ctx context.Context, now time.Time) error {
	from := now.Add(-24 * time.Hour)
	counts, err := s.storage.CountsSince(ctx, from)
	if err != nil {
		return fmt.Errorf("could not count validations: %w", err)
	}
	recipients, err := s.recipients(ctx)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		logger.Info(ctx, "no operators configured, skipping daily report")

		return nil
	}

	subject, body := RenderDailyReport(from, now, counts)
	if err := s.mailer.Send(ctx, recipients, subject, body); err != nil {
		return fmt.Errorf("could not send daily report: %w", err)
	}

	return nil
}
