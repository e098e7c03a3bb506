package postgres

import (
	"context"
	"fmt"

	"countervalidator/pkg/domain"
	"countervalidator/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	messagesTable = "validation_messages"

	messageBatchSize = 1000
)

func (p *PgSQL) StoreMessages(ctx context.Context, messages ...domain.ValidationMessage) error {
	for start := 0; start < len(messages); start += messageBatchSize {
		end := min(start+messageBatchSize, len(messages))

		rows := make([]PgValidationMessage, end-start)
		for i := range rows {
			rows[i].FromDomain(messages[start+i])
		}
		if _, err := p.Builder.Insert(messagesTable).Rows(rows).Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not store validation messages into pg: %w", err)
		}
	}

	return nil
}

func (p *PgSQL) DeleteMessages(ctx context.Context, validationID domain.ValidationID) error {
	if _, err := p.Builder.Delete(messagesTable).
		Where(goqu.I("validation_id").Eq(uuid.UUID(validationID))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete validation messages: %w", err)
	}

	return nil
}

func (p *PgSQL) Messages(ctx context.Context, filter storage.MessageFilter) (storage.MessagePage, error) {
	w := []goqu.Expression{goqu.I("validation_id").Eq(uuid.UUID(filter.ValidationID))}
	if len(filter.Severities) > 0 {
		vals := make([]int, 0, len(filter.Severities))
		for _, s := range filter.Severities {
			vals = append(vals, int(s))
		}
		w = append(w, goqu.I("severity").In(vals))
	}
	if filter.Search != "" {
		w = append(w, searchExpression(filter.Search, "message", "hint", "summary", "data"))
	}

	ds := p.Builder.From(messagesTable).Where(w...)
	count, err := ds.CountContext(ctx)
	if err != nil {
		return storage.MessagePage{}, fmt.Errorf("could not count validation messages: %w", err)
	}

	order := []exp.OrderedExpression{goqu.I("number").Asc()}
	for _, f := range storage.MessageOrderFields {
		if f == filter.OrderBy {
			order = []exp.OrderedExpression{orderBy(f, filter.OrderDesc), goqu.I("number").Asc()}
		}
	}
	ds = ds.Order(order...).Offset(filter.Offset)
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}

	var rows []PgValidationMessage
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.MessagePage{}, fmt.Errorf("could not fetch validation messages: %w", err)
	}

	out := make([]domain.ValidationMessage, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return storage.MessagePage{Messages: out, Count: count}, nil
}

func (p *PgSQL) SummaryStats(ctx context.Context, validationID domain.ValidationID) ([]domain.SummaryStat, error) {
	var rows []struct {
		Summary string `db:"summary"`
		Count   int64  `db:"count"`
	}
	if err := p.Builder.From(messagesTable).
		Select(goqu.I("summary"), goqu.COUNT(goqu.Star()).As("count")).
		Where(goqu.I("validation_id").Eq(uuid.UUID(validationID))).
		GroupBy(goqu.I("summary")).
		Order(goqu.L("2").Desc(), goqu.I("summary").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not compute summary stats: %w", err)
	}

	out := make([]domain.SummaryStat, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.SummaryStat{Summary: r.Summary, Count: r.Count})
	}

	return out, nil
}

func (p *PgSQL) SummarySeverityStats(ctx context.Context,
	validationID domain.ValidationID) ([]domain.SummarySeverityStat, error) {
	var rows []struct {
		Summary  string `db:"summary"`
		Severity int    `db:"severity"`
		Count    int64  `db:"count"`
	}
	if err := p.Builder.From(messagesTable).
		Select(goqu.I("summary"), goqu.I("severity"), goqu.COUNT(goqu.Star()).As("count")).
		Where(goqu.I("validation_id").Eq(uuid.UUID(validationID))).
		GroupBy(goqu.I("summary"), goqu.I("severity")).
		Order(goqu.I("severity").Desc(), goqu.L("3").Desc(), goqu.I("summary").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not compute summary severity stats: %w", err)
	}

	out := make([]domain.SummarySeverityStat, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.SummarySeverityStat{
			Summary:  r.Summary,
			Severity: domain.SeverityLevel(r.Severity).Label(),
			Count:    r.Count,
		})
	}

	return out, nil
}
