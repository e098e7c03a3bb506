package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"countervalidator/pkg/domain"
	"countervalidator/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	coresTable       = "validation_cores"
	validationsTable = "validations"
	counterAPITable  = "counter_api_validations"
)

var coreColumns = []string{ //nolint: gochecknoglobals
	"id", "created", "last_updated", "cop_version", "api_endpoint", "report_code", "status", "user_id",
	"user_email_checksum", "api_key_prefix", "expiration_date", "validation_result", "file_checksum",
	"file_size", "used_memory", "duration", "stats", "sushi_credentials_checksum", "error_message",
}

var validationOrderColumns = map[string]string{ //nolint: gochecknoglobals
	"file_size":         "c.file_size",
	"created":           "c.created",
	"validation_result": "c.validation_result",
	"expiration_date":   "c.expiration_date",
	"report_code":       "c.report_code",
	"cop_version":       "c.cop_version",
	"status":            "c.status",
	"filename":          "v.filename",
	"user_note":         "v.user_note",
}

func ownerColumns() []interface{} {
	return []interface{}{
		goqu.I("u.id").As("owner_id"),
		goqu.I("u.email").As("owner_email"),
		goqu.I("u.first_name").As("owner_first_name"),
		goqu.I("u.last_name").As("owner_last_name"),
		goqu.I("u.is_validator_admin").As("owner_is_validator_admin"),
		goqu.I("u.is_superuser").As("owner_is_superuser"),
		goqu.I("u.is_active").As("owner_is_active"),
	}
}

func qualifiedCoreColumns() []interface{} {
	cols := make([]interface{}, 0, len(coreColumns))
	for _, c := range coreColumns {
		cols = append(cols, goqu.I("c."+c).As(c))
	}

	return cols
}

func (p *PgSQL) validationSelect() *goqu.SelectDataset {
	cols := qualifiedCoreColumns()
	cols = append(cols,
		goqu.I("v.id").As("v_id"),
		goqu.I("v.filename"),
		goqu.I("v.file_path"),
		goqu.I("v.result_data"),
		goqu.I("v.user_note"),
		goqu.I("v.public_id"),
		goqu.I("a.validation_id").As("api_validation_id"),
		goqu.I("a.credentials"),
		goqu.I("a.url").As("sushi_url"),
		goqu.I("a.requested_cop_version"),
		goqu.I("a.requested_report_code"),
		goqu.I("a.requested_extra_attributes"),
		goqu.I("a.requested_begin_date"),
		goqu.I("a.requested_end_date"),
		goqu.I("a.use_short_dates"),
	)
	cols = append(cols, ownerColumns()...)

	return p.Builder.From(goqu.T(validationsTable).As("v")).
		InnerJoin(goqu.T(coresTable).As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("v.core_id")))).
		LeftJoin(goqu.T(counterAPITable).As("a"), goqu.On(goqu.I("a.validation_id").Eq(goqu.I("v.id")))).
		LeftJoin(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("c.user_id")))).
		Select(cols...)
}

func (p *PgSQL) StoreValidation(ctx context.Context, validation domain.Validation) (*domain.Validation, error) {
	now := time.Now()
	if validation.Core.Created.IsZero() {
		validation.Core.Created = now
	}
	validation.Core.LastUpdated = now

	var core PgValidationCore
	if err := core.FromDomain(validation.Core); err != nil {
		return nil, err
	}
	if _, err := p.Builder.Insert(coresTable).Rows(core).Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not store validation core into pg: %w", err)
	}

	var row PgValidation
	if err := row.FromDomain(validation); err != nil {
		return nil, err
	}
	if _, err := p.Builder.Insert(validationsTable).Rows(row).Executor().ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("could not store validation into pg: %w", err)
	}

	if validation.CounterAPI != nil {
		var api PgCounterAPIValidation
		if err := api.FromDomain(validation.ID, *validation.CounterAPI); err != nil {
			return nil, err
		}
		if _, err := p.Builder.Insert(counterAPITable).Rows(api).Executor().ExecContext(ctx); err != nil {
			return nil, fmt.Errorf("could not store counter api validation into pg: %w", err)
		}
	}

	return p.ValidationByID(ctx, validation.ID)
}

func (p *PgSQL) UpdateValidation(ctx context.Context, validation domain.Validation) error {
	validation.Core.LastUpdated = time.Now()

	var core PgValidationCore
	if err := core.FromDomain(validation.Core); err != nil {
		return err
	}
	if _, err := p.Builder.Update(coresTable).
		Set(core).
		Where(goqu.I("id").Eq(core.ID)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not update validation core in pg: %w", err)
	}

	var row PgValidation
	if err := row.FromDomain(validation); err != nil {
		return err
	}
	if _, err := p.Builder.Update(validationsTable).
		Set(row).
		Where(goqu.I("id").Eq(row.ID)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not update validation in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) ValidationByID(ctx context.Context, id domain.ValidationID) (*domain.Validation, error) {
	return p.validationWhere(ctx, goqu.I("v.id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) ValidationByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Validation, error) {
	return p.validationWhere(ctx, goqu.I("v.public_id").Eq(publicID))
}

func (p *PgSQL) validationWhere(ctx context.Context, where goqu.Expression) (*domain.Validation, error) {
	var row PgValidationRow
	found, err := p.validationSelect().Where(where).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch validation: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Validations lists current validations matching the filter. Results default
// to newest first; any explicit order is followed by the id as tie-breaker.
func (p *PgSQL) Validations(ctx context.Context, filter storage.ValidationFilter) (storage.ValidationPage, error) {
	now := filter.Now
	if now.IsZero() {
		now = time.Now()
	}

	w := []goqu.Expression{
		goqu.Or(goqu.I("c.expiration_date").IsNull(), goqu.I("c.expiration_date").Gte(now)),
	}
	if filter.UserID != nil {
		w = append(w, goqu.I("c.user_id").Eq(uuid.UUID(*filter.UserID)))
	}
	w = append(w, coreFilterExpressions("c", filter.ValidationResults, filter.CoPVersions,
		filter.ReportCodes, filter.APIEndpoints, filter.DataSources)...)
	if filter.Published != nil {
		if *filter.Published {
			w = append(w, goqu.I("v.public_id").IsNotNull())
		} else {
			w = append(w, goqu.I("v.public_id").IsNull())
		}
	}
	if filter.Search != "" {
		cols := []string{"v.user_note", "v.filename"}
		if filter.SearchUser {
			cols = append(cols, "u.first_name", "u.last_name", "u.email")
		}
		w = append(w, searchExpression(filter.Search, cols...))
	}
	if filter.CreatedFrom != nil {
		w = append(w, goqu.I("c.created").Gte(*filter.CreatedFrom))
	}
	if filter.CreatedTo != nil {
		w = append(w, goqu.I("c.created").Lt(*filter.CreatedTo))
	}

	ds := p.validationSelect().Where(w...)
	count, err := ds.CountContext(ctx)
	if err != nil {
		return storage.ValidationPage{}, fmt.Errorf("could not count validations: %w", err)
	}

	order := []exp.OrderedExpression{goqu.I("c.created").Desc()}
	if col, ok := validationOrderColumns[filter.OrderBy]; ok {
		order = []exp.OrderedExpression{orderBy(col, filter.OrderDesc)}
	}
	order = append(order, goqu.I("v.id").Desc())
	ds = ds.Order(order...).Offset(filter.Offset)
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}

	var rows []PgValidationRow
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ValidationPage{}, fmt.Errorf("could not fetch validations: %w", err)
	}

	out := make([]domain.Validation, 0, len(rows))
	for i := range rows {
		v, err := rows[i].ToDomain()
		if err != nil {
			return storage.ValidationPage{}, err
		}
		out = append(out, *v)
	}

	return storage.ValidationPage{Validations: out, Count: count}, nil
}

func (p *PgSQL) DeleteValidation(ctx context.Context, id domain.ValidationID) error {
	if _, err := p.Builder.Delete(validationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete validation: %w", err)
	}

	return nil
}

func (p *PgSQL) DeleteExpiredValidations(ctx context.Context, now time.Time) ([]string, error) {
	expired := p.Builder.From(coresTable).
		Select(goqu.I("id")).
		Where(goqu.I("expiration_date").Lt(now))

	var paths []string
	if err := p.Builder.Delete(validationsTable).
		Where(goqu.I("core_id").In(expired)).
		Returning(goqu.I("file_path")).
		Executor().ScanValsContext(ctx, &paths); err != nil {
		return nil, fmt.Errorf("could not delete expired validations: %w", err)
	}

	return paths, nil
}

// coreFilterExpressions builds the filters shared by validation and core
// listings. alias is the validation_cores table alias.
func coreFilterExpressions(alias string,
	results []domain.SeverityLevel,
	copVersions, reportCodes, apiEndpoints, dataSources []string) []goqu.Expression {
	col := func(name string) exp.IdentifierExpression { return goqu.I(alias + "." + name) }

	var w []goqu.Expression
	if len(results) > 0 {
		vals := make([]int, 0, len(results))
		for _, r := range results {
			vals = append(vals, int(r))
		}
		w = append(w, col("validation_result").In(vals))
	}
	if len(copVersions) > 0 {
		w = append(w, col("cop_version").In(copVersions))
	}
	if len(reportCodes) > 0 {
		w = append(w, col("report_code").In(reportCodes))
	}
	if len(apiEndpoints) > 0 {
		w = append(w, col("api_endpoint").In(apiEndpoints))
	}

	var file, api bool
	for _, s := range dataSources {
		switch s {
		case domain.SourceFile:
			file = true
		case domain.SourceCounterAPI:
			api = true
		}
	}
	switch {
	case file && !api:
		w = append(w, col("sushi_credentials_checksum").Eq(""))
	case api && !file:
		w = append(w, col("sushi_credentials_checksum").Neq(""))
	}

	return w
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`) //nolint: gochecknoglobals

// searchExpression matches term case-insensitively as a substring of any of the columns.
func searchExpression(term string, cols ...string) goqu.Expression {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	ors := make([]exp.Expression, 0, len(cols))
	for _, c := range cols {
		ors = append(ors, goqu.I(c).ILike(pattern))
	}

	return goqu.Or(ors...)
}

func orderBy(col string, desc bool) exp.OrderedExpression {
	if desc {
		return goqu.I(col).Desc()
	}

	return goqu.I(col).Asc()
}
