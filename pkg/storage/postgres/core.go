package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"countervalidator/pkg/domain"
	"countervalidator/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

var coreOrderColumns = map[string]string{ //nolint: gochecknoglobals
	"created":           "c.created",
	"file_size":         "c.file_size",
	"used_memory":       "c.used_memory",
	"duration":          "c.duration",
	"validation_result": "c.validation_result",
	"cop_version":       "c.cop_version",
	"report_code":       "c.report_code",
	"status":            "c.status",
}

func (p *PgSQL) coreSelect() *goqu.SelectDataset {
	cols := qualifiedCoreColumns()
	cols = append(cols, ownerColumns()...)

	return p.Builder.From(goqu.T(coresTable).As("c")).
		LeftJoin(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("c.user_id")))).
		Select(cols...)
}

func (p *PgSQL) Cores(ctx context.Context, filter storage.CoreFilter) (storage.CorePage, error) {
	w := coreFilterExpressions("c", filter.ValidationResults, filter.CoPVersions,
		filter.ReportCodes, filter.APIEndpoints, filter.DataSources)
	if filter.Search != "" {
		w = append(w, searchExpression(filter.Search, "u.first_name", "u.last_name", "u.email"))
	}

	ds := p.coreSelect().Where(w...)
	count, err := ds.CountContext(ctx)
	if err != nil {
		return storage.CorePage{}, fmt.Errorf("could not count validation cores: %w", err)
	}

	order := []exp.OrderedExpression{goqu.I("c.created").Desc()}
	if col, ok := coreOrderColumns[filter.OrderBy]; ok {
		order = []exp.OrderedExpression{orderBy(col, filter.OrderDesc)}
	}
	order = append(order, goqu.I("c.id").Desc())
	ds = ds.Order(order...).Offset(filter.Offset)
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}

	var rows []PgCoreRow
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.CorePage{}, fmt.Errorf("could not fetch validation cores: %w", err)
	}

	out := make([]domain.ValidationCore, 0, len(rows))
	for i := range rows {
		c, err := rows[i].ToDomain()
		if err != nil {
			return storage.CorePage{}, err
		}
		out = append(out, *c)
	}

	return storage.CorePage{Cores: out, Count: count}, nil
}

func (p *PgSQL) CoreByID(ctx context.Context, id domain.CoreID) (*domain.ValidationCore, error) {
	var row PgCoreRow
	found, err := p.coreSelect().
		Where(goqu.I("c.id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch validation core: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// MarkCoreFailed only touches cores still waiting or running, so a late
// failure report never overwrites a finished result.
func (p *PgSQL) MarkCoreFailed(ctx context.Context, validationID domain.ValidationID, errorMessage string) error {
	core := domain.ValidationCore{}
	core.SetErrorMessage(errorMessage)

	if _, err := p.Builder.Update(coresTable).
		Set(goqu.Record{
			"status":        int(domain.ValidationStatusFailure),
			"error_message": core.ErrorMessage,
			"last_updated":  goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("id").In(p.Builder.From(validationsTable).
				Select(goqu.I("core_id")).
				Where(goqu.I("id").Eq(uuid.UUID(validationID)))),
			goqu.I("status").In(int(domain.ValidationStatusWaiting), int(domain.ValidationStatusRunning)),
		).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not mark validation core failed: %w", err)
	}

	return nil
}

type pgCoreStats struct {
	Total            int64           `db:"total"`
	DurationMin      sql.NullFloat64 `db:"duration_min"`
	DurationMax      sql.NullFloat64 `db:"duration_max"`
	DurationAvg      sql.NullFloat64 `db:"duration_avg"`
	DurationMedian   sql.NullFloat64 `db:"duration_median"`
	FileSizeMin      sql.NullFloat64 `db:"file_size_min"`
	FileSizeMax      sql.NullFloat64 `db:"file_size_max"`
	FileSizeAvg      sql.NullFloat64 `db:"file_size_avg"`
	FileSizeMedian   sql.NullFloat64 `db:"file_size_median"`
	UsedMemoryMin    sql.NullFloat64 `db:"used_memory_min"`
	UsedMemoryMax    sql.NullFloat64 `db:"used_memory_max"`
	UsedMemoryAvg    sql.NullFloat64 `db:"used_memory_avg"`
	UsedMemoryMedian sql.NullFloat64 `db:"used_memory_median"`
}

func nullFloatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64

	return &v
}

func userScope(ds *goqu.SelectDataset, userID *domain.UserID) *goqu.SelectDataset {
	if userID == nil {
		return ds
	}

	return ds.Where(goqu.I("user_id").Eq(uuid.UUID(*userID)))
}

func (p *PgSQL) CoreStats(ctx context.Context, userID *domain.UserID) (storage.CoreStats, error) {
	cols := []interface{}{goqu.COUNT(goqu.Star()).As("total")}
	for _, c := range []string{"duration", "file_size", "used_memory"} {
		cols = append(cols,
			goqu.L("MIN(?)::float8", goqu.I(c)).As(c+"_min"),
			goqu.L("MAX(?)::float8", goqu.I(c)).As(c+"_max"),
			goqu.L("AVG(?)::float8", goqu.I(c)).As(c+"_avg"),
			goqu.L("percentile_cont(0.5) WITHIN GROUP (ORDER BY ?)", goqu.I(c)).As(c+"_median"),
		)
	}

	var row pgCoreStats
	if _, err := userScope(p.Builder.From(coresTable).Select(cols...), userID).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return storage.CoreStats{}, fmt.Errorf("could not compute core stats: %w", err)
	}

	return storage.CoreStats{
		Total: row.Total,
		Duration: storage.Aggregate{
			Min: nullFloatPtr(row.DurationMin), Max: nullFloatPtr(row.DurationMax),
			Avg: nullFloatPtr(row.DurationAvg), Median: nullFloatPtr(row.DurationMedian),
		},
		FileSize: storage.Aggregate{
			Min: nullFloatPtr(row.FileSizeMin), Max: nullFloatPtr(row.FileSizeMax),
			Avg: nullFloatPtr(row.FileSizeAvg), Median: nullFloatPtr(row.FileSizeMedian),
		},
		UsedMemory: storage.Aggregate{
			Min: nullFloatPtr(row.UsedMemoryMin), Max: nullFloatPtr(row.UsedMemoryMax),
			Avg: nullFloatPtr(row.UsedMemoryAvg), Median: nullFloatPtr(row.UsedMemoryMedian),
		},
	}, nil
}

type pgTimeStat struct {
	Date          time.Time `db:"date"`
	Total         int64     `db:"total"`
	Unknown       int64     `db:"r_0"`
	Passed        int64     `db:"r_10"`
	Notice        int64     `db:"r_20"`
	Warning       int64     `db:"r_30"`
	Error         int64     `db:"r_40"`
	CriticalError int64     `db:"r_50"`
	FatalError    int64     `db:"r_60"`
}

func (s *pgTimeStat) byLevel() map[domain.SeverityLevel]int64 {
	return map[domain.SeverityLevel]int64{
		domain.SeverityUnknown:       s.Unknown,
		domain.SeverityPassed:        s.Passed,
		domain.SeverityNotice:        s.Notice,
		domain.SeverityWarning:       s.Warning,
		domain.SeverityError:         s.Error,
		domain.SeverityCriticalError: s.CriticalError,
		domain.SeverityFatalError:    s.FatalError,
	}
}

func (p *PgSQL) CoreTimeStats(ctx context.Context, userID *domain.UserID) ([]storage.TimeStat, error) {
	day := goqu.L("DATE(?)", goqu.I("created"))
	cols := []interface{}{day.As("date"), goqu.COUNT(goqu.Star()).As("total")}
	for _, level := range domain.SeverityLevels() {
		cols = append(cols, goqu.L("COUNT(*) FILTER (WHERE ? = ?)", goqu.I("validation_result"), int(level)).
			As("r_"+strconv.Itoa(int(level))))
	}

	var rows []pgTimeStat
	if err := userScope(p.Builder.From(coresTable).Select(cols...), userID).
		GroupBy(day).
		Order(day.Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not compute core time stats: %w", err)
	}

	out := make([]storage.TimeStat, 0, len(rows))
	for i := range rows {
		byResult := map[string]int64{}
		for level, n := range rows[i].byLevel() {
			byResult[level.Label()] = n
		}
		out = append(out, storage.TimeStat{Date: rows[i].Date, Total: rows[i].Total, ByResult: byResult})
	}

	return out, nil
}

func (p *PgSQL) CoreSplitStats(ctx context.Context, userID *domain.UserID) ([]storage.SplitStat, error) {
	result := goqu.Case().Value(goqu.I("validation_result"))
	for _, level := range domain.SeverityLevels() {
		result = result.When(int(level), level.Label())
	}

	cols := []interface{}{
		goqu.Case().When(goqu.I("sushi_credentials_checksum").Eq(""), domain.SourceFile).
			Else(domain.SourceCounterAPI).As("source"),
		goqu.Case().When(goqu.I("api_key_prefix").Eq(""), domain.MethodManual).
			Else(domain.MethodAPI).As("method"),
		result.Else("unknown").As("result"),
		goqu.I("cop_version"),
		goqu.I("report_code"),
		goqu.COUNT(goqu.Star()).As("count"),
	}

	var rows []storage.SplitStat
	if err := userScope(p.Builder.From(coresTable).Select(cols...), userID).
		GroupBy(goqu.L("1"), goqu.L("2"), goqu.L("3"), goqu.L("4"), goqu.L("5")).
		Order(goqu.L("1").Asc(), goqu.L("2").Asc(), goqu.L("3").Asc(), goqu.L("4").Asc(), goqu.L("5").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not compute core split stats: %w", err)
	}

	return rows, nil
}

type pgDailyCount struct {
	UserEmail        string `db:"user_email"`
	CoPVersion       string `db:"cop_version"`
	ValidationResult int    `db:"validation_result"`
	Count            int64  `db:"count"`
}

func (p *PgSQL) CountsSince(ctx context.Context, since time.Time) ([]storage.DailyCount, error) {
	email := goqu.L("COALESCE(?, '')", goqu.I("u.email"))

	var rows []pgDailyCount
	if err := p.Builder.From(goqu.T(coresTable).As("c")).
		LeftJoin(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("c.user_id")))).
		Select(
			email.As("user_email"),
			goqu.I("c.cop_version"),
			goqu.I("c.validation_result"),
			goqu.COUNT(goqu.Star()).As("count"),
		).
		Where(goqu.I("c.created").Gte(since)).
		GroupBy(email, goqu.I("c.cop_version"), goqu.I("c.validation_result")).
		Order(email.Asc(), goqu.I("c.cop_version").Asc(), goqu.I("c.validation_result").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not count recent validations: %w", err)
	}

	out := make([]storage.DailyCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, storage.DailyCount{
			UserEmail:        r.UserEmail,
			CoPVersion:       r.CoPVersion,
			ValidationResult: domain.SeverityLevel(r.ValidationResult),
			Count:            r.Count,
		})
	}

	return out, nil
}
