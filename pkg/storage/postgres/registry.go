package postgres

import (
	"context"
	"fmt"

	"countervalidator/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	reportsTable         = "reports"
	platformsTable       = "platforms"
	platformReportsTable = "platform_reports"
	sushiServicesTable   = "sushi_services"
)

func (p *PgSQL) Platforms(ctx context.Context) ([]domain.Platform, error) {
	var rows []PgPlatform
	if err := p.Builder.From(platformsTable).
		Order(goqu.I("name").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch platforms: %w", err)
	}

	out := make([]domain.Platform, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) PlatformByID(ctx context.Context, id uuid.UUID) (*domain.Platform, error) {
	var row PgPlatform
	found, err := p.Builder.From(platformsTable).
		Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch platform: %w", err)
	}
	if !found {
		return nil, nil
	}
	platform := row.ToDomain()

	var reports []PgReport
	if err := p.Builder.From(goqu.T(reportsTable).As("r")).
		InnerJoin(goqu.T(platformReportsTable).As("pr"), goqu.On(goqu.I("pr.report_id").Eq(goqu.I("r.report_id")))).
		Select(goqu.I("r.report_id"), goqu.I("r.counter_release")).
		Where(goqu.I("pr.platform_id").Eq(id)).
		Order(goqu.I("r.report_id").Asc()).
		Executor().ScanStructsContext(ctx, &reports); err != nil {
		return nil, fmt.Errorf("could not fetch platform reports: %w", err)
	}
	platform.Reports = make([]domain.Report, 0, len(reports))
	for _, r := range reports {
		platform.Reports = append(platform.Reports, domain.Report{ReportID: r.ReportID, CounterRelease: r.CounterRelease})
	}

	var serviceIDs []uuid.UUID
	if err := p.Builder.From(sushiServicesTable).
		Select(goqu.I("id")).
		Where(goqu.I("platform_id").Eq(id)).
		Order(goqu.I("id").Asc()).
		Executor().ScanValsContext(ctx, &serviceIDs); err != nil {
		return nil, fmt.Errorf("could not fetch platform sushi services: %w", err)
	}
	platform.SushiServices = serviceIDs

	return &platform, nil
}

func (p *PgSQL) SushiServices(ctx context.Context) ([]domain.SushiService, error) {
	var rows []PgSushiService
	if err := p.Builder.From(sushiServicesTable).
		Order(goqu.I("url").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch sushi services: %w", err)
	}

	out := make([]domain.SushiService, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) SushiServiceByID(ctx context.Context, id uuid.UUID) (*domain.SushiService, error) {
	var row PgSushiService
	found, err := p.Builder.From(sushiServicesTable).
		Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch sushi service: %w", err)
	}
	if !found {
		return nil, nil
	}
	s := row.ToDomain()

	return &s, nil
}

func (p *PgSQL) UpsertPlatform(ctx context.Context, platform domain.Platform) error {
	row := PgPlatform{
		ID:                  platform.ID,
		Name:                platform.Name,
		Abbrev:              platform.Abbrev,
		ContentProviderName: platform.ContentProviderName,
		Website:             platform.Website,
		Deprecated:          platform.Deprecated,
	}
	if _, err := p.Builder.Insert(platformsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"name":                  goqu.I("excluded.name"),
			"abbrev":                goqu.I("excluded.abbrev"),
			"content_provider_name": goqu.I("excluded.content_provider_name"),
			"website":               goqu.I("excluded.website"),
			"deprecated":            goqu.I("excluded.deprecated"),
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not upsert platform: %w", err)
	}

	if _, err := p.Builder.Delete(platformReportsTable).
		Where(goqu.I("platform_id").Eq(platform.ID)).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear platform reports: %w", err)
	}
	if len(platform.Reports) == 0 {
		return nil
	}

	reports := make([]PgReport, 0, len(platform.Reports))
	links := make([]goqu.Record, 0, len(platform.Reports))
	seen := map[string]bool{}
	for _, r := range platform.Reports {
		if seen[r.ReportID] {
			continue
		}
		seen[r.ReportID] = true
		reports = append(reports, PgReport{ReportID: r.ReportID, CounterRelease: r.CounterRelease})
		links = append(links, goqu.Record{"platform_id": platform.ID, "report_id": r.ReportID})
	}

	if _, err := p.Builder.Insert(reportsTable).
		Rows(reports).
		OnConflict(goqu.DoUpdate("report_id", goqu.Record{
			"counter_release": goqu.I("excluded.counter_release"),
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not upsert reports: %w", err)
	}
	if _, err := p.Builder.Insert(platformReportsTable).
		Rows(links).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not link platform reports: %w", err)
	}

	return nil
}

func (p *PgSQL) UpsertSushiService(ctx context.Context, service domain.SushiService) error {
	var row PgSushiService
	row.FromDomain(service)

	if _, err := p.Builder.Insert(sushiServicesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"counter_release":          goqu.I("excluded.counter_release"),
			"url":                      goqu.I("excluded.url"),
			"platform_id":              goqu.I("excluded.platform_id"),
			"ip_address_authorization": goqu.I("excluded.ip_address_authorization"),
			"api_key_required":         goqu.I("excluded.api_key_required"),
			"platform_attr_required":   goqu.I("excluded.platform_attr_required"),
			"requestor_id_required":    goqu.I("excluded.requestor_id_required"),
			"deprecated":               goqu.I("excluded.deprecated"),
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not upsert sushi service: %w", err)
	}

	return nil
}

func (p *PgSQL) DeprecateUnseen(ctx context.Context, platformIDs, serviceIDs []uuid.UUID) error {
	if err := p.deprecateUnseen(ctx, platformsTable, platformIDs); err != nil {
		return err
	}

	return p.deprecateUnseen(ctx, sushiServicesTable, serviceIDs)
}

func (p *PgSQL) deprecateUnseen(ctx context.Context, table string, seen []uuid.UUID) error {
	ids := make([]string, 0, len(seen))
	for _, id := range seen {
		ids = append(ids, id.String())
	}

	unseen := p.Builder.Update(table).Set(goqu.Record{"deprecated": true})
	if len(ids) > 0 {
		unseen = unseen.Where(goqu.I("id").NotIn(ids))
		if _, err := p.Builder.Update(table).
			Set(goqu.Record{"deprecated": false}).
			Where(goqu.I("id").In(ids)).
			Executor().ExecContext(ctx); err != nil {
			return fmt.Errorf("could not undeprecate %s: %w", table, err)
		}
	}
	if _, err := unseen.Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not deprecate %s: %w", table, err)
	}

	return nil
}
