package postgres

import (
	"context"
	"fmt"

	"countervalidator/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	apiKeysTable = "api_keys"
)

func (p *PgSQL) StoreAPIKey(ctx context.Context, key domain.APIKey) (*domain.APIKey, error) {
	var row PgAPIKey
	row.FromDomain(key)

	var stored PgAPIKey
	if _, err := p.Builder.Insert(apiKeysTable).
		Rows(row).
		Returning(&PgAPIKey{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, writeErr(err, "could not store api key into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) APIKeyByPrefix(ctx context.Context, prefix string) (*domain.APIKey, error) {
	var row PgAPIKey
	found, err := p.Builder.From(apiKeysTable).
		Where(goqu.I("prefix").Eq(prefix)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch api key by prefix: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserAPIKeys(ctx context.Context, userID domain.UserID) ([]domain.APIKey, error) {
	var rows []PgAPIKey
	if err := p.Builder.From(apiKeysTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user api keys: %w", err)
	}

	out := make([]domain.APIKey, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) RevokeAPIKey(ctx context.Context, id domain.APIKeyID) (*domain.APIKey, error) {
	var row PgAPIKey
	found, err := p.Builder.Update(apiKeysTable).
		Set(goqu.Record{"revoked": true}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgAPIKey{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not revoke api key: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
