package postgres

import (
	"context"
	"fmt"
	"strings"

	"countervalidator/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	usersTable = "users"
)

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)
	row.Email = strings.ToLower(strings.TrimSpace(row.Email))

	var stored PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, writeErr(err, "could not store user into pg")
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return p.userWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return p.userWhere(ctx, goqu.Func("LOWER", goqu.I("email")).Eq(strings.ToLower(strings.TrimSpace(email))))
}

func (p *PgSQL) userWhere(ctx context.Context, where goqu.Expression) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).Where(where).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// ValidatorAdmins returns active superusers and validator admins ordered by email.
func (p *PgSQL) ValidatorAdmins(ctx context.Context) ([]domain.User, error) {
	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Where(
			goqu.I("is_active").IsTrue(),
			goqu.Or(goqu.I("is_superuser").IsTrue(), goqu.I("is_validator_admin").IsTrue()),
		).
		Order(goqu.I("email").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch validator admins: %w", err)
	}

	out := make([]domain.User, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
