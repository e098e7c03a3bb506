package storage

import (
	"context"

	"countervalidator/pkg/domain"

	"github.com/google/uuid"
)

// RegistryStorage persists the platform, report and SUSHI service registry.
type RegistryStorage interface {
	// Platforms lists platforms ordered by name, without reports and services.
	Platforms(ctx context.Context) ([]domain.Platform, error)
	// PlatformByID returns the platform with its reports and service ids, or nil.
	PlatformByID(ctx context.Context, id uuid.UUID) (*domain.Platform, error)
	SushiServices(ctx context.Context) ([]domain.SushiService, error)
	// SushiServiceByID returns nil when the service does not exist.
	SushiServiceByID(ctx context.Context, id uuid.UUID) (*domain.SushiService, error)

	// UpsertPlatform inserts or updates the platform and its reports, and replaces
	// the platform-report links with platform.Reports.
	UpsertPlatform(ctx context.Context, platform domain.Platform) error
	UpsertSushiService(ctx context.Context, service domain.SushiService) error
	// DeprecateUnseen sets deprecated=false on the listed platforms and services
	// and deprecated=true on every other one.
	DeprecateUnseen(ctx context.Context, platformIDs, serviceIDs []uuid.UUID) error
}
