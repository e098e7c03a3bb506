// Package registry serves the platform and SUSHI service registry and keeps
// it in sync with the COUNTER registry.
package registry

import (
	"context"
	"fmt"

	"countervalidator/pkg/domain"
	"countervalidator/pkg/logger"
	"countervalidator/pkg/registry"
	"countervalidator/pkg/serrors"
	"countervalidator/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SyncResult summarises one registry sync.
type SyncResult struct {
	Platforms     int
	SushiServices int
}

//go:generate mockgen -package mockregistry -source=registry.go -destination=mock/mockregistry.go *
type Service interface {
	Platforms(ctx context.Context) ([]domain.Platform, error)
	Platform(ctx context.Context, id uuid.UUID) (*domain.Platform, error)
	SushiServices(ctx context.Context) ([]domain.SushiService, error)
	SushiService(ctx context.Context, id uuid.UUID) (*domain.SushiService, error)
	// Sync downloads the registry and mirrors it in one transaction. Entries
	// missing from the registry are marked deprecated.
	Sync(ctx context.Context) (SyncResult, error)
}

type service struct {
	storage storage.Storage
	client  registry.Client
}

// New creates a registry Service.
func New(storage storage.Storage, client registry.Client) Service {
	return &service{storage: storage, client: client}
}

func (s *service) Platforms(ctx context.Context) ([]domain.Platform, error) {
	platforms, err := s.storage.Platforms(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get platforms: %w", err)
	}

	return platforms, nil
}

func (s *service) Platform(ctx context.Context, id uuid.UUID) (*domain.Platform, error) {
	platform, err := s.storage.PlatformByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get platform: %w", err)
	}
	if platform == nil {
		return nil, serrors.With(serrors.ErrNotFound, "platform not found")
	}

	return platform, nil
}

func (s *service) SushiServices(ctx context.Context) ([]domain.SushiService, error) {
	services, err := s.storage.SushiServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get sushi services: %w", err)
	}

	return services, nil
}

func (s *service) SushiService(ctx context.Context, id uuid.UUID) (*domain.SushiService, error) {
	service, err := s.storage.SushiServiceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get sushi service: %w", err)
	}
	if service == nil {
		return nil, serrors.With(serrors.ErrNotFound, "sushi service not found")
	}

	return service, nil
}

func (s *service) Sync(ctx context.Context) (SyncResult, error) {
	logger.Debug(ctx, "getting platform list")
	platforms, err := s.client.Platforms(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("could not get platforms: %w", err)
	}

	// services are downloaded before the transaction starts to keep it short
	services := make([][]registry.SushiService, len(platforms))
	for i, p := range platforms {
		logger.Debug(ctx, "processing platform", zap.Int("index", i+1), zap.Int("total", len(platforms)))
		for _, link := range p.SushiServices {
			service, err := s.client.SushiService(ctx, link.URL)
			if err != nil {
				return SyncResult{}, err
			}
			services[i] = append(services[i], *service)
		}
	}

	var res SyncResult
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		platformIDs := make([]uuid.UUID, 0, len(platforms))
		var serviceIDs []uuid.UUID
		for i, p := range platforms {
			if err := tx.UpsertPlatform(ctx, p.ToDomain()); err != nil {
				return fmt.Errorf("could not upsert platform %s: %w", p.ID, err)
			}
			platformIDs = append(platformIDs, p.ID)
			for _, service := range services[i] {
				if err := tx.UpsertSushiService(ctx, service.ToDomain(p.ID)); err != nil {
					return fmt.Errorf("could not upsert sushi service %s: %w", service.ID, err)
				}
				serviceIDs = append(serviceIDs, service.ID)
			}
		}
		if err := tx.DeprecateUnseen(ctx, platformIDs, serviceIDs); err != nil {
			return fmt.Errorf("could not mark unseen entries: %w", err)
		}
		res = SyncResult{Platforms: len(platformIDs), SushiServices: len(serviceIDs)}

		return nil
	})
	if err != nil {
		return SyncResult{}, fmt.Errorf("could not sync registry: %w", err)
	}

	return res, nil
}
