package validator

import (
	"context"
	"fmt"

	"countervalidator/pkg/domain"
	"countervalidator/pkg/serrors"
	"countervalidator/pkg/storage"
)

func requireAdmin(user *domain.User) error {
	if user == nil {
		return serrors.KindOnly(serrors.ErrUnauthorized)
	}
	if !user.IsAdmin() {
		return serrors.With(serrors.ErrForbidden, "admin permission required")
	}

	return nil
}

// checkStatsUser makes sure the user statistics are filtered by exists.
func (s *service) checkStatsUser(ctx context.Context, user *domain.User, of *domain.UserID) error {
	if err := requireAdmin(user); err != nil {
		return err
	}
	if of == nil {
		return nil
	}
	u, err := s.storage.UserByID(ctx, *of)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if u == nil {
		return serrors.With(serrors.ErrNotFound, "user not found")
	}

	return nil
}

func (s *service) Cores(ctx context.Context, user *domain.User, filter storage.CoreFilter) (storage.CorePage, error) {
	if err := requireAdmin(user); err != nil {
		return storage.CorePage{}, err
	}
	page, err := s.storage.Cores(ctx, filter)
	if err != nil {
		return storage.CorePage{}, fmt.Errorf("could not list validation cores: %w", err)
	}

	return page, nil
}

func (s *service) Core(ctx context.Context, user *domain.User, id domain.CoreID) (*domain.ValidationCore, error) {
	if err := requireAdmin(user); err != nil {
		return nil, err
	}
	core, err := s.storage.CoreByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get validation core: %w", err)
	}
	if core == nil {
		return nil, serrors.With(serrors.ErrNotFound, "validation core not found")
	}

	return core, nil
}

func (s *service) CoreStats(ctx context.Context, user *domain.User, of *domain.UserID) (storage.CoreStats, error) {
	if err := s.checkStatsUser(ctx, user, of); err != nil {
		return storage.CoreStats{}, err
	}
	stats, err := s.storage.CoreStats(ctx, of)
	if err != nil {
		return storage.CoreStats{}, fmt.Errorf("could not get core stats: %w", err)
	}

	return stats, nil
}

func (s *service) CoreTimeStats(ctx context.Context, user *domain.User, of *domain.UserID) ([]storage.TimeStat, error) {
	if err := s.checkStatsUser(ctx, user, of); err != nil {
		return nil, err
	}
	stats, err := s.storage.CoreTimeStats(ctx, of)
	if err != nil {
		return nil, fmt.Errorf("could not get core time stats: %w", err)
	}

	return stats, nil
}

func (s *service) CoreSplitStats(ctx context.Context, user *domain.User, of *domain.UserID) ([]storage.SplitStat, error) {
	if err := s.checkStatsUser(ctx, user, of); err != nil {
		return nil, err
	}
	stats, err := s.storage.CoreSplitStats(ctx, of)
	if err != nil {
		return nil, fmt.Errorf("could not get core split stats: %w", err)
	}

	return stats, nil
}

func (s *service) QueueStatus(ctx context.Context, user *domain.User) (*QueueStatus, error) {
	if err := requireAdmin(user); err != nil {
		return nil, err
	}
	counts, err := s.storage.QueueCounts(ctx, QueueValidation)
	if err != nil {
		return nil, fmt.Errorf("could not count queued validations: %w", err)
	}

	return &QueueStatus{Queued: counts.Queued, Running: counts.Running, Workers: s.options.Workers}, nil
}
