package registry_test

import (
	"context"
	"errors"
	"testing"

	"countervalidator/internal/registry"
	"countervalidator/pkg/domain"
	pkgregistry "countervalidator/pkg/registry"
	mockpkgregistry "countervalidator/pkg/registry/mock"
	"countervalidator/pkg/serrors"
	"countervalidator/pkg/storage"
	mockstorage "countervalidator/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func expectWithTx(ctrl *gomock.Controller, m *mockstorage.MockStorage, fn func(tx *mockstorage.MockAllStorage)) {
	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestService_Sync(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	client := mockpkgregistry.NewMockClient(ctrl)
	s := registry.New(st, client)

	p1, p2 := uuid.New(), uuid.New()
	s1 := uuid.New()
	client.EXPECT().Platforms(gomock.Any()).Return([]pkgregistry.Platform{
		{ID: p1, Name: "One", Reports: []domain.Report{{ReportID: "TR", CounterRelease: "5"}},
			SushiServices: []pkgregistry.ServiceLink{{URL: "https://registry/s1"}}},
		{ID: p2, Name: "Two"},
	}, nil)
	client.EXPECT().SushiService(gomock.Any(), "https://registry/s1").
		Return(&pkgregistry.SushiService{ID: s1, CounterRelease: "5", URL: "https://sushi/"}, nil)

	expectWithTx(ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpsertPlatform(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p domain.Platform) error {
				if p.ID == p1 {
					require.Equal(t, []domain.Report{{ReportID: "TR", CounterRelease: "5"}}, p.Reports)
				}

				return nil
			}).Times(2)
		tx.EXPECT().UpsertSushiService(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, svc domain.SushiService) error {
				require.Equal(t, s1, svc.ID)
				require.Equal(t, p1, *svc.PlatformID)

				return nil
			})
		tx.EXPECT().DeprecateUnseen(gomock.Any(), []uuid.UUID{p1, p2}, []uuid.UUID{s1}).Return(nil)
	})

	res, err := s.Sync(context.Background())
	require.NoError(t, err)
	require.Equal(t, registry.SyncResult{Platforms: 2, SushiServices: 1}, res)
}

func TestService_Sync_registryDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	client := mockpkgregistry.NewMockClient(ctrl)
	s := registry.New(st, client)

	client.EXPECT().Platforms(gomock.Any()).Return(nil, errors.New("returned non OK status code (500)"))

	_, err := s.Sync(context.Background())
	require.Error(t, err)
}

func TestService_PlatformNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := registry.New(st, mockpkgregistry.NewMockClient(ctrl))

	st.EXPECT().PlatformByID(gomock.Any(), gomock.Any()).Return(nil, nil)
	_, err := s.Platform(context.Background(), uuid.New())
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().SushiServiceByID(gomock.Any(), gomock.Any()).Return(nil, nil)
	_, err = s.SushiService(context.Background(), uuid.New())
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
