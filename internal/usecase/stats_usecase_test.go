package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/esmael/chapapay/internal/domain"
	"github.com/esmael/chapapay/internal/usecase/mocks"
)

func TestGetSystemStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("recomputes and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		admins := mocks.NewMockAdminRepository(ctrl)
		txns := mocks.NewMockTransactionRepository(ctrl)
		stats := mocks.NewMockStatsRepository(ctrl)

		users.EXPECT().List(gomock.Any()).Return([]domain.Account{
			{ID: "user-001", Status: domain.StatusActive},
			{ID: "user-002", Status: domain.StatusInactive},
		}, nil)
		admins.EXPECT().List(gomock.Any()).Return([]domain.Account{
			{ID: "admin-001", Status: domain.StatusActive},
		}, nil)
		txns.EXPECT().ListSeeded(gomock.Any()).Return([]domain.Transaction{
			{ID: "TXN-001", Amount: decimal.NewFromInt(100)},
			{ID: "TXN-002", Amount: decimal.NewFromInt(50)},
		}, nil)

		var saved domain.SystemStats
		stats.EXPECT().Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s domain.SystemStats) error {
				saved = s
				return nil
			})

		uc := NewStatsUseCase(users, admins, txns, stats, nil, zerolog.Nop())
		got, err := uc.GetSystemStats(ctx)
		if err != nil {
			t.Fatalf("stats failed: %v", err)
		}

		if got.TotalUsers != 2 || got.ActiveUsers != 1 {
			t.Errorf("users: %+v", got)
		}
		if got.TotalAdmins != 1 || got.ActiveAdmins != 1 {
			t.Errorf("admins: %+v", got)
		}
		if got.TotalTransactions != 2 || !got.TotalRevenue.Equal(decimal.NewFromInt(150)) {
			t.Errorf("transactions: %+v", got)
		}
		if saved.TotalUsers != got.TotalUsers || !saved.TotalRevenue.Equal(got.TotalRevenue) {
			t.Errorf("persisted snapshot differs: %+v vs %+v", saved, got)
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		admins := mocks.NewMockAdminRepository(ctrl)
		txns := mocks.NewMockTransactionRepository(ctrl)
		stats := mocks.NewMockStatsRepository(ctrl)

		boom := errors.New("store down")
		users.EXPECT().List(gomock.Any()).Return(nil, boom)

		uc := NewStatsUseCase(users, admins, txns, stats, nil, zerolog.Nop())
		if _, err := uc.GetSystemStats(ctx); !errors.Is(err, boom) {
			t.Fatalf("expected propagated error, got %v", err)
		}
	})

	t.Run("snapshot save failure fails the call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepository(ctrl)
		admins := mocks.NewMockAdminRepository(ctrl)
		txns := mocks.NewMockTransactionRepository(ctrl)
		stats := mocks.NewMockStatsRepository(ctrl)

		users.EXPECT().List(gomock.Any()).Return([]domain.Account{}, nil)
		admins.EXPECT().List(gomock.Any()).Return([]domain.Account{}, nil)
		txns.EXPECT().ListSeeded(gomock.Any()).Return([]domain.Transaction{}, nil)

		boom := errors.New("write failed")
		stats.EXPECT().Save(gomock.Any(), gomock.Any()).Return(boom)

		uc := NewStatsUseCase(users, admins, txns, stats, nil, zerolog.Nop())
		if _, err := uc.GetSystemStats(ctx); !errors.Is(err, boom) {
			t.Fatalf("expected save error, got %v", err)
		}
	})
}
