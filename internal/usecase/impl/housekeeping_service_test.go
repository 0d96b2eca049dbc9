package impl

import (
	"context"
	"testing"
	"time"

	mockRepo "folio/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHousekeepingService(t *testing.T) (*housekeepingService, *mockRepo.MockSessionRepository, *mockRepo.MockPasswordResetRepository) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	resetRepo := mockRepo.NewMockPasswordResetRepository(t)

	srv := NewHousekeepingService(HousekeepingServiceParams{
		SessionRepo:       sessionRepo,
		PasswordResetRepo: resetRepo,
		Config:            newTestConfig(),
		Logger:            newDiscardLogger(),
	}).(*housekeepingService)
	srv.now = fixedClock

	return srv, sessionRepo, resetRepo
}

func TestHousekeepingService_Purge(t *testing.T) {
	ctx := context.Background()
	cutoff := testNow.Add(-24 * time.Hour)

	t.Run("purges both tables", func(t *testing.T) {
		srv, sessionRepo, resetRepo := createTestHousekeepingService(t)
		sessionRepo.EXPECT().DeleteExpiredBefore(ctx, cutoff).Return(int64(5), nil)
		resetRepo.EXPECT().DeleteStaleBefore(ctx, cutoff).Return(int64(2), nil)

		output, err := srv.Purge(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(5), output.Sessions)
		assert.Equal(t, int64(2), output.ResetTokens)
	})

	t.Run("reset purge failure keeps the session count", func(t *testing.T) {
		srv, sessionRepo, resetRepo := createTestHousekeepingService(t)
		sessionRepo.EXPECT().DeleteExpiredBefore(ctx, cutoff).Return(int64(1), nil)
		resetRepo.EXPECT().DeleteStaleBefore(ctx, cutoff).Return(int64(0), errors.New("timeout"))

		output, err := srv.Purge(ctx)

		require.Error(t, err)
		assert.Equal(t, int64(1), output.Sessions)
	})
}
