package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bookify/config"
	"bookify/internal/domain/repository"
	mockRepo "bookify/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Loyalty: &config.LoyaltyConfig{
			EarnRate:   0.1,
			PointValue: 0.5,
		},
	}
}

// expectExecute wires the transaction manager mock so the transactional
// closure runs against a fresh repository factory configured by setup. The
// closure's error is returned as the transaction outcome.
func expectExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}
