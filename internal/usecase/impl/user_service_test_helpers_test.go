package impl

import (
	"io"
	"log/slog"
	"time"

	"greenlake/config"
	"greenlake/internal/domain/entity"
	"greenlake/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(cacheTTL time.Duration) *config.Config {
	return &config.Config{
		Cache: &config.CacheConfig{
			Provider: "memory",
			TTL:      cacheTTL,
		},
	}
}

func newWalletUser(address string) *entity.User {
	sealed := "sealed-key"

	return &entity.User{
		ID:                  uuid.New(),
		Username:            "traveller",
		Email:               "traveller@example.com",
		WalletAddress:       &address,
		EncryptedPrivateKey: &sealed,
	}
}

func newReceipt(hash string, amount int64) *service.Receipt {
	return &service.Receipt{
		TransactionHash: hash,
		Amount:          decimal.NewFromInt(amount),
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
