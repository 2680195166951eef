package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/BankClients-api/internal/domain/entity"
	"github.com/jhoicas/BankClients-api/internal/infrastructure/store"
	"github.com/jhoicas/BankClients-api/pkg/config"
)

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreMemory}}
	repo, closeFn, err := store.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer func() { assert.NoError(t, closeFn(context.Background())) }()

	saved, err := repo.Save(context.Background(), &entity.BankClient{Name: "ana", TypeClient: "PERSONAL"})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "redis"}}
	_, _, err := store.Open(context.Background(), cfg)
	assert.Error(t, err)
}
