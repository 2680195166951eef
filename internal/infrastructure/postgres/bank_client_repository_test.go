package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/BankClients-api/internal/domain/entity"
	"github.com/jhoicas/BankClients-api/internal/infrastructure/postgres"
	"github.com/jhoicas/BankClients-api/pkg/config"
)

// newTestRepo conecta con TEST_DATABASE_URL y trabaja dentro de una transacción
// que se descarta al final, así la base queda intacta.
func newTestRepo(t *testing.T) *postgres.BankClientRepo {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL no definido; se omite la prueba contra PostgreSQL")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })

	require.NoError(t, postgres.EnsureSchema(ctx, tx))
	return postgres.NewBankClientRepository(tx)
}

func TestBankClientRepo_CRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created := time.Date(2024, 2, 3, 4, 5, 6, 789123456, time.UTC)
	saved, err := repo.Save(ctx, &entity.BankClient{
		Name:       "ana",
		TypeClient: "PERSONAL",
		BankAccounts: []entity.BankAccount{
			{Number: "1", Type: "AHORROS", Balance: decimal.RequireFromString("10.50")},
			{Number: "2", Type: "CORRIENTE", Balance: decimal.RequireFromString("-3")},
		},
		CreatedAt: created,
	})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ana", got.Name)
	assert.True(t, saved.CreatedAt.Equal(got.CreatedAt))
	require.Len(t, got.BankAccounts, 2)
	assert.Equal(t, "1", got.BankAccounts[0].Number)
	assert.True(t, decimal.RequireFromString("10.5").Equal(got.BankAccounts[0].Balance))
	assert.Equal(t, "2", got.BankAccounts[1].Number)

	got.Name = "beatriz"
	got.BankAccounts = got.BankAccounts[1:]
	_, err = repo.Save(ctx, got)
	require.NoError(t, err)

	again, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "beatriz", again.Name)
	require.Len(t, again.BankAccounts, 1)
	assert.Equal(t, "2", again.BankAccounts[0].Number)

	var ids []string
	for c, err := range repo.FindAll(ctx) {
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, saved.ID)

	require.NoError(t, repo.Delete(ctx, again))
	gone, err := repo.FindByID(ctx, saved.ID)
	assert.NoError(t, err)
	assert.Nil(t, gone)
}

func TestBankClientRepo_FindByIDAusente(t *testing.T) {
	repo := newTestRepo(t)
	got, err := repo.FindByID(context.Background(), "no-existe")
	assert.NoError(t, err)
	assert.Nil(t, got)
}
