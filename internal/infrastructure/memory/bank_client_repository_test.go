package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/BankClients-api/internal/domain/entity"
	"github.com/jhoicas/BankClients-api/internal/infrastructure/memory"
)

func newClient(name string) *entity.BankClient {
	return &entity.BankClient{
		Name:       name,
		TypeClient: "PERSONAL",
		BankAccounts: []entity.BankAccount{
			{Number: "001-" + name, Type: "AHORROS", Balance: decimal.RequireFromString("10.50")},
		},
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestSave_AsignaIDYNoMutaEntrada(t *testing.T) {
	repo := memory.NewBankClientRepository()
	in := newClient("ana")

	saved, err := repo.Save(context.Background(), in)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Empty(t, in.ID, "la entrada no debe modificarse")

	got, err := repo.FindByID(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestSave_ConIDReemplaza(t *testing.T) {
	repo := memory.NewBankClientRepository()
	saved, err := repo.Save(context.Background(), newClient("ana"))
	require.NoError(t, err)

	saved.Name = "beatriz"
	_, err = repo.Save(context.Background(), saved)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.Len())
	got, _ := repo.FindByID(context.Background(), saved.ID)
	assert.Equal(t, "beatriz", got.Name)
}

func TestFindByID_Ausente(t *testing.T) {
	repo := memory.NewBankClientRepository()
	got, err := repo.FindByID(context.Background(), "no-existe")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestFindByID_DevuelveCopia(t *testing.T) {
	repo := memory.NewBankClientRepository()
	saved, _ := repo.Save(context.Background(), newClient("ana"))

	got, _ := repo.FindByID(context.Background(), saved.ID)
	got.BankAccounts[0].Number = "mutado"

	again, _ := repo.FindByID(context.Background(), saved.ID)
	assert.Equal(t, "001-ana", again.BankAccounts[0].Number)
}

func TestFindAll_OrdenDeInsercionYReiniciable(t *testing.T) {
	repo := memory.NewBankClientRepository()
	for _, n := range []string{"a", "b", "c"} {
		_, err := repo.Save(context.Background(), newClient(n))
		require.NoError(t, err)
	}

	for range 2 {
		var names []string
		for c, err := range repo.FindAll(context.Background()) {
			require.NoError(t, err)
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"a", "b", "c"}, names)
	}
}

func TestFindAll_ContextoCancelado(t *testing.T) {
	repo := memory.NewBankClientRepository()
	_, _ = repo.Save(context.Background(), newClient("a"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var gotErr error
	for _, err := range repo.FindAll(ctx) {
		gotErr = err
	}
	assert.ErrorIs(t, gotErr, context.Canceled)
}

func TestDelete(t *testing.T) {
	repo := memory.NewBankClientRepository()
	a, _ := repo.Save(context.Background(), newClient("a"))
	b, _ := repo.Save(context.Background(), newClient("b"))

	require.NoError(t, repo.Delete(context.Background(), a))
	got, _ := repo.FindByID(context.Background(), a.ID)
	assert.Nil(t, got)
	assert.Equal(t, 1, repo.Len())

	var ids []string
	for c, err := range repo.FindAll(context.Background()) {
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{b.ID}, ids)
}
