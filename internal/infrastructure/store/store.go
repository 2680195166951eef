// Package store abre el almacén de documentos elegido por STORE_DRIVER.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/BankClients-api/internal/domain/repository"
	"github.com/jhoicas/BankClients-api/internal/infrastructure/memory"
	"github.com/jhoicas/BankClients-api/internal/infrastructure/mongo"
	"github.com/jhoicas/BankClients-api/internal/infrastructure/postgres"
	"github.com/jhoicas/BankClients-api/pkg/config"
)

// CloseFunc libera las conexiones del almacén.
type CloseFunc func(ctx context.Context) error

// Open conecta con el almacén configurado y devuelve el repositorio listo para usar.
func Open(ctx context.Context, cfg *config.Config) (repository.BankClientRepository, CloseFunc, error) {
	switch cfg.Store.Driver {
	case config.StoreMongo:
		client, err := mongo.NewClient(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		repo := mongo.NewBankClientRepository(client.Database(cfg.Mongo.Database), cfg.Mongo.Collection)
		return repo, client.Disconnect, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		closeFn := func(context.Context) error {
			pool.Close()
			return nil
		}
		return postgres.NewBankClientRepository(pool), closeFn, nil

	case config.StoreMemory:
		repo := memory.NewBankClientRepository()
		return repo, repo.Close, nil

	default:
		return nil, nil, fmt.Errorf("driver de almacén desconocido %q", cfg.Store.Driver)
	}
}
