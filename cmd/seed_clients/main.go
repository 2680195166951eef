// seed_clients carga clientes de ejemplo en el almacén configurado (STORE_DRIVER).
//
// Uso: go run ./cmd/seed_clients [-drop]
// Con -drop elimina antes todos los clientes existentes.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/BankClients-api/internal/application/dto"
	"github.com/jhoicas/BankClients-api/internal/application/usecase"
	"github.com/jhoicas/BankClients-api/internal/infrastructure/store"
	"github.com/jhoicas/BankClients-api/pkg/config"
	"github.com/jhoicas/BankClients-api/pkg/logger"
)

var sampleClients = []dto.BankClientRequest{
	{
		Name:       "María Fernanda López",
		TypeClient: "PERSONAL",
		BankAccounts: []dto.BankAccountRequest{
			{Number: "4001-0001-11", Type: "AHORROS", Balance: decimal.RequireFromString("2500000.00")},
			{Number: "4001-0001-12", Type: "CORRIENTE", Balance: decimal.RequireFromString("830450.75")},
		},
	},
	{
		Name:       "Andrés Muñoz",
		TypeClient: "PERSONAL",
		BankAccounts: []dto.BankAccountRequest{
			{Number: "4001-0002-11", Type: "AHORROS", Balance: decimal.RequireFromString("120000.00")},
		},
	},
	{
		Name:         "Comercializadora El Ñandú S.A.S.",
		TypeClient:   "EMPRESARIAL",
		BankAccounts: []dto.BankAccountRequest{{Number: "5002-0003-21", Type: "CORRIENTE", Balance: decimal.RequireFromString("45870300.10")}},
	},
	{
		Name:       "Lucía Gómez",
		TypeClient: "VIP",
	},
}

func main() {
	drop := flag.Bool("drop", false, "eliminar los clientes existentes antes de cargar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	repo, closeStore, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("store", cfg.Store.Driver).Msg("conexión al almacén")
	}
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			log.Error().Err(err).Msg("cierre del almacén")
		}
	}()

	uc := usecase.NewBankClientUseCase(repo, log)

	if *drop {
		n, err := uc.Purge(ctx)
		if err != nil {
			log.Error().Err(err).Int("eliminados", n).Msg("limpiar clientes")
			return
		}
		log.Info().Int("eliminados", n).Msg("clientes eliminados")
	}

	for _, in := range sampleClients {
		out, err := uc.Create(ctx, in)
		if err != nil {
			log.Error().Err(err).Str("name", in.Name).Msg("crear cliente de ejemplo")
			return
		}
		log.Info().Str("id", out.ID).Str("name", out.Name).Msg("cliente creado")
	}
	log.Info().Int("total", len(sampleClients)).Str("store", cfg.Store.Driver).Msg("carga terminada")
}
