package postgres

import (
	"context"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS bank_clients (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	type_client TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS bank_accounts (
	client_id TEXT NOT NULL REFERENCES bank_clients(id) ON DELETE CASCADE,
	position  INT  NOT NULL,
	number    TEXT NOT NULL,
	type      TEXT NOT NULL DEFAULT '',
	balance   NUMERIC NOT NULL DEFAULT 0,
	PRIMARY KEY (client_id, position)
);

CREATE INDEX IF NOT EXISTS idx_bank_clients_created_at ON bank_clients (created_at, id);`

// EnsureSchema crea las tablas del almacén si no existen. Es idempotente.
func EnsureSchema(ctx context.Context, db DB) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
