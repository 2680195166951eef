package postgres

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/BankClients-api/internal/domain/entity"
	"github.com/jhoicas/BankClients-api/internal/domain/repository"
)

var _ repository.BankClientRepository = (*BankClientRepo)(nil)

const selectClients = `
	SELECT c.id, c.name, c.type_client, c.created_at, a.number, a.type, a.balance
	FROM bank_clients c
	LEFT JOIN bank_accounts a ON a.client_id = c.id`

// BankClientRepo implementación de BankClientRepository sobre PostgreSQL.
// Un cliente ocupa una fila en bank_clients y sus cuentas, en orden, en bank_accounts.
type BankClientRepo struct {
	db DB
	tx *TxRunner
}

// NewBankClientRepository construye el adaptador. Pasar pool o tx.
func NewBankClientRepository(db DB) *BankClientRepo {
	return &BankClientRepo{db: db, tx: NewTxRunner(db)}
}

// FindAll recorre los clientes por fecha de creación con una sola consulta;
// las filas del JOIN se agrupan por cliente a medida que llegan.
func (r *BankClientRepo) FindAll(ctx context.Context) iter.Seq2[*entity.BankClient, error] {
	return func(yield func(*entity.BankClient, error) bool) {
		rows, err := r.db.Query(ctx, selectClients+` ORDER BY c.created_at, c.id, a.position`)
		if err != nil {
			yield(nil, fmt.Errorf("list bank clients: %w", err))
			return
		}
		defer rows.Close()
		for c, err := range groupClients(rows) {
			if !yield(c, err) || err != nil {
				return
			}
		}
	}
}

// FindByID obtiene un cliente con sus cuentas. Devuelve (nil, nil) si no existe.
func (r *BankClientRepo) FindByID(ctx context.Context, id string) (*entity.BankClient, error) {
	rows, err := r.db.Query(ctx, selectClients+` WHERE c.id = $1 ORDER BY a.position`, id)
	if err != nil {
		return nil, fmt.Errorf("get bank client: %w", err)
	}
	defer rows.Close()
	for c, err := range groupClients(rows) {
		return c, err
	}
	return nil, nil
}

// Save inserta (generando UUID si ID está vacío) o reemplaza el cliente y todas sus cuentas en una transacción.
func (r *BankClientRepo) Save(ctx context.Context, client *entity.BankClient) (*entity.BankClient, error) {
	saved := client.Clone()
	if saved.ID == "" {
		saved.ID = uuid.New().String()
	}
	// TIMESTAMPTZ guarda microsegundos.
	saved.CreatedAt = saved.CreatedAt.UTC().Truncate(time.Microsecond)

	err := r.tx.Run(ctx, func(tx DB) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO bank_clients (id, name, type_client, created_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, type_client = EXCLUDED.type_client`,
			saved.ID, saved.Name, saved.TypeClient, saved.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("upsert bank client: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM bank_accounts WHERE client_id = $1`, saved.ID); err != nil {
			return fmt.Errorf("delete bank accounts: %w", err)
		}
		if len(saved.BankAccounts) == 0 {
			return nil
		}
		batch := &pgx.Batch{}
		for i, a := range saved.BankAccounts {
			batch.Queue(`
				INSERT INTO bank_accounts (client_id, position, number, type, balance)
				VALUES ($1, $2, $3, $4, $5)`,
				saved.ID, i, a.Number, a.Type, a.Balance,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert bank accounts: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if saved.BankAccounts == nil {
		saved.BankAccounts = []entity.BankAccount{}
	}
	return saved, nil
}

// Delete elimina el cliente; sus cuentas caen por ON DELETE CASCADE.
func (r *BankClientRepo) Delete(ctx context.Context, client *entity.BankClient) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM bank_clients WHERE id = $1`, client.ID); err != nil {
		return fmt.Errorf("delete bank client: %w", err)
	}
	return nil
}

// groupClients convierte filas (cliente, cuenta?) ordenadas por cliente en clientes completos.
func groupClients(rows pgx.Rows) iter.Seq2[*entity.BankClient, error] {
	return func(yield func(*entity.BankClient, error) bool) {
		var current *entity.BankClient
		for rows.Next() {
			var (
				c       entity.BankClient
				number  *string
				accType *string
				balance decimal.NullDecimal
			)
			if err := rows.Scan(&c.ID, &c.Name, &c.TypeClient, &c.CreatedAt, &number, &accType, &balance); err != nil {
				yield(nil, fmt.Errorf("scan bank client: %w", err))
				return
			}
			if current == nil || current.ID != c.ID {
				if current != nil && !yield(current, nil) {
					return
				}
				c.CreatedAt = c.CreatedAt.UTC()
				c.BankAccounts = []entity.BankAccount{}
				current = &c
			}
			if number != nil {
				acc := entity.BankAccount{Number: *number, Balance: balance.Decimal}
				if accType != nil {
					acc.Type = *accType
				}
				current.BankAccounts = append(current.BankAccounts, acc)
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("rows bank clients: %w", err))
			return
		}
		if current != nil {
			yield(current, nil)
		}
	}
}
