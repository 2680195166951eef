package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankClient representa un cliente del banco (documento de la colección clients).
// ID lo asigna el almacén al guardar por primera vez; CreatedAt se fija una sola vez.
type BankClient struct {
	ID           string
	Name         string
	TypeClient   string // PERSONAL, EMPRESARIAL, ... (texto libre)
	BankAccounts []BankAccount
	CreatedAt    time.Time
}

// BankAccount cuenta asociada a un cliente. El orden dentro del cliente se conserva.
type BankAccount struct {
	Number  string
	Type    string // AHORROS, CORRIENTE
	Balance decimal.Decimal
}

// Clone devuelve una copia independiente (incluida la lista de cuentas).
func (c *BankClient) Clone() *BankClient {
	if c == nil {
		return nil
	}
	out := *c
	if c.BankAccounts != nil {
		out.BankAccounts = make([]BankAccount, len(c.BankAccounts))
		copy(out.BankAccounts, c.BankAccounts)
	}
	return &out
}
