package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankClientRequest body para POST y PUT /api/clients.
// ID no se acepta del cliente: el almacén lo asigna.
type BankClientRequest struct {
	Name         string               `json:"name" validate:"required,max=120"`
	TypeClient   string               `json:"typeClient"`
	BankAccounts []BankAccountRequest `json:"bankAccounts"`
	CreatedAt    *time.Time           `json:"createdAt,omitempty"` // opcional; si falta se usa la hora actual
}

// BankAccountRequest cuenta dentro del payload de un cliente.
type BankAccountRequest struct {
	Number  string          `json:"number"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

// BankClientResponse cliente en respuestas.
type BankClientResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	TypeClient   string                `json:"typeClient"`
	BankAccounts []BankAccountResponse `json:"bankAccounts"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// BankAccountResponse cuenta en respuestas.
type BankAccountResponse struct {
	Number  string          `json:"number"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

// CreateBankClientResponse cuerpo 201 de POST /api/clients.
type CreateBankClientResponse struct {
	Client    *BankClientResponse `json:"BankClient"`
	Message   string              `json:"message"`
	Timestamp time.Time           `json:"timestamp"`
}

// ValidationErrorResponse cuerpo 400 de POST /api/clients cuando el payload no es válido.
// Cada entrada tiene la forma "El campo <campo> <mensaje>".
type ValidationErrorResponse struct {
	Errors    []string  `json:"errors"`
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
}
