package repository

import (
	"context"
	"iter"

	"github.com/jhoicas/BankClients-api/internal/domain/entity"
)

// BankClientRepository define el puerto del almacén de documentos para BankClient.
//
// FindByID devuelve (nil, nil) si el documento no existe: la ausencia no es un error.
// FindAll es perezoso: cada iteración abre su propio cursor y lo cierra al terminar.
type BankClientRepository interface {
	FindAll(ctx context.Context) iter.Seq2[*entity.BankClient, error]
	FindByID(ctx context.Context, id string) (*entity.BankClient, error)
	// Save inserta (asignando ID si viene vacío) o reemplaza el documento completo.
	Save(ctx context.Context, client *entity.BankClient) (*entity.BankClient, error)
	Delete(ctx context.Context, client *entity.BankClient) error
}
