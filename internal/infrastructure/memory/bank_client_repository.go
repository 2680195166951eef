package memory

import (
	"context"
	"iter"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/BankClients-api/internal/domain/entity"
	"github.com/jhoicas/BankClients-api/internal/domain/repository"
)

var _ repository.BankClientRepository = (*BankClientRepo)(nil)

// BankClientRepo almacén en memoria (desarrollo y tests). Conserva el orden de inserción.
type BankClientRepo struct {
	mu      sync.RWMutex
	clients map[string]*entity.BankClient
	order   []string
}

// NewBankClientRepository construye un almacén vacío.
func NewBankClientRepository() *BankClientRepo {
	return &BankClientRepo{clients: make(map[string]*entity.BankClient)}
}

// FindAll recorre una instantánea de los IDs tomada al iniciar la iteración.
// Los documentos se entregan como copias; se omiten los eliminados entre tanto.
func (r *BankClientRepo) FindAll(ctx context.Context) iter.Seq2[*entity.BankClient, error] {
	return func(yield func(*entity.BankClient, error) bool) {
		r.mu.RLock()
		ids := slices.Clone(r.order)
		r.mu.RUnlock()

		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			r.mu.RLock()
			c, ok := r.clients[id]
			if ok {
				c = c.Clone()
			}
			r.mu.RUnlock()
			if !ok {
				continue
			}
			if !yield(c, nil) {
				return
			}
		}
	}
}

// FindByID devuelve una copia del cliente o (nil, nil) si no existe.
func (r *BankClientRepo) FindByID(ctx context.Context, id string) (*entity.BankClient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

// Save inserta (generando un UUID si ID está vacío) o reemplaza el cliente.
func (r *BankClientRepo) Save(ctx context.Context, client *entity.BankClient) (*entity.BankClient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stored := client.Clone()
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.clients[stored.ID]; !exists {
		r.order = append(r.order, stored.ID)
	}
	r.clients[stored.ID] = stored
	return stored.Clone(), nil
}

// Delete elimina el cliente por ID. Eliminar un ID inexistente no es un error.
func (r *BankClientRepo) Delete(ctx context.Context, client *entity.BankClient) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.clients[client.ID]; !exists {
		return nil
	}
	delete(r.clients, client.ID)
	r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == client.ID })
	return nil
}

// Len número de clientes almacenados.
func (r *BankClientRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Close no hace nada; existe para cumplir el ciclo de vida de los demás almacenes.
func (r *BankClientRepo) Close(context.Context) error { return nil }
