package usecase

import (
	"context"
	"fmt"
	"iter"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/BankClients-api/internal/application/dto"
	"github.com/jhoicas/BankClients-api/internal/domain/entity"
	"github.com/jhoicas/BankClients-api/internal/domain/repository"
	"github.com/jhoicas/BankClients-api/pkg/logger"
	"github.com/jhoicas/BankClients-api/pkg/validator"
)

// BankClientUseCase casos de uso CRUD sobre la colección de clientes del banco.
// No guarda estado mutable: es seguro usarlo desde varias peticiones a la vez.
type BankClientUseCase struct {
	repo     repository.BankClientRepository
	validate *validator.Validator
	log      *logger.Logger
}

// NewBankClientUseCase construye el caso de uso con el puerto del almacén.
func NewBankClientUseCase(repo repository.BankClientRepository, log *logger.Logger) *BankClientUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &BankClientUseCase{repo: repo, validate: validator.New(), log: log}
}

// List recorre todos los clientes con el nombre en mayúsculas y registra cada nombre emitido.
// El valor almacenado no se modifica. Los errores del almacén se propagan tal cual.
func (uc *BankClientUseCase) List(ctx context.Context) iter.Seq2[*dto.BankClientResponse, error] {
	return func(yield func(*dto.BankClientResponse, error) bool) {
		// cases.Caser no es seguro entre goroutines: uno por recorrido.
		upper := cases.Upper(language.Spanish)
		for client, err := range uc.repo.FindAll(ctx) {
			if err != nil {
				yield(nil, err)
				return
			}
			out := toBankClientResponse(client)
			out.Name = upper.String(out.Name)
			uc.log.Info().Str("id", out.ID).Str("name", out.Name).Msg("cliente")
			if !yield(out, nil) {
				return
			}
		}
	}
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (uc *BankClientUseCase) GetByID(ctx context.Context, id string) (*dto.BankClientResponse, error) {
	client, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return toBankClientResponse(client), nil
}

// Create valida el payload, fija CreatedAt si no viene y persiste el cliente.
// Devuelve *domain.ValidationError si el payload incumple alguna restricción.
func (uc *BankClientUseCase) Create(ctx context.Context, in dto.BankClientRequest) (*dto.BankClientResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, err
	}
	client := &entity.BankClient{
		Name:         in.Name,
		TypeClient:   in.TypeClient,
		BankAccounts: toBankAccounts(in.BankAccounts),
	}
	if in.CreatedAt != nil {
		client.CreatedAt = *in.CreatedAt
	} else {
		client.CreatedAt = time.Now()
	}
	saved, err := uc.repo.Save(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	return toBankClientResponse(saved), nil
}

// Update reemplaza name, typeClient y bankAccounts del cliente existente.
// ID y CreatedAt se conservan del registro almacenado. Devuelve (nil, nil) si no existe.
func (uc *BankClientUseCase) Update(ctx context.Context, id string, in dto.BankClientRequest) (*dto.BankClientResponse, error) {
	client, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	client.Name = in.Name
	client.TypeClient = in.TypeClient
	client.BankAccounts = toBankAccounts(in.BankAccounts)
	saved, err := uc.repo.Save(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("actualizar cliente: %w", err)
	}
	return toBankClientResponse(saved), nil
}

// Delete elimina el cliente. Devuelve false (sin error) si no existe.
func (uc *BankClientUseCase) Delete(ctx context.Context, id string) (bool, error) {
	client, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if client == nil {
		return false, nil
	}
	if err := uc.repo.Delete(ctx, client); err != nil {
		return false, fmt.Errorf("eliminar cliente: %w", err)
	}
	return true, nil
}

// Purge elimina todos los clientes y devuelve cuántos se borraron.
// Primero recoge el recorrido completo para no borrar sobre un cursor abierto.
func (uc *BankClientUseCase) Purge(ctx context.Context) (int, error) {
	var all []*entity.BankClient
	for client, err := range uc.repo.FindAll(ctx) {
		if err != nil {
			return 0, err
		}
		all = append(all, client)
	}
	for i, client := range all {
		if err := uc.repo.Delete(ctx, client); err != nil {
			return i, fmt.Errorf("eliminar cliente %s: %w", client.ID, err)
		}
	}
	return len(all), nil
}

func toBankAccounts(in []dto.BankAccountRequest) []entity.BankAccount {
	out := make([]entity.BankAccount, 0, len(in))
	for _, a := range in {
		out = append(out, entity.BankAccount{Number: a.Number, Type: a.Type, Balance: a.Balance})
	}
	return out
}

func toBankClientResponse(c *entity.BankClient) *dto.BankClientResponse {
	if c == nil {
		return nil
	}
	accounts := make([]dto.BankAccountResponse, 0, len(c.BankAccounts))
	for _, a := range c.BankAccounts {
		accounts = append(accounts, dto.BankAccountResponse{Number: a.Number, Type: a.Type, Balance: a.Balance})
	}
	return &dto.BankClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		TypeClient:   c.TypeClient,
		BankAccounts: accounts,
		CreatedAt:    c.CreatedAt,
	}
}
