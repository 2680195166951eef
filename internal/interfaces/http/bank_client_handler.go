package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BankClients-api/internal/application/dto"
	"github.com/jhoicas/BankClients-api/internal/application/usecase"
	"github.com/jhoicas/BankClients-api/internal/domain"
)

const (
	clientsPath    = "/api/clients/"
	createdMessage = "Cliente creado con éxito"

	// PUT conserva el contrato publicado: 201 y Location bajo /api/productos/.
	updateStatus       = fiber.StatusCreated
	updateLocationPath = "/api/productos/"
)

// BankClientHandler maneja las peticiones HTTP del recurso /api/clients.
type BankClientHandler struct {
	uc      *usecase.BankClientUseCase
	timeout time.Duration
}

// NewBankClientHandler construye el handler. timeout acota cada petición al almacén (0 = sin límite).
func NewBankClientHandler(uc *usecase.BankClientUseCase, timeout time.Duration) *BankClientHandler {
	return &BankClientHandler{uc: uc, timeout: timeout}
}

func (h *BankClientHandler) storeContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}

// List godoc
// @Summary      Listar clientes (nombre en mayúsculas)
// @Tags         clients
// @Produce      json
// @Success      200  {array}   dto.BankClientResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/clients [get]
func (h *BankClientHandler) List(c *fiber.Ctx) error {
	ctx, cancel := h.storeContext(c)
	defer cancel()

	encode := c.App().Config().JSONEncoder
	w := c.Response().BodyWriter()
	_, _ = w.Write([]byte{'['})
	first := true
	for client, err := range h.uc.List(ctx) {
		if err != nil {
			c.Response().ResetBody()
			return err
		}
		raw, err := encode(client)
		if err != nil {
			c.Response().ResetBody()
			return fmt.Errorf("serializar cliente: %w", err)
		}
		if !first {
			_, _ = w.Write([]byte{','})
		}
		first = false
		_, _ = w.Write(raw)
	}
	_, _ = w.Write([]byte{']'})
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return nil
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         clients
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.BankClientResponse
// @Failure      404  "sin cuerpo"
// @Router       /api/clients/{id} [get]
func (h *BankClientHandler) GetByID(c *fiber.Ctx) error {
	ctx, cancel := h.storeContext(c)
	defer cancel()

	out, err := h.uc.GetByID(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	if out == nil {
		return empty(c, fiber.StatusNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BankClientRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CreateBankClientResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /api/clients [post]
func (h *BankClientHandler) Create(c *fiber.Ctx) error {
	var in dto.BankClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ctx, cancel := h.storeContext(c)
	defer cancel()

	out, err := h.uc.Create(ctx, in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(validationResponse(verr))
		}
		return err
	}
	c.Location(clientsPath + out.ID)
	return c.Status(fiber.StatusCreated).JSON(dto.CreateBankClientResponse{
		Client:    out,
		Message:   createdMessage,
		Timestamp: time.Now(),
	})
}

// Update godoc
// @Summary      Actualizar cliente (name, typeClient, bankAccounts)
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  dto.BankClientRequest  true  "Datos a reemplazar"
// @Success      201   {object}  dto.BankClientResponse
// @Failure      404   "sin cuerpo"
// @Router       /api/clients/{id} [put]
func (h *BankClientHandler) Update(c *fiber.Ctx) error {
	var in dto.BankClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ctx, cancel := h.storeContext(c)
	defer cancel()

	out, err := h.uc.Update(ctx, c.Params("id"), in)
	if err != nil {
		return err
	}
	if out == nil {
		return empty(c, fiber.StatusNotFound)
	}
	c.Location(updateLocationPath + out.ID)
	return c.Status(updateStatus).JSON(out)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Tags         clients
// @Param        id   path  string  true  "ID del cliente"
// @Success      204  "sin cuerpo"
// @Failure      404  "sin cuerpo"
// @Router       /api/clients/{id} [delete]
func (h *BankClientHandler) Delete(c *fiber.Ctx) error {
	ctx, cancel := h.storeContext(c)
	defer cancel()

	deleted, err := h.uc.Delete(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	if !deleted {
		return empty(c, fiber.StatusNotFound)
	}
	return empty(c, fiber.StatusNoContent)
}

func empty(c *fiber.Ctx, status int) error {
	return c.Status(status).Send(nil)
}

func validationResponse(verr *domain.ValidationError) dto.ValidationErrorResponse {
	errs := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		errs = append(errs, "El campo "+f.Field+" "+f.Message)
	}
	return dto.ValidationErrorResponse{
		Errors:    errs,
		Timestamp: time.Now(),
		Status:    fiber.StatusBadRequest,
	}
}
