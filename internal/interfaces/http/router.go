package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/BankClients-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BankClientUC *usecase.BankClientUseCase
	StoreTimeout time.Duration
	// Si JWTSecret no está vacío, /api/clients exige Bearer Token.
	JWTSecret string
	JWTIssuer string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	clients := api.Group("/clients")
	if deps.JWTSecret != "" {
		clients.Use(AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	}
	clientHandler := NewBankClientHandler(deps.BankClientUC, deps.StoreTimeout)
	clients.Get("/", clientHandler.List)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
}
