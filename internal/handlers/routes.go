package handlers

import (
	"errors"
	"strings"

	"github.com/Rosvend/REST-Api-NoSQL/internal/config"
	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/middleware"
	"github.com/Rosvend/REST-Api-NoSQL/internal/repository"
	"github.com/Rosvend/REST-Api-NoSQL/internal/services"
	"github.com/Rosvend/REST-Api-NoSQL/internal/types"
	"github.com/Rosvend/REST-Api-NoSQL/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
)

// RootDescriptor is the body of GET /
type RootDescriptor struct {
	Message       string   `json:"message"`
	Documentation string   `json:"documentation"`
	Endpoints     []string `json:"endpoints"`
}

// Deps is what the routes need from the process
type Deps struct {
	Config  *config.Config
	Store   *repository.Store
	Limiter *middleware.RateLimiter
	Log     *logging.Logger
}

// NewApp creates the fiber app with the global error handler and the
// middleware that must run before metrics and routes
func NewApp(cfg *config.Config, log *logging.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          errorHandler(log),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: strings.Join([]string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPut,
			fiber.MethodDelete, fiber.MethodPatch, fiber.MethodOptions,
		}, ","),
		AllowHeaders: "*",
	}))
	app.Use(compress.New())
	app.Use(middleware.RequestLogger(log.With("component", "http")))

	return app
}

// RegisterRoutes mounts the descriptor, health, docs and the /api routes, then the 404 fallback
func RegisterRoutes(app *fiber.App, d Deps) {
	if d.Limiter != nil {
		app.Use(d.Limiter.Handler())
	}

	app.Get("/", Root)
	app.Get("/health", Health(d.Config, d.Store, d.Log))
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	compuestos := &CompuestoHandler{
		Service: services.NewCompuestoService(d.Store.Compuestos, d.Store.Asociaciones, d.Log),
		Log:     d.Log.With("handler", "compuestos"),
	}
	medicamentos := &MedicamentoHandler{
		Service: services.NewMedicamentoService(d.Store.Medicamentos, d.Store.Compuestos, d.Store.Asociaciones, d.Log),
		Log:     d.Log.With("handler", "medicamentos"),
	}

	c := api.Group("/compuestos")
	c.Get("/", compuestos.ListCompuestos)
	c.Post("/", compuestos.CreateCompuesto)
	c.Get("/:id", compuestos.GetCompuesto)
	c.Put("/:id", compuestos.UpdateCompuesto)
	c.Delete("/:id", compuestos.DeleteCompuesto)
	c.Get("/:id/medicamentos", compuestos.ListMedicamentosOfCompuesto)

	m := api.Group("/medicamentos")
	m.Get("/", medicamentos.ListMedicamentos)
	m.Post("/", medicamentos.CreateMedicamento)
	m.Get("/:id", medicamentos.GetMedicamento)
	m.Put("/:id", medicamentos.UpdateMedicamento)
	m.Delete("/:id", medicamentos.DeleteMedicamento)
	m.Get("/:id/compuestos", medicamentos.ListCompuestosOfMedicamento)
	m.Post("/:id/compuestos", medicamentos.AddCompuestoToMedicamento)

	app.Use(func(c *fiber.Ctx) error {
		return utils.ErrorResponse(c, "[404] Resource Not Found", fiber.StatusNotFound, "not_found")
	})
}

// Root handles GET /
func Root(c *fiber.Ctx) error {
	return c.JSON(RootDescriptor{
		Message:       "API de Medicamentos y Compuestos",
		Documentation: "/swagger/index.html",
		Endpoints:     []string{"/api/compuestos", "/api/medicamentos"},
	})
}

// Health handles GET /health; 503 when the store does not answer
func Health(cfg *config.Config, store *repository.Store, log *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		result := services.HealthCheck(c.UserContext(), cfg, store, log)
		status := fiber.StatusOK
		if !result.Healthy() {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(result)
	}
}

// errorHandler renders errors that escape a handler in the standard envelope
func errorHandler(log *logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := err.Error()
		errorType := "unknown"

		var fe *fiber.Error
		var ce *types.CustomError
		switch {
		case errors.As(err, &fe):
			code = fe.Code
			message = fe.Message
			errorType = "http"
		case errors.As(err, &ce):
			code = ce.Code
			message = ce.Message
			errorType = ce.Type
		default:
			log.Error("Unhandled error", "path", c.Path(), "error", err)
		}

		return utils.ErrorResponse(c, message, code, errorType)
	}
}
