package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/resumeforge/backend/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, health *handlers.HealthHandler, resumes *handlers.ResumesHandler, enhance *handlers.EnhanceHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Resume documents (editor CRUD, file import, PDF export)
	rg := v1.Group("/resumes", authMW)
	rg.Post("/", resumes.Create)
	rg.Get("/", resumes.List)
	rg.Post("/import", resumes.Import)
	rg.Get("/:id", resumes.Get)
	rg.Put("/:id", resumes.Update)
	rg.Delete("/:id", resumes.Delete)
	rg.Post("/:id/pdf", resumes.RenderPDF)

	// Section text enhancement
	v1.Post("/enhance", authMW, enhance.Enhance)
}
