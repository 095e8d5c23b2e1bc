package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/cvmatch/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	extract *handlers.ExtractHandler,
	match *handlers.MatchHandler,
	courses *handlers.CoursesHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	// Text extraction from uploaded documents
	eg := v1.Group("/extract", authMW)
	eg.Post("/upload", extract.Upload)
	eg.Post("/normalize", extract.Normalize)

	// CV/JD comparison without persistence
	sg := v1.Group("/skills", authMW)
	sg.Post("/compare", match.Compare)

	// Course recommendations
	cg := v1.Group("/courses", authMW)
	cg.Post("/recommend", courses.Recommend)

	// Persisted match reports
	rg := v1.Group("/reports", authMW)
	rg.Post("/", match.CreateReport)
	rg.Get("/", match.ListReports)
	rg.Get("/:id", match.GetReport)
	rg.Delete("/:id", match.DeleteReport)
}
