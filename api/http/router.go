package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/after42/api/http/handlers"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Health     *handlers.HealthHandler
	Device     *handlers.DeviceHandler
	Session    *handlers.SessionHandler
	Navigation *handlers.NavigationHandler
	Jobs       *handlers.JobHandler
	Candidates *handlers.CandidateHandler
	Team       *handlers.TeamHandler
	Insights   *handlers.InsightsHandler
}

// Register wires all HTTP routes onto given Fiber app. deviceMW guards every
// route that acts on a device's workspace.
func Register(app *fiber.App, h Handlers, deviceMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	v1.Post("/devices", h.Device.Register)

	s := v1.Group("/session", deviceMW)
	s.Get("/", h.Session.Get)
	s.Post("/login", h.Session.Login)
	s.Post("/signup", h.Session.SignUp)
	s.Post("/social/:provider", h.Session.Social)
	s.Post("/onboarding", h.Session.CompleteOnboarding)
	s.Post("/logout", h.Session.Logout)

	v1.Post("/navigate", deviceMW, h.Navigation.Navigate)
	v1.Get("/screen", deviceMW, h.Navigation.Screen)

	j := v1.Group("/jobs", deviceMW)
	j.Get("/", h.Jobs.List)
	j.Post("/", h.Jobs.Create)
	j.Get("/:id", h.Jobs.GetByID)
	j.Get("/:id/candidates", h.Jobs.Candidates)

	c := v1.Group("/candidates", deviceMW)
	c.Get("/:id", h.Candidates.GetByID)
	c.Put("/:id/status", h.Candidates.ChangeStatus)

	v1.Get("/team", deviceMW, h.Team.List)

	in := v1.Group("/insights", deviceMW)
	in.Get("/dashboard", h.Insights.Dashboard)
	in.Get("/reports", h.Insights.Reports)
	in.Get("/analytics", h.Insights.Analytics)
}
