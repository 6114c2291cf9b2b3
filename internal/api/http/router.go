package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bornebyte/notes/internal/api/http/handlers"
	"github.com/bornebyte/notes/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Notes         *handlers.NotesHandler
	Targets       *handlers.TargetsHandler
	Messages      *handlers.MessagesHandler
	Notifications *handlers.NotificationsHandler
	Settings      *handlers.SettingsHandler
	Guard         *auth.Guard
}

// RegisterRoutes wires HTTP routes. Everything under /api runs the guard
// except login/logout/session and the shared-note lookup.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/auth/login", cfg.Auth.Login)
	api.Post("/auth/logout", cfg.Auth.Logout)
	api.Get("/auth/session", cfg.Auth.Session)
	api.Get("/notes/shared/:shareid", cfg.Notes.GetShared)

	protected := api.Group("", cfg.Guard.Require())

	protected.Get("/notes", cfg.Notes.List)
	protected.Post("/notes", cfg.Notes.Create)
	protected.Put("/notes", cfg.Notes.Update)
	protected.Delete("/notes", cfg.Notes.Delete)
	protected.Put("/notes/trash", cfg.Notes.SetTrashed)
	protected.Put("/notes/favorite", cfg.Notes.SetFavorite)
	protected.Post("/notes/share", cfg.Notes.Share)

	protected.Get("/targets", cfg.Targets.List)
	protected.Post("/targets", cfg.Targets.Create)
	protected.Delete("/targets", cfg.Targets.Delete)

	protected.Get("/messages", cfg.Messages.List)
	protected.Post("/messages", cfg.Messages.Create)
	protected.Delete("/messages", cfg.Messages.Delete)

	protected.Get("/notifications", cfg.Notifications.List)
	protected.Delete("/notifications", cfg.Notifications.Delete)

	protected.Put("/settings/password", cfg.Settings.ChangePassword)
	protected.Get("/settings/tokens", cfg.Settings.ListTokens)
	protected.Post("/settings/tokens", cfg.Settings.CreateToken)
	protected.Delete("/settings/tokens", cfg.Settings.RevokeToken)
}
