package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Stkiag0/dss-group2-projectv1/app/dataset"
	"github.com/Stkiag0/dss-group2-projectv1/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App, store *dataset.Store) {
	dash := app.Group("/dashboard")
	dash.Use(auth.AuthMiddleware)
	dash.Get("/", func(c *fiber.Ctx) error {
		return GetDashboard(c, store)
	})

	// API routes
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/stats", func(c *fiber.Ctx) error {
		return GetDashboardStatsAPI(c, store)
	})
}
