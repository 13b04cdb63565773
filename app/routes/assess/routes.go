package assess

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Stkiag0/dss-group2-projectv1/app/dataset"
	"github.com/Stkiag0/dss-group2-projectv1/app/routes/auth"
)

func SetupAssessRoutes(app *fiber.App, store *dataset.Store) {
	assess := app.Group("/assess")
	assess.Use(auth.AuthMiddleware)
	assess.Get("/", ShowAssessForm)
	assess.Post("/", func(c *fiber.Ctx) error {
		return SubmitAssessment(c, store)
	})

	api := app.Group("/api/assess")
	api.Use(auth.AuthMiddleware)
	api.Post("/", func(c *fiber.Ctx) error {
		return AssessAPI(c, store)
	})
}
