package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Stkiag0/dss-group2-projectv1/app/dataset"
	"github.com/Stkiag0/dss-group2-projectv1/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App, store *dataset.Store) {
	students := app.Group("/students")
	students.Use(auth.AuthMiddleware)

	// Routes
	students.Get("/", func(c *fiber.Ctx) error {
		return StudentsPage(c, store)
	})
	students.Get("/:index", func(c *fiber.Ctx) error {
		return StudentViewPage(c, store)
	})

	app.Get("/at-risk", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return AtRiskPage(c, store)
	})

	// API routes. The at-risk route must come before the index parameter.
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, store)
	})
	api.Get("/at-risk", func(c *fiber.Ctx) error {
		return GetAtRiskAPI(c, store)
	})
	api.Get("/:index", func(c *fiber.Ctx) error {
		return GetStudentByIndexAPI(c, store)
	})
}
