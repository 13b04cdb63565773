package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/Stkiag0/dss-group2-projectv1/app/config"
	"github.com/Stkiag0/dss-group2-projectv1/app/dataset"
	"github.com/Stkiag0/dss-group2-projectv1/app/ml"
	"github.com/Stkiag0/dss-group2-projectv1/app/models"
	"github.com/Stkiag0/dss-group2-projectv1/app/routes/assess"
	"github.com/Stkiag0/dss-group2-projectv1/app/routes/auth"
	"github.com/Stkiag0/dss-group2-projectv1/app/routes/dashboard"
	"github.com/Stkiag0/dss-group2-projectv1/app/routes/students"
	"github.com/Stkiag0/dss-group2-projectv1/app/scoring"
	"github.com/Stkiag0/dss-group2-projectv1/app/services"
)

// customErrorHandler handles HTTP errors with custom templates
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	// Check if this is an API request
	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	// Handle different error codes for web requests
	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title":       "Page Not Found - Student DSS",
			"CurrentPage": "",
		})
	case 401:
		return c.Status(401).Render("error", fiber.Map{
			"Title":        "Unauthorized - Student DSS",
			"CurrentPage":  "",
			"ErrorCode":    "401",
			"ErrorTitle":   "Unauthorized",
			"ErrorMessage": "Please log in to access this resource.",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":        "Server Error - Student DSS",
			"CurrentPage":  "",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
			"ShowRetry":    true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - Student DSS",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	cfg := config.Load()

	// Load the student dataset and the optional trained model
	store := dataset.NewStore(cfg.DatasetPath, scoring.DefaultPolicy())
	if m, err := ml.Load(cfg.ModelPath); err == nil {
		store.AttachModel(m)
		log.Printf("Loaded risk model %s (trained %s)", m.ID, m.TrainedAt.Format("2006-01-02"))
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not load model from %s: %v", cfg.ModelPath, err)
	}
	if err := store.Load(); err != nil {
		log.Printf("Warning: could not load dataset from %s: %v", cfg.DatasetPath, err)
	} else {
		log.Printf("Loaded %d student records from %s", store.Len(), cfg.DatasetPath)
	}

	// Start background dataset reloader
	services.StartDatasetReloader(store, cfg.ReloadInterval)

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})
	engine.AddFunc("tierClass", func(tier models.RiskTier) string {
		switch tier {
		case models.TierHigh:
			return "high"
		case models.TierModerate:
			return "moderate"
		}
		return "low"
	})
	engine.AddFunc("pct", func(p float64) string {
		return fmt.Sprintf("%.1f%%", p*100)
	})
	engine.Reload(true) // Enable template reloading for development
	engine.Debug(false) // Disable debug mode to reduce verbose logs

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files
	app.Static("/static", "./static")

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app, store)

	// Setup assessment routes
	assess.SetupAssessRoutes(app, store)

	// Setup students routes
	students.SetupStudentsRoutes(app, store)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	log.Println("Server starting on " + cfg.ServerAddr)
	log.Fatal(app.Listen(cfg.ServerAddr))
}
