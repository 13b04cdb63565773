package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Stkiag0/dss-group2-projectv1/app/dataset"
)

// topAtRisk caps the dashboard's at-risk table.
const topAtRisk = 10

// GetDashboard handles the risk overview page
func GetDashboard(c *fiber.Ctx, store *dataset.Store) error {
	atRisk := store.AtRisk()
	if len(atRisk) > topAtRisk {
		atRisk = atRisk[:topAtRisk]
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - Student DSS",
		"CurrentPage": "dashboard",
		"user":        c.Locals("user"),
		"Stats":       store.Summary(),
		"AtRisk":      atRisk,
		"LoadedAt":    store.LoadedAt(),
		"DatasetPath": store.Path(),
	})
}

// GetDashboardStatsAPI returns the tier distribution as JSON
func GetDashboardStatsAPI(c *fiber.Ctx, store *dataset.Store) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    store.Summary(),
	})
}
