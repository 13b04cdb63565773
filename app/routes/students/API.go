package students

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Stkiag0/dss-group2-projectv1/app/dataset"
	"github.com/Stkiag0/dss-group2-projectv1/app/models"
)

func GetStudentsAPI(c *fiber.Ctx, store *dataset.Store) error {
	level := c.Query("level")
	limit := c.QueryInt("limit", 0)
	offset := c.QueryInt("offset", 0)

	results := store.AnalyzeAll()
	totalCount := len(results)

	// Optional tier filter (?level=high|moderate|low)
	if level != "" {
		tier, ok := parseTier(level)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid risk level filter"})
		}
		filtered := make([]models.StudentResult, 0, len(results))
		for _, res := range results {
			if res.FinalTier == tier {
				filtered = append(filtered, res)
			}
		}
		results = filtered
	}

	// Optional pagination
	if offset > 0 {
		if offset > len(results) {
			offset = len(results)
		}
		results = results[offset:]
	}
	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}

	return c.JSON(fiber.Map{
		"students":    results,
		"count":       len(results),
		"total_count": totalCount,
	})
}

func GetAtRiskAPI(c *fiber.Ctx, store *dataset.Store) error {
	results := store.AtRisk()

	return c.JSON(fiber.Map{
		"students": results,
		"count":    len(results),
	})
}

func GetStudentByIndexAPI(c *fiber.Ctx, store *dataset.Store) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid student index"})
	}

	res, err := store.Analyze(index)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    res,
	})
}

func StudentsPage(c *fiber.Ctx, store *dataset.Store) error {
	return c.Render("students/index", fiber.Map{
		"Title":       "Students - Student DSS",
		"CurrentPage": "students",
		"user":        c.Locals("user"),
		"Students":    store.AnalyzeAll(),
		"DatasetPath": store.Path(),
	})
}

func StudentViewPage(c *fiber.Ctx, store *dataset.Store) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid student index")
	}

	res, err := store.Analyze(index)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return c.Render("students/view", fiber.Map{
		"Title":       fmt.Sprintf("Student #%d - Student DSS", index),
		"CurrentPage": "students",
		"user":        c.Locals("user"),
		"Student":     res,
	})
}

func AtRiskPage(c *fiber.Ctx, store *dataset.Store) error {
	return c.Render("students/at_risk", fiber.Map{
		"Title":       "At-Risk Students - Student DSS",
		"CurrentPage": "at-risk",
		"user":        c.Locals("user"),
		"Students":    store.AtRisk(),
		"MLEnabled":   store.Model() != nil,
	})
}

func parseTier(level string) (models.RiskTier, bool) {
	switch strings.ToLower(level) {
	case "high":
		return models.TierHigh, true
	case "moderate":
		return models.TierModerate, true
	case "low":
		return models.TierLow, true
	}
	return "", false
}
