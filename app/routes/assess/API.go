package assess

import (
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Stkiag0/dss-group2-projectv1/app/dataset"
	"github.com/Stkiag0/dss-group2-projectv1/app/models"
)

// AssessmentRequest carries the form or JSON fields for a single
// evaluation. Pointer fields distinguish omitted inputs, which fall back to
// the same defaults the form is pre-filled with.
type AssessmentRequest struct {
	G1        *int    `json:"g1" form:"g1"`
	G2        *int    `json:"g2" form:"g2"`
	G3        *int    `json:"g3" form:"g3"`
	Absences  *int    `json:"absences" form:"absences"`
	StudyTime *int    `json:"studytime" form:"studytime"`
	Failures  *int    `json:"failures" form:"failures"`
	FamSup    *string `json:"famsup" form:"famsup"`
	Medu      *int    `json:"medu" form:"medu"`
	Fedu      *int    `json:"fedu" form:"fedu"`
	Dalc      *int    `json:"dalc" form:"dalc"`
	Walc      *int    `json:"walc" form:"walc"`
	GoOut     *int    `json:"goout" form:"goout"`
}

// Record builds the student record, filling omitted fields with the form
// defaults: grades and absences 0, study time 2, parental education 2,
// alcohol use 1, outings 2, family support yes.
func (req AssessmentRequest) Record() models.StudentRecord {
	rec := models.StudentRecord{
		G1:        intOr(req.G1, 0),
		G2:        intOr(req.G2, 0),
		G3:        req.G3,
		Absences:  intOr(req.Absences, 0),
		StudyTime: intOr(req.StudyTime, 2),
		Failures:  intOr(req.Failures, 0),
		FamSup:    models.FamSupYes,
		Medu:      intOr(req.Medu, 2),
		Fedu:      intOr(req.Fedu, 2),
		Dalc:      intOr(req.Dalc, 1),
		Walc:      intOr(req.Walc, 1),
		GoOut:     intOr(req.GoOut, 2),
	}
	if req.FamSup != nil && strings.EqualFold(strings.TrimSpace(*req.FamSup), "no") {
		rec.FamSup = models.FamSupNo
	}
	return rec
}

func intOr(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}

func ShowAssessForm(c *fiber.Ctx) error {
	return c.Render("assess/index", fiber.Map{
		"Title":       "Assess Student - Student DSS",
		"CurrentPage": "assess",
		"user":        c.Locals("user"),
	})
}

func SubmitAssessment(c *fiber.Ctx, store *dataset.Store) error {
	var req AssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).Render("error", fiber.Map{
			"Title":        "Invalid Input - Student DSS",
			"CurrentPage":  "assess",
			"ErrorCode":    "400",
			"ErrorTitle":   "Invalid Input",
			"ErrorMessage": "Error analyzing student: " + err.Error(),
			"user":         c.Locals("user"),
		})
	}

	res := store.Assess(req.Record())

	return c.Render("assess/result", fiber.Map{
		"Title":         "Assessment Result - Student DSS",
		"CurrentPage":   "assess",
		"user":          c.Locals("user"),
		"Result":        res,
		"Probability":   roundPct(res.Assessment.FailureProbability()),
		"MLEnabled":     store.Model() != nil,
		"MLProbability": roundPct(res.MLProbability),
	})
}

func AssessAPI(c *fiber.Ctx, store *dataset.Store) error {
	var req AssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	res := store.Assess(req.Record())

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"record":              res.Record,
			"assessment":          res.Assessment,
			"failure_probability": res.Assessment.FailureProbability(),
			"ml_enabled":          store.Model() != nil,
			"ml_probability":      res.MLProbability,
			"final_level":         res.FinalTier,
		},
	})
}

// roundPct converts a 0-1 probability to a percentage with two decimals.
func roundPct(p float64) float64 {
	return math.Round(p*10000) / 100
}
