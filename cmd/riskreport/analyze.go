package main

import (
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/Stkiag0/dss-group2-projectv1/app/dataset"
	"github.com/Stkiag0/dss-group2-projectv1/app/ml"
	"github.com/Stkiag0/dss-group2-projectv1/app/models"
	"github.com/Stkiag0/dss-group2-projectv1/app/scoring"
)

// Tier colors match the web dashboard badges
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center).
			Width(46)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#334155")).
			Padding(1, 2)

	highStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F43F5E"))
	moderateStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F97316"))
	lowStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <dataset.csv>",
	Short: "Score every student and write the results CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		modelPath, _ := cmd.Flags().GetString("model")
		top, _ := cmd.Flags().GetInt("top")

		store := dataset.NewStore(args[0], scoring.DefaultPolicy())
		if modelPath != "" {
			m, err := ml.Load(modelPath)
			if err != nil {
				return fmt.Errorf("load model: %w", err)
			}
			store.AttachModel(m)
		}
		if err := store.Load(); err != nil {
			return err
		}
		if store.Len() == 0 {
			return fmt.Errorf("dataset %s has no student rows", args[0])
		}

		printSummary(store.Summary())
		if top > 0 {
			printAtRisk(store.AtRisk(), top, store.Model() != nil)
		}

		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create results file: %w", err)
		}
		defer f.Close()
		if err := store.WriteResults(f); err != nil {
			return fmt.Errorf("write results: %w", err)
		}

		fmt.Printf("\nResults saved to %s\n", output)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringP("output", "o", "student_risk_results.csv", "Path for the per-student results CSV")
	analyzeCmd.Flags().StringP("model", "m", "", "Trained model JSON for hybrid classification")
	analyzeCmd.Flags().IntP("top", "t", 0, "Also list the N highest-risk students")
}

func printSummary(stats models.Summary) {
	lines := []string{
		headerStyle.Render("STUDENT RISK ASSESSMENT SUMMARY"),
		"",
		fmt.Sprintf("Total Students: %d", stats.TotalStudents),
		highStyle.Render(fmt.Sprintf("High Risk:     %3d  (%.1f%%)", stats.HighRisk, stats.HighRiskPct)),
		moderateStyle.Render(fmt.Sprintf("Moderate Risk: %3d  (%.1f%%)", stats.ModerateRisk, stats.ModerateRiskPct)),
		lowStyle.Render(fmt.Sprintf("Low Risk:      %3d  (%.1f%%)", stats.LowRisk, stats.LowRiskPct)),
	}
	if stats.MLEnabled {
		lines = append(lines, "", "Hybrid classification: enabled")
	}
	fmt.Println(boxStyle.Render(strings.Join(lines, "\n")))
}

func printAtRisk(students []models.StudentResult, top int, withModel bool) {
	if len(students) == 0 {
		fmt.Println("\nNo at-risk students found.")
		return
	}
	if top > len(students) {
		top = len(students)
	}

	fmt.Printf("\nTOP %d AT-RISK STUDENTS (%d flagged in total)\n", top, len(students))
	fmt.Println(strings.Repeat("─", 52))
	for i, s := range students[:top] {
		fmt.Printf("%2d. Student #%d\n", i+1, s.Index)
		fmt.Printf("    Risk Level:  %s\n", tierStyle(s.FinalTier).Render(string(s.FinalTier)))
		fmt.Printf("    Rule Score:  %d/15\n", s.Assessment.Total)
		if withModel {
			fmt.Printf("    Model Prob:  %.1f%%\n", s.MLProbability*100)
		}
		fmt.Printf("    G2 Grade:    %d\n", s.Record.G2)
		fmt.Printf("    Absences:    %d\n", s.Record.Absences)
		fmt.Println("    Recommendations:")
		for _, rec := range s.Assessment.Recommendations {
			fmt.Printf("      - %s\n", rec)
		}
		fmt.Println()
	}
}

func tierStyle(tier models.RiskTier) lipgloss.Style {
	switch tier {
	case models.TierHigh:
		return highStyle
	case models.TierModerate:
		return moderateStyle
	}
	return lowStyle
}
