package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Stkiag0/dss-group2-projectv1/app/dataset"
	"github.com/Stkiag0/dss-group2-projectv1/app/ml"
)

var trainCmd = &cobra.Command{
	Use:   "train <dataset.csv>",
	Short: "Fit the failure-prediction model from final grades",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		modelOut, _ := cmd.Flags().GetString("model-out")

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		records, err := dataset.ParseRecords(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("load dataset %s: %w", args[0], err)
		}

		m, err := ml.Train(records)
		if err != nil {
			return fmt.Errorf("train model: %w", err)
		}
		if err := m.Save(modelOut); err != nil {
			return fmt.Errorf("save model: %w", err)
		}

		fmt.Printf("Model %s trained on %d records\n", m.ID, m.Samples)
		fmt.Printf("  Training accuracy: %.1f%%\n", m.Accuracy*100)
		fmt.Printf("  Class balance:     %d at risk, %d passing\n", m.AtRisk, m.Samples-m.AtRisk)
		fmt.Printf("  Saved to %s\n", modelOut)
		return nil
	},
}

func init() {
	trainCmd.Flags().String("model-out", "models/risk_model.json", "Path for the trained model JSON")
}
