package dataset

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
)

// resultColumns is the report layout consumed by downstream spreadsheets.
var resultColumns = []string{
	"Index", "G1", "G2", "G3", "Absences", "Study_Time", "Failures",
	"Family_Support", "APS", "ARS", "FSR", "LRS", "Total_Risk_Score",
	"Risk_Level", "Recommendations",
}

// WriteResults writes every assessed row as CSV. With a model attached two
// extra columns carry the model probability and the hybrid tier. Missing
// final grades are written as "N/A" and advice lines are joined with " | ".
func (s *Store) WriteResults(w io.Writer) error {
	results := s.AnalyzeAll()
	withModel := s.Model() != nil

	header := append([]string(nil), resultColumns...)
	if withModel {
		header = append(header, "ML_Risk_Probability", "Final_Risk_Level")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, res := range results {
		g3 := "N/A"
		if res.Record.G3 != nil {
			g3 = strconv.Itoa(*res.Record.G3)
		}

		a := res.Assessment
		row := []string{
			strconv.Itoa(res.Index),
			strconv.Itoa(res.Record.G1),
			strconv.Itoa(res.Record.G2),
			g3,
			strconv.Itoa(res.Record.Absences),
			strconv.Itoa(res.Record.StudyTime),
			strconv.Itoa(res.Record.Failures),
			string(res.Record.FamSup),
			strconv.Itoa(a.APS),
			strconv.Itoa(a.ARS),
			strconv.Itoa(a.FSR),
			strconv.Itoa(a.LRS),
			strconv.Itoa(a.Total),
			string(a.Tier),
			strings.Join(a.Recommendations, " | "),
		}
		if withModel {
			row = append(row,
				strconv.FormatFloat(res.MLProbability, 'f', 4, 64),
				string(res.FinalTier),
			)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
