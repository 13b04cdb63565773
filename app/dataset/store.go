package dataset

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/Stkiag0/dss-group2-projectv1/app/ml"
	"github.com/Stkiag0/dss-group2-projectv1/app/models"
	"github.com/Stkiag0/dss-group2-projectv1/app/scoring"
)

// ErrNoSuchStudent reports an index outside the loaded dataset.
var ErrNoSuchStudent = errors.New("student index out of range")

// Store keeps the loaded dataset and the assessment computed for every row.
// Load swaps the whole snapshot at once, so concurrent readers never see a
// half-updated dataset.
type Store struct {
	path   string
	policy scoring.Policy

	mu       sync.RWMutex
	model    *ml.Model
	records  []models.StudentRecord
	results  []models.StudentResult
	loadedAt time.Time
}

// NewStore returns an empty store reading from path. Call Load to populate
// it.
func NewStore(path string, policy scoring.Policy) *Store {
	return &Store{path: path, policy: policy}
}

// Path returns the dataset file location.
func (s *Store) Path() string { return s.path }

// Policy returns the rule set used for every assessment.
func (s *Store) Policy() scoring.Policy { return s.policy }

// AttachModel enables hybrid classification. Already loaded rows are
// re-assessed so their final tiers reflect the model.
func (s *Store) AttachModel(m *ml.Model) {
	s.mu.Lock()
	s.model = m
	records := s.records
	s.mu.Unlock()

	if len(records) > 0 {
		s.replace(records)
	}
}

// Model returns the attached prediction model, nil when rules-only.
func (s *Store) Model() *ml.Model {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

// Load reads the dataset file, assesses every row, and replaces the
// snapshot.
func (s *Store) Load() error {
	f, err := os.Open(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := ParseRecords(f)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", s.path, err)
	}
	s.replace(records)
	return nil
}

// replace assesses records outside the lock, then swaps the snapshot.
func (s *Store) replace(records []models.StudentRecord) {
	s.mu.RLock()
	model := s.model
	s.mu.RUnlock()

	results := make([]models.StudentResult, len(records))
	for i, rec := range records {
		results[i] = assess(rec, s.policy, model)
		results[i].Index = i
	}

	s.mu.Lock()
	s.records = records
	s.results = results
	s.loadedAt = time.Now()
	s.mu.Unlock()
}

// Assess evaluates one record outside the dataset, as submitted from the
// assessment form. The result carries index -1.
func (s *Store) Assess(rec models.StudentRecord) models.StudentResult {
	s.mu.RLock()
	model := s.model
	s.mu.RUnlock()

	res := assess(rec, s.policy, model)
	res.Index = -1
	return res
}

func assess(rec models.StudentRecord, p scoring.Policy, model *ml.Model) models.StudentResult {
	a := scoring.Evaluate(rec, p)
	res := models.StudentResult{
		Record:     rec.Clamp(),
		Assessment: a,
		FinalTier:  a.Tier,
	}
	if model != nil {
		prob := model.Probability(rec)
		res.MLProbability = prob
		res.FinalTier = ml.FinalTier(prob, a.Total, p)
		if note, ok := ml.AdvisoryNote(prob); ok {
			res.Assessment.Recommendations = append(res.Assessment.Recommendations, note)
		}
	}
	return res
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// LoadedAt returns when the current snapshot was built.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Records returns a copy of the loaded input records, for training.
func (s *Store) Records() []models.StudentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.StudentRecord(nil), s.records...)
}

// Analyze returns the assessment for one dataset row.
func (s *Store) Analyze(index int) (models.StudentResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.results) {
		return models.StudentResult{}, ErrNoSuchStudent
	}
	return s.results[index], nil
}

// AnalyzeAll returns every row's assessment in dataset order.
func (s *Store) AnalyzeAll() []models.StudentResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.StudentResult(nil), s.results...)
}

// AtRisk returns students whose final tier is High or Moderate, highest
// total score first. Students with equal totals keep their dataset order.
func (s *Store) AtRisk() []models.StudentResult {
	all := s.AnalyzeAll()

	atRisk := make([]models.StudentResult, 0, len(all))
	for _, res := range all {
		if res.FinalTier == models.TierHigh || res.FinalTier == models.TierModerate {
			atRisk = append(atRisk, res)
		}
	}
	sort.SliceStable(atRisk, func(i, j int) bool {
		return atRisk[i].Assessment.Total > atRisk[j].Assessment.Total
	})
	return atRisk
}

// Summary aggregates tier counts and percentages for the dashboard.
func (s *Store) Summary() models.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := models.Summary{
		TotalStudents: len(s.results),
		MLEnabled:     s.model != nil,
	}
	for _, res := range s.results {
		switch res.FinalTier {
		case models.TierHigh:
			sum.HighRisk++
		case models.TierModerate:
			sum.ModerateRisk++
		default:
			sum.LowRisk++
		}
	}
	if sum.TotalStudents > 0 {
		total := float64(sum.TotalStudents)
		sum.HighRiskPct = pct(sum.HighRisk, total)
		sum.ModerateRiskPct = pct(sum.ModerateRisk, total)
		sum.LowRiskPct = pct(sum.LowRisk, total)
	}
	return sum
}

// pct rounds count/total to one decimal percent.
func pct(count int, total float64) float64 {
	return math.Round(float64(count)/total*1000) / 10
}
