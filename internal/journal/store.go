package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"

	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

const (
	mealsCsvFileName   = "meals.csv"
	weightsCsvFileName = "weights.csv"
)

var (
	mealsHeader   = []string{"date", "time", "meal_type", "meal_desc", "calories", "protein", "carbs", "fats"}
	weightsHeader = []string{"date", "time", "weight_kg", "note"}
)

// Store appends and reads the per-user meal and weight tables, kept under
// <usersPath>/<username>/{meals.csv,weights.csv}. Rows are append-only.
type Store struct {
	usersPath string
}

func NewStore(usersPath string) (*Store, error) {
	if usersPath == "" {
		return nil, errors.New("users path cannot be empty")
	}
	return &Store{
		usersPath: usersPath,
	}, nil
}

func (s *Store) mealsPath(username string) string {
	return path.Join(s.usersPath, username, mealsCsvFileName)
}

func (s *Store) weightsPath(username string) string {
	return path.Join(s.usersPath, username, weightsCsvFileName)
}

// Init creates empty, header-only log tables for a fresh account.
// Existing tables are left untouched.
func (s *Store) Init(username string) error {
	if err := ensureTable(s.mealsPath(username), mealsHeader); err != nil {
		return fmt.Errorf("init meals table: %w", err)
	}
	if err := ensureTable(s.weightsPath(username), weightsHeader); err != nil {
		return fmt.Errorf("init weights table: %w", err)
	}
	log.Debugf("journal store: tables initialized for [%s]", username)
	return nil
}

func ensureTable(csvPath string, header []string) error {
	exists, err := pkg.PathExists(csvPath, false)
	if err != nil {
		return fmt.Errorf("check table path %s: %w", csvPath, err)
	}
	if exists {
		return nil
	}
	return appendRow(csvPath, header, nil)
}

// AppendMeal adds exactly one row to the user's meals table,
// writing the header first if the table does not exist yet
func (s *Store) AppendMeal(username string, entry MealEntry) error {
	row := []string{
		entry.Date,
		entry.Time,
		entry.MealType,
		entry.MealDesc,
		formatFloat(entry.Calories),
		formatFloat(entry.Protein),
		formatFloat(entry.Carbs),
		formatFloat(entry.Fats),
	}
	if err := appendRow(s.mealsPath(username), mealsHeader, row); err != nil {
		return fmt.Errorf("append meal: %w", err)
	}
	log.Debugf("journal store: meal logged for [%s]: %s", username, entry.MealType)
	return nil
}

// AppendWeight adds exactly one row to the user's weights table
func (s *Store) AppendWeight(username string, entry WeightEntry) error {
	row := []string{
		entry.Date,
		entry.Time,
		formatFloat(entry.WeightKg),
		entry.Note,
	}
	if err := appendRow(s.weightsPath(username), weightsHeader, row); err != nil {
		return fmt.Errorf("append weight: %w", err)
	}
	log.Debugf("journal store: weight logged for [%s]: %.1f", username, entry.WeightKg)
	return nil
}

// ListMeals returns all logged meals, oldest first.
// A user with no meals table yet gets an empty list.
func (s *Store) ListMeals(username string) ([]MealEntry, error) {
	records, err := readTable(s.mealsPath(username), len(mealsHeader))
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	var entries []MealEntry
	for _, record := range records {
		entry := MealEntry{
			Date:     record[0],
			Time:     record[1],
			MealType: record[2],
			MealDesc: record[3],
		}
		if entry.Calories, err = strconv.ParseFloat(record[4], 64); err != nil {
			return nil, fmt.Errorf("parse calories [%s]: %w", record[4], err)
		}
		if entry.Protein, err = strconv.ParseFloat(record[5], 64); err != nil {
			return nil, fmt.Errorf("parse protein [%s]: %w", record[5], err)
		}
		if entry.Carbs, err = strconv.ParseFloat(record[6], 64); err != nil {
			return nil, fmt.Errorf("parse carbs [%s]: %w", record[6], err)
		}
		if entry.Fats, err = strconv.ParseFloat(record[7], 64); err != nil {
			return nil, fmt.Errorf("parse fats [%s]: %w", record[7], err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ListWeights returns all logged weights, oldest first.
// A user with no weights table yet gets an empty list.
func (s *Store) ListWeights(username string) ([]WeightEntry, error) {
	records, err := readTable(s.weightsPath(username), len(weightsHeader))
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}

	var entries []WeightEntry
	for _, record := range records {
		entry := WeightEntry{
			Date: record[0],
			Time: record[1],
			Note: record[3],
		}
		if entry.WeightKg, err = strconv.ParseFloat(record[2], 64); err != nil {
			return nil, fmt.Errorf("parse weight [%s]: %w", record[2], err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func appendRow(csvPath string, header, row []string) error {
	exists, err := pkg.PathExists(csvPath, false)
	if err != nil {
		return fmt.Errorf("check table path %s: %w", csvPath, err)
	}

	f, err := os.OpenFile(csvPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open table %s: %w", csvPath, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if !exists {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if row != nil {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// readTable returns all data rows (header skipped) of a CSV table,
// or no rows at all if the table file does not exist yet
func readTable(csvPath string, wantFields int) ([][]string, error) {
	exists, err := pkg.PathExists(csvPath, false)
	if err != nil {
		return nil, fmt.Errorf("check table path %s: %w", csvPath, err)
	}
	if !exists {
		return nil, nil
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("open table %s: %w", csvPath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)

	var records [][]string
	headerSkipped := false
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) != wantFields {
			return nil, fmt.Errorf("record [%s] does not have %d elements", record, wantFields)
		}
		if !headerSkipped {
			headerSkipped = true
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
