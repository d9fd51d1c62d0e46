package journal

import log "github.com/sirupsen/logrus"

type journalRepo interface {
	ListMeals(username string) ([]MealEntry, error)
	ListWeights(username string) ([]WeightEntry, error)
}

// Totals is the per-macro sum of a set of meal rows
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

type Analyzer struct {
	repo journalRepo
}

func NewAnalyzer(repo journalRepo) *Analyzer {
	return &Analyzer{
		repo: repo,
	}
}

// DailyTotals sums the meal rows logged on the given date
// (formatted as stored, see DateOf). A day with no meals
// yields zero totals.
func (a *Analyzer) DailyTotals(username, date string) (Totals, error) {
	meals, err := a.repo.ListMeals(username)
	if err != nil {
		return Totals{}, err
	}

	var totals Totals
	count := 0
	for _, meal := range meals {
		if meal.Date != date {
			continue
		}
		totals.Calories += meal.Calories
		totals.Protein += meal.Protein
		totals.Carbs += meal.Carbs
		totals.Fats += meal.Fats
		count++
	}

	log.Debugf("journal analyzer: [%s] has %d meals on %s", username, count, date)

	return totals, nil
}

// WeightHistory returns the last `limit` weight rows, oldest first.
// A limit of 0 or less returns all rows.
func (a *Analyzer) WeightHistory(username string, limit int) ([]WeightEntry, error) {
	weights, err := a.repo.ListWeights(username)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(weights) > limit {
		weights = weights[len(weights)-limit:]
	}

	return weights, nil
}
