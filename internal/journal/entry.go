package journal

import "time"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// MealEntry is one logged meal row in meals.csv. Rows are append-only,
// never mutated or deleted.
type MealEntry struct {
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	MealType string  `json:"meal_type"`
	MealDesc string  `json:"meal_desc"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

func NewMealEntry(now time.Time, mealType, mealDesc string, calories, protein, carbs, fats float64) MealEntry {
	return MealEntry{
		Date:     now.Format(dateLayout),
		Time:     now.Format(timeLayout),
		MealType: mealType,
		MealDesc: mealDesc,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fats:     fats,
	}
}

// WeightEntry is one logged body-weight row in weights.csv
type WeightEntry struct {
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	WeightKg float64 `json:"weight_kg"`
	Note     string  `json:"note"`
}

func NewWeightEntry(now time.Time, weightKg float64, note string) WeightEntry {
	return WeightEntry{
		Date:     now.Format(dateLayout),
		Time:     now.Format(timeLayout),
		WeightKg: weightKg,
		Note:     note,
	}
}

// DateOf formats a timestamp the way entry dates are stored,
// used to select "today's" rows
func DateOf(t time.Time) string {
	return t.Format(dateLayout)
}
