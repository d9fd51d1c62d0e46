package targets

import (
	"math"

	"github.com/2beens/fittrack/internal/profile"
)

// Targets holds the derived daily nutrition targets. They are never
// persisted, just recomputed from the current profile on every request.
type Targets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	BMR      float64 `json:"bmr"`
	TDEE     float64 `json:"tdee"`
}

const (
	maleBmrOffset   = 5
	femaleBmrOffset = -161

	carbsCalorieShare = 0.45
	fatsCalorieShare  = 0.25
	kcalPerGramCarbs  = 4
	kcalPerGramFats   = 9

	defaultProteinFactor = 2.0
)

// BMR is the Mifflin-St Jeor basal metabolic rate.
// Any sex other than male gets the female offset.
func BMR(p *profile.Profile) float64 {
	offset := float64(femaleBmrOffset)
	if p.Sex == profile.SexMale {
		offset = maleBmrOffset
	}
	return 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age) + offset
}

// Compute derives the daily targets from a profile. It is total:
// unknown activity and goal values take their documented fallbacks,
// and a zero protein factor takes the default 2 g/kg.
func Compute(p *profile.Profile) Targets {
	bmr := BMR(p)
	tdee := bmr * p.Activity.Multiplier()
	targetCal := tdee * p.Goal.CalorieFactor()

	proteinFactor := p.ProteinFactor
	if proteinFactor == 0 {
		proteinFactor = defaultProteinFactor
	}

	protein := proteinFactor * p.WeightKg
	carbs := (targetCal * carbsCalorieShare) / kcalPerGramCarbs
	fats := (targetCal * fatsCalorieShare) / kcalPerGramFats

	return Targets{
		Calories: round1(targetCal),
		Protein:  round1(protein),
		Carbs:    round1(carbs),
		Fats:     round1(fats),
		BMR:      round1(bmr),
		TDEE:     round1(tdee),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
