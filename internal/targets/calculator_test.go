package targets_test

import (
	"testing"

	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/targets"

	"github.com/stretchr/testify/assert"
)

func TestCompute_MaintenanceExample(t *testing.T) {
	p := &profile.Profile{
		Name:          "serj",
		Sex:           profile.SexMale,
		Age:           25,
		HeightCm:      170,
		WeightKg:      70,
		Activity:      profile.ActivityModerate,
		Goal:          profile.GoalMaintenance,
		ProteinFactor: 2.0,
	}

	// bmr = 10*70 + 6.25*170 - 5*25 + 5 = 1642.5
	// tdee = 1642.5 * 1.55 = 2545.875
	got := targets.Compute(p)
	assert.Equal(t, 1642.5, got.BMR)
	assert.Equal(t, 2545.9, got.TDEE)
	assert.Equal(t, 2545.9, got.Calories)
	assert.Equal(t, 140.0, got.Protein)
	assert.Equal(t, 286.4, got.Carbs)
	assert.Equal(t, 70.7, got.Fats)
}

func TestCompute_Deterministic(t *testing.T) {
	p := profile.NewDefault("serj")
	first := targets.Compute(p)
	second := targets.Compute(p)
	assert.Equal(t, first, second)
}

func TestCompute_GoalAdjustments(t *testing.T) {
	p := profile.NewDefault("serj")

	p.Goal = profile.GoalFatLoss
	fatLoss := targets.Compute(p)
	// 2545.875 * 0.8 = 2036.7
	assert.Equal(t, 2036.7, fatLoss.Calories)

	p.Goal = profile.GoalBodyBuilding
	bodyBuilding := targets.Compute(p)
	// 2545.875 * 1.1 = 2800.4625 -> 2800.5
	assert.Equal(t, 2800.5, bodyBuilding.Calories)

	// unknown goal behaves as maintenance
	p.Goal = profile.Goal("recomp")
	unknown := targets.Compute(p)
	assert.Equal(t, 2545.9, unknown.Calories)
}

func TestCompute_FemaleOffset(t *testing.T) {
	p := profile.NewDefault("ana")
	p.Sex = profile.SexFemale
	got := targets.Compute(p)
	// 1642.5 - 5 - 161 = 1476.5
	assert.Equal(t, 1476.5, got.BMR)

	// any non-male sex value gets the female offset
	p.Sex = profile.Sex("unspecified")
	assert.Equal(t, 1476.5, targets.Compute(p).BMR)
}

func TestCompute_UnknownActivityFallback(t *testing.T) {
	p := profile.NewDefault("serj")
	moderate := targets.Compute(p)

	p.Activity = profile.Activity("parkour")
	unknown := targets.Compute(p)
	assert.Equal(t, moderate.TDEE, unknown.TDEE)
}

func TestCompute_ZeroProteinFactorDefaults(t *testing.T) {
	p := profile.NewDefault("serj")
	p.ProteinFactor = 0
	got := targets.Compute(p)
	assert.Equal(t, 140.0, got.Protein)
}

func TestCompute_NonNegativeOutputs(t *testing.T) {
	p := &profile.Profile{
		Sex:           profile.SexFemale,
		Age:           40,
		HeightCm:      160,
		WeightKg:      55,
		Activity:      profile.ActivitySedentary,
		Goal:          profile.GoalFatLoss,
		ProteinFactor: 1.6,
	}
	got := targets.Compute(p)
	assert.GreaterOrEqual(t, got.Protein, 0.0)
	assert.GreaterOrEqual(t, got.Carbs, 0.0)
	assert.GreaterOrEqual(t, got.Fats, 0.0)
	assert.GreaterOrEqual(t, got.Calories, 0.0)
}
