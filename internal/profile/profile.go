package profile

// Profile is the one record kept per user. It is created with
// defaults at sign-up and overwritten as a whole on every save.
type Profile struct {
	Name          string   `json:"name"`
	Sex           Sex      `json:"sex"`
	Age           int      `json:"age"`
	HeightCm      float64  `json:"height_cm"`
	WeightKg      float64  `json:"weight_kg"`
	Activity      Activity `json:"activity"`
	Goal          Goal     `json:"goal"`
	ProteinFactor float64  `json:"protein_factor"`
}

// NewDefault returns the profile a fresh account starts with
func NewDefault(username string) *Profile {
	return &Profile{
		Name:          username,
		Sex:           SexMale,
		Age:           25,
		HeightCm:      170,
		WeightKg:      70,
		Activity:      ActivityModerate,
		Goal:          GoalMaintenance,
		ProteinFactor: 2.0,
	}
}

// Sex can be one of:
//   - male
//   - female
//
// anything else gets the female BMR offset
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func (s Sex) String() string {
	return string(s)
}

func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	default:
		return false
	}
}

// Activity can be one of:
//   - sedentary
//   - light
//   - moderate
//   - active
type Activity string

const (
	ActivitySedentary Activity = "sedentary"
	ActivityLight     Activity = "light"
	ActivityModerate  Activity = "moderate"
	ActivityActive    Activity = "active"
)

func (a Activity) String() string {
	return string(a)
}

func (a Activity) IsValid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive:
		return true
	default:
		return false
	}
}

// Multiplier returns the TDEE activity multiplier.
// Unknown activity values fall back to the moderate multiplier.
func (a Activity) Multiplier() float64 {
	switch a {
	case ActivitySedentary:
		return 1.2
	case ActivityLight:
		return 1.375
	case ActivityModerate:
		return 1.55
	case ActivityActive:
		return 1.725
	default:
		return 1.55
	}
}

// Goal can be one of:
//   - fat_loss
//   - maintenance
//   - body_building
type Goal string

const (
	GoalFatLoss      Goal = "fat_loss"
	GoalMaintenance  Goal = "maintenance"
	GoalBodyBuilding Goal = "body_building"
)

func (g Goal) String() string {
	return string(g)
}

func (g Goal) IsValid() bool {
	switch g {
	case GoalFatLoss, GoalMaintenance, GoalBodyBuilding:
		return true
	default:
		return false
	}
}

// CalorieFactor scales TDEE into the daily calorie target.
// Unknown goal values fall back to maintenance.
func (g Goal) CalorieFactor() float64 {
	switch g {
	case GoalFatLoss:
		return 0.8
	case GoalBodyBuilding:
		return 1.1
	default:
		return 1.0
	}
}
