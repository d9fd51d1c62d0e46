package tracker

import (
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/journal"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/targets"

	log "github.com/sirupsen/logrus"
)

// Service ties accounts, the profile store, the journal store and the
// target calculator together. One instance serves the whole session.
type Service struct {
	accounts *auth.Service
	profiles *profile.Store
	entries  *journal.Store
	analyzer *journal.Analyzer
	now      func() time.Time
}

func NewService(
	accounts *auth.Service,
	profiles *profile.Store,
	entries *journal.Store,
) *Service {
	return &Service{
		accounts: accounts,
		profiles: profiles,
		entries:  entries,
		analyzer: journal.NewAnalyzer(entries),
		now:      time.Now,
	}
}

// SignUp creates the account with its default profile and
// empty log tables
func (s *Service) SignUp(username string) (string, error) {
	username, err := s.accounts.SignUp(username)
	if err != nil {
		return "", err
	}

	if err := s.profiles.Save(username, profile.NewDefault(username)); err != nil {
		return "", fmt.Errorf("save default profile: %w", err)
	}
	if err := s.entries.Init(username); err != nil {
		return "", fmt.Errorf("init log tables: %w", err)
	}

	log.Infof("tracker: account created for [%s]", username)

	return username, nil
}

func (s *Service) SignIn(username string) (string, error) {
	return s.accounts.SignIn(username)
}

func (s *Service) Profile(username string) (*profile.Profile, error) {
	return s.profiles.Load(username)
}

// UpdateProfile overwrites the whole profile record
func (s *Service) UpdateProfile(username string, p *profile.Profile) error {
	return s.profiles.Save(username, p)
}

// Targets recomputes the daily targets from the current profile
func (s *Service) Targets(username string) (targets.Targets, error) {
	p, err := s.profiles.Load(username)
	if err != nil {
		return targets.Targets{}, err
	}
	return targets.Compute(p), nil
}

func (s *Service) LogMeal(
	username, mealType, mealDesc string,
	calories, protein, carbs, fats float64,
) (journal.MealEntry, error) {
	entry := journal.NewMealEntry(s.now(), mealType, mealDesc, calories, protein, carbs, fats)
	if err := s.entries.AppendMeal(username, entry); err != nil {
		return journal.MealEntry{}, err
	}
	return entry, nil
}

// Summary compares what was consumed on a day against the
// computed daily targets
type Summary struct {
	Date     string          `json:"date"`
	Targets  targets.Targets `json:"targets"`
	Consumed journal.Totals  `json:"consumed"`
}

// DailySummary sums today's meal rows and pairs them with the targets
// derived from the current profile
func (s *Service) DailySummary(username string) (*Summary, error) {
	today := journal.DateOf(s.now())

	consumed, err := s.analyzer.DailyTotals(username, today)
	if err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}

	dailyTargets, err := s.Targets(username)
	if err != nil {
		return nil, fmt.Errorf("compute targets: %w", err)
	}

	return &Summary{
		Date:     today,
		Targets:  dailyTargets,
		Consumed: consumed,
	}, nil
}

// LogWeight appends a weight row and also rewrites the profile
// weight to the logged value
func (s *Service) LogWeight(username string, weightKg float64, note string) (journal.WeightEntry, error) {
	entry := journal.NewWeightEntry(s.now(), weightKg, note)
	if err := s.entries.AppendWeight(username, entry); err != nil {
		return journal.WeightEntry{}, err
	}

	p, err := s.profiles.Load(username)
	if err != nil {
		return journal.WeightEntry{}, fmt.Errorf("load profile: %w", err)
	}
	p.WeightKg = weightKg
	if err := s.profiles.Save(username, p); err != nil {
		return journal.WeightEntry{}, fmt.Errorf("update profile weight: %w", err)
	}

	log.Infof("tracker: [%s] weight logged and profile updated", username)

	return entry, nil
}

// WeightHistory returns the most recent weight rows, oldest first
func (s *Service) WeightHistory(username string, limit int) ([]journal.WeightEntry, error) {
	return s.analyzer.WeightHistory(username, limit)
}
