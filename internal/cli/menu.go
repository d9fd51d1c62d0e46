package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/journal"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/tracker"

	log "github.com/sirupsen/logrus"
)

const weightHistoryLimit = 10

// Menu is the interactive controller. It has two states: logged out
// (top menu) and logged in (user menu); the only state it keeps is the
// currently signed-in username, and that never survives the process.
type Menu struct {
	service *tracker.Service
	in      *bufio.Scanner
	out     io.Writer
}

func NewMenu(service *tracker.Service, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run drives the top menu until the user exits, the input ends,
// or the context gets canceled
func (m *Menu) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "=== Fitness Tracker ===")
		fmt.Fprintln(m.out, "1) Sign up")
		fmt.Fprintln(m.out, "2) Sign in")
		fmt.Fprintln(m.out, "3) Exit")

		choice, ok := m.prompt("Choose: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			m.signUp()
		case "2":
			username, signedIn := m.signIn()
			if !signedIn {
				continue
			}
			if err := m.userMenu(ctx, username); err != nil {
				return err
			}
		case "3":
			fmt.Fprintln(m.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
	}
	return nil
}

func (m *Menu) signUp() {
	username, ok := m.prompt("Choose a username: ")
	if !ok {
		return
	}

	created, err := m.service.SignUp(username)
	switch {
	case errors.Is(err, auth.ErrUserExists):
		fmt.Fprintln(m.out, "Username already exists. Try signing in.")
	case errors.Is(err, auth.ErrInvalidUsername):
		fmt.Fprintln(m.out, "Invalid username.")
	case err != nil:
		log.Errorf("sign up: %s", err)
		fmt.Fprintln(m.out, "Failed to create account.")
	default:
		fmt.Fprintf(m.out, "Account created for %s. You can now sign in.\n", created)
	}
}

func (m *Menu) signIn() (string, bool) {
	username, ok := m.prompt("Enter your username: ")
	if !ok {
		return "", false
	}

	signedIn, err := m.service.SignIn(username)
	switch {
	case errors.Is(err, auth.ErrUnknownUser), errors.Is(err, auth.ErrInvalidUsername):
		fmt.Fprintln(m.out, "No such user found. Please sign up first.")
		return "", false
	case err != nil:
		log.Errorf("sign in: %s", err)
		fmt.Fprintln(m.out, "Failed to sign in.")
		return "", false
	}

	fmt.Fprintf(m.out, "Signed in as %s\n", signedIn)
	return signedIn, true
}

func (m *Menu) userMenu(ctx context.Context, username string) error {
	for ctx.Err() == nil {
		fmt.Fprintln(m.out)
		fmt.Fprintf(m.out, "--- Welcome, %s! ---\n", username)
		fmt.Fprintln(m.out, "1) View profile & targets")
		fmt.Fprintln(m.out, "2) Update profile")
		fmt.Fprintln(m.out, "3) Log meal")
		fmt.Fprintln(m.out, "4) Show today's summary")
		fmt.Fprintln(m.out, "5) Log weight")
		fmt.Fprintln(m.out, "6) Show weight history")
		fmt.Fprintln(m.out, "7) Sign out")

		choice, ok := m.prompt("Choose: ")
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = m.viewProfile(username)
		case "2":
			err = m.updateProfile(username)
		case "3":
			err = m.logMeal(username)
		case "4":
			err = m.showDailySummary(username)
		case "5":
			err = m.logWeight(username)
		case "6":
			err = m.showWeightHistory(username)
		case "7":
			fmt.Fprintln(m.out, "Signed out.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (m *Menu) viewProfile(username string) error {
	p, err := m.service.Profile(username)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	profileJson, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	fmt.Fprintln(m.out, string(profileJson))

	t, err := m.service.Targets(username)
	if err != nil {
		return fmt.Errorf("compute targets: %w", err)
	}
	fmt.Fprintf(m.out,
		"Targets: calories: %.1f, protein: %.1f, carbs: %.1f, fats: %.1f, bmr: %.1f, tdee: %.1f\n",
		t.Calories, t.Protein, t.Carbs, t.Fats, t.BMR, t.TDEE,
	)
	return nil
}

func (m *Menu) updateProfile(username string) error {
	p, err := m.service.Profile(username)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	fmt.Fprintln(m.out, "Leave blank to keep current value.")

	if val, ok := m.promptField("name", p.Name); ok {
		p.Name = val
	}
	if val, ok := m.promptField("sex", p.Sex.String()); ok {
		p.Sex = profile.Sex(val)
	}
	if val, ok := m.promptField("age", strconv.Itoa(p.Age)); ok {
		age, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("parse age: %w", err)
		}
		p.Age = age
	}
	if val, ok := m.promptField("height_cm", formatFloat(p.HeightCm)); ok {
		if p.HeightCm, err = strconv.ParseFloat(val, 64); err != nil {
			return fmt.Errorf("parse height_cm: %w", err)
		}
	}
	if val, ok := m.promptField("weight_kg", formatFloat(p.WeightKg)); ok {
		if p.WeightKg, err = strconv.ParseFloat(val, 64); err != nil {
			return fmt.Errorf("parse weight_kg: %w", err)
		}
	}
	if val, ok := m.promptField("activity", p.Activity.String()); ok {
		p.Activity = profile.Activity(val)
		if !p.Activity.IsValid() {
			fmt.Fprintln(m.out, "Unknown activity, the moderate multiplier will be used.")
		}
	}
	if val, ok := m.promptField("goal", p.Goal.String()); ok {
		p.Goal = profile.Goal(val)
		if !p.Goal.IsValid() {
			fmt.Fprintln(m.out, "Unknown goal, maintenance will be used.")
		}
	}
	if val, ok := m.promptField("protein_factor", formatFloat(p.ProteinFactor)); ok {
		if p.ProteinFactor, err = strconv.ParseFloat(val, 64); err != nil {
			return fmt.Errorf("parse protein_factor: %w", err)
		}
	}

	if err := m.service.UpdateProfile(username, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	fmt.Fprintln(m.out, "Profile updated.")
	return nil
}

func (m *Menu) logMeal(username string) error {
	mealType, _ := m.prompt("Meal (breakfast/lunch/dinner/snack): ")
	mealDesc, _ := m.prompt("Meal description: ")

	calories, err := m.promptFloat("Calories (kcal): ")
	if err != nil {
		return err
	}
	protein, err := m.promptFloatOrZero("Protein (g): ")
	if err != nil {
		return err
	}
	carbs, err := m.promptFloatOrZero("Carbs (g): ")
	if err != nil {
		return err
	}
	fats, err := m.promptFloatOrZero("Fats (g): ")
	if err != nil {
		return err
	}

	if _, err := m.service.LogMeal(username, mealType, mealDesc, calories, protein, carbs, fats); err != nil {
		return fmt.Errorf("log meal: %w", err)
	}
	fmt.Fprintln(m.out, "Meal logged.")
	return nil
}

func (m *Menu) showDailySummary(username string) error {
	summary, err := m.service.DailySummary(username)
	if err != nil {
		return fmt.Errorf("daily summary: %w", err)
	}

	if summary.Consumed == (journal.Totals{}) {
		fmt.Fprintln(m.out, "No meals logged today.")
	}

	fmt.Fprintln(m.out)
	fmt.Fprintf(m.out, "--- %s's Summary (%s) ---\n", username, summary.Date)
	fmt.Fprintf(m.out,
		"Target:   calories: %.1f, protein: %.1f, carbs: %.1f, fats: %.1f\n",
		summary.Targets.Calories, summary.Targets.Protein, summary.Targets.Carbs, summary.Targets.Fats,
	)
	fmt.Fprintf(m.out,
		"Consumed: calories: %.1f, protein: %.1f, carbs: %.1f, fats: %.1f\n",
		summary.Consumed.Calories, summary.Consumed.Protein, summary.Consumed.Carbs, summary.Consumed.Fats,
	)

	metrics := []struct {
		name     string
		consumed float64
		target   float64
	}{
		{"calories", summary.Consumed.Calories, summary.Targets.Calories},
		{"protein", summary.Consumed.Protein, summary.Targets.Protein},
		{"carbs", summary.Consumed.Carbs, summary.Targets.Carbs},
		{"fats", summary.Consumed.Fats, summary.Targets.Fats},
	}
	for _, metric := range metrics {
		if metric.consumed > metric.target {
			fmt.Fprintf(m.out, "Exceeded %s by %.1f\n", metric.name, metric.consumed-metric.target)
		} else {
			fmt.Fprintf(m.out, "%s remaining: %.1f\n", metric.name, metric.target-metric.consumed)
		}
	}
	return nil
}

func (m *Menu) logWeight(username string) error {
	weight, err := m.promptFloat("Enter current weight (kg): ")
	if err != nil {
		return err
	}
	note, _ := m.prompt("Note (optional): ")

	if _, err := m.service.LogWeight(username, weight, note); err != nil {
		return fmt.Errorf("log weight: %w", err)
	}
	fmt.Fprintln(m.out, "Weight logged and profile updated.")
	return nil
}

func (m *Menu) showWeightHistory(username string) error {
	history, err := m.service.WeightHistory(username, weightHistoryLimit)
	if err != nil {
		return fmt.Errorf("weight history: %w", err)
	}

	if len(history) == 0 {
		fmt.Fprintln(m.out, "No weights yet.")
		return nil
	}

	fmt.Fprintf(m.out, "%-12s %-10s %-10s %s\n", "date", "time", "weight_kg", "note")
	for _, entry := range history {
		fmt.Fprintf(m.out, "%-12s %-10s %-10.1f %s\n", entry.Date, entry.Time, entry.WeightKg, entry.Note)
	}
	return nil
}

// prompt prints the label and reads one trimmed line;
// ok is false when the input is exhausted
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptField asks for a profile field value, showing the current one.
// ok is false when the answer is blank (keep current value).
func (m *Menu) promptField(field, current string) (string, bool) {
	val, ok := m.prompt(fmt.Sprintf("%s (current: %s): ", field, current))
	if !ok || val == "" {
		return "", false
	}
	return val, true
}

// promptFloat parses a required numeric answer. A malformed value is
// the one unrecovered error path, same as the original tracker.
func (m *Menu) promptFloat(label string) (float64, error) {
	val, _ := m.prompt(label)
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", val, err)
	}
	return parsed, nil
}

// promptFloatOrZero is promptFloat with blank meaning 0
func (m *Menu) promptFloatOrZero(label string) (float64, error) {
	val, _ := m.prompt(label)
	if val == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", val, err)
	}
	return parsed, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
