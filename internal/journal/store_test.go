package journal_test

import (
	"os"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/2beens/fittrack/internal/journal"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJournalSetup(t *testing.T, username string) (*journal.Store, string) {
	t.Helper()

	usersPath := t.TempDir()
	require.NoError(t, os.MkdirAll(path.Join(usersPath, username), 0755))

	store, err := journal.NewStore(usersPath)
	require.NoError(t, err)
	return store, usersPath
}

func TestNewStore_EmptyPath(t *testing.T) {
	_, err := journal.NewStore("")
	require.Error(t, err)
}

func TestStore_Init_WritesHeaders(t *testing.T) {
	store, usersPath := testJournalSetup(t, "serj")
	require.NoError(t, store.Init("serj"))

	mealsRaw, err := os.ReadFile(path.Join(usersPath, "serj", "meals.csv"))
	require.NoError(t, err)
	assert.Equal(t, "date,time,meal_type,meal_desc,calories,protein,carbs,fats\n", string(mealsRaw))

	weightsRaw, err := os.ReadFile(path.Join(usersPath, "serj", "weights.csv"))
	require.NoError(t, err)
	assert.Equal(t, "date,time,weight_kg,note\n", string(weightsRaw))

	// initialized tables read back as empty
	meals, err := store.ListMeals("serj")
	require.NoError(t, err)
	assert.Empty(t, meals)

	// init again does not wipe anything
	require.NoError(t, store.AppendWeight("serj", journal.NewWeightEntry(time.Now(), 79.5, "")))
	require.NoError(t, store.Init("serj"))
	weights, err := store.ListWeights("serj")
	require.NoError(t, err)
	assert.Len(t, weights, 1)
}

func TestStore_AppendMeal_AddsExactlyOneRow(t *testing.T) {
	store, usersPath := testJournalSetup(t, "serj")
	require.NoError(t, store.Init("serj"))

	now := time.Date(2025, 5, 5, 13, 30, 45, 0, time.Local)
	first := journal.NewMealEntry(now, "lunch", gofakeit.Dinner(), 650, 45, 70, 15)
	require.NoError(t, store.AppendMeal("serj", first))

	meals, err := store.ListMeals("serj")
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, first, meals[0])
	assert.Equal(t, "2025-05-05", meals[0].Date)
	assert.Equal(t, "13:30:45", meals[0].Time)

	// a second append leaves the first row unchanged
	second := journal.NewMealEntry(now.Add(4*time.Hour), "snack", "protein shake", 200, 30, 10, 2.5)
	require.NoError(t, store.AppendMeal("serj", second))

	meals, err = store.ListMeals("serj")
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, first, meals[0])
	assert.Equal(t, second, meals[1])

	raw, err := os.ReadFile(path.Join(usersPath, "serj", "meals.csv"))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(raw), "\n")) // header + 2 rows
}

func TestStore_AppendMeal_HeaderIfAbsent(t *testing.T) {
	// no Init: appending to a missing table writes the header first
	store, usersPath := testJournalSetup(t, "serj")

	entry := journal.NewMealEntry(time.Now(), "breakfast", "oats, with honey", 450, 25, 60, 12)
	require.NoError(t, store.AppendMeal("serj", entry))

	raw, err := os.ReadFile(path.Join(usersPath, "serj", "meals.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "date,time,meal_type,meal_desc,calories,protein,carbs,fats\n"))

	meals, err := store.ListMeals("serj")
	require.NoError(t, err)
	require.Len(t, meals, 1)
	// free text with commas survives the CSV round trip
	assert.Equal(t, "oats, with honey", meals[0].MealDesc)
}

func TestStore_AppendWeight_ListWeights(t *testing.T) {
	store, _ := testJournalSetup(t, "serj")
	require.NoError(t, store.Init("serj"))

	now := time.Date(2025, 5, 5, 8, 0, 0, 0, time.Local)
	entry := journal.NewWeightEntry(now, 79.4, "after workout")
	require.NoError(t, store.AppendWeight("serj", entry))

	weights, err := store.ListWeights("serj")
	require.NoError(t, err)
	require.Len(t, weights, 1)
	assert.Equal(t, entry, weights[0])
}

func TestStore_List_MissingTableIsEmpty(t *testing.T) {
	store, _ := testJournalSetup(t, "serj")

	meals, err := store.ListMeals("serj")
	require.NoError(t, err)
	assert.Empty(t, meals)

	weights, err := store.ListWeights("serj")
	require.NoError(t, err)
	assert.Empty(t, weights)
}
