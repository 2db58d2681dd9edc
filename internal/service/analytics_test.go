package service_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/saadjs/dhyan-cli/internal/model"
	"github.com/saadjs/dhyan-cli/internal/service"
)

func sampleFood(day time.Time) []model.FoodEntry {
	return []model.FoodEntry{
		{ID: "f1", Name: "Oatmeal", Calories: 150, ProteinG: 5.1, CarbsG: 27, FatG: 3, FiberG: 4, LoggedAt: day.Add(8 * time.Hour), MealType: model.MealBreakfast},
		{ID: "f2", Name: "Chicken Breast", Calories: 165, ProteinG: 31.2, CarbsG: 0, FatG: 3.6, LoggedAt: day.Add(13 * time.Hour), MealType: model.MealLunch},
		{ID: "f3", Name: "Apple", Calories: 95, ProteinG: 0.1, CarbsG: 25, FatG: 0.3, FiberG: 4.4, LoggedAt: day.Add(16 * time.Hour)},
		{ID: "f4", Name: "Yesterday", Calories: 900, ProteinG: 40, LoggedAt: day.Add(-2 * time.Hour), MealType: model.MealDinner},
	}
}

func sampleWorkouts(day time.Time) []model.WorkoutEntry {
	return []model.WorkoutEntry{
		{ID: "w1", Name: "Running", Category: model.WorkoutCardio, DurationMin: 30, CaloriesBurned: 360, LoggedAt: day.Add(7 * time.Hour)},
		{ID: "w2", Name: "Yoga", Category: model.WorkoutFlexibility, DurationMin: 20, CaloriesBurned: 60, LoggedAt: day.Add(19 * time.Hour)},
		{ID: "w3", Name: "Tomorrow", Category: model.WorkoutSports, DurationMin: 60, CaloriesBurned: 600, LoggedAt: day.Add(25 * time.Hour)},
	}
}

func TestAggregateDaySumsMatchingEntries(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	got := service.AggregateDay(sampleFood(day), sampleWorkouts(day), day.Add(12*time.Hour))

	if got.Date != "2026-03-10" {
		t.Fatalf("expected date key 2026-03-10, got %s", got.Date)
	}
	if got.CaloriesConsumed != 410 || got.CaloriesBurned != 420 || got.NetCalories != -10 {
		t.Fatalf("unexpected calories: %+v", got)
	}
	if got.FoodCount != 3 || got.WorkoutCount != 2 || got.TotalDuration != 50 {
		t.Fatalf("unexpected counts: %+v", got)
	}
	if got.Protein != 36.4 || got.Carbs != 52 || got.Fat != 6.9 || got.Fiber != 8.4 {
		t.Fatalf("unexpected macros: protein=%v carbs=%v fat=%v fiber=%v", got.Protein, got.Carbs, got.Fat, got.Fiber)
	}
	want := service.MealCounts{Breakfast: 1, Lunch: 1, Untagged: 1}
	if got.Meals != want {
		t.Fatalf("expected meal counts %+v, got %+v", want, got.Meals)
	}
	if got.Weight != nil {
		t.Fatalf("expected absent weight")
	}
}

func TestAggregateDayAccumulatesMacrosExactly(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	food := make([]model.FoodEntry, 0, 10)
	for i := 0; i < 10; i++ {
		food = append(food, model.FoodEntry{ID: "x", ProteinG: 0.1, FatG: 0.05, LoggedAt: day})
	}
	got := service.AggregateDay(food, nil, day)
	if got.Protein != 1 {
		t.Fatalf("expected protein 1.0, got %v", got.Protein)
	}
	if got.Fat != 0.5 {
		t.Fatalf("expected fat 0.5, got %v", got.Fat)
	}
}

func TestAggregateDayIsIdempotent(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	food := sampleFood(day)
	workouts := sampleWorkouts(day)
	first := service.AggregateDay(food, workouts, day)
	second := service.AggregateDay(food, workouts, day)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical aggregates, got %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(food, sampleFood(day)) {
		t.Fatalf("expected inputs to stay unchanged")
	}
}

func TestAggregateDayEmpty(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	got := service.AggregateDay(sampleFood(day), sampleWorkouts(day), day.AddDate(0, 0, 5))
	want := service.DayAggregate{Date: "2026-03-15"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected zero aggregate, got %+v", got)
	}
	if got := service.AggregateDay(nil, nil, day); got.CaloriesConsumed != 0 || got.Weight != nil {
		t.Fatalf("expected zero aggregate for nil input, got %+v", got)
	}
}

func TestAggregateDayUsesDateLocation(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+5", 5*60*60)
	// 21:00 UTC on the 9th is 02:00 on the 10th in loc.
	food := []model.FoodEntry{{ID: "f", Calories: 300, LoggedAt: time.Date(2026, 3, 9, 21, 0, 0, 0, time.UTC)}}
	got := service.AggregateDay(food, nil, time.Date(2026, 3, 10, 12, 0, 0, 0, loc))
	if got.CaloriesConsumed != 300 {
		t.Fatalf("expected entry bucketed into local day, got %+v", got)
	}
	got = service.AggregateDay(food, nil, time.Date(2026, 3, 9, 12, 0, 0, 0, loc))
	if got.CaloriesConsumed != 0 {
		t.Fatalf("expected no entry on previous local day, got %+v", got)
	}
}

func TestWeeklyWorkoutCountIsRolling(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 11, 18, 30, 0, 0, time.UTC) // Wednesday
	workouts := []model.WorkoutEntry{
		{ID: "old", LoggedAt: now.AddDate(0, 0, -8)},
		{ID: "edge", LoggedAt: now.Add(-(6*24 + 23) * time.Hour)},
		{ID: "last-week", LoggedAt: time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)},
		{ID: "today", LoggedAt: now.Add(-time.Hour)},
		{ID: "future", LoggedAt: now.Add(time.Hour)},
	}
	if got := service.WeeklyWorkoutCount(workouts, now); got != 3 {
		t.Fatalf("expected 3 workouts in rolling window, got %d", got)
	}
	if got := service.CountWorkoutsInWindow(workouts, now, 30); got != 4 {
		t.Fatalf("expected 4 workouts in 30 day window, got %d", got)
	}
	if got := service.WeeklyWorkoutCount(nil, now); got != 0 {
		t.Fatalf("expected 0 for no workouts, got %d", got)
	}
}
