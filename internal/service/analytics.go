package service

import (
	"time"

	"github.com/saadjs/dhyan-cli/internal/model"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type MealCounts struct {
	Breakfast int `json:"breakfast"`
	Lunch     int `json:"lunch"`
	Dinner    int `json:"dinner"`
	Snack     int `json:"snack"`
	Untagged  int `json:"untagged"`
}

func (m *MealCounts) add(meal model.MealType) {
	switch meal {
	case model.MealBreakfast:
		m.Breakfast++
	case model.MealLunch:
		m.Lunch++
	case model.MealDinner:
		m.Dinner++
	case model.MealSnack:
		m.Snack++
	default:
		m.Untagged++
	}
}

// DayAggregate summarizes one calendar day. It is derived on every read and
// never persisted.
type DayAggregate struct {
	Date             string     `json:"date"`
	CaloriesConsumed int        `json:"calories_consumed"`
	CaloriesBurned   int        `json:"calories_burned"`
	NetCalories      int        `json:"net_calories"`
	FoodCount        int        `json:"food_count"`
	WorkoutCount     int        `json:"workout_count"`
	TotalDuration    int        `json:"total_duration_min"`
	Protein          float64    `json:"protein_g"`
	Carbs            float64    `json:"carbs_g"`
	Fat              float64    `json:"fat_g"`
	Fiber            float64    `json:"fiber_g"`
	Meals            MealCounts `json:"meals"`
	Weight           *float64   `json:"weight_kg,omitempty"`
}

// AggregateDay sums the entries falling on date's calendar day in date's
// location. Entry timestamps are converted into that location first.
func AggregateDay(food []model.FoodEntry, workouts []model.WorkoutEntry, date time.Time) DayAggregate {
	loc := date.Location()
	key := dayKey(date)
	out := DayAggregate{Date: key}

	var protein, carbs, fat, fiber decimal.Decimal
	for _, f := range food {
		if dayKey(f.LoggedAt.In(loc)) != key {
			continue
		}
		out.FoodCount++
		out.CaloriesConsumed += f.Calories
		protein = protein.Add(decimal.NewFromFloat(f.ProteinG))
		carbs = carbs.Add(decimal.NewFromFloat(f.CarbsG))
		fat = fat.Add(decimal.NewFromFloat(f.FatG))
		fiber = fiber.Add(decimal.NewFromFloat(f.FiberG))
		out.Meals.add(f.MealType)
	}
	for _, w := range workouts {
		if dayKey(w.LoggedAt.In(loc)) != key {
			continue
		}
		out.WorkoutCount++
		out.CaloriesBurned += w.CaloriesBurned
		out.TotalDuration += w.DurationMin
	}

	out.NetCalories = out.CaloriesConsumed - out.CaloriesBurned
	out.Protein = round1(protein)
	out.Carbs = round1(carbs)
	out.Fat = round1(fat)
	out.Fiber = round1(fiber)
	return out
}

// CountWorkoutsInWindow counts workouts logged in the rolling window
// [now - days, now]. It ignores calendar boundaries.
func CountWorkoutsInWindow(workouts []model.WorkoutEntry, now time.Time, days int) int {
	start := now.AddDate(0, 0, -days)
	count := 0
	for _, w := range workouts {
		if w.LoggedAt.Before(start) || w.LoggedAt.After(now) {
			continue
		}
		count++
	}
	return count
}

func WeeklyWorkoutCount(workouts []model.WorkoutEntry, now time.Time) int {
	return CountWorkoutsInWindow(workouts, now, 7)
}

func round1(d decimal.Decimal) float64 {
	return d.Round(1).InexactFloat64()
}

func dayKey(t time.Time) string {
	return t.Format(dateLayout)
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
