package service

import (
	"math"
	"time"

	"github.com/saadjs/dhyan-cli/internal/catalog"
	"github.com/saadjs/dhyan-cli/internal/model"
)

const (
	DefaultDailyCalories  = 2000
	DefaultWeeklyWorkouts = 5
)

type GoalProgress struct {
	Value   int     `json:"value"`
	Goal    int     `json:"goal"`
	Percent float64 `json:"percent"`
}

func newGoalProgress(value, goal int) GoalProgress {
	return GoalProgress{Value: value, Goal: goal, Percent: cappedPercent(float64(value), float64(goal))}
}

type DashboardReport struct {
	Date           string               `json:"date"`
	Today          DayAggregate         `json:"today"`
	Calories       GoalProgress         `json:"calories"`
	WeeklyWorkouts GoalProgress         `json:"weekly_workouts"`
	OverGoal       bool                 `json:"over_goal"`
	Advisories     []Advisory           `json:"advisories"`
	SuggestedMeal  model.MealType       `json:"suggested_meal"`
	Suggestions    []catalog.Food       `json:"suggestions"`
	RecentFood     []model.FoodEntry    `json:"recent_food"`
	RecentWorkouts []model.WorkoutEntry `json:"recent_workouts"`
}

const dashboardRecentLimit = 5

// BuildDashboard summarizes now's day against the profile goals. A nil
// profile falls back to the default goals.
func BuildDashboard(profile *model.UserProfile, food []model.FoodEntry, workouts []model.WorkoutEntry, now time.Time) DashboardReport {
	calorieGoal := DefaultDailyCalories
	workoutGoal := DefaultWeeklyWorkouts
	if profile != nil {
		if profile.Goals.DailyCalories > 0 {
			calorieGoal = profile.Goals.DailyCalories
		}
		if profile.Goals.WeeklyWorkouts > 0 {
			workoutGoal = profile.Goals.WeeklyWorkouts
		}
	}

	today := AggregateDay(food, workouts, now)
	meal := catalog.MealForHour(now.Hour())
	return DashboardReport{
		Date:           today.Date,
		Today:          today,
		Calories:       newGoalProgress(today.CaloriesConsumed, calorieGoal),
		WeeklyWorkouts: newGoalProgress(WeeklyWorkoutCount(workouts, now), workoutGoal),
		OverGoal:       today.NetCalories > calorieGoal,
		Advisories:     GenerateInsights(today, now.Hour(), today.Meals.Breakfast),
		SuggestedMeal:  meal,
		Suggestions:    catalog.SuggestFoods(meal),
		RecentFood:     recentOnDay(food, now, func(f model.FoodEntry) time.Time { return f.LoggedAt }),
		RecentWorkouts: recentOnDay(workouts, now, func(w model.WorkoutEntry) time.Time { return w.LoggedAt }),
	}
}

// recentOnDay returns up to dashboardRecentLimit items from now's day, newest
// first.
func recentOnDay[T any](items []T, now time.Time, at func(T) time.Time) []T {
	key := dayKey(now)
	out := make([]T, 0)
	for _, it := range items {
		if dayKey(at(it).In(now.Location())) == key {
			out = append(out, it)
		}
	}
	sortNewestFirst(out, at)
	if len(out) > dashboardRecentLimit {
		out = out[:dashboardRecentLimit]
	}
	return out
}

type ProgressTrends struct {
	CaloriesConsumed TrendStat `json:"calories_consumed"`
	CaloriesBurned   TrendStat `json:"calories_burned"`
	NetCalories      TrendStat `json:"net_calories"`
}

type ProgressStreaks struct {
	Logging Streak `json:"logging"`
	Workout Streak `json:"workout"`
}

type ProgressReport struct {
	WindowDays          int             `json:"window_days"`
	FromDate            string          `json:"from_date"`
	ToDate              string          `json:"to_date"`
	Series              []DayAggregate  `json:"series"`
	WeightPoints        []WeightPoint   `json:"weight_points"`
	TotalWorkouts       int             `json:"total_workouts"`
	AvgCaloriesConsumed int             `json:"avg_calories_consumed"`
	AvgCaloriesBurned   int             `json:"avg_calories_burned"`
	Weight              WeightTrend     `json:"weight"`
	Trends              ProgressTrends  `json:"trends"`
	Streaks             ProgressStreaks `json:"streaks"`
}

func BuildProgress(food []model.FoodEntry, workouts []model.WorkoutEntry, weights []model.WeightEntry, windowDays int, now time.Time) ProgressReport {
	series := BuildSeries(food, workouts, weights, windowDays, now)
	report := ProgressReport{
		WindowDays:   windowDays,
		Series:       series,
		WeightPoints: WeightPoints(series),
		Weight:       LatestWeights(weights),
	}
	if len(series) == 0 {
		return report
	}
	report.FromDate = series[0].Date
	report.ToDate = series[len(series)-1].Date

	consumed := make([]float64, len(series))
	burned := make([]float64, len(series))
	net := make([]float64, len(series))
	var sumConsumed, sumBurned int
	for i, d := range series {
		report.TotalWorkouts += d.WorkoutCount
		sumConsumed += d.CaloriesConsumed
		sumBurned += d.CaloriesBurned
		consumed[i] = float64(d.CaloriesConsumed)
		burned[i] = float64(d.CaloriesBurned)
		net[i] = float64(d.NetCalories)
	}
	report.AvgCaloriesConsumed = int(math.Round(float64(sumConsumed) / float64(len(series))))
	report.AvgCaloriesBurned = int(math.Round(float64(sumBurned) / float64(len(series))))
	report.Trends = ProgressTrends{
		CaloriesConsumed: trendFromValues(consumed),
		CaloriesBurned:   trendFromValues(burned),
		NetCalories:      trendFromValues(net),
	}
	report.Streaks = ProgressStreaks{
		Logging: computeBooleanStreak(series, func(d DayAggregate) bool { return d.FoodCount > 0 }),
		Workout: computeBooleanStreak(series, func(d DayAggregate) bool { return d.WorkoutCount > 0 }),
	}
	return report
}
