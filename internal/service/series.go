package service

import (
	"time"

	"github.com/saadjs/dhyan-cli/internal/model"
)

const (
	WindowWeek  = 7
	WindowMonth = 30
)

type WeightPoint struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight_kg"`
}

// BuildSeries returns one aggregate per calendar day for the windowDays days
// ending on now's day, oldest first. Days without entries are zero-valued;
// Weight is set only on days with a reading.
func BuildSeries(food []model.FoodEntry, workouts []model.WorkoutEntry, weights []model.WeightEntry, windowDays int, now time.Time) []DayAggregate {
	if windowDays <= 0 {
		return []DayAggregate{}
	}
	loc := now.Location()
	foodByDay := make(map[string][]model.FoodEntry)
	for _, f := range food {
		k := dayKey(f.LoggedAt.In(loc))
		foodByDay[k] = append(foodByDay[k], f)
	}
	workoutsByDay := make(map[string][]model.WorkoutEntry)
	for _, w := range workouts {
		k := dayKey(w.LoggedAt.In(loc))
		workoutsByDay[k] = append(workoutsByDay[k], w)
	}
	weightByDay := latestWeightByDay(weights, loc)

	today := beginningOfDay(now)
	out := make([]DayAggregate, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		k := dayKey(day)
		agg := AggregateDay(foodByDay[k], workoutsByDay[k], day)
		if w, ok := weightByDay[k]; ok {
			kg := w.WeightKg
			agg.Weight = &kg
		}
		out = append(out, agg)
	}
	return out
}

// latestWeightByDay keeps the reading with the greatest timestamp per day.
// Equal timestamps resolve to the later entry in the slice.
func latestWeightByDay(weights []model.WeightEntry, loc *time.Location) map[string]model.WeightEntry {
	out := make(map[string]model.WeightEntry)
	for _, w := range weights {
		k := dayKey(w.MeasuredAt.In(loc))
		if cur, ok := out[k]; ok && w.MeasuredAt.Before(cur.MeasuredAt) {
			continue
		}
		out[k] = w
	}
	return out
}

// WeightPoints drops days without a weight reading.
func WeightPoints(series []DayAggregate) []WeightPoint {
	out := make([]WeightPoint, 0)
	for _, d := range series {
		if d.Weight == nil {
			continue
		}
		out = append(out, WeightPoint{Date: d.Date, WeightKg: *d.Weight})
	}
	return out
}
