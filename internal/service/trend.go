package service

import (
	"sort"

	"github.com/saadjs/dhyan-cli/internal/model"
)

type WeightTrend struct {
	Latest   *model.WeightEntry `json:"latest,omitempty"`
	Previous *model.WeightEntry `json:"previous,omitempty"`
	ChangeKg *float64           `json:"change_kg,omitempty"`
}

// LatestWeights picks the two most recent readings by timestamp. Readings
// with equal timestamps keep their stored order.
func LatestWeights(entries []model.WeightEntry) WeightTrend {
	sorted := make([]model.WeightEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MeasuredAt.Before(sorted[j].MeasuredAt)
	})

	var out WeightTrend
	n := len(sorted)
	if n == 0 {
		return out
	}
	latest := sorted[n-1]
	out.Latest = &latest
	if n > 1 {
		prev := sorted[n-2]
		out.Previous = &prev
		change := latest.WeightKg - prev.WeightKg
		out.ChangeKg = &change
	}
	return out
}

type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

type TrendStat struct {
	SlopePerDay float64 `json:"slope_per_day"`
	Direction   string  `json:"direction"`
}

func computeBooleanStreak(days []DayAggregate, predicate func(DayAggregate) bool) Streak {
	var s Streak
	run := 0
	for i := range days {
		if predicate(days[i]) {
			run++
			if run > s.Longest {
				s.Longest = run
			}
			continue
		}
		run = 0
	}
	for i := len(days) - 1; i >= 0; i-- {
		if !predicate(days[i]) {
			break
		}
		s.Current++
	}
	return s
}

func trendFromValues(values []float64) TrendStat {
	slope := linearRegressionSlope(values)
	direction := "flat"
	if slope >= 0.5 {
		direction = "up"
	} else if slope <= -0.5 {
		direction = "down"
	}
	return TrendStat{
		SlopePerDay: slope,
		Direction:   direction,
	}
}

func linearRegressionSlope(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumX2 float64
	for i := range values {
		x := float64(i)
		y := values[i]
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	denom := (float64(n) * sumX2) - (sumX * sumX)
	if denom == 0 {
		return 0
	}
	return ((float64(n) * sumXY) - (sumX * sumY)) / denom
}
