package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/saadjs/dhyan-cli/internal/model"
	"github.com/saadjs/dhyan-cli/internal/store"
)

const SnapshotVersion = 1

type Snapshot struct {
	Version    int                  `json:"version"`
	ExportedAt time.Time            `json:"exported_at"`
	Profile    *model.UserProfile   `json:"profile,omitempty"`
	Food       []model.FoodEntry    `json:"food_entries"`
	Workouts   []model.WorkoutEntry `json:"workout_entries"`
	Weights    []model.WeightEntry  `json:"weight_entries"`
}

type ImportMode string

const (
	ImportModeMerge   ImportMode = "merge"
	ImportModeReplace ImportMode = "replace"
)

func ParseImportMode(value string) (ImportMode, error) {
	switch m := ImportMode(strings.ToLower(strings.TrimSpace(value))); m {
	case "":
		return ImportModeMerge, nil
	case ImportModeMerge, ImportModeReplace:
		return m, nil
	default:
		return "", invalidf("import mode %q (use merge or replace)", value)
	}
}

type ImportReport struct {
	Mode            ImportMode `json:"mode"`
	ProfileImported bool       `json:"profile_imported"`
	Inserted        int        `json:"inserted"`
	Skipped         int        `json:"skipped"`
}

func (t *Tracker) ExportSnapshot(ctx context.Context) (*Snapshot, error) {
	profile, err := t.loadProfile(ctx)
	if err != nil {
		return nil, err
	}
	food, err := t.loadFood(ctx)
	if err != nil {
		return nil, err
	}
	workouts, err := t.loadWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	weights, err := t.loadWeights(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: t.now(),
		Profile:    profile,
		Food:       nonNil(food),
		Workouts:   nonNil(workouts),
		Weights:    nonNil(weights),
	}, nil
}

// ImportSnapshot writes snap into the store. Merge keeps existing entries
// and skips incoming ones with a known ID; the incoming profile only fills
// a missing one. Replace overwrites the entry collections, and the profile
// when the snapshot carries one.
func (t *Tracker) ImportSnapshot(ctx context.Context, snap *Snapshot, mode ImportMode) (ImportReport, error) {
	report := ImportReport{Mode: mode}
	if snap == nil {
		return report, invalidf("snapshot is empty")
	}
	if snap.Version != SnapshotVersion {
		return report, invalidf("snapshot version %d (expected %d)", snap.Version, SnapshotVersion)
	}
	if err := validateSnapshot(snap); err != nil {
		return report, err
	}

	var (
		profile  *model.UserProfile
		food     []model.FoodEntry
		workouts []model.WorkoutEntry
		weights  []model.WeightEntry
		err      error
	)
	switch mode {
	case ImportModeReplace:
	case ImportModeMerge:
		if profile, err = t.loadProfile(ctx); err != nil {
			return report, err
		}
		if food, err = t.loadFood(ctx); err != nil {
			return report, err
		}
		if workouts, err = t.loadWorkouts(ctx); err != nil {
			return report, err
		}
		if weights, err = t.loadWeights(ctx); err != nil {
			return report, err
		}
	default:
		return report, invalidf("import mode %q (use merge or replace)", mode)
	}

	if snap.Profile != nil && (mode == ImportModeReplace || profile == nil) {
		profile = snap.Profile
		report.ProfileImported = true
	}
	food = mergeByID(food, snap.Food, func(e model.FoodEntry) string { return e.ID }, &report)
	workouts = mergeByID(workouts, snap.Workouts, func(e model.WorkoutEntry) string { return e.ID }, &report)
	weights = mergeByID(weights, snap.Weights, func(e model.WeightEntry) string { return e.ID }, &report)

	if profile != nil {
		if err := t.save(ctx, store.KeyUser, profile, 1); err != nil {
			return report, fmt.Errorf("import profile: %w", err)
		}
	}
	if err := t.save(ctx, store.KeyFoodEntries, food, len(food)); err != nil {
		return report, fmt.Errorf("import food entries: %w", err)
	}
	if err := t.save(ctx, store.KeyWorkoutEntries, workouts, len(workouts)); err != nil {
		return report, fmt.Errorf("import workout entries: %w", err)
	}
	if err := t.save(ctx, store.KeyWeightEntries, weights, len(weights)); err != nil {
		return report, fmt.Errorf("import weight entries: %w", err)
	}
	t.log.Info("snapshot imported", "mode", string(mode), "inserted", report.Inserted, "skipped", report.Skipped)
	return report, nil
}

// validateSnapshot applies the add/profile input rules to every record so a
// rejected snapshot leaves the store untouched.
func validateSnapshot(snap *Snapshot) error {
	if p := snap.Profile; p != nil {
		in := ProfileInput{
			Name:           strings.TrimSpace(p.Name),
			Email:          strings.TrimSpace(p.Email),
			Age:            p.Age,
			WeightKg:       p.WeightKg,
			HeightCm:       p.HeightCm,
			Sex:            string(p.Sex),
			ActivityLevel:  string(p.ActivityLevel),
			TargetWeightKg: p.Goals.TargetWeightKg,
			DailyCalories:  p.Goals.DailyCalories,
			WeeklyWorkouts: p.Goals.WeeklyWorkouts,
		}
		if err := validateInput(in); err != nil {
			return fmt.Errorf("snapshot profile: %w", err)
		}
	}
	for _, e := range snap.Food {
		in := FoodInput{
			Name:     strings.TrimSpace(e.Name),
			Calories: e.Calories,
			ProteinG: e.ProteinG,
			CarbsG:   e.CarbsG,
			FatG:     e.FatG,
			FiberG:   e.FiberG,
			Serving:  e.Serving,
			MealType: string(e.MealType),
		}
		if err := validateInput(in); err != nil {
			return fmt.Errorf("snapshot food entry %q: %w", e.ID, err)
		}
		if e.LoggedAt.IsZero() {
			return fmt.Errorf("snapshot food entry %q: %w", e.ID, invalidf("logged-at is required"))
		}
	}
	for _, e := range snap.Workouts {
		in := WorkoutInput{
			Name:           strings.TrimSpace(e.Name),
			Category:       string(e.Category),
			DurationMin:    e.DurationMin,
			CaloriesBurned: e.CaloriesBurned,
		}
		if err := validateInput(in); err != nil {
			return fmt.Errorf("snapshot workout entry %q: %w", e.ID, err)
		}
		if e.LoggedAt.IsZero() {
			return fmt.Errorf("snapshot workout entry %q: %w", e.ID, invalidf("logged-at is required"))
		}
	}
	for _, e := range snap.Weights {
		if err := validateInput(WeightInput{Weight: e.WeightKg, Unit: "kg"}); err != nil {
			return fmt.Errorf("snapshot weight entry %q: %w", e.ID, err)
		}
		if e.MeasuredAt.IsZero() {
			return fmt.Errorf("snapshot weight entry %q: %w", e.ID, invalidf("measured-at is required"))
		}
	}
	return nil
}

func mergeByID[T any](existing, incoming []T, idOf func(T) string, report *ImportReport) []T {
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[idOf(e)] = true
	}
	out := nonNil(existing)
	for _, in := range incoming {
		id := idOf(in)
		if id == "" || seen[id] {
			report.Skipped++
			continue
		}
		seen[id] = true
		out = append(out, in)
		report.Inserted++
	}
	return out
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
