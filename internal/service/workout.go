package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/saadjs/dhyan-cli/internal/catalog"
	"github.com/saadjs/dhyan-cli/internal/model"
	"github.com/saadjs/dhyan-cli/internal/store"
)

type WorkoutInput struct {
	Name           string `validate:"required,max=200"`
	Category       string `validate:"required,workoutcat"`
	DurationMin    int    `validate:"gt=0"`
	CaloriesBurned int    `validate:"gte=0"`
	LoggedAt       time.Time
}

type CatalogWorkoutInput struct {
	Name        string `validate:"required"`
	DurationMin int    `validate:"gt=0"`
	LoggedAt    time.Time
}

// WorkoutFromCatalog derives calories burned as rate x minutes, rounded.
func WorkoutFromCatalog(e catalog.Exercise, minutes int) WorkoutInput {
	return WorkoutInput{
		Name:           e.Name,
		Category:       string(e.Category),
		DurationMin:    minutes,
		CaloriesBurned: int(math.Round(e.CaloriesPerMinute * float64(minutes))),
	}
}

func (t *Tracker) AddWorkout(ctx context.Context, in WorkoutInput) (model.WorkoutEntry, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateInput(in); err != nil {
		return model.WorkoutEntry{}, err
	}
	category, _ := model.ParseWorkoutCategory(in.Category)

	items, err := t.loadWorkouts(ctx)
	if err != nil {
		return model.WorkoutEntry{}, err
	}
	entry := model.WorkoutEntry{
		ID:             t.newID(),
		Name:           in.Name,
		Category:       category,
		DurationMin:    in.DurationMin,
		CaloriesBurned: in.CaloriesBurned,
		LoggedAt:       t.timestampOrNow(in.LoggedAt),
	}
	items = append(items, entry)
	if err := t.save(ctx, store.KeyWorkoutEntries, items, len(items)); err != nil {
		return model.WorkoutEntry{}, err
	}
	return entry, nil
}

func (t *Tracker) AddCatalogWorkout(ctx context.Context, in CatalogWorkoutInput) (model.WorkoutEntry, error) {
	if err := validateInput(in); err != nil {
		return model.WorkoutEntry{}, err
	}
	ex, ok := catalog.ExerciseByName(in.Name)
	if !ok {
		return model.WorkoutEntry{}, notFound("exercise", in.Name)
	}
	w := WorkoutFromCatalog(ex, in.DurationMin)
	w.LoggedAt = in.LoggedAt
	return t.AddWorkout(ctx, w)
}

func (t *Tracker) ListWorkouts(ctx context.Context, f EntryFilter) ([]model.WorkoutEntry, error) {
	items, err := t.loadWorkouts(ctx)
	if err != nil {
		return nil, err
	}
	return filterEntries(items, f, t.now().Location(), func(e model.WorkoutEntry) time.Time { return e.LoggedAt })
}

func (t *Tracker) DeleteWorkout(ctx context.Context, id string) error {
	items, err := t.loadWorkouts(ctx)
	if err != nil {
		return err
	}
	next, ok := removeByID(items, strings.TrimSpace(id), func(e model.WorkoutEntry) string { return e.ID })
	if !ok {
		return notFound("workout entry", id)
	}
	return t.save(ctx, store.KeyWorkoutEntries, next, len(next))
}
