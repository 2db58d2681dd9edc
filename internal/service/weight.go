package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/saadjs/dhyan-cli/internal/model"
	"github.com/saadjs/dhyan-cli/internal/store"
)

const kgPerLb = 0.45359237

type WeightInput struct {
	Weight     float64 `validate:"gt=0"`
	Unit       string  `validate:"omitempty,oneof=kg lb lbs"`
	MeasuredAt time.Time
}

func (t *Tracker) AddWeight(ctx context.Context, in WeightInput) (model.WeightEntry, error) {
	in.Unit = strings.ToLower(strings.TrimSpace(in.Unit))
	if err := validateInput(in); err != nil {
		return model.WeightEntry{}, err
	}
	kg, err := ToKg(in.Weight, in.Unit)
	if err != nil {
		return model.WeightEntry{}, err
	}
	items, err := t.loadWeights(ctx)
	if err != nil {
		return model.WeightEntry{}, err
	}
	entry := model.WeightEntry{
		ID:         t.newID(),
		WeightKg:   kg,
		MeasuredAt: t.timestampOrNow(in.MeasuredAt),
	}
	items = append(items, entry)
	if err := t.save(ctx, store.KeyWeightEntries, items, len(items)); err != nil {
		return model.WeightEntry{}, err
	}
	return entry, nil
}

func (t *Tracker) ListWeights(ctx context.Context, f EntryFilter) ([]model.WeightEntry, error) {
	items, err := t.loadWeights(ctx)
	if err != nil {
		return nil, err
	}
	return filterEntries(items, f, t.now().Location(), func(e model.WeightEntry) time.Time { return e.MeasuredAt })
}

func (t *Tracker) DeleteWeight(ctx context.Context, id string) error {
	items, err := t.loadWeights(ctx)
	if err != nil {
		return err
	}
	next, ok := removeByID(items, strings.TrimSpace(id), func(e model.WeightEntry) string { return e.ID })
	if !ok {
		return notFound("weight entry", id)
	}
	return t.save(ctx, store.KeyWeightEntries, next, len(next))
}

func ToKg(value float64, unit string) (float64, error) {
	if value <= 0 {
		return 0, invalidf("weight must be > 0")
	}
	switch normalizeWeightUnit(unit) {
	case "kg":
		return value, nil
	case "lb":
		return value * kgPerLb, nil
	default:
		return 0, invalidf("weight unit %q (use kg or lb)", unit)
	}
}

func FromKg(weightKg float64, unit string) (float64, error) {
	switch normalizeWeightUnit(unit) {
	case "kg":
		return weightKg, nil
	case "lb":
		return weightKg / kgPerLb, nil
	default:
		return 0, fmt.Errorf("invalid weight unit %q (use kg or lb)", unit)
	}
}

func normalizeWeightUnit(unit string) string {
	switch u := strings.ToLower(strings.TrimSpace(unit)); u {
	case "", "kg":
		return "kg"
	case "lb", "lbs":
		return "lb"
	default:
		return u
	}
}
