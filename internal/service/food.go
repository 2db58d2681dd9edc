package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/saadjs/dhyan-cli/internal/catalog"
	"github.com/saadjs/dhyan-cli/internal/model"
	"github.com/saadjs/dhyan-cli/internal/store"
	"github.com/shopspring/decimal"
)

type FoodInput struct {
	Name     string  `validate:"required,max=200"`
	Calories int     `validate:"gte=0"`
	ProteinG float64 `validate:"gte=0"`
	CarbsG   float64 `validate:"gte=0"`
	FatG     float64 `validate:"gte=0"`
	FiberG   float64 `validate:"gte=0"`
	Serving  string  `validate:"max=100"`
	MealType string  `validate:"mealtype"`
	LoggedAt time.Time
}

type CatalogFoodInput struct {
	Name     string  `validate:"required"`
	Servings float64 `validate:"gt=0"`
	MealType string  `validate:"mealtype"`
	LoggedAt time.Time
}

// FoodFromCatalog scales a catalog item. Calories round to the nearest
// integer and macros to one decimal place.
func FoodFromCatalog(f catalog.Food, servings float64) FoodInput {
	scale := func(v float64) float64 {
		return round1(decimal.NewFromFloat(v).Mul(decimal.NewFromFloat(servings)))
	}
	return FoodInput{
		Name:     f.Name,
		Calories: int(math.Round(float64(f.Calories) * servings)),
		ProteinG: scale(f.ProteinG),
		CarbsG:   scale(f.CarbsG),
		FatG:     scale(f.FatG),
		FiberG:   scale(f.FiberG),
		Serving:  strconv.FormatFloat(servings, 'f', -1, 64) + " " + f.Serving,
	}
}

func (t *Tracker) AddFood(ctx context.Context, in FoodInput) (model.FoodEntry, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Serving = strings.TrimSpace(in.Serving)
	if err := validateInput(in); err != nil {
		return model.FoodEntry{}, err
	}
	meal, _ := model.ParseMealType(in.MealType)

	items, err := t.loadFood(ctx)
	if err != nil {
		return model.FoodEntry{}, err
	}
	entry := model.FoodEntry{
		ID:       t.newID(),
		Name:     in.Name,
		Calories: in.Calories,
		ProteinG: in.ProteinG,
		CarbsG:   in.CarbsG,
		FatG:     in.FatG,
		FiberG:   in.FiberG,
		Serving:  in.Serving,
		LoggedAt: t.timestampOrNow(in.LoggedAt),
		MealType: meal,
	}
	items = append(items, entry)
	if err := t.save(ctx, store.KeyFoodEntries, items, len(items)); err != nil {
		return model.FoodEntry{}, err
	}
	return entry, nil
}

func (t *Tracker) AddCatalogFood(ctx context.Context, in CatalogFoodInput) (model.FoodEntry, error) {
	if err := validateInput(in); err != nil {
		return model.FoodEntry{}, err
	}
	item, ok := catalog.FoodByName(in.Name)
	if !ok {
		return model.FoodEntry{}, notFound("catalog food", in.Name)
	}
	food := FoodFromCatalog(item, in.Servings)
	food.MealType = in.MealType
	food.LoggedAt = in.LoggedAt
	return t.AddFood(ctx, food)
}

func (t *Tracker) ListFood(ctx context.Context, f EntryFilter) ([]model.FoodEntry, error) {
	items, err := t.loadFood(ctx)
	if err != nil {
		return nil, err
	}
	return filterEntries(items, f, t.now().Location(), func(e model.FoodEntry) time.Time { return e.LoggedAt })
}

func (t *Tracker) DeleteFood(ctx context.Context, id string) error {
	items, err := t.loadFood(ctx)
	if err != nil {
		return err
	}
	next, ok := removeByID(items, strings.TrimSpace(id), func(e model.FoodEntry) string { return e.ID })
	if !ok {
		return notFound("food entry", id)
	}
	return t.save(ctx, store.KeyFoodEntries, next, len(next))
}
