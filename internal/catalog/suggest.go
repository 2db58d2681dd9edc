package catalog

import "github.com/saadjs/dhyan-cli/internal/model"

const maxSuggestions = 6

// MealForHour maps a local hour of day to the meal usually eaten then.
func MealForHour(hour int) model.MealType {
	switch {
	case hour < 10:
		return model.MealBreakfast
	case hour < 14:
		return model.MealLunch
	case hour < 18:
		return model.MealDinner
	default:
		return model.MealSnack
	}
}

func suggestedCategories(meal model.MealType) []model.FoodCategory {
	switch meal {
	case model.MealBreakfast:
		return []model.FoodCategory{model.FoodProtein, model.FoodFruits, model.FoodCarbs}
	case model.MealLunch:
		return []model.FoodCategory{model.FoodProtein, model.FoodVegetables, model.FoodCarbs}
	case model.MealDinner:
		return []model.FoodCategory{model.FoodProtein, model.FoodVegetables}
	case model.MealSnack:
		return []model.FoodCategory{model.FoodFruits, model.FoodNuts}
	default:
		return nil
	}
}

// SuggestFoods returns up to six catalog foods whose category suits meal,
// in catalog order.
func SuggestFoods(meal model.MealType) []Food {
	allowed := make(map[model.FoodCategory]bool)
	for _, c := range suggestedCategories(meal) {
		allowed[c] = true
	}
	out := make([]Food, 0, maxSuggestions)
	for _, f := range foods {
		if !allowed[f.Category] {
			continue
		}
		out = append(out, f)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
