// Package catalog holds the read-only reference tables used when logging
// food and workouts.
package catalog

import (
	"strings"

	"github.com/saadjs/dhyan-cli/internal/model"
)

// Food nutrition values are per single serving.
type Food struct {
	Name     string             `json:"name"`
	Category model.FoodCategory `json:"category"`
	Calories int                `json:"calories"`
	ProteinG float64            `json:"protein_g"`
	CarbsG   float64            `json:"carbs_g"`
	FatG     float64            `json:"fat_g"`
	FiberG   float64            `json:"fiber_g"`
	Serving  string             `json:"serving"`
}

var foods = []Food{
	{Name: "Chicken Breast", Category: model.FoodProtein, Calories: 165, ProteinG: 31, CarbsG: 0, FatG: 3.6, FiberG: 0, Serving: "100g"},
	{Name: "Eggs", Category: model.FoodProtein, Calories: 155, ProteinG: 13, CarbsG: 1.1, FatG: 11, FiberG: 0, Serving: "2 large"},
	{Name: "Salmon", Category: model.FoodProtein, Calories: 208, ProteinG: 20, CarbsG: 0, FatG: 13, FiberG: 0, Serving: "100g"},
	{Name: "Lentils", Category: model.FoodProtein, Calories: 116, ProteinG: 9, CarbsG: 20, FatG: 0.4, FiberG: 7.9, Serving: "100g cooked"},
	{Name: "Tofu", Category: model.FoodProtein, Calories: 76, ProteinG: 8, CarbsG: 1.9, FatG: 4.8, FiberG: 0.3, Serving: "100g"},
	{Name: "Brown Rice", Category: model.FoodCarbs, Calories: 216, ProteinG: 5, CarbsG: 45, FatG: 1.8, FiberG: 3.5, Serving: "1 cup cooked"},
	{Name: "Oatmeal", Category: model.FoodCarbs, Calories: 150, ProteinG: 5, CarbsG: 27, FatG: 3, FiberG: 4, Serving: "1 cup cooked"},
	{Name: "Whole Wheat Bread", Category: model.FoodCarbs, Calories: 80, ProteinG: 4, CarbsG: 14, FatG: 1, FiberG: 2, Serving: "1 slice"},
	{Name: "Sweet Potato", Category: model.FoodCarbs, Calories: 112, ProteinG: 2, CarbsG: 26, FatG: 0.1, FiberG: 3.9, Serving: "1 medium"},
	{Name: "Broccoli", Category: model.FoodVegetables, Calories: 55, ProteinG: 3.7, CarbsG: 11, FatG: 0.6, FiberG: 5.1, Serving: "1 cup"},
	{Name: "Spinach", Category: model.FoodVegetables, Calories: 7, ProteinG: 0.9, CarbsG: 1.1, FatG: 0.1, FiberG: 0.7, Serving: "1 cup raw"},
	{Name: "Carrots", Category: model.FoodVegetables, Calories: 52, ProteinG: 1.2, CarbsG: 12, FatG: 0.3, FiberG: 3.6, Serving: "1 cup chopped"},
	{Name: "Banana", Category: model.FoodFruits, Calories: 105, ProteinG: 1.3, CarbsG: 27, FatG: 0.4, FiberG: 3.1, Serving: "1 medium"},
	{Name: "Apple", Category: model.FoodFruits, Calories: 95, ProteinG: 0.5, CarbsG: 25, FatG: 0.3, FiberG: 4.4, Serving: "1 medium"},
	{Name: "Blueberries", Category: model.FoodFruits, Calories: 84, ProteinG: 1.1, CarbsG: 21, FatG: 0.5, FiberG: 3.6, Serving: "1 cup"},
	{Name: "Almonds", Category: model.FoodNuts, Calories: 164, ProteinG: 6, CarbsG: 6, FatG: 14, FiberG: 3.5, Serving: "1 oz"},
	{Name: "Walnuts", Category: model.FoodNuts, Calories: 185, ProteinG: 4.3, CarbsG: 3.9, FatG: 18.5, FiberG: 1.9, Serving: "1 oz"},
	{Name: "Peanut Butter", Category: model.FoodNuts, Calories: 188, ProteinG: 8, CarbsG: 6, FatG: 16, FiberG: 1.9, Serving: "2 tbsp"},
	{Name: "Greek Yogurt", Category: model.FoodDairy, Calories: 100, ProteinG: 17, CarbsG: 6, FatG: 0.7, FiberG: 0, Serving: "170g"},
	{Name: "Milk", Category: model.FoodDairy, Calories: 103, ProteinG: 8, CarbsG: 12, FatG: 2.4, FiberG: 0, Serving: "1 cup"},
	{Name: "Cheddar Cheese", Category: model.FoodDairy, Calories: 113, ProteinG: 7, CarbsG: 0.4, FatG: 9.3, FiberG: 0, Serving: "1 oz"},
}

// Foods returns a copy of the food table in catalog order.
func Foods() []Food {
	out := make([]Food, len(foods))
	copy(out, foods)
	return out
}

// SearchFoods matches query case-insensitively against food names. An empty
// query returns the whole table.
func SearchFoods(query string) []Food {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Food, 0)
	for _, f := range foods {
		if q == "" || strings.Contains(strings.ToLower(f.Name), q) {
			out = append(out, f)
		}
	}
	return out
}

func FoodByName(name string) (Food, bool) {
	n := strings.TrimSpace(name)
	for _, f := range foods {
		if strings.EqualFold(f.Name, n) {
			return f, true
		}
	}
	return Food{}, false
}

func FoodsByCategory(category model.FoodCategory) []Food {
	out := make([]Food, 0)
	for _, f := range foods {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}
