package model

import (
	"fmt"
	"strings"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func ParseSex(value string) (Sex, error) {
	switch s := Sex(normalize(value)); s {
	case SexMale, SexFemale:
		return s, nil
	default:
		return "", fmt.Errorf("invalid sex %q (use male or female)", value)
	}
}

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very-active"
)

var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

func ParseActivityLevel(value string) (ActivityLevel, error) {
	v := strings.ReplaceAll(normalize(value), "_", "-")
	switch l := ActivityLevel(v); l {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return l, nil
	default:
		return "", fmt.Errorf("invalid activity level %q (use sedentary, light, moderate, active, very-active)", value)
	}
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// ParseMealType accepts an empty value as "untagged".
func ParseMealType(value string) (MealType, error) {
	v := normalize(value)
	if v == "" {
		return "", nil
	}
	if v == "snacks" {
		v = string(MealSnack)
	}
	switch m := MealType(v); m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return m, nil
	default:
		return "", fmt.Errorf("invalid meal type %q (use breakfast, lunch, dinner, snack)", value)
	}
}

type WorkoutCategory string

const (
	WorkoutCardio      WorkoutCategory = "cardio"
	WorkoutStrength    WorkoutCategory = "strength"
	WorkoutFlexibility WorkoutCategory = "flexibility"
	WorkoutSports      WorkoutCategory = "sports"
)

var WorkoutCategories = []WorkoutCategory{WorkoutCardio, WorkoutStrength, WorkoutFlexibility, WorkoutSports}

func ParseWorkoutCategory(value string) (WorkoutCategory, error) {
	switch c := WorkoutCategory(normalize(value)); c {
	case WorkoutCardio, WorkoutStrength, WorkoutFlexibility, WorkoutSports:
		return c, nil
	default:
		return "", fmt.Errorf("invalid workout category %q (use cardio, strength, flexibility, sports)", value)
	}
}

type FoodCategory string

const (
	FoodProtein    FoodCategory = "protein"
	FoodCarbs      FoodCategory = "carbs"
	FoodVegetables FoodCategory = "vegetables"
	FoodFruits     FoodCategory = "fruits"
	FoodNuts       FoodCategory = "nuts"
	FoodDairy      FoodCategory = "dairy"
)

func ParseFoodCategory(value string) (FoodCategory, error) {
	switch c := FoodCategory(normalize(value)); c {
	case FoodProtein, FoodCarbs, FoodVegetables, FoodFruits, FoodNuts, FoodDairy:
		return c, nil
	default:
		return "", fmt.Errorf("invalid food category %q", value)
	}
}

func normalize(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
