package model

import "time"

type Goals struct {
	TargetWeightKg float64 `json:"target_weight_kg"`
	DailyCalories  int     `json:"daily_calories"`
	WeeklyWorkouts int     `json:"weekly_workouts"`
}

type UserProfile struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Age           int           `json:"age"`
	WeightKg      float64       `json:"weight_kg"`
	HeightCm      float64       `json:"height_cm"`
	Sex           Sex           `json:"sex"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goals         Goals         `json:"goals"`
	CreatedAt     time.Time     `json:"created_at"`
}

type FoodEntry struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	ProteinG float64   `json:"protein_g"`
	CarbsG   float64   `json:"carbs_g"`
	FatG     float64   `json:"fat_g"`
	FiberG   float64   `json:"fiber_g"`
	Serving  string    `json:"serving"`
	LoggedAt time.Time `json:"logged_at"`
	MealType MealType  `json:"meal_type,omitempty"`
}

type WorkoutEntry struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       WorkoutCategory `json:"category"`
	DurationMin    int             `json:"duration_min"`
	CaloriesBurned int             `json:"calories_burned"`
	LoggedAt       time.Time       `json:"logged_at"`
}

type WeightEntry struct {
	ID         string    `json:"id"`
	WeightKg   float64   `json:"weight_kg"`
	MeasuredAt time.Time `json:"measured_at"`
}
