package catalog

import (
	"strings"

	"github.com/saadjs/dhyan-cli/internal/model"
)

type Exercise struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	Category          model.WorkoutCategory `json:"category"`
	CaloriesPerMinute float64               `json:"calories_per_minute"`
	Description       string                `json:"description"`
	MuscleGroups      []string              `json:"muscle_groups,omitempty"`
}

var exercises = []Exercise{
	{ID: "1", Name: "Running", Category: model.WorkoutCardio, CaloriesPerMinute: 12, Description: "Outdoor or treadmill running"},
	{ID: "2", Name: "Cycling", Category: model.WorkoutCardio, CaloriesPerMinute: 8, Description: "Stationary or outdoor cycling"},
	{ID: "3", Name: "Swimming", Category: model.WorkoutCardio, CaloriesPerMinute: 11, Description: "Freestyle swimming"},
	{ID: "4", Name: "Jump Rope", Category: model.WorkoutCardio, CaloriesPerMinute: 13, Description: "High-intensity jump rope"},
	{ID: "5", Name: "Elliptical", Category: model.WorkoutCardio, CaloriesPerMinute: 9, Description: "Elliptical machine workout"},

	{ID: "6", Name: "Push-ups", Category: model.WorkoutStrength, CaloriesPerMinute: 7, Description: "Bodyweight push-ups", MuscleGroups: []string{"Chest", "Triceps", "Shoulders"}},
	{ID: "7", Name: "Squats", Category: model.WorkoutStrength, CaloriesPerMinute: 8, Description: "Bodyweight or weighted squats", MuscleGroups: []string{"Quadriceps", "Glutes", "Hamstrings"}},
	{ID: "8", Name: "Deadlifts", Category: model.WorkoutStrength, CaloriesPerMinute: 6, Description: "Barbell or dumbbell deadlifts", MuscleGroups: []string{"Hamstrings", "Glutes", "Back"}},
	{ID: "9", Name: "Bench Press", Category: model.WorkoutStrength, CaloriesPerMinute: 6, Description: "Barbell or dumbbell bench press", MuscleGroups: []string{"Chest", "Triceps", "Shoulders"}},
	{ID: "10", Name: "Pull-ups", Category: model.WorkoutStrength, CaloriesPerMinute: 8, Description: "Bodyweight pull-ups", MuscleGroups: []string{"Back", "Biceps"}},

	{ID: "11", Name: "Yoga", Category: model.WorkoutFlexibility, CaloriesPerMinute: 3, Description: "Hatha or vinyasa yoga"},
	{ID: "12", Name: "Stretching", Category: model.WorkoutFlexibility, CaloriesPerMinute: 2, Description: "Static stretching routine"},
	{ID: "13", Name: "Pilates", Category: model.WorkoutFlexibility, CaloriesPerMinute: 4, Description: "Core-focused pilates workout"},

	{ID: "14", Name: "Basketball", Category: model.WorkoutSports, CaloriesPerMinute: 10, Description: "Recreational basketball"},
	{ID: "15", Name: "Tennis", Category: model.WorkoutSports, CaloriesPerMinute: 9, Description: "Singles or doubles tennis"},
	{ID: "16", Name: "Soccer", Category: model.WorkoutSports, CaloriesPerMinute: 11, Description: "Recreational soccer"},
}

func Exercises() []Exercise {
	out := make([]Exercise, len(exercises))
	copy(out, exercises)
	return out
}

// SearchExercises filters by case-insensitive name substring and, when
// category is non-empty, by category.
func SearchExercises(query string, category model.WorkoutCategory) []Exercise {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Exercise, 0)
	for _, e := range exercises {
		if category != "" && e.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(e.Name), q) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func ExerciseByName(name string) (Exercise, bool) {
	n := strings.TrimSpace(name)
	for _, e := range exercises {
		if strings.EqualFold(e.Name, n) {
			return e, true
		}
	}
	return Exercise{}, false
}
