package service

type AdvisoryCategory string

const (
	AdvisoryEnergy    AdvisoryCategory = "energy"
	AdvisoryProtein   AdvisoryCategory = "protein"
	AdvisoryBreakfast AdvisoryCategory = "breakfast"
)

const (
	lowCalorieThreshold  = 800
	lowProteinThresholdG = 30
	breakfastCutoffHour  = 9
)

type Advisory struct {
	Category AdvisoryCategory `json:"category"`
	Message  string           `json:"message"`
}

// GenerateInsights evaluates the advisory rules in a fixed order. Every rule
// that matches fires; none suppresses another.
func GenerateInsights(day DayAggregate, hour, breakfastCount int) []Advisory {
	out := make([]Advisory, 0, 3)
	if day.CaloriesConsumed < lowCalorieThreshold {
		out = append(out, Advisory{
			Category: AdvisoryEnergy,
			Message:  "Your calorie intake is low today. Consider adding nutrient-dense foods.",
		})
	}
	if day.Protein < lowProteinThresholdG {
		out = append(out, Advisory{
			Category: AdvisoryProtein,
			Message:  "Boost your protein intake with lean meats, eggs, or legumes.",
		})
	}
	if breakfastCount == 0 && hour > breakfastCutoffHour {
		out = append(out, Advisory{
			Category: AdvisoryBreakfast,
			Message:  "Don't skip breakfast! It kickstarts your metabolism.",
		})
	}
	return out
}
