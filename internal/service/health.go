package service

import "github.com/saadjs/dhyan-cli/internal/model"

type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// ComputeBMR estimates basal metabolic rate in kcal/day using the
// Mifflin-St Jeor equation.
func ComputeBMR(weightKg, heightCm float64, age int, sex model.Sex) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == model.SexFemale {
		return base - 161
	}
	return base + 5
}

func activityFactor(level model.ActivityLevel) float64 {
	switch level {
	case model.ActivitySedentary:
		return 1.2
	case model.ActivityLight:
		return 1.375
	case model.ActivityModerate:
		return 1.55
	case model.ActivityActive:
		return 1.725
	case model.ActivityVeryActive:
		return 1.9
	default:
		return 1.2
	}
}

// ComputeTDEE scales bmr by the activity factor. Unknown levels are treated
// as sedentary.
func ComputeTDEE(bmr float64, level model.ActivityLevel) float64 {
	return bmr * activityFactor(level)
}

func ComputeBMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return weightKg / (m * m)
}

// ClassifyBMI bands are closed on their lower bound: 18.5 is Normal.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

type HealthReport struct {
	BMR                   float64             `json:"bmr"`
	TDEE                  float64             `json:"tdee"`
	BMI                   float64             `json:"bmi"`
	Category              BMICategory         `json:"bmi_category"`
	WeightKg              float64             `json:"weight_kg"`
	HeightCm              float64             `json:"height_cm"`
	Age                   int                 `json:"age"`
	Sex                   model.Sex           `json:"sex"`
	ActivityLevel         model.ActivityLevel `json:"activity_level"`
	TargetWeightKg        float64             `json:"target_weight_kg"`
	WeightGoalProgressPct float64             `json:"weight_goal_progress_pct"`
}

func BuildHealthReport(p model.UserProfile) HealthReport {
	sex := p.Sex
	if sex == "" {
		sex = model.SexMale
	}
	bmr := ComputeBMR(p.WeightKg, p.HeightCm, p.Age, sex)
	bmi := ComputeBMI(p.WeightKg, p.HeightCm)
	target := p.Goals.TargetWeightKg
	if target <= 0 {
		target = p.WeightKg
	}
	return HealthReport{
		BMR:                   bmr,
		TDEE:                  ComputeTDEE(bmr, p.ActivityLevel),
		BMI:                   bmi,
		Category:              ClassifyBMI(bmi),
		WeightKg:              p.WeightKg,
		HeightCm:              p.HeightCm,
		Age:                   p.Age,
		Sex:                   sex,
		ActivityLevel:         p.ActivityLevel,
		TargetWeightKg:        target,
		WeightGoalProgressPct: cappedPercent(p.WeightKg, target),
	}
}

// cappedPercent returns value/goal as a percentage clamped to [0, 100], or 0
// when there is no goal.
func cappedPercent(value, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	pct := value / goal * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
