package service_test

import (
	"math"
	"testing"

	"github.com/saadjs/dhyan-cli/internal/model"
	"github.com/saadjs/dhyan-cli/internal/service"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeBMR(t *testing.T) {
	t.Parallel()
	if got := service.ComputeBMR(70, 170, 25, model.SexMale); !almostEqual(got, 1668.5) {
		t.Fatalf("expected male BMR 1668.5, got %v", got)
	}
	if got := service.ComputeBMR(70, 170, 25, model.SexFemale); !almostEqual(got, 1502.5) {
		t.Fatalf("expected female BMR 1502.5, got %v", got)
	}
}

func TestComputeTDEE(t *testing.T) {
	t.Parallel()
	if got := service.ComputeTDEE(1668.5, model.ActivityModerate); !almostEqual(got, 2586.175) {
		t.Fatalf("expected TDEE 2586.175, got %v", got)
	}
	factors := map[model.ActivityLevel]float64{
		model.ActivitySedentary:  1.2,
		model.ActivityLight:      1.375,
		model.ActivityModerate:   1.55,
		model.ActivityActive:     1.725,
		model.ActivityVeryActive: 1.9,
	}
	for level, factor := range factors {
		if got := service.ComputeTDEE(1000, level); !almostEqual(got, 1000*factor) {
			t.Fatalf("%s: expected %v, got %v", level, 1000*factor, got)
		}
	}
	if got := service.ComputeTDEE(1000, model.ActivityLevel("couch")); !almostEqual(got, 1200) {
		t.Fatalf("expected unknown level to fall back to sedentary, got %v", got)
	}
}

func TestComputeBMI(t *testing.T) {
	t.Parallel()
	cases := []struct{ w, h float64 }{{70, 170}, {55.5, 162}, {120, 190}}
	for _, c := range cases {
		want := c.w / math.Pow(c.h/100, 2)
		if got := service.ComputeBMI(c.w, c.h); !almostEqual(got, want) {
			t.Fatalf("bmi(%v,%v): expected %v, got %v", c.w, c.h, want, got)
		}
	}
}

func TestClassifyBMIBoundaries(t *testing.T) {
	t.Parallel()
	cases := []struct {
		bmi  float64
		want service.BMICategory
	}{
		{18.499, service.BMIUnderweight},
		{18.5, service.BMINormal},
		{24.999, service.BMINormal},
		{25.0, service.BMIOverweight},
		{29.999, service.BMIOverweight},
		{30.0, service.BMIObese},
		{42, service.BMIObese},
	}
	for _, c := range cases {
		if got := service.ClassifyBMI(c.bmi); got != c.want {
			t.Fatalf("bmi %v: expected %s, got %s", c.bmi, c.want, got)
		}
	}
}

func TestBuildHealthReport(t *testing.T) {
	t.Parallel()
	report := service.BuildHealthReport(model.UserProfile{
		Age:           25,
		WeightKg:      70,
		HeightCm:      170,
		ActivityLevel: model.ActivityModerate,
		Goals:         model.Goals{TargetWeightKg: 65},
	})
	if report.Sex != model.SexMale || !almostEqual(report.BMR, 1668.5) {
		t.Fatalf("expected male default and BMR 1668.5, got %+v", report)
	}
	if !almostEqual(report.TDEE, 2586.175) {
		t.Fatalf("expected TDEE 2586.175, got %v", report.TDEE)
	}
	if report.Category != service.BMINormal {
		t.Fatalf("expected Normal, got %s", report.Category)
	}
	if report.WeightGoalProgressPct != 100 {
		t.Fatalf("expected progress capped at 100, got %v", report.WeightGoalProgressPct)
	}

	report = service.BuildHealthReport(model.UserProfile{Age: 30, WeightKg: 60, HeightCm: 165, Goals: model.Goals{TargetWeightKg: 80}})
	if !almostEqual(report.WeightGoalProgressPct, 75) {
		t.Fatalf("expected 75%% progress, got %v", report.WeightGoalProgressPct)
	}
}
