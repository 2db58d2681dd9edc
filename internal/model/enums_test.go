package model

import "testing"

func TestParseActivityLevelAcceptsUnderscoreAndCase(t *testing.T) {
	t.Parallel()
	got, err := ParseActivityLevel(" Very_Active ")
	if err != nil {
		t.Fatalf("parse activity level: %v", err)
	}
	if got != ActivityVeryActive {
		t.Fatalf("expected %q, got %q", ActivityVeryActive, got)
	}
	if _, err := ParseActivityLevel("couch"); err == nil {
		t.Fatalf("expected unknown activity level to fail")
	}
}

func TestParseMealTypeEmptyIsUntagged(t *testing.T) {
	t.Parallel()
	got, err := ParseMealType("")
	if err != nil {
		t.Fatalf("parse empty meal type: %v", err)
	}
	if got != "" {
		t.Fatalf("expected untagged meal type, got %q", got)
	}
	got, err = ParseMealType("Snacks")
	if err != nil || got != MealSnack {
		t.Fatalf("expected snacks to map to snack, got %q err=%v", got, err)
	}
	if _, err := ParseMealType("brunch"); err == nil {
		t.Fatalf("expected unknown meal type to fail")
	}
}

func TestParseWorkoutCategoryAndSex(t *testing.T) {
	t.Parallel()
	for _, c := range WorkoutCategories {
		got, err := ParseWorkoutCategory(string(c))
		if err != nil || got != c {
			t.Fatalf("expected %q to round-trip, got %q err=%v", c, got, err)
		}
	}
	if _, err := ParseWorkoutCategory("dance"); err == nil {
		t.Fatalf("expected unknown workout category to fail")
	}
	if s, err := ParseSex("FEMALE"); err != nil || s != SexFemale {
		t.Fatalf("expected female, got %q err=%v", s, err)
	}
	if _, err := ParseFoodCategory("candy"); err == nil {
		t.Fatalf("expected unknown food category to fail")
	}
}
