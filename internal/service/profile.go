package service

import (
	"context"
	"strings"

	"github.com/saadjs/dhyan-cli/internal/model"
	"github.com/saadjs/dhyan-cli/internal/store"
)

type ProfileInput struct {
	Name           string  `validate:"required,max=100"`
	Email          string  `validate:"omitempty,email"`
	Age            int     `validate:"gt=0,lte=150"`
	WeightKg       float64 `validate:"gt=0"`
	HeightCm       float64 `validate:"gt=0"`
	Sex            string  `validate:"omitempty,sex"`
	ActivityLevel  string  `validate:"required,activity"`
	TargetWeightKg float64 `validate:"gte=0"`
	DailyCalories  int     `validate:"gte=0"`
	WeeklyWorkouts int     `validate:"gte=0"`
}

// DefaultProfileInput mirrors the demo profile created on first start.
func DefaultProfileInput(name, email string) ProfileInput {
	if strings.TrimSpace(name) == "" {
		name = "Demo User"
	}
	return ProfileInput{
		Name:           name,
		Email:          email,
		Age:            25,
		WeightKg:       70,
		HeightCm:       170,
		Sex:            string(model.SexMale),
		ActivityLevel:  string(model.ActivityModerate),
		TargetWeightKg: 65,
		DailyCalories:  DefaultDailyCalories,
		WeeklyWorkouts: DefaultWeeklyWorkouts,
	}
}

// ProfileUpdate applies only the non-nil fields.
type ProfileUpdate struct {
	Name           *string
	Email          *string
	Age            *int
	WeightKg       *float64
	HeightCm       *float64
	Sex            *string
	ActivityLevel  *string
	TargetWeightKg *float64
	DailyCalories  *int
	WeeklyWorkouts *int
}

func (t *Tracker) Profile(ctx context.Context) (*model.UserProfile, error) {
	p, err := t.loadProfile(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNoProfile
	}
	return p, nil
}

// InitProfile stores a new profile unless one exists. With overwrite the
// existing profile is replaced. The bool reports whether a write happened.
func (t *Tracker) InitProfile(ctx context.Context, in ProfileInput, overwrite bool) (*model.UserProfile, bool, error) {
	existing, err := t.loadProfile(ctx)
	if err != nil {
		return nil, false, err
	}
	if existing != nil && !overwrite {
		return existing, false, nil
	}
	p, err := profileFromInput(in)
	if err != nil {
		return nil, false, err
	}
	p.ID = t.newID()
	p.CreatedAt = t.now()
	if err := t.save(ctx, store.KeyUser, p, 1); err != nil {
		return nil, false, err
	}
	t.log.Info("profile created", "id", p.ID)
	return &p, true, nil
}

func (t *Tracker) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*model.UserProfile, error) {
	cur, err := t.Profile(ctx)
	if err != nil {
		return nil, err
	}
	in := ProfileInput{
		Name:           cur.Name,
		Email:          cur.Email,
		Age:            cur.Age,
		WeightKg:       cur.WeightKg,
		HeightCm:       cur.HeightCm,
		Sex:            string(cur.Sex),
		ActivityLevel:  string(cur.ActivityLevel),
		TargetWeightKg: cur.Goals.TargetWeightKg,
		DailyCalories:  cur.Goals.DailyCalories,
		WeeklyWorkouts: cur.Goals.WeeklyWorkouts,
	}
	if upd.Name != nil {
		in.Name = *upd.Name
	}
	if upd.Email != nil {
		in.Email = *upd.Email
	}
	if upd.Age != nil {
		in.Age = *upd.Age
	}
	if upd.WeightKg != nil {
		in.WeightKg = *upd.WeightKg
	}
	if upd.HeightCm != nil {
		in.HeightCm = *upd.HeightCm
	}
	if upd.Sex != nil {
		in.Sex = *upd.Sex
	}
	if upd.ActivityLevel != nil {
		in.ActivityLevel = *upd.ActivityLevel
	}
	if upd.TargetWeightKg != nil {
		in.TargetWeightKg = *upd.TargetWeightKg
	}
	if upd.DailyCalories != nil {
		in.DailyCalories = *upd.DailyCalories
	}
	if upd.WeeklyWorkouts != nil {
		in.WeeklyWorkouts = *upd.WeeklyWorkouts
	}

	next, err := profileFromInput(in)
	if err != nil {
		return nil, err
	}
	next.ID = cur.ID
	next.CreatedAt = cur.CreatedAt
	if err := t.save(ctx, store.KeyUser, next, 1); err != nil {
		return nil, err
	}
	return &next, nil
}

func profileFromInput(in ProfileInput) (model.UserProfile, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateInput(in); err != nil {
		return model.UserProfile{}, err
	}
	sex := model.SexMale
	if strings.TrimSpace(in.Sex) != "" {
		sex, _ = model.ParseSex(in.Sex)
	}
	level, _ := model.ParseActivityLevel(in.ActivityLevel)
	goals := model.Goals{
		TargetWeightKg: in.TargetWeightKg,
		DailyCalories:  in.DailyCalories,
		WeeklyWorkouts: in.WeeklyWorkouts,
	}
	if goals.TargetWeightKg == 0 {
		goals.TargetWeightKg = in.WeightKg
	}
	if goals.DailyCalories == 0 {
		goals.DailyCalories = DefaultDailyCalories
	}
	if goals.WeeklyWorkouts == 0 {
		goals.WeeklyWorkouts = DefaultWeeklyWorkouts
	}
	return model.UserProfile{
		Name:          in.Name,
		Email:         in.Email,
		Age:           in.Age,
		WeightKg:      in.WeightKg,
		HeightCm:      in.HeightCm,
		Sex:           sex,
		ActivityLevel: level,
		Goals:         goals,
	}, nil
}
