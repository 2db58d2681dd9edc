package dhyan

import (
	"context"
	"fmt"

	"github.com/saadjs/dhyan-cli/internal/model"
	"github.com/saadjs/dhyan-cli/internal/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit your profile and goals",
}

var profileJSON bool

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			p, err := tr.Profile(ctx)
			if err != nil {
				return err
			}
			if profileJSON {
				return printJSON(cmd, p)
			}
			printProfile(cmd, p)
			return nil
		})
	},
}

var (
	setName           string
	setEmail          string
	setAge            int
	setWeight         float64
	setHeight         float64
	setSex            string
	setActivity       string
	setTargetWeight   float64
	setDailyCalories  int
	setWeeklyWorkouts int
	setUnit           string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields and goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		upd, err := buildProfileUpdate(cmd)
		if err != nil {
			return err
		}
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			p, err := tr.UpdateProfile(ctx, upd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Updated profile")
			printProfile(cmd, p)
			return nil
		})
	},
}

func buildProfileUpdate(cmd *cobra.Command) (service.ProfileUpdate, error) {
	var upd service.ProfileUpdate
	flags := cmd.Flags()
	if flags.Changed("name") {
		upd.Name = &setName
	}
	if flags.Changed("email") {
		upd.Email = &setEmail
	}
	if flags.Changed("age") {
		upd.Age = &setAge
	}
	if flags.Changed("weight") {
		kg, err := service.ToKg(setWeight, setUnit)
		if err != nil {
			return upd, err
		}
		upd.WeightKg = &kg
	}
	if flags.Changed("height") {
		upd.HeightCm = &setHeight
	}
	if flags.Changed("sex") {
		upd.Sex = &setSex
	}
	if flags.Changed("activity") {
		upd.ActivityLevel = &setActivity
	}
	if flags.Changed("target-weight") {
		kg, err := service.ToKg(setTargetWeight, setUnit)
		if err != nil {
			return upd, err
		}
		upd.TargetWeightKg = &kg
	}
	if flags.Changed("daily-calories") {
		upd.DailyCalories = &setDailyCalories
	}
	if flags.Changed("weekly-workouts") {
		upd.WeeklyWorkouts = &setWeeklyWorkouts
	}
	if upd == (service.ProfileUpdate{}) {
		return upd, fmt.Errorf("set at least one field (see --help)")
	}
	return upd, nil
}

func printProfile(cmd *cobra.Command, p *model.UserProfile) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name: %s\n", p.Name)
	fmt.Fprintf(out, "Email: %s\n", orDash(p.Email))
	fmt.Fprintf(out, "Age: %d\n", p.Age)
	fmt.Fprintf(out, "Sex: %s\n", p.Sex)
	fmt.Fprintf(out, "Weight: %.1f kg\n", p.WeightKg)
	fmt.Fprintf(out, "Height: %.1f cm\n", p.HeightCm)
	fmt.Fprintf(out, "Activity: %s\n", p.ActivityLevel)
	fmt.Fprintf(out, "Goals: %.1f kg | %d kcal/day | %d workouts/week\n", p.Goals.TargetWeightKg, p.Goals.DailyCalories, p.Goals.WeeklyWorkouts)
	fmt.Fprintf(out, "Created: %s\n", formatTimestamp(p.CreatedAt))
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileShowCmd, profileSetCmd)
	profileShowCmd.Flags().BoolVar(&profileJSON, "json", false, "Output as JSON")

	profileSetCmd.Flags().StringVar(&setName, "name", "", "Name")
	profileSetCmd.Flags().StringVar(&setEmail, "email", "", "Email")
	profileSetCmd.Flags().IntVar(&setAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&setWeight, "weight", 0, "Body weight (see --unit)")
	profileSetCmd.Flags().Float64Var(&setHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().StringVar(&setSex, "sex", "", "Sex used for BMR: male|female")
	profileSetCmd.Flags().StringVar(&setActivity, "activity", "", "Activity level: sedentary|light|moderate|active|very-active")
	profileSetCmd.Flags().Float64Var(&setTargetWeight, "target-weight", 0, "Target body weight (see --unit)")
	profileSetCmd.Flags().IntVar(&setDailyCalories, "daily-calories", 0, "Daily calorie goal")
	profileSetCmd.Flags().IntVar(&setWeeklyWorkouts, "weekly-workouts", 0, "Weekly workout goal")
	profileSetCmd.Flags().StringVar(&setUnit, "unit", "kg", "Unit for --weight and --target-weight: kg|lb")
}
