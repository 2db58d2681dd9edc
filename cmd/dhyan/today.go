package dhyan

import (
	"context"
	"fmt"

	"github.com/saadjs/dhyan-cli/internal/service"
	"github.com/spf13/cobra"
)

var todayJSON bool

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, workouts, goal progress, and advisories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			report, err := tr.Dashboard(ctx)
			if err != nil {
				return err
			}
			if todayJSON {
				return printJSON(cmd, report)
			}
			printDashboard(cmd, report)
			return nil
		})
	},
}

func printDashboard(cmd *cobra.Command, r *service.DashboardReport) {
	out := cmd.OutOrStdout()
	d := r.Today
	fmt.Fprintf(out, "Date: %s\n", r.Date)
	fmt.Fprintf(out, "Consumed: %d / %d kcal %s %.0f%%\n", r.Calories.Value, r.Calories.Goal, percentBar(r.Calories.Percent, 20), r.Calories.Percent)
	fmt.Fprintf(out, "Burned: %d kcal (%d workouts, %d min)\n", d.CaloriesBurned, d.WorkoutCount, d.TotalDuration)
	status := "within goal"
	if r.OverGoal {
		status = "over goal"
	}
	fmt.Fprintf(out, "Net: %d kcal (%s)\n", d.NetCalories, status)
	fmt.Fprintf(out, "Macros: P %.1fg | C %.1fg | F %.1fg | Fiber %.1fg\n", d.Protein, d.Carbs, d.Fat, d.Fiber)
	fmt.Fprintf(out, "Meals: breakfast %d | lunch %d | dinner %d | snack %d\n", d.Meals.Breakfast, d.Meals.Lunch, d.Meals.Dinner, d.Meals.Snack)
	fmt.Fprintf(out, "Weekly workouts: %d / %d %s %.0f%%\n", r.WeeklyWorkouts.Value, r.WeeklyWorkouts.Goal, percentBar(r.WeeklyWorkouts.Percent, 20), r.WeeklyWorkouts.Percent)

	if len(r.Advisories) > 0 {
		fmt.Fprintln(out, "\nAdvisories")
		for _, a := range r.Advisories {
			fmt.Fprintf(out, "- [%s] %s\n", a.Category, a.Message)
		}
	}
	if len(r.RecentFood) > 0 {
		fmt.Fprintln(out, "\nRecent food")
		for _, f := range r.RecentFood {
			fmt.Fprintf(out, "%s\t%s\t%s\t%d kcal\n", formatTimestamp(f.LoggedAt), orDash(string(f.MealType)), f.Name, f.Calories)
		}
	}
	if len(r.RecentWorkouts) > 0 {
		fmt.Fprintln(out, "\nRecent workouts")
		for _, w := range r.RecentWorkouts {
			fmt.Fprintf(out, "%s\t%s\t%d min\t%d kcal\n", formatTimestamp(w.LoggedAt), w.Name, w.DurationMin, w.CaloriesBurned)
		}
	}
	if len(r.Suggestions) > 0 {
		fmt.Fprintf(out, "\nIdeas for %s:", r.SuggestedMeal)
		for i, f := range r.Suggestions {
			sep := ","
			if i == 0 {
				sep = ""
			}
			fmt.Fprintf(out, "%s %s", sep, f.Name)
		}
		fmt.Fprintln(out)
	}
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Output as JSON")
}
