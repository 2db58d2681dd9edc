package dhyan

import (
	"context"
	"fmt"
	"strings"

	"github.com/saadjs/dhyan-cli/internal/model"
	"github.com/saadjs/dhyan-cli/internal/service"
	"github.com/spf13/cobra"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log and review workouts",
}

var (
	workoutName     string
	workoutCategory string
	workoutMinutes  int
	workoutCalories int
	workoutExercise string
	workoutDate     string
	workoutTime     string
)

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a workout (manual values or --exercise from the catalog)",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseDateTimeOrZero(workoutDate, workoutTime)
		if err != nil {
			return err
		}
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			var entry model.WorkoutEntry
			if strings.TrimSpace(workoutExercise) != "" {
				entry, err = tr.AddCatalogWorkout(ctx, service.CatalogWorkoutInput{
					Name:        workoutExercise,
					DurationMin: workoutMinutes,
					LoggedAt:    at,
				})
			} else {
				entry, err = tr.AddWorkout(ctx, service.WorkoutInput{
					Name:           workoutName,
					Category:       workoutCategory,
					DurationMin:    workoutMinutes,
					CaloriesBurned: workoutCalories,
					LoggedAt:       at,
				})
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added workout %s (%s, %d min, %d kcal)\n", entry.ID, entry.Name, entry.DurationMin, entry.CaloriesBurned)
			return nil
		})
	},
}

var (
	workoutListDate  string
	workoutListLimit int
	workoutListJSON  bool
)

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			items, err := tr.ListWorkouts(ctx, service.EntryFilter{Date: workoutListDate, Limit: workoutListLimit})
			if err != nil {
				return err
			}
			if workoutListJSON {
				return printJSON(cmd, items)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tCATEGORY\tNAME\tMIN\tKCAL")
			for _, e := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d\t%d\n", e.ID, formatTimestamp(e.LoggedAt), e.Category, e.Name, e.DurationMin, e.CaloriesBurned)
			}
			return nil
		})
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			if err := tr.DeleteWorkout(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted workout %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutAddCmd, workoutListCmd, workoutDeleteCmd)

	workoutAddCmd.Flags().StringVar(&workoutName, "name", "", "Workout name")
	workoutAddCmd.Flags().StringVar(&workoutCategory, "category", "", "Category: cardio|strength|flexibility|sports")
	workoutAddCmd.Flags().IntVar(&workoutMinutes, "minutes", 0, "Duration in minutes")
	workoutAddCmd.Flags().IntVar(&workoutCalories, "calories", 0, "Calories burned (manual entries)")
	workoutAddCmd.Flags().StringVar(&workoutExercise, "exercise", "", "Catalog exercise name; calories = rate x minutes")
	workoutAddCmd.Flags().StringVar(&workoutDate, "date", "", "Date YYYY-MM-DD (default now)")
	workoutAddCmd.Flags().StringVar(&workoutTime, "time", "", "Time HH:MM (requires --date)")

	workoutListCmd.Flags().StringVar(&workoutListDate, "date", "", "Only workouts on YYYY-MM-DD")
	workoutListCmd.Flags().IntVar(&workoutListLimit, "limit", 50, "Max rows (0 for all)")
	workoutListCmd.Flags().BoolVar(&workoutListJSON, "json", false, "Output as JSON")
}
