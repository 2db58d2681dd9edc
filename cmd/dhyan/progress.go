package dhyan

import (
	"context"
	"fmt"
	"strings"

	"github.com/saadjs/dhyan-cli/internal/service"
	"github.com/spf13/cobra"
)

const maxProgressDays = 366

var (
	progressPeriod   string
	progressDays     int
	progressJSON     bool
	progressNoCharts bool
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show calorie, workout, and weight progress over a trailing window",
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := resolveProgressWindow(progressPeriod, progressDays, cmd.Flags().Changed("days"))
		if err != nil {
			return err
		}
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			report, err := tr.Progress(ctx, window)
			if err != nil {
				return err
			}
			if progressJSON {
				return printJSON(cmd, report)
			}
			printProgress(cmd, report, progressNoCharts)
			return nil
		})
	},
}

func resolveProgressWindow(period string, days int, daysSet bool) (int, error) {
	if daysSet {
		if days <= 0 || days > maxProgressDays {
			return 0, fmt.Errorf("--days must be between 1 and %d", maxProgressDays)
		}
		return days, nil
	}
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "", "week":
		return service.WindowWeek, nil
	case "month":
		return service.WindowMonth, nil
	default:
		return 0, fmt.Errorf("invalid --period %q (use week or month)", period)
	}
}

func printProgress(cmd *cobra.Command, r *service.ProgressReport, noCharts bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Range: %s to %s (%d days)\n", r.FromDate, r.ToDate, r.WindowDays)
	fmt.Fprintf(out, "Workouts: %d\n", r.TotalWorkouts)
	fmt.Fprintf(out, "Avg consumed/day: %d kcal\n", r.AvgCaloriesConsumed)
	fmt.Fprintf(out, "Avg burned/day: %d kcal\n", r.AvgCaloriesBurned)
	if r.Weight.Latest != nil {
		fmt.Fprintf(out, "Latest weight: %.1f kg (%s)\n", r.Weight.Latest.WeightKg, formatTimestamp(r.Weight.Latest.MeasuredAt))
		if r.Weight.ChangeKg != nil {
			fmt.Fprintf(out, "Change since previous: %+.1f kg\n", *r.Weight.ChangeKg)
		}
	} else {
		fmt.Fprintln(out, "Latest weight: N/A")
	}
	fmt.Fprintf(out, "Logging streak: current %d, longest %d\n", r.Streaks.Logging.Current, r.Streaks.Logging.Longest)
	fmt.Fprintf(out, "Workout streak: current %d, longest %d\n", r.Streaks.Workout.Current, r.Streaks.Workout.Longest)
	fmt.Fprintf(out, "Trends: consumed %s | burned %s | net %s\n", r.Trends.CaloriesConsumed.Direction, r.Trends.CaloriesBurned.Direction, r.Trends.NetCalories.Direction)

	if noCharts {
		return
	}
	fmt.Fprintln(out)
	printDayBars(out, "Net kcal", r.Series, func(d service.DayAggregate) int { return d.NetCalories })
	printDayBars(out, "Workouts", r.Series, func(d service.DayAggregate) int { return d.WorkoutCount })
	consumed := make([]float64, len(r.Series))
	for i, d := range r.Series {
		consumed[i] = float64(d.CaloriesConsumed)
	}
	fmt.Fprintf(out, "Consumed trend: %s\n", sparkline(consumed))
	if len(r.WeightPoints) > 1 {
		weights := make([]float64, len(r.WeightPoints))
		for i, p := range r.WeightPoints {
			weights[i] = p.WeightKg
		}
		fmt.Fprintf(out, "Weight trend: %s (%s to %s)\n", sparkline(weights), r.WeightPoints[0].Date, r.WeightPoints[len(r.WeightPoints)-1].Date)
	}
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.Flags().StringVar(&progressPeriod, "period", "week", "Window: week|month")
	progressCmd.Flags().IntVar(&progressDays, "days", 0, "Custom window length in days, 1-366 (overrides --period)")
	progressCmd.Flags().BoolVar(&progressJSON, "json", false, "Output as JSON")
	progressCmd.Flags().BoolVar(&progressNoCharts, "no-charts", false, "Disable ASCII charts in text output")
}
