package dhyan

import (
	"context"
	"fmt"
	"math"

	"github.com/saadjs/dhyan-cli/internal/service"
	"github.com/spf13/cobra"
)

var healthJSON bool

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Show BMR, TDEE, BMI, and weight goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			r, err := tr.Health(ctx)
			if err != nil {
				return err
			}
			if healthJSON {
				return printJSON(cmd, r)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "BMR: %.0f kcal/day\n", math.Round(r.BMR))
			fmt.Fprintf(out, "TDEE: %.0f kcal/day (%s)\n", math.Round(r.TDEE), r.ActivityLevel)
			fmt.Fprintf(out, "BMI: %.1f (%s)\n", r.BMI, r.Category)
			fmt.Fprintf(out, "Weight goal: %.1f kg / %.1f kg %s %.0f%%\n", r.WeightKg, r.TargetWeightKg, percentBar(r.WeightGoalProgressPct, 20), r.WeightGoalProgressPct)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
	healthCmd.Flags().BoolVar(&healthJSON, "json", false, "Output as JSON")
}
