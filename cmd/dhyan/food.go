package dhyan

import (
	"context"
	"fmt"
	"strings"

	"github.com/saadjs/dhyan-cli/internal/model"
	"github.com/saadjs/dhyan-cli/internal/service"
	"github.com/spf13/cobra"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log and review food entries",
}

var (
	foodName     string
	foodCalories int
	foodProtein  float64
	foodCarbs    float64
	foodFat      float64
	foodFiber    float64
	foodServing  string
	foodMeal     string
	foodDate     string
	foodTime     string
	foodCatalog  string
	foodServings float64
)

var foodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food entry (manual values or --catalog item)",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseDateTimeOrZero(foodDate, foodTime)
		if err != nil {
			return err
		}
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			var entry model.FoodEntry
			if strings.TrimSpace(foodCatalog) != "" {
				entry, err = tr.AddCatalogFood(ctx, service.CatalogFoodInput{
					Name:     foodCatalog,
					Servings: foodServings,
					MealType: foodMeal,
					LoggedAt: at,
				})
			} else {
				entry, err = tr.AddFood(ctx, service.FoodInput{
					Name:     foodName,
					Calories: foodCalories,
					ProteinG: foodProtein,
					CarbsG:   foodCarbs,
					FatG:     foodFat,
					FiberG:   foodFiber,
					Serving:  foodServing,
					MealType: foodMeal,
					LoggedAt: at,
				})
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added food %s (%s, %d kcal)\n", entry.ID, entry.Name, entry.Calories)
			return nil
		})
	},
}

var (
	foodListDate  string
	foodListLimit int
	foodListJSON  bool
)

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			items, err := tr.ListFood(ctx, service.EntryFilter{Date: foodListDate, Limit: foodListLimit})
			if err != nil {
				return err
			}
			if foodListJSON {
				return printJSON(cmd, items)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tMEAL\tNAME\tKCAL\tP\tC\tF\tFIBER\tSERVING")
			for _, e := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d\t%.1f\t%.1f\t%.1f\t%.1f\t%s\n", e.ID, formatTimestamp(e.LoggedAt), orDash(string(e.MealType)), e.Name, e.Calories, e.ProteinG, e.CarbsG, e.FatG, e.FiberG, orDash(e.Serving))
			}
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			if err := tr.DeleteFood(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted food %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodAddCmd, foodListCmd, foodDeleteCmd)

	foodAddCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodAddCmd.Flags().IntVar(&foodCalories, "calories", 0, "Calories")
	foodAddCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein grams")
	foodAddCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbs grams")
	foodAddCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat grams")
	foodAddCmd.Flags().Float64Var(&foodFiber, "fiber", 0, "Fiber grams")
	foodAddCmd.Flags().StringVar(&foodServing, "serving", "", "Serving description")
	foodAddCmd.Flags().StringVar(&foodMeal, "meal", "", "Meal: breakfast|lunch|dinner|snack (optional)")
	foodAddCmd.Flags().StringVar(&foodDate, "date", "", "Date YYYY-MM-DD (default now)")
	foodAddCmd.Flags().StringVar(&foodTime, "time", "", "Time HH:MM (requires --date)")
	foodAddCmd.Flags().StringVar(&foodCatalog, "catalog", "", "Log a catalog food by name instead of manual values")
	foodAddCmd.Flags().Float64Var(&foodServings, "servings", 1, "Servings of the --catalog food")

	foodListCmd.Flags().StringVar(&foodListDate, "date", "", "Only entries on YYYY-MM-DD")
	foodListCmd.Flags().IntVar(&foodListLimit, "limit", 50, "Max rows (0 for all)")
	foodListCmd.Flags().BoolVar(&foodListJSON, "json", false, "Output as JSON")
}
