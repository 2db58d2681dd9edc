package dhyan

import (
	"fmt"
	"strings"
	"time"

	"github.com/saadjs/dhyan-cli/internal/catalog"
	"github.com/saadjs/dhyan-cli/internal/model"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the built-in food and exercise tables",
}

var catalogJSON bool

var catalogFoodsCmd = &cobra.Command{
	Use:   "foods [query]",
	Short: "List or search catalog foods",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		foods := catalog.SearchFoods(query)
		if catalogJSON {
			return printJSON(cmd, foods)
		}
		printFoodTable(cmd, foods)
		return nil
	},
}

var catalogCategory string

var catalogExercisesCmd = &cobra.Command{
	Use:   "exercises [query]",
	Short: "List or search catalog exercises",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var category model.WorkoutCategory
		if strings.TrimSpace(catalogCategory) != "" {
			c, err := model.ParseWorkoutCategory(catalogCategory)
			if err != nil {
				return err
			}
			category = c
		}
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		items := catalog.SearchExercises(query, category)
		if catalogJSON {
			return printJSON(cmd, items)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "NAME\tCATEGORY\tKCAL/MIN\tDESCRIPTION")
		for _, e := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f\t%s\n", e.Name, e.Category, e.CaloriesPerMinute, e.Description)
		}
		return nil
	},
}

var (
	suggestMeal string
	suggestHour int
)

var catalogSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest foods for a meal (default: the meal for the current hour)",
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, err := model.ParseMealType(suggestMeal)
		if err != nil {
			return err
		}
		if meal == "" {
			hour := time.Now().Hour()
			if cmd.Flags().Changed("hour") {
				if suggestHour < 0 || suggestHour > 23 {
					return fmt.Errorf("--hour must be between 0 and 23")
				}
				hour = suggestHour
			}
			meal = catalog.MealForHour(hour)
		}
		foods := catalog.SuggestFoods(meal)
		if catalogJSON {
			return printJSON(cmd, map[string]any{"meal": meal, "foods": foods})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Suggestions for %s\n", meal)
		printFoodTable(cmd, foods)
		return nil
	},
}

func printFoodTable(cmd *cobra.Command, foods []catalog.Food) {
	fmt.Fprintln(cmd.OutOrStdout(), "NAME\tCATEGORY\tKCAL\tP\tC\tF\tFIBER\tSERVING")
	for _, f := range foods {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%.1f\t%.1f\t%.1f\t%.1f\t%s\n", f.Name, f.Category, f.Calories, f.ProteinG, f.CarbsG, f.FatG, f.FiberG, f.Serving)
	}
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogFoodsCmd, catalogExercisesCmd, catalogSuggestCmd)
	catalogCmd.PersistentFlags().BoolVar(&catalogJSON, "json", false, "Output as JSON")
	catalogExercisesCmd.Flags().StringVar(&catalogCategory, "category", "", "Filter: cardio|strength|flexibility|sports")
	catalogSuggestCmd.Flags().StringVar(&suggestMeal, "meal", "", "Meal: breakfast|lunch|dinner|snack")
	catalogSuggestCmd.Flags().IntVar(&suggestHour, "hour", 0, "Hour of day (0-23) used to pick the meal")
}
