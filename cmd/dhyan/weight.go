package dhyan

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/saadjs/dhyan-cli/internal/service"
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Log and review body weight",
}

var (
	weightUnit string
	weightDate string
	weightTime string
)

var weightAddCmd = &cobra.Command{
	Use:   "add <weight>",
	Short: "Record a body weight reading",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
		if err != nil {
			return fmt.Errorf("invalid weight %q", args[0])
		}
		at, err := parseDateTimeOrZero(weightDate, weightTime)
		if err != nil {
			return err
		}
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			entry, err := tr.AddWeight(ctx, service.WeightInput{Weight: value, Unit: weightUnit, MeasuredAt: at})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added weight %s (%.2f kg)\n", entry.ID, entry.WeightKg)
			return nil
		})
	},
}

var (
	weightListDate  string
	weightListLimit int
	weightListUnit  string
	weightListJSON  bool
)

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weight readings, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			items, err := tr.ListWeights(ctx, service.EntryFilter{Date: weightListDate, Limit: weightListLimit})
			if err != nil {
				return err
			}
			if weightListJSON {
				return printJSON(cmd, items)
			}
			unit := strings.ToLower(strings.TrimSpace(weightListUnit))
			fmt.Fprintf(cmd.OutOrStdout(), "ID\tDATE\tWEIGHT(%s)\n", unit)
			for _, e := range items {
				w, err := service.FromKg(e.WeightKg, unit)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.2f\n", e.ID, formatTimestamp(e.MeasuredAt), w)
			}
			return nil
		})
	},
}

var weightDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a weight reading",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			if err := tr.DeleteWeight(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted weight %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightAddCmd, weightListCmd, weightDeleteCmd)

	weightAddCmd.Flags().StringVar(&weightUnit, "unit", "kg", "Unit: kg|lb")
	weightAddCmd.Flags().StringVar(&weightDate, "date", "", "Date YYYY-MM-DD (default now)")
	weightAddCmd.Flags().StringVar(&weightTime, "time", "", "Time HH:MM (requires --date)")

	weightListCmd.Flags().StringVar(&weightListDate, "date", "", "Only readings on YYYY-MM-DD")
	weightListCmd.Flags().IntVar(&weightListLimit, "limit", 50, "Max rows (0 for all)")
	weightListCmd.Flags().StringVar(&weightListUnit, "unit", "kg", "Display unit: kg|lb")
	weightListCmd.Flags().BoolVar(&weightListJSON, "json", false, "Output as JSON")
}
