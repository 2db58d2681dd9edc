package dhyan

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/saadjs/dhyan-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	exportOut  string
	importIn   string
	importMode string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export profile and entries as a JSON snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			snap, err := tr.ExportSnapshot(ctx)
			if err != nil {
				return err
			}
			b, err := sonic.ConfigStd.MarshalIndent(snap, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal export json: %w", err)
			}
			if strings.TrimSpace(exportOut) == "" || exportOut == "-" {
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			if err := os.WriteFile(exportOut, b, 0o644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d food, %d workout, %d weight entries to %s\n", len(snap.Food), len(snap.Workouts), len(snap.Weights), exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a JSON snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		mode, err := service.ParseImportMode(importMode)
		if err != nil {
			return err
		}
		b, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}
		var snap service.Snapshot
		if err := sonic.ConfigStd.Unmarshal(b, &snap); err != nil {
			return fmt.Errorf("parse import json: %w", err)
		}
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			report, err := tr.ImportSnapshot(ctx, &snap, mode)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Import (%s): inserted=%d skipped=%d profile=%t\n", report.Mode, report.Inserted, report.Skipped, report.ProfileImported)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default stdout)")
	importCmd.Flags().StringVar(&importIn, "in", "", "Snapshot file to import")
	importCmd.Flags().StringVar(&importMode, "mode", "merge", "Import mode: merge|replace")
}
