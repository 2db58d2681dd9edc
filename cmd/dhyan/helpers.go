package dhyan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/saadjs/dhyan-cli/internal/app"
	"github.com/saadjs/dhyan-cli/internal/service"
	"github.com/saadjs/dhyan-cli/internal/store"
	"github.com/spf13/cobra"
)

// loadConfig merges the dotenv/environment configuration with the
// persistent flags; flags win.
func loadConfig() (app.Config, error) {
	cfg, err := app.LoadConfig(envFile)
	if err != nil {
		return app.Config{}, err
	}
	if v := strings.TrimSpace(dbPath); v != "" {
		cfg.DBPath = v
	}
	if v := strings.TrimSpace(storeDriver); v != "" {
		cfg.Store = strings.ToLower(v)
	}
	if v := strings.TrimSpace(postgresDSN); v != "" {
		cfg.PostgresDSN = v
	}
	if v := strings.TrimSpace(logLevel); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}

func openStore(ctx context.Context, cfg app.Config) (store.Store, string, error) {
	opts := store.Options{Driver: cfg.Store, PostgresDSN: cfg.PostgresDSN}
	location := cfg.Store
	if cfg.Store == "" || cfg.Store == store.DriverSQLite {
		path, err := cfg.ResolveDBPath()
		if err != nil {
			return nil, "", err
		}
		opts.SQLitePath = path
		location = path
	}
	s, err := store.Open(ctx, opts)
	if err != nil {
		return nil, "", err
	}
	return s, location, nil
}

func withTracker(cmd *cobra.Command, run func(context.Context, *service.Tracker) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := app.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, location, err := openStore(ctx, cfg)
	if err != nil {
		logger.Debug("open store failed", "driver", cfg.Store, "err", err)
		return err
	}
	logger.Debug("store opened", "driver", cfg.Store, "location", location)

	tracker := service.NewTracker(s, service.WithLogger(logger))
	defer tracker.Close()
	if err := run(ctx, tracker); err != nil {
		logger.Debug("command failed", "command", cmd.CommandPath(), "err", err)
		return err
	}
	return nil
}

// parseDateTimeOrZero returns the zero time when neither flag is set so the
// tracker clock supplies the timestamp.
func parseDateTimeOrZero(date, timeStr string) (time.Time, error) {
	date = strings.TrimSpace(date)
	timeStr = strings.TrimSpace(timeStr)
	if date == "" && timeStr == "" {
		return time.Time{}, nil
	}
	if date == "" {
		return time.Time{}, fmt.Errorf("--date is required when --time is set")
	}
	if timeStr == "" {
		t, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
		}
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date/--time (expected YYYY-MM-DD and HH:MM)")
	}
	return t, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func formatTimestamp(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
