package dhyan

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath      string
	storeDriver string
	postgresDSN string
	logLevel    string
	envFile     string
)

var rootCmd = &cobra.Command{
	Use:   "dhyan",
	Short: "dhyan tracks meals, workouts, and weight from your terminal",
	Long:  "dhyan is a local-first fitness tracker: log food, workouts, and body weight, then review daily insights, progress charts, and health metrics.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (env DHYAN_DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&storeDriver, "store", "", "Store driver: sqlite|postgres|memory (env DHYAN_STORE)")
	rootCmd.PersistentFlags().StringVar(&postgresDSN, "dsn", "", "Postgres connection string (env DHYAN_POSTGRES_DSN)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug|info|warn|error (env DHYAN_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Load configuration from this dotenv file")
}
