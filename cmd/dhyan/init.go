package dhyan

import (
	"context"
	"fmt"

	"github.com/saadjs/dhyan-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	initName  string
	initEmail string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the store with a default profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(cmd, func(ctx context.Context, tr *service.Tracker) error {
			p, created, err := tr.InitProfile(ctx, service.DefaultProfileInput(initName, initEmail), initForce)
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "Profile already exists for %s (use --force to reset)\n", p.Name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created profile %s for %s\n", p.ID, p.Name)
			fmt.Fprintln(cmd.OutOrStdout(), "Edit it with `dhyan profile set`.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initName, "name", "", "Profile name (default Demo User)")
	initCmd.Flags().StringVar(&initEmail, "email", "", "Profile email")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Replace an existing profile with the defaults")
}
