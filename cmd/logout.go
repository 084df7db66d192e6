package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VivekYadav7272/leetcode-runner-cli/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored cookie",
	Long: `Remove the local configuration, including the stored cookie.

You'll need to run 'lc auth' again before talking to the judge.

Example:
  lc logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if app.cfg.Cookie == "" {
			fmt.Fprintln(out, "Already logged out")
			return nil
		}

		if err := config.Clear(); err != nil {
			return fmt.Errorf("failed to clear credentials: %w", err)
		}

		fmt.Fprintln(out, green.Render("✓ Logged out successfully!"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
