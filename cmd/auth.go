package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VivekYadav7272/leetcode-runner-cli/client"
	"github.com/VivekYadav7272/leetcode-runner-cli/internal/prompt"
)

var authCookie string

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate with LeetCode",
	Long: `Store your LeetCode browser cookie for future commands.

Copy the Cookie header from any request to leetcode.com in your browser's
developer tools. It must contain csrftoken and LEETCODE_SESSION. The
cookie is checked against the judge before it is saved.

Example:
  lc auth
  lc auth --cookie "csrftoken=...; LEETCODE_SESSION=..."`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cookie := authCookie
		if cookie == "" {
			fmt.Fprintln(out, gray.Render("Paste your leetcode.com cookie (input is hidden)"))
			var err error
			if cookie, err = prompt.New().Cookie(); err != nil {
				return err
			}
		}

		sess, err := client.New(
			client.WithBaseURL(app.cfg.BaseURL),
			client.WithLogger(app.log),
		).Authenticate(cookie)
		if err != nil {
			return err
		}

		status, err := sess.UserStatus(cmd.Context())
		if err != nil {
			return err
		}

		app.cfg.Cookie = cookie
		if err := app.cfg.Save(); err != nil {
			return err
		}

		fmt.Fprintln(out, green.Render("✓ Logged in as "+status.UserName))
		fmt.Fprintln(out, gray.Render(fmt.Sprintf("Solved %d/%d (easy %d, medium %d, hard %d)",
			status.NumSolved, status.NumTotal, status.AcEasy, status.AcMedium, status.AcHard)))
		if status.IsPaid != nil && *status.IsPaid {
			fmt.Fprintln(out, gray.Render("Premium questions are available"))
		}
		return nil
	},
}

func init() {
	authCmd.Flags().StringVar(&authCookie, "cookie", "", "cookie string (prompted for when empty)")
	rootCmd.AddCommand(authCmd)
}
