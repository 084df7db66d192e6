package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	dailyNoCodeSave bool
	dailyOpen       bool
	dailyLang       string
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Save today's daily challenge",
	Long: `Save today's daily coding challenge and its starter code, like
'lc question' does for a named question.

Example:
  lc daily`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(nil)
		if err != nil {
			return err
		}

		daily, err := sess.DailyChallenge(cmd.Context())
		if err != nil {
			return err
		}

		q := daily.Question
		tags := make([]string, len(q.TopicTags))
		for i, t := range q.TopicTags {
			tags[i] = t.Name
		}
		fmt.Fprintln(cmd.OutOrStdout(), cyan.Render(fmt.Sprintf("%s. %s", q.FrontendQuestionID, q.Title))+
			gray.Render(fmt.Sprintf("  %s  %.1f%%  %s", q.Difficulty, q.AcRate, strings.Join(tags, ", "))))

		if err := fetchQuestion(cmd, sess, q.TitleSlug, dailyNoCodeSave, dailyLang); err != nil {
			return err
		}
		if dailyOpen {
			openProblem(cmd, daily.Link)
		}
		return nil
	},
}

func init() {
	dailyCmd.Flags().BoolVarP(&dailyNoCodeSave, "no-code-save", "n", false, "only save the question, not the starter code")
	dailyCmd.Flags().BoolVar(&dailyOpen, "open", false, "open the problem page in your browser")
	dailyCmd.Flags().StringVarP(&dailyLang, "lang", "l", "", "language slug of the starter code, e.g. cpp or golang")
	rootCmd.AddCommand(dailyCmd)
}
