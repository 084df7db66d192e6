package cmd

import (
	"github.com/spf13/cobra"
)

var fastSubmitFile string

var fastSubmitCmd = &cobra.Command{
	Use:   "fast-submit",
	Short: "Submit without running the testcases first",
	Long: `Submit your solution for grading straight away.

Example:
  lc fast-submit -f main.cpp`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cf, _, err := resolveCodeFile(fastSubmitFile)
		if err != nil {
			return err
		}

		j, err := startJob(cmd)
		if err != nil {
			return err
		}
		_, err = j.submit(cmd, cf)
		return err
	},
}

func init() {
	fastSubmitCmd.Flags().StringVarP(&fastSubmitFile, "file", "f", "", "solution file (found in the working directory when empty)")
	rootCmd.AddCommand(fastSubmitCmd)
}
