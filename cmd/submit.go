package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	submitFile         string
	submitTestcaseFile string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Run the testcases, then submit if they all pass",
	Long: `Run your solution against the testcases first and submit it for
grading only when every case passes.

Use 'lc fast-submit' to skip the run.

Example:
  lc submit
  lc submit -f main.py -t testcase.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cf, _, err := resolveCodeFile(submitFile)
		if err != nil {
			return err
		}
		input, err := readTestcases(submitTestcaseFile)
		if err != nil {
			return err
		}

		run, err := startJob(cmd)
		if err != nil {
			return err
		}
		passed, err := run.execute(cmd, cf, input)
		if err != nil {
			return err
		}
		if !passed {
			fmt.Fprintln(cmd.OutOrStdout(), orange.Render("✗ Not submitting: fix the failing testcases first"))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout())
		sub, err := startJob(cmd)
		if err != nil {
			return err
		}
		_, err = sub.submit(cmd, cf)
		return err
	},
}

func init() {
	submitCmd.Flags().StringVarP(&submitFile, "file", "f", "", "solution file (found in the working directory when empty)")
	submitCmd.Flags().StringVarP(&submitTestcaseFile, "testcase-file", "t", "", "file with custom testcases")
	rootCmd.AddCommand(submitCmd)
}
