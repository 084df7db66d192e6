package cmd

import (
	"github.com/spf13/cobra"
)

var (
	runFile         string
	runTestcaseFile string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run your solution against testcases on the judge",
	Long: `Run your solution on LeetCode's judge and compare it with the
reference answers.

Without --testcase-file the question's example testcases are used and
written to testcase.txt so you can edit and extend them.

Example:
  lc run
  lc run -f main.rs -t testcase.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cf, _, err := resolveCodeFile(runFile)
		if err != nil {
			return err
		}
		input, err := readTestcases(runTestcaseFile)
		if err != nil {
			return err
		}

		j, err := startJob(cmd)
		if err != nil {
			return err
		}
		_, err = j.execute(cmd, cf, input)
		return err
	},
}

func init() {
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "solution file (found in the working directory when empty)")
	runCmd.Flags().StringVarP(&runTestcaseFile, "testcase-file", "t", "", "file with custom testcases")
	rootCmd.AddCommand(runCmd)
}
