package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VivekYadav7272/leetcode-runner-cli/internal/workspace"
)

var (
	packFile    string
	packArchive bool
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Pack a solution together with its question",
	Long: `Move the solution and the saved question into a directory named
after the question, or with --archive write both into <slug>.tar.zst
and leave the files where they are.

Example:
  lc pack
  lc pack -f main.go --archive`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cf, path, err := resolveCodeFile(packFile)
		if err != nil {
			return err
		}

		var dst string
		if packArchive {
			dst, err = workspace.PackArchive(path, cf.QuestionTitle)
		} else {
			dst, err = workspace.Pack(path, cf.QuestionTitle)
		}
		if err != nil {
			return err
		}

		app.log.Debug("packed solution", zap.String("question", cf.QuestionTitle), zap.String("to", dst))
		fmt.Fprintln(cmd.OutOrStdout(), green.Render("✓ Packed into "+dst))
		return nil
	},
}

func init() {
	packCmd.Flags().StringVarP(&packFile, "file", "f", "", "solution file (found in the working directory when empty)")
	packCmd.Flags().BoolVar(&packArchive, "archive", false, "write a .tar.zst archive instead of moving files")
	rootCmd.AddCommand(packCmd)
}
