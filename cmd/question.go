package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/VivekYadav7272/leetcode-runner-cli/client"
	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
	"github.com/VivekYadav7272/leetcode-runner-cli/internal/prompt"
	"github.com/VivekYadav7272/leetcode-runner-cli/internal/workspace"
)

// asker is what saving starter code needs from the user.
type asker interface {
	client.Chooser
	Filename(def string) (string, error)
}

// newAsker is swapped out in tests.
var newAsker = func() asker { return prompt.New() }

var (
	questionNoCodeSave bool
	questionOpen       bool
	questionLang       string
)

var questionCmd = &cobra.Command{
	Use:   "question <title-slug>",
	Short: "Save a question and its starter code",
	Long: `Save the statement of a question as <slug>.html and its starter code
in a language of your choice.

The title slug is the last part of the problem URL, e.g. two-sum for
https://leetcode.com/problems/two-sum/.

Example:
  lc question two-sum
  lc question two-sum --lang golang
  lc question two-sum --no-code-save --open`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := args[0]
		sess, err := newSession(nil)
		if err != nil {
			return err
		}
		if err := fetchQuestion(cmd, sess, slug, questionNoCodeSave, questionLang); err != nil {
			return err
		}
		if questionOpen {
			openProblem(cmd, "/problems/"+slug+"/")
		}
		return nil
	},
}

// fetchQuestion saves the statement and, unless noCodeSave, the starter
// code of slug into the working directory. An empty lang asks the user
// when there is more than one language to choose from.
func fetchQuestion(cmd *cobra.Command, sess *client.Session, slug string, noCodeSave bool, lang string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	content, err := sess.QuestionContent(ctx, slug)
	if err != nil {
		return err
	}
	htmlPath, err := workspace.SaveQuestion(".", slug, content)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, green.Render("✓ Saved question to "+htmlPath))

	if noCodeSave {
		return nil
	}

	editor, err := sess.QuestionEditorData(ctx, slug)
	if err != nil {
		return err
	}
	a := newAsker()
	snippet, err := pickSnippet(editor, lang, a)
	if err != nil {
		return err
	}
	name, err := a.Filename(workspace.DefaultCodeFilename(snippet.LangSlug))
	if err != nil {
		return err
	}
	path := filepath.Clean(name)
	if err := workspace.SaveBoilerplate(path, slug, snippet); err != nil {
		return err
	}
	fmt.Fprintln(out, green.Render("✓ Saved starter code to "+path))
	return nil
}

func pickSnippet(editor *client.QuestionEditorData, lang string, chooser client.Chooser) (client.BoilerPlateCode, error) {
	if lang == "" {
		return client.SelectSnippet(editor, chooser)
	}
	l, err := client.ParseLanguage(lang)
	if err != nil {
		return client.BoilerPlateCode{}, lcerrors.Wrap(err, lcerrors.InvalidChoice)
	}
	return client.SnippetFor(editor, l)
}

func openProblem(cmd *cobra.Command, link string) {
	url := app.cfg.BaseURL + link
	if err := browser.OpenURL(url); err != nil {
		app.log.Sugar().Warnw("could not open browser", "url", url, "error", err)
		fmt.Fprintln(cmd.OutOrStdout(), gray.Render("Open "+url+" in your browser"))
	}
}

func init() {
	questionCmd.Flags().BoolVarP(&questionNoCodeSave, "no-code-save", "n", false, "only save the question, not the starter code")
	questionCmd.Flags().BoolVar(&questionOpen, "open", false, "open the problem page in your browser")
	questionCmd.Flags().StringVarP(&questionLang, "lang", "l", "", "language slug of the starter code, e.g. cpp or golang")
	rootCmd.AddCommand(questionCmd)
}
