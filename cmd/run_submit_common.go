package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/VivekYadav7272/leetcode-runner-cli/client"
	"github.com/VivekYadav7272/leetcode-runner-cli/internal/codefile"
	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
	"github.com/VivekYadav7272/leetcode-runner-cli/ui"
	"github.com/VivekYadav7272/leetcode-runner-cli/ui/messages"
)

// resolveCodeFile reads the solution at path, or finds the one in the
// working directory when path is empty.
func resolveCodeFile(path string) (client.CodeFile, string, error) {
	if path == "" {
		found, err := codefile.Find(".")
		if err != nil {
			return client.CodeFile{}, "", err
		}
		path = found
	}
	cf, err := codefile.Read(path)
	return cf, path, err
}

// readTestcases returns the custom input in path. Empty means the
// question's examples are used.
func readTestcases(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", lcerrors.Wrapf(err, lcerrors.InvalidCodeFile, "Failed to read testcases from %s", path)
	}
	return string(b), nil
}

// job wires a session to a renderer for the duration of one command.
type job struct {
	out    io.Writer
	ch     chan messages.Msg
	finish func()
	sess   *client.Session
}

func startJob(cmd *cobra.Command) (*job, error) {
	ch := make(chan messages.Msg, 16)
	sess, err := newSession(ch)
	if err != nil {
		return nil, err
	}
	out := cmd.OutOrStdout()
	return &job{out: out, ch: ch, finish: ui.StartRenderer(out, ch), sess: sess}, nil
}

// execute runs cf on the judge and prints the outcome. Returns whether all
// cases passed.
func (j *job) execute(cmd *cobra.Command, cf client.CodeFile, input string) (bool, error) {
	j.ch <- messages.StartJobMsg{Kind: client.ExecutionJob, Title: cf.QuestionTitle}
	if input == "" {
		j.ch <- messages.NoteMsg{Text: "No testcases given, using the question's examples"}
	}

	res, err := j.sess.Execute(cmd.Context(), cf, input)
	j.finish()
	if err != nil {
		return false, err
	}

	fmt.Fprintln(j.out)
	fmt.Fprintln(j.out, ui.Outcome(res.Outcome))
	return ui.Passed(res.Outcome), nil
}

// submit grades cf and prints the outcome.
func (j *job) submit(cmd *cobra.Command, cf client.CodeFile) (bool, error) {
	j.ch <- messages.StartJobMsg{Kind: client.SubmissionJob, Title: cf.QuestionTitle}

	res, err := j.sess.Submit(cmd.Context(), cf)
	j.finish()
	if err != nil {
		return false, err
	}

	fmt.Fprintln(j.out)
	fmt.Fprintln(j.out, ui.Outcome(res.Outcome))
	return ui.Passed(res.Outcome), nil
}
