package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/VivekYadav7272/leetcode-runner-cli/client"
	"github.com/VivekYadav7272/leetcode-runner-cli/ui/messages"
)

var (
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	gray   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	italic = lipgloss.NewStyle().Italic(true)
)

const separator = "-------------------------------"

// StartRenderer prints progress messages from ch to w until the returned
// function is called. The function closes ch and waits for the printer.
func StartRenderer(w io.Writer, ch chan messages.Msg) func() {
	done := make(chan struct{})

	go func() {
		defer close(done)
		for msg := range ch {
			switch msg := msg.(type) {
			case messages.StartJobMsg:
				fmt.Fprintln(w, cyan.Render("● ")+fmt.Sprintf("%s: %s", jobVerb(msg.Kind), msg.Title))
			case messages.StatusMsg:
				if msg.Unknown {
					fmt.Fprintln(w, "  "+red.Render(msg.Text))
				} else {
					fmt.Fprintln(w, "  "+gray.Render(msg.Text))
				}
			case messages.NoteMsg:
				fmt.Fprintln(w, gray.Render(msg.Text))
			}
		}
	}()

	return func() {
		close(ch)
		<-done
	}
}

func jobVerb(kind client.JobKind) string {
	if kind == client.SubmissionJob {
		return "Submitting"
	}
	return "Running"
}

// Outcome renders a final judge outcome for the terminal.
func Outcome(o client.Outcome) string {
	switch o := o.(type) {
	case *client.Success:
		return success(o)
	case *client.CompileError:
		return compileError(o)
	case *client.RuntimeError:
		return runtimeError(o)
	case *client.WrongTestcase:
		return wrongTestcase(o)
	case *client.LimitExceeded:
		return limitExceeded(o)
	case *client.Pending:
		return yellow.Render("Still pending: " + o.State)
	default:
		return red.Render(fmt.Sprintf("Unrecognised outcome %T", o))
	}
}

func sep() string {
	return yellow.Render(separator)
}

func lines(parts ...string) string {
	return strings.Join(parts, "\n")
}

func wrongTestcase(o *client.WrongTestcase) string {
	title := "Unknown Error!"
	if o.InvalidTestcase {
		title = "Invalid Testcase!"
	}
	return lines(red.Render(title), sep(), o.RuntimeError)
}

func limitExceeded(o *client.LimitExceeded) string {
	out := []string{
		red.Render(o.StatusMsg),
		sep(),
		fmt.Sprintf("Time Elapsed : %d", o.ElapsedTime),
		fmt.Sprintf("Memory : %d", o.Memory),
	}
	if o.TotalCorrect != nil && o.TotalTestcases != nil {
		out = append(out, fmt.Sprintf("Passed : %d/%d", *o.TotalCorrect, *o.TotalTestcases))
	}
	if o.LastTestcase != "" {
		out = append(out, "Last Testcase :", o.LastTestcase)
	}
	return lines(out...)
}

func compileError(o *client.CompileError) string {
	return lines(
		red.Render("Compilation Error!"),
		sep(),
		"Error Message : "+o.CompileError,
		"",
		"Full error message :",
		o.FullCompileError,
	)
}

func runtimeError(o *client.RuntimeError) string {
	out := []string{
		red.Render("Runtime Error!"),
		"Testcase " + red.Render(fmt.Sprint(o.FailedTestcase())) + " failed during execution!",
		sep(),
		yellow.Render("Error Message :"),
		o.RuntimeError,
		"",
		yellow.Render("Full error message :"),
		o.FullRuntimeError,
		sep(),
		yellow.Render("Std Output :"),
		fmt.Sprintf("%q", []string(o.StdOutput)),
	}
	if o.LastTestcase != "" {
		out = append(out, yellow.Render("Last Testcase :"), o.LastTestcase)
	}
	return lines(out...)
}

func success(o *client.Success) string {
	var b strings.Builder

	if o.CorrectAnswer() {
		b.WriteString(green.Render("Testcase execution success"))
	} else {
		b.WriteString(red.Render(fmt.Sprintf("Testcase %d/%d testcase passed", o.TotalCorrect, o.TotalTestcases)))
	}
	b.WriteString("\n\n")

	for i := range o.CodeAnswer {
		b.WriteString(sep() + "\n")
		if o.CasePassed(i) {
			b.WriteString(green.Render(fmt.Sprintf("Testcase %d execution success", i+1)))
		} else {
			b.WriteString(red.Render(fmt.Sprintf("Testcase %d execution failed", i+1)))
		}
		b.WriteString("\n" + sep() + "\n")
		fmt.Fprintf(&b, "%-10s: %q\n", "Output", o.CodeAnswer[i])
		fmt.Fprintf(&b, "%-10s: %q\n\n", "Expected", at(o.ExpectedCodeAnswer, i))
		if out := at(o.StdOutput, i); out != "" {
			fmt.Fprintf(&b, "Std Output :\n%s\n\n", out)
		}
	}

	b.WriteString(sep() + "\n")
	fmt.Fprintf(&b, "%-10s: %s (%d%%)\n", "Runtime", cyan.Render(o.StatusRuntime), o.RuntimePercentile())
	if o.MayExceedTimeLimit() {
		b.WriteString(red.Inherit(italic).Render("High runtime detected! May lead to TLE") + "\n")
	}
	fmt.Fprintf(&b, "%-10s: %s (%d%%)\n", "Memory", cyan.Render(o.StatusMemory), o.MemoryPercentile())

	b.WriteString(sep() + "\n")
	if o.CorrectAnswer() {
		fmt.Fprintf(&b, "%-10s: %s", "Status", green.Inherit(italic).Render("Testcase execution success"))
	} else {
		fmt.Fprintf(&b, "%-10s: %s", "Status", yellow.Inherit(italic).Render("Testcase execution failed"))
	}
	return b.String()
}

// Passed reports whether an outcome counts as all cases passing.
func Passed(o client.Outcome) bool {
	s, ok := o.(*client.Success)
	return ok && s.CorrectAnswer()
}

func at(list client.StringList, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}
