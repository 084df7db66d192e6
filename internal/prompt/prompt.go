// Package prompt asks the user for the few things the CLI cannot guess.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/VivekYadav7272/leetcode-runner-cli/client"
	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
)

// Prompter reads answers line by line from a terminal.
type Prompter struct {
	in  io.ReadCloser
	out io.Writer
}

var _ client.Chooser = (*Prompter)(nil)

// New prompts on stdin/stdout.
func New() *Prompter {
	return &Prompter{in: os.Stdin, out: os.Stdout}
}

// NewWithIO prompts on the given streams.
func NewWithIO(in io.ReadCloser, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// Choose lists the options with their index and reads one back.
func (p *Prompter) Choose(prompt string, options []string) (int, error) {
	fmt.Fprint(p.out, Menu(prompt, options))
	line, err := p.readLine("> ", false)
	if err != nil {
		return 0, err
	}
	return ParseChoice(line, len(options))
}

// Filename asks where to save starter code. An empty answer keeps def.
func (p *Prompter) Filename(def string) (string, error) {
	line, err := p.readLine(fmt.Sprintf("Filename (%s) : ", def), false)
	if err != nil {
		return "", err
	}
	return FilenameOrDefault(line, def), nil
}

// Cookie reads the session cookie without echoing it.
func (p *Prompter) Cookie() (string, error) {
	line, err := p.readLine("Cookie : ", true)
	if err != nil {
		return "", err
	}
	cookie := strings.TrimSpace(line)
	if cookie == "" {
		return "", lcerrors.Newf(lcerrors.MissingCsrfToken, "empty cookie")
	}
	return cookie, nil
}

func (p *Prompter) readLine(prompt string, mask bool) (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:     prompt,
		Stdin:      p.in,
		Stdout:     p.out,
		EnableMask: mask,
	})
	if err != nil {
		return "", fmt.Errorf("open prompt: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", lcerrors.Newf(lcerrors.InvalidChoice, "Failed to read input!")
	}
	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}
	return line, nil
}

// Menu renders options as "i: option" lines with an example answer.
func Menu(prompt string, options []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s :\n", prompt)
	for i, o := range options {
		fmt.Fprintf(&b, "%d: %s\n", i, o)
	}
	if len(options) > 0 {
		fmt.Fprintf(&b, "\nFor example : Input \"0\" for %s\n", options[0])
	}
	return b.String()
}

// ParseChoice reads a 0-based option index.
func ParseChoice(line string, n int) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || idx < 0 || idx >= n {
		return 0, lcerrors.Newf(lcerrors.InvalidChoice, "Invalid input! %q is not one of the options", strings.TrimSpace(line))
	}
	return idx, nil
}

func FilenameOrDefault(line, def string) string {
	if name := strings.TrimSpace(line); name != "" {
		return name
	}
	return def
}
