package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VivekYadav7272/leetcode-runner-cli/client"
	"github.com/VivekYadav7272/leetcode-runner-cli/ui/messages"
)

func TestRendererPrintsProgress(t *testing.T) {
	var out bytes.Buffer
	ch := make(chan messages.Msg, 4)
	finish := StartRenderer(&out, ch)

	ch <- messages.StartJobMsg{Kind: client.SubmissionJob, Title: "two-sum"}
	ch <- messages.FromEvent(client.StatusEvent{Kind: client.SubmissionJob, State: client.StatePending})
	ch <- messages.FromEvent(client.StatusEvent{Kind: client.SubmissionJob, State: client.StateUnknown, JudgeState: "QUEUED"})
	finish()

	got := out.String()
	assert.Contains(t, got, "Submitting: two-sum")
	assert.Contains(t, got, "Evaluation Pending")
	assert.Contains(t, got, "QUEUED (unrecognised")
}

func TestOutcomeSuccess(t *testing.T) {
	s := &client.Success{
		CodeAnswer:          client.StringList{"[0,1]", "[1,2]"},
		ExpectedCodeAnswer:  client.StringList{"[0,1]", "[0,2]"},
		StdOutput:           client.StringList{"", "debug"},
		CompareResult:       "10",
		TotalCorrect:        1,
		TotalTestcases:      2,
		StatusRuntime:       "4 ms",
		StatusMemory:        "10.1 MB",
		ElapsedTime:         500,
		ExpectedElapsedTime: 100,
		Memory:              100,
		ExpectedMemory:      200,
	}
	got := Outcome(s)

	assert.Contains(t, got, "Testcase 1/2 testcase passed")
	assert.Contains(t, got, "Testcase 1 execution success")
	assert.Contains(t, got, "Testcase 2 execution failed")
	assert.Contains(t, got, `Expected  : "[0,2]"`)
	assert.Contains(t, got, "Std Output :\ndebug")
	assert.Contains(t, got, "4 ms")
	assert.Contains(t, got, "May lead to TLE")
	assert.Contains(t, got, "(50%)")
	assert.Contains(t, got, "Testcase execution failed")
	assert.False(t, Passed(s))

	s.CompareResult = "11"
	s.ElapsedTime = 10
	got = Outcome(s)
	assert.NotContains(t, got, "May lead to TLE")
	assert.True(t, Passed(s))
}

func TestOutcomeErrors(t *testing.T) {
	re := Outcome(&client.RuntimeError{
		RuntimeError: "IndexError",
		StdOutput:    client.StringList{"", "", ""},
	})
	assert.Contains(t, re, "Runtime Error!")
	assert.Contains(t, re, "3")
	assert.Contains(t, re, "IndexError")

	ce := Outcome(&client.CompileError{CompileError: "Line 3: expected ';'"})
	assert.Contains(t, ce, "Compilation Error!")
	assert.Contains(t, ce, "Error Message : Line 3: expected ';'")

	wt := Outcome(&client.WrongTestcase{InvalidTestcase: true, RuntimeError: "bad input"})
	assert.Contains(t, wt, "Invalid Testcase!")

	correct, total := 3, 10
	le := Outcome(&client.LimitExceeded{StatusMsg: "Time Limit Exceeded", ElapsedTime: 2100, TotalCorrect: &correct, TotalTestcases: &total})
	require.Contains(t, le, "Time Limit Exceeded")
	assert.Contains(t, le, "Time Elapsed : 2100")
	assert.Contains(t, le, "Passed : 3/10")
	assert.False(t, Passed(&client.LimitExceeded{}))
}
