package client

import (
	"encoding/json"
	"strings"
)

// Outcome is what the judge reports for a job. The set of variants is
// closed: Pending, CompileError, RuntimeError, WrongTestcase, LimitExceeded
// and Success.
type Outcome interface {
	// Kind names the variant for logs.
	Kind() string
	isOutcome()
}

// Pending means the job is still queued or running.
type Pending struct {
	State string `json:"state"`
}

type CompileError struct {
	CompileError     string     `json:"compile_error"`
	FullCompileError string     `json:"full_compile_error"`
	StdOutput        StringList `json:"std_output_list"`
	StatusMsg        string     `json:"status_msg"`
}

// RuntimeError is a crash on a specific test case.
type RuntimeError struct {
	RuntimeError     string     `json:"runtime_error"`
	FullRuntimeError string     `json:"full_runtime_error"`
	StdOutput        StringList `json:"std_output_list"`
	LastTestcase     string     `json:"last_testcase"`
	StatusMsg        string     `json:"status_msg"`
}

// FailedTestcase is the 1-based index of the crashing case: the judge emits
// one stdout entry per case it reached.
func (r *RuntimeError) FailedTestcase() int {
	return len(r.StdOutput)
}

// WrongTestcase means the custom input itself was rejected.
type WrongTestcase struct {
	InvalidTestcase bool   `json:"invalid_testcase"`
	RuntimeError    string `json:"runtime_error"`
}

// LimitExceeded is a time, memory or output limit violation.
type LimitExceeded struct {
	StatusCode     int        `json:"status_code"`
	Lang           string     `json:"lang"`
	RunSuccess     bool       `json:"run_success"`
	StatusRuntime  string     `json:"status_runtime"`
	Memory         int64      `json:"memory"`
	CodeAnswer     StringList `json:"code_answer"`
	CodeOutput     StringList `json:"code_output"`
	StdOutput      StringList `json:"std_output_list"`
	ElapsedTime    int64      `json:"elapsed_time"`
	TaskFinishTime int64      `json:"task_finish_time"`
	TotalCorrect   *int       `json:"total_correct"`
	TotalTestcases *int       `json:"total_testcases"`
	StatusMemory   string     `json:"status_memory"`
	SubmissionID   string     `json:"submission_id"`
	StatusMsg      string     `json:"status_msg"`
	State          string     `json:"state"`
	LastTestcase   string     `json:"last_testcase"`
}

// Success is a completed run with per-case comparison against the judge's
// reference solution. It may still contain failed cases.
type Success struct {
	StatusCode            int        `json:"status_code"`
	Lang                  string     `json:"lang"`
	RunSuccess            bool       `json:"run_success"`
	StatusRuntime         string     `json:"status_runtime"`
	Memory                int64      `json:"memory"`
	CodeAnswer            StringList `json:"code_answer"`
	CodeOutput            StringList `json:"code_output"`
	StdOutput             StringList `json:"std_output_list"`
	ElapsedTime           int64      `json:"elapsed_time"`
	TaskFinishTime        int64      `json:"task_finish_time"`
	ExpectedStatusCode    int        `json:"expected_status_code"`
	ExpectedLang          string     `json:"expected_lang"`
	ExpectedRunSuccess    bool       `json:"expected_run_success"`
	ExpectedStatusRuntime string     `json:"expected_status_runtime"`
	ExpectedMemory        int64      `json:"expected_memory"`
	ExpectedCodeAnswer    StringList `json:"expected_code_answer"`
	ExpectedCodeOutput    StringList `json:"expected_code_output"`
	ExpectedStdOutput     StringList `json:"expected_std_output_list"`
	ExpectedElapsedTime   int64      `json:"expected_elapsed_time"`
	ExpectedTaskFinish    int64      `json:"expected_task_finish_time"`
	JudgeCorrectAnswer    bool       `json:"correct_answer"`
	CompareResult         string     `json:"compare_result"`
	TotalCorrect          int        `json:"total_correct"`
	TotalTestcases        int        `json:"total_testcases"`
	StatusMemory          string     `json:"status_memory"`
	SubmissionID          string     `json:"submission_id"`
	StatusMsg             string     `json:"status_msg"`
	State                 string     `json:"state"`
}

// CorrectAnswer is true only when every case in the compare result passed.
func (s *Success) CorrectAnswer() bool {
	if s.CompareResult == "" {
		return false
	}
	return strings.Trim(s.CompareResult, "1") == ""
}

// CasePassed reports the i-th (0-based) compare result bit.
func (s *Success) CasePassed(i int) bool {
	return i >= 0 && i < len(s.CompareResult) && s.CompareResult[i] == '1'
}

func (*Pending) Kind() string       { return "pending" }
func (*CompileError) Kind() string  { return "compile_error" }
func (*RuntimeError) Kind() string  { return "runtime_error" }
func (*WrongTestcase) Kind() string { return "wrong_testcase" }
func (*LimitExceeded) Kind() string { return "limit_exceeded" }
func (*Success) Kind() string       { return "success" }

func (*Pending) isOutcome()       {}
func (*CompileError) isOutcome()  {}
func (*RuntimeError) isOutcome()  {}
func (*WrongTestcase) isOutcome() {}
func (*LimitExceeded) isOutcome() {}
func (*Success) isOutcome()       {}

// ExecutionResult is the final outcome of a run against test input.
type ExecutionResult struct {
	Outcome
}

// SubmissionResult is the final outcome of a graded submission. It never
// holds a WrongTestcase since no custom input is sent.
type SubmissionResult struct {
	Outcome
}

// StringList decodes either a JSON array of strings or a single string.
// Run results use arrays, graded submissions use plain strings.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = nil
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*l = list
	return nil
}
