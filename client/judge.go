package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"

	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
)

// TestCaseExec is the body sent to run code against test input.
type TestCaseExec struct {
	Lang          string `json:"lang"`
	QuestionID    string `json:"question_id"`
	QuestionTitle string `json:"question_title"`
	TypedCode     string `json:"typed_code"`
	DataInput     string `json:"data_input"`
}

// SubmitCode is the body sent to grade a solution.
type SubmitCode struct {
	Lang       string `json:"lang"`
	QuestionID string `json:"question_id"`
	TypedCode  string `json:"typed_code"`
}

// TestcaseSink keeps a copy of the default testcases for the user to edit.
type TestcaseSink interface {
	SaveTestcases(input string) error
}

// FileSink writes testcases to a file path.
type FileSink string

func (f FileSink) SaveTestcases(input string) error {
	if err := os.WriteFile(string(f), []byte(input), 0o644); err != nil {
		return lcerrors.Wrapf(err, lcerrors.FileWrite, "Failed to write default testcases to %s", string(f))
	}
	return nil
}

// DefaultTestcases joins the example testcases the way the judge expects
// custom input.
func DefaultTestcases(q *Question) string {
	return strings.Join(q.ExampleTestcaseList, "\n")
}

// Execute runs code against input. With empty input the problem's example
// testcases are used and saved through the session's TestcaseSink.
func (s *Session) Execute(ctx context.Context, cf CodeFile, input string) (*ExecutionResult, error) {
	q, err := s.QuestionMetadata(ctx, cf.QuestionTitle)
	if err != nil {
		return nil, fmt.Errorf("fetch question metadata: %w", err)
	}
	if !q.EnableRunCode {
		return nil, lcerrors.Newf(lcerrors.FeatureDisabled, "running code is disabled for %s", cf.QuestionTitle)
	}

	if input == "" {
		input = DefaultTestcases(q)
		if err := s.sink.SaveTestcases(input); err != nil {
			s.logger.Warn("could not save default testcases", zap.Error(err))
		} else {
			s.logger.Info("wrote default testcases")
		}
	}

	body := TestCaseExec{
		Lang:          cf.Language.String(),
		QuestionID:    q.QuestionID,
		QuestionTitle: cf.QuestionTitle,
		TypedCode:     cf.Code,
		DataInput:     input,
	}
	var job struct {
		InterpretID string `json:"interpret_id"`
	}
	path := fmt.Sprintf("/problems/%s/interpret_solution/", cf.QuestionTitle)
	if err := s.doJSON(ctx, http.MethodPost, path, body, &job); err != nil {
		return nil, err
	}
	if job.InterpretID == "" {
		return nil, lcerrors.Newf(lcerrors.Decode, "no interpret_id in response. Try again after sometime or renew cookie")
	}

	s.logger.Info("executing testcases", zap.String("interpret_id", job.InterpretID))
	outcome, err := s.poll(ctx, ExecutionJob, job.InterpretID)
	if err != nil {
		return nil, err
	}
	return &ExecutionResult{Outcome: outcome}, nil
}

// Submit grades code against the full hidden test set.
func (s *Session) Submit(ctx context.Context, cf CodeFile) (*SubmissionResult, error) {
	q, err := s.QuestionMetadata(ctx, cf.QuestionTitle)
	if err != nil {
		return nil, fmt.Errorf("fetch question metadata: %w", err)
	}
	if !q.EnableSubmit {
		return nil, lcerrors.Newf(lcerrors.FeatureDisabled, "submitting is disabled for %s", cf.QuestionTitle)
	}

	body := SubmitCode{
		Lang:       cf.Language.String(),
		QuestionID: q.QuestionID,
		TypedCode:  cf.Code,
	}
	var job struct {
		SubmissionID json.Number `json:"submission_id"`
	}
	path := fmt.Sprintf("/problems/%s/submit/", cf.QuestionTitle)
	if err := s.doJSON(ctx, http.MethodPost, path, body, &job); err != nil {
		return nil, err
	}
	if job.SubmissionID == "" {
		return nil, lcerrors.Newf(lcerrors.Decode, "Failed to fetch submission id from leetcode! Check your submissions manually on leetcode")
	}

	s.logger.Info("evaluating solution", zap.String("submission_id", job.SubmissionID.String()))
	outcome, err := s.poll(ctx, SubmissionJob, job.SubmissionID.String())
	if err != nil {
		return nil, err
	}
	if _, ok := outcome.(*WrongTestcase); ok {
		return nil, lcerrors.Newf(lcerrors.Decode, "judge reported an invalid testcase for a submission")
	}
	return &SubmissionResult{Outcome: outcome}, nil
}
