package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
)

// JobKind tells which judge flow a job belongs to.
type JobKind string

const (
	ExecutionJob  JobKind = "execution"
	SubmissionJob JobKind = "submission"
)

// PollState is client-side bookkeeping of how far a job has progressed.
// It only ever moves forward within one polling loop.
type PollState int

const (
	StateSubmitted PollState = iota
	StatePending
	StateStarted
	StateUnknown
)

func (p PollState) String() string {
	switch p {
	case StateSubmitted:
		return "submitted"
	case StatePending:
		return "pending"
	case StateStarted:
		return "started"
	default:
		return "unknown"
	}
}

func pollStateOf(judgeState string) PollState {
	switch judgeState {
	case "PENDING":
		return StatePending
	case "STARTED":
		return StateStarted
	default:
		return StateUnknown
	}
}

// StatusEvent is published once per poll state transition.
type StatusEvent struct {
	Kind       JobKind
	JobID      string
	State      PollState
	JudgeState string
}

func (e StatusEvent) Message() string {
	switch e.State {
	case StatePending:
		if e.Kind == SubmissionJob {
			return "Evaluation Pending"
		}
		return "Pending"
	case StateStarted:
		return "Execution Started"
	default:
		return fmt.Sprintf("%s (unrecognised, kindly report this state to the maintainer)", e.JudgeState)
	}
}

// StatusListener receives poll state transitions, e.g. to print them.
type StatusListener func(StatusEvent)

// WithStatusListener registers a listener for poll state transitions.
func WithStatusListener(l StatusListener) Option {
	return func(o *options) {
		o.listener = l
	}
}

func checkPath(jobID string) string {
	return fmt.Sprintf("/submissions/detail/%s/check/", jobID)
}

// poll issues status checks back to back until the judge reports anything
// other than Pending. Transport and decode failures end the loop at once.
func (s *Session) poll(ctx context.Context, kind JobKind, jobID string) (Outcome, error) {
	log := s.logger.With(zap.String("job", string(kind)), zap.String("job_id", jobID))

	pollCtx := ctx
	if s.pollTimeout > 0 {
		var cancel context.CancelFunc
		pollCtx, cancel = context.WithTimeout(ctx, s.pollTimeout)
		defer cancel()
	}

	last := StateSubmitted
	for polls := 1; ; polls++ {
		if err := pollCtx.Err(); err != nil {
			return nil, s.pollAborted(ctx, err, polls-1)
		}

		raw, err := s.do(pollCtx, http.MethodGet, checkPath(jobID), nil)
		if err != nil {
			if pollCtx.Err() != nil {
				return nil, s.pollAborted(ctx, pollCtx.Err(), polls)
			}
			return nil, err
		}

		outcome, err := DecodeOutcome(raw)
		if err != nil {
			return nil, err
		}

		pending, ok := outcome.(*Pending)
		if !ok {
			log.Debug("job finished", zap.String("outcome", outcome.Kind()), zap.Int("polls", polls))
			return outcome, nil
		}

		next := pollStateOf(pending.State)
		if next <= last {
			continue
		}
		last = next

		event := StatusEvent{Kind: kind, JobID: jobID, State: next, JudgeState: pending.State}
		if next == StateUnknown {
			log.Warn("judge reported an unknown state, kindly report this state to the maintainer",
				zap.String("state", pending.State))
		} else {
			log.Info("status changed", zap.String("status", event.Message()))
		}
		if s.listener != nil {
			s.listener(event)
		}
	}
}

func (s *Session) pollAborted(parent context.Context, err error, polls int) error {
	if errors.Is(err, context.DeadlineExceeded) && parent.Err() == nil {
		return lcerrors.Newf(lcerrors.PollTimeout, "no final result after %s (%d status checks)", s.pollTimeout, polls)
	}
	return lcerrors.Wrap(err, lcerrors.Network)
}
