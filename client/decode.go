package client

import (
	"encoding/json"
	"strings"

	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
)

// The judge has no discriminant field; the set of keys present decides
// what kind of payload it is.
type shape map[string]json.RawMessage

func (s shape) has(key string) bool {
	v, ok := s[key]
	return ok && string(v) != "null"
}

func (s shape) isTrue(key string) bool {
	var b bool
	return s.has(key) && json.Unmarshal(s[key], &b) == nil && b
}

func (s shape) str(key string) string {
	var v string
	if s.has(key) {
		_ = json.Unmarshal(s[key], &v)
	}
	return v
}

func (s shape) state() string {
	return s.str("state")
}

// limitExceeded matches "Time Limit Exceeded", "Memory Limit Exceeded" and
// "Output Limit Exceeded".
func (s shape) limitExceeded() bool {
	return strings.Contains(s.str("status_msg"), "Limit Exceeded") &&
		s.has("elapsed_time") && s.has("memory")
}

type shapeDecoder struct {
	kind   string
	match  func(shape) bool
	decode func([]byte) (Outcome, error)
}

// Evaluated top-down, first match wins. WrongTestcase precedes RuntimeError
// since it carries runtime_error too. A limit verdict may carry pass counts
// and a compare result, so its status_msg is checked before Success.
var shapeDecoders = []shapeDecoder{
	{
		kind: "pending",
		match: func(s shape) bool {
			return s.has("state") && s.state() != "SUCCESS"
		},
		decode: decodeAs[Pending],
	},
	{
		kind: "compile_error",
		match: func(s shape) bool {
			return s.has("compile_error") && s.has("full_compile_error")
		},
		decode: decodeAs[CompileError],
	},
	{
		kind: "wrong_testcase",
		match: func(s shape) bool {
			return s.isTrue("invalid_testcase") && s.has("runtime_error")
		},
		decode: decodeAs[WrongTestcase],
	},
	{
		kind: "runtime_error",
		match: func(s shape) bool {
			return s.has("runtime_error") && s.has("full_runtime_error") && s.has("std_output_list")
		},
		decode: decodeAs[RuntimeError],
	},
	{
		kind:   "limit_exceeded",
		match:  shape.limitExceeded,
		decode: decodeAs[LimitExceeded],
	},
	{
		kind: "success",
		match: func(s shape) bool {
			return s.has("compare_result") && s.has("total_testcases") &&
				s.has("elapsed_time") && s.has("memory")
		},
		decode: decodeSuccess,
	},
	{
		kind: "limit_exceeded",
		match: func(s shape) bool {
			return s.has("status_msg") && s.has("elapsed_time") && s.has("memory")
		},
		decode: decodeAs[LimitExceeded],
	},
}

// DecodeOutcome classifies a status payload.
func DecodeOutcome(raw []byte) (Outcome, error) {
	var s shape
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, lcerrors.Wrap(err, lcerrors.Decode)
	}
	for _, d := range shapeDecoders {
		if d.match(s) {
			return d.decode(raw)
		}
	}
	return nil, lcerrors.Newf(lcerrors.Decode, "unrecognised judge payload with fields [%s]", strings.Join(s.keys(), ", "))
}

func (s shape) keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

func decodeAs[T any, P interface {
	*T
	Outcome
}](raw []byte) (Outcome, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, lcerrors.Wrap(err, lcerrors.Decode)
	}
	return P(&v), nil
}

func decodeSuccess(raw []byte) (Outcome, error) {
	var s Success
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, lcerrors.Wrap(err, lcerrors.Decode)
	}
	if s.TotalCorrect == 0 && s.CompareResult != "" {
		s.TotalCorrect = strings.Count(s.CompareResult, "1")
	}
	if s.TotalTestcases == 0 {
		s.TotalTestcases = len(s.CompareResult)
	}
	return &s, nil
}
