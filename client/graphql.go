package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
)

const (
	consolePanelConfigQuery = "\n query consolePanelConfig($titleSlug: String!) {\n question(titleSlug: $titleSlug) {\n questionId\n questionFrontendId\n questionTitle\n enableDebugger\n enableRunCode\n enableSubmit\n enableTestMode\n exampleTestcaseList\n metaData\n }\n}\n"

	questionContentQuery = "query questionContent($titleSlug: String!) { question(titleSlug: $titleSlug) { content mysqlSchemas }}"

	questionEditorDataQuery = "\n query questionEditorData($titleSlug: String!) {\n  question(titleSlug: $titleSlug) {\n questionId\n questionFrontendId\n codeSnippets {\n   lang\n   langSlug\n   code\n }\n envInfo\n enableRunCode\n  }\n}\n "

	questionOfTodayQuery = "\n query questionOfToday {\n  activeDailyCodingChallengeQuestion {\n date\n userStatus\n link\n question {\n   acRate\n   difficulty\n   freqBar\n   frontendQuestionId: questionFrontendId\n   isFavor\n   paidOnly: isPaidOnly\n   status\n   title\n   titleSlug\n   hasVideoSolution\n   hasSolution\n   topicTags {\n  name\n  id\n  slug\n   }\n }\n  }\n}\n "
)

// GraphqlRequest is the body of every structured query. Variables travel as
// JSON text, not as a nested object.
type GraphqlRequest struct {
	Query     string `json:"query"`
	Variables string `json:"variables"`
}

type titleSlugVariables struct {
	TitleSlug string `json:"titleSlug"`
}

// NewGraphqlRequest encodes variables into their string form.
func NewGraphqlRequest(query string, variables any) (GraphqlRequest, error) {
	if variables == nil {
		return GraphqlRequest{Query: query, Variables: "{}"}, nil
	}
	b, err := json.Marshal(variables)
	if err != nil {
		return GraphqlRequest{}, fmt.Errorf("marshal graphql variables: %w", err)
	}
	return GraphqlRequest{Query: query, Variables: string(b)}, nil
}

// Question is the console panel metadata of a problem.
type Question struct {
	QuestionID          string   `json:"questionId"`
	QuestionFrontendID  string   `json:"questionFrontendId"`
	QuestionTitle       string   `json:"questionTitle"`
	EnableDebugger      bool     `json:"enableDebugger"`
	EnableRunCode       bool     `json:"enableRunCode"`
	EnableSubmit        bool     `json:"enableSubmit"`
	EnableTestMode      bool     `json:"enableTestMode"`
	ExampleTestcaseList []string `json:"exampleTestcaseList"`
	MetaData            string   `json:"metaData"`
}

// QuestionContent is the problem statement as served by the judge.
type QuestionContent struct {
	Content      string   `json:"content"`
	MysqlSchemas []string `json:"mysqlSchemas"`
}

// BoilerPlateCode is a starter snippet for one language.
type BoilerPlateCode struct {
	Lang     string   `json:"lang"`
	LangSlug Language `json:"langSlug"`
	Code     string   `json:"code"`
}

// QuestionEditorData carries the starter code of a problem.
type QuestionEditorData struct {
	QuestionID         string            `json:"questionId"`
	QuestionFrontendID string            `json:"questionFrontendId"`
	CodeSnippets       []BoilerPlateCode `json:"codeSnippets"`
	EnableRunCode      bool              `json:"enableRunCode"`
}

// SupportedSnippets drops snippets in languages the judge client cannot run.
func (d *QuestionEditorData) SupportedSnippets() []BoilerPlateCode {
	out := make([]BoilerPlateCode, 0, len(d.CodeSnippets))
	for _, s := range d.CodeSnippets {
		if s.LangSlug.Supported() {
			out = append(out, s)
		}
	}
	return out
}

// TopicTag is a problem category such as "Array".
type TopicTag struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Slug string `json:"slug"`
}

// DailyQuestion summarises the daily challenge problem.
type DailyQuestion struct {
	AcRate             float64    `json:"acRate"`
	Difficulty         string     `json:"difficulty"`
	FrontendQuestionID string     `json:"frontendQuestionId"`
	PaidOnly           bool       `json:"paidOnly"`
	Status             *string    `json:"status"`
	Title              string     `json:"title"`
	TitleSlug          string     `json:"titleSlug"`
	HasVideoSolution   bool       `json:"hasVideoSolution"`
	HasSolution        bool       `json:"hasSolution"`
	TopicTags          []TopicTag `json:"topicTags"`
}

// DailyChallenge is today's featured problem.
type DailyChallenge struct {
	Date       string        `json:"date"`
	UserStatus string        `json:"userStatus"`
	Link       string        `json:"link"`
	Question   DailyQuestion `json:"question"`
}

// UserStatus is the subset of /api/problems/all/ used to confirm a cookie.
type UserStatus struct {
	UserName  string `json:"user_name"`
	NumSolved int    `json:"num_solved"`
	NumTotal  int    `json:"num_total"`
	AcEasy    int    `json:"ac_easy"`
	AcMedium  int    `json:"ac_medium"`
	AcHard    int    `json:"ac_hard"`
	IsPaid    *bool  `json:"is_paid"`
}

// QuestionMetadata fetches the console panel config of a problem. Each call
// is one round trip; nothing is cached.
func (s *Session) QuestionMetadata(ctx context.Context, titleSlug string) (*Question, error) {
	var out struct {
		Data struct {
			Question *Question `json:"question"`
		} `json:"data"`
	}
	if err := s.graphql(ctx, consolePanelConfigQuery, titleSlugVariables{TitleSlug: titleSlug}, &out); err != nil {
		return nil, err
	}
	if out.Data.Question == nil {
		return nil, lcerrors.Newf(lcerrors.Decode, "question %q not found", titleSlug)
	}
	return out.Data.Question, nil
}

// QuestionContent fetches the HTML statement of a problem.
func (s *Session) QuestionContent(ctx context.Context, titleSlug string) (*QuestionContent, error) {
	var out struct {
		Data struct {
			Question *QuestionContent `json:"question"`
		} `json:"data"`
	}
	if err := s.graphql(ctx, questionContentQuery, titleSlugVariables{TitleSlug: titleSlug}, &out); err != nil {
		return nil, err
	}
	if out.Data.Question == nil {
		return nil, lcerrors.Newf(lcerrors.Decode, "question %q not found", titleSlug)
	}
	return out.Data.Question, nil
}

// QuestionEditorData fetches the starter code of a problem.
func (s *Session) QuestionEditorData(ctx context.Context, titleSlug string) (*QuestionEditorData, error) {
	var out struct {
		Data struct {
			Question *QuestionEditorData `json:"question"`
		} `json:"data"`
	}
	if err := s.graphql(ctx, questionEditorDataQuery, titleSlugVariables{TitleSlug: titleSlug}, &out); err != nil {
		return nil, err
	}
	if out.Data.Question == nil {
		return nil, lcerrors.Newf(lcerrors.Decode, "question %q not found", titleSlug)
	}
	return out.Data.Question, nil
}

// DailyChallenge fetches today's challenge.
func (s *Session) DailyChallenge(ctx context.Context) (*DailyChallenge, error) {
	var out struct {
		Data struct {
			Active *DailyChallenge `json:"activeDailyCodingChallengeQuestion"`
		} `json:"data"`
	}
	if err := s.graphql(ctx, questionOfTodayQuery, nil, &out); err != nil {
		return nil, err
	}
	if out.Data.Active == nil {
		return nil, lcerrors.Newf(lcerrors.Decode, "Failed to parse daily challenge!")
	}
	return out.Data.Active, nil
}

// UserStatus confirms the cookie belongs to a signed-in user.
func (s *Session) UserStatus(ctx context.Context) (*UserStatus, error) {
	var out UserStatus
	if err := s.doJSON(ctx, http.MethodGet, "/api/problems/all/", nil, &out); err != nil {
		return nil, err
	}
	if out.UserName == "" {
		return nil, lcerrors.Newf(lcerrors.Decode, "Cookie invalid. Renew cookies")
	}
	return &out, nil
}

func (s *Session) graphql(ctx context.Context, query string, variables any, out any) error {
	req, err := NewGraphqlRequest(query, variables)
	if err != nil {
		return err
	}
	return s.doJSON(ctx, http.MethodPost, "/graphql", req, out)
}

// doJSON sends body as JSON and decodes the response into out. Transport
// failures are Network errors; anything that is not the expected JSON is a
// Decode error.
func (s *Session) doJSON(ctx context.Context, method, path string, body any, out any) error {
	raw, err := s.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return lcerrors.Wrap(err, lcerrors.Decode)
	}
	return nil
}

func (s *Session) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return nil, lcerrors.Wrap(err, lcerrors.Network)
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, lcerrors.Wrap(err, lcerrors.Network)
	}
	if res.StatusCode != http.StatusOK {
		// an expired cookie or a renamed endpoint, neither is worth retrying
		return nil, lcerrors.Wrap(fmt.Errorf("HTTP %d - %s", res.StatusCode, truncate(raw, 200)), lcerrors.Decode)
	}
	return raw, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
