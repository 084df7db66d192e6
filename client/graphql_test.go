package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
)

func TestGraphqlRequestEncodesVariablesAsString(t *testing.T) {
	req, err := NewGraphqlRequest(questionContentQuery, titleSlugVariables{TitleSlug: "two-sum"})
	require.NoError(t, err)

	b, err := json.Marshal(req)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(b, &wire))
	require.Equal(t, `{"titleSlug":"two-sum"}`, wire["variables"])
	require.Equal(t, questionContentQuery, wire["query"])

	empty, err := NewGraphqlRequest(questionOfTodayQuery, nil)
	require.NoError(t, err)
	require.Equal(t, "{}", empty.Variables)
}

func graphqlServer(t *testing.T, reply string) *Session {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/graphql", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = io.Copy(io.Discard, r.Body)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	sess, err := New(WithBaseURL(srv.URL)).Authenticate("csrftoken=x")
	require.NoError(t, err)
	return sess
}

func TestQuestionMetadataDecodesEnvelope(t *testing.T) {
	sess := graphqlServer(t, `{"data":{"question":{"questionId":"1","questionFrontendId":"1","questionTitle":"Two Sum","enableRunCode":true,"enableSubmit":true,"enableTestMode":false,"exampleTestcaseList":["[2,7,11,15]\n9"],"metaData":"{}"}}}`)

	q, err := sess.QuestionMetadata(context.Background(), "two-sum")
	require.NoError(t, err)
	require.Equal(t, "1", q.QuestionID)
	require.True(t, q.EnableSubmit)
	require.False(t, q.EnableTestMode)
	require.Equal(t, []string{"[2,7,11,15]\n9"}, q.ExampleTestcaseList)
}

func TestQuestionMetadataMissingQuestion(t *testing.T) {
	sess := graphqlServer(t, `{"data":{"question":null}}`)
	_, err := sess.QuestionMetadata(context.Background(), "nope")
	require.True(t, lcerrors.Is(err, lcerrors.Decode))
}

func TestQuestionMetadataMalformed(t *testing.T) {
	sess := graphqlServer(t, `{"data":{"question":{"questionId":1}}}`)
	_, err := sess.QuestionMetadata(context.Background(), "two-sum")
	require.True(t, lcerrors.Is(err, lcerrors.Decode))
}

func TestDailyChallenge(t *testing.T) {
	sess := graphqlServer(t, `{"data":{"activeDailyCodingChallengeQuestion":{"date":"2026-10-17","link":"/problems/two-sum/","question":{"title":"Two Sum","titleSlug":"two-sum","difficulty":"Easy","topicTags":[{"name":"Array","id":"1","slug":"array"}]}}}}`)

	daily, err := sess.DailyChallenge(context.Background())
	require.NoError(t, err)
	require.Equal(t, "two-sum", daily.Question.TitleSlug)
	require.Equal(t, "array", daily.Question.TopicTags[0].Slug)
}

func TestQuestionContentAndEditorData(t *testing.T) {
	sess := graphqlServer(t, `{"data":{"question":{"content":"<p>Given</p>","mysqlSchemas":[],"questionId":"1","codeSnippets":[{"lang":"C++","langSlug":"cpp","code":"class Solution {};"}]}}}`)

	content, err := sess.QuestionContent(context.Background(), "two-sum")
	require.NoError(t, err)
	require.Equal(t, "<p>Given</p>", content.Content)

	editor, err := sess.QuestionEditorData(context.Background(), "two-sum")
	require.NoError(t, err)
	require.Len(t, editor.SupportedSnippets(), 1)
	require.Equal(t, Cpp, editor.CodeSnippets[0].LangSlug)
}
