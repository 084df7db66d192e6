package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
)

func TestCsrfToken(t *testing.T) {
	cases := []struct {
		cookie string
		want   string
		ok     bool
	}{
		{"csrftoken=abc", "abc", true},
		{"LEETCODE_SESSION=xyz; csrftoken=tok123; other=1", "tok123", true},
		{"a=b;csrftoken= spaced ;c=d", "spaced", true},
		{"LEETCODE_SESSION=xyz", "", false},
		{"csrftoken=", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := CsrfToken(tc.cookie)
		require.Equal(t, tc.ok, ok, tc.cookie)
		require.Equal(t, tc.want, got, tc.cookie)
	}
}

func TestAuthenticateMissingTokenMakesNoRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	sess, err := New(WithBaseURL(srv.URL)).Authenticate("LEETCODE_SESSION=xyz; theme=dark")
	require.Nil(t, sess)
	require.True(t, lcerrors.Is(err, lcerrors.MissingCsrfToken))
	require.Zero(t, hits.Load())
}

func TestSessionSendsAuthHeaders(t *testing.T) {
	cookie := "LEETCODE_SESSION=xyz; csrftoken=tok123"
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{"user_name":"alice","num_solved":3}`))
	}))
	defer srv.Close()

	sess, err := New(WithBaseURL(srv.URL)).Authenticate(cookie)
	require.NoError(t, err)
	require.Equal(t, "tok123", sess.CsrfToken())

	status, err := sess.UserStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, "alice", status.UserName)

	require.Equal(t, "tok123", got.Get("X-Csrftoken"))
	require.Equal(t, cookie, got.Get("Cookie"))
	require.Equal(t, userAgent, got.Get("User-Agent"))
	require.Equal(t, referer, got.Get("Referer"))
}

func TestUserStatusRejectsAnonymousCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user_name":""}`))
	}))
	defer srv.Close()

	sess, err := New(WithBaseURL(srv.URL)).Authenticate("csrftoken=x")
	require.NoError(t, err)

	_, err = sess.UserStatus(context.Background())
	require.True(t, lcerrors.Is(err, lcerrors.Decode))
}

func TestNonOKStatusIsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	sess, err := New(WithBaseURL(srv.URL)).Authenticate("csrftoken=x")
	require.NoError(t, err)

	_, err = sess.QuestionMetadata(context.Background(), "two-sum")
	require.True(t, lcerrors.Is(err, lcerrors.Decode))
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	sess, err := New(WithBaseURL(url)).Authenticate("csrftoken=x")
	require.NoError(t, err)

	_, err = sess.QuestionMetadata(context.Background(), "two-sum")
	require.True(t, lcerrors.Is(err, lcerrors.Network))
}
