package client

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	lcerrors "github.com/VivekYadav7272/leetcode-runner-cli/internal/errors"
)

// DefaultBaseURL is the judge every request goes to unless overridden.
const DefaultBaseURL = "https://leetcode.com"

const (
	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/110.0.0.0 Safari/537.36"
	referer   = "https://leetcode.com/"

	// CsrfHeader echoes the anti-forgery token taken from the cookie.
	CsrfHeader = "x-csrftoken"
)

type options struct {
	baseURL     string
	httpClient  *http.Client
	logger      *zap.Logger
	pollTimeout time.Duration
	sink        TestcaseSink
	listener    StatusListener
}

// Option configures a Guest and the Session it authenticates into.
type Option func(*options)

// WithHTTPClient sets the client whose transport carries the requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithBaseURL points the session at another judge host.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithLogger sets where poll transitions and warnings are logged.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithPollTimeout bounds how long a job is polled. Zero keeps polling
// until the judge reports a final result.
func WithPollTimeout(d time.Duration) Option {
	return func(o *options) {
		o.pollTimeout = d
	}
}

// WithTestcaseSink replaces where default testcases are persisted.
func WithTestcaseSink(s TestcaseSink) Option {
	return func(o *options) {
		o.sink = s
	}
}

// Guest is an unauthenticated client. It can only turn into a Session.
type Guest struct {
	opts options
}

// New creates a Guest.
func New(opts ...Option) *Guest {
	o := options{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sink == nil {
		o.sink = FileSink("testcase.txt")
	}
	return &Guest{opts: o}
}

// Session is an authenticated client; every judge operation hangs off it.
// Its credentials never change after Authenticate returns.
type Session struct {
	baseURL     string
	httpClient  *http.Client
	logger      *zap.Logger
	pollTimeout time.Duration
	sink        TestcaseSink
	listener    StatusListener
	csrfToken   string
}

// Authenticate builds a Session from a browser cookie string. No request
// is made; a bad cookie only shows up on the first judge call.
func (g *Guest) Authenticate(cookie string) (*Session, error) {
	token, ok := CsrfToken(cookie)
	if !ok {
		return nil, lcerrors.New(lcerrors.MissingCsrfToken)
	}

	base := g.opts.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc := *g.opts.httpClient
	hc.Transport = &authTransport{
		base: base,
		headers: http.Header{
			"Cookie":     {cookie},
			"User-Agent": {userAgent},
			"Referer":    {referer},
			CsrfHeader:   {token},
		},
	}

	return &Session{
		baseURL:     g.opts.baseURL,
		httpClient:  &hc,
		logger:      g.opts.logger,
		pollTimeout: g.opts.pollTimeout,
		sink:        g.opts.sink,
		listener:    g.opts.listener,
		csrfToken:   token,
	}, nil
}

// CsrfToken extracts the csrftoken value from a semicolon separated cookie.
func CsrfToken(cookie string) (string, bool) {
	for _, part := range strings.Split(cookie, ";") {
		if !strings.Contains(part, "csrftoken") {
			continue
		}
		idx := strings.LastIndex(part, "=")
		if idx < 0 {
			return "", false
		}
		token := strings.TrimSpace(part[idx+1:])
		return token, token != ""
	}
	return "", false
}

// CsrfToken returns the token this session sends with every request.
func (s *Session) CsrfToken() string {
	return s.csrfToken
}

type authTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.headers {
		// http.Header.Set would canonicalise x-csrftoken
		req.Header[k] = v
	}
	return t.base.RoundTrip(req)
}
