package googleai

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"testing"
)

type recordedRequest struct {
	Method string
	URL    *url.URL
	Header http.Header
	Body   []byte
}

// fakeTransport records every outbound request and lets each test decide the
// response per call index. It stands in for the real HTTP transport via
// Config.HTTPClient.
type fakeTransport struct {
	mu sync.Mutex

	requests []recordedRequest

	respond func(call int, req recordedRequest) (*http.Response, error)
}

func (t *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
		req.Body.Close()
	}
	t.mu.Lock()
	rec := recordedRequest{
		Method: req.Method,
		URL:    req.URL,
		Header: req.Header.Clone(),
		Body:   body,
	}
	t.requests = append(t.requests, rec)
	call := len(t.requests) - 1
	respond := t.respond
	t.mu.Unlock()

	if respond == nil {
		return jsonResponse(http.StatusOK, `{"embedding":{"values":[0]}}`), nil
	}
	return respond(call, rec)
}

func (t *fakeTransport) Requests() []recordedRequest {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]recordedRequest, len(t.requests))
	copy(out, t.requests)
	return out
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newTestClient(t *testing.T, ft *fakeTransport, cfg Config) *Client {
	t.Helper()
	cfg.HTTPClient = &http.Client{Transport: ft}
	return NewClient(cfg)
}

// clearKeyEnv blanks the credential environment chain so tests control
// exactly which sources are populated.
func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, name := range apiKeyEnvVars {
		t.Setenv(name, "")
	}
}
