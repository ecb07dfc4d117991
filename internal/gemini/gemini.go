package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vektor-dev/googleai/internal/httpx"
	"github.com/vektor-dev/googleai/internal/provider"
)

const providerName = "googleai"

// Config carries a fully resolved credential plus transport settings. Key
// resolution happens above this layer; by the time a Provider exists there
// is exactly one key to present.
type Config struct {
	APIKey     string
	BaseURL    string
	APIPrefix  string
	Headers    map[string]string
	HTTPClient *http.Client

	MaxRetries int
	MinBackoff time.Duration
	MaxBackoff time.Duration
}

type Provider struct {
	cfg Config
}

func New(cfg Config) *Provider {
	return &Provider{cfg: cfg}
}

func (p *Provider) EmbedContent(ctx context.Context, req provider.ContentRequest) ([]float32, error) {
	if p.cfg.APIKey == "" {
		return nil, &provider.Error{Provider: providerName, Code: "config_error", Message: "API key is required", Retryable: false}
	}
	if req.Model == "" {
		return nil, &provider.Error{Provider: providerName, Code: "invalid_request", Message: "model is required", Retryable: false}
	}
	if len(req.Parts) == 0 {
		return nil, &provider.Error{Provider: providerName, Code: "invalid_request", Message: "document has no text parts", Retryable: false}
	}

	parts := make([]part, len(req.Parts))
	for i, text := range req.Parts {
		parts[i] = part{Text: text}
	}
	body, err := json.Marshal(embedContentRequest{
		Content:              content{Role: "", Parts: parts},
		TaskType:             req.TaskType,
		Title:                req.Title,
		OutputDimensionality: req.OutputDimensionality,
	})
	if err != nil {
		return nil, &provider.Error{Provider: providerName, Code: "marshal_error", Message: err.Error(), Retryable: false, Cause: err}
	}

	u, err := embedContentURL(p.cfg, req.Model)
	if err != nil {
		return nil, &provider.Error{Provider: providerName, Code: "url_error", Message: err.Error(), Retryable: false, Cause: err}
	}

	h := make(http.Header)
	h.Set("x-goog-api-key", p.cfg.APIKey)
	for k, v := range p.cfg.Headers {
		h.Set(k, v)
	}
	for k, v := range req.Headers {
		h.Set(k, v)
	}

	maxRetries := p.cfg.MaxRetries
	if req.MaxRetries != nil {
		maxRetries = *req.MaxRetries
	}
	resp, err := httpx.DoJSON(ctx, p.cfg.HTTPClient, http.MethodPost, u, body, h, httpx.RetryPolicy{
		MaxRetries: maxRetries,
		MinBackoff: p.cfg.MinBackoff,
		MaxBackoff: p.cfg.MaxBackoff,
	})
	if err != nil {
		code, retryable := classifyNetworkErr(err)
		return nil, &provider.Error{Provider: providerName, Code: code, Message: err.Error(), Retryable: retryable, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		var er errorResponse
		if json.Unmarshal(b, &er) == nil && er.Error.Message != "" {
			return nil, &provider.Error{
				Provider:  providerName,
				Code:      statusCode(er.Error.Status),
				Status:    resp.StatusCode,
				Message:   er.Error.Message,
				Retryable: shouldRetryStatus(resp.StatusCode),
			}
		}
		return nil, &provider.Error{
			Provider:  providerName,
			Code:      "http_error",
			Status:    resp.StatusCode,
			Message:   strings.TrimSpace(string(b)),
			Retryable: shouldRetryStatus(resp.StatusCode),
		}
	}

	var out embedContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &provider.Error{Provider: providerName, Code: "decode_error", Message: err.Error(), Retryable: false, Cause: err}
	}
	if out.Embedding == nil {
		return nil, &provider.Error{Provider: providerName, Code: "invalid_response", Message: "response has no embedding", Retryable: false}
	}
	return out.Embedding.Values, nil
}

func embedContentURL(cfg Config, model string) (string, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	prefix := strings.TrimRight(cfg.APIPrefix, "/")
	u, err := url.Parse(base + prefix + "/models/" + model + ":embedContent")
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func shouldRetryStatus(status int) bool {
	return status == http.StatusRequestTimeout ||
		status == http.StatusTooManyRequests ||
		(status >= 500 && status <= 599)
}

// statusCode lowers the Google error envelope status ("INVALID_ARGUMENT",
// "PERMISSION_DENIED", ...) into the library's error-code convention.
func statusCode(status string) string {
	if status == "" {
		return "http_error"
	}
	return strings.ToLower(status)
}

func classifyNetworkErr(err error) (code string, retryable bool) {
	if err == nil {
		return "network_error", false
	}
	if errors.Is(err, context.Canceled) {
		return "canceled", false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout", true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return "timeout", true
	}
	return "network_error", true
}

var _ provider.EmbeddingProvider = (*Provider)(nil)
