// Package googleai is a small client for the Gemini API embedding endpoint.
// Configure a Client once (or rely on the package-level default), obtain an
// Embedder for a model, and embed documents. Credentials resolve per call
// from call options, client config, and the environment, in that order.
package googleai

import (
	"net/http"
	"sync/atomic"
	"time"
)

const ProviderName = "googleai"

type Config struct {
	// APIKey is the default credential. When empty, the environment
	// variables GEMINI_API_KEY, GOOGLE_API_KEY, and GOOGLE_GENAI_API_KEY
	// are consulted in that order at call time.
	APIKey string

	// RequireKeyPerCall disables the default key and all environment
	// fallback; every call must then supply EmbedOptions.APIKey.
	RequireKeyPerCall bool

	BaseURL   string
	APIPrefix string
	Headers   map[string]string

	// HTTPClient carries the transport used for every request. Tests
	// substitute one with a recording RoundTripper.
	HTTPClient *http.Client

	// MaxRetries defaults to 0: transport failures surface to the caller
	// on first occurrence unless retries are asked for.
	MaxRetries int
	MinBackoff time.Duration
	MaxBackoff time.Duration
}

type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	return &Client{cfg: normalizeConfig(cfg)}
}

var defaultClient atomic.Pointer[Client]

func init() {
	defaultClient.Store(NewClient(Config{}))
}

// Configure replaces the package-level default client.
func Configure(cfg Config) {
	defaultClient.Store(NewClient(cfg))
}

// NewEmbedder returns an embedding handle for modelName on the default
// client. The model name may be bare ("embedding-001") or
// namespace-qualified ("googleai/embedding-001").
func NewEmbedder(modelName string) *Embedder {
	return defaultClient.Load().Embedder(modelName)
}

func (c *Client) Embedder(modelName string) *Embedder {
	return &Embedder{
		client: c,
		model:  modelName,
	}
}

func (c *Client) Config() Config { return c.cfg }

func normalizeConfig(cfg Config) Config {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = "/v1beta"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.MinBackoff == 0 {
		cfg.MinBackoff = 250 * time.Millisecond
	}
	if cfg.MaxBackoff == 0 {
		cfg.MaxBackoff = 5 * time.Second
	}
	return cfg
}
