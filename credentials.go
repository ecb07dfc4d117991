package googleai

import (
	"os"
	"strings"
)

// Environment variables consulted for a default credential, in precedence
// order. Evaluated lazily: only when neither the call nor the client config
// supplied a key.
var apiKeyEnvVars = []string{
	"GEMINI_API_KEY",
	"GOOGLE_API_KEY",
	"GOOGLE_GENAI_API_KEY",
}

// resolveAPIKey picks the credential for one call. Precedence: call-time key,
// then Config.APIKey, then the environment chain. RequireKeyPerCall cuts the
// chain after the call-time key. Resolution is computed fresh per call; a
// failure here means no request is dispatched.
func resolveAPIKey(callKey string, cfg Config) (string, error) {
	if callKey != "" {
		return callKey, nil
	}
	if cfg.RequireKeyPerCall {
		return "", &Error{
			Provider: ProviderName,
			Code:     CodeInvalidArgument,
			Message:  "client was initialized with no default API key; a call-time EmbedOptions.APIKey is required",
		}
	}
	if cfg.APIKey != "" {
		return cfg.APIKey, nil
	}
	for _, name := range apiKeyEnvVars {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}
	return "", &Error{
		Provider: ProviderName,
		Code:     CodeMissingAPIKey,
		Message:  "no API key found; set Config.APIKey, EmbedOptions.APIKey, or one of " + strings.Join(apiKeyEnvVars, ", "),
	}
}
