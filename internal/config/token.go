package config

import (
	"encoding/json"
	"os"
)

// gatewayConfigFile mirrors the slice of openclaw.json the supervisor cares
// about: gateway.auth.token. Everything else in the file is the daemon's
// business.
type gatewayConfigFile struct {
	Gateway struct {
		Auth struct {
			Token string `json:"token"`
		} `json:"auth"`
	} `json:"gateway"`
}

// ReadAuthToken extracts the dashboard auth token from the gateway's config
// file, falling back to the legacy clawdbot location when the primary file is
// absent. The token is re-read from disk on every call because the daemon may
// rotate it independently.
//
// Returns "" when no token can be resolved. A missing file, unreadable file,
// malformed JSON, or absent field all degrade to "": an unauthenticated
// dashboard URL is an acceptable state, not an error.
func ReadAuthToken(p Paths) string {
	path := p.GatewayConfigFile()
	if _, err := os.Stat(path); err != nil {
		// Primary config absent: try the legacy location.
		path = p.LegacyConfig
		if _, err := os.Stat(path); err != nil {
			return ""
		}
	}
	return tokenFromFile(path)
}

func tokenFromFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var cfg gatewayConfigFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		return ""
	}
	return cfg.Gateway.Auth.Token
}
