package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for ReadAuthToken:
// - Primary config with a token returns it
// - Only the legacy config populated returns its token
// - Both paths absent returns "" without error
// - Malformed primary config returns "" (no fallback to legacy)
// - Primary config without the nested field returns ""

func tokenPaths(t *testing.T) Paths {
	t.Helper()
	base := t.TempDir()
	p := Paths{
		StateDir:     filepath.Join(base, ".openclaw"),
		LegacyConfig: filepath.Join(base, ".clawdbot", "clawdbot.json"),
	}
	require.NoError(t, p.EnsureStateDir())
	return p
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestReadAuthToken_Primary(t *testing.T) {
	t.Parallel()

	p := tokenPaths(t)
	writeConfig(t, p.GatewayConfigFile(), `{"gateway":{"auth":{"token":"secret-token"}}}`)

	assert.Equal(t, "secret-token", ReadAuthToken(p))
}

func TestReadAuthToken_LegacyFallback(t *testing.T) {
	t.Parallel()

	p := tokenPaths(t)
	writeConfig(t, p.LegacyConfig, `{"gateway":{"auth":{"token":"legacy-token"}}}`)

	assert.Equal(t, "legacy-token", ReadAuthToken(p))
}

func TestReadAuthToken_BothAbsent(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ReadAuthToken(tokenPaths(t)))
}

func TestReadAuthToken_MalformedPrimary(t *testing.T) {
	t.Parallel()

	p := tokenPaths(t)
	writeConfig(t, p.GatewayConfigFile(), `{not json`)
	// A legacy token must NOT be consulted when the primary file exists:
	// its presence, not its validity, selects it.
	writeConfig(t, p.LegacyConfig, `{"gateway":{"auth":{"token":"legacy-token"}}}`)

	assert.Empty(t, ReadAuthToken(p))
}

func TestReadAuthToken_MissingField(t *testing.T) {
	t.Parallel()

	p := tokenPaths(t)
	writeConfig(t, p.GatewayConfigFile(), `{"gateway":{"port":18789}}`)

	assert.Empty(t, ReadAuthToken(p))
}
