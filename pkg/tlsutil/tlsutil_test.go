package tlsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerTLSConfig_MissingFiles(t *testing.T) {
	_, err := ServerTLSConfig("/nonexistent/server.crt", "/nonexistent/server.key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load server key pair")
}

func TestClientTLSConfig(t *testing.T) {
	t.Run("system CA pool", func(t *testing.T) {
		creds, err := ClientTLSConfig("", false)
		require.NoError(t, err)
		assert.NotNil(t, creds)
	})

	t.Run("skip verify for development", func(t *testing.T) {
		creds, err := ClientTLSConfig("", true)
		require.NoError(t, err)
		assert.NotNil(t, creds)
	})

	t.Run("missing CA file", func(t *testing.T) {
		_, err := ClientTLSConfig("/nonexistent/ca.pem", false)
		require.Error(t, err)
	})

	t.Run("malformed CA file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ca.pem")
		require.NoError(t, os.WriteFile(path, []byte("not a certificate"), 0o600))

		_, err := ClientTLSConfig(path, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse CA certificate")
	})
}
