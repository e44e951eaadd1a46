package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `api:
  environment: "test"
  port: "8080"
  jwt_signing_key: "test-key"
  allowed_cors_domains:
    - "http://localhost:3000"

gin:
  mode: "test"

postgres:
  host: "localhost"
  port: "5432"
  user: "missmister"
  password: "missmister"
  db: "missmister"
  ssl_mode: "disable"

voting:
  admin_password: "2025"
  deadline: "2026-01-31T23:59:59Z"
  token_ttl: "12h"
`

func writeTestConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "test", conf.API.Environment)
	assert.Equal(t, "8080", conf.API.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, "test", conf.Gin.Mode)
	assert.Equal(t, "localhost", conf.Postgres.Host)
	assert.Equal(t, "2025", conf.Voting.AdminPassword)
	assert.Equal(t, "2026-01-31T23:59:59Z", conf.Voting.Deadline)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
