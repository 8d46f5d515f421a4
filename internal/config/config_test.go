package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  address: ":9090"
logger:
  level: "debug"
neo4j:
  uri: "bolt://db:7687"
  username: "neo4j"
  password: "secret"
  database: "legis"
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "bolt://db:7687", cfg.Neo4j.Uri)
	assert.Equal(t, "legis", cfg.Neo4j.Database)
}

func TestLoadConfigDefaultAddress(t *testing.T) {
	path := writeConfig(t, `
neo4j:
  uri: "bolt://db:7687"
  username: "neo4j"
  password: "secret"
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("NEO4J_PASSWORD", "from-env")
	path := writeConfig(t, `
neo4j:
  uri: "bolt://db:7687"
  username: "neo4j"
  password: "from-file"
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Neo4j.Password)
}

func TestLoadConfigMissingConnection(t *testing.T) {
	path := writeConfig(t, `
server:
  address: ":8080"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
