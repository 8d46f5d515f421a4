package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Address string `yaml:"address"` // listen address, e.g. ":8080"
}

// LoggerConfig holds the logging settings.
type LoggerConfig struct {
	Level string `yaml:"level"` // logrus level name, e.g. "info"
}

// Neo4jConfig holds the graph database connection settings.
type Neo4jConfig struct {
	Uri      string `yaml:"uri"`      // bolt/neo4j URI, e.g. "bolt://localhost:7687"
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// AppConfig is the root of config.yaml.
type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	Logger LoggerConfig `yaml:"logger"`
	Neo4j  Neo4jConfig  `yaml:"neo4j"`
}

// LoadConfig reads and parses the YAML configuration file at the given path.
// Environment variables NEO4J_URI, NEO4J_USERNAME and NEO4J_PASSWORD, when
// set, override the file values so deployments can avoid committing
// credentials.
func LoadConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if v := os.Getenv("NEO4J_URI"); v != "" {
		cfg.Neo4j.Uri = v
	}
	if v := os.Getenv("NEO4J_USERNAME"); v != "" {
		cfg.Neo4j.Username = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		cfg.Neo4j.Password = v
	}

	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Neo4j.Uri == "" || cfg.Neo4j.Username == "" || cfg.Neo4j.Password == "" {
		return nil, fmt.Errorf("missing Neo4j connection settings (uri/username/password)")
	}

	return &cfg, nil
}
