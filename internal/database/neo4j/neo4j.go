package neo4j

import (
	"context"
	"fmt"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/phlegis/batasan-api/internal/config"
	"github.com/phlegis/batasan-api/internal/graph"
)

var (
	instance *Client
	once     sync.Once
	initErr  error
)

// Client wraps the Neo4j driver together with its configuration. The API is
// read-mostly: every query goes through a read session scoped to the call.
type Client struct {
	Driver neo4j.DriverWithContext
	Config *config.Neo4jConfig
}

// GetClient creates the process-wide Client on first use and returns the
// same instance afterwards. Connectivity is verified eagerly so a
// misconfigured deployment fails at startup rather than on the first
// request.
func GetClient(ctx context.Context, cfg *config.Neo4jConfig) (*Client, error) {
	once.Do(func() {
		auth := neo4j.BasicAuth(cfg.Username, cfg.Password, "")

		driver, err := neo4j.NewDriverWithContext(cfg.Uri, auth)
		if err != nil {
			initErr = fmt.Errorf("failed to create Neo4j driver: %w", err)
			return
		}

		if err := driver.VerifyConnectivity(ctx); err != nil {
			driver.Close(ctx)
			initErr = fmt.Errorf("failed to connect to Neo4j: %w", err)
			return
		}

		instance = &Client{Driver: driver, Config: cfg}
	})
	return instance, initErr
}

// Close shuts the driver down. Intended for process teardown.
func (c *Client) Close(ctx context.Context) error {
	if c.Driver == nil {
		return nil
	}
	return c.Driver.Close(ctx)
}

// HealthCheck reports whether the database is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.Driver.VerifyConnectivity(ctx)
}

// ReadQuery runs a Cypher read query in a session scoped to this call and
// returns the fully-buffered rows with engine-native values already
// normalized (nodes and relationships collapsed to their property bags,
// integer wrappers collapsed to plain integers).
func (c *Client) ReadQuery(ctx context.Context, cypher string, params map[string]any) ([]map[string]any, error) {
	session := c.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: c.Config.Database,
	})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, fmt.Errorf("failed to run Cypher read query: %w", err)
	}

	records, err := result.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect query results: %w", err)
	}

	rows := make([]map[string]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, graph.NormalizeRecord(record.AsMap()))
	}
	return rows, nil
}
