package database

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/ent/approvalrequest"
	"github.com/vigilops/vigil/ent/incident"
	"github.com/vigilops/vigil/test/util"
)

// newTestClient builds a client on a per-test schema, with the indexes and
// raw tables the Ent schema DSL cannot express.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()
	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, CreateGINIndexes(ctx, drv))
	require.NoError(t, CreatePartialUniqueIndexes(ctx, drv))
	require.NoError(t, CreateEventsTable(ctx, drv))

	return NewClientFromEnt(entClient, db)
}

func TestClientConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestFullTextSearchOverIncidents(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	crash, err := client.Incident.Create().
		SetID("inc-1").
		SetFingerprint("fp-1").
		SetAlertID("alert-1").
		SetSource(incident.SourcePagerduty).
		SetSeverity(incident.SeverityHigh).
		SetTitle("Pods crash looping in production payments cluster").
		SetService("payments").
		SetAlert(map[string]any{}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Incident.Create().
		SetID("inc-2").
		SetFingerprint("fp-2").
		SetAlertID("alert-2").
		SetSource(incident.SourceCloudwatch).
		SetSeverity(incident.SeverityMedium).
		SetTitle("High memory usage on checkout nodes").
		SetService("checkout").
		SetAlert(map[string]any{}).
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT incident_id FROM incidents
		WHERE to_tsvector('english', title) @@ to_tsquery('english', $1)`,
		"crash & production")
	require.NoError(t, err)
	defer rows.Close()

	var matched []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		matched = append(matched, id)
	}
	require.NoError(t, rows.Err())
	require.Len(t, matched, 1)
	assert.Equal(t, crash.ID, matched[0])
}

func TestPendingApprovalUniqueIndex(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	create := func(id string) error {
		return client.ApprovalRequest.Create().
			SetID(id).
			SetIncidentID("inc-1").
			SetActionIndex(0).
			SetCommandPreview("kubectl -n payments rollout restart deployment/api").
			SetRiskLevel(approvalrequest.RiskLevelMedium).
			SetConfidence(0.9).
			Exec(ctx)
	}

	require.NoError(t, create("appr-1"))
	err := create("appr-2")
	require.Error(t, err, "a second pending approval for the same action must be refused")

	// A decided row frees the slot for a new pending request.
	require.NoError(t, client.ApprovalRequest.UpdateOneID("appr-1").
		SetDecision(approvalrequest.DecisionRejected).
		Exec(ctx))
	assert.NoError(t, create("appr-3"))
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clearEnv := func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	}
	t.Cleanup(clearEnv)

	t.Run("defaults", func(t *testing.T) {
		clearEnv()
		os.Setenv("DB_PASSWORD", "test")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "vigil", cfg.User)
		assert.Equal(t, "vigil", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv()
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "admin")
		os.Setenv("DB_PASSWORD", "secret")
		os.Setenv("DB_NAME", "production")
		os.Setenv("DB_SSLMODE", "require")
		os.Setenv("DB_MAX_OPEN_CONNS", "50")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "production", cfg.Database)
		assert.Equal(t, "require", cfg.SSLMode)
		assert.Equal(t, 50, cfg.MaxOpenConns)
	})

	t.Run("invalid port", func(t *testing.T) {
		clearEnv()
		os.Setenv("DB_PORT", "not-a-port")
		os.Setenv("DB_PASSWORD", "test")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     5432,
		User:     "vigil",
		Password: "secret",
		Database: "vigil",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=vigil password=secret dbname=vigil sslmode=disable",
		cfg.DSN())
}

func TestHasEmbeddedMigrations(t *testing.T) {
	ok, err := hasEmbeddedMigrations()
	require.NoError(t, err)
	assert.True(t, ok, "migration files must be embedded into the binary")
}

func TestHealthStatusJSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local ping should be under a second")

	raw, err := json.Marshal(health)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	rt, ok := decoded["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	// A nanosecond value would be over 1e6 for any real ping.
	assert.Less(t, rt, float64(1000000), "response_time_ms should be in milliseconds")
}
