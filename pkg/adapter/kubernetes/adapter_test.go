package kubernetes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/models"
)

func testAutonomyStore(destructive bool) *config.AutonomyStore {
	cfg := config.DefaultAutonomyConfig()
	cfg.DestructiveEnabled = destructive
	return config.NewAutonomyStore(cfg)
}

func testConfig() *config.KubernetesAdapterConfig {
	return &config.KubernetesAdapterConfig{
		DefaultNamespace: "default",
		LogTailLines:     100,
	}
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(nil, testAutonomyStore(true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration is nil")
}

func TestNewRequiresAutonomyStore(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = New(testConfig(), nil)
	})
}

func TestAdapterName(t *testing.T) {
	a := NewWithClients(testConfig(), testAutonomyStore(true), fake.NewSimpleClientset(), nil)
	assert.Equal(t, "kubernetes", a.Name())
}

func TestCapabilitiesIncludeForbiddenVocabulary(t *testing.T) {
	a := NewWithClients(testConfig(), testAutonomyStore(true), fake.NewSimpleClientset(), nil)

	caps := a.Capabilities()
	assert.Len(t, caps, 11)
	assert.Contains(t, caps, models.ActionRestartPod)
	assert.Contains(t, caps, models.ActionApplyManifest)
	assert.Contains(t, caps, models.ActionDeleteNamespace)
	assert.Contains(t, caps, models.ActionDeleteNode)
	assert.Contains(t, caps, models.ActionDeletePV)
}

func TestConnectReturnsExecutableSubset(t *testing.T) {
	a := NewWithClients(testConfig(), testAutonomyStore(true), fake.NewSimpleClientset(), nil)

	actions, err := a.Connect(context.Background())
	require.NoError(t, err)

	assert.Len(t, actions, 7)
	assert.Contains(t, actions, models.ActionRestartPod)
	assert.Contains(t, actions, models.ActionRollbackDeployment)
	assert.NotContains(t, actions, models.ActionApplyManifest)
	assert.NotContains(t, actions, models.ActionDeleteNamespace)
}

func TestHealthBeforeConnect(t *testing.T) {
	a, err := New(testConfig(), testAutonomyStore(true))
	require.NoError(t, err)

	assert.ErrorIs(t, a.Health(context.Background()), adapter.ErrNotConnected)
}

func TestHealthWithFakeCluster(t *testing.T) {
	a := NewWithClients(testConfig(), testAutonomyStore(true), fake.NewSimpleClientset(), nil)
	assert.NoError(t, a.Health(context.Background()))
}

func TestNamespaceFallbacks(t *testing.T) {
	a := NewWithClients(&config.KubernetesAdapterConfig{DefaultNamespace: "prod"}, testAutonomyStore(true), fake.NewSimpleClientset(), nil)
	assert.Equal(t, "payments", a.namespaceOr("payments"))
	assert.Equal(t, "prod", a.namespaceOr(""))

	b := NewWithClients(&config.KubernetesAdapterConfig{}, testAutonomyStore(true), fake.NewSimpleClientset(), nil)
	assert.Equal(t, "default", b.namespaceOr(""))
}

func TestLogTailFallbacks(t *testing.T) {
	a := NewWithClients(&config.KubernetesAdapterConfig{LogTailLines: 50}, testAutonomyStore(true), fake.NewSimpleClientset(), nil)
	assert.Equal(t, int64(200), a.logTail(200))
	assert.Equal(t, int64(50), a.logTail(0))

	b := NewWithClients(&config.KubernetesAdapterConfig{}, testAutonomyStore(true), fake.NewSimpleClientset(), nil)
	assert.Equal(t, int64(100), b.logTail(0))
}
