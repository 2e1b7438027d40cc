// Package kubernetes implements the cluster integration: diagnostic context
// for alerting workloads and the remediation action vocabulary, both through
// client-go against a single cluster.
package kubernetes

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	k8s "k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	metricsclient "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/models"
)

// Name is the registry key for this adapter.
const Name = "kubernetes"

var (
	_ adapter.Adapter        = (*Adapter)(nil)
	_ adapter.ActionVerifier = (*Adapter)(nil)
)

const (
	defaultLogTailLines = int64(100)
	defaultNamespace    = "default"
)

// Adapter talks to one Kubernetes cluster. Mutating actions are gated on
// the destructive-operations flag at execution time, not at connect time,
// so flipping the flag needs no restart.
type Adapter struct {
	cfg      *config.KubernetesAdapterConfig
	autonomy *config.AutonomyStore

	mu        sync.RWMutex
	clientset k8s.Interface
	metrics   metricsclient.Interface
}

// New creates a disconnected adapter. Call Connect before use.
func New(cfg *config.KubernetesAdapterConfig, autonomy *config.AutonomyStore) (*Adapter, error) {
	if autonomy == nil {
		panic("autonomy store is required")
	}
	if cfg == nil {
		return nil, fmt.Errorf("kubernetes adapter configuration is nil")
	}
	return &Adapter{cfg: cfg, autonomy: autonomy}, nil
}

// NewWithClients creates an adapter over pre-built clients. Tests use this
// with the client-go fake clientset; metrics may be nil.
func NewWithClients(cfg *config.KubernetesAdapterConfig, autonomy *config.AutonomyStore, clientset k8s.Interface, metrics metricsclient.Interface) *Adapter {
	if autonomy == nil {
		panic("autonomy store is required")
	}
	if cfg == nil {
		cfg = &config.KubernetesAdapterConfig{}
	}
	return &Adapter{
		cfg:       cfg,
		autonomy:  autonomy,
		clientset: clientset,
		metrics:   metrics,
	}
}

// Name implements adapter.Adapter.
func (a *Adapter) Name() string { return Name }

// Connect builds the clientset (kubeconfig or in-cluster) and verifies the
// API server is reachable. Idempotent: an existing clientset is reused.
func (a *Adapter) Connect(ctx context.Context) ([]models.ActionType, error) {
	a.mu.Lock()
	if a.clientset == nil {
		restCfg, err := a.buildRestConfig()
		if err != nil {
			a.mu.Unlock()
			return nil, fmt.Errorf("build kubernetes client config: %w", err)
		}
		clientset, err := k8s.NewForConfig(restCfg)
		if err != nil {
			a.mu.Unlock()
			return nil, fmt.Errorf("create kubernetes clientset: %w", err)
		}
		metrics, err := metricsclient.NewForConfig(restCfg)
		if err != nil {
			slog.Warn("Metrics client unavailable, resource usage context disabled", "error", err)
			metrics = nil
		}
		a.clientset = clientset
		a.metrics = metrics
	}
	clientset := a.clientset
	a.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := clientset.Discovery().ServerVersion(); err != nil {
		return nil, adapter.Transient(fmt.Errorf("kubernetes api unreachable: %w", err))
	}

	return executableActions(), nil
}

// Health probes the API server. Cheap and side-effect free.
func (a *Adapter) Health(ctx context.Context) error {
	clientset, _ := a.clients()
	if clientset == nil {
		return adapter.ErrNotConnected
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := clientset.Discovery().ServerVersion(); err != nil {
		return fmt.Errorf("kubernetes api unreachable: %w", err)
	}
	return nil
}

// Capabilities lists every action in the cluster vocabulary, including the
// permanently forbidden ones: they stay routable so proposals naming them
// land here and get refused with a named rule instead of "no adapter".
func (a *Adapter) Capabilities() []models.ActionType {
	return []models.ActionType{
		models.ActionRestartPod,
		models.ActionRestartDeployment,
		models.ActionScaleDeployment,
		models.ActionPatchMemoryLimit,
		models.ActionPatchCPULimit,
		models.ActionRollbackDeployment,
		models.ActionSetImage,
		models.ActionApplyManifest,
		models.ActionDeleteNamespace,
		models.ActionDeleteNode,
		models.ActionDeletePV,
	}
}

// executableActions is the subset the adapter will actually perform.
func executableActions() []models.ActionType {
	return []models.ActionType{
		models.ActionRestartPod,
		models.ActionRestartDeployment,
		models.ActionScaleDeployment,
		models.ActionPatchMemoryLimit,
		models.ActionPatchCPULimit,
		models.ActionRollbackDeployment,
		models.ActionSetImage,
	}
}

func (a *Adapter) clients() (k8s.Interface, metricsclient.Interface) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.clientset, a.metrics
}

// buildRestConfig resolves the client configuration: explicit kubeconfig
// path first, then in-cluster, then the default kubeconfig location.
func (a *Adapter) buildRestConfig() (*rest.Config, error) {
	path := a.cfg.KubeconfigPath
	if path == "" {
		if cfg, err := rest.InClusterConfig(); err == nil {
			return cfg, nil
		}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			path = filepath.Join(home, ".kube", "config")
		}
	}
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		&clientcmd.ClientConfigLoadingRules{ExplicitPath: path},
		&clientcmd.ConfigOverrides{CurrentContext: a.cfg.Context},
	).ClientConfig()
}

func (a *Adapter) namespaceOr(ns string) string {
	if ns != "" {
		return ns
	}
	if a.cfg.DefaultNamespace != "" {
		return a.cfg.DefaultNamespace
	}
	return defaultNamespace
}

func (a *Adapter) logTail(requested int64) int64 {
	if requested > 0 {
		return requested
	}
	if a.cfg.LogTailLines > 0 {
		return a.cfg.LogTailLines
	}
	return defaultLogTailLines
}
