package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vigilops/vigil/pkg/models"
)

func TestCommandVerb(t *testing.T) {
	tests := []struct {
		action models.ActionType
		verb   string
	}{
		{models.ActionRestartPod, "restart"},
		{models.ActionRestartDeployment, "restart"},
		{models.ActionScaleDeployment, "scale"},
		{models.ActionPatchMemoryLimit, "patch"},
		{models.ActionPatchCPULimit, "patch"},
		{models.ActionRollbackDeployment, "rollout undo"},
		{models.ActionSetImage, "set image"},
		{models.ActionApplyManifest, "apply"},
		{models.ActionDeleteNamespace, "delete"},
		{models.ActionDeleteNode, "delete"},
		{models.ActionDeletePV, "delete"},
		{models.ActionAcknowledgeIncident, "acknowledge"},
		{models.ActionResolveIncident, "resolve"},
		{models.ActionAddNote, "add_note"},
		{models.ActionType("custom_thing"), "custom_thing"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.verb, commandVerb(tt.action), string(tt.action))
	}
}

func TestVerbRisk(t *testing.T) {
	tests := []struct {
		verb string
		risk models.RiskLevel
	}{
		{"get", models.RiskLow},
		{"describe", models.RiskLow},
		{"logs", models.RiskLow},
		{"top", models.RiskLow},
		{"acknowledge", models.RiskLow},
		{"add_note", models.RiskLow},
		{"scale", models.RiskMedium},
		{"restart", models.RiskMedium},
		{"rollout restart", models.RiskMedium},
		{"rollout undo", models.RiskMedium},
		{"label", models.RiskMedium},
		{"annotate", models.RiskMedium},
		{"patch", models.RiskMedium},
		{"set image", models.RiskMedium},
		{"delete", models.RiskHigh},
		{"apply", models.RiskHigh},
		{"create", models.RiskHigh},
		{"exec", models.RiskHigh},
		{"port-forward", models.RiskHigh},
		{"frobnicate", models.RiskMedium},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.risk, verbRisk(tt.verb), tt.verb)
	}
}

func TestClassifyCommandEscalators(t *testing.T) {
	base := models.CommandSpec{
		Verb: "restart",
		Args: map[string]string{"deployment": "api", "namespace": "prod"},
	}
	assert.Equal(t, models.RiskMedium, ClassifyCommand(base))

	system := base
	system.Args = map[string]string{"deployment": "coredns", "namespace": "kube-system"}
	assert.Equal(t, models.RiskHigh, ClassifyCommand(system))

	fleet := base
	fleet.Args = map[string]string{"all": "true", "namespace": "prod"}
	assert.Equal(t, models.RiskHigh, ClassifyCommand(fleet))

	wildcard := base
	wildcard.Args = map[string]string{"selector": "*", "namespace": "prod"}
	assert.Equal(t, models.RiskHigh, ClassifyCommand(wildcard))

	allNamespaces := base
	allNamespaces.Args = map[string]string{"all-namespaces": "true"}
	assert.Equal(t, models.RiskHigh, ClassifyCommand(allNamespaces))
}

func TestForbiddenRule(t *testing.T) {
	enabled := &models.AutonomyConfig{DestructiveEnabled: true}
	disabled := &models.AutonomyConfig{}

	tests := []struct {
		name      string
		spec      models.CommandSpec
		cfg       *models.AutonomyConfig
		rule      string
		forbidden bool
	}{
		{
			name:      "delete namespace with name",
			spec:      models.CommandSpec{ActionType: models.ActionDeleteNamespace, Args: map[string]string{"name": "staging"}},
			cfg:       disabled,
			rule:      RuleProtectedDelete,
			forbidden: true,
		},
		{
			name:      "delete node with name",
			spec:      models.CommandSpec{ActionType: models.ActionDeleteNode, Args: map[string]string{"name": "worker-3"}},
			cfg:       enabled,
			rule:      RuleProtectedDelete,
			forbidden: true,
		},
		{
			name:      "delete pv with name",
			spec:      models.CommandSpec{ActionType: models.ActionDeletePV, Args: map[string]string{"name": "shared-01"}},
			cfg:       enabled,
			rule:      RuleProtectedDelete,
			forbidden: true,
		},
		{
			name:      "delete namespace unnamed",
			spec:      models.CommandSpec{ActionType: models.ActionDeleteNamespace, Args: map[string]string{}},
			cfg:       disabled,
			rule:      RuleWildcardSelector,
			forbidden: true,
		},
		{
			name:      "delete node wildcard name",
			spec:      models.CommandSpec{ActionType: models.ActionDeleteNode, Args: map[string]string{"name": "*"}},
			cfg:       disabled,
			rule:      RuleWildcardSelector,
			forbidden: true,
		},
		{
			name:      "apply with destructive disabled",
			spec:      models.CommandSpec{ActionType: models.ActionApplyManifest, Args: map[string]string{"manifest": "x.yaml"}},
			cfg:       disabled,
			rule:      RuleDestructiveDisabled,
			forbidden: true,
		},
		{
			name:      "apply with nil config",
			spec:      models.CommandSpec{ActionType: models.ActionApplyManifest, Args: map[string]string{"manifest": "x.yaml"}},
			cfg:       nil,
			rule:      RuleDestructiveDisabled,
			forbidden: true,
		},
		{
			name:      "apply with destructive enabled",
			spec:      models.CommandSpec{ActionType: models.ActionApplyManifest, Args: map[string]string{"manifest": "x.yaml"}},
			cfg:       enabled,
			forbidden: false,
		},
		{
			name:      "restart never forbidden",
			spec:      models.CommandSpec{ActionType: models.ActionRestartPod, Args: map[string]string{"pod": "api-1"}},
			cfg:       disabled,
			forbidden: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, forbidden := forbiddenRule(tt.spec, tt.cfg)
			assert.Equal(t, tt.forbidden, forbidden)
			assert.Equal(t, tt.rule, rule)
		})
	}
}
