package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/pkg/models"
)

func TestRenderCommandForms(t *testing.T) {
	tests := []struct {
		name   string
		action models.ActionType
		params map[string]string
		want   string
	}{
		{"restart pod", models.ActionRestartPod, map[string]string{"pod": "api-1", "namespace": "prod"}, "kubectl delete pod api-1 -n prod"},
		{"restart pod by selector", models.ActionRestartPod, map[string]string{"selector": "app=api"}, "kubectl delete pod -l app=api"},
		{"restart deployment", models.ActionRestartDeployment, map[string]string{"deployment": "api", "namespace": "prod"}, "kubectl rollout restart deployment/api -n prod"},
		{"scale", models.ActionScaleDeployment, map[string]string{"deployment": "api", "replicas": "4"}, "kubectl scale deployment/api --replicas=4"},
		{"memory limit", models.ActionPatchMemoryLimit, map[string]string{"deployment": "api", "value": "1Gi", "container": "app", "namespace": "prod"}, "kubectl set resources deployment/api --limits=memory=1Gi -c app -n prod"},
		{"cpu limit", models.ActionPatchCPULimit, map[string]string{"deployment": "api", "value": "500m"}, "kubectl set resources deployment/api --limits=cpu=500m"},
		{"rollback deployment", models.ActionRollbackDeployment, map[string]string{"deployment": "api", "revision": "3"}, "kubectl rollout undo deployment/api --to-revision=3"},
		{"set image", models.ActionSetImage, map[string]string{"deployment": "api", "container": "api", "image": "api:v2"}, "kubectl set image deployment/api api=api:v2"},
		{"apply", models.ActionApplyManifest, map[string]string{"manifest": "fix.yaml"}, "kubectl apply -f fix.yaml"},
		{"delete namespace", models.ActionDeleteNamespace, map[string]string{"name": "staging"}, "kubectl delete namespace staging"},
		{"delete pv default resource", models.ActionDeletePV, map[string]string{"name": "shared-01"}, "kubectl delete persistentvolume shared-01"},
		{"delete pvc", models.ActionDeletePV, map[string]string{"resource": "persistentvolumeclaim", "name": "data-0", "namespace": "db"}, "kubectl delete persistentvolumeclaim data-0 -n db"},
		{"structured with quoting", models.ActionAddNote, map[string]string{"incident_id": "PT1", "content": "scaling up"}, `action: add_note content="scaling up" incident_id=PT1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderCommand(tt.action, tt.params))
		})
	}
}

func TestRenderPlanParseRoundTrip(t *testing.T) {
	plan := &models.ResolutionPlan{
		RootCause:        "The api deployment exhausted its memory limit after the v2 rollout.",
		ImpactAssessment: "Around 40% of checkout traffic sees 502 responses.",
		Diagnostics: []string{
			"kubectl get pods -n prod",
			"Check the v2 release diff",
		},
		Actions: []models.ResolutionAction{
			{
				ActionType:       models.ActionPatchMemoryLimit,
				Params:           map[string]string{"deployment": "api", "value": "1Gi", "namespace": "prod"},
				Confidence:       0.85,
				RiskLevel:        models.RiskMedium,
				RollbackPossible: true,
				Rollback: &models.RollbackSpec{
					ActionType: models.ActionPatchMemoryLimit,
					Params:     map[string]string{"deployment": "api", "value": "512Mi", "namespace": "prod"},
				},
			},
			{
				ActionType: models.ActionRestartDeployment,
				Params:     map[string]string{"deployment": "api", "namespace": "prod"},
				Confidence: 0.9,
				RiskLevel:  models.RiskMedium,
			},
			{
				ActionType:       models.ActionScaleDeployment,
				Params:           map[string]string{"deployment": "api", "replicas": "6", "namespace": "prod"},
				Confidence:       0.75,
				RiskLevel:        models.RiskMedium,
				RollbackPossible: true,
				Rollback: &models.RollbackSpec{
					ActionType: models.ActionScaleDeployment,
					Params:     map[string]string{"deployment": "api", "replicas": "3", "namespace": "prod"},
				},
			},
			{
				ActionType: models.ActionRollbackDeployment,
				Params:     map[string]string{"deployment": "api", "revision": "14", "namespace": "prod"},
				Confidence: 0.6,
				RiskLevel:  models.RiskMedium,
			},
			{
				ActionType: models.ActionSetImage,
				Params:     map[string]string{"deployment": "api", "container": "api", "image": "registry.local/api:v1.9.9", "namespace": "prod"},
				Confidence: 0.55,
				RiskLevel:  models.RiskHigh,
			},
			{
				ActionType: models.ActionRestartPod,
				Params:     map[string]string{"selector": "app=api", "namespace": "prod"},
				Confidence: 0.7,
				RiskLevel:  models.RiskMedium,
			},
			{
				ActionType: models.ActionApplyManifest,
				Params:     map[string]string{"manifest": "quota-fix.yaml", "namespace": "prod"},
				Confidence: 0.4,
				RiskLevel:  models.RiskHigh,
			},
			{
				ActionType: models.ActionAddNote,
				Params:     map[string]string{"incident_id": "PT4K2", "content": "raised memory limit"},
				Confidence: 0.95,
				RiskLevel:  models.RiskLow,
			},
		},
		MonitoringRecommendations: []string{
			"Watch memory usage for one hour",
			"Confirm the error rate returns under baseline",
		},
	}

	rendered := RenderPlan(plan)
	reparsed, err := ParsePlan(rendered)
	require.NoError(t, err)

	assert.Equal(t, plan.RootCause, reparsed.RootCause)
	assert.Equal(t, plan.ImpactAssessment, reparsed.ImpactAssessment)
	assert.Equal(t, plan.Diagnostics, reparsed.Diagnostics)
	assert.Equal(t, plan.MonitoringRecommendations, reparsed.MonitoringRecommendations)

	require.Len(t, reparsed.Actions, len(plan.Actions))
	for i := range plan.Actions {
		want, got := plan.Actions[i], reparsed.Actions[i]
		assert.Equal(t, want.ActionType, got.ActionType, "action %d", i)
		assert.Equal(t, want.Params, got.Params, "action %d", i)
		assert.InDelta(t, want.Confidence, got.Confidence, 1e-9, "action %d", i)
		assert.Equal(t, want.RiskLevel, got.RiskLevel, "action %d", i)
		assert.Equal(t, want.RollbackPossible, got.RollbackPossible, "action %d", i)
		assert.Equal(t, want.Rollback, got.Rollback, "action %d", i)
	}
}

func TestRenderPlanEmpty(t *testing.T) {
	rendered := RenderPlan(&models.ResolutionPlan{})
	reparsed, err := ParsePlan(rendered)
	require.NoError(t, err)
	assert.Empty(t, reparsed.RootCause)
	assert.Empty(t, reparsed.Actions)
}
