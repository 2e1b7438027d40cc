package models

import "github.com/vigilops/vigil/ent"

// ApprovalDecision is the state of one approval request
type ApprovalDecision string

const (
	ApprovalPending  ApprovalDecision = "pending"
	ApprovalApproved ApprovalDecision = "approved"
	ApprovalRejected ApprovalDecision = "rejected"
)

// IsValid checks if the approval decision is valid
func (d ApprovalDecision) IsValid() bool {
	return d == ApprovalPending || d == ApprovalApproved || d == ApprovalRejected
}

// CreateApprovalRequest contains fields for emitting an approval request
type CreateApprovalRequest struct {
	IncidentID     string    `json:"incident_id"`
	ActionIndex    int       `json:"action_index"`
	CommandPreview string    `json:"command_preview"`
	RiskLevel      RiskLevel `json:"risk_level"`
	Confidence     float64   `json:"confidence"`
}

// DecideApprovalRequest contains fields for the accept/reject endpoints
type DecideApprovalRequest struct {
	DecidedBy string `json:"decided_by"`
	Comment   string `json:"comment,omitempty"`
}

// ApprovalResponse wraps an ApprovalRequest with optional loaded edges
type ApprovalResponse struct {
	*ent.ApprovalRequest
}

// ApprovalListResponse contains pending (or filtered) approval requests
type ApprovalListResponse struct {
	Approvals  []*ent.ApprovalRequest `json:"approvals"`
	TotalCount int                    `json:"total_count"`
}
