package models

import (
	"time"
)

// HistoryAction is the decision recorded in the approval history
type HistoryAction string

const (
	ActionApproved      HistoryAction = "approved"
	ActionRejected      HistoryAction = "rejected"
	ActionOnHold        HistoryAction = "on_hold"
	ActionInfoRequested HistoryAction = "info_requested"
	ActionResubmitted   HistoryAction = "resubmitted"
	ActionResumed       HistoryAction = "resumed"
)

// ApprovalHistoryRecord represents the vendor_approval_history table
type ApprovalHistoryRecord struct {
	ID                   string        `db:"id" json:"id"`
	ApplicationID        string        `db:"application_id" json:"application_id"`
	ApprovedBy           string        `db:"approved_by" json:"approved_by"`
	ApprovalStage        int           `db:"approval_stage" json:"approval_stage"`
	Action               HistoryAction `db:"action" json:"action"`
	Comments             *string       `db:"comments" json:"comments,omitempty"`
	DocumentVerification JSON          `db:"document_verification" json:"document_verification,omitempty"`
	CreatedAt            time.Time     `db:"created_at" json:"created_at"`
}

// HistoryEntry is a history record enriched with the acting employee's details
type HistoryEntry struct {
	ApprovalHistoryRecord
	ActorName        string `json:"actor_name"`
	ActorDesignation string `json:"actor_designation"`
}

// TransitionRequest is the body of a reviewer decision
type TransitionRequest struct {
	Comment              string          `json:"comment"`
	Reason               string          `json:"reason"`
	Note                 string          `json:"note"`
	DocumentVerification map[string]bool `json:"document_verification,omitempty"`
}
