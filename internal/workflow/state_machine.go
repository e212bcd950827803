// Package workflow holds the vendor application state machine and the
// reviewer authorization policy. Everything here is pure and table driven.
package workflow

import (
	"errors"
	"fmt"

	"github.com/vendorhub/vendor-approval-api/internal/models"
)

const (
	// FirstStage is the stage of a freshly submitted application
	FirstStage = 1
	// FinalStage is the last stage; approved applications stay on it
	FinalStage = 5
)

var (
	// ErrTerminalState is returned for any transition out of approved or rejected
	ErrTerminalState = errors.New("application is in a terminal state")
	// ErrInvalidTransition is returned when the operation does not accept the current status
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Action names a state machine operation
type Action string

const (
	ActionApprove     Action = "approve"
	ActionReject      Action = "reject"
	ActionRequestInfo Action = "request_info"
	ActionHold        Action = "hold"
	ActionResume      Action = "resume"
	ActionResubmit    Action = "resubmit"
)

// Transition is a validated status change ready to be persisted
type Transition struct {
	Action    Action
	From      models.ApplicationStatus
	To        models.ApplicationStatus
	FromStage int
	ToStage   int
	// Final is set when the transition approves the application and a vendor must be provisioned
	Final bool
}

// HistoryAction returns the ledger action recorded for the transition
func (t Transition) HistoryAction() models.HistoryAction {
	switch t.Action {
	case ActionApprove:
		return models.ActionApproved
	case ActionReject:
		return models.ActionRejected
	case ActionRequestInfo:
		return models.ActionInfoRequested
	case ActionHold:
		return models.ActionOnHold
	case ActionResume:
		return models.ActionResumed
	default:
		return models.ActionResubmitted
	}
}

// reviewSequence is the ordered approval pipeline
var reviewSequence = []models.ApplicationStatus{
	models.StatusPending,
	models.StatusFOReview,
	models.StatusManagerReview,
	models.StatusDirectorReview,
	models.StatusAdminReview,
	models.StatusApproved,
}

var stageByStatus = map[models.ApplicationStatus]int{
	models.StatusPending:        1,
	models.StatusFOReview:       2,
	models.StatusManagerReview:  3,
	models.StatusDirectorReview: 4,
	models.StatusAdminReview:    5,
	models.StatusApproved:       5,
}

var reviewStages = map[models.ApplicationStatus]bool{
	models.StatusPending:        true,
	models.StatusFOReview:       true,
	models.StatusManagerReview:  true,
	models.StatusDirectorReview: true,
	models.StatusAdminReview:    true,
}

// IsTerminal reports whether no further transition is permitted
func IsTerminal(status models.ApplicationStatus) bool {
	return status == models.StatusApproved || status == models.StatusRejected
}

// IsReviewStage reports whether the application is waiting in the review pipeline
func IsReviewStage(status models.ApplicationStatus) bool {
	return reviewStages[status]
}

// StageFor returns the pipeline stage paired with a pipeline status, or 0 for side states
func StageFor(status models.ApplicationStatus) int {
	return stageByStatus[status]
}

// StatusForStage returns the review status that owns a stage
func StatusForStage(stage int) models.ApplicationStatus {
	if stage < FirstStage {
		stage = FirstStage
	}
	if stage > FinalStage {
		stage = FinalStage
	}
	return reviewSequence[stage-1]
}

// ParseStatus converts an external status string into a known status
func ParseStatus(s string) (models.ApplicationStatus, error) {
	status := models.ApplicationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown application status: %q", s)
	}
	return status, nil
}

func nextInSequence(status models.ApplicationStatus) (models.ApplicationStatus, bool) {
	for i, s := range reviewSequence[:len(reviewSequence)-1] {
		if s == status {
			return reviewSequence[i+1], true
		}
	}
	return "", false
}

func nextStage(stage int) int {
	if stage >= FinalStage {
		return FinalStage
	}
	if stage < FirstStage {
		return FirstStage + 1
	}
	return stage + 1
}

func guard(action Action, status models.ApplicationStatus) error {
	if IsTerminal(status) {
		return fmt.Errorf("%w: cannot %s an application that is %s", ErrTerminalState, action, status)
	}
	return nil
}

func invalid(action Action, status models.ApplicationStatus) error {
	return fmt.Errorf("%w: cannot %s an application that is %s", ErrInvalidTransition, action, status)
}

// Approve advances the application one step along the pipeline
func Approve(status models.ApplicationStatus, stage int) (Transition, error) {
	if err := guard(ActionApprove, status); err != nil {
		return Transition{}, err
	}
	next, ok := nextInSequence(status)
	if !ok {
		return Transition{}, invalid(ActionApprove, status)
	}
	return Transition{
		Action:    ActionApprove,
		From:      status,
		To:        next,
		FromStage: stage,
		ToStage:   nextStage(stage),
		Final:     next == models.StatusApproved,
	}, nil
}

// Reject ends the application from any non-terminal state
func Reject(status models.ApplicationStatus, stage int) (Transition, error) {
	if err := guard(ActionReject, status); err != nil {
		return Transition{}, err
	}
	return Transition{
		Action:    ActionReject,
		From:      status,
		To:        models.StatusRejected,
		FromStage: stage,
		ToStage:   stage,
	}, nil
}

// RequestInfo parks the application until the applicant resubmits. The stage is kept.
func RequestInfo(status models.ApplicationStatus, stage int) (Transition, error) {
	if err := guard(ActionRequestInfo, status); err != nil {
		return Transition{}, err
	}
	if !IsReviewStage(status) {
		return Transition{}, invalid(ActionRequestInfo, status)
	}
	return Transition{
		Action:    ActionRequestInfo,
		From:      status,
		To:        models.StatusAdditionalInfoRequired,
		FromStage: stage,
		ToStage:   stage,
	}, nil
}

// Hold pauses a reviewable application. The stage is kept.
func Hold(status models.ApplicationStatus, stage int) (Transition, error) {
	if err := guard(ActionHold, status); err != nil {
		return Transition{}, err
	}
	if !IsReviewStage(status) {
		return Transition{}, invalid(ActionHold, status)
	}
	return Transition{
		Action:    ActionHold,
		From:      status,
		To:        models.StatusOnHold,
		FromStage: stage,
		ToStage:   stage,
	}, nil
}

// Resume returns a held application to the review status of its stored stage
func Resume(status models.ApplicationStatus, stage int) (Transition, error) {
	return reenter(ActionResume, models.StatusOnHold, status, stage)
}

// Resubmit returns an application awaiting information to the review status of its stored stage
func Resubmit(status models.ApplicationStatus, stage int) (Transition, error) {
	return reenter(ActionResubmit, models.StatusAdditionalInfoRequired, status, stage)
}

func reenter(action Action, from, status models.ApplicationStatus, stage int) (Transition, error) {
	if err := guard(action, status); err != nil {
		return Transition{}, err
	}
	if status != from {
		return Transition{}, invalid(action, status)
	}
	return Transition{
		Action:    action,
		From:      status,
		To:        StatusForStage(stage),
		FromStage: stage,
		ToStage:   stage,
	}, nil
}

// Plan dispatches to the operation named by action
func Plan(action Action, status models.ApplicationStatus, stage int) (Transition, error) {
	switch action {
	case ActionApprove:
		return Approve(status, stage)
	case ActionReject:
		return Reject(status, stage)
	case ActionRequestInfo:
		return RequestInfo(status, stage)
	case ActionHold:
		return Hold(status, stage)
	case ActionResume:
		return Resume(status, stage)
	case ActionResubmit:
		return Resubmit(status, stage)
	default:
		return Transition{}, fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, action)
	}
}
