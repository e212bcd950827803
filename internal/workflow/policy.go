package workflow

import (
	"github.com/vendorhub/vendor-approval-api/internal/models"
)

// actionableStatuses maps a hierarchy level to the statuses it may act on
var actionableStatuses = map[int][]models.ApplicationStatus{
	1: {models.StatusPending, models.StatusFOReview},
	2: {models.StatusManagerReview},
	3: {models.StatusDirectorReview},
	4: {models.StatusAdminReview},
	5: {models.StatusAdminReview},
}

// IsValidLevel reports whether level is a known reviewer hierarchy level
func IsValidLevel(level int) bool {
	_, ok := actionableStatuses[level]
	return ok
}

// CanAct reports whether a reviewer at level may transition an application in status
func CanAct(level int, status models.ApplicationStatus) bool {
	for _, s := range actionableStatuses[level] {
		if s == status {
			return true
		}
	}
	return false
}

// CanViewAll reports whether a reviewer at level sees every application
func CanViewAll(level int) bool {
	return level >= models.AdminHierarchyLevel
}

// VisibleStatuses returns the statuses listed for a level. A nil result with
// CanViewAll(level) true means no status filter applies.
func VisibleStatuses(level int) []models.ApplicationStatus {
	if CanViewAll(level) {
		return nil
	}
	statuses := actionableStatuses[level]
	out := make([]models.ApplicationStatus, len(statuses))
	copy(out, statuses)
	return out
}

// Authorize applies the policy to a reviewer action. Resuming a held application
// is owned by the reviewer of its stored stage; every other action is judged on
// the current status alone.
func Authorize(level int, action Action, status models.ApplicationStatus, stage int) bool {
	if action == ActionResume && status == models.StatusOnHold {
		return CanAct(level, StatusForStage(stage))
	}
	return CanAct(level, status)
}
