package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vendorhub/vendor-approval-api/internal/database"
	"github.com/vendorhub/vendor-approval-api/internal/models"
)

// HistoryService is the append-only approval ledger
type HistoryService struct {
	store     HistoryStore
	employees EmployeeLookup
	logger    *logrus.Logger
}

// NewHistoryService creates a new history service instance
func NewHistoryService(store HistoryStore, employees EmployeeLookup, logger *logrus.Logger) *HistoryService {
	return &HistoryService{
		store:     store,
		employees: employees,
		logger:    logger,
	}
}

// Append writes one decision inside the caller's transaction
func (s *HistoryService) Append(ctx context.Context, tx *database.Transaction, record *models.ApprovalHistoryRecord) error {
	if err := s.store.CreateWithTx(ctx, tx, record); err != nil {
		return fmt.Errorf("failed to append approval history: %w", err)
	}
	return nil
}

// ListFor returns the decisions on an application newest first, each with the
// actor's name and designation when the actor can be resolved
func (s *HistoryService) ListFor(ctx context.Context, applicationID string) ([]models.HistoryEntry, error) {
	records, err := s.store.ListByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	actors := make(map[string]*models.Employee)
	entries := make([]models.HistoryEntry, 0, len(records))
	for _, record := range records {
		entry := models.HistoryEntry{ApprovalHistoryRecord: record}

		employee, seen := actors[record.ApprovedBy]
		if !seen {
			employee = s.lookupActor(ctx, record.ApprovedBy)
			actors[record.ApprovedBy] = employee
		}
		if employee != nil {
			entry.ActorName = employee.Name
			entry.ActorDesignation = employee.Designation
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *HistoryService) lookupActor(ctx context.Context, actorID string) *models.Employee {
	if s.employees == nil || actorID == "" {
		return nil
	}
	employee, err := s.employees.GetEmployee(ctx, actorID)
	if err != nil {
		s.logger.WithError(err).WithField("actor_id", actorID).Debug("History actor lookup failed")
		return nil
	}
	return employee
}
