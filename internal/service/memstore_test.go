package service

import (
	"context"
	"sort"
	"sync"

	"github.com/vendorhub/vendor-approval-api/internal/dao"
	"github.com/vendorhub/vendor-approval-api/internal/database"
	"github.com/vendorhub/vendor-approval-api/internal/models"
)

// memStore is an in-memory store honouring the conditional update contract of the DAOs.
// WithTransaction serializes units of work and restores the previous state when fn fails.
type memStore struct {
	mu           sync.Mutex
	txMu         sync.Mutex
	applications map[string]models.VendorApplication
	history      []models.ApprovalHistoryRecord
	vendors      map[string]models.Vendor

	failHistory error
	failVendor  error
	failGet     error
}

func newMemStore() *memStore {
	return &memStore{
		applications: make(map[string]models.VendorApplication),
		vendors:      make(map[string]models.Vendor),
	}
}

func (s *memStore) put(app models.VendorApplication) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications[app.ID] = app
}

func (s *memStore) get(id string) models.VendorApplication {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applications[id]
}

func (s *memStore) historyFor(id string) []models.ApprovalHistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ApprovalHistoryRecord
	for _, r := range s.history {
		if r.ApplicationID == id {
			out = append(out, r)
		}
	}
	return out
}

func (s *memStore) vendorCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.vendors)
}

func (s *memStore) WithTransaction(ctx context.Context, fn func(*database.Transaction) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	apps := make(map[string]models.VendorApplication, len(s.applications))
	for k, v := range s.applications {
		apps[k] = v
	}
	history := append([]models.ApprovalHistoryRecord(nil), s.history...)
	vendors := make(map[string]models.Vendor, len(s.vendors))
	for k, v := range s.vendors {
		vendors[k] = v
	}
	s.mu.Unlock()

	if err := fn(nil); err != nil {
		s.mu.Lock()
		s.applications, s.history, s.vendors = apps, history, vendors
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memStore) Create(ctx context.Context, app *models.VendorApplication) error {
	s.put(*app)
	return nil
}

func (s *memStore) GetByID(ctx context.Context, applicationID string) (*models.VendorApplication, error) {
	if s.failGet != nil {
		return nil, s.failGet
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[applicationID]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return &app, nil
}

func (s *memStore) List(ctx context.Context) ([]models.VendorApplication, error) {
	return s.filter(func(models.VendorApplication) bool { return true }), nil
}

func (s *memStore) ListByStatuses(ctx context.Context, statuses []models.ApplicationStatus) ([]models.VendorApplication, error) {
	return s.filter(func(app models.VendorApplication) bool {
		for _, st := range statuses {
			if app.ApplicationStatus == st {
				return true
			}
		}
		return false
	}), nil
}

func (s *memStore) ListByUserID(ctx context.Context, userID string) ([]models.VendorApplication, error) {
	return s.filter(func(app models.VendorApplication) bool { return app.UserID == userID }), nil
}

func (s *memStore) filter(keep func(models.VendorApplication) bool) []models.VendorApplication {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.VendorApplication{}
	for _, app := range s.applications {
		if keep(app) {
			out = append(out, app)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *memStore) UpdateStatusWithTx(ctx context.Context, tx *database.Transaction, update *models.StatusUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[update.ApplicationID]
	if !ok || app.ApplicationStatus != update.ExpectedStatus {
		return dao.ErrStatusConflict
	}
	applyUpdate(&app, update)
	s.applications[app.ID] = app
	return nil
}

// CreateWithTx satisfies HistoryStore
func (s *memStore) CreateWithTx(ctx context.Context, tx *database.Transaction, record *models.ApprovalHistoryRecord) error {
	if s.failHistory != nil {
		return s.failHistory
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, *record)
	return nil
}

func (s *memStore) ListByApplicationID(ctx context.Context, applicationID string) ([]models.ApprovalHistoryRecord, error) {
	records := s.historyFor(applicationID)
	out := make([]models.ApprovalHistoryRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
	}
	return out, nil
}

// memVendors is the vendor side of memStore; it shares the same state
type memVendors struct{ s *memStore }

func (v memVendors) CreateWithTx(ctx context.Context, tx *database.Transaction, vendor *models.Vendor) error {
	if v.s.failVendor != nil {
		return v.s.failVendor
	}
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if _, exists := v.s.vendors[vendor.ApplicationID]; exists {
		return dao.ErrStatusConflict
	}
	v.s.vendors[vendor.ApplicationID] = *vendor
	return nil
}

func (v memVendors) GetByApplicationID(ctx context.Context, applicationID string) (*models.Vendor, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	vendor, ok := v.s.vendors[applicationID]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return &vendor, nil
}

// memEmployees is a fixed employee directory
type memEmployees map[string]*models.Employee

func (e memEmployees) GetEmployee(ctx context.Context, employeeID string) (*models.Employee, error) {
	employee, ok := e[employeeID]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return employee, nil
}
