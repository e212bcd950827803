package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendorhub/vendor-approval-api/internal/cache"
	"github.com/vendorhub/vendor-approval-api/internal/dao"
	"github.com/vendorhub/vendor-approval-api/internal/models"
	"github.com/vendorhub/vendor-approval-api/internal/serviceerror"
)

// employeeTable is an EmployeeStore whose rows can change between calls
type employeeTable struct {
	mu   sync.Mutex
	rows map[string]models.Employee
}

func newEmployeeTable(employees ...*models.Employee) *employeeTable {
	table := &employeeTable{rows: make(map[string]models.Employee)}
	for _, e := range employees {
		table.rows[e.ID] = *e
	}
	return table
}

func (t *employeeTable) GetByID(ctx context.Context, employeeID string) (*models.Employee, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[employeeID]
	if !ok {
		return nil, dao.ErrNotFound
	}
	return &row, nil
}

func (t *employeeTable) update(employeeID string, fn func(*models.Employee)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row := t.rows[employeeID]
	fn(&row)
	t.rows[employeeID] = row
}

func (t *employeeTable) remove(employeeID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.rows, employeeID)
}

func newCachedDirectory(t *testing.T, store EmployeeStore) (*EmployeeDirectory, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewEmployeeDirectory(store, cache.NewEmployeeCache(client, time.Hour), newTestLogger()), mr
}

func TestApprove_DeactivatedReviewerLosesAccessBeforeCacheExpiry(t *testing.T) {
	employees := newEmployeeTable(reviewer("emp-fo", "Farah Officer", 1))
	directory, _ := newCachedDirectory(t, employees)

	store := newMemStore()
	validator, err := NewSubmissionValidator()
	require.NoError(t, err)
	logger := newTestLogger()
	svc := NewApprovalService(store, NewHistoryService(store, directory, logger), memVendors{store}, directory.Fresh(), store, validator, logger)
	svc.now = func() time.Time { return fixedNow }

	seedApplication(store, "app-1", models.StatusPending, 1)
	seedApplication(store, "app-2", models.StatusPending, 1)
	ctx := context.Background()

	_, svcErr := svc.Approve(ctx, "app-1", "emp-fo", "", nil)
	require.Nil(t, svcErr)

	// warm the enrichment cache with the still-active row
	cached, err := directory.GetEmployee(ctx, "emp-fo")
	require.NoError(t, err)
	require.True(t, cached.IsActive)

	employees.update("emp-fo", func(e *models.Employee) {
		e.IsActive = false
		e.CanApproveVendors = false
	})

	_, svcErr = svc.Approve(ctx, "app-2", "emp-fo", "", nil)
	assertServiceError(t, svcErr, serviceerror.Unauthorized)
	assert.Equal(t, models.StatusPending, store.get("app-2").ApplicationStatus)
	assert.Empty(t, store.historyFor("app-2"))

	cached, err = directory.GetEmployee(ctx, "emp-fo")
	require.NoError(t, err)
	assert.False(t, cached.IsActive, "authorization read should refresh the cached row")
	assert.False(t, cached.CanApproveVendors)
}

func TestEmployeeDirectory_FreshDropsRemovedEmployeeFromCache(t *testing.T) {
	employees := newEmployeeTable(reviewer("emp-fo", "Farah Officer", 1))
	directory, mr := newCachedDirectory(t, employees)
	ctx := context.Background()

	_, err := directory.GetEmployee(ctx, "emp-fo")
	require.NoError(t, err)
	require.True(t, mr.Exists("vendor-approval:employee:emp-fo"))

	employees.remove("emp-fo")

	_, err = directory.Fresh().GetEmployee(ctx, "emp-fo")
	assert.ErrorIs(t, err, dao.ErrNotFound)
	assert.False(t, mr.Exists("vendor-approval:employee:emp-fo"))

	_, err = directory.GetEmployee(ctx, "emp-fo")
	assert.ErrorIs(t, err, dao.ErrNotFound)
}

func TestEmployeeDirectory_FreshWithoutCache(t *testing.T) {
	employees := newEmployeeTable(reviewer("emp-fo", "Farah Officer", 1))
	directory := NewEmployeeDirectory(employees, nil, newTestLogger())

	employee, err := directory.Fresh().GetEmployee(context.Background(), "emp-fo")
	require.NoError(t, err)
	assert.Equal(t, "Farah Officer", employee.Name)

	_, err = directory.Fresh().GetEmployee(context.Background(), "emp-missing")
	assert.ErrorIs(t, err, dao.ErrNotFound)
}
