package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/vendorhub/vendor-approval-api/internal/cache"
	"github.com/vendorhub/vendor-approval-api/internal/dao"
	"github.com/vendorhub/vendor-approval-api/internal/metrics"
	"github.com/vendorhub/vendor-approval-api/internal/models"
)

// EmployeeDirectory resolves actor ids to employees, reading through an optional Redis cache
type EmployeeDirectory struct {
	store  EmployeeStore
	cache  *cache.EmployeeCache
	logger *logrus.Logger
}

// NewEmployeeDirectory creates a directory. employeeCache may be nil.
func NewEmployeeDirectory(store EmployeeStore, employeeCache *cache.EmployeeCache, logger *logrus.Logger) *EmployeeDirectory {
	return &EmployeeDirectory{
		store:  store,
		cache:  employeeCache,
		logger: logger,
	}
}

// GetEmployee returns the employee with the given id. Cache failures fall back to the store.
func (d *EmployeeDirectory) GetEmployee(ctx context.Context, employeeID string) (*models.Employee, error) {
	if d.cache != nil {
		employee, found, err := d.cache.Get(ctx, employeeID)
		switch {
		case err != nil:
			metrics.EmployeeCacheLookups.WithLabelValues("error").Inc()
			d.logger.WithError(err).WithField("employee_id", employeeID).Warn("Employee cache read failed")
		case found:
			metrics.EmployeeCacheLookups.WithLabelValues("hit").Inc()
			return employee, nil
		default:
			metrics.EmployeeCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	employee, err := d.store.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if d.cache != nil {
		if err := d.cache.Set(ctx, employee); err != nil {
			d.logger.WithError(err).WithField("employee_id", employeeID).Warn("Employee cache write failed")
		}
	}

	return employee, nil
}

// Fresh returns a lookup that always reads the store. Authorization uses it so a
// deactivated reviewer loses access immediately; the cache entry is refreshed or
// dropped on the way.
func (d *EmployeeDirectory) Fresh() EmployeeLookup {
	return freshEmployeeLookup{directory: d}
}

type freshEmployeeLookup struct {
	directory *EmployeeDirectory
}

func (f freshEmployeeLookup) GetEmployee(ctx context.Context, employeeID string) (*models.Employee, error) {
	d := f.directory
	employee, err := d.store.GetByID(ctx, employeeID)
	if err != nil {
		if d.cache != nil && errors.Is(err, dao.ErrNotFound) {
			if cacheErr := d.cache.Invalidate(ctx, employeeID); cacheErr != nil {
				d.logger.WithError(cacheErr).WithField("employee_id", employeeID).Warn("Employee cache invalidation failed")
			}
		}
		return nil, err
	}

	if d.cache != nil {
		if err := d.cache.Set(ctx, employee); err != nil {
			d.logger.WithError(err).WithField("employee_id", employeeID).Warn("Employee cache write failed")
		}
	}
	return employee, nil
}
