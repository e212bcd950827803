package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vendorhub/vendor-approval-api/internal/database"
	"github.com/vendorhub/vendor-approval-api/internal/models"
)

// EmployeeDAO reads reviewer records from the employees table
type EmployeeDAO struct {
	db *database.DB
}

// NewEmployeeDAO creates a new EmployeeDAO instance
func NewEmployeeDAO(db *database.DB) *EmployeeDAO {
	return &EmployeeDAO{db: db}
}

// GetByID retrieves an employee by ID
func (dao *EmployeeDAO) GetByID(ctx context.Context, employeeID string) (*models.Employee, error) {
	ctx, cancel := dao.db.WithTimeout(ctx)
	defer cancel()

	query := dao.db.Rebind(`
		SELECT id, user_id, employee_id, name, designation, department,
		       hierarchy_level, reports_to, can_approve_vendors, is_active
		FROM employees
		WHERE id = ?
	`)

	var employee models.Employee
	if err := dao.db.GetContext(ctx, &employee, query, employeeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employee %s: %w", employeeID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get employee: %w", database.WrapTimeout(err))
	}

	return &employee, nil
}
