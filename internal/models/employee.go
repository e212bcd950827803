package models

// AdminHierarchyLevel is the lowest level that sees every application
const AdminHierarchyLevel = 4

// MaxHierarchyLevel is the most senior reviewer level
const MaxHierarchyLevel = 5

// Employee represents the employees table. This service only reads it.
type Employee struct {
	ID                string  `db:"id" json:"id"`
	UserID            *string `db:"user_id" json:"user_id,omitempty"`
	EmployeeID        string  `db:"employee_id" json:"employee_id"`
	Name              string  `db:"name" json:"name"`
	Designation       string  `db:"designation" json:"designation"`
	Department        *string `db:"department" json:"department,omitempty"`
	HierarchyLevel    int     `db:"hierarchy_level" json:"hierarchy_level"`
	ReportsTo         *string `db:"reports_to" json:"reports_to,omitempty"`
	CanApproveVendors bool    `db:"can_approve_vendors" json:"can_approve_vendors"`
	IsActive          bool    `db:"is_active" json:"is_active"`
}

// IsReviewer reports whether the employee may act on vendor applications at all
func (e *Employee) IsReviewer() bool {
	return e != nil && e.IsActive && e.CanApproveVendors
}
