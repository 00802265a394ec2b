package hr

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeStatus represents the employment lifecycle
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

// Employee is a personnel record snapshot used by the dashboard rollup.
type Employee struct {
	ID         uuid.UUID
	FacilityID uuid.UUID
	FullName   string
	Department string
	HireDate   time.Time
	Status     EmployeeStatus
}

// IsActive reports whether the employee currently counts toward headcount.
func (e Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}

// ActiveCount returns the number of currently active employees.
func ActiveCount(employees []Employee) int {
	count := 0
	for _, e := range employees {
		if e.IsActive() {
			count++
		}
	}
	return count
}

// ActiveCountAsOf approximates the active headcount at the end of a past period
// by counting employees hired on or before the cutoff who are still active now.
// Employees who left after the cutoff are undercounted; this is a known
// limitation kept so that historical trend numbers stay comparable.
func ActiveCountAsOf(employees []Employee, cutoff time.Time) int {
	count := 0
	for _, e := range employees {
		if e.IsActive() && !e.HireDate.After(cutoff) {
			count++
		}
	}
	return count
}
