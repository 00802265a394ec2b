package hr

import (
	"context"

	"github.com/google/uuid"
)

// EmployeeRepository is the read-only data-access contract for employees.
type EmployeeRepository interface {
	FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]Employee, error)
}

// LeaveRepository is the read-only data-access contract for approved leaves.
type LeaveRepository interface {
	FindApprovedByFacility(ctx context.Context, facilityID uuid.UUID) ([]LeaveRequest, error)
}
