package hr

import (
	"time"

	"github.com/google/uuid"
)

// LeaveStatus represents the approval lifecycle of a leave request
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// LeaveRequest is an approved-or-pending absence record.
type LeaveRequest struct {
	ID         uuid.UUID
	FacilityID uuid.UUID
	EmployeeID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	Status     LeaveStatus
}

// IsOngoing reports whether the leave covers the given instant.
func (l LeaveRequest) IsOngoing(at time.Time) bool {
	return l.Status == LeaveStatusApproved && !l.StartDate.After(at) && !l.EndDate.Before(at)
}

// OngoingCount returns how many approved leaves cover the given instant.
func OngoingCount(leaves []LeaveRequest, at time.Time) int {
	count := 0
	for _, l := range leaves {
		if l.IsOngoing(at) {
			count++
		}
	}
	return count
}
