package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/vakif/backend/internal/domain/hr"
)

// EmployeeModel is the persistence model for personnel records.
type EmployeeModel struct {
	FacilityModel
	FullName   string            `gorm:"type:varchar(200);not null"`
	Department string            `gorm:"type:varchar(100)"`
	HireDate   time.Time         `gorm:"type:date;not null"`
	Status     hr.EmployeeStatus `gorm:"type:varchar(20);not null;default:'active';index"`
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee.
func (m *EmployeeModel) ToDomain() hr.Employee {
	return hr.Employee{
		ID:         m.ID,
		FacilityID: m.FacilityID,
		FullName:   m.FullName,
		Department: m.Department,
		HireDate:   m.HireDate,
		Status:     m.Status,
	}
}

// LeaveRequestModel is the persistence model for leave requests.
type LeaveRequestModel struct {
	FacilityModel
	EmployeeID uuid.UUID      `gorm:"type:uuid;not null;index"`
	StartDate  time.Time      `gorm:"type:date;not null"`
	EndDate    time.Time      `gorm:"type:date;not null"`
	Status     hr.LeaveStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
}

// TableName returns the table name for GORM
func (LeaveRequestModel) TableName() string {
	return "leave_requests"
}

// ToDomain converts the persistence model to a domain LeaveRequest.
func (m *LeaveRequestModel) ToDomain() hr.LeaveRequest {
	return hr.LeaveRequest{
		ID:         m.ID,
		FacilityID: m.FacilityID,
		EmployeeID: m.EmployeeID,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		Status:     m.Status,
	}
}
