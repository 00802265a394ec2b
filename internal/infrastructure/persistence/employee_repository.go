package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vakif/backend/internal/domain/hr"
	"github.com/vakif/backend/internal/infrastructure/persistence/models"
)

// GormEmployeeRepository implements hr.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindAllByFacility returns every employee for the facility
func (r *GormEmployeeRepository) FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]hr.Employee, error) {
	var records []models.EmployeeModel
	if err := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("hire_date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	employees := make([]hr.Employee, 0, len(records))
	for i := range records {
		employees = append(employees, records[i].ToDomain())
	}
	return employees, nil
}

// GormLeaveRepository implements hr.LeaveRepository using GORM
type GormLeaveRepository struct {
	db *gorm.DB
}

// NewGormLeaveRepository creates a new GormLeaveRepository
func NewGormLeaveRepository(db *gorm.DB) *GormLeaveRepository {
	return &GormLeaveRepository{db: db}
}

// FindApprovedByFacility returns every approved leave request for the facility
func (r *GormLeaveRepository) FindApprovedByFacility(ctx context.Context, facilityID uuid.UUID) ([]hr.LeaveRequest, error) {
	var records []models.LeaveRequestModel
	if err := r.db.WithContext(ctx).
		Where("facility_id = ? AND status = ?", facilityID, hr.LeaveStatusApproved).
		Order("start_date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	leaves := make([]hr.LeaveRequest, 0, len(records))
	for i := range records {
		leaves = append(leaves, records[i].ToDomain())
	}
	return leaves, nil
}
