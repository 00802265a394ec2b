package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vakif/backend/internal/domain/project"
)

// ProjectModel is the persistence model for projects.
type ProjectModel struct {
	FacilityModel
	Name      string          `gorm:"type:varchar(200);not null"`
	Status    project.Status  `gorm:"type:varchar(20);not null;default:'planned';index"`
	Budget    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	StartDate time.Time       `gorm:"type:date;not null"`
	EndDate   *time.Time      `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts the persistence model to a domain Project.
func (m *ProjectModel) ToDomain() project.Project {
	return project.Project{
		ID:         m.ID,
		FacilityID: m.FacilityID,
		Name:       m.Name,
		Status:     m.Status,
		Budget:     m.Budget,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
	}
}
