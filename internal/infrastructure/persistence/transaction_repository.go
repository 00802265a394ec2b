package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vakif/backend/internal/domain/finance"
	"github.com/vakif/backend/internal/infrastructure/persistence/models"
)

// GormTransactionRepository implements finance.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByFacilityAndPeriod returns all transactions dated within [start, end]
func (r *GormTransactionRepository) FindByFacilityAndPeriod(ctx context.Context, facilityID uuid.UUID, start, end time.Time) ([]finance.Transaction, error) {
	var records []models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("facility_id = ? AND date >= ? AND date <= ?", facilityID, start, end).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return toTransactions(records), nil
}

// FindAllByFacility returns every transaction for the facility
func (r *GormTransactionRepository) FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]finance.Transaction, error) {
	var records []models.TransactionModel
	if err := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return toTransactions(records), nil
}

func toTransactions(records []models.TransactionModel) []finance.Transaction {
	transactions := make([]finance.Transaction, 0, len(records))
	for i := range records {
		transactions = append(transactions, records[i].ToDomain())
	}
	return transactions
}
