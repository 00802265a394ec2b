package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vakif/backend/internal/domain/finance"
	"github.com/vakif/backend/internal/domain/shared/valueobject"
)

// TransactionModel is the persistence model for financial transactions.
type TransactionModel struct {
	FacilityModel
	Type                 finance.TransactionType   `gorm:"type:varchar(20);not null;index"`
	Date                 time.Time                 `gorm:"type:date;not null;index"`
	Amount               decimal.Decimal           `gorm:"type:decimal(18,4);not null"`
	Currency             string                    `gorm:"type:varchar(3);not null;default:'TRY'"`
	ExchangeRate         decimal.Decimal           `gorm:"type:decimal(18,6);not null;default:1"`
	AmountInBaseCurrency decimal.Decimal           `gorm:"type:decimal(18,4);not null"`
	Status               finance.TransactionStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	CategoryID           *uuid.UUID                `gorm:"type:uuid;index"`
	CategoryName         string                    `gorm:"type:varchar(200)"`
	VendorCustomerID     *uuid.UUID                `gorm:"type:uuid;index"`
	VendorCustomerName   string                    `gorm:"type:varchar(200)"`
	ProjectID            *uuid.UUID                `gorm:"type:uuid;index"`
	ProjectName          string                    `gorm:"type:varchar(200)"`
	Description          string                    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Transaction.
func (m *TransactionModel) ToDomain() finance.Transaction {
	return finance.Transaction{
		ID:                   m.ID,
		FacilityID:           m.FacilityID,
		Type:                 m.Type,
		Date:                 m.Date,
		Amount:               m.Amount,
		Currency:             valueobject.Currency(m.Currency),
		ExchangeRate:         m.ExchangeRate,
		AmountInBaseCurrency: m.AmountInBaseCurrency,
		Status:               m.Status,
		CategoryID:           m.CategoryID,
		CategoryName:         m.CategoryName,
		VendorCustomerID:     m.VendorCustomerID,
		VendorCustomerName:   m.VendorCustomerName,
		ProjectID:            m.ProjectID,
		ProjectName:          m.ProjectName,
		Description:          m.Description,
	}
}

// BudgetModel is the persistence model for budgets.
type BudgetModel struct {
	FacilityModel
	Scope     finance.BudgetScope  `gorm:"type:varchar(20);not null;index"`
	ScopeID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	Name      string               `gorm:"type:varchar(200);not null"`
	Amount    decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	StartDate time.Time            `gorm:"type:date;not null"`
	EndDate   time.Time            `gorm:"type:date;not null"`
	Status    finance.BudgetStatus `gorm:"type:varchar(20);not null;default:'active';index"`
}

// TableName returns the table name for GORM
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToDomain converts the persistence model to a domain Budget.
func (m *BudgetModel) ToDomain() finance.Budget {
	return finance.Budget{
		ID:         m.ID,
		FacilityID: m.FacilityID,
		Scope:      m.Scope,
		ScopeID:    m.ScopeID,
		Name:       m.Name,
		Amount:     m.Amount,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		Status:     m.Status,
	}
}

// CategoryModel is the persistence model for transaction categories.
type CategoryModel struct {
	FacilityModel
	Name string                  `gorm:"type:varchar(200);not null"`
	Type finance.TransactionType `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category.
func (m *CategoryModel) ToDomain() finance.Category {
	return finance.Category{
		ID:         m.ID,
		FacilityID: m.FacilityID,
		Name:       m.Name,
		Type:       m.Type,
	}
}
