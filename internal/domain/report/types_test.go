package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vakif/backend/internal/domain/shared"
)

func validParams() Params {
	return Params{
		FacilityID: uuid.New(),
		Type:       TypeIncomeExpense,
		StartDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
		GroupBy:    GranularityMonth,
	}
}

func TestParamsValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validParams().Validate())
	})

	t.Run("missing facility", func(t *testing.T) {
		p := validParams()
		p.FacilityID = uuid.Nil
		assert.ErrorIs(t, p.Validate(), shared.ErrMissingFacility)
	})

	t.Run("end before start", func(t *testing.T) {
		p := validParams()
		p.EndDate = p.StartDate.AddDate(0, 0, -1)
		assert.ErrorIs(t, p.Validate(), shared.ErrInvalidPeriod)
	})

	t.Run("one-sided compare window", func(t *testing.T) {
		p := validParams()
		start := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
		p.CompareStartDate = &start
		assert.ErrorIs(t, p.Validate(), shared.ErrPartialCompare)
	})

	t.Run("full compare window", func(t *testing.T) {
		p := validParams()
		start := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		p.CompareStartDate = &start
		p.CompareEndDate = &end
		assert.NoError(t, p.Validate())
	})

	t.Run("unknown report type", func(t *testing.T) {
		p := validParams()
		p.Type = Type("weekly-digest")
		assert.Error(t, p.Validate())
	})

	t.Run("unknown granularity", func(t *testing.T) {
		p := validParams()
		p.GroupBy = Granularity("week")
		assert.Error(t, p.Validate())
	})
}

func TestAllTypesClosed(t *testing.T) {
	types := AllTypes()
	assert.Len(t, types, 6)
	for _, rt := range types {
		assert.True(t, rt.IsValid())
	}
	assert.False(t, Type("").IsValid())
}

func TestEmptyResultWellFormed(t *testing.T) {
	res := EmptyResult(TypeVendorAnalysis)
	assert.Equal(t, TypeVendorAnalysis, res.Type)
	assert.NotNil(t, res.ChartData.Labels)
	assert.NotNil(t, res.TableData)
	assert.True(t, res.Summary.Net.IsZero())
}
