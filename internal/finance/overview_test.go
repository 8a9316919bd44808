package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildOverviewExpectedDue(t *testing.T) {
	o := BuildOverview(OverviewInputs{Month: 5, Year: 2025, Target: 5000, PeriodNet: 2240})
	assert.Equal(t, 2760.0, o.ExpectedDue)

	// Delivering past the target never goes negative.
	o = BuildOverview(OverviewInputs{Month: 5, Year: 2025, Target: 2000, PeriodNet: 2240})
	assert.Equal(t, 0.0, o.ExpectedDue)
}

func TestBuildOverviewStillWorking(t *testing.T) {
	o := BuildOverview(OverviewInputs{PeriodGross: 2800, PeriodNet: 2240})
	assert.InDelta(t, 560.0, o.StillWorkingThisMonth, 1e-9)

	o = BuildOverview(OverviewInputs{PeriodGross: 1000, PeriodNet: 2240})
	assert.Equal(t, 0.0, o.StillWorkingThisMonth)
}

func TestBuildOverviewPassthroughFields(t *testing.T) {
	in := OverviewInputs{
		Month:          5,
		Year:           2025,
		TotalWorkLoad:  9000,
		PeriodGross:    2800,
		PeriodNet:      2240,
		Target:         5000,
		UpcomingTarget: 6000,
		LifetimeGross:  4800,
		LifetimeNet:    3840,
	}

	o := BuildOverview(in)

	assert.Equal(t, 5, o.Month)
	assert.Equal(t, 2025, o.Year)
	assert.Equal(t, 9000.0, o.TotalWorkLoad)
	assert.Equal(t, 2800.0, o.CurrentMonthWorkLoad)
	assert.Equal(t, 5000.0, o.CurrentMonthTarget)
	assert.Equal(t, 2240.0, o.CurrentMonthTotalDelivery)
	assert.Equal(t, 6000.0, o.UpcomingMonth)
	assert.Equal(t, 3840.0, o.TotalWorkDone)
	assert.Equal(t, 4800.0, o.EstimatedDelivery)
}

func TestBuildOverviewEmptyDataset(t *testing.T) {
	o := BuildOverview(OverviewInputs{Month: 1, Year: 2030})

	assert.Zero(t, o.TotalWorkLoad)
	assert.Zero(t, o.ExpectedDue)
	assert.Zero(t, o.StillWorkingThisMonth)
	assert.Zero(t, o.TotalWorkDone)
	assert.Zero(t, o.EstimatedDelivery)
}

func TestNextPeriod(t *testing.T) {
	month, year := NextPeriod(5, 2025)
	assert.Equal(t, 6, month)
	assert.Equal(t, 2025, year)

	month, year = NextPeriod(12, 2025)
	assert.Equal(t, 1, month)
	assert.Equal(t, 2026, year)
}
