package finance

// OverviewInputs carries the raw sums the overview is computed from. Every
// field defaults to zero when its backing query matches no rows.
type OverviewInputs struct {
	Month int
	Year  int

	TotalWorkLoad  float64 // sum of declared project gross totals
	PeriodGross    float64 // gross delivered in (Month, Year)
	PeriodNet      float64 // net delivered in (Month, Year)
	Target         float64 // monthly target for (Month, Year), 0 if unset
	UpcomingTarget float64 // target for the following month, 0 if unset
	LifetimeGross  float64 // gross delivered across all time
	LifetimeNet    float64 // net delivered across all time
}

// Overview is the derived financial picture for one month.
type Overview struct {
	Month                     int     `json:"month"`
	Year                      int     `json:"year"`
	TotalWorkLoad             float64 `json:"totalWorkLoad"`
	CurrentMonthWorkLoad      float64 `json:"currentMonthWorkLoad"`
	CurrentMonthTarget        float64 `json:"currentMonthTarget"`
	CurrentMonthTotalDelivery float64 `json:"currentMonthTotalDelivery"`
	ExpectedDue               float64 `json:"expectedDue"`
	StillWorkingThisMonth     float64 `json:"stillWorkingThisMonth"`
	UpcomingMonth             float64 `json:"upcomingMonth"`
	TotalWorkDone             float64 `json:"totalWorkDone"`
	EstimatedDelivery         float64 `json:"estimatedDelivery"`
}

// BuildOverview derives the target-vs-actual figures from the raw sums.
// ExpectedDue and StillWorkingThisMonth are floored at zero: delivering past
// the target or past the month's workload never reports a negative balance.
func BuildOverview(in OverviewInputs) Overview {
	expectedDue := in.Target - in.PeriodNet
	if expectedDue < 0 {
		expectedDue = 0
	}

	stillWorking := in.PeriodGross - in.PeriodNet
	if stillWorking < 0 {
		stillWorking = 0
	}

	return Overview{
		Month:                     in.Month,
		Year:                      in.Year,
		TotalWorkLoad:             in.TotalWorkLoad,
		CurrentMonthWorkLoad:      in.PeriodGross,
		CurrentMonthTarget:        in.Target,
		CurrentMonthTotalDelivery: in.PeriodNet,
		ExpectedDue:               expectedDue,
		StillWorkingThisMonth:     stillWorking,
		UpcomingMonth:             in.UpcomingTarget,
		TotalWorkDone:             in.LifetimeNet,
		EstimatedDelivery:         in.LifetimeGross,
	}
}

// NextPeriod returns the month immediately after the given one, wrapping
// December into January of the next year.
func NextPeriod(month, year int) (int, int) {
	if month == 12 {
		return 1, year + 1
	}
	return month + 1, year
}
