package artifact

// RainfallModel estimates monthly rainfall (mm) from (year, month) with a
// linear fit learned from the historical dataset.
type RainfallModel struct {
	Intercept float64
	YearCoef  float64
	MonthCoef float64
}

// Predict returns the estimated rainfall for a year and month (1-12).
// Estimates are clamped at zero.
func (m *RainfallModel) Predict(year, month int) float64 {
	v := m.Intercept + m.YearCoef*float64(year) + m.MonthCoef*float64(month)
	if v < 0 {
		return 0
	}
	return v
}
