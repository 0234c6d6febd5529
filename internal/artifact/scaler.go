package artifact

// StandardScaler standardizes a feature vector using per-feature mean and
// standard deviation learned at training time.
type StandardScaler struct {
	Mean []float64
	Std  []float64
}

// Transform returns (x - mean) / std per feature. A zero deviation leaves
// the centered value unscaled.
func (s *StandardScaler) Transform(features []float64) []float64 {
	scaled := make([]float64, len(features))
	for i, v := range features {
		std := 1.0
		if i < len(s.Std) && s.Std[i] != 0 {
			std = s.Std[i]
		}
		mean := 0.0
		if i < len(s.Mean) {
			mean = s.Mean[i]
		}
		scaled[i] = (v - mean) / std
	}
	return scaled
}
