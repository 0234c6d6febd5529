package artifact

// CropClassifier assigns a scaled feature vector to the class whose centroid
// is nearest in euclidean distance. Centroids[i] corresponds to the class
// encoded as i by the label encoder.
type CropClassifier struct {
	Centroids [][]float64
}

// Predict returns the encoded index of the nearest class centroid.
func (c *CropClassifier) Predict(scaled []float64) int {
	best := 0
	bestDist := -1.0
	for i, centroid := range c.Centroids {
		dist := 0.0
		for j := range centroid {
			v := 0.0
			if j < len(scaled) {
				v = scaled[j]
			}
			d := v - centroid[j]
			dist += d * d
		}
		if bestDist < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}
