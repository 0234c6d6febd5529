package training

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"farm-advisor/internal/artifact"

	"gonum.org/v1/gonum/mat"
)

var monthColumns = []string{"JAN", "FEB", "MAR", "APR", "MAY", "JUN", "JUL", "AUG", "SEP", "OCT", "NOV", "DEC"}

// RainfallSample is one (year, month, rainfall) observation.
type RainfallSample struct {
	Year     int
	Month    int
	Rainfall float64
}

// RainfallTrainingResult bundles the fitted regressor with the holdout MAE.
type RainfallTrainingResult struct {
	Model     *artifact.RainfallModel
	MAE       float64
	TrainSize int
	TestSize  int
}

// LoadRainfallDataset parses the historical rainfall CSV, keeping only the
// subdivisions matching region (case-insensitive substring) and exploding the
// monthly columns into individual samples. Blank month cells are skipped.
func LoadRainfallDataset(path, region string) ([]RainfallSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset %s has no data rows", path)
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	subCol, ok := index["SUBDIVISION"]
	if !ok {
		return nil, fmt.Errorf("dataset missing column SUBDIVISION")
	}
	yearCol, ok := index["YEAR"]
	if !ok {
		return nil, fmt.Errorf("dataset missing column YEAR")
	}

	region = strings.ToUpper(region)
	var samples []RainfallSample
	for _, record := range records[1:] {
		if len(record) <= yearCol || !strings.Contains(strings.ToUpper(record[subCol]), region) {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(record[yearCol]))
		if err != nil {
			continue
		}
		for m, name := range monthColumns {
			col, ok := index[name]
			if !ok || col >= len(record) {
				continue
			}
			cell := strings.TrimSpace(record[col])
			if cell == "" {
				continue
			}
			rainfall, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				continue
			}
			samples = append(samples, RainfallSample{Year: year, Month: m + 1, Rainfall: rainfall})
		}
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("no rainfall samples matched region %q", region)
	}
	return samples, nil
}

// TrainRainfall fits a least-squares linear model rainfall ~ year + month on
// an 80/20 split and reports the holdout mean absolute error.
func TrainRainfall(samples []RainfallSample, seed int64) (*RainfallTrainingResult, error) {
	if len(samples) < 4 {
		return nil, fmt.Errorf("need at least 4 samples, got %d", len(samples))
	}

	trainIdx, testIdx := split(len(samples), 0.2, seed)

	X := mat.NewDense(len(trainIdx), 3, nil)
	y := mat.NewDense(len(trainIdx), 1, nil)
	for row, i := range trainIdx {
		X.Set(row, 0, 1)
		X.Set(row, 1, float64(samples[i].Year))
		X.Set(row, 2, float64(samples[i].Month))
		y.Set(row, 0, samples[i].Rainfall)
	}

	var qr mat.QR
	qr.Factorize(X)
	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, y); err != nil {
		return nil, fmt.Errorf("least squares solve failed: %w", err)
	}

	model := &artifact.RainfallModel{
		Intercept: beta.At(0, 0),
		YearCoef:  beta.At(1, 0),
		MonthCoef: beta.At(2, 0),
	}

	mae := 0.0
	for _, i := range testIdx {
		mae += math.Abs(model.Predict(samples[i].Year, samples[i].Month) - samples[i].Rainfall)
	}
	if len(testIdx) > 0 {
		mae /= float64(len(testIdx))
	}

	return &RainfallTrainingResult{
		Model:     model,
		MAE:       mae,
		TrainSize: len(trainIdx),
		TestSize:  len(testIdx),
	}, nil
}
