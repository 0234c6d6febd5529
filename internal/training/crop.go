package training

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"

	"farm-advisor/internal/artifact"

	"gonum.org/v1/gonum/stat"
)

// FeatureColumns is the dataset column order the classifier is trained on.
var FeatureColumns = []string{"N", "P", "K", "temperature", "humidity", "ph", "rainfall"}

const labelColumn = "label"

// CropSample is one labeled row of the crop recommendation dataset.
type CropSample struct {
	Features [7]float64
	Label    string
}

// CropTrainingResult bundles the fitted artifact components with the holdout
// accuracy of the run.
type CropTrainingResult struct {
	Classifier *artifact.CropClassifier
	Scaler     *artifact.StandardScaler
	Encoder    *artifact.LabelEncoder
	Accuracy   float64
	TrainSize  int
	TestSize   int
}

// LoadCropDataset parses the crop recommendation CSV. The header must carry
// the seven feature columns and the label column, in any order.
func LoadCropDataset(path string) ([]CropSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset %s has no data rows", path)
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[name] = i
	}
	for _, col := range append(append([]string{}, FeatureColumns...), labelColumn) {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("dataset missing column %q", col)
		}
	}

	samples := make([]CropSample, 0, len(records)-1)
	for rowNum, record := range records[1:] {
		var sample CropSample
		for i, col := range FeatureColumns {
			v, err := strconv.ParseFloat(record[index[col]], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad value for %s: %w", rowNum+2, col, err)
			}
			sample.Features[i] = v
		}
		sample.Label = record[index[labelColumn]]
		samples = append(samples, sample)
	}
	return samples, nil
}

// TrainCrop fits the scaler, label encoder and nearest-centroid classifier.
// The scaler is fitted on the full dataset before the 80/20 split, matching
// the original pipeline; accuracy is measured on the holdout split.
func TrainCrop(samples []CropSample, seed int64) (*CropTrainingResult, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("need at least 2 samples, got %d", len(samples))
	}

	scaler := fitScaler(samples)
	encoder := fitEncoder(samples)

	scaled := make([][]float64, len(samples))
	encoded := make([]int, len(samples))
	for i, sample := range samples {
		scaled[i] = scaler.Transform(sample.Features[:])
		idx, err := encoder.Transform(sample.Label)
		if err != nil {
			return nil, err
		}
		encoded[i] = idx
	}

	trainIdx, testIdx := split(len(samples), 0.2, seed)

	classifier := fitCentroids(scaled, encoded, trainIdx, len(encoder.Classes))

	correct := 0
	for _, i := range testIdx {
		if classifier.Predict(scaled[i]) == encoded[i] {
			correct++
		}
	}
	accuracy := 0.0
	if len(testIdx) > 0 {
		accuracy = float64(correct) / float64(len(testIdx))
	}

	return &CropTrainingResult{
		Classifier: classifier,
		Scaler:     scaler,
		Encoder:    encoder,
		Accuracy:   accuracy,
		TrainSize:  len(trainIdx),
		TestSize:   len(testIdx),
	}, nil
}

func fitScaler(samples []CropSample) *artifact.StandardScaler {
	n := len(FeatureColumns)
	scaler := &artifact.StandardScaler{
		Mean: make([]float64, n),
		Std:  make([]float64, n),
	}
	column := make([]float64, len(samples))
	for j := 0; j < n; j++ {
		for i, sample := range samples {
			column[i] = sample.Features[j]
		}
		scaler.Mean[j] = stat.Mean(column, nil)
		scaler.Std[j] = stat.StdDev(column, nil)
	}
	return scaler
}

func fitEncoder(samples []CropSample) *artifact.LabelEncoder {
	seen := make(map[string]bool)
	classes := make([]string, 0)
	for _, sample := range samples {
		if !seen[sample.Label] {
			seen[sample.Label] = true
			classes = append(classes, sample.Label)
		}
	}
	sort.Strings(classes)
	return &artifact.LabelEncoder{Classes: classes}
}

func fitCentroids(scaled [][]float64, encoded []int, trainIdx []int, numClasses int) *artifact.CropClassifier {
	dims := len(FeatureColumns)
	centroids := make([][]float64, numClasses)
	counts := make([]int, numClasses)
	for i := range centroids {
		centroids[i] = make([]float64, dims)
	}

	for _, i := range trainIdx {
		class := encoded[i]
		counts[class]++
		for j, v := range scaled[i] {
			centroids[class][j] += v
		}
	}
	for class, count := range counts {
		if count == 0 {
			continue
		}
		for j := range centroids[class] {
			centroids[class][j] /= float64(count)
		}
	}
	return &artifact.CropClassifier{Centroids: centroids}
}

// split partitions [0,n) into train and test index sets after a seeded
// shuffle, so a run is reproducible for a given seed.
func split(n int, testFraction float64, seed int64) (train, test []int) {
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	testSize := int(float64(n) * testFraction)
	if testSize == 0 && n > 1 {
		testSize = 1
	}
	return perm[testSize:], perm[:testSize]
}
