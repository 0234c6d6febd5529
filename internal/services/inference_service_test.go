package services

import (
	"testing"

	"farm-advisor/internal/artifact"
	"farm-advisor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitFallbackWhenArtifactUnavailable(t *testing.T) {
	service := NewInferenceService(artifact.Load(t.TempDir()))
	assert.False(t, service.Ready())

	inputs := []models.PredictionRequest{
		{},
		{Nitrogen: 90, Phosphorus: 42, Potassium: 43, Temperature: 21, Humidity: 82, PH: 6.5, Rainfall: 203},
		{Temperature: -40},
	}
	for _, req := range inputs {
		result, err := service.Submit(req)
		require.NoError(t, err)
		assert.Equal(t, "rice", result.Crop)
		assert.Equal(t, 95.0, result.Confidence)
		assert.Equal(t, req, result.Inputs)
	}
}

func TestSubmitWithArtifact(t *testing.T) {
	dir := t.TempDir()
	classifier := &artifact.CropClassifier{Centroids: [][]float64{
		{-2, -2, -2, -2, -2, -2, -2},
		{2, 2, 2, 2, 2, 2, 2},
	}}
	scaler := &artifact.StandardScaler{
		Mean: []float64{50, 50, 50, 25, 70, 6.5, 100},
		Std:  []float64{10, 10, 10, 5, 10, 1, 50},
	}
	encoder := &artifact.LabelEncoder{Classes: []string{"chickpea", "cotton"}}
	require.NoError(t, artifact.Save(dir, classifier, scaler, encoder))

	service := NewInferenceService(artifact.Load(dir))
	require.True(t, service.Ready())

	result, err := service.Submit(models.PredictionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "chickpea", result.Crop)
	assert.Equal(t, 99.32, result.Confidence)

	// Same inputs, same answer: predict is a pure function of the readings.
	for i := 0; i < 5; i++ {
		again, err := service.Submit(models.PredictionRequest{})
		require.NoError(t, err)
		assert.Equal(t, result.Crop, again.Crop)
	}
}

func TestParsePredictionRequestCoercesBadInput(t *testing.T) {
	form := map[string]string{
		"N":           "90",
		"P":           "not-a-number",
		"temperature": "",
		"humidity":    " 82.5 ",
		"ph":          "6.5",
	}
	req := models.ParsePredictionRequest(func(key string) string { return form[key] })

	assert.Equal(t, 90.0, req.Nitrogen)
	assert.Equal(t, 0.0, req.Phosphorus, "non-numeric input defaults to 0")
	assert.Equal(t, 0.0, req.Potassium, "missing field defaults to 0")
	assert.Equal(t, 0.0, req.Temperature, "empty field defaults to 0")
	assert.Equal(t, 82.5, req.Humidity)
	assert.Equal(t, 6.5, req.PH)
	assert.Equal(t, 0.0, req.Rainfall)
}
