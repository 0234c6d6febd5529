package models

import (
	"strconv"
	"strings"
)

// PredictionRequest holds the seven soil/weather readings of one submission.
type PredictionRequest struct {
	Nitrogen    float64 `json:"N"`
	Phosphorus  float64 `json:"P"`
	Potassium   float64 `json:"K"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	PH          float64 `json:"ph"`
	Rainfall    float64 `json:"rainfall"`
}

// ParsePredictionRequest builds a request from raw form values. A missing or
// non-numeric field is coerced to 0; bad input is never an error here.
func ParsePredictionRequest(get func(string) string) PredictionRequest {
	return PredictionRequest{
		Nitrogen:    parseField(get("N")),
		Phosphorus:  parseField(get("P")),
		Potassium:   parseField(get("K")),
		Temperature: parseField(get("temperature")),
		Humidity:    parseField(get("humidity")),
		PH:          parseField(get("ph")),
		Rainfall:    parseField(get("rainfall")),
	}
}

func parseField(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

// Features returns the readings in the order the classifier was trained on.
func (r PredictionRequest) Features() [7]float64 {
	return [7]float64{r.Nitrogen, r.Phosphorus, r.Potassium, r.Temperature, r.Humidity, r.PH, r.Rainfall}
}

// PredictionResult is the outcome of one crop recommendation. It echoes the
// parsed inputs so the results view can render them back.
type PredictionResult struct {
	Crop       string            `json:"crop"`
	Confidence float64           `json:"confidence"`
	Inputs     PredictionRequest `json:"inputs"`
}

// MonthlyRainfall is one estimated data point of the rainfall view.
type MonthlyRainfall struct {
	Month    int     `json:"month"`
	Rainfall float64 `json:"rainfall_mm"`
}
