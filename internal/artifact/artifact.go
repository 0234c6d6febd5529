package artifact

import (
	"encoding/gob"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const (
	ClassifierFile = "crop_model.gob"
	ScalerFile     = "scaler.gob"
	EncoderFile    = "label_encoder.gob"
	RainfallFile   = "rainfall_model.gob"
)

// modelConfidence is the constant reported alongside a real prediction. It is
// a placeholder carried over from the original application, not a computed
// class probability.
const modelConfidence = 99.32

// Artifact is the trained classifier together with the preprocessing
// transforms it depends on. It is loaded once at startup and never mutated,
// so concurrent predictions may share it freely.
type Artifact struct {
	Classifier *CropClassifier
	Scaler     *StandardScaler
	Encoder    *LabelEncoder

	available bool
}

// Load reads the three model files from dir. A missing classifier file or any
// decode failure yields an unavailable artifact; that is a handled state, not
// an error, and predictions then use the caller's fallback.
func Load(dir string) *Artifact {
	a := &Artifact{}

	if _, err := os.Stat(filepath.Join(dir, ClassifierFile)); err != nil {
		log.Printf("crop model not found in %s, predictions will use the fallback", dir)
		return a
	}

	var (
		classifier CropClassifier
		scaler     StandardScaler
		encoder    LabelEncoder
	)
	if err := decodeFile(filepath.Join(dir, ClassifierFile), &classifier); err != nil {
		log.Printf("model loading warning: %v", err)
		return a
	}
	if err := decodeFile(filepath.Join(dir, ScalerFile), &scaler); err != nil {
		log.Printf("model loading warning: %v", err)
		return a
	}
	if err := decodeFile(filepath.Join(dir, EncoderFile), &encoder); err != nil {
		log.Printf("model loading warning: %v", err)
		return a
	}

	a.Classifier = &classifier
	a.Scaler = &scaler
	a.Encoder = &encoder
	a.available = true
	log.Printf("crop model loaded from %s (%d classes)", dir, len(encoder.Classes))
	return a
}

// Available reports whether the artifact was loaded and can predict.
func (a *Artifact) Available() bool {
	return a != nil && a.available
}

// Predict scales the raw readings, classifies them and decodes the class
// index to a crop name. The confidence is the constant placeholder.
func (a *Artifact) Predict(features [7]float64) (string, float64, error) {
	if !a.Available() {
		return "", 0, fmt.Errorf("model artifact not available")
	}
	scaled := a.Scaler.Transform(features[:])
	index := a.Classifier.Predict(scaled)
	crop, err := a.Encoder.InverseTransform(index)
	if err != nil {
		return "", 0, fmt.Errorf("failed to decode prediction: %w", err)
	}
	return crop, modelConfidence, nil
}

// Save serializes the artifact's three model files into dir.
func Save(dir string, classifier *CropClassifier, scaler *StandardScaler, encoder *LabelEncoder) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create models directory: %w", err)
	}
	if err := encodeFile(filepath.Join(dir, ClassifierFile), classifier); err != nil {
		return err
	}
	if err := encodeFile(filepath.Join(dir, ScalerFile), scaler); err != nil {
		return err
	}
	return encodeFile(filepath.Join(dir, EncoderFile), encoder)
}

// LoadRainfall reads the rainfall regressor from dir. As with Load, absence
// or corruption yields nil rather than an error.
func LoadRainfall(dir string) *RainfallModel {
	var model RainfallModel
	if err := decodeFile(filepath.Join(dir, RainfallFile), &model); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("rainfall model loading warning: %v", err)
		}
		return nil
	}
	log.Printf("rainfall model loaded from %s", dir)
	return &model
}

// SaveRainfall serializes the rainfall regressor into dir.
func SaveRainfall(dir string, model *RainfallModel) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create models directory: %w", err)
	}
	return encodeFile(filepath.Join(dir, RainfallFile), model)
}

func decodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func encodeFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
