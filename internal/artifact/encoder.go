package artifact

import "fmt"

// LabelEncoder maps class indices back to crop names. Classes are stored in
// the order they were assigned during training.
type LabelEncoder struct {
	Classes []string
}

// InverseTransform recovers the crop name for an encoded class index.
func (e *LabelEncoder) InverseTransform(index int) (string, error) {
	if index < 0 || index >= len(e.Classes) {
		return "", fmt.Errorf("class index %d out of range [0,%d)", index, len(e.Classes))
	}
	return e.Classes[index], nil
}

// Transform returns the encoded index of a crop name.
func (e *LabelEncoder) Transform(label string) (int, error) {
	for i, class := range e.Classes {
		if class == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown label %q", label)
}
