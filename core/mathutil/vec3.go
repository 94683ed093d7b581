package mathutil

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Vec3 is a 3-component vector (value type, stack-allocated).
// It serializes as a JSON/YAML array of exactly three numbers.
type Vec3 [3]float64

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// UnmarshalJSON decodes a three-number array. JSON null leaves v unchanged.
func (v *Vec3) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	return v.set(parts)
}

// UnmarshalYAML decodes a three-number sequence.
func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	var parts []float64
	if err := node.Decode(&parts); err != nil {
		return err
	}
	if err := v.set(parts); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

func (v *Vec3) set(parts []float64) error {
	if len(parts) != 3 {
		return fmt.Errorf("vec3: want 3 components, got %d", len(parts))
	}
	copy(v[:], parts)
	return nil
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
